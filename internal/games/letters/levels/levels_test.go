package levels

import (
	"bytes"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/letter-workshop/internal/core"
)

// captureLog routes the default logger into a buffer for one test.
func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := log.Default()
	log.SetDefault(log.New(&buf))
	t.Cleanup(func() { log.SetDefault(prev) })
	return &buf
}

func TestDefaultLoaderLevels(t *testing.T) {
	ids, err := DefaultLoader().ListIDs()
	if err != nil {
		t.Fatalf("ListIDs failed: %v", err)
	}
	want := []string{"01-nigel", "02-conveyor"}
	if len(ids) != len(want) {
		t.Fatalf("ids = %v, expected %v", ids, want)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("ids[%d] = %q, expected %q", i, ids[i], want[i])
		}
	}
}

func TestNigelLayout(t *testing.T) {
	lvl, err := DefaultLoader().LoadByID("01-nigel")
	if err != nil {
		t.Fatalf("LoadByID failed: %v", err)
	}

	if lvl.Target != "NIGEL" {
		t.Errorf("target = %q, expected NIGEL", lvl.Target)
	}
	if lvl.Start != core.V2(100, 100) {
		t.Errorf("start = %+v, expected (100,100)", lvl.Start)
	}

	wantColors := []core.Color{core.ColorGray, core.ColorRed, core.ColorGreen, core.ColorBlue, core.ColorYellow}
	if len(lvl.Platforms) != len(wantColors) {
		t.Fatalf("expected %d static platforms, got %d", len(wantColors), len(lvl.Platforms))
	}
	for i, c := range wantColors {
		if lvl.Platforms[i].Color != c {
			t.Errorf("platform %d color = %v, expected %v", i, lvl.Platforms[i].Color, c)
		}
	}
	if lvl.Platforms[0].Rect != core.NewRect(50, 300, 200, 20) {
		t.Errorf("first platform = %+v", lvl.Platforms[0].Rect)
	}

	if lvl.Moving == nil {
		t.Fatal("expected a moving platform")
	}
	if lvl.Moving.Rect != core.NewRect(400, 720, 200, 20) || lvl.Moving.Color != core.ColorMagenta {
		t.Errorf("moving = %+v", *lvl.Moving)
	}

	var letters string
	for _, p := range lvl.Pickups {
		letters += string(p.Letter)
	}
	if letters != "NIGELAB" {
		t.Errorf("pickup order = %q, expected NIGELAB", letters)
	}
}

func TestConveyorLevelIsTOML(t *testing.T) {
	lvl, err := DefaultLoader().LoadByID("02-conveyor")
	if err != nil {
		t.Fatalf("LoadByID failed: %v", err)
	}
	if lvl.FilePath != "data/02-conveyor.toml" {
		t.Errorf("file path = %q", lvl.FilePath)
	}
	if lvl.Moving == nil {
		t.Error("expected a moving platform")
	}
	for _, r := range "OPHER" {
		if !lvl.HasPickup(r) {
			t.Errorf("missing target pickup %c", r)
		}
	}
}

func TestDirLoaderSkipsInvalid(t *testing.T) {
	logs := captureLog(t)
	lvls, err := DirLoader("testdata/levels").LoadAll()
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}

	if len(lvls) != 2 {
		t.Fatalf("expected 2 valid levels, got %d", len(lvls))
	}
	if lvls[0].ID != "a-basic" || lvls[1].ID != "b-nested" {
		t.Errorf("unexpected order: %s, %s", lvls[0].ID, lvls[1].ID)
	}
	if lvls[1].Name != "b-nested" {
		t.Errorf("name should default to id, got %q", lvls[1].Name)
	}
	if lvls[1].Platforms[0].Color != core.ColorWhite {
		t.Errorf("empty color should default to white")
	}

	for _, skipped := range []string{"c-duplicate.yaml", "d-badcolor.yaml"} {
		if !strings.Contains(logs.String(), skipped) {
			t.Errorf("skipping %s should be logged, got:\n%s", skipped, logs.String())
		}
	}
}

func TestLoadAllSkipsUnknownKeys(t *testing.T) {
	logs := captureLog(t)
	fsys := fstest.MapFS{
		"a.yaml": {Data: []byte("id: a\ntarget: A\n")},
		"b.yaml": {Data: []byte("id: b\ntarget: B\nplatfroms: []\n")},
	}

	lvls, err := NewLoader(fsys, ".").LoadAll()
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}
	if len(lvls) != 1 || lvls[0].ID != "a" {
		t.Errorf("expected only level a, got %+v", lvls)
	}
	if !strings.Contains(logs.String(), "b.yaml") {
		t.Errorf("the broken file should be named in the log, got:\n%s", logs.String())
	}
}

func TestLoadFileErrors(t *testing.T) {
	loader := DirLoader("testdata/levels")

	tests := []string{
		"c-duplicate.yaml",
		"d-badcolor.yaml",
		"missing.yaml",
	}
	for _, p := range tests {
		if _, err := loader.LoadFile(p); err == nil {
			t.Errorf("LoadFile(%s) should fail", p)
		}
	}

	if _, err := loader.LoadByID("nope"); err == nil {
		t.Error("LoadByID should fail for unknown ids")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		level   Level
		wantErr bool
	}{
		{"ok", Level{ID: "x", Target: "AB"}, false},
		{"no id", Level{Target: "AB"}, true},
		{"no target", Level{ID: "x"}, true},
		{"flat platform", Level{ID: "x", Target: "A", Platforms: []Platform{{Rect: core.NewRect(0, 0, 10, 0)}}}, true},
		{"flat mover", Level{ID: "x", Target: "A", Moving: &Platform{Rect: core.NewRect(0, 0, 0, 5)}}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.level.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestMultiRuneLetterRejected(t *testing.T) {
	fsys := fstest.MapFS{
		"lv.yaml": {Data: []byte("id: lv\ntarget: AB\npickups:\n  - {letter: AB, x: 0, y: 0}\n")},
	}
	if _, err := NewLoader(fsys, ".").LoadFile("lv.yaml"); err == nil {
		t.Error("multi-rune letter should be rejected")
	}
}

package assets

import (
	"bytes"
	"io"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/charmbracelet/log"
)

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

func TestDefaultFont(t *testing.T) {
	f := DefaultFont(quietLogger())
	if f == nil {
		t.Fatal("embedded font should load")
	}
	if f.CellW != 16 || f.CellH != 32 {
		t.Errorf("cell = %dx%d, expected 16x32", f.CellW, f.CellH)
	}
}

func TestRenderText(t *testing.T) {
	f := DefaultFont(quietLogger())

	tests := []struct {
		name   string
		text   string
		status Status
		w, h   float64
	}{
		{"single letter", "N", StatusOK, 16, 32},
		{"name", "NIGEL", StatusOK, 80, 32},
		{"empty", "", StatusMissing, 0, 0},
		{"outside charset", "Né", StatusMissing, 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res := f.RenderText(tc.text)
			if res.Status != tc.status {
				t.Fatalf("status = %v, expected %v", res.Status, tc.status)
			}
			if res.Glyph.W != tc.w || res.Glyph.H != tc.h {
				t.Errorf("size = %vx%v, expected %vx%v", res.Glyph.W, res.Glyph.H, tc.w, tc.h)
			}
		})
	}
}

func TestNilFontIsMissing(t *testing.T) {
	var f *Font
	if f.RenderText("A").OK() {
		t.Error("nil font should render Missing")
	}
	if f.Has('A') {
		t.Error("nil font has no runes")
	}
}

func TestLoadFontFailures(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)

	fsys := fstest.MapFS{
		"bad.yaml":  {Data: []byte("cell_width: 0\ncell_height: 8\ncharset: AB\n")},
		"junk.yaml": {Data: []byte("::: not yaml")},
	}

	for _, p := range []string{"missing.yaml", "bad.yaml", "junk.yaml"} {
		if f := LoadFont(fsys, p, logger); f != nil {
			t.Errorf("LoadFont(%s) should return nil", p)
		}
	}
	if !strings.Contains(buf.String(), "missing.yaml") {
		t.Errorf("expected failure to be logged, got %q", buf.String())
	}
}

func TestParseModel(t *testing.T) {
	m, err := ParseModel("t", []byte(" A\nAAA  \n\n"))
	if err != nil {
		t.Fatal(err)
	}
	if m.W != 3 || m.H != 2 {
		t.Errorf("size = %dx%d, expected 3x2", m.W, m.H)
	}
	if m.Lines[1] != "AAA" {
		t.Errorf("trailing spaces should be trimmed, got %q", m.Lines[1])
	}

	if _, err := ParseModel("empty", []byte("\n  \n")); err == nil {
		t.Error("empty model should be rejected")
	}
}

func TestLibraryEmbeddedModels(t *testing.T) {
	lib := DefaultLibrary(quietLogger())

	for _, r := range "YOURNAME" {
		res := lib.Load(LetterModel(r))
		if !res.OK() {
			t.Errorf("letter model %c should be embedded", r)
		}
	}
	if !lib.Load("tree1/tree1").OK() {
		t.Error("tree model should be embedded")
	}
}

func TestLibraryMissingLoggedOnce(t *testing.T) {
	var buf bytes.Buffer
	lib := NewLibrary(fstest.MapFS{}, log.New(&buf))

	for i := 0; i < 3; i++ {
		if lib.Load("letters/Q").OK() {
			t.Fatal("missing model should not be OK")
		}
	}
	if n := strings.Count(buf.String(), "model not found"); n != 1 {
		t.Errorf("missing model logged %d times, expected 1", n)
	}
}

func TestLibraryCaches(t *testing.T) {
	fsys := fstest.MapFS{
		"models/box.txt": {Data: []byte("##\n##\n")},
	}
	lib := NewLibrary(fsys, quietLogger())

	first := lib.Load("box")
	delete(fsys, "models/box.txt")
	second := lib.Load("box")

	if !first.OK() || !second.OK() {
		t.Fatal("cached model should stay available")
	}
	if first.Model != second.Model {
		t.Error("expected the same cached model")
	}
}

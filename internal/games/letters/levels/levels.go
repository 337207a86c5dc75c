// Package levels provides level loading for the letter collector.
// Levels describe layout only; physics and scoring come from config.
package levels

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/letter-workshop/internal/core"
	"github.com/vovakirdan/letter-workshop/internal/games/letters/levels/formats"
)

//go:embed data
var embedded embed.FS

// Platform is a solid rectangle drawn in one color.
type Platform struct {
	Rect  core.Rect
	Color core.Color
}

// Pickup places a letter in the world.
type Pickup struct {
	Letter rune
	Pos    core.Vec2
}

// Level represents a complete level definition.
type Level struct {
	ID        string
	Name      string
	Target    string // name to spell; its first letter is pre-collected
	Start     core.Vec2
	Platforms []Platform
	Moving    *Platform // scripted conveyor, nil if the level has none
	Pickups   []Pickup  // in file order
	FilePath  string
}

// Validate checks the level for layouts the game cannot play.
func (l Level) Validate() error {
	var errs []error
	if l.ID == "" {
		errs = append(errs, errors.New("missing id"))
	}
	if l.Target == "" {
		errs = append(errs, errors.New("empty target name"))
	}

	check := func(what string, p Platform) {
		if p.Rect.W <= 0 || p.Rect.H <= 0 {
			errs = append(errs, fmt.Errorf("%s: size must be positive, got %dx%d", what, p.Rect.W, p.Rect.H))
		}
	}
	for i, p := range l.Platforms {
		check(fmt.Sprintf("platforms[%d]", i), p)
	}
	if l.Moving != nil {
		check("moving", *l.Moving)
	}

	seen := make(map[rune]bool, len(l.Pickups))
	for _, p := range l.Pickups {
		if seen[p.Letter] {
			errs = append(errs, fmt.Errorf("duplicate pickup %q", p.Letter))
		}
		seen[p.Letter] = true
	}
	return errors.Join(errs...)
}

// HasPickup reports whether the level places the given letter.
func (l Level) HasPickup(r rune) bool {
	for _, p := range l.Pickups {
		if p.Letter == r {
			return true
		}
	}
	return false
}

// Loader handles loading levels from a file system.
type Loader struct {
	FS   fs.FS
	Root string
}

// NewLoader creates a loader reading root inside fsys.
func NewLoader(fsys fs.FS, root string) *Loader {
	return &Loader{FS: fsys, Root: root}
}

// DefaultLoader reads the levels built into the binary.
func DefaultLoader() *Loader {
	return NewLoader(embedded, "data")
}

// DirLoader reads levels from a directory on disk.
func DirLoader(dir string) *Loader {
	return NewLoader(os.DirFS(dir), ".")
}

// LoadAll recursively scans and loads all level files.
// Returns levels sorted by ID for deterministic ordering.
func (l *Loader) LoadAll() ([]Level, error) {
	var levels []Level

	err := fs.WalkDir(l.FS, l.Root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			return nil
		}

		if !isSupportedExtension(strings.ToLower(path.Ext(p))) {
			return nil
		}

		level, err := l.LoadFile(p)
		if err != nil {
			logger().Warn("skipping level file", "path", p, "error", err)
			return nil
		}

		levels = append(levels, level)
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}

	sort.Slice(levels, func(i, j int) bool {
		return levels[i].ID < levels[j].ID
	})

	return levels, nil
}

// LoadFile loads and validates a single level file.
func (l *Loader) LoadFile(p string) (Level, error) {
	data, err := fs.ReadFile(l.FS, p)
	if err != nil {
		return Level{}, fmt.Errorf("reading file %s: %w", p, err)
	}

	parsed, err := parseByExtension(data, strings.ToLower(path.Ext(p)))
	if err != nil {
		return Level{}, fmt.Errorf("parsing file %s: %w", p, err)
	}

	level, err := convert(parsed)
	if err != nil {
		return Level{}, fmt.Errorf("level %s: %w", p, err)
	}
	level.FilePath = p

	if err := level.Validate(); err != nil {
		return Level{}, fmt.Errorf("level %s: %w", p, err)
	}
	return level, nil
}

// LoadByID loads a specific level by ID.
func (l *Loader) LoadByID(id string) (Level, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return Level{}, err
	}

	for _, lvl := range levels {
		if lvl.ID == id {
			return lvl, nil
		}
	}

	return Level{}, fmt.Errorf("level not found: %s", id)
}

// ListIDs returns all level IDs in sorted order.
func (l *Loader) ListIDs() ([]string, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(levels))
	for i, lvl := range levels {
		ids[i] = lvl.ID
	}
	return ids, nil
}

// convert turns a parsed file into a Level. Letters must be single runes and
// colors must name a palette entry; an empty color draws white.
func convert(fl formats.Level) (Level, error) {
	lvl := Level{
		ID:     fl.ID,
		Name:   fl.Name,
		Target: fl.Target,
		Start:  core.V2(fl.Start.X, fl.Start.Y),
	}
	if lvl.Name == "" {
		lvl.Name = fl.ID
	}

	for i, fp := range fl.Platforms {
		p, err := convertPlatform(fp)
		if err != nil {
			return Level{}, fmt.Errorf("platforms[%d]: %w", i, err)
		}
		lvl.Platforms = append(lvl.Platforms, p)
	}

	if fl.Moving != nil {
		p, err := convertPlatform(*fl.Moving)
		if err != nil {
			return Level{}, fmt.Errorf("moving: %w", err)
		}
		lvl.Moving = &p
	}

	for i, fp := range fl.Pickups {
		r, size := utf8.DecodeRuneInString(fp.Letter)
		if r == utf8.RuneError || size != len(fp.Letter) {
			return Level{}, fmt.Errorf("pickups[%d]: %q is not a single letter", i, fp.Letter)
		}
		lvl.Pickups = append(lvl.Pickups, Pickup{Letter: r, Pos: core.V2(fp.X, fp.Y)})
	}

	return lvl, nil
}

func convertPlatform(fp formats.Platform) (Platform, error) {
	color := core.ColorWhite
	if fp.Color != "" {
		c, ok := core.ParseColor(fp.Color)
		if !ok {
			return Platform{}, fmt.Errorf("unknown color %q", fp.Color)
		}
		color = c
	}
	return Platform{Rect: core.NewRect(fp.X, fp.Y, fp.W, fp.H), Color: color}, nil
}

// isSupportedExtension checks if extension is supported.
func isSupportedExtension(ext string) bool {
	for _, supported := range formats.FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}

// parseByExtension routes to the correct parser.
func parseByExtension(data []byte, ext string) (formats.Level, error) {
	switch ext {
	case ".yaml", ".yml":
		return formats.ParseYAML(data)
	case ".toml":
		return formats.ParseTOML(data)
	default:
		return formats.Level{}, fmt.Errorf("unsupported extension: %s", ext)
	}
}

func logger() *log.Logger {
	return log.WithPrefix("levels")
}

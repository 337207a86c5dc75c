package assets

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

// DefaultFontPath is the embedded font descriptor.
const DefaultFontPath = "fonts/default.yaml"

// Glyph is rendered text with its size in world units.
type Glyph struct {
	Text string
	W, H float64
}

// Result is the outcome of rendering text.
type Result struct {
	Glyph  Glyph
	Status Status
}

// OK reports whether the glyph can be drawn.
func (r Result) OK() bool {
	return r.Status == StatusOK
}

// Missing is the empty result.
func Missing() Result {
	return Result{Status: StatusMissing}
}

// fontDescriptor is the on-disk form of a Font.
type fontDescriptor struct {
	Name       string `yaml:"name"`
	CellWidth  int    `yaml:"cell_width"`
	CellHeight int    `yaml:"cell_height"`
	Charset    string `yaml:"charset"`
}

// Font is a fixed-cell font. Every rune in the charset is one cell wide.
type Font struct {
	Name    string
	CellW   int
	CellH   int
	charset map[rune]bool
}

// ParseFont decodes a YAML font descriptor.
func ParseFont(data []byte) (*Font, error) {
	var desc fontDescriptor
	if err := yaml.Unmarshal(data, &desc); err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	if desc.CellWidth <= 0 || desc.CellHeight <= 0 {
		return nil, fmt.Errorf("font %q: cell size must be positive, got %dx%d",
			desc.Name, desc.CellWidth, desc.CellHeight)
	}
	if desc.Charset == "" {
		return nil, errors.New("font " + desc.Name + ": empty charset")
	}

	f := &Font{
		Name:    desc.Name,
		CellW:   desc.CellWidth,
		CellH:   desc.CellHeight,
		charset: make(map[rune]bool, len(desc.Charset)),
	}
	for _, r := range desc.Charset {
		f.charset[r] = true
	}
	return f, nil
}

// LoadFont reads a font descriptor from fsys. Failures are logged and yield a
// nil font, which renders every text as Missing.
func LoadFont(fsys fs.FS, path string, logger *log.Logger) *Font {
	if logger == nil {
		logger = log.Default()
	}
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		logger.Warn("font not found", "path", path, "error", err)
		return nil
	}
	f, err := ParseFont(data)
	if err != nil {
		logger.Warn("font unusable", "path", path, "error", err)
		return nil
	}
	return f
}

// DefaultFont loads the embedded default font.
func DefaultFont(logger *log.Logger) *Font {
	return LoadFont(embedded, DefaultFontPath, logger)
}

// Has reports whether r can be rendered.
func (f *Font) Has(r rune) bool {
	return f != nil && f.charset[r]
}

// RenderText lays out text in a single row of cells.
func (f *Font) RenderText(text string) Result {
	if f == nil || text == "" {
		return Missing()
	}
	n := 0
	for _, r := range text {
		if !f.charset[r] {
			return Missing()
		}
		n++
	}
	return Result{
		Glyph: Glyph{
			Text: text,
			W:    float64(n * f.CellW),
			H:    float64(f.CellH),
		},
		Status: StatusOK,
	}
}

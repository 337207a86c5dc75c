// Package assets provides the text-glyph and model collaborators used by the
// workshop games. Lookups never fail with an error: they return a Result whose
// Status tells the renderer whether there is anything to draw.
package assets

import (
	"embed"
	"io/fs"
)

//go:embed fonts models
var embedded embed.FS

// Embedded returns the bundled font and model files.
func Embedded() fs.FS {
	return embedded
}

// Status reports whether an asset lookup produced something drawable.
type Status int

const (
	StatusOK Status = iota
	StatusMissing
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusMissing:
		return "missing"
	default:
		return "unknown"
	}
}

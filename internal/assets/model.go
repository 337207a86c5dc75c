package assets

import (
	"fmt"
	"io/fs"
	"path"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/charmbracelet/log"
)

// Model is a multi-line ASCII drawing. Blank cells are transparent.
type Model struct {
	Name  string
	Lines []string
	W, H  int
}

// ModelResult is the outcome of a model lookup.
type ModelResult struct {
	Model  *Model
	Status Status
}

// OK reports whether the model can be drawn.
func (r ModelResult) OK() bool {
	return r.Status == StatusOK && r.Model != nil
}

// ParseModel builds a model from its text form. Trailing blank lines are
// dropped; a model with no visible cells is rejected.
func ParseModel(name string, data []byte) (*Model, error) {
	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	lines := strings.Split(strings.TrimRight(text, "\n "), "\n")

	m := &Model{Name: name}
	for _, line := range lines {
		line = strings.TrimRight(line, " \t")
		m.Lines = append(m.Lines, line)
		if w := utf8.RuneCountInString(line); w > m.W {
			m.W = w
		}
	}
	m.H = len(m.Lines)
	if m.W == 0 {
		return nil, fmt.Errorf("model %s is empty", name)
	}
	return m, nil
}

// Library loads models by name from models/<name>.txt and caches them.
// Safe for concurrent use; SSH sessions share one library.
type Library struct {
	fsys   fs.FS
	logger *log.Logger

	mu    sync.Mutex
	cache map[string]ModelResult
}

// NewLibrary creates a library reading from fsys.
func NewLibrary(fsys fs.FS, logger *log.Logger) *Library {
	if logger == nil {
		logger = log.Default()
	}
	return &Library{
		fsys:   fsys,
		logger: logger,
		cache:  make(map[string]ModelResult),
	}
}

// DefaultLibrary reads the embedded models.
func DefaultLibrary(logger *log.Logger) *Library {
	return NewLibrary(embedded, logger)
}

// LetterModel returns the model name for a letter.
func LetterModel(letter rune) string {
	return "letters/" + string(letter)
}

// Load returns the named model. A missing or invalid file is logged the first
// time it is requested and returns StatusMissing from then on.
func (l *Library) Load(name string) ModelResult {
	l.mu.Lock()
	defer l.mu.Unlock()

	if res, ok := l.cache[name]; ok {
		return res
	}

	res := l.read(name)
	l.cache[name] = res
	return res
}

func (l *Library) read(name string) ModelResult {
	p := path.Join("models", name+".txt")
	data, err := fs.ReadFile(l.fsys, p)
	if err != nil {
		l.logger.Warn("model not found", "model", name, "path", p)
		return ModelResult{Status: StatusMissing}
	}
	m, err := ParseModel(name, data)
	if err != nil {
		l.logger.Warn("model unusable", "model", name, "error", err)
		return ModelResult{Status: StatusMissing}
	}
	return ModelResult{Model: m, Status: StatusOK}
}

// Package letters provides the Letter Collector platformer for the workshop.
// The simulation lives in the sim subpackage; this package wires config,
// levels and glyphs around it and draws the world onto a terminal screen.
package letters

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/letter-workshop/internal/config"
	"github.com/vovakirdan/letter-workshop/internal/games/letters/levels"
)

// Package-level options set from the CLI before a game is created.
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	levelID          string
	levelDir         string
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParseDifficultyPreset(preset)
}

// SetLevel selects the level to play by ID. Empty means the first level.
func SetLevel(id string) {
	levelID = id
}

// SetLevelDir loads levels from a directory instead of the built-in set.
func SetLevelDir(dir string) {
	levelDir = dir
}

// CurrentLevel returns the selected level ID.
func CurrentLevel() string {
	return levelID
}

// Loader returns the level loader for the current options.
func Loader() *levels.Loader {
	if levelDir != "" {
		return levels.DirLoader(levelDir)
	}
	return levels.DefaultLoader()
}

// Levels lists the playable levels in ID order.
func Levels() ([]levels.Level, error) {
	return Loader().LoadAll()
}

func logger() *log.Logger {
	return log.WithPrefix("letters")
}

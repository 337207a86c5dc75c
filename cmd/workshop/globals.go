package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/letter-workshop/internal/core"
	"github.com/vovakirdan/letter-workshop/internal/games/letters"
	"github.com/vovakirdan/letter-workshop/internal/games/viewer"
	"github.com/vovakirdan/letter-workshop/internal/platform/tui"
)

const defaultDBPath = "~/.workshop/scores.db"

// Game option flags shared by play and menu
var (
	flagConfig     string
	flagDifficulty string
	flagLevel      string
	flagLevelDir   string
)

var logFile *os.File

// addGameFlags registers the per-game option flags on a command. The config
// file belongs to a single game, so only commands that play one game take it.
func addGameFlags(cmd *cobra.Command, withConfig bool) {
	if withConfig {
		cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	}
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset for letters: easy, normal, hard")
	cmd.Flags().StringVar(&flagLevel, "level", "", "Letter collector level ID")
	cmd.Flags().StringVar(&flagLevelDir, "levels", "", "Directory of letter collector levels (YAML or TOML)")
}

// setupGlobals applies logging and theme flags before any command runs.
func setupGlobals(_ *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}
	log.SetLevel(level)

	if flagLogFile != "" {
		if dir := filepath.Dir(flagLogFile); dir != "" {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("cannot create log directory: %w", err)
			}
		}
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		logFile = f
		log.SetOutput(f)
		log.SetReportTimestamp(true)
	}

	theme, err := tui.ThemeByName(flagTheme)
	if err != nil {
		return err
	}
	tui.SetTheme(theme)
	return nil
}

func closeLogFile() {
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
}

// applyGameOptions passes the option flags to a game before creation.
func applyGameOptions(gameID string) {
	switch gameID {
	case "letters":
		letters.SetConfigPath(flagConfig)
		letters.SetDifficultyPreset(flagDifficulty)
		letters.SetLevel(flagLevel)
		letters.SetLevelDir(flagLevelDir)
	case "viewer":
		viewer.SetConfigPath(flagConfig)
	}
}

// terminalConfig builds a runtime config from the terminal size and flags.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/letter-workshop/internal/platform/tui"
	"github.com/vovakirdan/letter-workshop/internal/registry"
	"github.com/vovakirdan/letter-workshop/internal/storage"
)

var flagPickLevel bool

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Letter Collector controls:
  A/D or Left/Right  - Move
  Space/W/Up         - Jump
  P                  - Pause
  R                  - Restart
  Esc                - Back (when paused or over)
  Ctrl+S             - Save a screenshot
  Q/Ctrl+C           - Quit

3D viewer controls:
  W/S or Up/Down     - Move camera forward/back
  A/D or Left/Right  - Move camera left/right
  R                  - Reset camera

Difficulty options (letters):
  easy   - Larger pickup radius, gentle conveyor
  normal - The default tuning
  hard   - Tight pickup radius, fast conveyor

Examples:
  workshop play letters
  workshop play letters --level 02-conveyor
  workshop play letters --pick
  workshop play letters --levels ./my-levels --difficulty easy
  workshop play viewer --config ./my-viewer.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	addGameFlags(playCmd, true)
	playCmd.Flags().BoolVar(&flagPickLevel, "pick", false, "Choose the letter collector level from a list")
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := args[0]

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'workshop list' to see available games", gameID)
	}

	cfg := terminalConfig()
	applyGameOptions(gameID)

	if gameID == "letters" && flagPickLevel {
		id, quit, err := tui.RunLevelSelector(cfg)
		if err != nil {
			return err
		}
		if quit || id == "" {
			return nil
		}
		flagLevel = id
		applyGameOptions(gameID)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		log.Warn("could not open scores database", "path", flagDBPath, "error", err)
		// Continue without storage - game still works
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	if _, err := tui.Run(game, store, cfg); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

package main

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/letter-workshop/internal/platform/tui"
	"github.com/vovakirdan/letter-workshop/internal/registry"
	"github.com/vovakirdan/letter-workshop/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the workshop with a game picker menu",
	Long: `Start the workshop in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a game. Picking the
Letter Collector opens the level list first. After a game ends, press
Esc to return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select game
  Tab          - High scores
  Q            - Quit

Examples:
  workshop menu
  workshop menu --fps 30
  workshop menu --levels ./my-levels
  workshop menu --db ./scores.db`,
	RunE: runMenu,
}

func init() {
	addGameFlags(menuCmd, false)
}

func runMenu(_ *cobra.Command, _ []string) error {
	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		log.Warn("could not open scores database", "path", flagDBPath, "error", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	cfg := terminalConfig()

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			return err
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				return sbErr
			}
			if goBack {
				continue // Back to menu
			}
			return nil // User quit from scoreboard
		}

		gameID := menuResult.GameID
		if gameID == "" {
			return nil
		}
		applyGameOptions(gameID)

		if gameID == "letters" {
			id, quit, selErr := tui.RunLevelSelector(cfg)
			if selErr != nil {
				return selErr
			}
			if quit {
				return nil
			}
			if id == "" {
				continue // Back to menu
			}
			flagLevel = id
			applyGameOptions(gameID)
		}

		game, err := registry.Create(gameID)
		if err != nil {
			log.Error("cannot create game", "game", gameID, "error", err)
			continue
		}

		// Update seed for each game
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		backToMenu, err := tui.Run(game, store, cfg)
		if err != nil {
			return fmt.Errorf("running game: %w", err)
		}
		if !backToMenu {
			return nil
		}
	}
}

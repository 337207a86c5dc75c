// workshop is a terminal letter workshop: a letter-collecting platformer and
// a 3D letter scene viewer, playable locally or over SSH.
//
// Usage:
//
//	workshop list              - List available games
//	workshop levels            - List letter collector levels
//	workshop play <game>       - Play a game
//	workshop menu              - Start menu to pick games interactively
//	workshop serve             - Start SSH server for remote play
//	workshop scores [game]     - Show high scores
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set seed for reproducible runs
//	--db <path>          - Set database path (default: ~/.workshop/scores.db)
//	--log-level <level>  - debug, info, warn, error (default: error)
//	--log-file <path>    - Write logs to a file instead of stderr
//	--theme <name>       - default, neon, mono
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/letter-workshop/internal/games/letters"
	_ "github.com/vovakirdan/letter-workshop/internal/games/viewer"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
	flagLogFile  string
	flagTheme    string
)

func main() {
	defer closeLogFile()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		closeLogFile()
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "workshop",
	Short: "Letter Workshop - collect letters and look at them in 3D",
	Long: `Letter Workshop is a terminal playground built around letters.

In the Letter Collector you jump across platforms picking up letters to
spell a word. In the 3D viewer you walk a camera around a scene of letter
models and a tree.

Available commands:
  list     - Show all available games
  levels   - Show letter collector levels
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  workshop list
  workshop play letters
  workshop play letters --level 02-conveyor --difficulty hard
  workshop play viewer
  workshop menu
  workshop serve --ssh :2222
  workshop scores letters`,
	SilenceUsage:      true,
	PersistentPreRunE: setupGlobals,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "Seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", defaultDBPath, "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "error", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagTheme, "theme", "default", "Menu theme: default, neon, mono")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/letter-workshop/internal/registry"
	"github.com/vovakirdan/letter-workshop/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
	flagScoresName  string
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show high scores",
	Long: `Display the top high scores for the specified game, or a summary of
every game when no game is given.

Examples:
  workshop scores
  workshop scores letters
  workshop scores letters --limit 25
  workshop scores letters --name NIGEL
  workshop scores letters --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all scores for the game")
	scoresCmd.Flags().StringVar(&flagScoresName, "name", "", "Only show runs that spelled this name")
}

func runScores(_ *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if len(args) == 0 {
		if flagScoresClear {
			return fmt.Errorf("--clear needs a game")
		}
		return printSummary(store)
	}

	gameID := args[0]
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'workshop list' to see available games", gameID)
	}

	if flagScoresClear {
		n, err := store.ClearScores(gameID)
		if err != nil {
			return fmt.Errorf("clearing scores: %w", err)
		}
		fmt.Printf("Deleted %d scores for %s.\n", n, gameID)
		return nil
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	var scores []storage.ScoreEntry
	if flagScoresName != "" {
		scores, err = store.LabelScores(gameID, flagScoresName)
		if len(scores) > flagScoresLimit && flagScoresLimit > 0 {
			scores = scores[:flagScoresLimit]
		}
	} else {
		scores, err = store.TopScores(gameID, flagScoresLimit)
	}
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Printf("High Scores - %s\n", game.Title())
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'workshop play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-8s  %-12s  %s\n", "Rank", "Score", "Name", "Date")
	fmt.Printf("  %-4s  %-8s  %-12s  %s\n", "----", "-----", "----", "----")
	for i, entry := range scores {
		label := entry.Label
		if label == "" {
			label = "-"
		}
		fmt.Printf("  %-4d  %-8d  %-12s  %s\n", i+1, entry.Score, label, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetGameStats(gameID)
	if err == nil && stats != nil {
		fmt.Println()
		fmt.Printf("Best: %d  Games: %d  Average: %.1f\n", stats.HighScore, stats.GamesCount, stats.AvgScore)
	}
	return nil
}

// printSummary shows one line of stats per game that has scores.
func printSummary(store *storage.Store) error {
	all, err := store.GetAllGamesStats()
	if err != nil {
		return fmt.Errorf("retrieving stats: %w", err)
	}
	if len(all) == 0 {
		fmt.Println("No scores recorded yet.")
		return nil
	}

	ids := make([]string, 0, len(all))
	for id := range all {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Printf("  %-10s  %-6s  %-6s  %-8s  %s\n", "Game", "Games", "Best", "Average", "Last played")
	fmt.Printf("  %-10s  %-6s  %-6s  %-8s  %s\n", "----", "-----", "----", "-------", "-----------")
	for _, id := range ids {
		st := all[id]
		fmt.Printf("  %-10s  %-6d  %-6d  %-8.1f  %s\n",
			id, st.GamesCount, st.HighScore, st.AvgScore, st.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}

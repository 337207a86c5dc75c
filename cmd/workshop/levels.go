package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/letter-workshop/internal/games/letters"
	"github.com/vovakirdan/letter-workshop/internal/games/letters/levels"
)

var levelsCmd = &cobra.Command{
	Use:   "levels [file...]",
	Short: "List or check letter collector levels",
	Long: `Without arguments, lists the letter collector levels from the built-in
set (or from --levels). With file arguments, loads and validates each file
and reports what is wrong with it.

Level files are YAML (.yaml, .yml) or TOML (.toml).

Examples:
  workshop levels
  workshop levels --levels ./my-levels
  workshop levels ./my-levels/03-stairs.toml`,
	RunE: runLevels,
}

func init() {
	levelsCmd.Flags().StringVar(&flagLevelDir, "levels", "", "Directory of letter collector levels")
}

func runLevels(_ *cobra.Command, args []string) error {
	if len(args) > 0 {
		return checkLevelFiles(args)
	}

	letters.SetLevelDir(flagLevelDir)
	all, err := letters.Levels()
	if err != nil {
		return err
	}
	if len(all) == 0 {
		fmt.Println("No levels found.")
		return nil
	}

	fmt.Printf("  %-16s  %-20s  %-10s  %s\n", "ID", "Name", "Target", "Pickups")
	fmt.Printf("  %-16s  %-20s  %-10s  %s\n", "--", "----", "------", "-------")
	for _, l := range all {
		fmt.Printf("  %-16s  %-20s  %-10s  %d\n", l.ID, l.Name, l.Target, len(l.Pickups))
	}
	fmt.Println()
	fmt.Println("Run 'workshop play letters --level <id>' to play a level.")
	return nil
}

// checkLevelFiles validates each file and fails if any is broken.
func checkLevelFiles(paths []string) error {
	failed := 0
	for _, p := range paths {
		loader := levels.DirLoader(filepath.Dir(p))
		lvl, err := loader.LoadFile(filepath.Base(p))
		if err != nil {
			failed++
			fmt.Printf("FAIL  %s: %v\n", p, err)
			continue
		}
		fmt.Printf("ok    %s (%s, target %s)\n", p, lvl.ID, lvl.Target)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d level files invalid", failed, len(paths))
	}
	return nil
}

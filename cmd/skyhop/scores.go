package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/skyhop/internal/storage"
)

var (
	flagClear bool
	flagLimit int
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best logged runs",
	Long: `Display the best runs from the run history, plus the high score.

Examples:
  skyhop scores
  skyhop scores --limit 25
  skyhop scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the run history")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
}

func runScores(_ *cobra.Command, _ []string) {
	if err := scores(); err != nil {
		fatal("%v", err)
	}
}

// scores prints or clears the run history.
func scores() error {
	cfg, _ := loadConfig()
	logger := newLogger(os.Stderr)

	if flagDBPath == "" {
		return errors.New("run history is disabled (--db is empty)")
	}
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening run history: %w", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.Clear(); err != nil {
			return err
		}
		fmt.Println("Run history cleared.")
		return nil
	}

	runs, err := store.TopRuns(flagLimit)
	if err != nil {
		return err
	}
	tracker, err := newTracker(cfg, logger)
	if err != nil {
		return err
	}

	fmt.Printf("%s - high score %d\n", cfg.Title, tracker.Best())
	fmt.Println("==========================")

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		return nil
	}

	fmt.Printf("%-6s %-8s %-14s %-8s %s\n", "Rank", "Score", "Player", "Frames", "Date")
	for i, r := range runs {
		fmt.Printf("%-6s %-8d %-14s %-8d %s\n",
			fmt.Sprintf("#%d", i+1), r.Score, r.Player, r.Frames, r.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}

package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/skyhop/internal/platform/tui"
)

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Browse the run history",
	Long: `Open an interactive table of logged runs.

Tab switches between the best runs and the most recent ones.`,
	Args: cobra.NoArgs,
	Run:  runBoard,
}

func runBoard(_ *cobra.Command, _ []string) {
	logger := newLogger(os.Stderr)

	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}

	runs := openRuns(logger)

	err := tui.RunBoard(runs, width, height)
	if runs != nil {
		runs.Close()
	}
	if err != nil {
		fatal("running board: %v", err)
	}
}

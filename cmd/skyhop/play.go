package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/skyhop/internal/audio"
	"github.com/vovakirdan/skyhop/internal/core"
	"github.com/vovakirdan/skyhop/internal/games/skyhop"
	"github.com/vovakirdan/skyhop/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start playing skyhop.

Controls:
  Left/Right, A/D   - Run
  Space/Up/W        - Jump (only from a platform)
  P                 - Pause
  Ctrl+S            - Save a text screenshot
  Q/Ctrl+C          - Quit (the current round is not recorded)

Any other key starts a round from the title and game over screens.

Examples:
  skyhop play
  skyhop play --seed 42
  skyhop play --sound --fps 30
  skyhop play --config ./my-skyhop.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	if err := play(); err != nil {
		fatal("%v", err)
	}
}

// play runs one local session. Resources are released before it returns.
func play() error {
	cfg, source := loadConfig()

	var logOut io.Writer = io.Discard
	if flagLogFile != "" {
		f, err := openLogFile(flagLogFile)
		if err != nil {
			return err
		}
		defer f.Close()
		logOut = f
	}
	logger := newLogger(logOut)
	logger.Info("starting", "config", source, "fps", cfg.Screen.FPS, "seed", flagSeed)

	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}

	tracker, err := newTracker(cfg, logger)
	if err != nil {
		return err
	}

	runs := openRuns(logger)
	if runs != nil {
		defer runs.Close()
	}

	var cues *audio.Cues
	if flagSound {
		cues = audio.New(0.4)
		if err := cues.Init(); err != nil {
			logger.Warn("sound disabled", "err", err)
		} else {
			defer cues.Close()
		}
	}
	logger.Info("sound", "enabled", cues.Enabled())

	rc := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: cfg.Screen.FPS,
		Seed:     flagSeed,
	}

	err = tui.Run(skyhop.New(cfg, tracker), rc, tui.Services{
		Runs:   runs,
		Cues:   cues,
		Logger: logger,
		Player: currentUser(),
	})
	if err != nil {
		logger.Error("game loop failed", "err", err)
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// currentUser names the local player for the run log.
func currentUser() string {
	for _, env := range []string{"USER", "USERNAME"} {
		if u := os.Getenv(env); u != "" {
			return u
		}
	}
	return "local"
}

// skyhop is an endless vertical platformer for the terminal.
//
// Usage:
//
//	skyhop                   - Play (same as skyhop play)
//	skyhop play              - Play a game
//	skyhop serve             - Start SSH server for remote play
//	skyhop scores            - Show the best logged runs
//	skyhop board             - Browse the run history interactively
//	skyhop config            - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>              - Override the tick rate from the config
//	--seed <value>            - Set RNG seed for reproducible gameplay
//	--db <path>               - Run history database (default: ~/.skyhop/runs.db)
//	--config <path>           - Custom config YAML
//	--highscore-file <path>   - Override the high score file
//	--store file|gdata        - Where the high score lives
//	--sound                   - Enable sound cues
//	--log-file <path>         - Log destination while playing
//	--debug                   - Verbose logging
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS       int
	flagSeed      int64
	flagDBPath    string
	flagConfig    string
	flagHighScore string
	flagStore     string
	flagSound     bool
	flagLogFile   string
	flagDebug     bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "skyhop",
	Short: "Skyhop - an endless platformer in your terminal",
	Long: `Skyhop is an endless vertical platformer. Jump from platform to
platform, climb as high as you can and don't fall off the bottom.

Available commands:
  play     - Play a game (default)
  serve    - Start SSH server for remote play
  scores   - Show the best logged runs
  board    - Browse the run history
  config   - Print the effective configuration

Examples:
  skyhop
  skyhop play --seed 42 --sound
  skyhop serve --ssh :2222
  skyhop scores --clear
  skyhop config > my-skyhop.yaml`,
	Run: runPlay,
}

func init() {
	// Global persistent flags
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 0, "Tick rate (0 = use screen.fps from the config)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.skyhop/runs.db", "Path to run history database (empty disables it)")
	pf.StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	pf.StringVar(&flagHighScore, "highscore-file", "", "Path to high score file (overrides the config)")
	pf.StringVar(&flagStore, "store", "file", "High score store: file or gdata")
	pf.BoolVar(&flagSound, "sound", false, "Play sound cues")
	pf.StringVar(&flagLogFile, "log-file", "~/.skyhop/skyhop.log", "Log file used while playing")
	pf.BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(boardCmd)
	rootCmd.AddCommand(configCmd)
}

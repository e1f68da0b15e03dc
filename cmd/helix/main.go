// helix is a Helix Jump-style falling-ball game for the terminal.
//
// Usage:
//
//	helix play     - Play the game
//	helix best     - Show the best score
//	helix tiers    - Show how difficulty scales with depth
//	helix config   - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible towers
//	--db <path>          - Set database path (default: ~/.arcade/helix.db)
//	--log-level <level>  - debug, info, warn or error
//	--log-file <path>    - Append logs to a file
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import the game to register it
	_ "github.com/vovakirdan/tui-helix/internal/games/helix"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "helix",
	Short: "Helix Tower - Bounce down a spinning tower in your terminal",
	Long: `Helix Tower is a terminal take on the Helix Jump mechanic: a ball
bounces on the rings of a tower. Spin the tower so the ball drops through
each ring's gap, and never land on a danger arc.

Available commands:
  play     - Play the game
  best     - Show the best score
  tiers    - Show how difficulty scales with depth
  config   - Print the effective configuration

Examples:
  helix play
  helix play --difficulty hard
  helix tiers --plain
  helix config > my-helix.yaml`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/helix.db", "Path to best score database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Append logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(bestCmd)
	rootCmd.AddCommand(tiersCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the logger for a command. Interactive commands pass
// quiet so nothing is written to the terminal the TUI owns unless a log
// file was given. The returned close func releases the file.
func newLogger(quiet bool) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	var w io.Writer = os.Stderr
	closeFn := func() {}
	switch {
	case flagLogFile != "":
		if err := os.MkdirAll(filepath.Dir(flagLogFile), 0o755); err != nil {
			return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
		}
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closeFn = func() { f.Close() }
	case quiet:
		w = io.Discard
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "helix",
		Level:           level,
	})
	return logger, closeFn, nil
}

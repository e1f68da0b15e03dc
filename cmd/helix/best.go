package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-helix/internal/storage"
)

var flagResetBest bool

var bestCmd = &cobra.Command{
	Use:   "best",
	Short: "Show the best score",
	Long: `Display the best score stored in the database.

Examples:
  helix best
  helix best --db ./helix.db
  helix best --reset`,
	Args: cobra.NoArgs,
	RunE: runBest,
}

func init() {
	bestCmd.Flags().BoolVar(&flagResetBest, "reset", false, "Clear the stored best score")
}

func runBest(cmd *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(false)
	if err != nil {
		return err
	}
	defer closeLog()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening best score database: %w", err)
	}
	defer store.Close()

	slot := storage.NewBestScoreSlot(store, storage.BestScoreKey, logger)
	out := cmd.OutOrStdout()

	if flagResetBest {
		if err := slot.Reset(); err != nil {
			return err
		}
		fmt.Fprintln(out, "Best score cleared.")
		return nil
	}

	best := slot.Load()
	if best == 0 {
		fmt.Fprintln(out, "No best score recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Play 'helix play' to set one!")
		return nil
	}
	fmt.Fprintf(out, "Best: %d\n", best)
	return nil
}

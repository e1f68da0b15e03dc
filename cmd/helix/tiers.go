package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-helix/internal/config"
	"github.com/vovakirdan/tui-helix/internal/platform/tui"
)

var (
	flagTiers int
	flagPlain bool
)

var tiersCmd = &cobra.Command{
	Use:   "tiers",
	Short: "Show how difficulty scales with depth",
	Long: `Show the ring generation parameters of each difficulty tier: gap size,
danger chance and danger arc size. Angles are in degrees.

Examples:
  helix tiers
  helix tiers --difficulty hard --tiers 20
  helix tiers --plain`,
	Args: cobra.NoArgs,
	RunE: runTiers,
}

func init() {
	addConfigFlags(tiersCmd)
	tiersCmd.Flags().IntVar(&flagTiers, "tiers", 15, "Number of tiers to show")
	tiersCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print a plain table instead of the interactive view")
}

func runTiers(cmd *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(!flagPlain)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := loadConfig(logger)
	if err != nil {
		return err
	}
	rows := tui.TierRows(config.NewDifficultyModel(cfg.Difficulty), max(flagTiers, 1))

	if flagPlain || !term.IsTerminal(int(os.Stdout.Fd())) {
		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, strings.Join(tui.TierColumns, "\t"))
		for _, r := range rows {
			fmt.Fprintln(tw, strings.Join(r, "\t"))
		}
		return tw.Flush()
	}

	height := 24
	if _, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		height = h
	}
	title := "DIFFICULTY TIERS"
	if flagDifficulty != "" {
		title += " - " + strings.ToUpper(flagDifficulty)
	}
	return tui.RunTierTable(title, rows, height)
}

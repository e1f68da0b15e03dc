package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-helix/internal/config"
	"github.com/vovakirdan/tui-helix/internal/core"
	"github.com/vovakirdan/tui-helix/internal/games/helix"
	"github.com/vovakirdan/tui-helix/internal/platform/tui"
	"github.com/vovakirdan/tui-helix/internal/registry"
	"github.com/vovakirdan/tui-helix/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagSkipMenu   bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start a game of Helix Tower.

Controls:
  Left/Right, A/D  - Spin the tower
  Mouse drag       - Spin the tower
  Space/Enter      - Start
  P/Esc            - Pause
  R                - Restart (abandons a running game)
  Q/Ctrl+C         - Quit

Without --difficulty a menu asks for one first.

Difficulty options:
  easy   - Start at tier 0, rings get harder with depth
  normal - Start at tier 2, rings get harder with depth
  hard   - Start at tier 5, rings get harder with depth
  fixed  - No progression, every ring uses the config's initial tier

Examples:
  helix play
  helix play --difficulty hard
  helix play --seed 42
  helix play --config ./my-helix.yaml --log-file /tmp/helix.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	addConfigFlags(playCmd)
	playCmd.Flags().BoolVar(&flagSkipMenu, "skip-menu", false, "Start with the configured difficulty without asking")
}

// addConfigFlags registers the flags that select the game configuration.
func addConfigFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

// loadConfig applies the config flags and resolves the configuration.
func loadConfig(logger *log.Logger) (config.HelixConfig, error) {
	if err := helix.SetDifficultyPreset(flagDifficulty); err != nil {
		return config.HelixConfig{}, err
	}
	helix.SetConfigPath(flagConfig)

	cfg, source, err := helix.LoadConfig()
	if err != nil {
		return config.HelixConfig{}, err
	}
	logger.Debug("config loaded", "source", source, "difficulty", flagDifficulty)
	return cfg, nil
}

func runPlay(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(true)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := loadConfig(logger)
	if err != nil {
		return err
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Ask for a difficulty unless one was given
	if flagDifficulty == "" && !flagSkipMenu && term.IsTerminal(int(os.Stdout.Fd())) {
		choice, menuErr := tui.RunDifficultyMenu(cfg, width, height)
		if menuErr != nil {
			return fmt.Errorf("difficulty menu: %w", menuErr)
		}
		// User quit
		if choice == nil {
			return nil
		}
		flagDifficulty = string(choice.Preset)
		if cfg, err = loadConfig(logger); err != nil {
			return err
		}
	}

	game, err := registry.Create("helix")
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	// Open best score storage
	var best core.BestScoreStore
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open best score database, best score will not be saved", "error", err)
		fmt.Fprintf(os.Stderr, "Warning: could not open best score database: %v\n", err)
		best = core.NewMemoryBestScore(0)
	} else {
		defer store.Close()
		best = storage.NewBestScoreSlot(store, storage.BestScoreKey, logger)
	}
	if user, ok := game.(registry.BestScoreUser); ok {
		user.UseBestScore(best)
	}

	opts := tui.Options{
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		Physics:  cfg.Physics,
		Controls: cfg.Controls,
		Logger:   logger,
	}
	if err := tui.Run(game, opts); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

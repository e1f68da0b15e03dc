package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-helix/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration the game would run with as YAML, after the
search order and difficulty preset are applied. The output is a valid
--config file.

Search order:
  --config <path>
  ~/.arcade/configs/helix.yaml
  ./configs/helix.yaml
  built-in defaults

Examples:
  helix config
  helix config --difficulty hard
  helix config --defaults > ~/.arcade/configs/helix.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	addConfigFlags(configCmd)
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in defaults instead")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	if flagDefaults {
		_, err := cmd.OutOrStdout().Write(config.DefaultYAML())
		return err
	}

	logger, closeLog, err := newLogger(false)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := loadConfig(logger)
	if err != nil {
		return err
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

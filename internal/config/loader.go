package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config sources reported by LoadHelix.
const (
	SourceEmbedded = "embedded"
	SourceBuiltin  = "builtin"
)

// LoadHelix loads the game configuration and reports where it came from.
// Search order: customPath -> ~/.arcade/configs/helix.yaml -> ./configs/helix.yaml -> embedded default.
// Files are overlaid on the defaults, so a partial file only overrides what it names.
func LoadHelix(customPath string) (HelixConfig, string, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return HelixConfig{}, "", fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseHelix(data)
		if err != nil {
			return HelixConfig{}, "", fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return HelixConfig{}, "", fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, customPath, nil
	}

	// Try user config directory, then local configs directory
	candidates := []string{userConfigPath("helix.yaml"), filepath.Join("configs", "helix.yaml")}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := parseHelix(data); err == nil && cfg.Validate() == nil {
			return cfg, path, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseHelix(defaultHelixYAML)
	if err != nil {
		return DefaultHelixConfig(), SourceBuiltin, nil // Fallback to hardcoded if embed fails
	}
	return cfg, SourceEmbedded, nil
}

// parseHelix overlays YAML data on the built-in defaults.
func parseHelix(data []byte) (HelixConfig, error) {
	cfg := DefaultHelixConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return HelixConfig{}, err
	}
	return cfg, nil
}

// Marshal renders cfg as YAML.
func Marshal(cfg HelixConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: cannot encode: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ApplyHelixPreset modifies the config based on a difficulty preset.
// An empty preset leaves the config untouched.
func ApplyHelixPreset(cfg *HelixConfig, preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	default:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialTier = InitialTierForPreset(preset)
	}
}

// ParsePreset validates a preset name given on the command line.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", name)
	}
}

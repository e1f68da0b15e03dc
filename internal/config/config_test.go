package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultHelixConfig().Validate(); err != nil {
		t.Fatalf("default config should be valid: %v", err)
	}
}

func TestEmbeddedYAMLMatchesBuiltin(t *testing.T) {
	cfg, err := parseHelix(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded YAML should parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultHelixConfig()) {
		t.Errorf("embedded YAML and DefaultHelixConfig differ:\nyaml:    %+v\nbuiltin: %+v", cfg, DefaultHelixConfig())
	}
}

func TestLoadHelixCustomPathOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "helix.yaml")
	data := "scoring:\n  perfect_bonus: 9\nphysics:\n  gravity: -0.01\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg, source, err := LoadHelix(path)
	if err != nil {
		t.Fatalf("LoadHelix() failed: %v", err)
	}
	if source != path {
		t.Errorf("source = %q, expected %q", source, path)
	}
	if cfg.Scoring.PerfectBonus != 9 {
		t.Errorf("PerfectBonus = %d, expected 9", cfg.Scoring.PerfectBonus)
	}
	if cfg.Physics.Gravity != -0.01 {
		t.Errorf("Gravity = %v, expected -0.01", cfg.Physics.Gravity)
	}
	// Untouched values keep their defaults
	if cfg.Tower.LevelGap != DefaultHelixConfig().Tower.LevelGap {
		t.Errorf("LevelGap = %v, expected default", cfg.Tower.LevelGap)
	}
}

func TestLoadHelixCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, _, err := LoadHelix(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom config should be an error")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("physics: [not, a, map"), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	if _, _, err := LoadHelix(bad); err == nil {
		t.Error("unparsable custom config should be an error")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("physics:\n  gravity: 0.5\n"), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	_, _, err := LoadHelix(invalid)
	if err == nil || !strings.Contains(err.Error(), "gravity") {
		t.Errorf("positive gravity should be rejected, got %v", err)
	}
}

func TestValidateRejectsBrokenGeometry(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*HelixConfig)
		want   string
	}{
		{"tunneling fall speed", func(c *HelixConfig) { c.Physics.TerminalVelocity = -2 }, "collision band"},
		{"bounce into ring above", func(c *HelixConfig) { c.Physics.BounceVelocity = 0.5 }, "bounce apex"},
		{"gap swallows ring", func(c *HelixConfig) { c.Difficulty.Gap.Min = 6 }, "widest gap"},
		{"certain danger", func(c *HelixConfig) { c.Difficulty.Danger.Ceiling = 1 }, "ceiling"},
		{"empty palette", func(c *HelixConfig) { c.Generation.Palette = nil }, "palette"},
		{"zero gap floor", func(c *HelixConfig) { c.Difficulty.Gap.MinFloor = 0 }, "min_floor"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultHelixConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Errorf("Validate() = %v, expected error mentioning %q", err, tc.want)
			}
		})
	}
}

func TestApplyHelixPreset(t *testing.T) {
	cfg := DefaultHelixConfig()
	ApplyHelixPreset(&cfg, DifficultyHard)
	if !cfg.Difficulty.Enabled || cfg.Difficulty.InitialTier != 5 {
		t.Errorf("hard preset: enabled=%v tier=%d, expected enabled tier 5", cfg.Difficulty.Enabled, cfg.Difficulty.InitialTier)
	}

	ApplyHelixPreset(&cfg, DifficultyFixed)
	if cfg.Difficulty.Enabled {
		t.Error("fixed preset should disable progression")
	}

	before := cfg
	ApplyHelixPreset(&cfg, "")
	if !reflect.DeepEqual(before, cfg) {
		t.Error("empty preset should not change the config")
	}
}

func TestParsePreset(t *testing.T) {
	for _, name := range []string{"", "easy", "normal", "hard", "fixed"} {
		if _, err := ParsePreset(name); err != nil {
			t.Errorf("ParsePreset(%q) failed: %v", name, err)
		}
	}
	if _, err := ParsePreset("nightmare"); err == nil {
		t.Error("ParsePreset should reject unknown names")
	}
}

func TestMarshalRoundTripsThroughLoader(t *testing.T) {
	data, err := Marshal(DefaultHelixConfig())
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	if !strings.Contains(string(data), "bounce_velocity") {
		t.Errorf("marshaled YAML should use yaml tags, got:\n%s", data)
	}
}

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the game file looked up in the user and local directories.
const FileName = "game.yaml"

// Sources reported in GameConfig.Source when no file was read.
const (
	SourceEmbedded = "embedded"
	SourceBuiltin  = "builtin"
)

// Load loads the game file.
// Search order: customPath -> ~/.tactix/game.yaml -> ./configs/game.yaml -> embedded default
//
// Only an explicit customPath reports read and parse errors; unreadable or
// malformed files further down the search order are skipped.
func Load(customPath string) (GameConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return GameConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return GameConfig{}, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		cfg.Source = customPath
		return cfg, nil
	}

	// Try user config directory, then the local configs directory
	for _, path := range []string{userConfigPath(FileName), filepath.Join("configs", FileName)} {
		if path == "" {
			continue
		}
		if data, err := os.ReadFile(path); err == nil {
			if cfg, err := Parse(data); err == nil {
				cfg.Source = path
				return cfg, nil
			}
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultGameYAML)
	if err != nil {
		return DefaultGameConfig(), nil // Fallback to hardcoded if embed fails
	}
	cfg.Source = SourceEmbedded
	return cfg, nil
}

// Parse decodes a game file. Unknown keys are rejected so that typos do not
// silently fall back to defaults. An empty document yields a zero GameConfig.
func Parse(data []byte) (GameConfig, error) {
	var cfg GameConfig

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return GameConfig{}, err
	}
	return cfg, nil
}

// Marshal encodes a game file, e.g. to save the options of a generated matrix.
func Marshal(cfg GameConfig) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tactix", filename)
}

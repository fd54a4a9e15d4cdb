package config

import (
	_ "embed"

	"github.com/vovakirdan/tactix/internal/dilemma"
)

//go:embed defaults/game.yaml
var defaultGameYAML []byte

// DefaultGameConfig returns the configuration used when no file and no
// embedded default can be read.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Mode:   string(dilemma.ModeRandomized),
		Source: SourceBuiltin,
	}
}

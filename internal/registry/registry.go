// Package registry provides a global registry of named game presets.
// Presets register themselves in init() functions, so commands and game
// files can refer to a matrix by id without hardcoding it.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tactix/internal/dilemma"
)

// ErrUnknownPreset is returned by Create for ids nobody registered.
var ErrUnknownPreset = errors.New("unknown preset")

// PresetInfo contains metadata about a registered preset.
type PresetInfo struct {
	ID    string
	Title string
	Mode  dilemma.Mode
}

// Factory returns a fresh builder for a preset. Callers may keep calling
// setters on it; the preset itself is never modified.
type Factory func() dilemma.Builder

type entry struct {
	title   string
	mode    dilemma.Mode
	factory Factory
}

var (
	presets = make(map[string]entry)
	mu      sync.RWMutex
)

// Register adds a preset to the registry.
// Typically called from an init() function.
// Panics if a preset with the same ID is already registered.
func Register(id, title string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := presets[id]; exists {
		panic(fmt.Sprintf("registry: preset %q already registered", id))
	}

	presets[id] = entry{
		title:   title,
		mode:    f().Mode(),
		factory: f,
	}
}

// List returns information about all registered presets, sorted by ID.
func List() []PresetInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]PresetInfo, 0, len(presets))
	for id, e := range presets {
		result = append(result, PresetInfo{
			ID:    id,
			Title: e.title,
			Mode:  e.mode,
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create returns the builder for a preset by its ID.
func Create(id string) (dilemma.Builder, error) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := presets[id]
	if !ok {
		return dilemma.Builder{}, fmt.Errorf("registry: %w %q", ErrUnknownPreset, id)
	}

	return e.factory(), nil
}

// Exists checks if a preset with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := presets[id]
	return ok
}

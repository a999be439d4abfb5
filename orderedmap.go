package ohmylogo

import (
	"sync"
)

// PaletteMap is an insertion-ordered map of palette names to their
// hex color stops. Listings iterate in registration order, which a
// plain map would not preserve.
type PaletteMap struct {
	keys   []string
	values map[string][]string
	mu     sync.RWMutex
}

// NewPaletteMap creates an empty PaletteMap.
func NewPaletteMap() *PaletteMap {
	return &PaletteMap{
		keys:   make([]string, 0),
		values: make(map[string][]string),
	}
}

// Set adds or replaces the stops registered under name.
func (pm *PaletteMap) Set(name string, stops []string) {
	pm.mu.Lock()
	defer pm.mu.Unlock()

	if _, exists := pm.values[name]; !exists {
		pm.keys = append(pm.keys, name)
	}
	pm.values[name] = stops
}

// Get retrieves the stops registered under name.
func (pm *PaletteMap) Get(name string) ([]string, bool) {
	pm.mu.RLock()
	defer pm.mu.RUnlock()

	stops, exists := pm.values[name]
	return stops, exists
}

// Keys returns the names in the order they were registered.
func (pm *PaletteMap) Keys() []string {
	pm.mu.RLock()
	defer pm.mu.RUnlock()

	return append([]string{}, pm.keys...)
}

// Len returns the number of registered palettes.
func (pm *PaletteMap) Len() int {
	pm.mu.RLock()
	defer pm.mu.RUnlock()

	return len(pm.keys)
}

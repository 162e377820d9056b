// Package registry provides a global registry of puzzle packs.
// Packs register themselves in init() functions, allowing the platform
// to discover and load them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-bee/internal/puzzle"
)

// PackInfo contains metadata about a registered pack.
type PackInfo struct {
	ID    string
	Title string
	Order int
}

// Factory loads a pack's puzzle data.
type Factory func() (*puzzle.Set, error)

type entry struct {
	info    PackInfo
	factory Factory
}

var (
	packs = make(map[string]entry)
	mu    sync.RWMutex
)

// Register adds a pack factory to the registry.
// Typically called from an init() function. Order sorts packs for menus.
// Panics if a pack with the same ID is already registered.
func Register(id, title string, order int, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := packs[id]; exists {
		panic(fmt.Sprintf("registry: pack %q already registered", id))
	}

	packs[id] = entry{
		info:    PackInfo{ID: id, Title: title, Order: order},
		factory: f,
	}
}

// List returns information about all registered packs, sorted by order then ID.
func List() []PackInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]PackInfo, 0, len(packs))
	for _, e := range packs {
		result = append(result, e.info)
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Order != result[j].Order {
			return result[i].Order < result[j].Order
		}
		return result[i].ID < result[j].ID
	})

	return result
}

// Load runs the factory of the pack with the given ID.
// Returns an error if the pack is not registered or fails to load.
func Load(id string) (*puzzle.Set, error) {
	mu.RLock()
	e, ok := packs[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown pack %q", id)
	}

	s, err := e.factory()
	if err != nil {
		return nil, fmt.Errorf("registry: loading pack %q: %w", id, err)
	}
	return s, nil
}

// Exists checks if a pack with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := packs[id]
	return ok
}

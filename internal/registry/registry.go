// Package registry provides a global registry of maze carving algorithms.
// Algorithms register themselves in init() functions, allowing the CLI and
// servers to discover them without hardcoded dependencies.
package registry

import (
	"fmt"
	"math/rand"
	"sort"
	"sync"

	"github.com/vovakirdan/mazey/internal/maze"
)

// Kind names a grid topology.
type Kind string

const (
	KindRect  Kind = "rect"
	KindPolar Kind = "circle"
)

// KindOf returns the topology kind of t.
func KindOf(t maze.Topology) Kind {
	if _, ok := t.(*maze.PolarGrid); ok {
		return KindPolar
	}
	return KindRect
}

// Carver carves passages into a fully walled topology starting at start.
// Carvers assume valid input: start in bounds, grid not yet carved.
type Carver func(t maze.Topology, start maze.Coord, rng *rand.Rand)

// AlgorithmInfo contains metadata about a registered algorithm.
type AlgorithmInfo struct {
	ID    string
	Title string
	Kinds []Kind // topologies the algorithm can carve
}

// Supports reports whether the algorithm can carve grids of kind k.
func (a AlgorithmInfo) Supports(k Kind) bool {
	for _, kind := range a.Kinds {
		if kind == k {
			return true
		}
	}
	return false
}

type entry struct {
	info   AlgorithmInfo
	carver Carver
}

var (
	entries = make(map[string]entry)
	mu      sync.RWMutex
)

// Register adds an algorithm to the registry.
// Typically called from an init() function.
// Panics if an algorithm with the same ID is already registered.
func Register(info AlgorithmInfo, c Carver) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[info.ID]; exists {
		panic(fmt.Sprintf("registry: algorithm %q already registered", info.ID))
	}
	if c == nil {
		panic(fmt.Sprintf("registry: algorithm %q has no carver", info.ID))
	}

	entries[info.ID] = entry{info: info, carver: c}
}

// List returns information about all registered algorithms, sorted by ID.
func List() []AlgorithmInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]AlgorithmInfo, 0, len(entries))
	for _, e := range entries {
		result = append(result, e.info)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// ListFor returns the registered algorithms supporting kind k, sorted by ID.
func ListFor(k Kind) []AlgorithmInfo {
	var result []AlgorithmInfo
	for _, info := range List() {
		if info.Supports(k) {
			result = append(result, info)
		}
	}
	return result
}

// Lookup returns the metadata and carver of an algorithm.
// Returns an error if the ID is not registered.
func Lookup(id string) (AlgorithmInfo, Carver, error) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := entries[id]
	if !ok {
		return AlgorithmInfo{}, nil, fmt.Errorf("registry: unknown algorithm %q", id)
	}

	return e.info, e.carver, nil
}

// Exists checks if an algorithm with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[id]
	return ok
}

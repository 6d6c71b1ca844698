// Package builder carves perfect mazes into fully walled grids.
//
// Every algorithm takes an explicit *rand.Rand so a seed reproduces the
// same maze. Algorithms register themselves with the registry package and
// are normally invoked through Build.
package builder

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/mazey/internal/maze"
	"github.com/vovakirdan/mazey/internal/registry"
)

// Algorithm IDs.
const (
	AlgoBinaryTree   = "binary-tree"
	AlgoSidewinder   = "sidewinder"
	AlgoGrowingTree  = "growing-tree"
	AlgoAldousBroder = "aldous-broder"
	AlgoWilson       = "wilson"
)

var (
	ErrUnknownAlgorithm    = errors.New("builder: unknown algorithm")
	ErrUnsupportedTopology = errors.New("builder: algorithm does not support topology")
	ErrStartOutOfBounds    = errors.New("builder: start out of bounds")
)

func init() {
	rectOnly := []registry.Kind{registry.KindRect}
	allKinds := []registry.Kind{registry.KindRect, registry.KindPolar}

	registry.Register(registry.AlgorithmInfo{
		ID:    AlgoBinaryTree,
		Title: "Binary tree",
		Kinds: rectOnly,
	}, func(t maze.Topology, _ maze.Coord, rng *rand.Rand) {
		BinaryTree(t.(*maze.Grid), rng)
	})

	registry.Register(registry.AlgorithmInfo{
		ID:    AlgoSidewinder,
		Title: "Sidewinder",
		Kinds: rectOnly,
	}, func(t maze.Topology, _ maze.Coord, rng *rand.Rand) {
		Sidewinder(t.(*maze.Grid), rng)
	})

	registry.Register(registry.AlgorithmInfo{
		ID:    AlgoGrowingTree,
		Title: "Randomized growing tree",
		Kinds: allKinds,
	}, GrowingTree)

	registry.Register(registry.AlgorithmInfo{
		ID:    AlgoAldousBroder,
		Title: "Aldous-Broder",
		Kinds: allKinds,
	}, AldousBroder)

	registry.Register(registry.AlgorithmInfo{
		ID:    AlgoWilson,
		Title: "Wilson's algorithm",
		Kinds: allKinds,
	}, Wilson)
}

// Build carves t with the named algorithm, starting at start.
// t must be fully walled. A nil rng is replaced by a time-seeded source.
func Build(t maze.Topology, algo string, start maze.Coord, rng *rand.Rand) error {
	info, carve, err := registry.Lookup(algo)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrUnknownAlgorithm, algo)
	}

	kind := registry.KindOf(t)
	if !info.Supports(kind) {
		return fmt.Errorf("%w: %s cannot carve %s grids", ErrUnsupportedTopology, algo, kind)
	}

	if !t.InBounds(start) {
		return fmt.Errorf("%w: %v", ErrStartOutOfBounds, start)
	}

	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	carve(t, start, rng)
	return nil
}

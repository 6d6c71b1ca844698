package builder

import "github.com/vovakirdan/mazey/internal/maze"

// coordSet is a set of coordinates with O(1) removal and uniform random
// access by index. Iteration order depends only on the insertion order and
// the sequence of removals, so seeded runs stay reproducible.
type coordSet struct {
	items []maze.Coord
	index map[maze.Coord]int
}

func newCoordSet(coords []maze.Coord) *coordSet {
	s := &coordSet{
		items: make([]maze.Coord, len(coords)),
		index: make(map[maze.Coord]int, len(coords)),
	}
	copy(s.items, coords)
	for i, c := range s.items {
		s.index[c] = i
	}
	return s
}

func (s *coordSet) Len() int {
	return len(s.items)
}

func (s *coordSet) Has(c maze.Coord) bool {
	_, ok := s.index[c]
	return ok
}

func (s *coordSet) At(i int) maze.Coord {
	return s.items[i]
}

// Remove deletes c by swapping the last item into its place.
// Removing an absent coordinate is a no-op.
func (s *coordSet) Remove(c maze.Coord) {
	i, ok := s.index[c]
	if !ok {
		return
	}
	last := len(s.items) - 1
	if i != last {
		moved := s.items[last]
		s.items[i] = moved
		s.index[moved] = i
	}
	s.items = s.items[:last]
	delete(s.index, c)
}

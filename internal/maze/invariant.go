package maze

import "fmt"

// InvariantError reports a broken internal invariant: an already open wall
// being opened, a BFS level inconsistency, a missing predecessor on a
// solved path. These are logic bugs. They are raised with panic and are not
// meant to be recovered by callers.
type InvariantError struct {
	Msg string
}

func (e *InvariantError) Error() string {
	return "maze: invariant violated: " + e.Msg
}

// Invariantf panics with an *InvariantError built from the format.
func Invariantf(format string, args ...any) {
	panic(&InvariantError{Msg: fmt.Sprintf(format, args...)})
}

// Package solver implements exhaustive search over puzzle configurations.
//
// Two engines are provided. DepthFirstSolver walks one branch at a time
// and returns the first solution it reaches under the puzzle's extension
// order. BreadthFirstSolver explores configurations in move order and
// returns a shortest solution. Both dedupe configurations by Key so a
// configuration is expanded at most once per call.
package solver

import "errors"

var (
	// ErrNoSolution reports an exhausted search space with no solved
	// configuration. It is the normal outcome for unsolvable puzzles.
	ErrNoSolution = errors.New("no solution")

	// ErrBudget reports a search stopped by MaxDepth or MaxNodes before
	// it could prove the puzzle solvable or unsolvable.
	ErrBudget = errors.New("search budget exhausted")
)

// Options bound a search. Zero values mean unbounded.
type Options struct {
	// MaxDepth caps the length of any solution chain, counted in moves
	// from the root. Configurations at the cap are still checked for a
	// solution but never expanded.
	MaxDepth int
	// MaxNodes caps how many configurations the engine may examine.
	MaxNodes int
}

// DefaultOptions returns an unbounded search configuration.
func DefaultOptions() Options { return Options{} }

// WithMaxDepth returns a copy of o with the depth cap set.
func (o Options) WithMaxDepth(d int) Options {
	o.MaxDepth = d
	return o
}

// WithMaxNodes returns a copy of o with the node cap set.
func (o Options) WithMaxNodes(n int) Options {
	o.MaxNodes = n
	return o
}

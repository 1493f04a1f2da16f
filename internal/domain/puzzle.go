// Package domain holds the puzzle contract and the solution-tree model
// shared by every solver and variant.
package domain

import "fmt"

// Puzzle is one immutable configuration of a puzzle instance. Variants
// implement it to become solvable by the engines in internal/solver.
//
// Implementations must be value-like: Extensions returns freshly built
// configurations and never mutates the receiver.
type Puzzle interface {
	fmt.Stringer

	// Key returns a deterministic canonical identifier for this
	// configuration. Solvers treat key equality as state equality when
	// deduplicating, so keys must not collide across distinct states
	// reachable in one solve.
	Key() string

	// Solved reports whether this configuration satisfies the goal.
	Solved() bool

	// FailFast reports whether this configuration is provably unsolvable
	// by a variant-specific sufficient condition. False promises nothing.
	// Variants without such a condition return false unconditionally.
	FailFast() bool

	// Extensions returns every configuration exactly one legal move away,
	// in a fixed order. The order is meaningful: solvers break ties by it.
	// The result is finite even when the full state graph is not.
	Extensions() []Puzzle

	// Equal reports whether other is the same concrete variant in the
	// same state.
	Equal(other Puzzle) bool
}

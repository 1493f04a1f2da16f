// Package hint suggests next moves by searching for a shortest solution
// from the current configuration.
package hint

import (
	"context"
	"errors"
	"fmt"

	"svw.info/puzzler/internal/domain"
	"svw.info/puzzler/internal/solver"
)

// ShortestStep is a Hinter that runs a bounded breadth-first search and
// reports the first move of the shortest solution it finds.
type ShortestStep struct {
	opts solver.Options
}

func NewShortestStep(opts solver.Options) *ShortestStep { return &ShortestStep{opts: opts} }

// Hint returns the suggested next configuration. The found flag is false
// when no solution exists from here or the search budget ran out.
func (h *ShortestStep) Hint(ctx context.Context, p domain.Puzzle) (domain.Hint, bool, error) {
	node, _, err := solver.NewBreadthFirstSolver(h.opts).Solve(ctx, p)
	switch {
	case errors.Is(err, solver.ErrNoSolution):
		return domain.Hint{Message: "no solution from this configuration"}, false, nil
	case errors.Is(err, solver.ErrBudget):
		return domain.Hint{Message: "no solution within the hint budget"}, false, nil
	case err != nil:
		return domain.Hint{}, false, err
	}
	chain := node.Chain()
	if len(chain) < 2 {
		return domain.Hint{Message: "already solved"}, true, nil
	}
	remaining := len(chain) - 1
	return domain.Hint{
		Message:   fmt.Sprintf("solvable in %d moves", remaining),
		Next:      chain[1].Puzzle.String(),
		Remaining: remaining,
	}, true, nil
}

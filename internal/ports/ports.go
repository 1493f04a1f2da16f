package ports

import (
	"context"
	"time"

	"svw.info/puzzler/internal/domain"
)

// Stats captures performance characteristics of an operation.
type Stats struct {
	Nodes    int
	Depth    int
	Duration time.Duration
}

// Solver searches for a solution tree rooted at the given configuration.
type Solver interface {
	Solve(ctx context.Context, p domain.Puzzle) (*domain.Node, Stats, error)
}

// Scrambler creates new solvable puzzles at a target difficulty.
type Scrambler interface {
	Scramble(ctx context.Context, kind domain.Kind, seed int64, difficulty domain.Difficulty) (domain.Puzzle, Stats, error)
}

// Hinter returns the next configuration along a shortest solution.
type Hinter interface {
	Hint(ctx context.Context, p domain.Puzzle) (domain.Hint, bool, error)
}

// Store persists and retrieves puzzle definitions as JSON.
type Store interface {
	Save(ctx context.Context, p *domain.SavedPuzzle) error
	Load(ctx context.Context, id string) (*domain.SavedPuzzle, error)
	List(ctx context.Context) ([]domain.SavedPuzzleMeta, error)
	Delete(ctx context.Context, id string) error
}

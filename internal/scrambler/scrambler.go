// Package scrambler creates solvable starting configurations by walking
// backward from a solved state, so every scramble is solvable by
// retracing the walk.
package scrambler

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"svw.info/puzzler/internal/dictionary"
	"svw.info/puzzler/internal/domain"
	"svw.info/puzzler/internal/ports"
)

// WalkScrambler builds puzzles of any kind from a seeded random walk.
type WalkScrambler struct {
	words dictionary.Set
}

// NewWalkScrambler wires a scrambler over the given word set, used for
// word ladder scrambles.
func NewWalkScrambler(words dictionary.Set) *WalkScrambler {
	return &WalkScrambler{words: words}
}

// walkLength maps difficulty to the number of reverse moves applied.
func walkLength(d domain.Difficulty) int {
	switch d {
	case domain.Easy:
		return 4
	case domain.Medium:
		return 8
	case domain.Hard:
		return 14
	default:
		return 22 // Expert
	}
}

func pegDims(d domain.Difficulty) (int, int) {
	switch d {
	case domain.Easy:
		return 4, 4
	case domain.Medium, domain.Hard:
		return 5, 5
	default:
		return 7, 7 // Expert
	}
}

func tileDims(d domain.Difficulty) (int, int) {
	switch d {
	case domain.Easy:
		return 2, 3
	case domain.Medium, domain.Hard:
		return 3, 3
	default:
		return 4, 4 // Expert
	}
}

func wordLength(d domain.Difficulty) int {
	switch d {
	case domain.Easy, domain.Medium:
		return 3
	default:
		return 4
	}
}

// Scramble creates a new solvable puzzle of the given kind. The same
// seed, kind and difficulty always produce the same puzzle.
func (s *WalkScrambler) Scramble(ctx context.Context, kind domain.Kind, seed int64, diff domain.Difficulty) (domain.Puzzle, ports.Stats, error) {
	start := time.Now()
	rng := rand.New(rand.NewSource(seed))
	steps := walkLength(diff)

	var (
		p     domain.Puzzle
		moves int
		err   error
	)
	switch kind {
	case domain.PegSolitaire:
		p, moves, err = s.scramblePegs(ctx, rng, diff, steps)
	case domain.TileGrid:
		p, moves, err = s.scrambleTiles(ctx, rng, diff, steps)
	case domain.WordLadder:
		p, moves, err = s.scrambleWords(ctx, rng, diff, steps)
	default:
		err = fmt.Errorf("scramble: unknown puzzle kind %d", kind)
	}
	if err != nil {
		return nil, ports.Stats{Duration: time.Since(start)}, err
	}
	return p, ports.Stats{Nodes: moves, Depth: moves, Duration: time.Since(start)}, nil
}

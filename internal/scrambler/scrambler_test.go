package scrambler

import (
	"context"
	"fmt"
	"testing"
	"time"

	"svw.info/puzzler/internal/dictionary"
	"svw.info/puzzler/internal/domain"
	"svw.info/puzzler/internal/solver"
)

func TestScrambleAllKindsAndDifficulties(t *testing.T) {
	s := NewWalkScrambler(dictionary.Default())
	kinds := []domain.Kind{domain.PegSolitaire, domain.TileGrid, domain.WordLadder}
	diffs := []struct {
		name string
		d    domain.Difficulty
	}{
		{"easy", domain.Easy},
		{"medium", domain.Medium},
		{"hard", domain.Hard},
		{"expert", domain.Expert},
	}

	for _, kind := range kinds {
		for _, tc := range diffs {
			t.Run(fmt.Sprintf("%s/%s", kind, tc.name), func(t *testing.T) {
				ctx, cancel := context.WithTimeout(context.Background(), time.Second)
				defer cancel()

				p, st, err := s.Scramble(ctx, kind, 12345, tc.d)
				if err != nil {
					t.Fatalf("Scramble failed: %v", err)
				}
				if p.Solved() {
					t.Fatal("scramble came out already solved")
				}
				if p.FailFast() {
					t.Fatal("scramble came out provably unsolvable")
				}
				if st.Nodes < 1 {
					t.Fatalf("no moves recorded: %+v", st)
				}
			})
		}
	}
}

func TestScrambleDeterministicPerSeed(t *testing.T) {
	s := NewWalkScrambler(dictionary.Default())
	for _, kind := range []domain.Kind{domain.PegSolitaire, domain.TileGrid, domain.WordLadder} {
		a, _, err := s.Scramble(context.Background(), kind, 99, domain.Medium)
		if err != nil {
			t.Fatalf("%s: %v", kind, err)
		}
		b, _, err := s.Scramble(context.Background(), kind, 99, domain.Medium)
		if err != nil {
			t.Fatalf("%s: %v", kind, err)
		}
		if !a.Equal(b) {
			t.Fatalf("%s: same seed produced different puzzles:\n%s\n%s", kind, a, b)
		}
	}
}

func TestScrambleRejectsUnknownKind(t *testing.T) {
	s := NewWalkScrambler(dictionary.Default())
	if _, _, err := s.Scramble(context.Background(), domain.Kind(42), 1, domain.Easy); err == nil {
		t.Fatal("want error for unknown kind")
	}
}

func TestScrambledPuzzlesAreSolvable(t *testing.T) {
	s := NewWalkScrambler(dictionary.Default())
	cases := []struct {
		kind domain.Kind
		diff domain.Difficulty
		via  domain.Method
	}{
		// Peg jumps only ever remove pegs, so depth-first exhausts fast.
		{domain.PegSolitaire, domain.Easy, domain.DepthFirst},
		{domain.PegSolitaire, domain.Medium, domain.DepthFirst},
		{domain.TileGrid, domain.Easy, domain.BreadthFirst},
		{domain.TileGrid, domain.Medium, domain.BreadthFirst},
		{domain.WordLadder, domain.Easy, domain.BreadthFirst},
		{domain.WordLadder, domain.Hard, domain.BreadthFirst},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("%s/%s", tc.kind, tc.diff), func(t *testing.T) {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			p, _, err := s.Scramble(ctx, tc.kind, 7, tc.diff)
			if err != nil {
				t.Fatalf("Scramble failed: %v", err)
			}
			depth := 0
			switch tc.via {
			case domain.DepthFirst:
				n, st, err := solver.NewDepthFirstSolver(solver.DefaultOptions()).Solve(ctx, p)
				if err != nil {
					t.Fatalf("solve failed: %v (nodes=%d)", err, st.Nodes)
				}
				depth = n.Depth()
			default:
				n, st, err := solver.NewBreadthFirstSolver(solver.DefaultOptions()).Solve(ctx, p)
				if err != nil {
					t.Fatalf("solve failed: %v (nodes=%d)", err, st.Nodes)
				}
				depth = n.Depth()
			}
			if depth < 1 {
				t.Fatal("solution chain is empty")
			}
		})
	}
}

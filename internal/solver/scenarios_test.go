package solver_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"svw.info/puzzler/internal/dictionary"
	"svw.info/puzzler/internal/domain"
	"svw.info/puzzler/internal/ports"
	"svw.info/puzzler/internal/puzzles"
	"svw.info/puzzler/internal/solver"
)

func chainOf(n *domain.Node) []string {
	var out []string
	for _, link := range n.Chain() {
		out = append(out, link.Puzzle.Key())
	}
	return out
}

func TestPegRowBothEnginesAgree(t *testing.T) {
	p, err := puzzles.NewPegSolitaire([]string{"**.*"})
	if err != nil {
		t.Fatal(err)
	}
	want := "**.* ..** .*.."

	dn, dst, err := solver.NewDepthFirstSolver(solver.DefaultOptions()).Solve(context.Background(), p)
	if err != nil {
		t.Fatalf("depth-first: %v", err)
	}
	if got := strings.Join(chainOf(dn), " "); got != want {
		t.Fatalf("depth-first chain = %q, want %q", got, want)
	}
	if dst.Depth != 2 {
		t.Fatalf("depth-first Depth = %d, want 2", dst.Depth)
	}

	bn, bst, err := solver.NewBreadthFirstSolver(solver.DefaultOptions()).Solve(context.Background(), p)
	if err != nil {
		t.Fatalf("breadth-first: %v", err)
	}
	if got := strings.Join(chainOf(bn), " "); got != want {
		t.Fatalf("breadth-first chain = %q, want %q", got, want)
	}
	if bst.Depth != 2 {
		t.Fatalf("breadth-first Depth = %d, want 2", bst.Depth)
	}
	if !dn.Equal(bn) {
		t.Fatal("single-path puzzle should give identical trees")
	}
}

func TestSolvedTileRootNeedsNoMoves(t *testing.T) {
	p, err := puzzles.NewTileGrid([]string{"12", "3*"}, []string{"12", "3*"})
	if err != nil {
		t.Fatal(err)
	}
	for name, s := range map[string]ports.Solver{
		"depth-first":   solver.NewDepthFirstSolver(solver.DefaultOptions()),
		"breadth-first": solver.NewBreadthFirstSolver(solver.DefaultOptions()),
	} {
		n, st, err := s.Solve(context.Background(), p)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if len(n.Children) != 0 || st.Depth != 0 || st.Nodes != 1 {
			t.Fatalf("%s: want a bare root, got children=%d depth=%d nodes=%d",
				name, len(n.Children), st.Depth, st.Nodes)
		}
	}
}

func TestTileGridShortestIsThreeMoves(t *testing.T) {
	p, err := puzzles.NewTileGrid([]string{"*23", "145"}, []string{"123", "45*"})
	if err != nil {
		t.Fatal(err)
	}

	bn, bst, err := solver.NewBreadthFirstSolver(solver.DefaultOptions()).Solve(context.Background(), p)
	if err != nil {
		t.Fatalf("breadth-first: %v", err)
	}
	wantChain := []string{"*23\n145", "123\n*45", "123\n4*5", "123\n45*"}
	got := chainOf(bn)
	if len(got) != len(wantChain) {
		t.Fatalf("breadth-first chain length = %d, want %d", len(got), len(wantChain))
	}
	for i := range wantChain {
		if got[i] != wantChain[i] {
			t.Fatalf("breadth-first chain[%d] = %q, want %q", i, got[i], wantChain[i])
		}
	}
	if bst.Depth != 3 {
		t.Fatalf("breadth-first Depth = %d, want 3", bst.Depth)
	}

	dn, dst, err := solver.NewDepthFirstSolver(solver.DefaultOptions()).Solve(context.Background(), p)
	if err != nil {
		t.Fatalf("depth-first: %v", err)
	}
	chain := dn.Chain()
	last := chain[len(chain)-1]
	if !last.Puzzle.Solved() {
		t.Fatal("depth-first chain does not end at a solution")
	}
	if dst.Depth < bst.Depth {
		t.Fatalf("depth-first found %d moves, shorter than breadth-first's %d", dst.Depth, bst.Depth)
	}

	// Every step along the chain must be a legal move from its parent.
	for i := 1; i < len(chain); i++ {
		legal := false
		for _, ext := range chain[i-1].Puzzle.Extensions() {
			if ext.Key() == chain[i].Puzzle.Key() {
				legal = true
				break
			}
		}
		if !legal {
			t.Fatalf("chain step %d is not an extension of its parent", i)
		}
	}
}

func TestWordLadderShortestMatchesOracle(t *testing.T) {
	words := dictionary.New("cat", "cot", "cog", "dog", "dot")
	p, err := puzzles.NewWordLadder("cat", "dog", words)
	if err != nil {
		t.Fatal(err)
	}

	want := "cat cot dot dog"
	bn, bst, err := solver.NewBreadthFirstSolver(solver.DefaultOptions()).Solve(context.Background(), p)
	if err != nil {
		t.Fatalf("breadth-first: %v", err)
	}
	if got := strings.Join(chainOf(bn), " "); got != want {
		t.Fatalf("breadth-first chain = %q, want %q", got, want)
	}
	if bst.Depth != 3 {
		t.Fatalf("breadth-first Depth = %d, want 3", bst.Depth)
	}

	dn, _, err := solver.NewDepthFirstSolver(solver.DefaultOptions()).Solve(context.Background(), p)
	if err != nil {
		t.Fatalf("depth-first: %v", err)
	}
	if got := strings.Join(chainOf(dn), " "); got != want {
		t.Fatalf("depth-first chain = %q, want %q", got, want)
	}
}

func TestUnsolvableLadderIsNoSolution(t *testing.T) {
	p, err := puzzles.NewWordLadder("a", "c", dictionary.New("b"))
	if err != nil {
		t.Fatal(err)
	}
	if _, _, err := solver.NewDepthFirstSolver(solver.DefaultOptions()).Solve(context.Background(), p); !errors.Is(err, solver.ErrNoSolution) {
		t.Fatalf("depth-first: err = %v, want ErrNoSolution", err)
	}
	if _, _, err := solver.NewBreadthFirstSolver(solver.DefaultOptions()).Solve(context.Background(), p); !errors.Is(err, solver.ErrNoSolution) {
		t.Fatalf("breadth-first: err = %v, want ErrNoSolution", err)
	}
}

func TestMismatchedTilesFailFastImmediately(t *testing.T) {
	p, err := puzzles.NewTileGrid([]string{"12", "3*"}, []string{"12", "4*"})
	if err != nil {
		t.Fatal(err)
	}
	_, st, err := solver.NewDepthFirstSolver(solver.DefaultOptions()).Solve(context.Background(), p)
	if !errors.Is(err, solver.ErrNoSolution) {
		t.Fatalf("err = %v, want ErrNoSolution", err)
	}
	if st.Nodes != 1 {
		t.Fatalf("examined %d configurations, want 1 (root pruned)", st.Nodes)
	}
}

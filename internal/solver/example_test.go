package solver_test

import (
	"context"
	"fmt"

	"svw.info/puzzler/internal/dictionary"
	"svw.info/puzzler/internal/puzzles"
	"svw.info/puzzler/internal/solver"
)

func ExampleDepthFirstSolver_Solve() {
	ladder, err := puzzles.NewWordLadder("b", "c", dictionary.New("c"))
	if err != nil {
		fmt.Println(err)
		return
	}
	node, _, err := solver.NewDepthFirstSolver(solver.DefaultOptions()).Solve(context.Background(), ladder)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(node)
	// Output:
	// b --> c
	//
	// c --> c
}

func ExampleBreadthFirstSolver_Solve() {
	grid, err := puzzles.NewPegSolitaire([]string{"**.*"})
	if err != nil {
		fmt.Println(err)
		return
	}
	node, _, err := solver.NewBreadthFirstSolver(solver.DefaultOptions()).Solve(context.Background(), grid)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(node)
	// Output:
	// **.*
	// _____
	//
	// ..**
	// _____
	//
	// .*..
	// _____
}

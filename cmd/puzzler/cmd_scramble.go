package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"svw.info/puzzler/internal/dictionary"
	"svw.info/puzzler/internal/domain"
	"svw.info/puzzler/internal/puzzles"
	"svw.info/puzzler/internal/scrambler"
	"svw.info/puzzler/internal/solver"
)

var (
	scrambleKind  string
	scrambleSeed  int64
	scrambleDiff  string
	scrambleJSON  bool
	scrambleSolve bool
)

var scrambleCmd = &cobra.Command{
	Use:   "scramble",
	Short: "Generate a solvable puzzle by walking backward from a solved state",
	RunE:  runScramble,
}

func init() {
	scrambleCmd.Flags().StringVarP(&scrambleKind, "kind", "k", "pegs", "puzzle kind: pegs|tiles|words")
	scrambleCmd.Flags().Int64Var(&scrambleSeed, "seed", 0, "random seed, 0 picks one")
	scrambleCmd.Flags().StringVarP(&scrambleDiff, "difficulty", "d", "medium", "easy|medium|hard|expert")
	scrambleCmd.Flags().BoolVar(&scrambleJSON, "json", false, "print the puzzle as JSON instead of a rendering")
	scrambleCmd.Flags().BoolVar(&scrambleSolve, "solve", false, "also print a shortest solution")
	rootCmd.AddCommand(scrambleCmd)
}

func runScramble(cmd *cobra.Command, args []string) error {
	kind, err := domain.ParseKind(scrambleKind)
	if err != nil {
		return err
	}
	diff, err := domain.ParseDifficulty(scrambleDiff)
	if err != nil {
		return err
	}
	seed := scrambleSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	sc := scrambler.NewWalkScrambler(dictionary.Default())
	p, _, err := sc.Scramble(cmd.Context(), kind, seed, diff)
	if err != nil {
		return err
	}

	if scrambleJSON {
		_, def, err := puzzles.Encode(p)
		if err != nil {
			return err
		}
		out := struct {
			Kind       string          `json:"kind"`
			Seed       int64           `json:"seed"`
			Difficulty string          `json:"difficulty"`
			Definition json.RawMessage `json:"definition"`
		}{kind.String(), seed, diff.String(), def}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(out); err != nil {
			return err
		}
	} else {
		fmt.Println(p.String())
		fmt.Printf("\nseed %d, difficulty %s\n", seed, diff.String())
	}

	if scrambleSolve {
		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()
		node, st, err := solver.NewBreadthFirstSolver(solver.DefaultOptions()).Solve(ctx, p)
		if err != nil {
			return err
		}
		fmt.Println()
		for _, n := range node.Chain() {
			fmt.Println(n.Puzzle.String())
			fmt.Println()
		}
		fmt.Printf("shortest solution has %d moves, %d configurations examined in %s\n",
			st.Depth, st.Nodes, st.Duration.Round(time.Millisecond))
	}
	return nil
}

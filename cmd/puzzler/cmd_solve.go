package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"svw.info/puzzler/internal/domain"
	"svw.info/puzzler/internal/ports"
	"svw.info/puzzler/internal/puzzles"
	"svw.info/puzzler/internal/solver"
)

var (
	solveMethod   string
	solveFile     string
	solveMaxDepth int
	solveMaxNodes int
	solveTimeout  time.Duration
)

var solveCmd = &cobra.Command{
	Use:   "solve [preset]",
	Short: "Search a puzzle and print every configuration from start to solution",
	Long: `Searches a puzzle and prints the solution chain, one rendered
configuration per block, from the starting position to the solved one.

Puzzles come from a named preset or from a JSON file of the shape
{"kind": "pegs|tiles|words", "definition": {...}}.

Presets:
  ` + strings.Join(puzzles.PresetNames(), "\n  "),
	Args: cobra.MaximumNArgs(1),
	RunE: runSolve,
}

func init() {
	solveCmd.Flags().StringVarP(&solveMethod, "method", "m", "bfs", "search method: bfs (shortest) or dfs (first found)")
	solveCmd.Flags().StringVarP(&solveFile, "file", "f", "", "JSON puzzle file")
	solveCmd.Flags().IntVar(&solveMaxDepth, "max-depth", 0, "cap solution length in moves, 0 for unbounded")
	solveCmd.Flags().IntVar(&solveMaxNodes, "max-nodes", 0, "cap examined configurations, 0 for unbounded")
	solveCmd.Flags().DurationVar(&solveTimeout, "timeout", 30*time.Second, "give up after this long")
	rootCmd.AddCommand(solveCmd)
}

func loadPuzzle(args []string) (domain.Puzzle, error) {
	switch {
	case solveFile != "":
		data, err := os.ReadFile(solveFile)
		if err != nil {
			return nil, err
		}
		var rec struct {
			Kind       string          `json:"kind"`
			Definition json.RawMessage `json:"definition"`
		}
		if err := json.Unmarshal(data, &rec); err != nil {
			return nil, fmt.Errorf("parse %s: %w", solveFile, err)
		}
		kind, err := domain.ParseKind(rec.Kind)
		if err != nil {
			return nil, err
		}
		return puzzles.Decode(kind, rec.Definition)
	case len(args) == 1:
		return puzzles.Preset(args[0])
	}
	return nil, errors.New("name a preset or pass --file (see --help for the preset list)")
}

func newSolver(method string, opts solver.Options) ports.Solver {
	if m, err := domain.ParseMethod(method); err == nil && m == domain.DepthFirst {
		return solver.NewDepthFirstSolver(opts)
	}
	return solver.NewBreadthFirstSolver(opts)
}

func runSolve(cmd *cobra.Command, args []string) error {
	p, err := loadPuzzle(args)
	if err != nil {
		return err
	}
	opts := solver.DefaultOptions().WithMaxDepth(solveMaxDepth).WithMaxNodes(solveMaxNodes)
	s := newSolver(solveMethod, opts)

	ctx, cancel := context.WithTimeout(cmd.Context(), solveTimeout)
	defer cancel()

	node, st, err := s.Solve(ctx, p)
	switch {
	case errors.Is(err, solver.ErrNoSolution):
		fmt.Printf("no solution, %d configurations examined in %s\n",
			st.Nodes, st.Duration.Round(time.Millisecond))
		return nil
	case err != nil:
		return err
	}

	for _, n := range node.Chain() {
		fmt.Println(n.Puzzle.String())
		fmt.Println()
	}
	fmt.Printf("solved in %d moves, %d configurations examined in %s\n",
		st.Depth, st.Nodes, st.Duration.Round(time.Millisecond))
	return nil
}

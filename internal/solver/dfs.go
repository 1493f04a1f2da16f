package solver

import (
	"context"
	"errors"
	"fmt"
	"time"

	"svw.info/puzzler/internal/domain"
	"svw.info/puzzler/internal/ports"
)

// DepthFirstSolver returns the first solution reachable under the puzzle's
// extension order. It runs on an explicit work stack rather than recursion,
// so chain length is bounded by memory, not goroutine stack space.
type DepthFirstSolver struct {
	opts Options
}

func NewDepthFirstSolver(opts Options) *DepthFirstSolver {
	return &DepthFirstSolver{opts: opts}
}

// frame is one partially expanded configuration on the work stack.
type frame struct {
	puzzle domain.Puzzle
	exts   []domain.Puzzle
	next   int
}

func (s *DepthFirstSolver) Solve(ctx context.Context, p domain.Puzzle) (*domain.Node, ports.Stats, error) {
	start := time.Now()
	if p == nil {
		return nil, ports.Stats{}, errors.New("depth-first: nil puzzle")
	}
	seen := make(map[string]struct{})
	var stack []frame
	nodes, maxDepth := 0, 0
	limited := false

	stats := func(depth int) ports.Stats {
		return ports.Stats{Nodes: nodes, Depth: depth, Duration: time.Since(start)}
	}

	// The root key stays out of seen. Only extensions are marked, so a
	// cycle back to the starting configuration costs one revisit at most.
	current := p
search:
	for {
		if err := ctx.Err(); err != nil {
			return nil, stats(maxDepth), err
		}
		if s.opts.MaxNodes > 0 && nodes >= s.opts.MaxNodes {
			return nil, stats(maxDepth), fmt.Errorf("depth-first: %w: over %d configurations", ErrBudget, s.opts.MaxNodes)
		}
		nodes++
		if current.Solved() {
			return chain(stack, current), stats(len(stack)), nil
		}
		switch {
		case current.FailFast():
			// dead branch, leave unexpanded
		case s.opts.MaxDepth > 0 && len(stack) >= s.opts.MaxDepth:
			limited = true
		default:
			stack = append(stack, frame{puzzle: current, exts: current.Extensions()})
			if len(stack) > maxDepth {
				maxDepth = len(stack)
			}
		}
		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			for top.next < len(top.exts) {
				ext := top.exts[top.next]
				top.next++
				key := ext.Key()
				if _, dup := seen[key]; dup {
					continue
				}
				seen[key] = struct{}{}
				current = ext
				continue search
			}
			stack = stack[:len(stack)-1]
		}
		break
	}
	if limited {
		return nil, stats(maxDepth), fmt.Errorf("depth-first: %w: depth limit %d", ErrBudget, s.opts.MaxDepth)
	}
	return nil, stats(maxDepth), ErrNoSolution
}

// chain links the stacked path and the solved leaf into a root-to-solution
// line of nodes with parent pointers wired for upward walks.
func chain(path []frame, leaf domain.Puzzle) *domain.Node {
	node := domain.NewNode(leaf)
	for i := len(path) - 1; i >= 0; i-- {
		parent := domain.NewNode(path[i].puzzle, node)
		node.Parent = parent
		node = parent
	}
	return node
}

package solver

import (
	"context"
	"errors"
	"fmt"
	"time"

	"svw.info/puzzler/internal/domain"
	"svw.info/puzzler/internal/ports"
)

// BreadthFirstSolver explores configurations in move order, so the chain it
// returns is never longer than any other solution of the same puzzle.
type BreadthFirstSolver struct {
	opts Options
}

func NewBreadthFirstSolver(opts Options) *BreadthFirstSolver {
	return &BreadthFirstSolver{opts: opts}
}

// entry pairs a frontier node with its distance from the root.
type entry struct {
	node  *domain.Node
	depth int
}

func (s *BreadthFirstSolver) Solve(ctx context.Context, p domain.Puzzle) (*domain.Node, ports.Stats, error) {
	start := time.Now()
	if p == nil {
		return nil, ports.Stats{}, errors.New("breadth-first: nil puzzle")
	}
	seen := map[string]struct{}{p.Key(): {}}
	root := domain.NewNode(p)
	materialize(root)
	queue := []entry{{node: root}}
	nodes, depth := 0, 0
	limited := false

	stats := func() ports.Stats {
		return ports.Stats{Nodes: nodes, Depth: depth, Duration: time.Since(start)}
	}

	for head := 0; head < len(queue); head++ {
		if err := ctx.Err(); err != nil {
			return nil, stats(), err
		}
		if s.opts.MaxNodes > 0 && nodes >= s.opts.MaxNodes {
			return nil, stats(), fmt.Errorf("breadth-first: %w: over %d configurations", ErrBudget, s.opts.MaxNodes)
		}
		cur := queue[head]
		nodes++
		depth = cur.depth
		if cur.node.Puzzle.Solved() {
			return rebuild(cur.node), stats(), nil
		}
		if cur.node.Puzzle.FailFast() {
			continue
		}
		if s.opts.MaxDepth > 0 && cur.depth >= s.opts.MaxDepth {
			for _, child := range cur.node.Children {
				if _, dup := seen[child.Puzzle.Key()]; !dup {
					limited = true
					break
				}
			}
			continue
		}
		for _, child := range cur.node.Children {
			key := child.Puzzle.Key()
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			materialize(child)
			queue = append(queue, entry{node: child, depth: cur.depth + 1})
		}
	}
	if limited {
		return nil, stats(), fmt.Errorf("breadth-first: %w: depth limit %d", ErrBudget, s.opts.MaxDepth)
	}
	return nil, stats(), ErrNoSolution
}

// materialize attaches one child node per extension. Children are created
// for every extension, visited or not; rebuild trims the losing branches.
func materialize(n *domain.Node) {
	for _, ext := range n.Puzzle.Extensions() {
		child := domain.NewNode(ext)
		child.Parent = n
		n.Children = append(n.Children, child)
	}
}

// rebuild walks parent links from the solved node back to the root,
// narrowing each ancestor's children to the single winning branch.
func rebuild(found *domain.Node) *domain.Node {
	found.Children = nil
	node := found
	for node.Parent != nil {
		node.Parent.Children = []*domain.Node{node}
		node = node.Parent
	}
	return node
}

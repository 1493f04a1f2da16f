package domain

import "strings"

// Node ties a configuration into a solution tree. Children are owned by
// their parent; Parent is a back-reference used only to walk a discovered
// path back to the root, never for ownership.
type Node struct {
	Puzzle   Puzzle
	Children []*Node
	Parent   *Node
}

// NewNode wraps p in a node with a copy of children and no parent.
func NewNode(p Puzzle, children ...*Node) *Node {
	n := &Node{Puzzle: p}
	if len(children) > 0 {
		n.Children = make([]*Node, len(children))
		copy(n.Children, children)
	}
	return n
}

// Equal reports whether both nodes wrap equal configurations and carry
// equal child sets, compared as unordered collections. Parents are ignored.
func (n *Node) Equal(other *Node) bool {
	if n == nil || other == nil {
		return n == other
	}
	if !n.Puzzle.Equal(other.Puzzle) {
		return false
	}
	return containsAll(n.Children, other.Children) && containsAll(other.Children, n.Children)
}

// containsAll reports whether every node in want has an equal node in have.
func containsAll(have, want []*Node) bool {
	for _, w := range want {
		found := false
		for _, h := range have {
			if h.Equal(w) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// Chain flattens a linear solution tree into the node sequence from n to
// the final configuration, following the first child at every step.
func (n *Node) Chain() []*Node {
	var out []*Node
	for cur := n; cur != nil; {
		out = append(out, cur)
		if len(cur.Children) == 0 {
			break
		}
		cur = cur.Children[0]
	}
	return out
}

// Depth returns the number of moves along Chain, zero for a leaf.
func (n *Node) Depth() int {
	return len(n.Chain()) - 1
}

// String renders the configuration followed by a blank line and each
// child's rendering. Diagnostic display only; dedup always uses Key.
func (n *Node) String() string {
	parts := make([]string, len(n.Children))
	for i, c := range n.Children {
		parts[i] = c.String()
	}
	return n.Puzzle.String() + "\n\n" + strings.Join(parts, "\n")
}

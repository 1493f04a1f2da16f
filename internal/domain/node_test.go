package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakePuzzle is a minimal contract implementation for node tests.
type fakePuzzle struct {
	id   string
	goal bool
}

func (f fakePuzzle) String() string          { return f.id }
func (f fakePuzzle) Key() string             { return f.id }
func (f fakePuzzle) Solved() bool            { return f.goal }
func (f fakePuzzle) FailFast() bool          { return false }
func (f fakePuzzle) Extensions() []Puzzle    { return nil }
func (f fakePuzzle) Equal(other Puzzle) bool {
	o, ok := other.(fakePuzzle)
	return ok && o.id == f.id
}

func TestNodeEqualIgnoresChildOrder(t *testing.T) {
	a := NewNode(fakePuzzle{id: "a"})
	b := NewNode(fakePuzzle{id: "b"})
	a2 := NewNode(fakePuzzle{id: "a"})
	b2 := NewNode(fakePuzzle{id: "b"})

	left := NewNode(fakePuzzle{id: "root"}, a, b)
	right := NewNode(fakePuzzle{id: "root"}, b2, a2)
	assert.True(t, left.Equal(right))
	assert.True(t, right.Equal(left))
}

func TestNodeEqualDetectsDifferences(t *testing.T) {
	withChild := NewNode(fakePuzzle{id: "root"}, NewNode(fakePuzzle{id: "a"}))
	bare := NewNode(fakePuzzle{id: "root"})
	otherPuzzle := NewNode(fakePuzzle{id: "elsewhere"})

	assert.False(t, withChild.Equal(bare))
	assert.False(t, bare.Equal(withChild))
	assert.False(t, bare.Equal(otherPuzzle))

	var none *Node
	assert.True(t, none.Equal(nil))
	assert.False(t, none.Equal(bare))
}

func TestNodeEqualIgnoresParent(t *testing.T) {
	orphan := NewNode(fakePuzzle{id: "x"})
	adopted := NewNode(fakePuzzle{id: "x"})
	adopted.Parent = NewNode(fakePuzzle{id: "root"})
	assert.True(t, orphan.Equal(adopted))
}

func TestNewNodeCopiesChildren(t *testing.T) {
	children := []*Node{NewNode(fakePuzzle{id: "a"}), NewNode(fakePuzzle{id: "b"})}
	n := NewNode(fakePuzzle{id: "root"}, children...)
	children[0] = NewNode(fakePuzzle{id: "swapped"})
	require.Len(t, n.Children, 2)
	assert.Equal(t, "a", n.Children[0].Puzzle.Key())
}

func TestNodeStringNestsChildren(t *testing.T) {
	leaf := NewNode(fakePuzzle{id: "leaf", goal: true})
	root := NewNode(fakePuzzle{id: "root"}, leaf)
	assert.Equal(t, "root\n\nleaf\n\n", root.String())
}

func TestChainAndDepth(t *testing.T) {
	leaf := NewNode(fakePuzzle{id: "c", goal: true})
	mid := NewNode(fakePuzzle{id: "b"}, leaf)
	root := NewNode(fakePuzzle{id: "a"}, mid)

	chain := root.Chain()
	require.Len(t, chain, 3)
	assert.Equal(t, "a", chain[0].Puzzle.Key())
	assert.Equal(t, "c", chain[2].Puzzle.Key())
	assert.Equal(t, 2, root.Depth())
	assert.Equal(t, 0, leaf.Depth())
}

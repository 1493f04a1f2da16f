package domain

import (
	"fmt"
	"strings"
)

// Kind identifies a conforming puzzle variant.
type Kind int

const (
	PegSolitaire Kind = iota // peg-jump grid, solved at one remaining peg
	TileGrid                 // sliding-tile grid with one blank
	WordLadder               // one-letter word transformations
)

func (k Kind) String() string {
	switch k {
	case TileGrid:
		return "tiles"
	case WordLadder:
		return "words"
	default:
		return "pegs"
	}
}

// ParseKind maps labels like "pegs" or "tile-grid" to their Kind.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pegs", "peg", "peg-solitaire":
		return PegSolitaire, nil
	case "tiles", "tile", "tile-grid":
		return TileGrid, nil
	case "words", "word", "word-ladder":
		return WordLadder, nil
	}
	return 0, fmt.Errorf("unknown puzzle kind %q", s)
}

// Method selects a search strategy.
type Method int

const (
	DepthFirst   Method = iota // first solution under the fixed branching order
	BreadthFirst               // shortest solution, full-frontier search
)

func (m Method) String() string {
	if m == DepthFirst {
		return "dfs"
	}
	return "bfs"
}

func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dfs", "depth-first":
		return DepthFirst, nil
	case "bfs", "breadth-first":
		return BreadthFirst, nil
	}
	return 0, fmt.Errorf("unknown search method %q", s)
}

// Difficulty labels scramble depth for generated puzzles.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
	Expert
)

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Hard:
		return "hard"
	case Expert:
		return "expert"
	default:
		return "medium"
	}
}

func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return Easy, nil
	case "medium":
		return Medium, nil
	case "hard":
		return Hard, nil
	case "expert":
		return Expert, nil
	}
	return 0, fmt.Errorf("unknown difficulty %q", s)
}

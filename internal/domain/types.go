package domain

import "encoding/json"

// SavedPuzzle is a persisted puzzle definition with metadata. Definition
// holds the variant-specific payload; internal/puzzles decodes it back
// into a Puzzle.
type SavedPuzzle struct {
	ID         string          `json:"id,omitempty"`
	Kind       Kind            `json:"kind"`
	Seed       int64           `json:"seed,omitempty"`
	Difficulty Difficulty      `json:"difficulty,omitempty"`
	Definition json.RawMessage `json:"definition"`
	CreatedAt  int64           `json:"createdAt,omitempty"`
	// Optional user metadata
	Name  string `json:"name,omitempty"`
	Notes string `json:"notes,omitempty"`
}

// SavedPuzzleMeta is a lightweight listing entry.
type SavedPuzzleMeta struct {
	ID        string `json:"id"`
	Name      string `json:"name,omitempty"`
	Kind      Kind   `json:"kind"`
	CreatedAt int64  `json:"createdAt"`
}

// Hint describes the suggested next move for the UI.
type Hint struct {
	Message   string `json:"message,omitempty"`
	Next      string `json:"next,omitempty"`      // rendering of the suggested configuration
	Remaining int    `json:"remaining,omitempty"` // moves left on the shortest known path
}

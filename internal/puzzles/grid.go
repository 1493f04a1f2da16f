// Package puzzles holds the concrete variants the search engines operate
// on: peg solitaire grids, sliding tile grids, and word ladders. Each
// satisfies domain.Puzzle and validates its configuration on construction.
package puzzles

// Cell markers shared by the grid variants.
const (
	peg    = '*'
	hole   = '.'
	unused = '#'
	blank  = '*' // tile grids reuse the star for the empty slot
)

func copyRows(rows []string) []string {
	out := make([]string, len(rows))
	copy(out, rows)
	return out
}

func equalRows(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

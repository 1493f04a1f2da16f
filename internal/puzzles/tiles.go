package puzzles

import (
	"errors"
	"fmt"
	"strings"

	"svw.info/puzzler/internal/domain"
)

// TileGrid is an n by m sliding tile puzzle working toward a target
// arrangement. Tiles carry letters or numerals; '*' marks the blank.
type TileGrid struct {
	from []string
	to   []string
}

// NewTileGrid validates both grids and returns the configuration.
func NewTileGrid(from, to []string) (*TileGrid, error) {
	if err := checkTiles(from); err != nil {
		return nil, fmt.Errorf("tile grid: current %w", err)
	}
	if err := checkTiles(to); err != nil {
		return nil, fmt.Errorf("tile grid: target %w", err)
	}
	if len(from) != len(to) || len(from[0]) != len(to[0]) {
		return nil, errors.New("tile grid: current and target dimensions differ")
	}
	return &TileGrid{from: copyRows(from), to: copyRows(to)}, nil
}

func checkTiles(rows []string) error {
	if len(rows) == 0 {
		return errors.New("grid is empty")
	}
	width := len(rows[0])
	blanks := 0
	for i, row := range rows {
		if len(row) != width {
			return fmt.Errorf("grid row %d is %d cells wide, want %d", i, len(row), width)
		}
		for j := 0; j < len(row); j++ {
			c := row[j]
			switch {
			case c == blank:
				blanks++
			case c >= '0' && c <= '9', c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
			default:
				return fmt.Errorf("grid has bad symbol %q at row %d col %d", c, i, j)
			}
		}
	}
	if blanks != 1 {
		return fmt.Errorf("grid needs exactly one blank, found %d", blanks)
	}
	return nil
}

// From returns a copy of the current rows.
func (t *TileGrid) From() []string { return copyRows(t.from) }

// To returns a copy of the target rows.
func (t *TileGrid) To() []string { return copyRows(t.to) }

func (t *TileGrid) String() string { return t.Key() + "\n_____" }

func (t *TileGrid) Key() string { return strings.Join(t.from, "\n") }

func (t *TileGrid) Solved() bool { return equalRows(t.from, t.to) }

// FailFast reports when the current symbols are not a rearrangement of
// the target's, which no sequence of slides can repair.
func (t *TileGrid) FailFast() bool {
	var have, want [256]int
	for _, row := range t.from {
		for j := 0; j < len(row); j++ {
			have[row[j]]++
		}
	}
	for _, row := range t.to {
		for j := 0; j < len(row); j++ {
			want[row[j]]++
		}
	}
	return have != want
}

// Extensions lists the configurations reachable by sliding one adjacent
// tile into the blank: the tile to its right, left, below, then above.
func (t *TileGrid) Extensions() []domain.Puzzle {
	i, j := t.blank()
	var out []domain.Puzzle
	if j+1 < len(t.from[i]) {
		out = append(out, t.slide(i, j, 0, 1))
	}
	if j-1 >= 0 {
		out = append(out, t.slide(i, j, 0, -1))
	}
	if i+1 < len(t.from) {
		out = append(out, t.slide(i, j, 1, 0))
	}
	if i-1 >= 0 {
		out = append(out, t.slide(i, j, -1, 0))
	}
	return out
}

func (t *TileGrid) blank() (int, int) {
	for i, row := range t.from {
		if j := strings.IndexByte(row, blank); j >= 0 {
			return i, j
		}
	}
	// construction guarantees one blank
	return 0, 0
}

func (t *TileGrid) slide(i, j, di, dj int) *TileGrid {
	grid := make([][]byte, len(t.from))
	for k, row := range t.from {
		grid[k] = []byte(row)
	}
	grid[i][j], grid[i+di][j+dj] = grid[i+di][j+dj], grid[i][j]
	rows := make([]string, len(grid))
	for k := range grid {
		rows[k] = string(grid[k])
	}
	return &TileGrid{from: rows, to: t.to}
}

func (t *TileGrid) Equal(other domain.Puzzle) bool {
	o, ok := other.(*TileGrid)
	return ok && equalRows(t.from, o.from) && equalRows(t.to, o.to)
}

package puzzles

import (
	"errors"
	"fmt"
	"strings"

	"svw.info/puzzler/internal/domain"
)

// PegSolitaire is a snapshot of peg solitaire on a rectangular grid.
// Cells hold '*' for a peg, '.' for an empty spot and '#' for unused.
// A configuration is solved when exactly one peg remains.
type PegSolitaire struct {
	rows []string
}

// NewPegSolitaire validates the grid and returns the configuration.
func NewPegSolitaire(rows []string) (*PegSolitaire, error) {
	if len(rows) == 0 {
		return nil, errors.New("peg solitaire: empty grid")
	}
	width := len(rows[0])
	for i, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("peg solitaire: row %d is %d cells wide, want %d", i, len(row), width)
		}
		for j := 0; j < len(row); j++ {
			switch row[j] {
			case peg, hole, unused:
			default:
				return nil, fmt.Errorf("peg solitaire: bad marker %q at row %d col %d", row[j], i, j)
			}
		}
	}
	return &PegSolitaire{rows: copyRows(rows)}, nil
}

// Rows returns a copy of the grid rows.
func (p *PegSolitaire) Rows() []string { return copyRows(p.rows) }

func (p *PegSolitaire) String() string { return p.Key() + "\n_____" }

func (p *PegSolitaire) Key() string { return strings.Join(p.rows, "\n") }

func (p *PegSolitaire) Solved() bool {
	count := 0
	for _, row := range p.rows {
		count += strings.Count(row, "*")
	}
	return count == 1
}

// FailFast is always false: there is no cheap sufficient test for a peg
// grid being stuck short of a single peg.
func (p *PegSolitaire) FailFast() bool { return false }

// Extensions lists every configuration one jump away. Holes are scanned
// in row-major order; for each hole the jumps land from the right, the
// left, below, then above.
func (p *PegSolitaire) Extensions() []domain.Puzzle {
	var out []domain.Puzzle
	for i, row := range p.rows {
		for j := 0; j < len(row); j++ {
			if row[j] != hole {
				continue
			}
			if j+2 < len(row) && row[j+1] == peg && row[j+2] == peg {
				out = append(out, p.jump(i, j, 0, 1))
			}
			if j-2 >= 0 && row[j-1] == peg && row[j-2] == peg {
				out = append(out, p.jump(i, j, 0, -1))
			}
			if i+2 < len(p.rows) && p.rows[i+1][j] == peg && p.rows[i+2][j] == peg {
				out = append(out, p.jump(i, j, 1, 0))
			}
			if i-2 >= 0 && p.rows[i-1][j] == peg && p.rows[i-2][j] == peg {
				out = append(out, p.jump(i, j, -1, 0))
			}
		}
	}
	return out
}

// jump moves the peg two cells away in direction (di,dj) into the hole at
// (i,j), clearing the cell it left and the peg it hopped over.
func (p *PegSolitaire) jump(i, j, di, dj int) *PegSolitaire {
	grid := make([][]byte, len(p.rows))
	for k, row := range p.rows {
		grid[k] = []byte(row)
	}
	grid[i][j] = peg
	grid[i+di][j+dj] = hole
	grid[i+2*di][j+2*dj] = hole
	rows := make([]string, len(grid))
	for k := range grid {
		rows[k] = string(grid[k])
	}
	return &PegSolitaire{rows: rows}
}

func (p *PegSolitaire) Equal(other domain.Puzzle) bool {
	o, ok := other.(*PegSolitaire)
	return ok && equalRows(p.rows, o.rows)
}

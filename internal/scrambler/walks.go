package scrambler

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"svw.info/puzzler/internal/domain"
	"svw.info/puzzler/internal/puzzles"
)

// directions in the order the variants extend: right, left, below, above.
var directions = [4][2]int{{0, 1}, {0, -1}, {1, 0}, {-1, 0}}

// scramblePegs grows a board backward from a single peg. Each reverse
// jump removes the landed peg and restores the two that made the jump,
// so retracing the walk solves the result.
func (s *WalkScrambler) scramblePegs(ctx context.Context, rng *rand.Rand, diff domain.Difficulty, steps int) (domain.Puzzle, int, error) {
	h, w := pegDims(diff)
	grid := make([][]byte, h)
	for i := range grid {
		row := make([]byte, w)
		for j := range row {
			row[j] = '.'
		}
		grid[i] = row
	}
	grid[h/2][w/2] = '*'

	type unjump struct{ i, j, di, dj int }
	moves := 0
	for step := 0; step < steps; step++ {
		if err := ctx.Err(); err != nil {
			return nil, moves, err
		}
		var cands []unjump
		for i := 0; i < h; i++ {
			for j := 0; j < w; j++ {
				if grid[i][j] != '*' {
					continue
				}
				for _, d := range directions {
					i2, j2 := i+2*d[0], j+2*d[1]
					if i2 < 0 || i2 >= h || j2 < 0 || j2 >= w {
						continue
					}
					if grid[i+d[0]][j+d[1]] == '.' && grid[i2][j2] == '.' {
						cands = append(cands, unjump{i, j, d[0], d[1]})
					}
				}
			}
		}
		if len(cands) == 0 {
			break
		}
		m := cands[rng.Intn(len(cands))]
		grid[m.i][m.j] = '.'
		grid[m.i+m.di][m.j+m.dj] = '*'
		grid[m.i+2*m.di][m.j+2*m.dj] = '*'
		moves++
	}
	if moves == 0 {
		return nil, 0, errors.New("scramble: board too small to scramble")
	}
	p, err := puzzles.NewPegSolitaire(rowStrings(grid))
	return p, moves, err
}

// scrambleTiles walks the blank away from the solved arrangement,
// never immediately undoing the previous slide.
func (s *WalkScrambler) scrambleTiles(ctx context.Context, rng *rand.Rand, diff domain.Difficulty, steps int) (domain.Puzzle, int, error) {
	h, w := tileDims(diff)
	goal := tileGoal(h, w)
	grid := make([][]byte, h)
	for i, row := range goal {
		grid[i] = []byte(row)
	}
	bi, bj := h-1, w-1
	pi, pj := -1, -1
	moves := 0

	slide := func() {
		var cands [][2]int
		for _, d := range directions {
			ni, nj := bi+d[0], bj+d[1]
			if ni < 0 || ni >= h || nj < 0 || nj >= w {
				continue
			}
			if ni == pi && nj == pj {
				continue
			}
			cands = append(cands, [2]int{ni, nj})
		}
		c := cands[rng.Intn(len(cands))]
		grid[bi][bj], grid[c[0]][c[1]] = grid[c[0]][c[1]], grid[bi][bj]
		pi, pj = bi, bj
		bi, bj = c[0], c[1]
		moves++
	}

	for step := 0; step < steps; step++ {
		if err := ctx.Err(); err != nil {
			return nil, moves, err
		}
		slide()
	}
	// An even walk can return home; push one more slide off the goal.
	if equalGoal(grid, goal) {
		slide()
	}
	p, err := puzzles.NewTileGrid(rowStrings(grid), goal)
	return p, moves, err
}

// scrambleWords picks a seeded target word and walks it through the
// dictionary one substitution at a time.
func (s *WalkScrambler) scrambleWords(ctx context.Context, rng *rand.Rand, diff domain.Difficulty, steps int) (domain.Puzzle, int, error) {
	length := wordLength(diff)
	var pool []string
	for _, w := range s.words.Words() {
		if len(w) == length {
			pool = append(pool, w)
		}
	}
	if len(pool) == 0 {
		return nil, 0, fmt.Errorf("scramble: no %d-letter words in dictionary", length)
	}
	// Some words have no neighbors; try a handful of targets.
	for attempt := 0; attempt < 20; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, 0, err
		}
		target := pool[rng.Intn(len(pool))]
		cur, prev := target, ""
		moves := 0
		for step := 0; step < steps; step++ {
			next := s.neighbors(cur, prev)
			if len(next) == 0 {
				break
			}
			prev, cur = cur, next[rng.Intn(len(next))]
			moves++
		}
		if cur == target {
			continue
		}
		p, err := puzzles.NewWordLadder(cur, target, s.words)
		if err != nil {
			return nil, 0, err
		}
		return p, moves, nil
	}
	return nil, 0, errors.New("scramble: could not build a word ladder from this dictionary")
}

// neighbors lists dictionary words one substitution from cur, excluding
// prev so the walk keeps moving.
func (s *WalkScrambler) neighbors(cur, prev string) []string {
	var out []string
	buf := []byte(cur)
	for i := 0; i < len(buf); i++ {
		orig := buf[i]
		for c := byte('a'); c <= 'z'; c++ {
			if c == orig {
				continue
			}
			buf[i] = c
			cand := string(buf)
			if cand != prev && s.words.Contains(cand) {
				out = append(out, cand)
			}
		}
		buf[i] = orig
	}
	return out
}

func tileGoal(h, w int) []string {
	const symbols = "123456789abcdefghijklmnopqrstuvwxyz"
	rows := make([]string, h)
	k := 0
	for i := 0; i < h; i++ {
		row := make([]byte, w)
		for j := 0; j < w; j++ {
			if i == h-1 && j == w-1 {
				row[j] = '*'
			} else {
				row[j] = symbols[k]
				k++
			}
		}
		rows[i] = string(row)
	}
	return rows
}

func equalGoal(grid [][]byte, goal []string) bool {
	for i := range goal {
		if string(grid[i]) != goal[i] {
			return false
		}
	}
	return true
}

func rowStrings(grid [][]byte) []string {
	rows := make([]string, len(grid))
	for i := range grid {
		rows[i] = string(grid[i])
	}
	return rows
}

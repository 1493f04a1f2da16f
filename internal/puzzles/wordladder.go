package puzzles

import (
	"errors"
	"fmt"
	"strings"

	"svw.info/puzzler/internal/dictionary"
	"svw.info/puzzler/internal/domain"
)

// WordLadder transforms one word into another by changing a single
// letter at a time, passing only through dictionary words.
type WordLadder struct {
	from  string
	to    string
	words dictionary.Set
}

// NewWordLadder validates the endpoints and returns the configuration.
// Unsolvable ladders (say, endpoints of different length) construct
// fine; the solvers report those as having no solution.
func NewWordLadder(from, to string, words dictionary.Set) (*WordLadder, error) {
	from = strings.ToLower(strings.TrimSpace(from))
	to = strings.ToLower(strings.TrimSpace(to))
	if from == "" || to == "" {
		return nil, errors.New("word ladder: empty word")
	}
	if words.Len() == 0 {
		return nil, errors.New("word ladder: empty dictionary")
	}
	for _, w := range []string{from, to} {
		for i := 0; i < len(w); i++ {
			if w[i] < 'a' || w[i] > 'z' {
				return nil, fmt.Errorf("word ladder: %q is not a lowercase word", w)
			}
		}
	}
	return &WordLadder{from: from, to: to, words: words}, nil
}

// From returns the current word.
func (w *WordLadder) From() string { return w.from }

// Target returns the word the ladder works toward.
func (w *WordLadder) Target() string { return w.to }

// Words returns the dictionary consulted for rungs.
func (w *WordLadder) Words() dictionary.Set { return w.words }

func (w *WordLadder) String() string { return w.from + " --> " + w.to }

func (w *WordLadder) Key() string { return w.from }

func (w *WordLadder) Solved() bool { return w.from == w.to }

// FailFast prunes ladders that cannot finish: substitutions preserve
// length, and the final rung must itself be a dictionary word.
func (w *WordLadder) FailFast() bool {
	return len(w.from) != len(w.to) || !w.words.Contains(w.to)
}

// Extensions substitutes each position with each letter a through z,
// keeping candidates that are dictionary words other than the current
// one. Position order first, alphabet order within a position.
func (w *WordLadder) Extensions() []domain.Puzzle {
	var out []domain.Puzzle
	buf := []byte(w.from)
	for i := 0; i < len(buf); i++ {
		orig := buf[i]
		for c := byte('a'); c <= 'z'; c++ {
			if c == orig {
				continue
			}
			buf[i] = c
			cand := string(buf)
			if w.words.Contains(cand) {
				out = append(out, &WordLadder{from: cand, to: w.to, words: w.words})
			}
		}
		buf[i] = orig
	}
	return out
}

func (w *WordLadder) Equal(other domain.Puzzle) bool {
	o, ok := other.(*WordLadder)
	return ok && o.from == w.from && o.to == w.to && w.words.Equal(o.words)
}

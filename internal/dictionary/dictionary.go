// Package dictionary provides the word sets consulted by word ladder
// puzzles, loadable from the embedded default list or from disk, with
// optional hot reload when the backing file changes.
package dictionary

import (
	"fmt"
	"os"
	"sort"
	"strings"
)

// Set is a collection of lowercase words.
type Set map[string]struct{}

// New builds a Set from the given words, lowercasing and trimming each.
func New(words ...string) Set {
	s := make(Set, len(words))
	for _, w := range words {
		s.Add(w)
	}
	return s
}

// Add inserts a word, normalized to lowercase. Blank strings are ignored.
func (s Set) Add(word string) {
	word = strings.ToLower(strings.TrimSpace(word))
	if word == "" {
		return
	}
	s[word] = struct{}{}
}

// Contains reports whether word is in the set.
func (s Set) Contains(word string) bool {
	_, ok := s[word]
	return ok
}

// Len returns the number of words.
func (s Set) Len() int { return len(s) }

// Words returns the contents in alphabetical order.
func (s Set) Words() []string {
	out := make([]string, 0, len(s))
	for w := range s {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}

// Equal reports whether both sets hold exactly the same words.
func (s Set) Equal(other Set) bool {
	if len(s) != len(other) {
		return false
	}
	for w := range s {
		if !other.Contains(w) {
			return false
		}
	}
	return true
}

// FromFile loads a Set from a whitespace-separated word list on disk.
func FromFile(path string) (Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read word list: %w", err)
	}
	return parse(string(data)), nil
}

func parse(text string) Set {
	fields := strings.Fields(text)
	s := make(Set, len(fields))
	for _, w := range fields {
		s.Add(w)
	}
	return s
}

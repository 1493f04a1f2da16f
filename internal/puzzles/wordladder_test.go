package puzzles

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"svw.info/puzzler/internal/dictionary"
)

func TestNewWordLadderValidates(t *testing.T) {
	words := dictionary.New("cat", "dog")
	if _, err := NewWordLadder("", "dog", words); err == nil {
		t.Fatal("want error for empty start word")
	}
	if _, err := NewWordLadder("cat", "", words); err == nil {
		t.Fatal("want error for empty target word")
	}
	if _, err := NewWordLadder("cat", "dog", dictionary.New()); err == nil {
		t.Fatal("want error for empty dictionary")
	}
	if _, err := NewWordLadder("c-t", "dog", words); err == nil {
		t.Fatal("want error for non-letter characters")
	}

	w, err := NewWordLadder(" Cat ", "DOG", words)
	if err != nil {
		t.Fatalf("valid ladder rejected: %v", err)
	}
	if w.From() != "cat" || w.Target() != "dog" {
		t.Fatalf("normalization lost: %q -> %q", w.From(), w.Target())
	}
}

func TestWordLadderRender(t *testing.T) {
	w, err := NewWordLadder("cat", "dog", dictionary.New("cat", "dog"))
	if err != nil {
		t.Fatal(err)
	}
	if got, want := w.String(), "cat --> dog"; got != want {
		t.Fatalf("String = %q, want %q", got, want)
	}
	if got, want := w.Key(), "cat"; got != want {
		t.Fatalf("Key = %q, want %q", got, want)
	}
}

func TestWordLadderExtensionOrder(t *testing.T) {
	// Position order first, alphabet order within a position: bat (b at
	// position 0) before cot (o at position 1).
	words := dictionary.New("cat", "cot", "cog", "dog", "dot", "bat")
	w, err := NewWordLadder("cat", "dog", words)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"bat", "cot"}, keys(w.Extensions())); diff != "" {
		t.Fatalf("extension order mismatch (-want +got):\n%s", diff)
	}

	// The current word is never its own extension.
	cot, err := NewWordLadder("cot", "dog", words)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"dot", "cat", "cog"}, keys(cot.Extensions())); diff != "" {
		t.Fatalf("extension order mismatch (-want +got):\n%s", diff)
	}
}

func TestWordLadderSolvedAndFailFast(t *testing.T) {
	words := dictionary.New("cat", "dog")
	solved, err := NewWordLadder("cat", "cat", words)
	if err != nil {
		t.Fatal(err)
	}
	if !solved.Solved() {
		t.Fatal("identical endpoints should be solved")
	}

	open, _ := NewWordLadder("cat", "dog", words)
	if open.Solved() {
		t.Fatal("different endpoints should not be solved")
	}
	if open.FailFast() {
		t.Fatal("reachable target should not fail fast")
	}

	long, _ := NewWordLadder("cat", "cart", dictionary.New("cat", "cart"))
	if !long.FailFast() {
		t.Fatal("length mismatch must fail fast")
	}

	missing, _ := NewWordLadder("cat", "zzz", words)
	if !missing.FailFast() {
		t.Fatal("target outside the dictionary must fail fast")
	}
}

func TestWordLadderEqual(t *testing.T) {
	a, _ := NewWordLadder("on", "no", dictionary.New("on", "no", "oo"))
	b, _ := NewWordLadder("on", "no", dictionary.New("oo", "no", "on"))
	c, _ := NewWordLadder("no", "on", dictionary.New("on", "no", "oo"))
	d, _ := NewWordLadder("on", "no", dictionary.New("on", "no"))
	if !a.Equal(b) {
		t.Fatal("same ladder over the same words should be equal")
	}
	if a.Equal(c) {
		t.Fatal("swapped endpoints should not be equal")
	}
	if a.Equal(d) {
		t.Fatal("different dictionaries should not be equal")
	}
}

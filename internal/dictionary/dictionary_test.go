package dictionary

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestNewNormalizes(t *testing.T) {
	s := New("Cat", " dog ", "", "COT")
	if s.Len() != 3 {
		t.Fatalf("Len = %d, want 3", s.Len())
	}
	for _, w := range []string{"cat", "dog", "cot"} {
		if !s.Contains(w) {
			t.Fatalf("missing %q", w)
		}
	}
	if s.Contains("Cat") {
		t.Fatal("lookup should be lowercase only")
	}
}

func TestEqualComparesContents(t *testing.T) {
	a := New("on", "no", "oo")
	b := New("oo", "no", "on")
	c := New("on", "no")
	if !a.Equal(b) {
		t.Fatal("same contents should compare equal")
	}
	if a.Equal(c) {
		t.Fatal("different contents should not compare equal")
	}
}

func TestWordsSorted(t *testing.T) {
	s := New("dog", "ant", "cat")
	got := s.Words()
	want := []string{"ant", "cat", "dog"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Words() = %v, want %v", got, want)
		}
	}
}

func TestDefaultCarriesLadderWords(t *testing.T) {
	s := Default()
	if s.Len() < 500 {
		t.Fatalf("embedded list suspiciously small: %d words", s.Len())
	}
	for _, w := range []string{"cat", "cot", "cog", "dog", "cold", "cord", "card", "ward", "warm"} {
		if !s.Contains(w) {
			t.Fatalf("embedded list missing %q", w)
		}
	}
}

func TestFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	if err := os.WriteFile(path, []byte("alpha beta\ngamma\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	s, err := FromFile(path)
	if err != nil {
		t.Fatalf("FromFile: %v", err)
	}
	if s.Len() != 3 || !s.Contains("gamma") {
		t.Fatalf("unexpected set: %v", s.Words())
	}
	if _, err := FromFile(filepath.Join(t.TempDir(), "absent.txt")); err == nil {
		t.Fatal("want error for missing file")
	}
}

func TestWatcherReloadsOnWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	if err := os.WriteFile(path, []byte("one\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	w, err := NewWatcher(path, nil)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	if !w.Set().Contains("one") {
		t.Fatal("initial load missing word")
	}
	if err := os.WriteFile(path, []byte("one\ntwo\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if w.Set().Contains("two") {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("reload never happened")
}

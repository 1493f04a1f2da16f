// Package storage persists saved puzzles. Two backends implement
// ports.Store: FS writes one JSON file per puzzle, Badger keeps records
// in an embedded key-value database. Both report missing puzzles with
// os.ErrNotExist.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"svw.info/puzzler/internal/domain"
)

type FS struct{ dir string }

func NewFS(dir string) *FS { return &FS{dir: dir} }

// kinds orders the per-kind buckets under the storage root.
var kinds = []domain.Kind{domain.PegSolitaire, domain.TileGrid, domain.WordLadder}

func (s *FS) pathFor(id string, k domain.Kind) string {
	return filepath.Join(s.dir, k.String(), strings.TrimSpace(id)+".json")
}

func (s *FS) candidates(id string) []string {
	out := make([]string, 0, len(kinds)+1)
	for _, k := range kinds {
		out = append(out, filepath.Join(s.dir, k.String(), id+".json"))
	}
	return append(out, filepath.Join(s.dir, id+".json")) // legacy flat layout
}

func (s *FS) Save(ctx context.Context, p *domain.SavedPuzzle) error {
	if p == nil || p.ID == "" {
		return errors.New("invalid puzzle: missing ID")
	}
	target := s.pathFor(p.ID, p.Kind)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}
	f, err := os.Create(target)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(p)
}

func (s *FS) Load(ctx context.Context, id string) (*domain.SavedPuzzle, error) {
	var data []byte
	for _, path := range s.candidates(id) {
		if _, statErr := os.Stat(path); statErr == nil {
			b, err := os.ReadFile(path)
			if err != nil {
				return nil, err
			}
			data = b
			break
		}
	}
	if data == nil {
		return nil, os.ErrNotExist
	}
	var out domain.SavedPuzzle
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *FS) List(ctx context.Context) ([]domain.SavedPuzzleMeta, error) {
	dirs := make([]string, 0, len(kinds)+1)
	for _, k := range kinds {
		dirs = append(dirs, filepath.Join(s.dir, k.String()))
	}
	dirs = append(dirs, s.dir) // legacy flat files

	var out []domain.SavedPuzzleMeta
	for _, dir := range dirs {
		ents, err := os.ReadDir(dir)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, err
		}
		for _, e := range ents {
			if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
				continue
			}
			data, err := os.ReadFile(filepath.Join(dir, e.Name()))
			if err != nil {
				continue
			}
			var p domain.SavedPuzzle
			if err := json.Unmarshal(data, &p); err != nil || p.ID == "" {
				continue
			}
			out = append(out, domain.SavedPuzzleMeta{
				ID:        p.ID,
				Name:      p.Name,
				Kind:      p.Kind,
				CreatedAt: p.CreatedAt,
			})
		}
	}
	return out, nil
}

func (s *FS) Delete(ctx context.Context, id string) error {
	for _, path := range s.candidates(id) {
		if _, err := os.Stat(path); err == nil {
			return os.Remove(path)
		}
	}
	return os.ErrNotExist
}

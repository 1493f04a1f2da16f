package storage

import (
	"context"
	"encoding/json"
	"errors"
	"os"

	badger "github.com/dgraph-io/badger/v4"

	"svw.info/puzzler/internal/domain"
)

const recordPrefix = "puzzle:"

// Badger stores puzzles in an embedded BadgerDB under recordPrefix keys.
type Badger struct{ db *badger.DB }

// OpenBadger opens the database under dir, creating it if needed. An
// empty dir opens an in-memory database.
func OpenBadger(dir string) (*Badger, error) {
	var opts badger.Options
	if dir == "" {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
		opts = badger.DefaultOptions(dir)
	}
	db, err := badger.Open(opts.WithLogger(nil))
	if err != nil {
		return nil, err
	}
	return &Badger{db: db}, nil
}

func (s *Badger) Close() error { return s.db.Close() }

func recordKey(id string) []byte { return []byte(recordPrefix + id) }

func (s *Badger) Save(ctx context.Context, p *domain.SavedPuzzle) error {
	if p == nil || p.ID == "" {
		return errors.New("invalid puzzle: missing ID")
	}
	data, err := json.Marshal(p)
	if err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(recordKey(p.ID), data)
	})
}

func (s *Badger) Load(ctx context.Context, id string) (*domain.SavedPuzzle, error) {
	var out domain.SavedPuzzle
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(recordKey(id))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &out)
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, os.ErrNotExist
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Badger) List(ctx context.Context) ([]domain.SavedPuzzleMeta, error) {
	var out []domain.SavedPuzzleMeta
	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		prefix := []byte(recordPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			err := it.Item().Value(func(val []byte) error {
				var p domain.SavedPuzzle
				if err := json.Unmarshal(val, &p); err != nil || p.ID == "" {
					return nil // skip unreadable records, as the FS backend does
				}
				out = append(out, domain.SavedPuzzleMeta{
					ID:        p.ID,
					Name:      p.Name,
					Kind:      p.Kind,
					CreatedAt: p.CreatedAt,
				})
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Badger) Delete(ctx context.Context, id string) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		if _, err := txn.Get(recordKey(id)); err != nil {
			return err
		}
		return txn.Delete(recordKey(id))
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return os.ErrNotExist
	}
	return err
}

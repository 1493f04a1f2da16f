package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"svw.info/puzzler/internal/domain"
	"svw.info/puzzler/internal/ports"
)

// Service fronts the engines and storage behind one transport-agnostic
// surface. Solvers maps each search method to its engine.
type Service struct {
	Solvers   map[domain.Method]ports.Solver
	Scrambler ports.Scrambler
	Hinter    ports.Hinter
	Store     ports.Store
}

func NewService(solvers map[domain.Method]ports.Solver, sc ports.Scrambler, h ports.Hinter, st ports.Store) *Service {
	return &Service{Solvers: solvers, Scrambler: sc, Hinter: h, Store: st}
}

var errNotConfigured = errors.New("usecase dependency not configured")

func (u *Service) Solve(ctx context.Context, p domain.Puzzle, m domain.Method) (*domain.Node, ports.Stats, error) {
	s, ok := u.Solvers[m]
	if !ok {
		return nil, ports.Stats{}, errNotConfigured
	}
	return s.Solve(ctx, p)
}

func (u *Service) Scramble(ctx context.Context, kind domain.Kind, seed int64, d domain.Difficulty) (domain.Puzzle, ports.Stats, error) {
	if u.Scrambler == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	return u.Scrambler.Scramble(ctx, kind, seed, d)
}

func (u *Service) Hint(ctx context.Context, p domain.Puzzle) (domain.Hint, bool, error) {
	if u.Hinter == nil {
		return domain.Hint{}, false, errNotConfigured
	}
	return u.Hinter.Hint(ctx, p)
}

// Persistence. Save mints an ID and timestamp when the record has none.
func (u *Service) Save(ctx context.Context, p *domain.SavedPuzzle) (string, error) {
	if u.Store == nil {
		return "", errNotConfigured
	}
	if p == nil {
		return "", errors.New("invalid puzzle: nil")
	}
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.CreatedAt == 0 {
		p.CreatedAt = time.Now().Unix()
	}
	if err := u.Store.Save(ctx, p); err != nil {
		return "", err
	}
	return p.ID, nil
}

func (u *Service) Load(ctx context.Context, id string) (*domain.SavedPuzzle, error) {
	if u.Store == nil {
		return nil, errNotConfigured
	}
	return u.Store.Load(ctx, id)
}

func (u *Service) List(ctx context.Context) ([]domain.SavedPuzzleMeta, error) {
	if u.Store == nil {
		return nil, errNotConfigured
	}
	return u.Store.List(ctx)
}

func (u *Service) Delete(ctx context.Context, id string) error {
	if u.Store == nil {
		return errNotConfigured
	}
	return u.Store.Delete(ctx, id)
}

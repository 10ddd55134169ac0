package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/0xElectro/tournament-manager/models"
	"github.com/0xElectro/tournament-manager/repositories"
)

// TournamentService owns the in-memory tournaments, one per sport. All
// mutations come from the single console operator and run under the write
// lock; the read-only viewer snapshots state under the read lock. The
// domain packages below this layer stay lock-free.
type TournamentService struct {
	repo   repositories.TournamentRepository
	logger *slog.Logger

	mu          sync.RWMutex
	tournaments map[models.SportType]*models.Tournament
}

func NewTournamentService(repo repositories.TournamentRepository, logger *slog.Logger) *TournamentService {
	return &TournamentService{
		repo:        repo,
		logger:      logger,
		tournaments: make(map[models.SportType]*models.Tournament),
	}
}

// LoadAll reads every sport's tournament from the store. A malformed
// record is not fatal: the partially loaded tournament is kept and the
// fault logged, matching the load behavior of the original data files.
func (s *TournamentService) LoadAll(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	for _, sport := range models.AllSports {
		sport := sport
		g.Go(func() error {
			t, err := s.repo.Load(ctx, sport)
			if err != nil {
				if !errors.Is(err, repositories.ErrMalformedRecord) {
					return fmt.Errorf("failed to load %s tournament: %w", sport, err)
				}
				s.logger.Warn("tournament record malformed, keeping partial load",
					slog.String("sport", string(sport)), slog.Any("error", err))
			}
			s.mu.Lock()
			s.tournaments[sport] = t
			s.mu.Unlock()
			return nil
		})
	}

	return g.Wait()
}

// SaveAll persists every tournament. Errors are collected so one failing
// sport does not block the others from saving.
func (s *TournamentService) SaveAll(ctx context.Context) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var errs []error
	for _, sport := range models.AllSports {
		t, ok := s.tournaments[sport]
		if !ok {
			continue
		}
		if err := s.repo.Save(ctx, t); err != nil {
			errs = append(errs, fmt.Errorf("failed to save %s tournament: %w", sport, err))
		}
	}
	return errors.Join(errs...)
}

// Save persists a single sport's tournament.
func (s *TournamentService) Save(ctx context.Context, sport models.SportType) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.tournaments[sport]
	if !ok {
		return ErrUnknownTournament
	}
	return s.repo.Save(ctx, t)
}

// WithRead runs fn with shared access to a sport's tournament. fn must not
// retain or mutate the tournament.
func (s *TournamentService) WithRead(sport models.SportType, fn func(*models.Tournament) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.tournaments[sport]
	if !ok {
		return ErrUnknownTournament
	}
	return fn(t)
}

// WithWrite runs fn with exclusive access to a sport's tournament. When fn
// fails, it must leave the tournament as it found it.
func (s *TournamentService) WithWrite(sport models.SportType, fn func(*models.Tournament) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tournaments[sport]
	if !ok {
		return ErrUnknownTournament
	}
	return fn(t)
}

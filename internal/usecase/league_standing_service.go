package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/gaming-league/internal/domain/fixture"
	"github.com/riskibarqy/gaming-league/internal/domain/league"
	"github.com/riskibarqy/gaming-league/internal/domain/leaguestanding"
	"github.com/riskibarqy/gaming-league/internal/domain/player"
	"github.com/riskibarqy/gaming-league/internal/platform/logging"
)

const defaultRebuildWorkers = 4

type LeagueStandingService struct {
	leagueRepo   league.Repository
	playerRepo   player.Repository
	fixtureRepo  fixture.Repository
	standingRepo leaguestanding.Repository
	logger       *logging.Logger
	workers      int
	now          func() time.Time
}

func NewLeagueStandingService(
	leagueRepo league.Repository,
	playerRepo player.Repository,
	fixtureRepo fixture.Repository,
	standingRepo leaguestanding.Repository,
	logger *logging.Logger,
	workers int,
) *LeagueStandingService {
	if logger == nil {
		logger = logging.Default()
	}
	if workers <= 0 {
		workers = defaultRebuildWorkers
	}

	return &LeagueStandingService{
		leagueRepo:   leagueRepo,
		playerRepo:   playerRepo,
		fixtureRepo:  fixtureRepo,
		standingRepo: standingRepo,
		logger:       logger,
		workers:      workers,
		now:          time.Now,
	}
}

// ListByLeague returns the stored table, computing it from fixtures when
// no snapshot has been written yet.
func (s *LeagueStandingService) ListByLeague(ctx context.Context, leagueID string) ([]leaguestanding.Standing, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueStandingService.ListByLeague")
	defer span.End()

	item, err := loadLeague(ctx, s.leagueRepo, leagueID)
	if err != nil {
		return nil, err
	}

	items, err := s.standingRepo.ListByLeague(ctx, item.ID)
	if err != nil {
		return nil, fmt.Errorf("list league standings: %w", err)
	}
	if len(items) > 0 {
		return items, nil
	}

	return s.compute(ctx, item.ID)
}

// Recompute rebuilds the table for one league and stores the snapshot.
func (s *LeagueStandingService) Recompute(ctx context.Context, leagueID string) ([]leaguestanding.Standing, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueStandingService.Recompute")
	defer span.End()

	item, err := loadLeague(ctx, s.leagueRepo, leagueID)
	if err != nil {
		return nil, err
	}

	return s.recompute(ctx, item.ID)
}

// RebuildAll recomputes every league on a bounded worker pool and
// returns the number of leagues rebuilt.
func (s *LeagueStandingService) RebuildAll(ctx context.Context) (int, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueStandingService.RebuildAll")
	defer span.End()

	leagues, err := s.leagueRepo.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("list leagues: %w", err)
	}
	if len(leagues) == 0 {
		return 0, nil
	}

	workerPool, err := ants.NewPool(s.workers)
	if err != nil {
		return 0, fmt.Errorf("create rebuild pool: %w", err)
	}
	defer workerPool.Release()

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		errs    []error
		rebuilt int
	)
	for _, item := range leagues {
		leagueID := item.ID
		wg.Add(1)
		submitErr := workerPool.Submit(func() {
			defer wg.Done()
			if ctx.Err() != nil {
				return
			}
			_, err := s.recompute(ctx, leagueID)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				errs = append(errs, fmt.Errorf("league=%s: %w", leagueID, err))
				return
			}
			rebuilt++
		})
		if submitErr != nil {
			wg.Done()
			mu.Lock()
			errs = append(errs, fmt.Errorf("submit league=%s: %w", leagueID, submitErr))
			mu.Unlock()
		}
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		errs = append(errs, err)
	}
	s.logger.InfoContext(ctx, "standings rebuild finished",
		"leagues", len(leagues),
		"rebuilt", rebuilt,
		"failed", len(errs),
	)

	return rebuilt, errors.Join(errs...)
}

func (s *LeagueStandingService) recompute(ctx context.Context, leagueID string) ([]leaguestanding.Standing, error) {
	items, err := s.compute(ctx, leagueID)
	if err != nil {
		return nil, err
	}

	if err := s.standingRepo.ReplaceByLeague(ctx, leagueID, items); err != nil {
		return nil, fmt.Errorf("replace league standings: %w", err)
	}
	return items, nil
}

func (s *LeagueStandingService) compute(ctx context.Context, leagueID string) ([]leaguestanding.Standing, error) {
	players, err := s.playerRepo.ListByLeague(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("list players by league: %w", err)
	}
	fixtures, err := s.fixtureRepo.ListByLeague(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("list fixtures by league: %w", err)
	}

	items := leaguestanding.CalculateStandings(leagueID, players, fixtures)
	now := s.now().UTC()
	for i := range items {
		items[i].UpdatedAt = now
	}
	return items, nil
}

type standingsRefresher interface {
	Refresh(ctx context.Context, leagueID string)
}

// Refresh rebuilds the stored table after a write that changes it.
// Failures are logged; the periodic rebuild catches up.
func (s *LeagueStandingService) Refresh(ctx context.Context, leagueID string) {
	if _, err := s.Recompute(ctx, leagueID); err != nil {
		s.logger.WarnContext(ctx, "standings recompute failed",
			"league_id", leagueID,
			"error", err,
		)
	}
}

func refreshStandings(ctx context.Context, standings standingsRefresher, leagueID string) {
	if standings == nil {
		return
	}
	standings.Refresh(ctx, leagueID)
}

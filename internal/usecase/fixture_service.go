package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/riskibarqy/gaming-league/internal/domain/fixture"
	"github.com/riskibarqy/gaming-league/internal/domain/league"
	"github.com/riskibarqy/gaming-league/internal/domain/player"
	"github.com/riskibarqy/gaming-league/internal/domain/result"
	idgen "github.com/riskibarqy/gaming-league/internal/platform/id"
)

// GenerateScheduleInput overrides league defaults for one generation run.
// Zero Rounds and Every fall back to the league settings; a nil StartAt
// leaves fixtures undated.
type GenerateScheduleInput struct {
	LeagueID string
	Rounds   int
	StartAt  *time.Time
	Every    time.Duration
	Force    bool
}

type FixtureService struct {
	leagueRepo  league.Repository
	playerRepo  player.Repository
	fixtureRepo fixture.Repository
	reportRepo  result.Repository
	standings   standingsRefresher
	idGen       idgen.Generator
	now         func() time.Time
}

func NewFixtureService(
	leagueRepo league.Repository,
	playerRepo player.Repository,
	fixtureRepo fixture.Repository,
	reportRepo result.Repository,
	standings standingsRefresher,
	idGen idgen.Generator,
) *FixtureService {
	return &FixtureService{
		leagueRepo:  leagueRepo,
		playerRepo:  playerRepo,
		fixtureRepo: fixtureRepo,
		reportRepo:  reportRepo,
		standings:   standings,
		idGen:       idGen,
		now:         time.Now,
	}
}

// GenerateSchedule replaces the league fixtures with a fresh round robin
// over the active players, in registration order.
func (s *FixtureService) GenerateSchedule(ctx context.Context, input GenerateScheduleInput) ([]fixture.Fixture, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FixtureService.GenerateSchedule")
	defer span.End()

	item, err := loadLeague(ctx, s.leagueRepo, input.LeagueID)
	if err != nil {
		return nil, err
	}
	if item.Status == league.StatusCompleted {
		return nil, fmt.Errorf("%w: league %s is completed", ErrConflict, item.ID)
	}

	rounds := input.Rounds
	if rounds == 0 {
		rounds = item.Rounds
	}
	if rounds < 1 || rounds > league.MaxRounds {
		return nil, fmt.Errorf("%w: rounds must be between 1 and %d", ErrInvalidInput, league.MaxRounds)
	}
	every := input.Every
	if every == 0 {
		every = item.MatchdayInterval
	}
	if every < 0 {
		return nil, fmt.Errorf("%w: matchday interval cannot be negative", ErrInvalidInput)
	}

	existing, err := s.fixtureRepo.ListByLeague(ctx, item.ID)
	if err != nil {
		return nil, fmt.Errorf("list fixtures by league: %w", err)
	}
	if !input.Force {
		for _, fx := range existing {
			if fx.IsLocked() {
				return nil, fmt.Errorf("%w: fixture %s is %s, pass force to regenerate", ErrConflict, fx.ID, fx.Status)
			}
		}
	}

	players, err := s.playerRepo.ListByLeague(ctx, item.ID)
	if err != nil {
		return nil, fmt.Errorf("list players by league: %w", err)
	}
	sortByRegistration(players)
	playerIDs := make([]string, 0, len(players))
	for _, p := range players {
		if p.IsActive() {
			playerIDs = append(playerIDs, p.ID)
		}
	}

	pairings, err := fixture.GenerateRoundRobinFixtures(playerIDs, rounds)
	if err != nil {
		if errors.Is(err, fixture.ErrInvalidSchedule) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		return nil, fmt.Errorf("generate round robin: %w", err)
	}
	if input.StartAt != nil {
		pairings = fixture.AssignMatchdayDates(pairings, input.StartAt.UTC(), every)
	}

	now := s.now().UTC()
	fixtures := make([]fixture.Fixture, 0, len(pairings))
	for _, p := range pairings {
		fixtureID, err := s.idGen.NewID()
		if err != nil {
			return nil, fmt.Errorf("generate fixture id: %w", err)
		}
		fixtures = append(fixtures, fixture.Fixture{
			ID:           fixtureID,
			LeagueID:     item.ID,
			Matchday:     p.Matchday,
			Round:        p.Round,
			HomePlayerID: p.HomePlayerID,
			AwayPlayerID: p.AwayPlayerID,
			ScheduledAt:  p.ScheduledAt,
			Status:       fixture.StatusScheduled,
			CreatedAt:    now,
			UpdatedAt:    now,
		})
	}

	if err := s.fixtureRepo.ReplaceByLeague(ctx, item.ID, fixtures); err != nil {
		return nil, fmt.Errorf("replace fixtures by league: %w", err)
	}
	// Reports point at fixtures that no longer exist.
	if len(existing) > 0 {
		if err := s.reportRepo.DeleteByLeague(ctx, item.ID); err != nil {
			return nil, fmt.Errorf("delete reports by league: %w", err)
		}
	}

	if item.Status == league.StatusDraft {
		item.Status = league.StatusActive
		item.UpdatedAt = now
		if err := s.leagueRepo.Update(ctx, item); err != nil {
			return nil, fmt.Errorf("activate league: %w", err)
		}
	}
	refreshStandings(ctx, s.standings, item.ID)

	return fixtures, nil
}

// ListFixtures returns fixtures ordered by matchday. A matchday of 0
// returns the whole schedule.
func (s *FixtureService) ListFixtures(ctx context.Context, leagueID string, matchday int) ([]fixture.Fixture, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FixtureService.ListFixtures")
	defer span.End()

	if matchday < 0 {
		return nil, fmt.Errorf("%w: matchday must be >= 0", ErrInvalidInput)
	}

	item, err := loadLeague(ctx, s.leagueRepo, leagueID)
	if err != nil {
		return nil, err
	}

	fixtures, err := s.fixtureRepo.ListByLeague(ctx, item.ID)
	if err != nil {
		return nil, fmt.Errorf("list fixtures by league: %w", err)
	}

	out := make([]fixture.Fixture, 0, len(fixtures))
	for _, fx := range fixtures {
		if matchday > 0 && fx.Matchday != matchday {
			continue
		}
		out = append(out, fx)
	}
	sortFixtures(out)

	return out, nil
}

func (s *FixtureService) GetFixture(ctx context.Context, leagueID, fixtureID string) (fixture.Fixture, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FixtureService.GetFixture")
	defer span.End()

	return loadFixture(ctx, s.leagueRepo, s.fixtureRepo, leagueID, fixtureID)
}

// RescheduleFixture moves a fixture to a new kick-off time. A nil time
// clears the date.
func (s *FixtureService) RescheduleFixture(ctx context.Context, leagueID, fixtureID string, at *time.Time) (fixture.Fixture, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FixtureService.RescheduleFixture")
	defer span.End()

	item, err := loadFixture(ctx, s.leagueRepo, s.fixtureRepo, leagueID, fixtureID)
	if err != nil {
		return fixture.Fixture{}, err
	}
	if item.Status == fixture.StatusPlayed {
		return fixture.Fixture{}, fmt.Errorf("%w: fixture %s is already played", ErrConflict, item.ID)
	}

	if at != nil {
		utc := at.UTC()
		at = &utc
	}
	item.ScheduledAt = at
	if item.Status == fixture.StatusCancelled {
		item.Status = fixture.StatusScheduled
	}
	item.UpdatedAt = s.now().UTC()

	if err := s.fixtureRepo.Update(ctx, item); err != nil {
		return fixture.Fixture{}, fmt.Errorf("update fixture: %w", err)
	}

	return item, nil
}

func (s *FixtureService) CancelFixture(ctx context.Context, leagueID, fixtureID string) (fixture.Fixture, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FixtureService.CancelFixture")
	defer span.End()

	item, err := loadFixture(ctx, s.leagueRepo, s.fixtureRepo, leagueID, fixtureID)
	if err != nil {
		return fixture.Fixture{}, err
	}
	if item.Status == fixture.StatusPlayed {
		return fixture.Fixture{}, fmt.Errorf("%w: fixture %s is already played", ErrConflict, item.ID)
	}
	if item.Status == fixture.StatusCancelled {
		return item, nil
	}

	item.Status = fixture.StatusCancelled
	item.UpdatedAt = s.now().UTC()
	if err := s.fixtureRepo.Update(ctx, item); err != nil {
		return fixture.Fixture{}, fmt.Errorf("update fixture: %w", err)
	}

	return item, nil
}

func loadFixture(ctx context.Context, leagueRepo league.Repository, fixtureRepo fixture.Repository, leagueID, fixtureID string) (fixture.Fixture, error) {
	item, err := loadLeague(ctx, leagueRepo, leagueID)
	if err != nil {
		return fixture.Fixture{}, err
	}

	fixtureID = strings.TrimSpace(fixtureID)
	if fixtureID == "" {
		return fixture.Fixture{}, fmt.Errorf("%w: fixture id is required", ErrInvalidInput)
	}

	found, exists, err := fixtureRepo.GetByID(ctx, item.ID, fixtureID)
	if err != nil {
		return fixture.Fixture{}, fmt.Errorf("get fixture: %w", err)
	}
	if !exists {
		return fixture.Fixture{}, fmt.Errorf("%w: fixture=%s", ErrNotFound, fixtureID)
	}

	return found, nil
}

// sortFixtures orders by matchday and keeps the repository order within
// a matchday.
func sortFixtures(fixtures []fixture.Fixture) {
	sort.SliceStable(fixtures, func(i, j int) bool {
		return fixtures[i].Matchday < fixtures[j].Matchday
	})
}

package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/gaming-league/internal/domain/fixture"
	"github.com/riskibarqy/gaming-league/internal/domain/league"
	"github.com/riskibarqy/gaming-league/internal/domain/leaguestanding"
	"github.com/riskibarqy/gaming-league/internal/domain/player"
	idgen "github.com/riskibarqy/gaming-league/internal/platform/id"
	"github.com/sourcegraph/conc/pool"
)

const overviewTopStandings = 3

type CreateLeagueInput struct {
	Name             string
	Game             string
	Season           string
	Rounds           int
	MatchdayInterval time.Duration
}

// UpdateLeagueInput carries optional changes; nil fields are left as is.
type UpdateLeagueInput struct {
	LeagueID         string
	Name             *string
	Game             *string
	Season           *string
	Rounds           *int
	Status           *string
	MatchdayInterval *time.Duration
}

type LeagueOverview struct {
	League           league.League
	PlayerCount      int
	ActivePlayers    int
	Matchdays        int
	FixturesByStatus map[string]int
	TopStandings     []leaguestanding.Standing
}

type standingsReader interface {
	ListByLeague(ctx context.Context, leagueID string) ([]leaguestanding.Standing, error)
}

type LeagueService struct {
	leagueRepo  league.Repository
	playerRepo  player.Repository
	fixtureRepo fixture.Repository
	standings   standingsReader
	idGen       idgen.Generator
	now         func() time.Time
}

func NewLeagueService(
	leagueRepo league.Repository,
	playerRepo player.Repository,
	fixtureRepo fixture.Repository,
	standings standingsReader,
	idGen idgen.Generator,
) *LeagueService {
	return &LeagueService{
		leagueRepo:  leagueRepo,
		playerRepo:  playerRepo,
		fixtureRepo: fixtureRepo,
		standings:   standings,
		idGen:       idGen,
		now:         time.Now,
	}
}

func (s *LeagueService) ListLeagues(ctx context.Context) ([]league.League, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.ListLeagues")
	defer span.End()

	leagues, err := s.leagueRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list leagues: %w", err)
	}

	return leagues, nil
}

func (s *LeagueService) GetLeague(ctx context.Context, leagueID string) (league.League, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.GetLeague")
	defer span.End()

	return loadLeague(ctx, s.leagueRepo, leagueID)
}

func (s *LeagueService) CreateLeague(ctx context.Context, input CreateLeagueInput) (league.League, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.CreateLeague")
	defer span.End()

	rounds := input.Rounds
	if rounds == 0 {
		rounds = league.DefaultRounds
	}

	leagueID, err := s.idGen.NewID()
	if err != nil {
		return league.League{}, fmt.Errorf("generate league id: %w", err)
	}

	now := s.now().UTC()
	item := league.League{
		ID:               leagueID,
		Name:             strings.TrimSpace(input.Name),
		Game:             strings.TrimSpace(input.Game),
		Season:           strings.TrimSpace(input.Season),
		Rounds:           rounds,
		Status:           league.StatusDraft,
		MatchdayInterval: input.MatchdayInterval,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := item.Validate(); err != nil {
		return league.League{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.leagueRepo.Create(ctx, item); err != nil {
		return league.League{}, fmt.Errorf("create league: %w", err)
	}

	return item, nil
}

func (s *LeagueService) UpdateLeague(ctx context.Context, input UpdateLeagueInput) (league.League, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.UpdateLeague")
	defer span.End()

	item, err := loadLeague(ctx, s.leagueRepo, input.LeagueID)
	if err != nil {
		return league.League{}, err
	}

	if input.Name != nil {
		item.Name = strings.TrimSpace(*input.Name)
	}
	if input.Game != nil {
		item.Game = strings.TrimSpace(*input.Game)
	}
	if input.Season != nil {
		item.Season = strings.TrimSpace(*input.Season)
	}
	if input.Rounds != nil {
		item.Rounds = *input.Rounds
	}
	if input.Status != nil {
		item.Status = league.NormalizeStatus(*input.Status)
	}
	if input.MatchdayInterval != nil {
		item.MatchdayInterval = *input.MatchdayInterval
	}
	item.UpdatedAt = s.now().UTC()

	if err := item.Validate(); err != nil {
		return league.League{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := s.leagueRepo.Update(ctx, item); err != nil {
		return league.League{}, fmt.Errorf("update league: %w", err)
	}

	return item, nil
}

// GetOverview loads the league summary with players, fixtures and the
// head of the table fetched concurrently.
func (s *LeagueService) GetOverview(ctx context.Context, leagueID string) (LeagueOverview, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.GetOverview")
	defer span.End()

	item, err := loadLeague(ctx, s.leagueRepo, leagueID)
	if err != nil {
		return LeagueOverview{}, err
	}

	var (
		players   []player.Player
		fixtures  []fixture.Fixture
		standings []leaguestanding.Standing
	)
	p := pool.New().WithContext(ctx).WithCancelOnError()
	p.Go(func(ctx context.Context) error {
		items, err := s.playerRepo.ListByLeague(ctx, item.ID)
		if err != nil {
			return fmt.Errorf("list players: %w", err)
		}
		players = items
		return nil
	})
	p.Go(func(ctx context.Context) error {
		items, err := s.fixtureRepo.ListByLeague(ctx, item.ID)
		if err != nil {
			return fmt.Errorf("list fixtures: %w", err)
		}
		fixtures = items
		return nil
	})
	if s.standings != nil {
		p.Go(func(ctx context.Context) error {
			items, err := s.standings.ListByLeague(ctx, item.ID)
			if err != nil {
				return fmt.Errorf("list standings: %w", err)
			}
			standings = items
			return nil
		})
	}
	if err := p.Wait(); err != nil {
		return LeagueOverview{}, err
	}

	out := LeagueOverview{
		League:           item,
		PlayerCount:      len(players),
		FixturesByStatus: make(map[string]int, 4),
	}
	for _, pl := range players {
		if pl.IsActive() {
			out.ActivePlayers++
		}
	}
	for _, fx := range fixtures {
		out.FixturesByStatus[fx.Status]++
		if fx.Matchday > out.Matchdays {
			out.Matchdays = fx.Matchday
		}
	}
	if len(standings) > overviewTopStandings {
		standings = standings[:overviewTopStandings]
	}
	out.TopStandings = standings

	return out, nil
}

func loadLeague(ctx context.Context, repo league.Repository, leagueID string) (league.League, error) {
	leagueID = strings.TrimSpace(leagueID)
	if leagueID == "" {
		return league.League{}, fmt.Errorf("%w: league id is required", ErrInvalidInput)
	}

	item, exists, err := repo.GetByID(ctx, leagueID)
	if err != nil {
		return league.League{}, fmt.Errorf("get league: %w", err)
	}
	if !exists {
		return league.League{}, fmt.Errorf("%w: league=%s", ErrNotFound, leagueID)
	}

	return item, nil
}

package cache

import (
	"context"
	"time"

	"github.com/riskibarqy/gaming-league/internal/domain/fixture"
	"github.com/riskibarqy/gaming-league/internal/domain/league"
	"github.com/riskibarqy/gaming-league/internal/domain/leaguestanding"
	"github.com/riskibarqy/gaming-league/internal/domain/player"
	basecache "github.com/riskibarqy/gaming-league/internal/platform/cache"
)

const leagueListKey = "league:list"

type LeagueRepository struct {
	next  league.Repository
	cache *basecache.Store
}

func NewLeagueRepository(next league.Repository, cache *basecache.Store) *LeagueRepository {
	return &LeagueRepository{next: next, cache: cache}
}

func (r *LeagueRepository) List(ctx context.Context) ([]league.League, error) {
	v, err := r.cache.GetOrLoad(ctx, leagueListKey, func(ctx context.Context) (any, error) {
		items, err := r.next.List(ctx)
		if err != nil {
			return nil, err
		}
		return append([]league.League(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]league.League)
	return append([]league.League(nil), items...), nil
}

func (r *LeagueRepository) GetByID(ctx context.Context, leagueID string) (league.League, bool, error) {
	v, err := r.cache.GetOrLoad(ctx, leagueKey(leagueID), func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByID(ctx, leagueID)
		if err != nil {
			return nil, err
		}
		return cachedLeagueByID{value: item, exists: exists}, nil
	})
	if err != nil {
		return league.League{}, false, err
	}

	cached, _ := v.(cachedLeagueByID)
	return cached.value, cached.exists, nil
}

func (r *LeagueRepository) Create(ctx context.Context, item league.League) error {
	if err := r.next.Create(ctx, item); err != nil {
		return err
	}
	r.cache.Delete(ctx, leagueListKey, leagueKey(item.ID))
	return nil
}

func (r *LeagueRepository) Update(ctx context.Context, item league.League) error {
	if err := r.next.Update(ctx, item); err != nil {
		return err
	}
	r.cache.Delete(ctx, leagueListKey, leagueKey(item.ID))
	return nil
}

type cachedLeagueByID struct {
	value  league.League
	exists bool
}

type PlayerRepository struct {
	next  player.Repository
	cache *basecache.Store
}

func NewPlayerRepository(next player.Repository, cache *basecache.Store) *PlayerRepository {
	return &PlayerRepository{next: next, cache: cache}
}

func (r *PlayerRepository) ListByLeague(ctx context.Context, leagueID string) ([]player.Player, error) {
	v, err := r.cache.GetOrLoad(ctx, playerListKey(leagueID), func(ctx context.Context) (any, error) {
		items, err := r.next.ListByLeague(ctx, leagueID)
		if err != nil {
			return nil, err
		}
		return append([]player.Player(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]player.Player)
	return append([]player.Player(nil), items...), nil
}

func (r *PlayerRepository) GetByID(ctx context.Context, leagueID, playerID string) (player.Player, bool, error) {
	v, err := r.cache.GetOrLoad(ctx, playerKey(leagueID, playerID), func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByID(ctx, leagueID, playerID)
		if err != nil {
			return nil, err
		}
		return cachedPlayerByID{value: item, exists: exists}, nil
	})
	if err != nil {
		return player.Player{}, false, err
	}

	cached, _ := v.(cachedPlayerByID)
	return cached.value, cached.exists, nil
}

func (r *PlayerRepository) Create(ctx context.Context, item player.Player) error {
	if err := r.next.Create(ctx, item); err != nil {
		return err
	}
	r.invalidate(ctx, item.LeagueID, item.ID)
	return nil
}

func (r *PlayerRepository) Update(ctx context.Context, item player.Player) error {
	if err := r.next.Update(ctx, item); err != nil {
		return err
	}
	r.invalidate(ctx, item.LeagueID, item.ID)
	return nil
}

func (r *PlayerRepository) Delete(ctx context.Context, leagueID, playerID string) error {
	if err := r.next.Delete(ctx, leagueID, playerID); err != nil {
		return err
	}
	r.invalidate(ctx, leagueID, playerID)
	return nil
}

func (r *PlayerRepository) invalidate(ctx context.Context, leagueID, playerID string) {
	r.cache.Delete(ctx, playerListKey(leagueID), playerKey(leagueID, playerID))
}

type cachedPlayerByID struct {
	value  player.Player
	exists bool
}

type FixtureRepository struct {
	next  fixture.Repository
	cache *basecache.Store
}

func NewFixtureRepository(next fixture.Repository, cache *basecache.Store) *FixtureRepository {
	return &FixtureRepository{next: next, cache: cache}
}

func (r *FixtureRepository) ListByLeague(ctx context.Context, leagueID string) ([]fixture.Fixture, error) {
	v, err := r.cache.GetOrLoad(ctx, fixtureListKey(leagueID), func(ctx context.Context) (any, error) {
		items, err := r.next.ListByLeague(ctx, leagueID)
		if err != nil {
			return nil, err
		}
		return cloneFixtures(items), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]fixture.Fixture)
	return cloneFixtures(items), nil
}

// GetByID reads through to the store; single fixtures are read right
// before a write and must not be stale.
func (r *FixtureRepository) GetByID(ctx context.Context, leagueID, fixtureID string) (fixture.Fixture, bool, error) {
	return r.next.GetByID(ctx, leagueID, fixtureID)
}

func (r *FixtureRepository) ReplaceByLeague(ctx context.Context, leagueID string, fixtures []fixture.Fixture) error {
	if err := r.next.ReplaceByLeague(ctx, leagueID, fixtures); err != nil {
		return err
	}
	r.cache.Delete(ctx, fixtureListKey(leagueID))
	return nil
}

func (r *FixtureRepository) Update(ctx context.Context, item fixture.Fixture) error {
	if err := r.next.Update(ctx, item); err != nil {
		return err
	}
	r.cache.Delete(ctx, fixtureListKey(item.LeagueID))
	return nil
}

type LeagueStandingRepository struct {
	next  leaguestanding.Repository
	cache *basecache.Store
}

func NewLeagueStandingRepository(next leaguestanding.Repository, cache *basecache.Store) *LeagueStandingRepository {
	return &LeagueStandingRepository{next: next, cache: cache}
}

func (r *LeagueStandingRepository) ListByLeague(ctx context.Context, leagueID string) ([]leaguestanding.Standing, error) {
	v, err := r.cache.GetOrLoad(ctx, standingListKey(leagueID), func(ctx context.Context) (any, error) {
		items, err := r.next.ListByLeague(ctx, leagueID)
		if err != nil {
			return nil, err
		}
		return cloneStandings(items), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]leaguestanding.Standing)
	return cloneStandings(items), nil
}

func (r *LeagueStandingRepository) ReplaceByLeague(ctx context.Context, leagueID string, standings []leaguestanding.Standing) error {
	if err := r.next.ReplaceByLeague(ctx, leagueID, standings); err != nil {
		return err
	}
	r.cache.Delete(ctx, standingListKey(leagueID))
	return nil
}

func leagueKey(leagueID string) string {
	return "league:id:" + leagueID
}

func playerListKey(leagueID string) string {
	return "player:list:" + leagueID
}

func playerKey(leagueID, playerID string) string {
	return "player:id:" + leagueID + ":" + playerID
}

func fixtureListKey(leagueID string) string {
	return "fixture:list:" + leagueID
}

func standingListKey(leagueID string) string {
	return "standing:list:" + leagueID
}

func cloneFixtures(items []fixture.Fixture) []fixture.Fixture {
	out := make([]fixture.Fixture, 0, len(items))
	for _, item := range items {
		item.ScheduledAt = cloneTime(item.ScheduledAt)
		item.PlayedAt = cloneTime(item.PlayedAt)
		item.HomeScore = cloneInt(item.HomeScore)
		item.AwayScore = cloneInt(item.AwayScore)
		out = append(out, item)
	}
	return out
}

func cloneStandings(items []leaguestanding.Standing) []leaguestanding.Standing {
	out := make([]leaguestanding.Standing, 0, len(items))
	for _, item := range items {
		form := make([]string, len(item.Form))
		copy(form, item.Form)
		item.Form = form
		out = append(out, item)
	}
	return out
}

func cloneTime(v *time.Time) *time.Time {
	if v == nil {
		return nil
	}
	out := *v
	return &out
}

func cloneInt(v *int) *int {
	if v == nil {
		return nil
	}
	out := *v
	return &out
}

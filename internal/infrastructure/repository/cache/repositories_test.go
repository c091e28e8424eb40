package cache

import (
	"context"
	"testing"
	"time"

	"github.com/riskibarqy/gaming-league/internal/domain/fixture"
	"github.com/riskibarqy/gaming-league/internal/domain/league"
	"github.com/riskibarqy/gaming-league/internal/domain/leaguestanding"
	"github.com/riskibarqy/gaming-league/internal/domain/player"
	"github.com/riskibarqy/gaming-league/internal/infrastructure/repository/memory"
	basecache "github.com/riskibarqy/gaming-league/internal/platform/cache"
)

type countingLeagueRepository struct {
	*memory.LeagueRepository
	lists int
}

func (r *countingLeagueRepository) List(ctx context.Context) ([]league.League, error) {
	r.lists++
	return r.LeagueRepository.List(ctx)
}

func TestLeagueRepository_CachesListUntilWrite(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	next := &countingLeagueRepository{LeagueRepository: memory.NewLeagueRepository(memory.SeedLeagues())}
	repo := NewLeagueRepository(next, basecache.NewStore(time.Minute))

	for i := 0; i < 3; i++ {
		if _, err := repo.List(ctx); err != nil {
			t.Fatalf("list leagues: %v", err)
		}
	}
	if next.lists != 1 {
		t.Fatalf("expected 1 backend list call, got %d", next.lists)
	}

	created := memory.SeedLeagues()[0]
	created.ID = "lg-new"
	if err := repo.Create(ctx, created); err != nil {
		t.Fatalf("create league: %v", err)
	}

	items, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list leagues after create: %v", err)
	}
	if len(items) != 2 || next.lists != 2 {
		t.Fatalf("expected reload with 2 leagues, got %d items after %d calls", len(items), next.lists)
	}
}

func TestPlayerRepository_InvalidatesOnUpdate(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewPlayerRepository(memory.NewPlayerRepository(memory.SeedPlayers()), basecache.NewStore(time.Minute))

	item, exists, err := repo.GetByID(ctx, memory.LeagueIDDemo, "pl-demo-01")
	if err != nil || !exists {
		t.Fatalf("get player: exists=%v err=%v", exists, err)
	}
	if _, err := repo.ListByLeague(ctx, memory.LeagueIDDemo); err != nil {
		t.Fatalf("warm list: %v", err)
	}

	item.Status = player.StatusWithdrawn
	if err := repo.Update(ctx, item); err != nil {
		t.Fatalf("update player: %v", err)
	}

	got, _, err := repo.GetByID(ctx, memory.LeagueIDDemo, "pl-demo-01")
	if err != nil {
		t.Fatalf("get player after update: %v", err)
	}
	if got.Status != player.StatusWithdrawn {
		t.Fatalf("expected withdrawn status after invalidation, got %s", got.Status)
	}

	items, err := repo.ListByLeague(ctx, memory.LeagueIDDemo)
	if err != nil {
		t.Fatalf("list players after update: %v", err)
	}
	if items[0].Status != player.StatusWithdrawn {
		t.Fatalf("expected list to be reloaded, got %+v", items[0])
	}
}

func TestFixtureRepository_ReturnsDetachedCopies(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	at := time.Date(2026, 3, 6, 19, 0, 0, 0, time.UTC)
	backend := memory.NewFixtureRepository(nil)
	if err := backend.ReplaceByLeague(ctx, "lg-1", []fixture.Fixture{{
		ID:           "fx-1",
		LeagueID:     "lg-1",
		Matchday:     1,
		Round:        1,
		HomePlayerID: "pl-1",
		AwayPlayerID: "pl-2",
		ScheduledAt:  &at,
		Status:       fixture.StatusScheduled,
	}}); err != nil {
		t.Fatalf("seed fixtures: %v", err)
	}
	repo := NewFixtureRepository(backend, basecache.NewStore(time.Minute))

	first, err := repo.ListByLeague(ctx, "lg-1")
	if err != nil {
		t.Fatalf("list fixtures: %v", err)
	}
	shifted := first[0].ScheduledAt.Add(time.Hour)
	*first[0].ScheduledAt = shifted

	second, err := repo.ListByLeague(ctx, "lg-1")
	if err != nil {
		t.Fatalf("list fixtures again: %v", err)
	}
	if !second[0].ScheduledAt.Equal(at) {
		t.Fatalf("cached fixture was mutated through a returned pointer: %v", second[0].ScheduledAt)
	}
}

func TestLeagueStandingRepository_ReplaceInvalidates(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewLeagueStandingRepository(memory.NewLeagueStandingRepository(), basecache.NewStore(time.Minute))

	items, err := repo.ListByLeague(ctx, "lg-1")
	if err != nil {
		t.Fatalf("list empty standings: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected no standings, got %d", len(items))
	}

	if err := repo.ReplaceByLeague(ctx, "lg-1", []leaguestanding.Standing{{LeagueID: "lg-1", PlayerID: "pl-1", Position: 1, Form: []string{"W"}}}); err != nil {
		t.Fatalf("replace standings: %v", err)
	}

	items, err = repo.ListByLeague(ctx, "lg-1")
	if err != nil {
		t.Fatalf("list standings: %v", err)
	}
	if len(items) != 1 || items[0].Form[0] != "W" {
		t.Fatalf("unexpected standings after replace: %+v", items)
	}
}

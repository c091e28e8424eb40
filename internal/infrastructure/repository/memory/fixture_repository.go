package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/riskibarqy/gaming-league/internal/domain/fixture"
)

type FixtureRepository struct {
	mu               sync.RWMutex
	fixturesByLeague map[string][]fixture.Fixture
}

func NewFixtureRepository(fixtures []fixture.Fixture) *FixtureRepository {
	fixturesByLeague := make(map[string][]fixture.Fixture)
	for _, item := range fixtures {
		fixturesByLeague[item.LeagueID] = append(fixturesByLeague[item.LeagueID], cloneFixture(item))
	}

	return &FixtureRepository{fixturesByLeague: fixturesByLeague}
}

func (r *FixtureRepository) ListByLeague(_ context.Context, leagueID string) ([]fixture.Fixture, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := r.fixturesByLeague[leagueID]
	out := make([]fixture.Fixture, 0, len(items))
	for _, item := range items {
		out = append(out, cloneFixture(item))
	}
	return out, nil
}

func (r *FixtureRepository) GetByID(_ context.Context, leagueID, fixtureID string) (fixture.Fixture, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.fixturesByLeague[leagueID] {
		if item.ID == fixtureID {
			return cloneFixture(item), true, nil
		}
	}
	return fixture.Fixture{}, false, nil
}

func (r *FixtureRepository) ReplaceByLeague(_ context.Context, leagueID string, fixtures []fixture.Fixture) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]fixture.Fixture, 0, len(fixtures))
	for _, item := range fixtures {
		item.LeagueID = leagueID
		out = append(out, cloneFixture(item))
	}
	r.fixturesByLeague[leagueID] = out
	return nil
}

func (r *FixtureRepository) Update(_ context.Context, item fixture.Fixture) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	items := r.fixturesByLeague[item.LeagueID]
	for i := range items {
		if items[i].ID == item.ID {
			items[i] = cloneFixture(item)
			return nil
		}
	}
	return fmt.Errorf("%w: fixture=%s", ErrRecordNotFound, item.ID)
}

func cloneFixture(item fixture.Fixture) fixture.Fixture {
	copied := item
	copied.ScheduledAt = cloneTime(item.ScheduledAt)
	copied.PlayedAt = cloneTime(item.PlayedAt)
	copied.HomeScore = cloneInt(item.HomeScore)
	copied.AwayScore = cloneInt(item.AwayScore)
	return copied
}

package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/gaming-league/internal/domain/leaguestanding"
)

type LeagueStandingRepository struct {
	mu    sync.RWMutex
	items map[string][]leaguestanding.Standing
}

func NewLeagueStandingRepository() *LeagueStandingRepository {
	return &LeagueStandingRepository{items: make(map[string][]leaguestanding.Standing)}
}

func (r *LeagueStandingRepository) ListByLeague(_ context.Context, leagueID string) ([]leaguestanding.Standing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return cloneStandings(r.items[leagueID]), nil
}

func (r *LeagueStandingRepository) ReplaceByLeague(_ context.Context, leagueID string, standings []leaguestanding.Standing) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[leagueID] = cloneStandings(standings)
	return nil
}

func cloneStandings(items []leaguestanding.Standing) []leaguestanding.Standing {
	out := make([]leaguestanding.Standing, 0, len(items))
	for _, item := range items {
		copied := item
		copied.Form = append([]string{}, item.Form...)
		out = append(out, copied)
	}
	return out
}

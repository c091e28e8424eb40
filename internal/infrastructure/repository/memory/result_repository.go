package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/riskibarqy/gaming-league/internal/domain/result"
)

type ResultRepository struct {
	mu     sync.RWMutex
	items  map[string]result.Report
	orders []string
}

func NewResultRepository() *ResultRepository {
	return &ResultRepository{items: make(map[string]result.Report)}
}

func (r *ResultRepository) ListByLeague(_ context.Context, leagueID, status string) ([]result.Report, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]result.Report, 0)
	for _, id := range r.orders {
		item := r.items[id]
		if item.LeagueID != leagueID {
			continue
		}
		if status != "" && item.Status != status {
			continue
		}
		out = append(out, cloneReport(item))
	}
	return out, nil
}

func (r *ResultRepository) ListByFixture(_ context.Context, fixtureID string) ([]result.Report, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]result.Report, 0)
	for _, id := range r.orders {
		if item := r.items[id]; item.FixtureID == fixtureID {
			out = append(out, cloneReport(item))
		}
	}
	return out, nil
}

func (r *ResultRepository) GetByID(_ context.Context, reportID string) (result.Report, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[reportID]
	if !ok {
		return result.Report{}, false, nil
	}
	return cloneReport(item), true, nil
}

func (r *ResultRepository) Create(_ context.Context, item result.Report) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[item.ID]; exists {
		return fmt.Errorf("report %s already exists", item.ID)
	}
	r.items[item.ID] = cloneReport(item)
	r.orders = append(r.orders, item.ID)
	return nil
}

func (r *ResultRepository) Update(_ context.Context, item result.Report) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[item.ID]; !exists {
		return fmt.Errorf("%w: report=%s", ErrRecordNotFound, item.ID)
	}
	r.items[item.ID] = cloneReport(item)
	return nil
}

func (r *ResultRepository) DeleteByLeague(_ context.Context, leagueID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.orders[:0]
	for _, id := range r.orders {
		if r.items[id].LeagueID == leagueID {
			delete(r.items, id)
			continue
		}
		kept = append(kept, id)
	}
	r.orders = kept
	return nil
}

func cloneReport(item result.Report) result.Report {
	copied := item
	copied.ReviewedAt = cloneTime(item.ReviewedAt)
	return copied
}

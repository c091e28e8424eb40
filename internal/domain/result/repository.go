package result

import "context"

// Repository exposes result report persistence operations.
type Repository interface {
	// ListByLeague returns reports of a league, optionally filtered by status.
	ListByLeague(ctx context.Context, leagueID, status string) ([]Report, error)
	ListByFixture(ctx context.Context, fixtureID string) ([]Report, error)
	GetByID(ctx context.Context, reportID string) (Report, bool, error)
	Create(ctx context.Context, item Report) error
	Update(ctx context.Context, item Report) error
	// DeleteByLeague removes every report of a league, used when its
	// schedule is regenerated.
	DeleteByLeague(ctx context.Context, leagueID string) error
}

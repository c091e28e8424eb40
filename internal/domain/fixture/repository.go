package fixture

import "context"

// Repository exposes fixture persistence operations.
type Repository interface {
	ListByLeague(ctx context.Context, leagueID string) ([]Fixture, error)
	GetByID(ctx context.Context, leagueID, fixtureID string) (Fixture, bool, error)
	ReplaceByLeague(ctx context.Context, leagueID string, fixtures []Fixture) error
	Update(ctx context.Context, item Fixture) error
}

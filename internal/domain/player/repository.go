package player

import "context"

// Repository describes player persistence needs from use cases.
type Repository interface {
	ListByLeague(ctx context.Context, leagueID string) ([]Player, error)
	GetByID(ctx context.Context, leagueID, playerID string) (Player, bool, error)
	Create(ctx context.Context, item Player) error
	Update(ctx context.Context, item Player) error
	Delete(ctx context.Context, leagueID, playerID string) error
}

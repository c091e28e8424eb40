package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/gaming-league/internal/infrastructure/repository/memory"
)

// BootstrapSeed loads the demo league into an empty database.
func BootstrapSeed(ctx context.Context, db *sqlx.DB) error {
	var count int
	if err := db.GetContext(ctx, &count, `SELECT COUNT(1) FROM leagues WHERE deleted_at IS NULL`); err != nil {
		return fmt.Errorf("count leagues for bootstrap seed: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, l := range memory.SeedLeagues() {
		sqlQuery, args, err := sqlx.Named(`
INSERT INTO leagues (public_id, name, game, season, rounds, status, matchday_interval_seconds, created_at, updated_at)
VALUES (:public_id, :name, :game, :season, :rounds, :status, :interval, :created_at, :created_at)
ON CONFLICT (public_id) DO NOTHING`, map[string]any{
			"public_id":  l.ID,
			"name":       l.Name,
			"game":       l.Game,
			"season":     l.Season,
			"rounds":     l.Rounds,
			"status":     l.Status,
			"interval":   int64(l.MatchdayInterval.Seconds()),
			"created_at": l.CreatedAt,
		})
		if err != nil {
			return fmt.Errorf("bind seed league %s query: %w", l.ID, err)
		}
		sqlQuery = tx.Rebind(sqlQuery)
		if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
			return fmt.Errorf("seed league %s: %w", l.ID, err)
		}
	}

	for _, p := range memory.SeedPlayers() {
		sqlQuery, args, err := sqlx.Named(`
INSERT INTO players (public_id, league_public_id, name, gamertag, gamertag_key, status, registered_at, updated_at)
VALUES (:public_id, :league_public_id, :name, :gamertag, :gamertag_key, :status, :registered_at, :registered_at)
ON CONFLICT (public_id) DO NOTHING`, map[string]any{
			"public_id":        p.ID,
			"league_public_id": p.LeagueID,
			"name":             p.Name,
			"gamertag":         p.Gamertag,
			"gamertag_key":     p.GamertagKey,
			"status":           p.Status,
			"registered_at":    p.RegisteredAt,
		})
		if err != nil {
			return fmt.Errorf("bind seed player %s query: %w", p.ID, err)
		}
		sqlQuery = tx.Rebind(sqlQuery)
		if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
			return fmt.Errorf("seed player %s: %w", p.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed tx: %w", err)
	}
	return nil
}

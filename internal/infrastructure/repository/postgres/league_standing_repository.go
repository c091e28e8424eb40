package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/gaming-league/internal/domain/leaguestanding"
	qb "github.com/riskibarqy/gaming-league/internal/platform/querybuilder"
)

type LeagueStandingRepository struct {
	db *sqlx.DB
}

func NewLeagueStandingRepository(db *sqlx.DB) *LeagueStandingRepository {
	return &LeagueStandingRepository{db: db}
}

func (r *LeagueStandingRepository) ListByLeague(ctx context.Context, leagueID string) ([]leaguestanding.Standing, error) {
	query, args, err := qb.Select("*").From("league_standings").
		Where(qb.Eq("league_public_id", leagueID)).
		OrderBy("position", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list league standings query: %w", err)
	}

	var rows []leagueStandingTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list league standings: %w", err)
	}

	out := make([]leaguestanding.Standing, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

// ReplaceByLeague swaps the stored table snapshot in one transaction.
func (r *LeagueStandingRepository) ReplaceByLeague(ctx context.Context, leagueID string, standings []leaguestanding.Standing) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx replace league standings: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	clearQuery, clearArgs, err := qb.DeleteFrom("league_standings").
		Where(qb.Eq("league_public_id", leagueID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build clear league standings query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, clearQuery, clearArgs...); err != nil {
		return fmt.Errorf("clear league standings: %w", err)
	}

	if len(standings) > 0 {
		models := make([]any, 0, len(standings))
		for _, item := range standings {
			models = append(models, newLeagueStandingInsertModel(leagueID, item))
		}
		query, args, err := qb.InsertModels("league_standings", models, "")
		if err != nil {
			return fmt.Errorf("build insert league standings query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("insert league standings league=%s: %w", leagueID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit replace league standings tx: %w", err)
	}
	return nil
}

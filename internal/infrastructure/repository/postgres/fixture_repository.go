package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/gaming-league/internal/domain/fixture"
	qb "github.com/riskibarqy/gaming-league/internal/platform/querybuilder"
)

// fixtureInsertBatch keeps multi-row inserts under the 65535 bind
// parameter limit.
const fixtureInsertBatch = 500

type FixtureRepository struct {
	db *sqlx.DB
}

func NewFixtureRepository(db *sqlx.DB) *FixtureRepository {
	return &FixtureRepository{db: db}
}

func (r *FixtureRepository) ListByLeague(ctx context.Context, leagueID string) ([]fixture.Fixture, error) {
	query, args, err := qb.Select("*").From("fixtures").
		Where(qb.Eq("league_public_id", leagueID)).
		OrderBy("matchday", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list fixtures query: %w", err)
	}

	var rows []fixtureTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list fixtures by league: %w", err)
	}

	out := make([]fixture.Fixture, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *FixtureRepository) GetByID(ctx context.Context, leagueID, fixtureID string) (fixture.Fixture, bool, error) {
	query, args, err := qb.Select("*").From("fixtures").
		Where(
			qb.Eq("league_public_id", leagueID),
			qb.Eq("public_id", fixtureID),
		).
		ToSQL()
	if err != nil {
		return fixture.Fixture{}, false, fmt.Errorf("build get fixture query: %w", err)
	}

	var row fixtureTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return fixture.Fixture{}, false, nil
		}
		return fixture.Fixture{}, false, fmt.Errorf("get fixture by id: %w", err)
	}
	return row.toDomain(), true, nil
}

// ReplaceByLeague swaps the whole schedule in one transaction. Reports
// of the removed fixtures go with them through the foreign key cascade.
func (r *FixtureRepository) ReplaceByLeague(ctx context.Context, leagueID string, fixtures []fixture.Fixture) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx replace fixtures: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	clearQuery, clearArgs, err := qb.DeleteFrom("fixtures").
		Where(qb.Eq("league_public_id", leagueID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build clear fixtures query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, clearQuery, clearArgs...); err != nil {
		return fmt.Errorf("clear fixtures: %w", err)
	}

	for start := 0; start < len(fixtures); start += fixtureInsertBatch {
		end := min(start+fixtureInsertBatch, len(fixtures))
		models := make([]any, 0, end-start)
		for _, item := range fixtures[start:end] {
			models = append(models, newFixtureInsertModel(leagueID, item))
		}

		query, args, err := qb.InsertModels("fixtures", models, "")
		if err != nil {
			return fmt.Errorf("build insert fixtures query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("insert fixtures batch at %d: %w", start, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit replace fixtures tx: %w", err)
	}
	return nil
}

func (r *FixtureRepository) Update(ctx context.Context, item fixture.Fixture) error {
	query, args, err := qb.Update("fixtures").
		Set("scheduled_at", timePtrToNullTime(item.ScheduledAt)).
		Set("home_score", intPtrToNullInt64(item.HomeScore)).
		Set("away_score", intPtrToNullInt64(item.AwayScore)).
		Set("status", item.Status).
		Set("played_at", timePtrToNullTime(item.PlayedAt)).
		Set("updated_at", item.UpdatedAt).
		Where(
			qb.Eq("league_public_id", item.LeagueID),
			qb.Eq("public_id", item.ID),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update fixture query: %w", err)
	}

	return execAffectingOne(ctx, r.db, "update fixture", item.ID, query, args)
}

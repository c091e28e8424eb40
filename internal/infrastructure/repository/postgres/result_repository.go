package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/gaming-league/internal/domain/result"
	qb "github.com/riskibarqy/gaming-league/internal/platform/querybuilder"
)

type ResultRepository struct {
	db *sqlx.DB
}

func NewResultRepository(db *sqlx.DB) *ResultRepository {
	return &ResultRepository{db: db}
}

func (r *ResultRepository) ListByLeague(ctx context.Context, leagueID, status string) ([]result.Report, error) {
	conditions := []qb.Condition{qb.Eq("league_public_id", leagueID)}
	if status != "" {
		conditions = append(conditions, qb.Eq("status", status))
	}

	query, args, err := qb.Select("*").From("result_reports").
		Where(conditions...).
		OrderBy("created_at", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list result reports query: %w", err)
	}
	return r.selectReports(ctx, query, args)
}

func (r *ResultRepository) ListByFixture(ctx context.Context, fixtureID string) ([]result.Report, error) {
	query, args, err := qb.Select("*").From("result_reports").
		Where(qb.Eq("fixture_public_id", fixtureID)).
		OrderBy("created_at", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list fixture reports query: %w", err)
	}
	return r.selectReports(ctx, query, args)
}

func (r *ResultRepository) GetByID(ctx context.Context, reportID string) (result.Report, bool, error) {
	query, args, err := qb.Select("*").From("result_reports").
		Where(qb.Eq("public_id", reportID)).
		ToSQL()
	if err != nil {
		return result.Report{}, false, fmt.Errorf("build get result report query: %w", err)
	}

	var row resultReportTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return result.Report{}, false, nil
		}
		return result.Report{}, false, fmt.Errorf("get result report: %w", err)
	}
	return row.toDomain(), true, nil
}

func (r *ResultRepository) Create(ctx context.Context, item result.Report) error {
	query, args, err := qb.InsertModel("result_reports", resultReportInsertModel{
		PublicID:        item.ID,
		LeaguePublicID:  item.LeagueID,
		FixturePublicID: item.FixtureID,
		ReportedBy:      item.ReportedBy,
		HomeScore:       item.HomeScore,
		AwayScore:       item.AwayScore,
		Status:          item.Status,
		Note:            stringToNullString(item.Note),
		CreatedAt:       item.CreatedAt,
	}, "")
	if err != nil {
		return fmt.Errorf("build insert result report query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert result report: %w", err)
	}
	return nil
}

func (r *ResultRepository) Update(ctx context.Context, item result.Report) error {
	query, args, err := qb.Update("result_reports").
		Set("status", item.Status).
		Set("review_note", stringToNullString(item.ReviewNote)).
		Set("reviewed_at", timePtrToNullTime(item.ReviewedAt)).
		Where(qb.Eq("public_id", item.ID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update result report query: %w", err)
	}

	return execAffectingOne(ctx, r.db, "update result report", item.ID, query, args)
}

// DeleteByLeague is usually a no-op after a fixture replace, since the
// fixture foreign key cascades; it also clears reports left by a partial
// regeneration.
func (r *ResultRepository) DeleteByLeague(ctx context.Context, leagueID string) error {
	query, args, err := qb.DeleteFrom("result_reports").
		Where(qb.Eq("league_public_id", leagueID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build delete result reports query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete result reports: %w", err)
	}
	return nil
}

func (r *ResultRepository) selectReports(ctx context.Context, query string, args []any) ([]result.Report, error) {
	var rows []resultReportTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select result reports: %w", err)
	}

	out := make([]result.Report, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

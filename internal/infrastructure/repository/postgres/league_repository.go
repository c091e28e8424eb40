package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/gaming-league/internal/domain/league"
	qb "github.com/riskibarqy/gaming-league/internal/platform/querybuilder"
)

type LeagueRepository struct {
	db *sqlx.DB
}

func NewLeagueRepository(db *sqlx.DB) *LeagueRepository {
	return &LeagueRepository{db: db}
}

func (r *LeagueRepository) List(ctx context.Context) ([]league.League, error) {
	query, args, err := qb.Select("*").From("leagues").
		Where(qb.IsNull("deleted_at")).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select leagues query: %w", err)
	}

	var rows []leagueTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select leagues: %w", err)
	}

	out := make([]league.League, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}

func (r *LeagueRepository) GetByID(ctx context.Context, leagueID string) (league.League, bool, error) {
	query, args, err := qb.Select("*").From("leagues").
		Where(
			qb.Eq("public_id", leagueID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return league.League{}, false, fmt.Errorf("build get league by id query: %w", err)
	}

	var row leagueTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return league.League{}, false, nil
		}
		return league.League{}, false, fmt.Errorf("get league by id: %w", err)
	}

	return row.toDomain(), true, nil
}

func (r *LeagueRepository) Create(ctx context.Context, item league.League) error {
	query, args, err := qb.InsertModel("leagues", leagueInsertModel{
		PublicID:                item.ID,
		Name:                    item.Name,
		Game:                    item.Game,
		Season:                  item.Season,
		Rounds:                  item.Rounds,
		Status:                  item.Status,
		MatchdayIntervalSeconds: int64(item.MatchdayInterval.Seconds()),
		CreatedAt:               item.CreatedAt,
		UpdatedAt:               item.UpdatedAt,
	}, "")
	if err != nil {
		return fmt.Errorf("build insert league query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert league: %w", err)
	}
	return nil
}

func (r *LeagueRepository) Update(ctx context.Context, item league.League) error {
	query, args, err := qb.Update("leagues").
		Set("name", item.Name).
		Set("game", item.Game).
		Set("season", item.Season).
		Set("rounds", item.Rounds).
		Set("status", item.Status).
		Set("matchday_interval_seconds", int64(item.MatchdayInterval.Seconds())).
		Set("updated_at", item.UpdatedAt).
		Where(
			qb.Eq("public_id", item.ID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update league query: %w", err)
	}

	return execAffectingOne(ctx, r.db, "update league", item.ID, query, args)
}

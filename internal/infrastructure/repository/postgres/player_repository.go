package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/gaming-league/internal/domain/player"
	qb "github.com/riskibarqy/gaming-league/internal/platform/querybuilder"
)

type PlayerRepository struct {
	db *sqlx.DB
}

func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func (r *PlayerRepository) ListByLeague(ctx context.Context, leagueID string) ([]player.Player, error) {
	query, args, err := qb.Select("*").From("players").
		Where(
			qb.Eq("league_public_id", leagueID),
			qb.IsNull("deleted_at"),
		).
		OrderBy("registered_at", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list players query: %w", err)
	}

	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list players by league: %w", err)
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *PlayerRepository) GetByID(ctx context.Context, leagueID, playerID string) (player.Player, bool, error) {
	query, args, err := qb.Select("*").From("players").
		Where(
			qb.Eq("league_public_id", leagueID),
			qb.Eq("public_id", playerID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return player.Player{}, false, fmt.Errorf("build get player query: %w", err)
	}

	var row playerTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return player.Player{}, false, nil
		}
		return player.Player{}, false, fmt.Errorf("get player by id: %w", err)
	}
	return row.toDomain(), true, nil
}

func (r *PlayerRepository) Create(ctx context.Context, item player.Player) error {
	query, args, err := qb.InsertModel("players", playerInsertModel{
		PublicID:       item.ID,
		LeaguePublicID: item.LeagueID,
		Name:           item.Name,
		Gamertag:       item.Gamertag,
		GamertagKey:    item.GamertagKey,
		Email:          stringToNullString(item.Email),
		Phone:          stringToNullString(item.Phone),
		Status:         item.Status,
		RegisteredAt:   item.RegisteredAt,
		UpdatedAt:      item.UpdatedAt,
	}, "")
	if err != nil {
		return fmt.Errorf("build insert player query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return mapPlayerWriteError("insert player", err)
	}
	return nil
}

func (r *PlayerRepository) Update(ctx context.Context, item player.Player) error {
	query, args, err := qb.Update("players").
		Set("name", item.Name).
		Set("gamertag", item.Gamertag).
		Set("gamertag_key", item.GamertagKey).
		Set("email", stringToNullString(item.Email)).
		Set("phone", stringToNullString(item.Phone)).
		Set("status", item.Status).
		Set("updated_at", item.UpdatedAt).
		Where(
			qb.Eq("league_public_id", item.LeagueID),
			qb.Eq("public_id", item.ID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update player query: %w", err)
	}

	if err := execAffectingOne(ctx, r.db, "update player", item.ID, query, args); err != nil {
		return mapPlayerWriteError("update player", err)
	}
	return nil
}

// Delete soft-deletes the player; the partial unique index frees the
// gamertag for reuse.
func (r *PlayerRepository) Delete(ctx context.Context, leagueID, playerID string) error {
	query, args, err := qb.Update("players").
		SetExpr("deleted_at", "NOW()").
		SetExpr("updated_at", "NOW()").
		Where(
			qb.Eq("league_public_id", leagueID),
			qb.Eq("public_id", playerID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build delete player query: %w", err)
	}

	return execAffectingOne(ctx, r.db, "delete player", playerID, query, args)
}

func mapPlayerWriteError(op string, err error) error {
	if constraint, ok := uniqueViolation(err); ok && constraint == playerGamertagConstraint {
		return fmt.Errorf("%s: %w", op, player.ErrDuplicateGamertag)
	}
	return fmt.Errorf("%s: %w", op, err)
}

package postgres

import (
	"database/sql"
	"time"

	"github.com/riskibarqy/gaming-league/internal/domain/player"
)

const playerGamertagConstraint = "players_league_gamertag_key_uidx"

type playerTableModel struct {
	ID             int64          `db:"id"`
	PublicID       string         `db:"public_id"`
	LeaguePublicID string         `db:"league_public_id"`
	Name           string         `db:"name"`
	Gamertag       string         `db:"gamertag"`
	GamertagKey    string         `db:"gamertag_key"`
	Email          sql.NullString `db:"email"`
	Phone          sql.NullString `db:"phone"`
	Status         string         `db:"status"`
	RegisteredAt   time.Time      `db:"registered_at"`
	UpdatedAt      time.Time      `db:"updated_at"`
	DeletedAt      *time.Time     `db:"deleted_at"`
}

type playerInsertModel struct {
	PublicID       string         `db:"public_id"`
	LeaguePublicID string         `db:"league_public_id"`
	Name           string         `db:"name"`
	Gamertag       string         `db:"gamertag"`
	GamertagKey    string         `db:"gamertag_key"`
	Email          sql.NullString `db:"email"`
	Phone          sql.NullString `db:"phone"`
	Status         string         `db:"status"`
	RegisteredAt   time.Time      `db:"registered_at"`
	UpdatedAt      time.Time      `db:"updated_at"`
}

func (m playerTableModel) toDomain() player.Player {
	return player.Player{
		ID:           m.PublicID,
		LeagueID:     m.LeaguePublicID,
		Name:         m.Name,
		Gamertag:     m.Gamertag,
		GamertagKey:  m.GamertagKey,
		Email:        nullStringValue(m.Email),
		Phone:        nullStringValue(m.Phone),
		Status:       m.Status,
		RegisteredAt: m.RegisteredAt.UTC(),
		UpdatedAt:    m.UpdatedAt.UTC(),
	}
}

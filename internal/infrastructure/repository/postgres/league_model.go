package postgres

import (
	"time"

	"github.com/riskibarqy/gaming-league/internal/domain/league"
)

type leagueTableModel struct {
	ID                      int64      `db:"id"`
	PublicID                string     `db:"public_id"`
	Name                    string     `db:"name"`
	Game                    string     `db:"game"`
	Season                  string     `db:"season"`
	Rounds                  int        `db:"rounds"`
	Status                  string     `db:"status"`
	MatchdayIntervalSeconds int64      `db:"matchday_interval_seconds"`
	CreatedAt               time.Time  `db:"created_at"`
	UpdatedAt               time.Time  `db:"updated_at"`
	DeletedAt               *time.Time `db:"deleted_at"`
}

type leagueInsertModel struct {
	PublicID                string    `db:"public_id"`
	Name                    string    `db:"name"`
	Game                    string    `db:"game"`
	Season                  string    `db:"season"`
	Rounds                  int       `db:"rounds"`
	Status                  string    `db:"status"`
	MatchdayIntervalSeconds int64     `db:"matchday_interval_seconds"`
	CreatedAt               time.Time `db:"created_at"`
	UpdatedAt               time.Time `db:"updated_at"`
}

func (m leagueTableModel) toDomain() league.League {
	return league.League{
		ID:               m.PublicID,
		Name:             m.Name,
		Game:             m.Game,
		Season:           m.Season,
		Rounds:           m.Rounds,
		Status:           m.Status,
		MatchdayInterval: time.Duration(m.MatchdayIntervalSeconds) * time.Second,
		CreatedAt:        m.CreatedAt.UTC(),
		UpdatedAt:        m.UpdatedAt.UTC(),
	}
}

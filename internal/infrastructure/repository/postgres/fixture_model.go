package postgres

import (
	"database/sql"
	"time"

	"github.com/riskibarqy/gaming-league/internal/domain/fixture"
)

type fixtureTableModel struct {
	ID                 int64         `db:"id"`
	PublicID           string        `db:"public_id"`
	LeaguePublicID     string        `db:"league_public_id"`
	Matchday           int           `db:"matchday"`
	Round              int           `db:"round"`
	HomePlayerPublicID string        `db:"home_player_public_id"`
	AwayPlayerPublicID string        `db:"away_player_public_id"`
	ScheduledAt        sql.NullTime  `db:"scheduled_at"`
	HomeScore          sql.NullInt64 `db:"home_score"`
	AwayScore          sql.NullInt64 `db:"away_score"`
	Status             string        `db:"status"`
	PlayedAt           sql.NullTime  `db:"played_at"`
	CreatedAt          time.Time     `db:"created_at"`
	UpdatedAt          time.Time     `db:"updated_at"`
}

type fixtureInsertModel struct {
	PublicID           string        `db:"public_id"`
	LeaguePublicID     string        `db:"league_public_id"`
	Matchday           int           `db:"matchday"`
	Round              int           `db:"round"`
	HomePlayerPublicID string        `db:"home_player_public_id"`
	AwayPlayerPublicID string        `db:"away_player_public_id"`
	ScheduledAt        sql.NullTime  `db:"scheduled_at"`
	HomeScore          sql.NullInt64 `db:"home_score"`
	AwayScore          sql.NullInt64 `db:"away_score"`
	Status             string        `db:"status"`
	PlayedAt           sql.NullTime  `db:"played_at"`
	CreatedAt          time.Time     `db:"created_at"`
	UpdatedAt          time.Time     `db:"updated_at"`
}

func newFixtureInsertModel(leagueID string, item fixture.Fixture) fixtureInsertModel {
	return fixtureInsertModel{
		PublicID:           item.ID,
		LeaguePublicID:     leagueID,
		Matchday:           item.Matchday,
		Round:              item.Round,
		HomePlayerPublicID: item.HomePlayerID,
		AwayPlayerPublicID: item.AwayPlayerID,
		ScheduledAt:        timePtrToNullTime(item.ScheduledAt),
		HomeScore:          intPtrToNullInt64(item.HomeScore),
		AwayScore:          intPtrToNullInt64(item.AwayScore),
		Status:             item.Status,
		PlayedAt:           timePtrToNullTime(item.PlayedAt),
		CreatedAt:          item.CreatedAt,
		UpdatedAt:          item.UpdatedAt,
	}
}

func (m fixtureTableModel) toDomain() fixture.Fixture {
	return fixture.Fixture{
		ID:           m.PublicID,
		LeagueID:     m.LeaguePublicID,
		Matchday:     m.Matchday,
		Round:        m.Round,
		HomePlayerID: m.HomePlayerPublicID,
		AwayPlayerID: m.AwayPlayerPublicID,
		ScheduledAt:  nullTimeToTimePtr(m.ScheduledAt),
		HomeScore:    nullInt64ToIntPtr(m.HomeScore),
		AwayScore:    nullInt64ToIntPtr(m.AwayScore),
		Status:       m.Status,
		PlayedAt:     nullTimeToTimePtr(m.PlayedAt),
		CreatedAt:    m.CreatedAt.UTC(),
		UpdatedAt:    m.UpdatedAt.UTC(),
	}
}

package postgres

import (
	"database/sql"
	"time"

	"github.com/riskibarqy/gaming-league/internal/domain/result"
)

type resultReportTableModel struct {
	ID              int64          `db:"id"`
	PublicID        string         `db:"public_id"`
	LeaguePublicID  string         `db:"league_public_id"`
	FixturePublicID string         `db:"fixture_public_id"`
	ReportedBy      string         `db:"reported_by"`
	HomeScore       int            `db:"home_score"`
	AwayScore       int            `db:"away_score"`
	Status          string         `db:"status"`
	Note            sql.NullString `db:"note"`
	ReviewNote      sql.NullString `db:"review_note"`
	CreatedAt       time.Time      `db:"created_at"`
	ReviewedAt      sql.NullTime   `db:"reviewed_at"`
}

type resultReportInsertModel struct {
	PublicID        string         `db:"public_id"`
	LeaguePublicID  string         `db:"league_public_id"`
	FixturePublicID string         `db:"fixture_public_id"`
	ReportedBy      string         `db:"reported_by"`
	HomeScore       int            `db:"home_score"`
	AwayScore       int            `db:"away_score"`
	Status          string         `db:"status"`
	Note            sql.NullString `db:"note"`
	CreatedAt       time.Time      `db:"created_at"`
}

func (m resultReportTableModel) toDomain() result.Report {
	return result.Report{
		ID:         m.PublicID,
		LeagueID:   m.LeaguePublicID,
		FixtureID:  m.FixturePublicID,
		ReportedBy: m.ReportedBy,
		HomeScore:  m.HomeScore,
		AwayScore:  m.AwayScore,
		Status:     m.Status,
		Note:       nullStringValue(m.Note),
		ReviewNote: nullStringValue(m.ReviewNote),
		CreatedAt:  m.CreatedAt.UTC(),
		ReviewedAt: nullTimeToTimePtr(m.ReviewedAt),
	}
}

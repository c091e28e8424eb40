package leaguestanding

import "time"

const (
	PointsForWin  = 3
	PointsForDraw = 1

	FormWin  = "W"
	FormDraw = "D"
	FormLoss = "L"

	// MaxFormLength bounds the recent-results history kept per row.
	MaxFormLength = 5
)

// Standing represents a league table row for one player.
type Standing struct {
	LeagueID       string
	PlayerID       string
	PlayerName     string
	Position       int
	Played         int
	Won            int
	Drawn          int
	Lost           int
	GoalsFor       int
	GoalsAgainst   int
	GoalDifference int
	Points         int
	Form           []string
	UpdatedAt      time.Time
}

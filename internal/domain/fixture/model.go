package fixture

import (
	"strings"
	"time"
)

const (
	StatusScheduled        = "SCHEDULED"
	StatusAwaitingApproval = "AWAITING_APPROVAL"
	StatusPlayed           = "PLAYED"
	StatusCancelled        = "CANCELLED"
)

// Fixture is one scheduled match between two league players.
type Fixture struct {
	ID           string
	LeagueID     string
	Matchday     int
	Round        int
	HomePlayerID string
	AwayPlayerID string
	ScheduledAt  *time.Time
	HomeScore    *int
	AwayScore    *int
	Status       string
	PlayedAt     *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func NormalizeStatus(value string) string {
	status := strings.ToUpper(strings.TrimSpace(value))
	if status == "" {
		return StatusScheduled
	}
	return status
}

func IsValidStatus(status string) bool {
	switch status {
	case StatusScheduled, StatusAwaitingApproval, StatusPlayed, StatusCancelled:
		return true
	default:
		return false
	}
}

// HasResult reports whether the fixture counts towards the table.
func (f Fixture) HasResult() bool {
	return f.Status == StatusPlayed && f.HomeScore != nil && f.AwayScore != nil
}

// Involves reports whether playerID is one of the two sides.
func (f Fixture) Involves(playerID string) bool {
	return playerID != "" && (f.HomePlayerID == playerID || f.AwayPlayerID == playerID)
}

// AcceptsReports reports whether a result may still be submitted.
func (f Fixture) AcceptsReports() bool {
	return f.Status == StatusScheduled || f.Status == StatusAwaitingApproval
}

// IsLocked reports whether regenerating the schedule would discard results.
func (f Fixture) IsLocked() bool {
	return f.Status == StatusPlayed || f.Status == StatusAwaitingApproval
}

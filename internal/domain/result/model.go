package result

import (
	"strings"
	"time"

	"github.com/cockroachdb/errors"
)

const (
	StatusPending  = "PENDING"
	StatusApproved = "APPROVED"
	StatusRejected = "REJECTED"
)

const MaxNoteLength = 500

var ErrInvalidReport = errors.New("invalid result report")

// Report is a score submitted by one of the fixture players, waiting for
// an admin decision.
type Report struct {
	ID         string
	LeagueID   string
	FixtureID  string
	ReportedBy string
	HomeScore  int
	AwayScore  int
	Status     string
	Note       string
	ReviewNote string
	CreatedAt  time.Time
	ReviewedAt *time.Time
}

func NormalizeStatus(value string) string {
	return strings.ToUpper(strings.TrimSpace(value))
}

func IsValidStatus(status string) bool {
	switch status {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	default:
		return false
	}
}

func (r Report) IsPending() bool {
	return r.Status == StatusPending
}

func (r Report) Validate() error {
	if strings.TrimSpace(r.ID) == "" {
		return errors.Wrap(ErrInvalidReport, "report id is required")
	}
	if strings.TrimSpace(r.FixtureID) == "" {
		return errors.Wrap(ErrInvalidReport, "fixture id is required")
	}
	if strings.TrimSpace(r.ReportedBy) == "" {
		return errors.Wrap(ErrInvalidReport, "reporter is required")
	}
	if r.HomeScore < 0 || r.AwayScore < 0 {
		return errors.Wrapf(ErrInvalidReport, "scores must be >= 0, got %d-%d", r.HomeScore, r.AwayScore)
	}
	if len(r.Note) > MaxNoteLength {
		return errors.Wrapf(ErrInvalidReport, "note must be at most %d characters", MaxNoteLength)
	}
	if !IsValidStatus(r.Status) {
		return errors.Wrapf(ErrInvalidReport, "unknown report status %q", r.Status)
	}
	return nil
}

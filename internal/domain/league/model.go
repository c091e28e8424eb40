package league

import (
	"strings"
	"time"

	"github.com/cockroachdb/errors"
)

const (
	StatusDraft     = "DRAFT"
	StatusActive    = "ACTIVE"
	StatusCompleted = "COMPLETED"
)

const (
	DefaultRounds = 2
	MaxRounds     = 4
)

var ErrInvalidLeague = errors.New("invalid league")

// League is one competition season for a single game title.
type League struct {
	ID               string
	Name             string
	Game             string
	Season           string
	Rounds           int
	Status           string
	MatchdayInterval time.Duration
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func NormalizeStatus(value string) string {
	status := strings.ToUpper(strings.TrimSpace(value))
	if status == "" {
		return StatusDraft
	}
	return status
}

func IsValidStatus(status string) bool {
	switch status {
	case StatusDraft, StatusActive, StatusCompleted:
		return true
	default:
		return false
	}
}

// AcceptsRegistrations reports whether players may still sign up.
func (l League) AcceptsRegistrations() bool {
	return l.Status == StatusDraft || l.Status == StatusActive
}

func (l League) Validate() error {
	if strings.TrimSpace(l.ID) == "" {
		return errors.Wrap(ErrInvalidLeague, "league id is required")
	}
	if strings.TrimSpace(l.Name) == "" {
		return errors.Wrap(ErrInvalidLeague, "league name is required")
	}
	if strings.TrimSpace(l.Game) == "" {
		return errors.Wrap(ErrInvalidLeague, "league game is required")
	}
	if strings.TrimSpace(l.Season) == "" {
		return errors.Wrap(ErrInvalidLeague, "league season is required")
	}
	if l.Rounds < 1 || l.Rounds > MaxRounds {
		return errors.Wrapf(ErrInvalidLeague, "league rounds must be between 1 and %d", MaxRounds)
	}
	if !IsValidStatus(l.Status) {
		return errors.Wrapf(ErrInvalidLeague, "unknown league status %q", l.Status)
	}
	if l.MatchdayInterval < 0 {
		return errors.Wrap(ErrInvalidLeague, "matchday interval cannot be negative")
	}

	return nil
}

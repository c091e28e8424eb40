package player

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/cockroachdb/errors"
	"github.com/nyaruka/phonenumbers"
	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

const (
	StatusActive    = "ACTIVE"
	StatusWithdrawn = "WITHDRAWN"
)

const MaxGamertagLength = 32

var (
	ErrInvalidPlayer = errors.New("invalid player")
	ErrInvalidPhone  = errors.New("invalid phone number")
	// ErrDuplicateGamertag is returned by repositories when the folded
	// gamertag is already taken in the league.
	ErrDuplicateGamertag = errors.New("gamertag already registered in league")
)

// Player is a registered participant of one league.
type Player struct {
	ID           string
	LeagueID     string
	Name         string
	Gamertag     string
	GamertagKey  string
	Email        string
	Phone        string
	Status       string
	RegisteredAt time.Time
	UpdatedAt    time.Time
}

func (p Player) IsActive() bool {
	return p.Status == StatusActive
}

// DisplayName is the name shown in tables; it falls back to the gamertag.
func (p Player) DisplayName() string {
	if name := strings.TrimSpace(p.Name); name != "" {
		return name
	}
	return p.Gamertag
}

func (p Player) Validate() error {
	if strings.TrimSpace(p.ID) == "" {
		return errors.Wrap(ErrInvalidPlayer, "player id is required")
	}
	if strings.TrimSpace(p.LeagueID) == "" {
		return errors.Wrap(ErrInvalidPlayer, "player league id is required")
	}
	if strings.TrimSpace(p.Name) == "" {
		return errors.Wrap(ErrInvalidPlayer, "player name is required")
	}
	if strings.TrimSpace(p.Gamertag) == "" {
		return errors.Wrap(ErrInvalidPlayer, "player gamertag is required")
	}
	if utf8.RuneCountInString(p.Gamertag) > MaxGamertagLength {
		return errors.Wrapf(ErrInvalidPlayer, "player gamertag exceeds %d characters", MaxGamertagLength)
	}
	switch p.Status {
	case StatusActive, StatusWithdrawn:
	default:
		return errors.Wrapf(ErrInvalidPlayer, "unknown player status %q", p.Status)
	}

	return nil
}

// NormalizeGamertag trims and NFC-normalizes a gamertag for display.
func NormalizeGamertag(raw string) string {
	return norm.NFC.String(strings.Join(strings.Fields(raw), " "))
}

// GamertagKey folds case so "NoobMaster" and "noobmaster" collide.
func GamertagKey(raw string) string {
	return norm.NFC.String(cases.Fold().String(NormalizeGamertag(raw)))
}

// NormalizePhone returns the E.164 form of raw, or "" for blank input.
func NormalizePhone(raw, defaultRegion string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", nil
	}

	region := strings.ToUpper(strings.TrimSpace(defaultRegion))
	parsed, err := phonenumbers.Parse(raw, region)
	if err != nil {
		return "", errors.Wrapf(ErrInvalidPhone, "parse %q: %v", raw, err)
	}
	if !phonenumbers.IsValidNumber(parsed) {
		return "", errors.Wrapf(ErrInvalidPhone, "%q is not a valid number", raw)
	}

	return phonenumbers.Format(parsed, phonenumbers.E164), nil
}

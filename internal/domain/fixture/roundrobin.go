package fixture

import (
	"strings"
	"time"

	"github.com/cockroachdb/errors"
)

// ByePlayerID pads an odd field so every matchday has N/2 pairings.
// Pairings against it are dropped before returning.
const ByePlayerID = "__bye__"

var ErrInvalidSchedule = errors.New("invalid schedule request")

// Pairing is one generated home/away match before persistence.
type Pairing struct {
	Matchday     int
	Round        int
	HomePlayerID string
	AwayPlayerID string
	ScheduledAt  *time.Time
}

// GenerateRoundRobinFixtures builds a circle-method schedule. Each round
// is a full single round robin of N-1 matchdays; odd rounds mirror the
// home/away sides of the first.
func GenerateRoundRobinFixtures(playerIDs []string, rounds int) ([]Pairing, error) {
	if rounds < 1 {
		return nil, errors.Wrapf(ErrInvalidSchedule, "rounds must be >= 1, got %d", rounds)
	}
	if len(playerIDs) < 2 {
		return nil, errors.Wrapf(ErrInvalidSchedule, "at least two players are required, got %d", len(playerIDs))
	}

	seen := make(map[string]struct{}, len(playerIDs))
	base := make([]string, 0, len(playerIDs)+1)
	for _, raw := range playerIDs {
		playerID := strings.TrimSpace(raw)
		if playerID == "" {
			return nil, errors.Wrap(ErrInvalidSchedule, "player id cannot be blank")
		}
		if playerID == ByePlayerID {
			return nil, errors.Wrapf(ErrInvalidSchedule, "player id %q is reserved", ByePlayerID)
		}
		if _, dup := seen[playerID]; dup {
			return nil, errors.Wrapf(ErrInvalidSchedule, "duplicate player id %q", playerID)
		}
		seen[playerID] = struct{}{}
		base = append(base, playerID)
	}
	if len(base)%2 == 1 {
		base = append(base, ByePlayerID)
	}

	n := len(base)
	matchdaysPerRound := n - 1
	pairsPerMatchday := n / 2

	out := make([]Pairing, 0, matchdaysPerRound*rounds*pairsPerMatchday)
	working := make([]string, n)
	for round := 0; round < rounds; round++ {
		copy(working, base)
		for day := 0; day < matchdaysPerRound; day++ {
			matchday := round*matchdaysPerRound + day + 1
			for i := 0; i < pairsPerMatchday; i++ {
				home, away := working[i], working[n-1-i]
				if i == 0 && day%2 == 1 {
					home, away = away, home
				}
				if round%2 == 1 {
					home, away = away, home
				}
				out = append(out, Pairing{
					Matchday:     matchday,
					Round:        round + 1,
					HomePlayerID: home,
					AwayPlayerID: away,
				})
			}
			rotate(working)
		}
	}

	return dropByes(out), nil
}

// rotate keeps index 0 fixed and moves the rest one step clockwise.
func rotate(working []string) {
	if len(working) <= 2 {
		return
	}
	last := working[len(working)-1]
	copy(working[2:], working[1:len(working)-1])
	working[1] = last
}

func dropByes(pairings []Pairing) []Pairing {
	out := pairings[:0]
	for _, p := range pairings {
		if p.HomePlayerID == ByePlayerID || p.AwayPlayerID == ByePlayerID {
			continue
		}
		out = append(out, p)
	}
	return out
}

// AssignMatchdayDates stamps matchday m with start + (m-1)*every.
// A zero start leaves the pairings undated.
func AssignMatchdayDates(pairings []Pairing, start time.Time, every time.Duration) []Pairing {
	out := make([]Pairing, len(pairings))
	copy(out, pairings)
	if start.IsZero() {
		return out
	}

	for i := range out {
		at := start.Add(time.Duration(out[i].Matchday-1) * every)
		out[i].ScheduledAt = &at
	}
	return out
}

// MatchdayCount is the number of matchdays a field of playerCount
// produces over the given rounds.
func MatchdayCount(playerCount, rounds int) int {
	if playerCount < 2 || rounds < 1 {
		return 0
	}
	n := playerCount
	if n%2 == 1 {
		n++
	}
	return (n - 1) * rounds
}

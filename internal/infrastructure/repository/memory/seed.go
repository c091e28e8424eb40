package memory

import (
	"time"

	"github.com/riskibarqy/gaming-league/internal/domain/league"
	"github.com/riskibarqy/gaming-league/internal/domain/player"
)

const LeagueIDDemo = "lg-demo-fc-2026"

var seedTime = time.Date(2026, 1, 5, 12, 0, 0, 0, time.UTC)

// SeedLeagues returns a draft demo league for local runs.
func SeedLeagues() []league.League {
	return []league.League{
		{
			ID:               LeagueIDDemo,
			Name:             "Friday Night FC",
			Game:             "EA Sports FC 26",
			Season:           "2026 Spring",
			Rounds:           league.DefaultRounds,
			Status:           league.StatusDraft,
			MatchdayInterval: 7 * 24 * time.Hour,
			CreatedAt:        seedTime,
			UpdatedAt:        seedTime,
		},
	}
}

func SeedPlayers() []player.Player {
	seed := []struct {
		id, name, gamertag string
	}{
		{"pl-demo-01", "Rina Kusuma", "RinaK"},
		{"pl-demo-02", "Tom Becker", "TomB_09"},
		{"pl-demo-03", "Ade Saputra", "AdeGoal"},
		{"pl-demo-04", "Maya Lind", "mayhem"},
		{"pl-demo-05", "Jonas Ek", "JonasEk"},
	}

	out := make([]player.Player, 0, len(seed))
	for i, item := range seed {
		registeredAt := seedTime.Add(time.Duration(i) * time.Minute)
		out = append(out, player.Player{
			ID:           item.id,
			LeagueID:     LeagueIDDemo,
			Name:         item.name,
			Gamertag:     item.gamertag,
			GamertagKey:  player.GamertagKey(item.gamertag),
			Status:       player.StatusActive,
			RegisteredAt: registeredAt,
			UpdatedAt:    registeredAt,
		})
	}
	return out
}

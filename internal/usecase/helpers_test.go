package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/riskibarqy/gaming-league/internal/domain/league"
	"github.com/riskibarqy/gaming-league/internal/domain/player"
	"github.com/riskibarqy/gaming-league/internal/infrastructure/repository/memory"
)

var fixedNow = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

type sequenceIDGenerator struct {
	mu     sync.Mutex
	prefix string
	next   int
}

func (g *sequenceIDGenerator) NewID() (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.next++
	return fmt.Sprintf("%s-%03d", g.prefix, g.next), nil
}

type stubStandingsRefresher struct {
	mu    sync.Mutex
	calls []string
}

func (s *stubStandingsRefresher) Refresh(_ context.Context, leagueID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, leagueID)
}

func (s *stubStandingsRefresher) Calls() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.calls...)
}

type testEnv struct {
	leagues   *memory.LeagueRepository
	players   *memory.PlayerRepository
	fixtures  *memory.FixtureRepository
	reports   *memory.ResultRepository
	standings *memory.LeagueStandingRepository
}

func newTestEnv(leagues []league.League, players []player.Player) *testEnv {
	return &testEnv{
		leagues:   memory.NewLeagueRepository(leagues),
		players:   memory.NewPlayerRepository(players),
		fixtures:  memory.NewFixtureRepository(nil),
		reports:   memory.NewResultRepository(),
		standings: memory.NewLeagueStandingRepository(),
	}
}

func demoLeague(id, status string) league.League {
	return league.League{
		ID:               id,
		Name:             "Friday Night FC",
		Game:             "EA Sports FC 26",
		Season:           "2026 Spring",
		Rounds:           league.DefaultRounds,
		Status:           status,
		MatchdayInterval: 7 * 24 * time.Hour,
	}
}

func demoPlayers(leagueID string, n int) []player.Player {
	out := make([]player.Player, 0, n)
	for i := 1; i <= n; i++ {
		tag := fmt.Sprintf("Gamer%02d", i)
		out = append(out, player.Player{
			ID:           fmt.Sprintf("pl-%02d", i),
			LeagueID:     leagueID,
			Name:         fmt.Sprintf("Player %02d", i),
			Gamertag:     tag,
			GamertagKey:  player.GamertagKey(tag),
			Status:       player.StatusActive,
			RegisteredAt: fixedNow.Add(time.Duration(i) * time.Minute),
		})
	}
	return out
}

package leaguestanding

import (
	"fmt"
	"math/rand"
	"reflect"
	"testing"
	"time"

	"github.com/riskibarqy/gaming-league/internal/domain/fixture"
	"github.com/riskibarqy/gaming-league/internal/domain/player"
	"github.com/stretchr/testify/require"
)

func score(v int) *int { return &v }

func played(id string, matchday int, home, away string, hs, as int) fixture.Fixture {
	return fixture.Fixture{
		ID:           id,
		LeagueID:     "lg-1",
		Matchday:     matchday,
		HomePlayerID: home,
		AwayPlayerID: away,
		HomeScore:    score(hs),
		AwayScore:    score(as),
		Status:       fixture.StatusPlayed,
	}
}

func TestCalculateStandings_PointsAndOrder(t *testing.T) {
	t.Parallel()

	players := []player.Player{
		{ID: "a", Name: "Alice"},
		{ID: "b", Name: "Bob"},
		{ID: "c", Name: "Cara"},
		{ID: "d", Name: "Dan"},
	}
	fixtures := []fixture.Fixture{
		played("f1", 1, "a", "b", 2, 1),
		played("f2", 1, "c", "d", 0, 0),
		played("f3", 2, "b", "c", 0, 3),
		{ID: "f4", Matchday: 2, HomePlayerID: "a", AwayPlayerID: "d", Status: fixture.StatusScheduled},
		{ID: "f5", Matchday: 3, HomePlayerID: "a", AwayPlayerID: "c", HomeScore: score(5), AwayScore: score(0), Status: fixture.StatusAwaitingApproval},
	}

	got := CalculateStandings("lg-1", players, fixtures)
	require.Len(t, got, 4)

	require.Equal(t, "c", got[0].PlayerID)
	require.Equal(t, 4, got[0].Points)
	require.Equal(t, 3, got[0].GoalDifference)
	require.Equal(t, []string{FormDraw, FormWin}, got[0].Form)

	require.Equal(t, "a", got[1].PlayerID)
	require.Equal(t, 3, got[1].Points)
	require.Equal(t, 1, got[1].Played)

	require.Equal(t, "d", got[2].PlayerID)
	require.Equal(t, 1, got[2].Points)

	require.Equal(t, "b", got[3].PlayerID)
	require.Equal(t, 0, got[3].Points)
	require.Equal(t, 2, got[3].Lost)
	require.Equal(t, []string{FormLoss, FormLoss}, got[3].Form)

	for i, row := range got {
		require.Equal(t, i+1, row.Position)
		require.Equal(t, "lg-1", row.LeagueID)
	}
}

func TestCalculateStandings_PlayersWithoutGamesAppear(t *testing.T) {
	t.Parallel()

	got := CalculateStandings("lg-1", []player.Player{{ID: "z", Name: "Zed"}, {ID: "y", Name: "Yan"}}, nil)
	require.Len(t, got, 2)
	require.Equal(t, "y", got[0].PlayerID)
	require.Equal(t, "z", got[1].PlayerID)
	require.Empty(t, got[0].Form)
}

func TestCalculateStandings_UnknownFixturePlayerNamedByID(t *testing.T) {
	t.Parallel()

	got := CalculateStandings("lg-1", []player.Player{{ID: "a", Name: "Alice"}}, []fixture.Fixture{
		played("f1", 1, "a", "ghost", 1, 2),
	})
	require.Len(t, got, 2)
	require.Equal(t, "ghost", got[0].PlayerID)
	require.Equal(t, "ghost", got[0].PlayerName)
	require.Equal(t, 3, got[0].Points)
}

func TestCalculateStandings_TiebreakNameCaseInsensitiveThenID(t *testing.T) {
	t.Parallel()

	players := []player.Player{
		{ID: "p3", Name: "bravo"},
		{ID: "p2", Name: "Alpha"},
		{ID: "p1", Name: "alpha"},
	}
	got := CalculateStandings("lg-1", players, nil)
	ids := []string{got[0].PlayerID, got[1].PlayerID, got[2].PlayerID}
	require.Equal(t, []string{"p1", "p2", "p3"}, ids)
}

func TestCalculateStandings_GoalsForBreaksEqualDifference(t *testing.T) {
	t.Parallel()

	players := []player.Player{{ID: "a", Name: "A"}, {ID: "b", Name: "B"}, {ID: "c", Name: "C"}, {ID: "d", Name: "D"}}
	got := CalculateStandings("lg-1", players, []fixture.Fixture{
		played("f1", 1, "a", "c", 1, 0),
		played("f2", 1, "b", "d", 3, 2),
	})
	require.Equal(t, "b", got[0].PlayerID)
	require.Equal(t, "a", got[1].PlayerID)
}

func TestRank_WinsDoNotBreakTies(t *testing.T) {
	t.Parallel()

	// Same points, difference and goals for: three draws against one win.
	rows := []Standing{
		{PlayerID: "z", PlayerName: "Zed", Won: 1, Lost: 2, Points: 3, GoalsFor: 4, GoalDifference: 0},
		{PlayerID: "y", PlayerName: "Yara", Drawn: 3, Points: 3, GoalsFor: 4, GoalDifference: 0},
	}

	Rank(rows)

	require.Equal(t, "y", rows[0].PlayerID)
	require.Equal(t, 1, rows[0].Position)
	require.Equal(t, "z", rows[1].PlayerID)
	require.Equal(t, 2, rows[1].Position)
}

func TestCalculateStandings_FormKeepsLastFive(t *testing.T) {
	t.Parallel()

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	var fixtures []fixture.Fixture
	results := [][2]int{{1, 0}, {0, 1}, {1, 1}, {2, 0}, {0, 3}, {4, 4}, {1, 0}}
	for i, r := range results {
		item := played(fmt.Sprintf("f%d", i), i+1, "a", "b", r[0], r[1])
		at := base.Add(time.Duration(i) * time.Hour)
		item.PlayedAt = &at
		fixtures = append(fixtures, item)
	}

	got := CalculateStandings("lg-1", []player.Player{{ID: "a", Name: "A"}, {ID: "b", Name: "B"}}, fixtures)
	var rowA Standing
	for _, row := range got {
		if row.PlayerID == "a" {
			rowA = row
		}
	}
	require.Equal(t, 7, rowA.Played)
	require.Equal(t, []string{FormDraw, FormWin, FormLoss, FormDraw, FormWin}, rowA.Form)
}

func TestCalculateStandings_FoldsChronologically(t *testing.T) {
	t.Parallel()

	late := played("f-late", 2, "a", "b", 0, 1)
	early := played("f-early", 1, "a", "b", 1, 0)
	got := CalculateStandings("lg-1", nil, []fixture.Fixture{late, early})
	for _, row := range got {
		if row.PlayerID == "a" {
			require.Equal(t, []string{FormWin, FormLoss}, row.Form)
		}
	}
}

func TestCalculateStandings_InvariantsIndependentOfInputOrder(t *testing.T) {
	t.Parallel()

	ids := []string{"p1", "p2", "p3", "p4", "p5"}
	players := make([]player.Player, 0, len(ids))
	for _, id := range ids {
		players = append(players, player.Player{ID: id, Name: "Player " + id})
	}
	pairings, err := fixture.GenerateRoundRobinFixtures(ids, 2)
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(7))
	fixtures := make([]fixture.Fixture, 0, len(pairings))
	for i, p := range pairings {
		fixtures = append(fixtures, played(fmt.Sprintf("f%02d", i), p.Matchday, p.HomePlayerID, p.AwayPlayerID, rng.Intn(4), rng.Intn(4)))
	}

	want := CalculateStandings("lg-1", players, fixtures)

	won, lost, drawn := 0, 0, 0
	for _, row := range want {
		won += row.Won
		lost += row.Lost
		drawn += row.Drawn
		require.LessOrEqual(t, len(row.Form), MaxFormLength)
		require.Equal(t, row.Won+row.Drawn+row.Lost, row.Played)
	}
	require.Equal(t, won, lost)
	require.Zero(t, drawn%2)

	shuffledPlayers := append([]player.Player(nil), players...)
	shuffledFixtures := append([]fixture.Fixture(nil), fixtures...)
	rng.Shuffle(len(shuffledPlayers), func(i, j int) { shuffledPlayers[i], shuffledPlayers[j] = shuffledPlayers[j], shuffledPlayers[i] })
	rng.Shuffle(len(shuffledFixtures), func(i, j int) { shuffledFixtures[i], shuffledFixtures[j] = shuffledFixtures[j], shuffledFixtures[i] })

	got := CalculateStandings("lg-1", shuffledPlayers, shuffledFixtures)
	if !reflect.DeepEqual(want, got) {
		t.Fatalf("standings depend on input order:\nwant=%+v\ngot=%+v", want, got)
	}
}

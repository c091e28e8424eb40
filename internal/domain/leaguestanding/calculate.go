package leaguestanding

import (
	"sort"
	"strings"

	"github.com/riskibarqy/gaming-league/internal/domain/fixture"
	"github.com/riskibarqy/gaming-league/internal/domain/player"
)

// CalculateStandings folds played fixtures into a ranked table. Every
// given player gets a row even without games; players referenced only by
// fixtures are added under their ID.
func CalculateStandings(leagueID string, players []player.Player, fixtures []fixture.Fixture) []Standing {
	rows := make(map[string]*Standing, len(players))
	order := make([]string, 0, len(players))

	ensure := func(playerID, name string) *Standing {
		if row, ok := rows[playerID]; ok {
			return row
		}
		if strings.TrimSpace(name) == "" {
			name = playerID
		}
		row := &Standing{
			LeagueID:   leagueID,
			PlayerID:   playerID,
			PlayerName: name,
			Form:       []string{},
		}
		rows[playerID] = row
		order = append(order, playerID)
		return row
	}

	for _, p := range players {
		if strings.TrimSpace(p.ID) == "" {
			continue
		}
		ensure(p.ID, p.DisplayName())
	}

	for _, item := range playedInOrder(fixtures) {
		home := ensure(item.HomePlayerID, "")
		away := ensure(item.AwayPlayerID, "")
		homeGoals, awayGoals := *item.HomeScore, *item.AwayScore

		home.Played++
		away.Played++
		home.GoalsFor += homeGoals
		home.GoalsAgainst += awayGoals
		away.GoalsFor += awayGoals
		away.GoalsAgainst += homeGoals

		switch {
		case homeGoals > awayGoals:
			home.Won++
			away.Lost++
			home.pushForm(FormWin)
			away.pushForm(FormLoss)
		case homeGoals < awayGoals:
			away.Won++
			home.Lost++
			away.pushForm(FormWin)
			home.pushForm(FormLoss)
		default:
			home.Drawn++
			away.Drawn++
			home.pushForm(FormDraw)
			away.pushForm(FormDraw)
		}
	}

	out := make([]Standing, 0, len(order))
	for _, playerID := range order {
		row := rows[playerID]
		row.Points = row.Won*PointsForWin + row.Drawn*PointsForDraw
		row.GoalDifference = row.GoalsFor - row.GoalsAgainst
		out = append(out, *row)
	}

	Rank(out)
	return out
}

// Rank sorts rows by points, goal difference, goals for, name and ID,
// then assigns positions starting at 1.
func Rank(rows []Standing) {
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.Points != b.Points {
			return a.Points > b.Points
		}
		if a.GoalDifference != b.GoalDifference {
			return a.GoalDifference > b.GoalDifference
		}
		if a.GoalsFor != b.GoalsFor {
			return a.GoalsFor > b.GoalsFor
		}
		an, bn := strings.ToLower(a.PlayerName), strings.ToLower(b.PlayerName)
		if an != bn {
			return an < bn
		}
		return a.PlayerID < b.PlayerID
	})
	for i := range rows {
		rows[i].Position = i + 1
	}
}

func (s *Standing) pushForm(result string) {
	s.Form = append(s.Form, result)
	if len(s.Form) > MaxFormLength {
		s.Form = s.Form[len(s.Form)-MaxFormLength:]
	}
}

func playedInOrder(fixtures []fixture.Fixture) []fixture.Fixture {
	out := make([]fixture.Fixture, 0, len(fixtures))
	for _, item := range fixtures {
		if !item.HasResult() {
			continue
		}
		if item.HomePlayerID == "" || item.AwayPlayerID == "" {
			continue
		}
		out = append(out, item)
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Matchday != b.Matchday {
			return a.Matchday < b.Matchday
		}
		at, bt := a.PlayedAt, b.PlayedAt
		switch {
		case at != nil && bt != nil && !at.Equal(*bt):
			return at.Before(*bt)
		case at == nil && bt != nil:
			return true
		case at != nil && bt == nil:
			return false
		}
		return a.ID < b.ID
	})
	return out
}

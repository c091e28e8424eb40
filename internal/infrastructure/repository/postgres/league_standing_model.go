package postgres

import (
	"time"

	"github.com/lib/pq"
	"github.com/riskibarqy/gaming-league/internal/domain/leaguestanding"
)

type leagueStandingTableModel struct {
	ID             int64          `db:"id"`
	LeaguePublicID string         `db:"league_public_id"`
	PlayerPublicID string         `db:"player_public_id"`
	PlayerName     string         `db:"player_name"`
	Position       int            `db:"position"`
	Played         int            `db:"played"`
	Won            int            `db:"won"`
	Drawn          int            `db:"drawn"`
	Lost           int            `db:"lost"`
	GoalsFor       int            `db:"goals_for"`
	GoalsAgainst   int            `db:"goals_against"`
	GoalDifference int            `db:"goal_difference"`
	Points         int            `db:"points"`
	Form           pq.StringArray `db:"form"`
	UpdatedAt      time.Time      `db:"updated_at"`
}

type leagueStandingInsertModel struct {
	LeaguePublicID string         `db:"league_public_id"`
	PlayerPublicID string         `db:"player_public_id"`
	PlayerName     string         `db:"player_name"`
	Position       int            `db:"position"`
	Played         int            `db:"played"`
	Won            int            `db:"won"`
	Drawn          int            `db:"drawn"`
	Lost           int            `db:"lost"`
	GoalsFor       int            `db:"goals_for"`
	GoalsAgainst   int            `db:"goals_against"`
	GoalDifference int            `db:"goal_difference"`
	Points         int            `db:"points"`
	Form           pq.StringArray `db:"form"`
	UpdatedAt      time.Time      `db:"updated_at"`
}

func newLeagueStandingInsertModel(leagueID string, item leaguestanding.Standing) leagueStandingInsertModel {
	form := pq.StringArray(item.Form)
	if form == nil {
		form = pq.StringArray{}
	}
	return leagueStandingInsertModel{
		LeaguePublicID: leagueID,
		PlayerPublicID: item.PlayerID,
		PlayerName:     item.PlayerName,
		Position:       item.Position,
		Played:         item.Played,
		Won:            item.Won,
		Drawn:          item.Drawn,
		Lost:           item.Lost,
		GoalsFor:       item.GoalsFor,
		GoalsAgainst:   item.GoalsAgainst,
		GoalDifference: item.GoalDifference,
		Points:         item.Points,
		Form:           form,
		UpdatedAt:      item.UpdatedAt,
	}
}

func (m leagueStandingTableModel) toDomain() leaguestanding.Standing {
	form := []string(m.Form)
	if form == nil {
		form = []string{}
	}
	return leaguestanding.Standing{
		LeagueID:       m.LeaguePublicID,
		PlayerID:       m.PlayerPublicID,
		PlayerName:     m.PlayerName,
		Position:       m.Position,
		Played:         m.Played,
		Won:            m.Won,
		Drawn:          m.Drawn,
		Lost:           m.Lost,
		GoalsFor:       m.GoalsFor,
		GoalsAgainst:   m.GoalsAgainst,
		GoalDifference: m.GoalDifference,
		Points:         m.Points,
		Form:           form,
		UpdatedAt:      m.UpdatedAt.UTC(),
	}
}

package usecase

import (
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/riskibarqy/gaming-league/internal/domain/fixture"
	"github.com/riskibarqy/gaming-league/internal/domain/leaguestanding"
	"github.com/riskibarqy/gaming-league/internal/domain/player"
	"github.com/valyala/bytebufferpool"
)

var (
	standingsCSVHeader = []string{"position", "player_id", "player", "played", "won", "drawn", "lost", "goals_for", "goals_against", "goal_difference", "points", "form"}
	fixturesCSVHeader  = []string{"matchday", "round", "fixture_id", "home_player", "away_player", "scheduled_at", "status", "home_score", "away_score"}
)

type standingsLister interface {
	ListByLeague(ctx context.Context, leagueID string) ([]leaguestanding.Standing, error)
}

type fixtureLister interface {
	ListFixtures(ctx context.Context, leagueID string, matchday int) ([]fixture.Fixture, error)
}

type playerLister interface {
	ListPlayers(ctx context.Context, leagueID, status string) ([]player.Player, error)
}

type ExportService struct {
	standings standingsLister
	fixtures  fixtureLister
	players   playerLister
}

func NewExportService(standings standingsLister, fixtures fixtureLister, players playerLister) *ExportService {
	return &ExportService{
		standings: standings,
		fixtures:  fixtures,
		players:   players,
	}
}

func (s *ExportService) ExportStandingsCSV(ctx context.Context, leagueID string) ([]byte, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ExportService.ExportStandingsCSV")
	defer span.End()

	rows, err := s.standings.ListByLeague(ctx, leagueID)
	if err != nil {
		return nil, err
	}

	return writeCSV(standingsCSVHeader, len(rows), func(i int) []string {
		row := rows[i]
		return []string{
			strconv.Itoa(row.Position),
			row.PlayerID,
			row.PlayerName,
			strconv.Itoa(row.Played),
			strconv.Itoa(row.Won),
			strconv.Itoa(row.Drawn),
			strconv.Itoa(row.Lost),
			strconv.Itoa(row.GoalsFor),
			strconv.Itoa(row.GoalsAgainst),
			strconv.Itoa(row.GoalDifference),
			strconv.Itoa(row.Points),
			strings.Join(row.Form, ""),
		}
	})
}

// ExportFixturesCSV writes the schedule with player display names in
// place of IDs.
func (s *ExportService) ExportFixturesCSV(ctx context.Context, leagueID string) ([]byte, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ExportService.ExportFixturesCSV")
	defer span.End()

	fixtures, err := s.fixtures.ListFixtures(ctx, leagueID, 0)
	if err != nil {
		return nil, err
	}
	players, err := s.players.ListPlayers(ctx, leagueID, "")
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(players))
	for _, p := range players {
		names[p.ID] = p.DisplayName()
	}
	nameOf := func(playerID string) string {
		if name, ok := names[playerID]; ok {
			return name
		}
		return playerID
	}

	return writeCSV(fixturesCSVHeader, len(fixtures), func(i int) []string {
		fx := fixtures[i]
		return []string{
			strconv.Itoa(fx.Matchday),
			strconv.Itoa(fx.Round),
			fx.ID,
			nameOf(fx.HomePlayerID),
			nameOf(fx.AwayPlayerID),
			formatOptionalTime(fx.ScheduledAt),
			fx.Status,
			formatOptionalInt(fx.HomeScore),
			formatOptionalInt(fx.AwayScore),
		}
	})
}

func writeCSV(header []string, n int, record func(i int) []string) ([]byte, error) {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	w := csv.NewWriter(buf)
	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}
	for i := 0; i < n; i++ {
		if err := w.Write(record(i)); err != nil {
			return nil, fmt.Errorf("write csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}

	out := make([]byte, buf.Len())
	copy(out, buf.B)
	return out, nil
}

func formatOptionalTime(v *time.Time) string {
	if v == nil {
		return ""
	}
	return v.UTC().Format(time.RFC3339)
}

func formatOptionalInt(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

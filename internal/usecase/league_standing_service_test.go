package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/gaming-league/internal/domain/fixture"
	"github.com/riskibarqy/gaming-league/internal/domain/league"
	"github.com/riskibarqy/gaming-league/internal/domain/leaguestanding"
	"github.com/riskibarqy/gaming-league/internal/platform/logging"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func intPtr(v int) *int { return &v }

func seedPlayedFixtures(t *testing.T, env *testEnv, leagueID string) {
	t.Helper()
	require.NoError(t, env.fixtures.ReplaceByLeague(context.Background(), leagueID, []fixture.Fixture{
		{ID: "f1", Matchday: 1, HomePlayerID: "pl-01", AwayPlayerID: "pl-02", HomeScore: intPtr(2), AwayScore: intPtr(1), Status: fixture.StatusPlayed},
		{ID: "f2", Matchday: 1, HomePlayerID: "pl-03", AwayPlayerID: "pl-04", HomeScore: intPtr(0), AwayScore: intPtr(3), Status: fixture.StatusPlayed},
		{ID: "f3", Matchday: 2, HomePlayerID: "pl-01", AwayPlayerID: "pl-04", Status: fixture.StatusScheduled},
	}))
}

func TestLeagueStandingService_ListByLeague_FallbackFromFixtures(t *testing.T) {
	t.Parallel()

	env := newTestEnv([]league.League{demoLeague("lg-1", league.StatusActive)}, demoPlayers("lg-1", 4))
	seedPlayedFixtures(t, env, "lg-1")
	service := NewLeagueStandingService(env.leagues, env.players, env.fixtures, env.standings, logging.NewNop(), 2)
	service.now = fixedClock

	got, err := service.ListByLeague(context.Background(), "lg-1")
	if err != nil {
		t.Fatalf("ListByLeague error: %v", err)
	}
	if len(got) != 4 {
		t.Fatalf("expected 4 rows, got %d", len(got))
	}
	if got[0].PlayerID != "pl-04" || got[0].Points != 3 || got[0].Position != 1 {
		t.Fatalf("unexpected rank 1 row: %+v", got[0])
	}
	if got[1].PlayerID != "pl-01" || got[1].Points != 3 {
		t.Fatalf("unexpected rank 2 row: %+v", got[1])
	}
	if !got[0].UpdatedAt.Equal(fixedNow) {
		t.Fatalf("expected computed rows to carry the clock time, got %s", got[0].UpdatedAt)
	}

	stored, err := env.standings.ListByLeague(context.Background(), "lg-1")
	require.NoError(t, err)
	require.Empty(t, stored, "fallback must not write a snapshot")
}

func TestLeagueStandingService_ListByLeague_UsesStoredRowsWhenAvailable(t *testing.T) {
	t.Parallel()

	env := newTestEnv([]league.League{demoLeague("lg-1", league.StatusActive)}, demoPlayers("lg-1", 4))
	seedPlayedFixtures(t, env, "lg-1")
	require.NoError(t, env.standings.ReplaceByLeague(context.Background(), "lg-1", []leaguestanding.Standing{
		{LeagueID: "lg-1", PlayerID: "pl-02", Position: 1, Points: 99},
	}))
	service := NewLeagueStandingService(env.leagues, env.players, env.fixtures, env.standings, logging.NewNop(), 2)

	got, err := service.ListByLeague(context.Background(), "lg-1")
	if err != nil {
		t.Fatalf("ListByLeague error: %v", err)
	}
	if len(got) != 1 || got[0].PlayerID != "pl-02" || got[0].Points != 99 {
		t.Fatalf("expected stored standings to be used, got=%+v", got)
	}
}

func TestLeagueStandingService_Recompute_ReplacesSnapshot(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	env := newTestEnv([]league.League{demoLeague("lg-1", league.StatusActive)}, demoPlayers("lg-1", 4))
	seedPlayedFixtures(t, env, "lg-1")
	require.NoError(t, env.standings.ReplaceByLeague(ctx, "lg-1", []leaguestanding.Standing{{PlayerID: "stale", Points: 99}}))
	service := NewLeagueStandingService(env.leagues, env.players, env.fixtures, env.standings, logging.NewNop(), 2)

	got, err := service.Recompute(ctx, "lg-1")
	require.NoError(t, err)
	require.Len(t, got, 4)

	stored, err := env.standings.ListByLeague(ctx, "lg-1")
	require.NoError(t, err)
	require.Equal(t, got, stored)

	_, err = service.Recompute(ctx, "missing")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestLeagueStandingService_RebuildAll(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	leagues := []league.League{
		demoLeague("lg-1", league.StatusActive),
		demoLeague("lg-2", league.StatusActive),
		demoLeague("lg-3", league.StatusDraft),
	}
	players := append(demoPlayers("lg-1", 4), demoPlayers("lg-2", 2)...)
	env := newTestEnv(leagues, players)
	seedPlayedFixtures(t, env, "lg-1")
	service := NewLeagueStandingService(env.leagues, env.players, env.fixtures, env.standings, logging.NewNop(), 2)

	rebuilt, err := service.RebuildAll(ctx)
	require.NoError(t, err)
	require.Equal(t, 3, rebuilt)

	rows, err := env.standings.ListByLeague(ctx, "lg-2")
	require.NoError(t, err)
	require.Len(t, rows, 2)
}

type failingStandingRepository struct{}

func (failingStandingRepository) ListByLeague(context.Context, string) ([]leaguestanding.Standing, error) {
	return nil, nil
}

func (failingStandingRepository) ReplaceByLeague(context.Context, string, []leaguestanding.Standing) error {
	return errors.New("write failed")
}

func TestLeagueStandingService_RebuildAll_CollectsErrors(t *testing.T) {
	t.Parallel()

	env := newTestEnv([]league.League{demoLeague("lg-1", league.StatusActive), demoLeague("lg-2", league.StatusActive)}, nil)
	service := NewLeagueStandingService(env.leagues, env.players, env.fixtures, failingStandingRepository{}, logging.NewNop(), 1)

	rebuilt, err := service.RebuildAll(context.Background())
	require.Error(t, err)
	require.Zero(t, rebuilt)
	require.Contains(t, err.Error(), "league=lg-1")
	require.Contains(t, err.Error(), "league=lg-2")
}

func TestLeagueStandingService_Refresh_LogsThroughServiceLogger(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.WarnLevel)
	logger := logging.FromZap(zap.New(core)).Named("standings")
	env := newTestEnv([]league.League{demoLeague("lg-1", league.StatusActive)}, demoPlayers("lg-1", 2))
	service := NewLeagueStandingService(env.leagues, env.players, env.fixtures, failingStandingRepository{}, logger, 1)

	refreshStandings(context.Background(), service, "lg-1")

	entries := logs.FilterMessage("standings recompute failed").All()
	require.Len(t, entries, 1)
	require.Equal(t, "standings", entries[0].LoggerName)
	require.Equal(t, "lg-1", entries[0].ContextMap()["league_id"])
}

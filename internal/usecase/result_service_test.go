package usecase

import (
	"context"
	"testing"

	"github.com/riskibarqy/gaming-league/internal/domain/fixture"
	"github.com/riskibarqy/gaming-league/internal/domain/league"
	"github.com/riskibarqy/gaming-league/internal/domain/result"
	"github.com/stretchr/testify/require"
)

type resultTestSetup struct {
	env       *testEnv
	service   *ResultService
	recompute *stubStandingsRefresher
	fixture   fixture.Fixture
}

func newResultTestSetup(t *testing.T) resultTestSetup {
	t.Helper()

	ctx := context.Background()
	env := newTestEnv([]league.League{demoLeague("lg-1", league.StatusActive)}, demoPlayers("lg-1", 2))
	item := fixture.Fixture{
		ID:           "fx-1",
		LeagueID:     "lg-1",
		Matchday:     1,
		Round:        1,
		HomePlayerID: "pl-01",
		AwayPlayerID: "pl-02",
		Status:       fixture.StatusScheduled,
	}
	require.NoError(t, env.fixtures.ReplaceByLeague(ctx, "lg-1", []fixture.Fixture{item}))

	recompute := &stubStandingsRefresher{}
	service := NewResultService(env.leagues, env.fixtures, env.reports, recompute, &sequenceIDGenerator{prefix: "rp"})
	service.now = fixedClock

	return resultTestSetup{env: env, service: service, recompute: recompute, fixture: item}
}

func (s resultTestSetup) reload(t *testing.T) fixture.Fixture {
	t.Helper()
	item, exists, err := s.env.fixtures.GetByID(context.Background(), "lg-1", s.fixture.ID)
	require.NoError(t, err)
	require.True(t, exists)
	return item
}

func TestResultService_ReportThenApprove(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	setup := newResultTestSetup(t)

	first, err := setup.service.ReportResult(ctx, ReportResultInput{
		LeagueID: "lg-1", FixtureID: "fx-1", ReporterID: "pl-01", HomeScore: 3, AwayScore: 1, Note: "gg",
	})
	require.NoError(t, err)
	require.Equal(t, result.StatusPending, first.Status)
	require.Equal(t, fixture.StatusAwaitingApproval, setup.reload(t).Status)

	second, err := setup.service.ReportResult(ctx, ReportResultInput{
		LeagueID: "lg-1", FixtureID: "fx-1", ReporterID: "pl-02", HomeScore: 2, AwayScore: 2,
	})
	require.NoError(t, err)

	approved, err := setup.service.ApproveReport(ctx, first.ID, "screenshot checked")
	require.NoError(t, err)
	require.Equal(t, result.StatusApproved, approved.Status)
	require.NotNil(t, approved.ReviewedAt)

	played := setup.reload(t)
	require.Equal(t, fixture.StatusPlayed, played.Status)
	require.Equal(t, 3, *played.HomeScore)
	require.Equal(t, 1, *played.AwayScore)
	require.NotNil(t, played.PlayedAt)

	other, _, err := setup.env.reports.GetByID(ctx, second.ID)
	require.NoError(t, err)
	require.Equal(t, result.StatusRejected, other.Status)
	require.Equal(t, []string{"lg-1"}, setup.recompute.Calls())

	_, err = setup.service.ApproveReport(ctx, first.ID, "")
	require.ErrorIs(t, err, ErrConflict)
	_, err = setup.service.ReportResult(ctx, ReportResultInput{
		LeagueID: "lg-1", FixtureID: "fx-1", ReporterID: "pl-01", HomeScore: 0, AwayScore: 0,
	})
	require.ErrorIs(t, err, ErrConflict)
}

func TestResultService_ReportResult_Validation(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	setup := newResultTestSetup(t)

	_, err := setup.service.ReportResult(ctx, ReportResultInput{LeagueID: "lg-1", FixtureID: "fx-1", ReporterID: "pl-99", HomeScore: 1})
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = setup.service.ReportResult(ctx, ReportResultInput{LeagueID: "lg-1", FixtureID: "fx-1", ReporterID: "pl-01", HomeScore: -1})
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = setup.service.ReportResult(ctx, ReportResultInput{LeagueID: "lg-1", FixtureID: "fx-missing", ReporterID: "pl-01"})
	require.ErrorIs(t, err, ErrNotFound)

	require.Equal(t, fixture.StatusScheduled, setup.reload(t).Status)
}

func TestResultService_RejectReport_RestoresScheduled(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	setup := newResultTestSetup(t)

	a, err := setup.service.ReportResult(ctx, ReportResultInput{LeagueID: "lg-1", FixtureID: "fx-1", ReporterID: "pl-01", HomeScore: 1})
	require.NoError(t, err)
	b, err := setup.service.ReportResult(ctx, ReportResultInput{LeagueID: "lg-1", FixtureID: "fx-1", ReporterID: "pl-02", AwayScore: 1})
	require.NoError(t, err)

	_, err = setup.service.RejectReport(ctx, a.ID, "no proof")
	require.NoError(t, err)
	require.Equal(t, fixture.StatusAwaitingApproval, setup.reload(t).Status)

	rejected, err := setup.service.RejectReport(ctx, b.ID, "no proof")
	require.NoError(t, err)
	require.Equal(t, result.StatusRejected, rejected.Status)
	require.Equal(t, "no proof", rejected.ReviewNote)
	require.Equal(t, fixture.StatusScheduled, setup.reload(t).Status)
	require.Empty(t, setup.recompute.Calls())
}

func TestResultService_RecordResult_OverridesPendingReports(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	setup := newResultTestSetup(t)

	pending, err := setup.service.ReportResult(ctx, ReportResultInput{LeagueID: "lg-1", FixtureID: "fx-1", ReporterID: "pl-01", HomeScore: 9})
	require.NoError(t, err)

	got, err := setup.service.RecordResult(ctx, RecordResultInput{LeagueID: "lg-1", FixtureID: "fx-1", HomeScore: 0, AwayScore: 2})
	require.NoError(t, err)
	require.Equal(t, fixture.StatusPlayed, got.Status)
	require.Equal(t, 2, *got.AwayScore)
	require.True(t, got.PlayedAt.Equal(fixedNow))

	stale, _, err := setup.env.reports.GetByID(ctx, pending.ID)
	require.NoError(t, err)
	require.Equal(t, result.StatusRejected, stale.Status)

	reports, err := setup.service.ListReports(ctx, "lg-1", "rejected")
	require.NoError(t, err)
	require.Len(t, reports, 1)

	_, err = setup.service.ListReports(ctx, "lg-1", "disputed")
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestResultService_RecordResult_CancelledFixture(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	setup := newResultTestSetup(t)

	cancelled := setup.fixture
	cancelled.Status = fixture.StatusCancelled
	require.NoError(t, setup.env.fixtures.Update(ctx, cancelled))

	_, err := setup.service.RecordResult(ctx, RecordResultInput{LeagueID: "lg-1", FixtureID: "fx-1", HomeScore: 1})
	require.ErrorIs(t, err, ErrConflict)
}

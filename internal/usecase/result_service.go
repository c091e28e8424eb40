package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/riskibarqy/gaming-league/internal/domain/fixture"
	"github.com/riskibarqy/gaming-league/internal/domain/league"
	"github.com/riskibarqy/gaming-league/internal/domain/result"
	idgen "github.com/riskibarqy/gaming-league/internal/platform/id"
)

type ReportResultInput struct {
	LeagueID   string
	FixtureID  string
	ReporterID string
	HomeScore  int
	AwayScore  int
	Note       string
}

type RecordResultInput struct {
	LeagueID  string
	FixtureID string
	HomeScore int
	AwayScore int
	PlayedAt  *time.Time
}

type ResultService struct {
	leagueRepo  league.Repository
	fixtureRepo fixture.Repository
	reportRepo  result.Repository
	standings   standingsRefresher
	idGen       idgen.Generator
	now         func() time.Time
}

func NewResultService(
	leagueRepo league.Repository,
	fixtureRepo fixture.Repository,
	reportRepo result.Repository,
	standings standingsRefresher,
	idGen idgen.Generator,
) *ResultService {
	return &ResultService{
		leagueRepo:  leagueRepo,
		fixtureRepo: fixtureRepo,
		reportRepo:  reportRepo,
		standings:   standings,
		idGen:       idGen,
		now:         time.Now,
	}
}

// ReportResult records a score submitted by one of the two fixture
// players. The fixture waits for admin approval afterwards.
func (s *ResultService) ReportResult(ctx context.Context, input ReportResultInput) (result.Report, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ResultService.ReportResult")
	defer span.End()

	item, err := loadFixture(ctx, s.leagueRepo, s.fixtureRepo, input.LeagueID, input.FixtureID)
	if err != nil {
		return result.Report{}, err
	}

	reporterID := strings.TrimSpace(input.ReporterID)
	if reporterID == "" {
		return result.Report{}, fmt.Errorf("%w: reporter id is required", ErrInvalidInput)
	}
	if !item.Involves(reporterID) {
		return result.Report{}, fmt.Errorf("%w: player %s does not play fixture %s", ErrInvalidInput, reporterID, item.ID)
	}
	if input.HomeScore < 0 || input.AwayScore < 0 {
		return result.Report{}, fmt.Errorf("%w: scores must be >= 0", ErrInvalidInput)
	}
	if !item.AcceptsReports() {
		return result.Report{}, fmt.Errorf("%w: fixture %s is %s", ErrConflict, item.ID, item.Status)
	}

	reportID, err := s.idGen.NewID()
	if err != nil {
		return result.Report{}, fmt.Errorf("generate report id: %w", err)
	}

	now := s.now().UTC()
	report := result.Report{
		ID:         reportID,
		LeagueID:   item.LeagueID,
		FixtureID:  item.ID,
		ReportedBy: reporterID,
		HomeScore:  input.HomeScore,
		AwayScore:  input.AwayScore,
		Status:     result.StatusPending,
		Note:       strings.TrimSpace(input.Note),
		CreatedAt:  now,
	}
	if err := report.Validate(); err != nil {
		return result.Report{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.reportRepo.Create(ctx, report); err != nil {
		return result.Report{}, fmt.Errorf("create result report: %w", err)
	}

	if item.Status != fixture.StatusAwaitingApproval {
		item.Status = fixture.StatusAwaitingApproval
		item.UpdatedAt = now
		if err := s.fixtureRepo.Update(ctx, item); err != nil {
			return result.Report{}, fmt.Errorf("update fixture: %w", err)
		}
	}

	return report, nil
}

// ApproveReport applies the reported score to the fixture, rejects the
// competing pending reports and refreshes the table.
func (s *ResultService) ApproveReport(ctx context.Context, reportID, note string) (result.Report, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ResultService.ApproveReport")
	defer span.End()

	report, err := s.loadPendingReport(ctx, reportID)
	if err != nil {
		return result.Report{}, err
	}
	item, err := loadFixture(ctx, s.leagueRepo, s.fixtureRepo, report.LeagueID, report.FixtureID)
	if err != nil {
		return result.Report{}, err
	}
	if item.Status == fixture.StatusCancelled {
		return result.Report{}, fmt.Errorf("%w: fixture %s is cancelled", ErrConflict, item.ID)
	}

	now := s.now().UTC()
	report.Status = result.StatusApproved
	report.ReviewNote = strings.TrimSpace(note)
	report.ReviewedAt = &now
	if err := s.reportRepo.Update(ctx, report); err != nil {
		return result.Report{}, fmt.Errorf("approve result report: %w", err)
	}

	others, err := s.reportRepo.ListByFixture(ctx, item.ID)
	if err != nil {
		return result.Report{}, fmt.Errorf("list fixture reports: %w", err)
	}
	for _, other := range others {
		if other.ID == report.ID || !other.IsPending() {
			continue
		}
		other.Status = result.StatusRejected
		other.ReviewNote = "superseded by report " + report.ID
		other.ReviewedAt = &now
		if err := s.reportRepo.Update(ctx, other); err != nil {
			return result.Report{}, fmt.Errorf("reject superseded report: %w", err)
		}
	}

	if err := s.applyScore(ctx, item, report.HomeScore, report.AwayScore, now); err != nil {
		return result.Report{}, err
	}

	return report, nil
}

// RejectReport discards a pending report. The fixture goes back to
// scheduled once no other report is waiting.
func (s *ResultService) RejectReport(ctx context.Context, reportID, note string) (result.Report, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ResultService.RejectReport")
	defer span.End()

	report, err := s.loadPendingReport(ctx, reportID)
	if err != nil {
		return result.Report{}, err
	}

	now := s.now().UTC()
	report.Status = result.StatusRejected
	report.ReviewNote = strings.TrimSpace(note)
	report.ReviewedAt = &now
	if err := s.reportRepo.Update(ctx, report); err != nil {
		return result.Report{}, fmt.Errorf("reject result report: %w", err)
	}

	others, err := s.reportRepo.ListByFixture(ctx, report.FixtureID)
	if err != nil {
		return result.Report{}, fmt.Errorf("list fixture reports: %w", err)
	}
	for _, other := range others {
		if other.ID != report.ID && other.IsPending() {
			return report, nil
		}
	}

	item, exists, err := s.fixtureRepo.GetByID(ctx, report.LeagueID, report.FixtureID)
	if err != nil {
		return result.Report{}, fmt.Errorf("get fixture: %w", err)
	}
	if exists && item.Status == fixture.StatusAwaitingApproval {
		item.Status = fixture.StatusScheduled
		item.UpdatedAt = now
		if err := s.fixtureRepo.Update(ctx, item); err != nil {
			return result.Report{}, fmt.Errorf("update fixture: %w", err)
		}
	}

	return report, nil
}

// RecordResult sets the final score directly, bypassing the report flow.
// Pending reports for the fixture are rejected.
func (s *ResultService) RecordResult(ctx context.Context, input RecordResultInput) (fixture.Fixture, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ResultService.RecordResult")
	defer span.End()

	if input.HomeScore < 0 || input.AwayScore < 0 {
		return fixture.Fixture{}, fmt.Errorf("%w: scores must be >= 0", ErrInvalidInput)
	}

	item, err := loadFixture(ctx, s.leagueRepo, s.fixtureRepo, input.LeagueID, input.FixtureID)
	if err != nil {
		return fixture.Fixture{}, err
	}
	if item.Status == fixture.StatusCancelled {
		return fixture.Fixture{}, fmt.Errorf("%w: fixture %s is cancelled", ErrConflict, item.ID)
	}

	now := s.now().UTC()
	pending, err := s.reportRepo.ListByFixture(ctx, item.ID)
	if err != nil {
		return fixture.Fixture{}, fmt.Errorf("list fixture reports: %w", err)
	}
	for _, report := range pending {
		if !report.IsPending() {
			continue
		}
		report.Status = result.StatusRejected
		report.ReviewNote = "result recorded by admin"
		report.ReviewedAt = &now
		if err := s.reportRepo.Update(ctx, report); err != nil {
			return fixture.Fixture{}, fmt.Errorf("reject pending report: %w", err)
		}
	}

	playedAt := now
	if input.PlayedAt != nil {
		playedAt = input.PlayedAt.UTC()
	}
	item.PlayedAt = &playedAt
	if err := s.applyScore(ctx, item, input.HomeScore, input.AwayScore, now); err != nil {
		return fixture.Fixture{}, err
	}

	return s.mustReload(ctx, item)
}

// ListReports returns league reports, newest first. A blank status
// returns every report.
func (s *ResultService) ListReports(ctx context.Context, leagueID, status string) ([]result.Report, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ResultService.ListReports")
	defer span.End()

	item, err := loadLeague(ctx, s.leagueRepo, leagueID)
	if err != nil {
		return nil, err
	}

	status = result.NormalizeStatus(status)
	if status != "" && !result.IsValidStatus(status) {
		return nil, fmt.Errorf("%w: unknown report status %q", ErrInvalidInput, status)
	}

	reports, err := s.reportRepo.ListByLeague(ctx, item.ID, status)
	if err != nil {
		return nil, fmt.Errorf("list result reports: %w", err)
	}
	sort.SliceStable(reports, func(i, j int) bool {
		return reports[i].CreatedAt.After(reports[j].CreatedAt)
	})

	return reports, nil
}

func (s *ResultService) loadPendingReport(ctx context.Context, reportID string) (result.Report, error) {
	reportID = strings.TrimSpace(reportID)
	if reportID == "" {
		return result.Report{}, fmt.Errorf("%w: report id is required", ErrInvalidInput)
	}

	report, exists, err := s.reportRepo.GetByID(ctx, reportID)
	if err != nil {
		return result.Report{}, fmt.Errorf("get result report: %w", err)
	}
	if !exists {
		return result.Report{}, fmt.Errorf("%w: report=%s", ErrNotFound, reportID)
	}
	if !report.IsPending() {
		return result.Report{}, fmt.Errorf("%w: report %s is already %s", ErrConflict, report.ID, report.Status)
	}

	return report, nil
}

func (s *ResultService) applyScore(ctx context.Context, item fixture.Fixture, home, away int, now time.Time) error {
	item.HomeScore = &home
	item.AwayScore = &away
	item.Status = fixture.StatusPlayed
	if item.PlayedAt == nil {
		item.PlayedAt = &now
	}
	item.UpdatedAt = now

	if err := s.fixtureRepo.Update(ctx, item); err != nil {
		return fmt.Errorf("update fixture result: %w", err)
	}
	refreshStandings(ctx, s.standings, item.LeagueID)
	return nil
}

func (s *ResultService) mustReload(ctx context.Context, item fixture.Fixture) (fixture.Fixture, error) {
	reloaded, exists, err := s.fixtureRepo.GetByID(ctx, item.LeagueID, item.ID)
	if err != nil {
		return fixture.Fixture{}, fmt.Errorf("reload fixture: %w", err)
	}
	if !exists {
		return fixture.Fixture{}, fmt.Errorf("%w: fixture=%s", ErrNotFound, item.ID)
	}
	return reloaded, nil
}

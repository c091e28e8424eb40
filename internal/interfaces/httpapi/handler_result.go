package httpapi

import (
	"net/http"
	"strings"

	"github.com/riskibarqy/gaming-league/internal/domain/result"
	"github.com/riskibarqy/gaming-league/internal/usecase"
)

func (h *Handler) ReportFixtureResult(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ReportFixtureResult")
	defer span.End()

	leagueID := strings.TrimSpace(r.PathValue("leagueID"))
	fixtureID := strings.TrimSpace(r.PathValue("fixtureID"))
	var req reportResultRequest
	if err := h.decodeAndValidate(ctx, r, &req, false); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.resultService.ReportResult(ctx, usecase.ReportResultInput{
		LeagueID:   leagueID,
		FixtureID:  fixtureID,
		ReporterID: req.ReporterID,
		HomeScore:  *req.HomeScore,
		AwayScore:  *req.AwayScore,
		Note:       req.Note,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "report result failed", "league_id", leagueID, "fixture_id", fixtureID, "reporter_id", req.ReporterID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, reportToDTO(item))
}

func (h *Handler) ListReportsByLeague(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListReportsByLeague")
	defer span.End()

	leagueID := strings.TrimSpace(r.PathValue("leagueID"))
	status := strings.TrimSpace(r.URL.Query().Get("status"))
	reports, err := h.resultService.ListReports(ctx, leagueID, status)
	if err != nil {
		h.logger.WarnContext(ctx, "list reports failed", "league_id", leagueID, "status", status, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, reportsToDTO(reports))
}

func (h *Handler) ApproveReport(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ApproveReport")
	defer span.End()

	reportID := strings.TrimSpace(r.PathValue("reportID"))
	var req reviewReportRequest
	if err := h.decodeAndValidate(ctx, r, &req, true); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.resultService.ApproveReport(ctx, reportID, req.Note)
	if err != nil {
		h.logger.WarnContext(ctx, "approve report failed", "report_id", reportID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, reportToDTO(item))
}

func (h *Handler) RejectReport(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RejectReport")
	defer span.End()

	reportID := strings.TrimSpace(r.PathValue("reportID"))
	var req reviewReportRequest
	if err := h.decodeAndValidate(ctx, r, &req, true); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.resultService.RejectReport(ctx, reportID, req.Note)
	if err != nil {
		h.logger.WarnContext(ctx, "reject report failed", "report_id", reportID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, reportToDTO(item))
}

func reportsToDTO(items []result.Report) []reportDTO {
	out := make([]reportDTO, 0, len(items))
	for _, item := range items {
		out = append(out, reportToDTO(item))
	}
	return out
}

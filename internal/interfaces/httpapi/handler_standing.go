package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strings"
)

func (h *Handler) ListLeagueStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListLeagueStandings")
	defer span.End()

	leagueID := strings.TrimSpace(r.PathValue("leagueID"))
	standings, err := h.leagueStandingService.ListByLeague(ctx, leagueID)
	if err != nil {
		h.logger.WarnContext(ctx, "list league standings failed", "league_id", leagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]leagueStandingDTO, 0, len(standings))
	for _, item := range standings {
		items = append(items, leagueStandingToDTO(ctx, item))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) RecomputeLeagueStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RecomputeLeagueStandings")
	defer span.End()

	leagueID := strings.TrimSpace(r.PathValue("leagueID"))
	standings, err := h.leagueStandingService.Recompute(ctx, leagueID)
	if err != nil {
		h.logger.WarnContext(ctx, "recompute league standings failed", "league_id", leagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]leagueStandingDTO, 0, len(standings))
	for _, item := range standings {
		items = append(items, leagueStandingToDTO(ctx, item))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) RebuildAllStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RebuildAllStandings")
	defer span.End()

	count, err := h.leagueStandingService.RebuildAll(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "rebuild standings failed", "leagues", count, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, rebuildStandingsDTO{Leagues: count})
}

func (h *Handler) ExportStandingsCSV(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ExportStandingsCSV")
	defer span.End()

	leagueID := strings.TrimSpace(r.PathValue("leagueID"))
	body, err := h.exportService.ExportStandingsCSV(ctx, leagueID)
	if err != nil {
		h.logger.WarnContext(ctx, "export standings failed", "league_id", leagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeCSV(ctx, w, leagueID+"-standings.csv", body)
}

func (h *Handler) ExportFixturesCSV(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ExportFixturesCSV")
	defer span.End()

	leagueID := strings.TrimSpace(r.PathValue("leagueID"))
	body, err := h.exportService.ExportFixturesCSV(ctx, leagueID)
	if err != nil {
		h.logger.WarnContext(ctx, "export fixtures failed", "league_id", leagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeCSV(ctx, w, leagueID+"-fixtures.csv", body)
}

func writeCSV(ctx context.Context, w http.ResponseWriter, filename string, body []byte) {
	_, span := startSpan(ctx, "httpapi.writeCSV")
	defer span.End()

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

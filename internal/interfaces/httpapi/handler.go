package httpapi

import (
	"net/http"
	"strings"

	"github.com/riskibarqy/gaming-league/internal/usecase"
)

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) ListLeagues(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListLeagues")
	defer span.End()

	leagues, err := h.leagueService.ListLeagues(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list leagues failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]leagueDTO, 0, len(leagues))
	for _, l := range leagues {
		items = append(items, leagueToDTO(l))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetLeague(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLeague")
	defer span.End()

	leagueID := strings.TrimSpace(r.PathValue("leagueID"))
	item, err := h.leagueService.GetLeague(ctx, leagueID)
	if err != nil {
		h.logger.WarnContext(ctx, "get league failed", "league_id", leagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, leagueToDTO(item))
}

func (h *Handler) GetLeagueOverview(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLeagueOverview")
	defer span.End()

	leagueID := strings.TrimSpace(r.PathValue("leagueID"))
	overview, err := h.leagueService.GetOverview(ctx, leagueID)
	if err != nil {
		h.logger.WarnContext(ctx, "get league overview failed", "league_id", leagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, leagueOverviewToDTO(ctx, overview))
}

func (h *Handler) CreateLeague(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateLeague")
	defer span.End()

	var req createLeagueRequest
	if err := h.decodeAndValidate(ctx, r, &req, false); err != nil {
		writeError(ctx, w, err)
		return
	}
	interval, err := parseOptionalDuration("matchdayInterval", req.MatchdayInterval)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.leagueService.CreateLeague(ctx, usecase.CreateLeagueInput{
		Name:             req.Name,
		Game:             req.Game,
		Season:           req.Season,
		Rounds:           req.Rounds,
		MatchdayInterval: interval,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create league failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, leagueToDTO(item))
}

func (h *Handler) UpdateLeague(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateLeague")
	defer span.End()

	leagueID := strings.TrimSpace(r.PathValue("leagueID"))
	var req updateLeagueRequest
	if err := h.decodeAndValidate(ctx, r, &req, false); err != nil {
		writeError(ctx, w, err)
		return
	}

	input := usecase.UpdateLeagueInput{
		LeagueID: leagueID,
		Name:     req.Name,
		Game:     req.Game,
		Season:   req.Season,
		Rounds:   req.Rounds,
		Status:   req.Status,
	}
	if req.MatchdayInterval != nil {
		interval, err := parseOptionalDuration("matchdayInterval", *req.MatchdayInterval)
		if err != nil {
			writeError(ctx, w, err)
			return
		}
		input.MatchdayInterval = &interval
	}

	item, err := h.leagueService.UpdateLeague(ctx, input)
	if err != nil {
		h.logger.WarnContext(ctx, "update league failed", "league_id", leagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, leagueToDTO(item))
}

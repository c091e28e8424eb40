package httpapi

import (
	"net/http"
	"strings"

	"github.com/riskibarqy/gaming-league/internal/usecase"
)

func (h *Handler) ListFixturesByLeague(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListFixturesByLeague")
	defer span.End()

	leagueID := strings.TrimSpace(r.PathValue("leagueID"))
	matchday, err := parseMatchdayQuery(r.URL.Query().Get("matchday"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	fixtures, err := h.fixtureService.ListFixtures(ctx, leagueID, matchday)
	if err != nil {
		h.logger.WarnContext(ctx, "list fixtures failed", "league_id", leagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, fixturesToDTO(fixtures))
}

func (h *Handler) GetFixtureByLeague(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetFixtureByLeague")
	defer span.End()

	leagueID := strings.TrimSpace(r.PathValue("leagueID"))
	fixtureID := strings.TrimSpace(r.PathValue("fixtureID"))
	item, err := h.fixtureService.GetFixture(ctx, leagueID, fixtureID)
	if err != nil {
		h.logger.WarnContext(ctx, "get fixture failed", "league_id", leagueID, "fixture_id", fixtureID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, fixtureToDTO(item))
}

func (h *Handler) GenerateSchedule(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GenerateSchedule")
	defer span.End()

	leagueID := strings.TrimSpace(r.PathValue("leagueID"))
	var req generateScheduleRequest
	if err := h.decodeAndValidate(ctx, r, &req, true); err != nil {
		writeError(ctx, w, err)
		return
	}
	startAt, err := parseOptionalTime("startAt", req.StartAt)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	every, err := parseOptionalDuration("every", req.Every)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	fixtures, err := h.fixtureService.GenerateSchedule(ctx, usecase.GenerateScheduleInput{
		LeagueID: leagueID,
		Rounds:   req.Rounds,
		StartAt:  startAt,
		Every:    every,
		Force:    req.Force,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "generate schedule failed", "league_id", leagueID, "force", req.Force, "error", err)
		writeError(ctx, w, err)
		return
	}

	h.logger.InfoContext(ctx, "schedule generated", "league_id", leagueID, "fixtures", len(fixtures))
	writeSuccess(ctx, w, http.StatusCreated, fixturesToDTO(fixtures))
}

func (h *Handler) RescheduleFixture(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RescheduleFixture")
	defer span.End()

	leagueID := strings.TrimSpace(r.PathValue("leagueID"))
	fixtureID := strings.TrimSpace(r.PathValue("fixtureID"))
	var req rescheduleFixtureRequest
	if err := h.decodeAndValidate(ctx, r, &req, false); err != nil {
		writeError(ctx, w, err)
		return
	}
	at, err := parseOptionalTime("scheduledAt", req.ScheduledAt)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.fixtureService.RescheduleFixture(ctx, leagueID, fixtureID, at)
	if err != nil {
		h.logger.WarnContext(ctx, "reschedule fixture failed", "league_id", leagueID, "fixture_id", fixtureID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, fixtureToDTO(item))
}

func (h *Handler) CancelFixture(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CancelFixture")
	defer span.End()

	leagueID := strings.TrimSpace(r.PathValue("leagueID"))
	fixtureID := strings.TrimSpace(r.PathValue("fixtureID"))
	item, err := h.fixtureService.CancelFixture(ctx, leagueID, fixtureID)
	if err != nil {
		h.logger.WarnContext(ctx, "cancel fixture failed", "league_id", leagueID, "fixture_id", fixtureID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, fixtureToDTO(item))
}

func (h *Handler) RecordFixtureResult(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RecordFixtureResult")
	defer span.End()

	leagueID := strings.TrimSpace(r.PathValue("leagueID"))
	fixtureID := strings.TrimSpace(r.PathValue("fixtureID"))
	var req recordResultRequest
	if err := h.decodeAndValidate(ctx, r, &req, false); err != nil {
		writeError(ctx, w, err)
		return
	}
	playedAt, err := parseOptionalTime("playedAt", req.PlayedAt)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.resultService.RecordResult(ctx, usecase.RecordResultInput{
		LeagueID:  leagueID,
		FixtureID: fixtureID,
		HomeScore: *req.HomeScore,
		AwayScore: *req.AwayScore,
		PlayedAt:  playedAt,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "record result failed", "league_id", leagueID, "fixture_id", fixtureID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, fixtureToDTO(item))
}

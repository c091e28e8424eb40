package httpapi

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/riskibarqy/gaming-league/internal/usecase"
)

func (h *Handler) ListPlayersByLeague(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayersByLeague")
	defer span.End()

	leagueID := strings.TrimSpace(r.PathValue("leagueID"))
	status := strings.TrimSpace(r.URL.Query().Get("status"))
	players, err := h.playerService.ListPlayers(ctx, leagueID, status)
	if err != nil {
		h.logger.WarnContext(ctx, "list players failed", "league_id", leagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]playerPublicDTO, 0, len(players))
	for _, p := range players {
		items = append(items, playerToPublicDTO(p))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetPlayerByLeague(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayerByLeague")
	defer span.End()

	leagueID := strings.TrimSpace(r.PathValue("leagueID"))
	playerID := strings.TrimSpace(r.PathValue("playerID"))
	item, err := h.playerService.GetPlayer(ctx, leagueID, playerID)
	if err != nil {
		h.logger.WarnContext(ctx, "get player failed", "league_id", leagueID, "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerToPublicDTO(item))
}

func (h *Handler) RegisterPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RegisterPlayer")
	defer span.End()

	leagueID := strings.TrimSpace(r.PathValue("leagueID"))
	var req registerPlayerRequest
	if err := h.decodeAndValidate(ctx, r, &req, false); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.playerService.RegisterPlayer(ctx, usecase.RegisterPlayerInput{
		LeagueID: leagueID,
		Name:     req.Name,
		Gamertag: req.Gamertag,
		Email:    req.Email,
		Phone:    req.Phone,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "register player failed", "league_id", leagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, playerToDTO(item))
}

func (h *Handler) UpdatePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdatePlayer")
	defer span.End()

	leagueID := strings.TrimSpace(r.PathValue("leagueID"))
	playerID := strings.TrimSpace(r.PathValue("playerID"))
	var req updatePlayerRequest
	if err := h.decodeAndValidate(ctx, r, &req, false); err != nil {
		writeError(ctx, w, err)
		return
	}
	// An empty email clears the field, anything else must be an address.
	if req.Email != nil && strings.TrimSpace(*req.Email) != "" {
		if err := h.validator.VarCtx(ctx, strings.TrimSpace(*req.Email), "email"); err != nil {
			writeError(ctx, w, fmt.Errorf("%w: email is invalid", usecase.ErrInvalidInput))
			return
		}
	}

	item, err := h.playerService.UpdatePlayer(ctx, usecase.UpdatePlayerInput{
		LeagueID: leagueID,
		PlayerID: playerID,
		Name:     req.Name,
		Gamertag: req.Gamertag,
		Email:    req.Email,
		Phone:    req.Phone,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "update player failed", "league_id", leagueID, "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerToDTO(item))
}

func (h *Handler) WithdrawPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.WithdrawPlayer")
	defer span.End()

	leagueID := strings.TrimSpace(r.PathValue("leagueID"))
	playerID := strings.TrimSpace(r.PathValue("playerID"))
	item, err := h.playerService.WithdrawPlayer(ctx, leagueID, playerID)
	if err != nil {
		h.logger.WarnContext(ctx, "withdraw player failed", "league_id", leagueID, "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerToDTO(item))
}

func (h *Handler) DeletePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeletePlayer")
	defer span.End()

	leagueID := strings.TrimSpace(r.PathValue("leagueID"))
	playerID := strings.TrimSpace(r.PathValue("playerID"))
	if err := h.playerService.DeletePlayer(ctx, leagueID, playerID); err != nil {
		h.logger.WarnContext(ctx, "delete player failed", "league_id", leagueID, "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

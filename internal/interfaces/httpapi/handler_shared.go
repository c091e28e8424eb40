package httpapi

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"
	"github.com/riskibarqy/gaming-league/internal/domain/fixture"
	"github.com/riskibarqy/gaming-league/internal/domain/league"
	"github.com/riskibarqy/gaming-league/internal/domain/leaguestanding"
	"github.com/riskibarqy/gaming-league/internal/domain/player"
	"github.com/riskibarqy/gaming-league/internal/domain/result"
	"github.com/riskibarqy/gaming-league/internal/platform/logging"
	"github.com/riskibarqy/gaming-league/internal/usecase"
)

const maxRequestBodyBytes = 1 << 20

type Handler struct {
	leagueService         *usecase.LeagueService
	playerService         *usecase.PlayerService
	fixtureService        *usecase.FixtureService
	resultService         *usecase.ResultService
	leagueStandingService *usecase.LeagueStandingService
	exportService         *usecase.ExportService
	logger                *logging.Logger
	validator             *validator.Validate
}

func NewHandler(
	leagueService *usecase.LeagueService,
	playerService *usecase.PlayerService,
	fixtureService *usecase.FixtureService,
	resultService *usecase.ResultService,
	leagueStandingService *usecase.LeagueStandingService,
	exportService *usecase.ExportService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		leagueService:         leagueService,
		playerService:         playerService,
		fixtureService:        fixtureService,
		resultService:         resultService,
		leagueStandingService: leagueStandingService,
		exportService:         exportService,
		logger:                logger,
		validator:             validator.New(),
	}
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

// decodeAndValidate reads a JSON body into dst and runs struct validation.
// An empty body is accepted when allowEmpty is set.
func (h *Handler) decodeAndValidate(ctx context.Context, r *http.Request, dst any, allowEmpty bool) error {
	decoder := jsoniter.NewDecoder(io.LimitReader(r.Body, maxRequestBodyBytes))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		if !(allowEmpty && err == io.EOF) {
			return fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
		}
	}
	return h.validateRequest(ctx, dst)
}

func parseOptionalTime(field, raw string) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be RFC3339: %v", usecase.ErrInvalidInput, field, err)
	}
	parsed = parsed.UTC()
	return &parsed, nil
}

func parseOptionalDuration(field, raw string) (time.Duration, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be a duration like 168h: %v", usecase.ErrInvalidInput, field, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("%w: %s cannot be negative", usecase.ErrInvalidInput, field)
	}
	return d, nil
}

func parseMatchdayQuery(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 1 {
		return 0, fmt.Errorf("%w: matchday must be a positive integer", usecase.ErrInvalidInput)
	}
	return v, nil
}

type createLeagueRequest struct {
	Name             string `json:"name" validate:"required,max=100"`
	Game             string `json:"game" validate:"required,max=100"`
	Season           string `json:"season" validate:"required,max=50"`
	Rounds           int    `json:"rounds" validate:"omitempty,min=1,max=4"`
	MatchdayInterval string `json:"matchdayInterval"`
}

type updateLeagueRequest struct {
	Name             *string `json:"name" validate:"omitempty,max=100"`
	Game             *string `json:"game" validate:"omitempty,max=100"`
	Season           *string `json:"season" validate:"omitempty,max=50"`
	Rounds           *int    `json:"rounds" validate:"omitempty,min=1,max=4"`
	Status           *string `json:"status" validate:"omitempty,oneof=DRAFT ACTIVE COMPLETED"`
	MatchdayInterval *string `json:"matchdayInterval"`
}

type registerPlayerRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Gamertag string `json:"gamertag" validate:"required,max=32"`
	Email    string `json:"email" validate:"omitempty,email,max=254"`
	Phone    string `json:"phone" validate:"omitempty,max=32"`
}

type updatePlayerRequest struct {
	Name     *string `json:"name" validate:"omitempty,max=100"`
	Gamertag *string `json:"gamertag" validate:"omitempty,max=32"`
	Email    *string `json:"email" validate:"omitempty,max=254"`
	Phone    *string `json:"phone" validate:"omitempty,max=32"`
}

type generateScheduleRequest struct {
	Rounds  int    `json:"rounds" validate:"omitempty,min=1,max=4"`
	StartAt string `json:"startAt"`
	Every   string `json:"every"`
	Force   bool   `json:"force"`
}

type rescheduleFixtureRequest struct {
	ScheduledAt string `json:"scheduledAt"`
}

type reportResultRequest struct {
	ReporterID string `json:"reporterId" validate:"required"`
	HomeScore  *int   `json:"homeScore" validate:"required,min=0,max=99"`
	AwayScore  *int   `json:"awayScore" validate:"required,min=0,max=99"`
	Note       string `json:"note" validate:"omitempty,max=500"`
}

type recordResultRequest struct {
	HomeScore *int   `json:"homeScore" validate:"required,min=0,max=99"`
	AwayScore *int   `json:"awayScore" validate:"required,min=0,max=99"`
	PlayedAt  string `json:"playedAt"`
}

type reviewReportRequest struct {
	Note string `json:"note" validate:"omitempty,max=500"`
}

type leagueDTO struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Game             string `json:"game"`
	Season           string `json:"season"`
	Rounds           int    `json:"rounds"`
	Status           string `json:"status"`
	MatchdayInterval string `json:"matchdayInterval,omitempty"`
	CreatedAt        string `json:"createdAt"`
	UpdatedAt        string `json:"updatedAt"`
}

type leagueOverviewDTO struct {
	League           leagueDTO           `json:"league"`
	PlayerCount      int                 `json:"playerCount"`
	ActivePlayers    int                 `json:"activePlayers"`
	Matchdays        int                 `json:"matchdays"`
	FixturesByStatus map[string]int      `json:"fixturesByStatus"`
	TopStandings     []leagueStandingDTO `json:"topStandings"`
}

// playerPublicDTO leaves out contact fields.
type playerPublicDTO struct {
	ID           string `json:"id"`
	LeagueID     string `json:"leagueId"`
	Name         string `json:"name"`
	Gamertag     string `json:"gamertag"`
	Status       string `json:"status"`
	RegisteredAt string `json:"registeredAt"`
}

type playerDTO struct {
	playerPublicDTO
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	UpdatedAt string `json:"updatedAt"`
}

type fixtureDTO struct {
	ID           string `json:"id"`
	LeagueID     string `json:"leagueId"`
	Matchday     int    `json:"matchday"`
	Round        int    `json:"round"`
	HomePlayerID string `json:"homePlayerId"`
	AwayPlayerID string `json:"awayPlayerId"`
	ScheduledAt  string `json:"scheduledAt,omitempty"`
	HomeScore    *int   `json:"homeScore,omitempty"`
	AwayScore    *int   `json:"awayScore,omitempty"`
	Status       string `json:"status"`
	PlayedAt     string `json:"playedAt,omitempty"`
}

type reportDTO struct {
	ID         string `json:"id"`
	LeagueID   string `json:"leagueId"`
	FixtureID  string `json:"fixtureId"`
	ReportedBy string `json:"reportedBy"`
	HomeScore  int    `json:"homeScore"`
	AwayScore  int    `json:"awayScore"`
	Status     string `json:"status"`
	Note       string `json:"note,omitempty"`
	ReviewNote string `json:"reviewNote,omitempty"`
	CreatedAt  string `json:"createdAt"`
	ReviewedAt string `json:"reviewedAt,omitempty"`
}

type leagueStandingDTO struct {
	LeagueID       string   `json:"leagueId"`
	PlayerID       string   `json:"playerId"`
	PlayerName     string   `json:"playerName"`
	Position       int      `json:"position"`
	Played         int      `json:"played"`
	Won            int      `json:"won"`
	Drawn          int      `json:"drawn"`
	Lost           int      `json:"lost"`
	GoalsFor       int      `json:"goalsFor"`
	GoalsAgainst   int      `json:"goalsAgainst"`
	GoalDifference int      `json:"goalDifference"`
	Points         int      `json:"points"`
	Form           []string `json:"form"`
	UpdatedAt      string   `json:"updatedAt,omitempty"`
}

type rebuildStandingsDTO struct {
	Leagues int `json:"leagues"`
}

func leagueToDTO(v league.League) leagueDTO {
	out := leagueDTO{
		ID:        v.ID,
		Name:      v.Name,
		Game:      v.Game,
		Season:    v.Season,
		Rounds:    v.Rounds,
		Status:    v.Status,
		CreatedAt: formatTime(v.CreatedAt),
		UpdatedAt: formatTime(v.UpdatedAt),
	}
	if v.MatchdayInterval > 0 {
		out.MatchdayInterval = v.MatchdayInterval.String()
	}
	return out
}

func leagueOverviewToDTO(ctx context.Context, v usecase.LeagueOverview) leagueOverviewDTO {
	top := make([]leagueStandingDTO, 0, len(v.TopStandings))
	for _, item := range v.TopStandings {
		top = append(top, leagueStandingToDTO(ctx, item))
	}
	byStatus := v.FixturesByStatus
	if byStatus == nil {
		byStatus = map[string]int{}
	}

	return leagueOverviewDTO{
		League:           leagueToDTO(v.League),
		PlayerCount:      v.PlayerCount,
		ActivePlayers:    v.ActivePlayers,
		Matchdays:        v.Matchdays,
		FixturesByStatus: byStatus,
		TopStandings:     top,
	}
}

func playerToPublicDTO(v player.Player) playerPublicDTO {
	return playerPublicDTO{
		ID:           v.ID,
		LeagueID:     v.LeagueID,
		Name:         v.Name,
		Gamertag:     v.Gamertag,
		Status:       v.Status,
		RegisteredAt: formatTime(v.RegisteredAt),
	}
}

func playerToDTO(v player.Player) playerDTO {
	return playerDTO{
		playerPublicDTO: playerToPublicDTO(v),
		Email:           v.Email,
		Phone:           v.Phone,
		UpdatedAt:       formatTime(v.UpdatedAt),
	}
}

func fixtureToDTO(v fixture.Fixture) fixtureDTO {
	return fixtureDTO{
		ID:           v.ID,
		LeagueID:     v.LeagueID,
		Matchday:     v.Matchday,
		Round:        v.Round,
		HomePlayerID: v.HomePlayerID,
		AwayPlayerID: v.AwayPlayerID,
		ScheduledAt:  formatOptionalTime(v.ScheduledAt),
		HomeScore:    v.HomeScore,
		AwayScore:    v.AwayScore,
		Status:       v.Status,
		PlayedAt:     formatOptionalTime(v.PlayedAt),
	}
}

func fixturesToDTO(items []fixture.Fixture) []fixtureDTO {
	out := make([]fixtureDTO, 0, len(items))
	for _, item := range items {
		out = append(out, fixtureToDTO(item))
	}
	return out
}

func reportToDTO(v result.Report) reportDTO {
	return reportDTO{
		ID:         v.ID,
		LeagueID:   v.LeagueID,
		FixtureID:  v.FixtureID,
		ReportedBy: v.ReportedBy,
		HomeScore:  v.HomeScore,
		AwayScore:  v.AwayScore,
		Status:     v.Status,
		Note:       v.Note,
		ReviewNote: v.ReviewNote,
		CreatedAt:  formatTime(v.CreatedAt),
		ReviewedAt: formatOptionalTime(v.ReviewedAt),
	}
}

func leagueStandingToDTO(ctx context.Context, item leaguestanding.Standing) leagueStandingDTO {
	_, span := startSpan(ctx, "httpapi.leagueStandingToDTO")
	defer span.End()

	form := make([]string, len(item.Form))
	copy(form, item.Form)

	return leagueStandingDTO{
		LeagueID:       item.LeagueID,
		PlayerID:       item.PlayerID,
		PlayerName:     strings.TrimSpace(item.PlayerName),
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
		UpdatedAt:      formatTime(item.UpdatedAt),
	}
}

func formatTime(v time.Time) string {
	if v.IsZero() {
		return ""
	}
	return v.UTC().Format(time.RFC3339)
}

func formatOptionalTime(v *time.Time) string {
	if v == nil || v.IsZero() {
		return ""
	}
	return v.UTC().Format(time.RFC3339)
}

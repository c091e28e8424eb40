package httpapi

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/gaming-league/internal/infrastructure/repository/memory"
	idgen "github.com/riskibarqy/gaming-league/internal/platform/id"
	"github.com/riskibarqy/gaming-league/internal/platform/logging"
	"github.com/riskibarqy/gaming-league/internal/usecase"
)

const testAdminToken = "admin-secret"

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	leagueRepo := memory.NewLeagueRepository(memory.SeedLeagues())
	playerRepo := memory.NewPlayerRepository(memory.SeedPlayers())
	fixtureRepo := memory.NewFixtureRepository(nil)
	reportRepo := memory.NewResultRepository()
	standingRepo := memory.NewLeagueStandingRepository()
	logger := logging.NewNop()

	standingService := usecase.NewLeagueStandingService(leagueRepo, playerRepo, fixtureRepo, standingRepo, logger, 2)
	leagueService := usecase.NewLeagueService(leagueRepo, playerRepo, fixtureRepo, standingService, idgen.NewPrefixedGenerator("lg"))
	playerService := usecase.NewPlayerService(leagueRepo, playerRepo, fixtureRepo, standingService, idgen.NewPrefixedGenerator("pl"), "US")
	fixtureService := usecase.NewFixtureService(leagueRepo, playerRepo, fixtureRepo, reportRepo, standingService, idgen.NewPrefixedGenerator("fx"))
	resultService := usecase.NewResultService(leagueRepo, fixtureRepo, reportRepo, standingService, idgen.NewPrefixedGenerator("rp"))
	exportService := usecase.NewExportService(standingService, fixtureService, playerService)

	handler := NewHandler(leagueService, playerService, fixtureService, resultService, standingService, exportService, logger)
	return NewRouter(handler, logger, RouterOptions{AdminToken: testAdminToken})
}

func doRequest(t *testing.T, router http.Handler, method, path, body string, admin bool) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body == "" {
		reader = bytes.NewReader(nil)
	} else {
		reader = bytes.NewReader([]byte(body))
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if admin {
		req.Header.Set(adminTokenHeader, testAdminToken)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeData[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var envelope struct {
		APIVersion string `json:"apiVersion"`
		Data       T      `json:"data"`
	}
	if err := sonic.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("unmarshal response body: %v (body=%s)", err, rec.Body.String())
	}
	if envelope.APIVersion != googleAPIVersion {
		t.Fatalf("unexpected apiVersion %q", envelope.APIVersion)
	}
	return envelope.Data
}

func TestHealthz(t *testing.T) {
	t.Parallel()

	rec := doRequest(t, newTestRouter(t), http.MethodGet, "/healthz", "", false)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if rec.Header().Get(requestIDHeader) == "" {
		t.Fatalf("expected request id header to be set")
	}
}

func TestListLeagues(t *testing.T) {
	t.Parallel()

	rec := doRequest(t, newTestRouter(t), http.MethodGet, "/v1/leagues", "", false)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	items := decodeData[[]leagueDTO](t, rec)
	if len(items) != 1 || items[0].ID != memory.LeagueIDDemo {
		t.Fatalf("unexpected leagues: %+v", items)
	}
}

func TestGetLeague_NotFound(t *testing.T) {
	t.Parallel()

	rec := doRequest(t, newTestRouter(t), http.MethodGet, "/v1/leagues/lg-missing", "", false)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rec.Code)
	}
}

func TestRegisterPlayer_DuplicateGamertagConflicts(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)
	path := "/v1/leagues/" + memory.LeagueIDDemo + "/players"

	rec := doRequest(t, router, http.MethodPost, path, `{"name":"Nadia Putri","gamertag":"NadiaP","email":"nadia@example.com"}`, false)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", rec.Code, rec.Body.String())
	}
	created := decodeData[playerDTO](t, rec)
	if created.Gamertag != "NadiaP" || created.Email != "nadia@example.com" {
		t.Fatalf("unexpected registered player: %+v", created)
	}

	rec = doRequest(t, router, http.MethodPost, path, `{"name":"Someone Else","gamertag":"MAYHEM"}`, false)
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected status 409 for folded duplicate gamertag, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestRegisterPlayer_RejectsInvalidPayload(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)
	path := "/v1/leagues/" + memory.LeagueIDDemo + "/players"

	tests := []struct {
		name string
		body string
	}{
		{name: "unknown field", body: `{"name":"A","gamertag":"B","team":"x"}`},
		{name: "missing gamertag", body: `{"name":"A"}`},
		{name: "bad email", body: `{"name":"A","gamertag":"B","email":"not-an-email"}`},
		{name: "malformed json", body: `{"name":`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, router, http.MethodPost, path, tt.body, false)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected status 400, got %d: %s", rec.Code, rec.Body.String())
			}
		})
	}
}

func TestAdminRoutes_RequireToken(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)
	body := `{"name":"Sunday Cup","game":"Rocket League","season":"2026"}`

	rec := doRequest(t, router, http.MethodPost, "/v1/admin/leagues", body, false)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401 without token, got %d", rec.Code)
	}

	rec = doRequest(t, router, http.MethodPost, "/v1/admin/leagues", body, true)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status 201 with token, got %d: %s", rec.Code, rec.Body.String())
	}
	created := decodeData[leagueDTO](t, rec)
	if created.Status != "DRAFT" || created.Rounds != 2 || !strings.HasPrefix(created.ID, "lg-") {
		t.Fatalf("unexpected created league: %+v", created)
	}
}

func TestListFixtures_InvalidMatchday(t *testing.T) {
	t.Parallel()

	rec := doRequest(t, newTestRouter(t), http.MethodGet, "/v1/leagues/"+memory.LeagueIDDemo+"/fixtures?matchday=zero", "", false)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}

func TestLeagueFlow_ScheduleReportApproveStandings(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)
	leaguePath := "/v1/leagues/" + memory.LeagueIDDemo

	rec := doRequest(t, router, http.MethodPost, "/v1/admin/leagues/"+memory.LeagueIDDemo+"/schedule", `{"startAt":"2026-03-06T19:00:00Z","every":"168h"}`, true)
	if rec.Code != http.StatusCreated {
		t.Fatalf("generate schedule: expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	fixtures := decodeData[[]fixtureDTO](t, rec)
	// Five players: padded to six, five matchdays of two games per round.
	if len(fixtures) != 20 {
		t.Fatalf("expected 20 fixtures, got %d", len(fixtures))
	}
	if fixtures[0].ScheduledAt != "2026-03-06T19:00:00Z" {
		t.Fatalf("unexpected first kickoff %q", fixtures[0].ScheduledAt)
	}

	rec = doRequest(t, router, http.MethodGet, leaguePath+"/fixtures?matchday=1", "", false)
	if rec.Code != http.StatusOK {
		t.Fatalf("list matchday 1: expected 200, got %d", rec.Code)
	}
	matchdayOne := decodeData[[]fixtureDTO](t, rec)
	if len(matchdayOne) != 2 {
		t.Fatalf("expected 2 fixtures on matchday 1, got %d", len(matchdayOne))
	}

	target := matchdayOne[0]
	reportBody := `{"reporterId":"` + target.HomePlayerID + `","homeScore":3,"awayScore":1,"note":"good game"}`
	rec = doRequest(t, router, http.MethodPost, leaguePath+"/fixtures/"+target.ID+"/reports", reportBody, false)
	if rec.Code != http.StatusCreated {
		t.Fatalf("report result: expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	report := decodeData[reportDTO](t, rec)
	if report.Status != "PENDING" {
		t.Fatalf("expected pending report, got %s", report.Status)
	}

	rec = doRequest(t, router, http.MethodGet, "/v1/admin/leagues/"+memory.LeagueIDDemo+"/reports?status=PENDING", "", true)
	if rec.Code != http.StatusOK {
		t.Fatalf("list reports: expected 200, got %d", rec.Code)
	}
	if pending := decodeData[[]reportDTO](t, rec); len(pending) != 1 || pending[0].ID != report.ID {
		t.Fatalf("unexpected pending reports: %+v", pending)
	}

	rec = doRequest(t, router, http.MethodPost, "/v1/admin/reports/"+report.ID+"/approve", "", true)
	if rec.Code != http.StatusOK {
		t.Fatalf("approve report: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = doRequest(t, router, http.MethodGet, leaguePath+"/fixtures/"+target.ID, "", false)
	played := decodeData[fixtureDTO](t, rec)
	if played.Status != "PLAYED" || played.HomeScore == nil || *played.HomeScore != 3 {
		t.Fatalf("unexpected fixture after approval: %+v", played)
	}

	rec = doRequest(t, router, http.MethodGet, leaguePath+"/standings", "", false)
	if rec.Code != http.StatusOK {
		t.Fatalf("list standings: expected 200, got %d", rec.Code)
	}
	table := decodeData[[]leagueStandingDTO](t, rec)
	if len(table) != 5 {
		t.Fatalf("expected 5 standings rows, got %d", len(table))
	}
	if table[0].PlayerID != target.HomePlayerID || table[0].Points != 3 || table[0].Position != 1 {
		t.Fatalf("expected winner on top, got %+v", table[0])
	}
	if len(table[0].Form) != 1 || table[0].Form[0] != "W" {
		t.Fatalf("unexpected winner form %v", table[0].Form)
	}
	last := table[len(table)-1]
	if last.PlayerID != target.AwayPlayerID || last.GoalDifference != -2 {
		t.Fatalf("expected loser at the bottom, got %+v", last)
	}

	rec = doRequest(t, router, http.MethodPost, "/v1/admin/leagues/"+memory.LeagueIDDemo+"/schedule", `{}`, true)
	if rec.Code != http.StatusConflict {
		t.Fatalf("regenerate without force: expected 409, got %d", rec.Code)
	}

	rec = doRequest(t, router, http.MethodGet, leaguePath+"/standings.csv", "", false)
	if rec.Code != http.StatusOK {
		t.Fatalf("export standings: expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/csv") {
		t.Fatalf("unexpected content type %q", ct)
	}
	lines := strings.Split(strings.TrimSpace(rec.Body.String()), "\n")
	if len(lines) != 6 || !strings.HasPrefix(lines[0], "position,player_id,player") {
		t.Fatalf("unexpected standings csv:\n%s", rec.Body.String())
	}

	rec = doRequest(t, router, http.MethodGet, leaguePath+"/fixtures.csv", "", false)
	if rec.Code != http.StatusOK {
		t.Fatalf("export fixtures: expected 200, got %d", rec.Code)
	}
	if lines := strings.Split(strings.TrimSpace(rec.Body.String()), "\n"); len(lines) != 21 {
		t.Fatalf("expected header plus 20 fixture rows, got %d lines", len(lines))
	}
}

func TestReportResult_RejectsNonParticipant(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)
	rec := doRequest(t, router, http.MethodPost, "/v1/admin/leagues/"+memory.LeagueIDDemo+"/schedule", "", true)
	if rec.Code != http.StatusCreated {
		t.Fatalf("generate schedule: expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	fixtures := decodeData[[]fixtureDTO](t, rec)
	target := fixtures[0]

	outsider := ""
	for _, id := range []string{"pl-demo-01", "pl-demo-02", "pl-demo-03", "pl-demo-04", "pl-demo-05"} {
		if id != target.HomePlayerID && id != target.AwayPlayerID {
			outsider = id
			break
		}
	}

	body := `{"reporterId":"` + outsider + `","homeScore":1,"awayScore":0}`
	rec = doRequest(t, router, http.MethodPost, "/v1/leagues/"+memory.LeagueIDDemo+"/fixtures/"+target.ID+"/reports", body, false)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400 for outsider report, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestRecoverPanic(t *testing.T) {
	t.Parallel()

	handler := recoverPanic(logging.NewNop(), http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/leagues", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", rec.Code)
	}
}

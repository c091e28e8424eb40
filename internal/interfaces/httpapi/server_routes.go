package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, swaggerEnabled bool) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	if !swaggerEnabled {
		return
	}

	mux.HandleFunc("GET /openapi.yaml", handler.OpenAPI)
	mux.HandleFunc("GET /docs", handler.SwaggerUI)
	mux.HandleFunc("GET /docs/", handler.SwaggerUI)
}

func registerPublicLeagueRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/leagues", handler.ListLeagues)
	mux.HandleFunc("GET /v1/leagues/{leagueID}", handler.GetLeague)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/overview", handler.GetLeagueOverview)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/players", handler.ListPlayersByLeague)
	mux.HandleFunc("POST /v1/leagues/{leagueID}/players", handler.RegisterPlayer)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/players/{playerID}", handler.GetPlayerByLeague)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/fixtures", handler.ListFixturesByLeague)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/fixtures/{fixtureID}", handler.GetFixtureByLeague)
	mux.HandleFunc("POST /v1/leagues/{leagueID}/fixtures/{fixtureID}/reports", handler.ReportFixtureResult)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/standings", handler.ListLeagueStandings)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/standings.csv", handler.ExportStandingsCSV)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/fixtures.csv", handler.ExportFixturesCSV)
}

func registerAdminRoutes(mux *http.ServeMux, handler *Handler, adminToken string) {
	admin := func(pattern string, fn http.HandlerFunc) {
		mux.Handle(pattern, RequireAdminToken(adminToken, fn))
	}

	admin("POST /v1/admin/leagues", handler.CreateLeague)
	admin("PUT /v1/admin/leagues/{leagueID}", handler.UpdateLeague)

	admin("PUT /v1/admin/leagues/{leagueID}/players/{playerID}", handler.UpdatePlayer)
	admin("POST /v1/admin/leagues/{leagueID}/players/{playerID}/withdraw", handler.WithdrawPlayer)
	admin("DELETE /v1/admin/leagues/{leagueID}/players/{playerID}", handler.DeletePlayer)

	admin("POST /v1/admin/leagues/{leagueID}/schedule", handler.GenerateSchedule)
	admin("PUT /v1/admin/leagues/{leagueID}/fixtures/{fixtureID}/schedule", handler.RescheduleFixture)
	admin("POST /v1/admin/leagues/{leagueID}/fixtures/{fixtureID}/cancel", handler.CancelFixture)
	admin("PUT /v1/admin/leagues/{leagueID}/fixtures/{fixtureID}/result", handler.RecordFixtureResult)

	admin("GET /v1/admin/leagues/{leagueID}/reports", handler.ListReportsByLeague)
	admin("POST /v1/admin/reports/{reportID}/approve", handler.ApproveReport)
	admin("POST /v1/admin/reports/{reportID}/reject", handler.RejectReport)

	admin("POST /v1/admin/leagues/{leagueID}/standings/recompute", handler.RecomputeLeagueStandings)
	admin("POST /v1/admin/standings/rebuild", handler.RebuildAllStandings)
}

package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	mux.HandleFunc("GET /openapi.yaml", handler.OpenAPI)
}

func registerAuthRoutes(mux *http.ServeMux, handler *Handler, loginRatePerMinute int, seedEnabled bool) {
	mux.Handle("POST /auth/login", RateLimit(loginRatePerMinute, http.HandlerFunc(handler.Login)))
	if seedEnabled {
		mux.Handle("POST /auth/seed", RateLimit(loginRatePerMinute, http.HandlerFunc(handler.SeedAdmin)))
	}
}

func registerPublicRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /matches", handler.ListMatches)
	mux.HandleFunc("GET /matches/{matchID}", handler.GetMatchDetail)
	mux.HandleFunc("GET /matches/{matchID}/live", handler.SubscribeMatch)

	mux.HandleFunc("GET /players", handler.ListPlayers)
	mux.HandleFunc("GET /players/{playerID}", handler.GetPlayerDetail)

	mux.HandleFunc("GET /teams", handler.ListTeams)
	mux.HandleFunc("GET /teams/{teamID}", handler.GetTeamDetail)

	mux.HandleFunc("GET /series", handler.ListSeries)

	mux.HandleFunc("GET /stats/batting", handler.BattingLeaderboard)
	mux.HandleFunc("GET /stats/bowling", handler.BowlingLeaderboard)
	mux.HandleFunc("GET /stats/teams", handler.TeamStandings)
}

func registerAuthorizedRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	registerAuthorizedMatchRoutes(mux, handler, verifier)
	registerAuthorizedRosterRoutes(mux, handler, verifier)
}

func registerAuthorizedMatchRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("POST /matches", RequireAuth(verifier, http.HandlerFunc(handler.CreateMatch)))
	mux.Handle("PATCH /matches/{matchID}", RequireAuth(verifier, http.HandlerFunc(handler.UpdateMatch)))
	mux.Handle("DELETE /matches/{matchID}", RequireAuth(verifier, http.HandlerFunc(handler.DeleteMatch)))
	mux.Handle("POST /matches/{matchID}/toss", RequireAuth(verifier, http.HandlerFunc(handler.SetToss)))
	mux.Handle("POST /matches/{matchID}/innings", RequireAuth(verifier, http.HandlerFunc(handler.StartInnings)))
	mux.Handle("POST /matches/{matchID}/ball", RequireAuth(verifier, http.HandlerFunc(handler.RecordBall)))
	mux.Handle("POST /matches/{matchID}/updatePair", RequireAuth(verifier, http.HandlerFunc(handler.UpdatePair)))
	mux.Handle("POST /matches/{matchID}/complete", RequireAuth(verifier, http.HandlerFunc(handler.CompleteMatch)))
	mux.Handle("POST /matches/{matchID}/super-over", RequireAuth(verifier, http.HandlerFunc(handler.StartSuperOver)))
	mux.Handle("POST /matches/{matchID}/skip-innings", RequireAuth(verifier, http.HandlerFunc(handler.SkipInnings)))
}

func registerAuthorizedRosterRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("POST /players", RequireAuth(verifier, http.HandlerFunc(handler.CreatePlayer)))
	mux.Handle("PATCH /players/{playerID}", RequireAuth(verifier, http.HandlerFunc(handler.UpdatePlayer)))
	mux.Handle("DELETE /players/{playerID}", RequireAuth(verifier, http.HandlerFunc(handler.DeletePlayer)))
	mux.Handle("POST /teams", RequireAuth(verifier, http.HandlerFunc(handler.CreateTeam)))
	mux.Handle("POST /series", RequireAuth(verifier, http.HandlerFunc(handler.CreateSeries)))
}

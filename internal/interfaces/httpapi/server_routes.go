package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerLeagueRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/league", handler.GetLeague)
	mux.HandleFunc("GET /v1/league/standings", handler.ListStandings)
	mux.HandleFunc("GET /v1/teams", handler.ListTeams)
	mux.HandleFunc("POST /v1/teams", handler.CreateTeam)
	mux.HandleFunc("GET /v1/teams/{team}", handler.GetTeam)
	mux.HandleFunc("DELETE /v1/teams/{team}", handler.RemoveTeam)
	mux.HandleFunc("GET /v1/teams/{team}/stats", handler.GetTeamStats)
}

func registerRosterRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("POST /v1/teams/{team}/players", handler.SignPlayer)
	mux.HandleFunc("POST /v1/teams/{team}/players/{playerID}/sell", handler.SellPlayer)
	mux.HandleFunc("POST /v1/teams/{team}/players/{playerID}/actions", handler.ApplyPlayerAction)
	mux.HandleFunc("POST /v1/teams/{team}/swap", handler.SwapPlayers)
	mux.HandleFunc("PUT /v1/teams/{team}/formation", handler.SetFormation)
	mux.HandleFunc("PUT /v1/teams/{team}/lineup", handler.AssignLineup)
	mux.HandleFunc("POST /v1/teams/{team}/training", handler.TrainTeam)
	mux.HandleFunc("POST /v1/teams/{team}/rest", handler.RestTeam)
	mux.HandleFunc("POST /v1/teams/{team}/bench-injured", handler.BenchInjured)
}

func registerMatchRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("POST /v1/matches", handler.PlayMatch)
	mux.HandleFunc("POST /v1/season/advance", handler.AdvanceSeason)
}

func registerSnapshotRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("POST /v1/teams/{team}/snapshot", handler.SaveSnapshot)
	mux.HandleFunc("GET /v1/snapshots", handler.ListSnapshots)
	mux.HandleFunc("POST /v1/snapshots", handler.SaveAllSnapshots)
	mux.HandleFunc("POST /v1/snapshots/{team}/restore", handler.RestoreSnapshot)
}

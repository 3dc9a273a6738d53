package httpapi

import (
	"net/http"

	"github.com/riskibarqy/football-manager/internal/usecase"
)

func (h *Handler) GetLeague(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLeague")
	defer span.End()

	overview, err := h.leagueService.Overview(ctx)
	if err != nil {
		h.fail(ctx, w, "get league failed", err)
		return
	}

	writeSuccess(w, http.StatusOK, overview)
}

func (h *Handler) ListStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListStandings")
	defer span.End()

	standings, err := h.leagueService.Standings(ctx)
	if err != nil {
		h.fail(ctx, w, "list standings failed", err)
		return
	}

	writeSuccess(w, http.StatusOK, standings)
}

func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeams")
	defer span.End()

	teams, err := h.leagueService.ListTeams(ctx)
	if err != nil {
		h.fail(ctx, w, "list teams failed", err)
		return
	}

	writeSuccess(w, http.StatusOK, teams)
}

func (h *Handler) CreateTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateTeam")
	defer span.End()

	var req createTeamRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(w, err)
		return
	}

	detail, err := h.leagueService.CreateTeam(ctx, usecase.CreateTeamInput{
		Name:       req.Name,
		Formation:  req.Formation,
		MaxPlayers: req.MaxPlayers,
		Budget:     req.Budget,
	})
	if err != nil {
		h.fail(ctx, w, "create team failed", err, "team", req.Name)
		return
	}

	writeSuccess(w, http.StatusCreated, detail)
}

func (h *Handler) GetTeam(w http.ResponseWriter, r *http.Request) {
	name := teamParam(r)
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeam", teamSpanAttr(name))
	defer span.End()

	detail, err := h.leagueService.GetTeam(ctx, name)
	if err != nil {
		h.fail(ctx, w, "get team failed", err, "team", name)
		return
	}

	writeSuccess(w, http.StatusOK, detail)
}

func (h *Handler) RemoveTeam(w http.ResponseWriter, r *http.Request) {
	name := teamParam(r)
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RemoveTeam", teamSpanAttr(name))
	defer span.End()

	if err := h.leagueService.RemoveTeam(ctx, name); err != nil {
		h.fail(ctx, w, "remove team failed", err, "team", name)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) GetTeamStats(w http.ResponseWriter, r *http.Request) {
	name := teamParam(r)
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeamStats", teamSpanAttr(name))
	defer span.End()

	stats, err := h.leagueService.TeamStats(ctx, name)
	if err != nil {
		h.fail(ctx, w, "get team stats failed", err, "team", name)
		return
	}

	writeSuccess(w, http.StatusOK, stats)
}

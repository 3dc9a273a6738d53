package httpapi

import (
	"net/http"
	"strings"

	"github.com/riskibarqy/football-manager/internal/usecase"
)

func (h *Handler) SignPlayer(w http.ResponseWriter, r *http.Request) {
	name := teamParam(r)
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SignPlayer", teamSpanAttr(name))
	defer span.End()

	var req signPlayerRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(w, err)
		return
	}

	signed, err := h.rosterService.SignPlayer(ctx, name, usecase.SignPlayerInput{
		Player: req.Player.toInput(),
		Price:  req.Price,
	})
	if err != nil {
		h.fail(ctx, w, "sign player failed", err, "team", name, "player", req.Player.Name)
		return
	}

	writeSuccess(w, http.StatusCreated, signed)
}

func (h *Handler) SellPlayer(w http.ResponseWriter, r *http.Request) {
	name := teamParam(r)
	playerID := strings.TrimSpace(r.PathValue("playerID"))
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SellPlayer", teamSpanAttr(name))
	defer span.End()

	var req sellPlayerRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(w, err)
		return
	}

	sale, err := h.rosterService.SellPlayer(ctx, name, playerID, req.Price)
	if err != nil {
		h.fail(ctx, w, "sell player failed", err, "team", name, "player_id", playerID)
		return
	}

	writeSuccess(w, http.StatusOK, sale)
}

func (h *Handler) SwapPlayers(w http.ResponseWriter, r *http.Request) {
	name := teamParam(r)
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SwapPlayers", teamSpanAttr(name))
	defer span.End()

	var req swapPlayersRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(w, err)
		return
	}

	incoming, err := h.rosterService.SwapPlayers(ctx, name, req.OutPlayerID, req.In.toInput())
	if err != nil {
		h.fail(ctx, w, "swap players failed", err, "team", name, "out_player_id", req.OutPlayerID)
		return
	}

	writeSuccess(w, http.StatusOK, incoming)
}

func (h *Handler) SetFormation(w http.ResponseWriter, r *http.Request) {
	name := teamParam(r)
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SetFormation", teamSpanAttr(name))
	defer span.End()

	var req formationRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(w, err)
		return
	}

	if err := h.rosterService.SetFormation(ctx, name, req.Formation); err != nil {
		h.fail(ctx, w, "set formation failed", err, "team", name)
		return
	}

	writeSuccess(w, http.StatusOK, map[string]string{"formation": req.Formation})
}

func (h *Handler) AssignLineup(w http.ResponseWriter, r *http.Request) {
	name := teamParam(r)
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AssignLineup", teamSpanAttr(name))
	defer span.End()

	var req lineupRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(w, err)
		return
	}

	detail, err := h.rosterService.AssignLineup(ctx, name, usecase.LineupInput{
		StartingEleven: req.StartingEleven,
		Bench:          req.Bench,
	})
	if err != nil {
		h.fail(ctx, w, "assign lineup failed", err, "team", name)
		return
	}

	writeSuccess(w, http.StatusOK, detail)
}

func (h *Handler) TrainTeam(w http.ResponseWriter, r *http.Request) {
	name := teamParam(r)
	ctx, span := startSpan(r.Context(), "httpapi.Handler.TrainTeam", teamSpanAttr(name))
	defer span.End()

	trained, err := h.rosterService.TrainTeam(ctx, name)
	if err != nil {
		h.fail(ctx, w, "train team failed", err, "team", name)
		return
	}

	writeSuccess(w, http.StatusOK, trainingResponse{Trained: trained})
}

func (h *Handler) RestTeam(w http.ResponseWriter, r *http.Request) {
	name := teamParam(r)
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RestTeam", teamSpanAttr(name))
	defer span.End()

	if err := h.rosterService.RestTeam(ctx, name); err != nil {
		h.fail(ctx, w, "rest team failed", err, "team", name)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) BenchInjured(w http.ResponseWriter, r *http.Request) {
	name := teamParam(r)
	ctx, span := startSpan(r.Context(), "httpapi.Handler.BenchInjured", teamSpanAttr(name))
	defer span.End()

	benched, err := h.rosterService.BenchInjured(ctx, name)
	if err != nil {
		h.fail(ctx, w, "bench injured failed", err, "team", name)
		return
	}

	writeSuccess(w, http.StatusOK, benched)
}

func (h *Handler) ApplyPlayerAction(w http.ResponseWriter, r *http.Request) {
	name := teamParam(r)
	playerID := strings.TrimSpace(r.PathValue("playerID"))
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ApplyPlayerAction", teamSpanAttr(name))
	defer span.End()

	var req playerActionRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(w, err)
		return
	}

	updated, err := h.rosterService.ApplyPlayerAction(ctx, name, playerID, req.toInput())
	if err != nil {
		h.fail(ctx, w, "player action failed", err, "team", name, "player_id", playerID, "action", req.Action)
		return
	}

	writeSuccess(w, http.StatusOK, updated)
}

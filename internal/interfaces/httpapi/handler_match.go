package httpapi

import (
	"net/http"

	"github.com/riskibarqy/football-manager/internal/usecase"
)

func (h *Handler) PlayMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.PlayMatch")
	defer span.End()

	var req matchRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(w, err)
		return
	}

	result, err := h.matchService.Play(ctx, usecase.MatchInput{
		HomeTeam: req.HomeTeam,
		AwayTeam: req.AwayTeam,
	})
	if err != nil {
		h.fail(ctx, w, "play match failed", err, "home", req.HomeTeam, "away", req.AwayTeam)
		return
	}

	writeSuccess(w, http.StatusOK, result)
}

func (h *Handler) AdvanceSeason(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AdvanceSeason")
	defer span.End()

	result, err := h.seasonService.Advance(ctx)
	if err != nil {
		h.fail(ctx, w, "advance season failed", err)
		return
	}

	writeSuccess(w, http.StatusOK, result)
}

package httpapi

import "net/http"

func (h *Handler) SaveSnapshot(w http.ResponseWriter, r *http.Request) {
	name := teamParam(r)
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SaveSnapshot", teamSpanAttr(name))
	defer span.End()

	snap, err := h.snapshotService.Save(ctx, name)
	if err != nil {
		h.fail(ctx, w, "save snapshot failed", err, "team", name)
		return
	}

	writeSuccess(w, http.StatusOK, snap)
}

func (h *Handler) RestoreSnapshot(w http.ResponseWriter, r *http.Request) {
	name := teamParam(r)
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RestoreSnapshot", teamSpanAttr(name))
	defer span.End()

	detail, err := h.snapshotService.Restore(ctx, name)
	if err != nil {
		h.fail(ctx, w, "restore snapshot failed", err, "team", name)
		return
	}

	writeSuccess(w, http.StatusOK, detail)
}

func (h *Handler) SaveAllSnapshots(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SaveAllSnapshots")
	defer span.End()

	result, err := h.snapshotService.SaveAll(ctx)
	if err != nil {
		h.fail(ctx, w, "save all snapshots failed", err)
		return
	}

	status := http.StatusOK
	if len(result.Failed) > 0 {
		status = http.StatusMultiStatus
	}
	writeSuccess(w, status, result)
}

func (h *Handler) ListSnapshots(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListSnapshots")
	defer span.End()

	names, err := h.snapshotService.List(ctx)
	if err != nil {
		h.fail(ctx, w, "list snapshots failed", err)
		return
	}

	writeSuccess(w, http.StatusOK, snapshotListResponse{Teams: names})
}

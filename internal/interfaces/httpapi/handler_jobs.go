package httpapi

import (
	"net/http"
)

// RunSyncJob runs one full provider sync inline and reports the per-stage
// counts. The route is guarded by RequireInternalJobToken, so the caller is
// always the scheduler, never an end user.
func (h *Handler) RunSyncJob(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunSyncJob")
	defer span.End()

	result, err := h.syncService.SyncAll(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "sync job failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, result)
}

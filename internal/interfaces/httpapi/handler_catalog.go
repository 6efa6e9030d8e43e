package httpapi

import (
	"net/http"
	"time"
)

const (
	countryListCacheTTL = time.Hour
	playerListCacheTTL  = 5 * time.Minute
)

func (h *Handler) ListCountries(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListCountries")
	defer span.End()

	countries, err := h.countryService.List(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list countries failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]countryDTO, 0, len(countries))
	for _, c := range countries {
		items = append(items, countryToDTO(c))
	}

	setCacheControl(w, countryListCacheTTL)
	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayers")
	defer span.End()

	q := r.URL.Query()
	limit, err := parseIntParam(q.Get("limit"), "limit")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	search := q.Get("search")
	if err := h.validateRequest(ctx, listPlayersRequest{Search: search, Limit: limit}); err != nil {
		writeError(ctx, w, err)
		return
	}

	players, err := h.playerService.List(ctx, search, limit)
	if err != nil {
		h.logger.WarnContext(ctx, "list players failed", "search", search, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]playerDTO, 0, len(players))
	for _, p := range players {
		items = append(items, playerToDTO(p))
	}

	setCacheControl(w, playerListCacheTTL)
	writeSuccess(ctx, w, http.StatusOK, items)
}

package httpapi

import (
	"net/http"
	"time"
)

const (
	leagueListCacheTTL = 5 * time.Minute
	standingsCacheTTL  = 5 * time.Minute
)

func (h *Handler) ListLeagues(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListLeagues")
	defer span.End()

	leagues, err := h.leagueService.List(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list leagues failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]leagueDTO, 0, len(leagues))
	for _, l := range leagues {
		items = append(items, leagueToDTO(l))
	}

	setCacheControl(w, leagueListCacheTTL)
	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetLeague(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLeague")
	defer span.End()

	leagueID, err := parseLeagueIDPath(r.PathValue("leagueID"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.leagueService.GetByID(ctx, leagueID)
	if err != nil {
		h.logger.WarnContext(ctx, "get league failed", "league_id", leagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	setCacheControl(w, leagueListCacheTTL)
	writeSuccess(ctx, w, http.StatusOK, leagueToDTO(item))
}

func (h *Handler) ListLeagueStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListLeagueStandings")
	defer span.End()

	leagueID, err := parseLeagueIDPath(r.PathValue("leagueID"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	seasons, err := h.standingService.ListByLeague(ctx, leagueID)
	if err != nil {
		h.logger.WarnContext(ctx, "list standings failed", "league_id", leagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	setCacheControl(w, standingsCacheTTL)
	writeSuccess(ctx, w, http.StatusOK, seasons)
}

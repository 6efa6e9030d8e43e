package httpapi

import (
	"net/http"
	"time"

	"github.com/ilhamrdh/scorebase/internal/usecase"
)

const matchListCacheTTL = 30 * time.Second

func (h *Handler) ListMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMatches")
	defer span.End()

	input, err := h.parseListMatchesInput(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	out, err := h.matchService.ListMatches(ctx, input)
	if err != nil {
		h.logger.WarnContext(ctx, "list matches failed", "view", input.View, "error", err)
		writeError(ctx, w, err)
		return
	}

	page, limit := input.Page, input.Limit
	if page <= 0 {
		page = usecase.DefaultPage
	}
	if limit <= 0 || limit > usecase.MaxLimit {
		limit = usecase.DefaultLimit
	}

	setCacheControl(w, matchListCacheTTL)
	writeSuccess(ctx, w, http.StatusOK, listMatchesDTO{
		Matches: out.Matches,
		Total:   out.Total,
		Page:    page,
		Limit:   limit,
		Links:   out.Links,
	})
}

func (h *Handler) parseListMatchesInput(r *http.Request) (usecase.ListMatchesInput, error) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.parseListMatchesInput")
	defer span.End()

	q := r.URL.Query()

	dateFrom, err := parseTimeParam(q.Get("date_from"), "date_from")
	if err != nil {
		return usecase.ListMatchesInput{}, err
	}
	dateTo, err := parseTimeParam(q.Get("date_to"), "date_to")
	if err != nil {
		return usecase.ListMatchesInput{}, err
	}
	leagueIDs, err := parseInt64CSV(q.Get("league_ids"), "league_ids")
	if err != nil {
		return usecase.ListMatchesInput{}, err
	}
	teamIDs, err := parseInt64CSV(q.Get("team_ids"), "team_ids")
	if err != nil {
		return usecase.ListMatchesInput{}, err
	}
	page, err := parseIntParam(q.Get("page"), "page")
	if err != nil {
		return usecase.ListMatchesInput{}, err
	}
	limit, err := parseIntParam(q.Get("limit"), "limit")
	if err != nil {
		return usecase.ListMatchesInput{}, err
	}
	onlyFeatured, err := parseBoolParam(q.Get("only_featured"), "only_featured")
	if err != nil {
		return usecase.ListMatchesInput{}, err
	}

	if err := h.validateRequest(ctx, listMatchesRequest{
		View:  q.Get("view"),
		Page:  page,
		Limit: limit,
	}); err != nil {
		return usecase.ListMatchesInput{}, err
	}

	return usecase.ListMatchesInput{
		View:         q.Get("view"),
		DateFrom:     dateFrom,
		DateTo:       dateTo,
		LeagueIDs:    leagueIDs,
		TeamIDs:      teamIDs,
		States:       parseStringCSV(q.Get("states")),
		Search:       q.Get("search"),
		Sort:         q.Get("sort"),
		Page:         page,
		Limit:        limit,
		OnlyFeatured: onlyFeatured,
		RawQuery:     q,
	}, nil
}

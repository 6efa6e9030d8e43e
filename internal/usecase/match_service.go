package usecase

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/ilhamrdh/scorebase/internal/domain/league"
	"github.com/ilhamrdh/scorebase/internal/domain/match"
	"github.com/ilhamrdh/scorebase/internal/platform/logging"
)

const (
	matchesPath       = "/v1/matches"
	recentViewWindow  = 7 * 24 * time.Hour
	unknownLeagueName = "Unknown League"
)

// ListMatchesInput is the parsed form of a match-list request.
type ListMatchesInput struct {
	View         string
	DateFrom     *time.Time
	DateTo       *time.Time
	LeagueIDs    []int64
	TeamIDs      []int64
	States       []string
	Search       string
	Sort         string
	Page         int
	Limit        int
	OnlyFeatured bool
	RawQuery     url.Values
}

type ListMatchesOutput struct {
	Matches []match.Summary
	Total   int64
	Links   PageLinks
}

// MatchService ranks and pages the match collection using cached league
// priorities.
type MatchService struct {
	matchRepo match.Repository
	cache     *LeaguePriorityCache
	logger    *logging.Logger
	now       func() time.Time
}

func NewMatchService(matchRepo match.Repository, cache *LeaguePriorityCache, logger *logging.Logger) *MatchService {
	if logger == nil {
		logger = logging.Default()
	}
	return &MatchService{
		matchRepo: matchRepo,
		cache:     cache,
		logger:    logger,
		now:       time.Now,
	}
}

func (s *MatchService) ListMatches(ctx context.Context, input ListMatchesInput) (ListMatchesOutput, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.ListMatches")
	defer span.End()

	// A cache refresh failure degrades ranking quality, it does not fail
	// the request.
	if err := s.cache.RefreshIfStale(ctx); err != nil {
		s.logger.WarnContext(ctx, "league priority cache unavailable, ranking with defaults", "error", err.Error())
	}

	page, limit := normalizePage(input.Page, input.Limit)

	filter, err := s.buildFilter(input)
	if err != nil {
		return ListMatchesOutput{}, err
	}

	if input.OnlyFeatured {
		featured := s.cache.FeaturedLeagueIDs()
		filter.LeagueIDs = intersectIDs(filter.LeagueIDs, featured)
		if len(filter.LeagueIDs) == 0 {
			// Nothing is featured: answer without touching the store.
			return ListMatchesOutput{
				Matches: []match.Summary{},
				Total:   0,
				Links:   BuildPageLinks(matchesPath, input.RawQuery, page, limit, 0),
			}, nil
		}
	}

	query := match.Query{
		Filter:         filter,
		Sort:           normalizeSort(input.Sort),
		Skip:           int64(page-1) * int64(limit),
		Limit:          int64(limit),
		PriorityScores: s.cache.Scores(),
		DefaultScore:   s.cache.DefaultScore(),
	}

	docs, total, err := s.matchRepo.List(ctx, query)
	if err != nil {
		return ListMatchesOutput{}, fmt.Errorf("list matches: %w", err)
	}

	summaries := make([]match.Summary, 0, len(docs))
	for _, doc := range docs {
		summaries = append(summaries, s.buildSummary(doc))
	}

	// League names only resolve after the cache join, so the search term is
	// applied a second time here. The page can come back shorter than limit;
	// total still reflects the store-level count.
	if term := strings.TrimSpace(input.Search); term != "" {
		summaries = filterBySearch(summaries, term)
	}

	return ListMatchesOutput{
		Matches: summaries,
		Total:   total,
		Links:   BuildPageLinks(matchesPath, input.RawQuery, page, limit, total),
	}, nil
}

func (s *MatchService) buildFilter(input ListMatchesInput) (match.Filter, error) {
	filter := match.Filter{
		LeagueIDs: input.LeagueIDs,
		TeamIDs:   input.TeamIDs,
		Search:    strings.TrimSpace(input.Search),
	}
	for _, state := range input.States {
		if normalized := match.NormalizeState(state); normalized != "" {
			filter.States = append(filter.States, normalized)
		}
	}
	if filter.Search != "" {
		filter.SearchLeagueIDs = s.cache.LeagueIDsMatchingName(filter.Search)
	}

	now := s.now()
	switch strings.ToLower(strings.TrimSpace(input.View)) {
	case "":
		filter.From = input.DateFrom
		filter.To = input.DateTo
	case "today":
		start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		end := start.Add(24 * time.Hour)
		filter.From = &start
		filter.To = &end
	case "live":
		filter.States = match.LiveStates
	case "upcoming":
		filter.From = &now
		filter.States = match.UpcomingStates
	case "recent":
		start := now.Add(-recentViewWindow)
		filter.From = &start
		filter.To = &now
		filter.States = match.FinishedStates
	default:
		return match.Filter{}, fmt.Errorf("%w: unknown view %q", ErrInvalidInput, input.View)
	}
	return filter, nil
}

func (s *MatchService) buildSummary(doc match.Match) match.Summary {
	summary := match.Summary{
		ID:         doc.ID,
		StartingAt: doc.StartingAt,
		State:      match.NormalizeState(doc.State),
		HomeTeam:   sideOrTBD(doc.HomeSide()),
		AwayTeam:   sideOrTBD(doc.AwaySide()),
		Score:      doc.DisplayScore(),
		League:     s.leagueInfo(doc.LeagueID),
		Venue:      doc.VenueName,
		HasLineups: doc.HasLineups,
		HasEvents:  doc.HasEvents,
	}
	return summary
}

func (s *MatchService) leagueInfo(leagueID int64) match.LeagueInfo {
	cached, ok := s.cache.League(leagueID)
	if !ok {
		return match.LeagueInfo{
			ID:       leagueID,
			Name:     unknownLeagueName,
			Priority: s.cache.DefaultScore(),
		}
	}
	info := match.LeagueInfo{
		ID:       cached.ID,
		Name:     cached.Name,
		LogoPath: cached.LogoPath,
		Priority: s.cache.Priority(leagueID),
		Featured: cached.Featured,
	}
	if cached.Tier != league.TierNone {
		info.Tier = string(cached.Tier)
	}
	return info
}

func sideOrTBD(p match.Participant, ok bool) match.TeamSide {
	if !ok {
		return match.TeamSide{ID: 0, Name: "TBD"}
	}
	return match.TeamSide{ID: p.ID, Name: p.Name, LogoPath: p.LogoPath}
}

func filterBySearch(summaries []match.Summary, term string) []match.Summary {
	term = strings.ToLower(term)
	kept := summaries[:0]
	for _, s := range summaries {
		if containsFold(s.HomeTeam.Name, term) ||
			containsFold(s.AwayTeam.Name, term) ||
			containsFold(s.League.Name, term) {
			kept = append(kept, s)
		}
	}
	return kept
}

func containsFold(value, lowerTerm string) bool {
	return strings.Contains(strings.ToLower(value), lowerTerm)
}

func normalizeSort(sort string) string {
	switch strings.ToLower(strings.TrimSpace(sort)) {
	case "", match.SortPriority:
		return match.SortPriority
	case match.SortRelevance:
		return match.SortRelevance
	case match.SortTime:
		return match.SortTime
	default:
		return match.SortKickoffDesc
	}
}

func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = DefaultPage
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return page, limit
}

func intersectIDs(requested, featured []int64) []int64 {
	if len(requested) == 0 {
		out := make([]int64, len(featured))
		copy(out, featured)
		return out
	}
	allowed := make(map[int64]struct{}, len(featured))
	for _, id := range featured {
		allowed[id] = struct{}{}
	}
	out := make([]int64, 0, len(requested))
	for _, id := range requested {
		if _, ok := allowed[id]; ok {
			out = append(out, id)
		}
	}
	return out
}

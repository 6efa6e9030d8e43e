package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/ilhamrdh/scorebase/internal/domain/league"
	"github.com/ilhamrdh/scorebase/internal/domain/standing"
	"github.com/ilhamrdh/scorebase/internal/platform/cache"
)

// StandingService turns raw per-season standings documents into normalized
// tables. Results cache per league; the raw payload is re-normalized on
// every cache miss rather than persisted in canonical form.
type StandingService struct {
	leagueRepo   league.Repository
	standingRepo standing.Repository
	responses    *cache.Store
}

func NewStandingService(leagueRepo league.Repository, standingRepo standing.Repository, responses *cache.Store) *StandingService {
	return &StandingService{
		leagueRepo:   leagueRepo,
		standingRepo: standingRepo,
		responses:    responses,
	}
}

// ListByLeague returns the league's standings tables, newest season first.
func (s *StandingService) ListByLeague(ctx context.Context, leagueID int64) ([]standing.Data, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingService.ListByLeague")
	defer span.End()

	if leagueID <= 0 {
		return nil, fmt.Errorf("%w: league id is required", ErrInvalidInput)
	}

	_, exists, err := s.leagueRepo.GetByID(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("get league: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: league=%d", ErrNotFound, leagueID)
	}

	key := fmt.Sprintf("standings:league:%d", leagueID)
	value, err := s.responses.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		return s.normalize(ctx, leagueID)
	})
	if err != nil {
		return nil, err
	}
	return value.([]standing.Data), nil
}

// InvalidateLeague drops the cached tables so the next read re-normalizes,
// called after a sync refreshes the raw documents.
func (s *StandingService) InvalidateLeague(ctx context.Context, leagueID int64) {
	s.responses.Delete(ctx, fmt.Sprintf("standings:league:%d", leagueID))
}

func (s *StandingService) normalize(ctx context.Context, leagueID int64) ([]standing.Data, error) {
	raw, err := s.standingRepo.ListRawByLeague(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("list raw standings: %w", err)
	}

	bySeason := standing.TransformSeasons(raw)

	out := make([]standing.Data, 0, len(bySeason))
	for _, data := range bySeason {
		out = append(out, data)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SeasonID > out[j].SeasonID })
	return out, nil
}

package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/ilhamrdh/scorebase/internal/domain/league"
)

// LeagueView is a league with its derived ranking score attached.
type LeagueView struct {
	league.League
	ComputedScore int
}

type LeagueService struct {
	leagueRepo league.Repository
}

func NewLeagueService(leagueRepo league.Repository) *LeagueService {
	return &LeagueService{leagueRepo: leagueRepo}
}

// List returns all leagues ordered by computed score descending, name
// ascending on ties.
func (s *LeagueService) List(ctx context.Context) ([]LeagueView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.List")
	defer span.End()

	leagues, err := s.leagueRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list leagues: %w", err)
	}

	out := make([]LeagueView, 0, len(leagues))
	for _, l := range leagues {
		out = append(out, LeagueView{League: l, ComputedScore: l.Score()})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].ComputedScore != out[j].ComputedScore {
			return out[i].ComputedScore > out[j].ComputedScore
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

func (s *LeagueService) GetByID(ctx context.Context, leagueID int64) (LeagueView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.GetByID")
	defer span.End()

	if leagueID <= 0 {
		return LeagueView{}, fmt.Errorf("%w: league id is required", ErrInvalidInput)
	}

	l, exists, err := s.leagueRepo.GetByID(ctx, leagueID)
	if err != nil {
		return LeagueView{}, fmt.Errorf("get league: %w", err)
	}
	if !exists {
		return LeagueView{}, fmt.Errorf("%w: league=%d", ErrNotFound, leagueID)
	}
	return LeagueView{League: l, ComputedScore: l.Score()}, nil
}

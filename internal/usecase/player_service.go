package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/ilhamrdh/scorebase/internal/domain/player"
)

const playerSearchPoolSize = 2000

type PlayerService struct {
	playerRepo player.Repository
}

func NewPlayerService(playerRepo player.Repository) *PlayerService {
	return &PlayerService{playerRepo: playerRepo}
}

// List returns players, fuzzy-ranked against the search term when one is
// given. Ranking happens in memory over a bounded candidate pool.
func (s *PlayerService) List(ctx context.Context, search string, limit int) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.List")
	defer span.End()

	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	search = strings.TrimSpace(search)
	if search == "" {
		players, err := s.playerRepo.List(ctx, limit)
		if err != nil {
			return nil, fmt.Errorf("list players: %w", err)
		}
		return players, nil
	}

	pool, err := s.playerRepo.List(ctx, playerSearchPoolSize)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}

	names := make([]string, len(pool))
	for i, p := range pool {
		names[i] = strings.ToLower(p.BestName())
	}

	ranks := fuzzy.RankFind(strings.ToLower(search), names)
	sort.Sort(ranks)

	out := make([]player.Player, 0, limit)
	for _, rank := range ranks {
		out = append(out, pool[rank.OriginalIndex])
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (s *PlayerService) GetByID(ctx context.Context, playerID int64) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.GetByID")
	defer span.End()

	if playerID <= 0 {
		return player.Player{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}

	p, exists, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return player.Player{}, fmt.Errorf("get player: %w", err)
	}
	if !exists {
		return player.Player{}, fmt.Errorf("%w: player=%d", ErrNotFound, playerID)
	}
	return p, nil
}

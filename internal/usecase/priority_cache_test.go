package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ilhamrdh/scorebase/internal/domain/league"
	"github.com/ilhamrdh/scorebase/internal/platform/logging"
)

type stubLeagueRepo struct {
	mu      sync.Mutex
	leagues []league.League
	err     error
	calls   int
}

func (r *stubLeagueRepo) ListAll(ctx context.Context) ([]league.League, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	if r.err != nil {
		return nil, r.err
	}
	out := make([]league.League, len(r.leagues))
	copy(out, r.leagues)
	return out, nil
}

func (r *stubLeagueRepo) GetByID(ctx context.Context, id int64) (league.League, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, l := range r.leagues {
		if l.ID == id {
			return l, true, nil
		}
	}
	return league.League{}, false, nil
}

func (r *stubLeagueRepo) setLeagues(leagues []league.League) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.leagues = leagues
}

func (r *stubLeagueRepo) setErr(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.err = err
}

func (r *stubLeagueRepo) callCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calls
}

func TestLeaguePriorityCache_ComputesScores(t *testing.T) {
	t.Parallel()

	repo := &stubLeagueRepo{leagues: []league.League{
		{ID: 8, Name: "Premier League", Priority: 50, Tier: league.Tier1, Featured: true},
		{ID: 564, Name: "La Liga", Priority: 40, Tier: league.Tier1},
		{ID: 9999, Name: "Regionalliga", Priority: 0, Tier: league.TierNone},
	}}
	cache := NewLeaguePriorityCache(repo, time.Minute, logging.NewNop())

	require.NoError(t, cache.RefreshIfStale(context.Background()))

	assert.Equal(t, 350, cache.Priority(8))   // 200 featured + 50 priority + 100 tier1
	assert.Equal(t, 140, cache.Priority(564)) // 40 priority + 100 tier1
	assert.Equal(t, 20, cache.Priority(9999))
	assert.Equal(t, 20, cache.Priority(12345)) // never seen
	assert.Equal(t, 20, cache.DefaultScore())
	assert.Equal(t, []int64{8}, cache.FeaturedLeagueIDs())

	cached, ok := cache.League(564)
	require.True(t, ok)
	assert.Equal(t, "La Liga", cached.Name)
}

func TestLeaguePriorityCache_ReadsNeverTriggerLoad(t *testing.T) {
	t.Parallel()

	repo := &stubLeagueRepo{leagues: []league.League{{ID: 1, Priority: 10}}}
	cache := NewLeaguePriorityCache(repo, time.Minute, logging.NewNop())

	assert.Equal(t, 20, cache.Priority(1))
	assert.Nil(t, cache.Scores())
	assert.Nil(t, cache.FeaturedLeagueIDs())
	assert.Equal(t, 0, repo.callCount())
}

func TestLeaguePriorityCache_RefreshHonorsTTL(t *testing.T) {
	t.Parallel()

	repo := &stubLeagueRepo{leagues: []league.League{{ID: 1, Priority: 10}}}
	cache := NewLeaguePriorityCache(repo, 5*time.Minute, logging.NewNop())

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	cache.now = func() time.Time { return now }

	require.NoError(t, cache.RefreshIfStale(context.Background()))

	now = now.Add(4 * time.Minute)
	require.NoError(t, cache.RefreshIfStale(context.Background()))
	assert.Equal(t, 1, repo.callCount())

	now = now.Add(time.Minute + time.Second)
	require.NoError(t, cache.RefreshIfStale(context.Background()))
	assert.Equal(t, 2, repo.callCount())
}

func TestLeaguePriorityCache_StaleSnapshotSurvivesRefreshFailure(t *testing.T) {
	t.Parallel()

	repo := &stubLeagueRepo{leagues: []league.League{{ID: 1, Priority: 10, Tier: league.Tier2}}}
	cache := NewLeaguePriorityCache(repo, time.Minute, logging.NewNop())

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	cache.now = func() time.Time { return now }

	require.NoError(t, cache.RefreshIfStale(context.Background()))
	assert.Equal(t, 90, cache.Priority(1))

	repo.setErr(errors.New("connection reset"))
	now = now.Add(2 * time.Minute)

	require.NoError(t, cache.RefreshIfStale(context.Background()))
	assert.Equal(t, 90, cache.Priority(1))
}

func TestLeaguePriorityCache_ColdLoadFailureIsDependencyError(t *testing.T) {
	t.Parallel()

	repo := &stubLeagueRepo{err: errors.New("connection reset")}
	cache := NewLeaguePriorityCache(repo, time.Minute, logging.NewNop())

	err := cache.RefreshIfStale(context.Background())
	assert.ErrorIs(t, err, ErrDependencyUnavailable)
}

// Scores must always come from a single snapshot generation: with readers
// racing refreshes that alternate between two disjoint league sets, a read
// of the score map must never mix generations.
func TestLeaguePriorityCache_SnapshotGenerationsNeverMix(t *testing.T) {
	t.Parallel()

	genA := []league.League{{ID: 1, Priority: 10}, {ID: 2, Priority: 10}}
	genB := []league.League{{ID: 3, Priority: 30}, {ID: 4, Priority: 30}}

	repo := &stubLeagueRepo{leagues: genA}
	cache := NewLeaguePriorityCache(repo, time.Nanosecond, logging.NewNop())
	require.NoError(t, cache.RefreshIfStale(context.Background()))

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := range 200 {
			if i%2 == 0 {
				repo.setLeagues(genB)
			} else {
				repo.setLeagues(genA)
			}
			_ = cache.RefreshIfStale(context.Background())
		}
	}()

	for range 500 {
		scores := cache.Scores()
		_, hasA := scores[1]
		_, hasB := scores[3]
		if hasA && hasB {
			t.Fatalf("mixed snapshot generations: %v", scores)
		}
	}
	<-done
}

func TestLeaguePriorityCache_InvalidateForcesReload(t *testing.T) {
	t.Parallel()

	repo := &stubLeagueRepo{leagues: []league.League{{ID: 1, Priority: 10}}}
	cache := NewLeaguePriorityCache(repo, time.Hour, logging.NewNop())

	require.NoError(t, cache.RefreshIfStale(context.Background()))
	cache.Invalidate()
	require.NoError(t, cache.RefreshIfStale(context.Background()))

	assert.Equal(t, 2, repo.callCount())
}

package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync/atomic"
	"time"

	"github.com/ilhamrdh/scorebase/internal/domain/league"
	"github.com/ilhamrdh/scorebase/internal/platform/logging"
)

const defaultPriorityCacheTTL = 5 * time.Minute

// prioritySnapshot is an immutable view of league metadata with derived
// scores. Readers grab the whole snapshot with one atomic load, so a
// refresh in flight never exposes a half-built map.
type prioritySnapshot struct {
	leagues     map[int64]league.League
	scores      map[int64]int
	featuredIDs []int64
	loadedAt    time.Time
}

// LeaguePriorityCache serves computed league scores and display metadata
// for ranking queries. Snapshots are replaced wholesale via atomic pointer
// swap; there is no refresh lock — two requests racing the staleness check
// each load and swap, which is idempotent and cheaper than contending on a
// mutex at request volume. On refresh failure the previous snapshot keeps
// serving.
type LeaguePriorityCache struct {
	leagueRepo league.Repository
	ttl        time.Duration
	now        func() time.Time
	logger     *logging.Logger

	current atomic.Pointer[prioritySnapshot]
}

func NewLeaguePriorityCache(leagueRepo league.Repository, ttl time.Duration, logger *logging.Logger) *LeaguePriorityCache {
	if ttl <= 0 {
		ttl = defaultPriorityCacheTTL
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &LeaguePriorityCache{
		leagueRepo: leagueRepo,
		ttl:        ttl,
		now:        time.Now,
		logger:     logger,
	}
}

// RefreshIfStale reloads the snapshot when the TTL has elapsed. Callers
// invoke it once per request before reading; the read accessors never
// refresh on their own. A failed reload keeps the stale snapshot and logs,
// unless there is no snapshot at all to fall back on.
func (c *LeaguePriorityCache) RefreshIfStale(ctx context.Context) error {
	stale := c.current.Load()
	if stale != nil && c.now().Sub(stale.loadedAt) < c.ttl {
		return nil
	}

	fresh, err := c.load(ctx)
	if err != nil {
		if stale != nil {
			c.logger.WarnContext(ctx, "league priority refresh failed, serving stale snapshot",
				"error", err.Error(),
				"snapshot_age", c.now().Sub(stale.loadedAt).String(),
			)
			return nil
		}
		return fmt.Errorf("%w: load league priorities: %v", ErrDependencyUnavailable, err)
	}

	c.current.Store(fresh)
	return nil
}

// Priority returns the computed score for a league, or the unknown-league
// default when the league is not cached.
func (c *LeaguePriorityCache) Priority(leagueID int64) int {
	if snap := c.current.Load(); snap != nil {
		if score, ok := snap.scores[leagueID]; ok {
			return score
		}
	}
	return league.UnknownScore()
}

// Scores returns the full score map of the current snapshot, treated as
// read-only. Nil when the cache has never been populated.
func (c *LeaguePriorityCache) Scores() map[int64]int {
	if snap := c.current.Load(); snap != nil {
		return snap.scores
	}
	return nil
}

// League returns cached display metadata for a league.
func (c *LeaguePriorityCache) League(leagueID int64) (league.League, bool) {
	if snap := c.current.Load(); snap != nil {
		l, ok := snap.leagues[leagueID]
		return l, ok
	}
	return league.League{}, false
}

// LeagueIDsMatchingName returns the IDs of cached leagues whose name
// contains term, case-insensitively. Used to widen search filters so a
// league-name hit is not lost at the query layer, where only participant
// names are stored.
func (c *LeaguePriorityCache) LeagueIDsMatchingName(term string) []int64 {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return nil
	}
	snap := c.current.Load()
	if snap == nil {
		return nil
	}
	ids := make([]int64, 0)
	for id, l := range snap.leagues {
		if strings.Contains(strings.ToLower(l.Name), term) {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// FeaturedLeagueIDs returns the IDs of leagues currently flagged featured.
func (c *LeaguePriorityCache) FeaturedLeagueIDs() []int64 {
	if snap := c.current.Load(); snap != nil {
		return snap.featuredIDs
	}
	return nil
}

// DefaultScore is the score applied to matches whose league is absent from
// the snapshot.
func (c *LeaguePriorityCache) DefaultScore() int {
	return league.UnknownScore()
}

// Invalidate drops the current snapshot so the next refresh reloads.
func (c *LeaguePriorityCache) Invalidate() {
	c.current.Store(nil)
}

func (c *LeaguePriorityCache) load(ctx context.Context) (*prioritySnapshot, error) {
	leagues, err := c.leagueRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	byID := make(map[int64]league.League, len(leagues))
	scores := make(map[int64]int, len(leagues))
	featured := make([]int64, 0)
	for _, l := range leagues {
		byID[l.ID] = l
		scores[l.ID] = l.Score()
		if l.Featured {
			featured = append(featured, l.ID)
		}
	}

	return &prioritySnapshot{
		leagues:     byID,
		scores:      scores,
		featuredIDs: featured,
		loadedAt:    c.now(),
	}, nil
}

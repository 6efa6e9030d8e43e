package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/ilhamrdh/scorebase/internal/domain/country"
	"github.com/ilhamrdh/scorebase/internal/domain/league"
	"github.com/ilhamrdh/scorebase/internal/domain/match"
	"github.com/ilhamrdh/scorebase/internal/domain/player"
	"github.com/ilhamrdh/scorebase/internal/domain/standing"
	"github.com/ilhamrdh/scorebase/internal/platform/logging"
)

// SportsDataProvider is the upstream feed the sync pulls from.
type SportsDataProvider interface {
	FetchCountries(ctx context.Context) ([]country.Country, error)
	FetchLeagues(ctx context.Context) ([]league.League, error)
	FetchMatchesByLeague(ctx context.Context, leagueID int64, from, to time.Time) ([]match.Match, error)
	FetchPlayersByLeague(ctx context.Context, leagueID int64) ([]player.Player, error)
	FetchStandingsRawByLeague(ctx context.Context, leagueID int64) ([]map[string]any, error)
}

// Writer interfaces for the sync path; the store repositories implement
// these alongside their read interfaces.
type LeagueWriter interface {
	UpsertAll(ctx context.Context, leagues []league.League) error
}

type CountryWriter interface {
	UpsertAll(ctx context.Context, countries []country.Country) error
}

type PlayerWriter interface {
	UpsertAll(ctx context.Context, players []player.Player) error
}

type standingsInvalidator interface {
	InvalidateLeague(ctx context.Context, leagueID int64)
}

type SyncConfig struct {
	Workers          int
	MatchWindowBack  time.Duration
	MatchWindowAhead time.Duration
}

func (c SyncConfig) normalize() SyncConfig {
	if c.Workers <= 0 {
		c.Workers = 4
	}
	if c.MatchWindowBack <= 0 {
		c.MatchWindowBack = 7 * 24 * time.Hour
	}
	if c.MatchWindowAhead <= 0 {
		c.MatchWindowAhead = 14 * 24 * time.Hour
	}
	return c
}

type SyncFailure struct {
	LeagueID int64  `json:"league_id"`
	Stage    string `json:"stage"`
	Message  string `json:"message"`
}

type SyncResult struct {
	Countries  int           `json:"countries"`
	Leagues    int           `json:"leagues"`
	Matches    int           `json:"matches"`
	Players    int           `json:"players"`
	Standings  int           `json:"standings_leagues"`
	Failures   []SyncFailure `json:"failures,omitempty"`
	DurationMs int64         `json:"duration_ms"`
}

// SyncService refreshes the store from the upstream provider: countries and
// leagues first, then a per-league fan-out for matches, players and raw
// standings over a bounded worker pool.
type SyncService struct {
	provider      SportsDataProvider
	leagueWriter  LeagueWriter
	countryWriter CountryWriter
	playerWriter  PlayerWriter
	matchRepo     match.Repository
	standingRepo  standing.Repository
	priorityCache *LeaguePriorityCache
	standings     standingsInvalidator
	cfg           SyncConfig
	logger        *logging.Logger
	now           func() time.Time
}

func NewSyncService(
	provider SportsDataProvider,
	leagueWriter LeagueWriter,
	countryWriter CountryWriter,
	playerWriter PlayerWriter,
	matchRepo match.Repository,
	standingRepo standing.Repository,
	priorityCache *LeaguePriorityCache,
	standings standingsInvalidator,
	cfg SyncConfig,
	logger *logging.Logger,
) *SyncService {
	if logger == nil {
		logger = logging.Default()
	}
	return &SyncService{
		provider:      provider,
		leagueWriter:  leagueWriter,
		countryWriter: countryWriter,
		playerWriter:  playerWriter,
		matchRepo:     matchRepo,
		standingRepo:  standingRepo,
		priorityCache: priorityCache,
		standings:     standings,
		cfg:           cfg.normalize(),
		logger:        logger,
		now:           time.Now,
	}
}

// SyncAll runs one full refresh. Per-league failures are collected rather
// than aborting the run; only the bulk country/league fetches are fatal.
func (s *SyncService) SyncAll(ctx context.Context) (SyncResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SyncService.SyncAll")
	defer span.End()

	start := s.now()
	result := SyncResult{}

	countries, err := s.provider.FetchCountries(ctx)
	if err != nil {
		return SyncResult{}, fmt.Errorf("%w: fetch countries: %v", ErrDependencyUnavailable, err)
	}
	if err := s.countryWriter.UpsertAll(ctx, countries); err != nil {
		return SyncResult{}, fmt.Errorf("upsert countries: %w", err)
	}
	result.Countries = len(countries)

	leagues, err := s.provider.FetchLeagues(ctx)
	if err != nil {
		return SyncResult{}, fmt.Errorf("%w: fetch leagues: %v", ErrDependencyUnavailable, err)
	}
	if err := s.leagueWriter.UpsertAll(ctx, leagues); err != nil {
		return SyncResult{}, fmt.Errorf("upsert leagues: %w", err)
	}
	result.Leagues = len(leagues)
	if s.priorityCache != nil {
		s.priorityCache.Invalidate()
	}

	pool, err := ants.NewPool(s.cfg.Workers)
	if err != nil {
		return SyncResult{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	var (
		mu         sync.Mutex
		allMatches []match.Match
		workers    sync.WaitGroup
	)
	from := start.Add(-s.cfg.MatchWindowBack)
	to := start.Add(s.cfg.MatchWindowAhead)

	record := func(failure *SyncFailure, apply func(r *SyncResult)) {
		mu.Lock()
		defer mu.Unlock()
		if failure != nil {
			result.Failures = append(result.Failures, *failure)
		}
		if apply != nil {
			apply(&result)
		}
	}

	for _, lg := range leagues {
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()
			s.syncLeague(ctx, lg, from, to, &mu, &allMatches, record)
		}); err != nil {
			workers.Done()
			return SyncResult{}, fmt.Errorf("submit league sync to worker pool: %w", err)
		}
	}
	workers.Wait()

	if err := s.matchRepo.UpsertAll(ctx, allMatches); err != nil {
		return SyncResult{}, fmt.Errorf("upsert matches: %w", err)
	}
	result.Matches = len(allMatches)

	result.DurationMs = s.now().Sub(start).Milliseconds()
	s.logger.InfoContext(ctx, "sync finished",
		"countries", result.Countries,
		"leagues", result.Leagues,
		"matches", result.Matches,
		"players", result.Players,
		"standings_leagues", result.Standings,
		"failures", len(result.Failures),
		"duration_ms", result.DurationMs,
	)
	return result, nil
}

func (s *SyncService) syncLeague(
	ctx context.Context,
	lg league.League,
	from, to time.Time,
	mu *sync.Mutex,
	allMatches *[]match.Match,
	record func(failure *SyncFailure, apply func(r *SyncResult)),
) {
	matches, err := s.provider.FetchMatchesByLeague(ctx, lg.ID, from, to)
	if err != nil {
		record(&SyncFailure{LeagueID: lg.ID, Stage: "matches", Message: err.Error()}, nil)
	} else {
		mu.Lock()
		*allMatches = append(*allMatches, matches...)
		mu.Unlock()
	}

	players, err := s.provider.FetchPlayersByLeague(ctx, lg.ID)
	if err != nil {
		record(&SyncFailure{LeagueID: lg.ID, Stage: "players", Message: err.Error()}, nil)
	} else if len(players) > 0 {
		if err := s.playerWriter.UpsertAll(ctx, players); err != nil {
			record(&SyncFailure{LeagueID: lg.ID, Stage: "players", Message: err.Error()}, nil)
		} else {
			record(nil, func(r *SyncResult) { r.Players += len(players) })
		}
	}

	raw, err := s.provider.FetchStandingsRawByLeague(ctx, lg.ID)
	if err != nil {
		record(&SyncFailure{LeagueID: lg.ID, Stage: "standings", Message: err.Error()}, nil)
		return
	}
	if err := s.standingRepo.ReplaceByLeague(ctx, lg.ID, raw); err != nil {
		record(&SyncFailure{LeagueID: lg.ID, Stage: "standings", Message: err.Error()}, nil)
		return
	}
	if s.standings != nil {
		s.standings.InvalidateLeague(ctx, lg.ID)
	}
	record(nil, func(r *SyncResult) { r.Standings++ })
}

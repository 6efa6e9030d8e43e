package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/ilhamrdh/scorebase/external/sportsdata"
	"github.com/ilhamrdh/scorebase/internal/config"
	"github.com/ilhamrdh/scorebase/internal/infrastructure/repository/mongodb"
	"github.com/ilhamrdh/scorebase/internal/interfaces/httpapi"
	"github.com/ilhamrdh/scorebase/internal/platform/cache"
	"github.com/ilhamrdh/scorebase/internal/platform/logging"
	"github.com/ilhamrdh/scorebase/internal/platform/resilience"
	"github.com/ilhamrdh/scorebase/internal/usecase"
)

// App bundles the HTTP server with the resources it owns.
type App struct {
	Server *http.Server
	Store  *mongodb.Store
}

func New(ctx context.Context, cfg config.Config, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}

	store, err := mongodb.NewStore(ctx, cfg.MongoURI, cfg.MongoDatabase)
	if err != nil {
		return nil, fmt.Errorf("init mongo store: %w", err)
	}

	matchRepo := store.Matches()
	leagueRepo := store.Leagues()
	countryRepo := store.Countries()
	playerRepo := store.Players()
	standingRepo := store.Standings()

	priorityCache := usecase.NewLeaguePriorityCache(leagueRepo, cfg.PriorityCacheTTL, logger)
	responseCache := cache.NewStore(cfg.ResponseCacheTTL)

	matchSvc := usecase.NewMatchService(matchRepo, priorityCache, logger)
	leagueSvc := usecase.NewLeagueService(leagueRepo)
	standingSvc := usecase.NewStandingService(leagueRepo, standingRepo, responseCache)
	countrySvc := usecase.NewCountryService(countryRepo)
	playerSvc := usecase.NewPlayerService(playerRepo)

	provider := sportsdata.NewClient(sportsdata.ClientConfig{
		BaseURL:       cfg.ProviderBaseURL,
		Token:         cfg.ProviderToken,
		Timeout:       cfg.ProviderTimeout,
		MaxRetries:    cfg.ProviderMaxRetries,
		RatePerSecond: cfg.ProviderRatePerSecond,
		Logger:        logger,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.ProviderCircuitEnabled,
			FailureThreshold: cfg.ProviderCircuitFailureCount,
			OpenTimeout:      cfg.ProviderCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.ProviderCircuitHalfOpenMaxReq,
		},
	})

	syncSvc := usecase.NewSyncService(
		provider,
		leagueRepo,
		countryRepo,
		playerRepo,
		matchRepo,
		standingRepo,
		priorityCache,
		standingSvc,
		usecase.SyncConfig{
			Workers:          cfg.SyncWorkers,
			MatchWindowBack:  cfg.SyncWindowBack,
			MatchWindowAhead: cfg.SyncWindowAhead,
		},
		logger,
	)

	handler := httpapi.NewHandler(matchSvc, leagueSvc, standingSvc, countrySvc, playerSvc, syncSvc, logger)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins, cfg.InternalJobToken)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		_ = store.Close(ctx)
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return &App{Server: server, Store: store}, nil
}

func (a *App) Close(ctx context.Context) error {
	return a.Store.Close(ctx)
}

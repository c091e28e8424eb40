package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/gaming-league/internal/config"
	"github.com/riskibarqy/gaming-league/internal/domain/fixture"
	"github.com/riskibarqy/gaming-league/internal/domain/league"
	"github.com/riskibarqy/gaming-league/internal/domain/leaguestanding"
	"github.com/riskibarqy/gaming-league/internal/domain/player"
	"github.com/riskibarqy/gaming-league/internal/domain/result"
	cacherepo "github.com/riskibarqy/gaming-league/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/gaming-league/internal/infrastructure/repository/guard"
	"github.com/riskibarqy/gaming-league/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/gaming-league/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/gaming-league/internal/interfaces/httpapi"
	basecache "github.com/riskibarqy/gaming-league/internal/platform/cache"
	idgen "github.com/riskibarqy/gaming-league/internal/platform/id"
	"github.com/riskibarqy/gaming-league/internal/platform/logging"
	"github.com/riskibarqy/gaming-league/internal/platform/resilience"
	"github.com/riskibarqy/gaming-league/internal/platform/scheduler"
	"github.com/riskibarqy/gaming-league/internal/usecase"
)

const standingsRebuildJob = "standings-rebuild"

type repositories struct {
	leagues   league.Repository
	players   player.Repository
	fixtures  fixture.Repository
	reports   result.Repository
	standings leaguestanding.Repository
}

// Services groups the use cases shared by the API and the seed binary.
type Services struct {
	Leagues   *usecase.LeagueService
	Players   *usecase.PlayerService
	Fixtures  *usecase.FixtureService
	Results   *usecase.ResultService
	Standings *usecase.LeagueStandingService
	Export    *usecase.ExportService
}

// App owns the HTTP server, background jobs and storage handles.
type App struct {
	Server    *http.Server
	Services  Services
	scheduler *scheduler.Service
	db        *sqlx.DB
	logger    *logging.Logger
}

// New wires storage, use cases and transport according to cfg.
func New(ctx context.Context, cfg config.Config, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	repos, db, err := buildRepositories(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	services := buildServices(cfg, repos, logger)

	handler := httpapi.NewHandler(
		services.Leagues,
		services.Players,
		services.Fixtures,
		services.Results,
		services.Standings,
		services.Export,
		logger,
	)
	router := httpapi.NewRouter(handler, logger, httpapi.RouterOptions{
		SwaggerEnabled:     cfg.SwaggerEnabled,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		AdminToken:         cfg.AdminToken,
	})

	a := &App{
		Server: &http.Server{
			Addr:         cfg.HTTPAddr,
			Handler:      router,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
		},
		Services: services,
		db:       db,
		logger:   logger,
	}

	if cfg.JobStandingsRebuildInterval > 0 {
		sched, err := scheduler.New(logger.Named("scheduler"))
		if err != nil {
			_ = a.Close()
			return nil, fmt.Errorf("create scheduler: %w", err)
		}
		a.scheduler = sched
		if err := sched.AddIntervalJob(standingsRebuildJob, cfg.JobStandingsRebuildInterval, func(ctx context.Context) error {
			count, err := services.Standings.RebuildAll(ctx)
			if err != nil {
				return err
			}
			logger.InfoContext(ctx, "standings rebuilt", "leagues", count)
			return nil
		}); err != nil {
			_ = a.Close()
			return nil, fmt.Errorf("register %s job: %w", standingsRebuildJob, err)
		}
	} else {
		logger.Info("standings rebuild job disabled", "reason", "JOB_STANDINGS_REBUILD_INTERVAL=0")
	}

	return a, nil
}

// NewServices builds the use cases on top of the configured storage. The
// returned close function releases the database handle, if any.
func NewServices(ctx context.Context, cfg config.Config, logger *logging.Logger) (Services, func() error, error) {
	if logger == nil {
		logger = logging.Default()
	}

	repos, db, err := buildRepositories(ctx, cfg, logger)
	if err != nil {
		return Services{}, nil, err
	}

	closeFn := func() error { return nil }
	if db != nil {
		closeFn = db.Close
	}
	return buildServices(cfg, repos, logger), closeFn, nil
}

// StartBackground starts the scheduler when periodic jobs are enabled.
func (a *App) StartBackground() {
	if a.scheduler != nil {
		a.scheduler.Start()
	}
}

// Close stops background jobs and releases the database handle.
func (a *App) Close() error {
	var errs []error
	if a.scheduler != nil {
		if err := a.scheduler.Stop(); err != nil {
			errs = append(errs, fmt.Errorf("stop scheduler: %w", err))
		}
	}
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close database: %w", err))
		}
	}
	return errors.Join(errs...)
}

func buildRepositories(ctx context.Context, cfg config.Config, logger *logging.Logger) (repositories, *sqlx.DB, error) {
	var (
		repos repositories
		db    *sqlx.DB
	)

	switch cfg.StorageDriver {
	case config.StoragePostgres:
		var err error
		db, err = openDatabase(ctx, cfg)
		if err != nil {
			return repositories{}, nil, err
		}
		if cfg.DBBootstrapSeed {
			if err := postgres.BootstrapSeed(ctx, db); err != nil {
				_ = db.Close()
				return repositories{}, nil, fmt.Errorf("bootstrap seed: %w", err)
			}
			logger.Info("database seeded with demo leagues")
		}
		repos = repositories{
			leagues:   postgres.NewLeagueRepository(db),
			players:   postgres.NewPlayerRepository(db),
			fixtures:  postgres.NewFixtureRepository(db),
			reports:   postgres.NewResultRepository(db),
			standings: postgres.NewLeagueStandingRepository(db),
		}
		if cfg.DBCircuitEnabled {
			repos = guardRepositories(repos, newDBBreaker(cfg, logger))
		}
		logger.Info("storage ready", "driver", config.StoragePostgres, "db_name", dbNameFromURL(cfg.DBURL))
	default:
		repos = repositories{
			leagues:   memory.NewLeagueRepository(memory.SeedLeagues()),
			players:   memory.NewPlayerRepository(memory.SeedPlayers()),
			fixtures:  memory.NewFixtureRepository(nil),
			reports:   memory.NewResultRepository(),
			standings: memory.NewLeagueStandingRepository(),
		}
		logger.Info("storage ready", "driver", config.StorageMemory)
	}

	if cfg.CacheEnabled {
		store := basecache.NewStore(cfg.CacheTTL)
		repos.leagues = cacherepo.NewLeagueRepository(repos.leagues, store)
		repos.players = cacherepo.NewPlayerRepository(repos.players, store)
		repos.fixtures = cacherepo.NewFixtureRepository(repos.fixtures, store)
		repos.standings = cacherepo.NewLeagueStandingRepository(repos.standings, store)
		logger.Info("read cache enabled", "ttl", cfg.CacheTTL.String())
	}

	return repos, db, nil
}

func newDBBreaker(cfg config.Config, logger *logging.Logger) *resilience.CircuitBreaker {
	return resilience.NewCircuitBreaker("postgres",
		resilience.CircuitBreakerConfig{
			Enabled:          cfg.DBCircuitEnabled,
			FailureThreshold: cfg.DBCircuitFailureCount,
			OpenTimeout:      cfg.DBCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.DBCircuitHalfOpenMaxReq,
		},
		resilience.WithFailureClassifier(guard.IsDependencyFailure),
		resilience.WithStateChangeHook(func(name string, from, to resilience.CircuitState) {
			logger.Warn("circuit breaker state changed", "breaker", name, "from", string(from), "to", string(to))
		}),
	)
}

func guardRepositories(repos repositories, breaker *resilience.CircuitBreaker) repositories {
	return repositories{
		leagues:   guard.NewLeagueRepository(repos.leagues, breaker),
		players:   guard.NewPlayerRepository(repos.players, breaker),
		fixtures:  guard.NewFixtureRepository(repos.fixtures, breaker),
		reports:   guard.NewResultRepository(repos.reports, breaker),
		standings: guard.NewLeagueStandingRepository(repos.standings, breaker),
	}
}

func buildServices(cfg config.Config, repos repositories, logger *logging.Logger) Services {
	standings := usecase.NewLeagueStandingService(
		repos.leagues,
		repos.players,
		repos.fixtures,
		repos.standings,
		logger.Named("standings"),
		cfg.StandingsRebuildWorkers,
	)
	leagues := usecase.NewLeagueService(repos.leagues, repos.players, repos.fixtures, standings, idgen.NewPrefixedGenerator("lg"))
	players := usecase.NewPlayerService(repos.leagues, repos.players, repos.fixtures, standings, idgen.NewPrefixedGenerator("pl"), cfg.PlayerPhoneRegion)
	fixtures := usecase.NewFixtureService(repos.leagues, repos.players, repos.fixtures, repos.reports, standings, idgen.NewPrefixedGenerator("fx"))
	results := usecase.NewResultService(repos.leagues, repos.fixtures, repos.reports, standings, idgen.NewPrefixedGenerator("rp"))

	return Services{
		Leagues:   leagues,
		Players:   players,
		Fixtures:  fixtures,
		Results:   results,
		Standings: standings,
		Export:    usecase.NewExportService(standings, fixtures, players),
	}
}

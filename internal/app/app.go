package app

import (
	"context"
	"net/http"
	"strings"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/football-manager/internal/config"
	"github.com/riskibarqy/football-manager/internal/domain/team"
	"github.com/riskibarqy/football-manager/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/football-manager/internal/infrastructure/repository/file"
	"github.com/riskibarqy/football-manager/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/football-manager/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/football-manager/internal/interfaces/httpapi"
	basecache "github.com/riskibarqy/football-manager/internal/platform/cache"
	"github.com/riskibarqy/football-manager/internal/platform/logging"
	"github.com/riskibarqy/football-manager/internal/platform/resilience"
	"github.com/riskibarqy/football-manager/internal/usecase"
)

// App holds the HTTP server and the resources it must release on shutdown.
type App struct {
	Server   *http.Server
	Registry *usecase.Registry

	db *sqlx.DB
}

func New(ctx context.Context, cfg config.Config, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if strings.TrimSpace(cfg.HTTPAddr) == "" {
		return nil, crerr.New("http server addr cannot be empty")
	}

	registry := usecase.NewRegistry(usecase.RegistryConfig{
		LeagueName:     cfg.LeagueName,
		ManagerBudget:  cfg.ManagerBudget,
		TeamMaxPlayers: cfg.TeamMaxPlayers,
	}, logger.Named("registry"))

	if cfg.SeedEnabled {
		teams, err := loadSeed(cfg.SeedFile)
		if err != nil {
			return nil, err
		}
		if err := registry.Seed(teams); err != nil {
			return nil, crerr.Wrap(err, "seed league")
		}
	}

	a := &App{Registry: registry}
	snapshotRepo, err := a.snapshotRepository(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	handler := httpapi.NewHandler(
		usecase.NewLeagueService(registry, logger),
		usecase.NewRosterService(registry, logger),
		usecase.NewMatchService(registry, logger),
		usecase.NewSnapshotService(registry, snapshotRepo, cfg.SnapshotWorkers, logger),
		usecase.NewSeasonService(registry, cfg.SeasonWorkers, logger),
		logger,
	)

	a.Server = &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	return a, nil
}

// Close releases the database pool when the postgres store is in use.
func (a *App) Close() error {
	if a == nil || a.db == nil {
		return nil
	}
	return a.db.Close()
}

func loadSeed(path string) ([]*team.Team, error) {
	if strings.TrimSpace(path) == "" {
		return memory.SeedTeams()
	}
	return memory.LoadSeedFile(path)
}

func (a *App) snapshotRepository(ctx context.Context, cfg config.Config, logger *logging.Logger) (team.SnapshotRepository, error) {
	var repo team.SnapshotRepository

	switch cfg.SnapshotStore {
	case config.SnapshotStoreFile:
		fileRepo, err := file.NewSnapshotRepository(cfg.SnapshotDir)
		if err != nil {
			return nil, crerr.Wrap(err, "open file snapshot store")
		}
		repo = fileRepo
	case config.SnapshotStorePostgres:
		db, err := openDB(ctx, cfg)
		if err != nil {
			return nil, err
		}
		a.db = db
		var breaker *resilience.Breaker
		if cfg.DBBreakerEnabled {
			breaker = resilience.NewBreaker(resilience.BreakerConfig{
				FailureThreshold: cfg.DBBreakerFailures,
				OpenTimeout:      cfg.DBBreakerOpenTimeout,
			})
		}
		repo = postgres.NewSnapshotRepository(db, breaker)
	default:
		logger.Info("using in-memory snapshot store")
		return memory.NewSnapshotRepository(), nil
	}

	logger.Info("snapshot store ready", "store", cfg.SnapshotStore, "cache", cfg.CacheEnabled)
	if !cfg.CacheEnabled {
		return repo, nil
	}
	return cache.NewSnapshotRepository(repo, basecache.NewStore(cfg.CacheTTL)), nil
}

package main

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/joefazee/countries/app"
	"github.com/joefazee/countries/app/api"
	"github.com/joefazee/countries/app/countries"
	"github.com/joefazee/countries/app/database"
	apiDoc "github.com/joefazee/countries/app/doc"
	"github.com/joefazee/countries/internal/cache"
	"github.com/joefazee/countries/internal/deps"
	"github.com/joefazee/countries/internal/logger"
	"github.com/joefazee/countries/internal/router"
	"github.com/joefazee/countries/models"
)

// dataSource is the repository selected by DATA_SOURCE plus the
// container options that expose its backing store
type dataSource struct {
	repo    countries.Repository
	options []deps.Option
	close   func()
}

type dbPinger struct {
	db *gorm.DB
}

func (p dbPinger) Ping(ctx context.Context) error {
	sqlDB, err := p.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func openDataSource(cfg *app.Config) (*dataSource, error) {
	switch cfg.DataSource {
	case app.DataSourcePostgres:
		if err := database.Migrate(&cfg.DB); err != nil {
			return nil, fmt.Errorf("migrate: %w", err)
		}
		db, err := database.New(&cfg.DB)
		if err != nil {
			return nil, err
		}
		return &dataSource{
			repo:    countries.NewRepository(db),
			options: []deps.Option{deps.WithDB(db)},
			close: func() {
				if sqlDB, err := db.DB(); err == nil {
					_ = sqlDB.Close()
				}
			},
		}, nil

	case app.DataSourceRedis:
		store, err := cache.NewCache[[]models.Country](cache.RedisBackend, cfg.Redis.Options())
		if err != nil {
			return nil, err
		}
		return &dataSource{
			repo:    countries.NewCacheRepository(store, cfg.Redis.Key),
			options: []deps.Option{deps.WithSnapshots(store)},
			close:   func() { _ = store.Close() },
		}, nil

	case app.DataSourceMemory:
		return &dataSource{
			repo:  countries.NewMemoryRepository(models.SeedCountries()),
			close: func() {},
		}, nil

	default:
		return nil, fmt.Errorf("%w: %q", models.ErrUnknownDataSource, cfg.DataSource)
	}
}

// seed loads the built-in dataset into stores that accept writes
func seed(ctx context.Context, repo countries.Repository, log logger.Logger) error {
	seeder, ok := repo.(countries.Seeder)
	if !ok {
		return nil
	}
	data := models.SeedCountries()
	if err := seeder.Seed(ctx, data); err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	log.Info("dataset seeded", map[string]interface{}{"count": len(data)})
	return nil
}

func ginMode(env string) string {
	switch env {
	case "production", "staging":
		return gin.ReleaseMode
	case "test":
		return gin.TestMode
	default:
		return gin.DebugMode
	}
}

// healthDependencies lists the backing stores set on container
func healthDependencies(container *deps.Container) map[string]api.Pinger {
	pingers := map[string]api.Pinger{}
	if container.DB != nil {
		pingers["postgres"] = dbPinger{db: container.DB}
	}
	if container.Snapshots != nil {
		pingers["redis"] = container.Snapshots
	}
	return pingers
}

// newRouter mounts every route on a fresh engine. The country service must
// already be registered on container.
func newRouter(cfg *app.Config, container *deps.Container) *gin.Engine {
	gin.SetMode(ginMode(cfg.Env))

	r := gin.New()
	r.Use(
		gin.Recovery(),
		api.RequestID(),
		api.AccessLog(container.Logger),
		api.Instrument(container.Metrics),
		api.CorsMiddleware(),
	)

	router.NewMounter(container).
		Public(r).
		Mount(countries.MountPublic)

	r.GET("/healthz", api.HealthCheck(cfg.Env, healthDependencies(container)))
	r.GET("/metrics", gin.WrapH(container.Metrics.Handler()))
	apiDoc.Init(r, cfg.Env, cfg.Addr())

	return r
}

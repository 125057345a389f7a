package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joefazee/countries/app"
	"github.com/joefazee/countries/app/countries"
	_ "github.com/joefazee/countries/docs"
	"github.com/joefazee/countries/internal/deps"
	"github.com/joefazee/countries/internal/logger"
	"github.com/joefazee/countries/internal/metrics"
	"github.com/joefazee/countries/internal/sanitizer"
)

// @title Countries API
// @version 1.0
// @description Read-only queries over a fixed dataset of countries: name listing, first-letter filtering and population aggregates.

// @license.name MIT License
// @license.url https://opensource.org/licenses/MIT

// @host localhost:2019
// @BasePath /
// @schemes http
func main() {
	flag.String("config", "", "path to a config file (defaults to .env when present)")
	flag.Parse()

	cfg, err := app.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	appLogger := logger.NewZeroLogger(os.Stdout, logger.ParseLevel(cfg.LogLevel), logger.Fields{
		"service": "countries-api",
		"env":     cfg.Env,
	})

	source, err := openDataSource(cfg)
	if err != nil {
		appLogger.Fatal(err, map[string]interface{}{"data_source": cfg.DataSource})
	}
	defer source.close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.SeedOnStart {
		if err := seed(ctx, source.repo, appLogger); err != nil {
			appLogger.Fatal(err, map[string]interface{}{"data_source": cfg.DataSource})
		}
	}

	container := deps.NewContainer(sanitizer.NewHTMLStripper(), appLogger, metrics.New(), source.options...)
	countries.InitRepositories(container, source.repo)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           newRouter(cfg, container),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		appLogger.Info("starting countries API", map[string]interface{}{
			"addr":        cfg.Addr(),
			"data_source": cfg.DataSource,
		})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal(err, nil)
		}
	}()

	<-ctx.Done()
	appLogger.Info("shutting down", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Error(err, nil)
	}
}

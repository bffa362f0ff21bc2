// @title           Storefront Auth & Catalog API
// @version         1.0
// @description     Cookie-session authentication, user management and product catalog with soft delete.
// @BasePath        /
// @securityDefinitions.apikey  CookieAuth
// @in                          cookie
// @name                        token
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/araselthenilo/latihan-backend-uts/internal/api"
	"github.com/araselthenilo/latihan-backend-uts/internal/infrastructure/db/sqlstore"
	"github.com/araselthenilo/latihan-backend-uts/internal/pkg/config"
	"github.com/araselthenilo/latihan-backend-uts/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		l := logger.Init(logger.Options{Pretty: true})
		l.Fatal().Err(err).Msg("loading config")
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  !cfg.IsProduction(),
		Service: "latihan-backend-uts",
	})

	db, err := sqlstore.Connect(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.DB.Driver).Msg("connecting to database")
	}
	defer db.Close()

	if err := sqlstore.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("migrating database")
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	e, err := api.NewRouter(api.Deps{
		Config:   cfg,
		DB:       db,
		Registry: reg,
		Logger:   log,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("building router")
	}

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           e,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Str("env", cfg.Env).Msg("server running")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}

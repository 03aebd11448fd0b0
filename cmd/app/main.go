package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"go.uber.org/fx"
	"travelai/cmd/fx/account_fx"
	"travelai/cmd/fx/controllers_fx"
	"travelai/cmd/fx/db_fx"
	"travelai/cmd/fx/metrics_fx"
	"travelai/cmd/fx/planner_fx"
	"travelai/cmd/fx/saved_trip_fx"
	"travelai/cmd/fx/store_fx"
	"travelai/cmd/fx/trip_fx"
	"travelai/internal/config"
	"travelai/pkg/logger"
)

func main() {
	cfg, err := config.New()
	if err != nil {
		bootLog := logger.New("travelai", "info")
		bootLog.Fatal().Err(err).Msg("Failed to load configuration")
	}
	log := logger.New("travelai", cfg.LogLevel)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	app := fx.New(modules(cfg, log)...)
	app.Run()
	if err := app.Err(); err != nil {
		os.Exit(1)
	}
}

// modules lists the fx options for cfg. The account and trip features need Postgres and are
// left out when no database is configured.
func modules(cfg *config.Config, log zerolog.Logger) []fx.Option {
	opts := []fx.Option{
		fx.Supply(cfg, log),
		fx.NopLogger,
		metrics_fx.Module,
		store_fx.For(cfg),
		planner_fx.Module,
		saved_trip_fx.Module,
		controllers_fx.Module,
	}
	if cfg.PostgresURL != "" {
		opts = append(opts,
			db_fx.Module,
			account_fx.Module,
			trip_fx.Module,
		)
	} else {
		log.Warn().Msg("POSTGRES_URL is empty, account and trip routes are disabled")
	}
	return append(opts,
		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)
}

func StartServer(lc fx.Lifecycle, cfg *config.Config, engine *gin.Engine, log zerolog.Logger) {
	srv := &http.Server{
		Addr:              cfg.HTTPAddr(),
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Info().Str("addr", srv.Addr).Str("environment", string(cfg.Environment)).Msg("Starting HTTP server")
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Fatal().Err(err).Msg("Failed to start server")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Stopping HTTP server")
			return srv.Shutdown(ctx)
		},
	})
}

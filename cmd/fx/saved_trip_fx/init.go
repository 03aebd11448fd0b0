package saved_trip_fx

import (
	"context"

	"github.com/rs/zerolog"
	"go.uber.org/fx"
	"travelai/internal/api/controllers"
	"travelai/internal/config"
	"travelai/internal/metrics"
	"travelai/internal/repositories"
	"travelai/internal/services"
)

var Module = fx.Options(
	fx.Provide(provideSavedTripService, provideBoardService),
	fx.Provide(controllers.NewSavedTripController, controllers.NewBoardController),
	fx.Invoke(registerCleanup),
)

func provideSavedTripService(store repositories.SavedTripStore, cfg *config.Config, m *metrics.Metrics, log zerolog.Logger) services.SavedTripServiceInterface {
	limits := services.SavedTripLimits{
		Cap:     cfg.SavedTripCap,
		MaxAge:  cfg.SavedTripMaxAge,
		QuotaKB: cfg.SavedTripQuotaKB,
	}
	return services.NewSavedTripService(store, limits, m, log.With().Str("component", "saved_trips").Logger())
}

func provideBoardService(store repositories.SavedTripStore, trips services.SavedTripServiceInterface, m *metrics.Metrics, log zerolog.Logger) services.BoardServiceInterface {
	return services.NewBoardService(store, trips, m, log.With().Str("component", "board").Logger())
}

// registerCleanup prunes expired trips once the stores are up. A failure is logged, not fatal.
func registerCleanup(lc fx.Lifecycle, trips services.SavedTripServiceInterface, log zerolog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			removed, err := trips.Cleanup(ctx)
			if err != nil {
				log.Warn().Err(err).Msg("saved trip cleanup failed")
				return nil
			}
			log.Info().Int("removed", removed).Msg("saved trip cleanup finished")
			return nil
		},
	})
}

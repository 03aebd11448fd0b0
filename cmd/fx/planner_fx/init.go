package planner_fx

import (
	"github.com/rs/zerolog"
	"go.uber.org/fx"
	"travelai/internal/config"
	"travelai/internal/metrics"
	"travelai/internal/planner"
	"travelai/internal/services"
)

var Module = fx.Provide(
	provideGenerator,
	provideItineraryService,
	services.NewCityService,
)

func provideGenerator(cfg *config.Config, m *metrics.Metrics) *planner.Generator {
	rng := planner.DefaultRand()
	if cfg.RandomSeed != 0 {
		rng = planner.NewSeededRand(cfg.RandomSeed)
	}
	return planner.NewGenerator(planner.DefaultCatalog(),
		planner.WithRand(rng),
		planner.WithSelectionObserver(func(_ planner.Theme, tod planner.TimeOfDay, fromCatalog bool) {
			m.SlotFilled(string(tod), fromCatalog)
		}),
	)
}

func provideItineraryService(generator *planner.Generator, m *metrics.Metrics, log zerolog.Logger) services.ItineraryServiceInterface {
	return services.NewItineraryService(generator, m, log.With().Str("component", "itinerary").Logger())
}

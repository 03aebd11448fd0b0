package trip_fx

import (
	"github.com/rs/zerolog"
	"go.uber.org/fx"
	"gorm.io/gorm"
	"travelai/internal/api/controllers"
	"travelai/internal/repositories"
	"travelai/internal/services"
)

var Module = fx.Provide(
	provideTripService, provideTripRepo, controllers.NewTripController)

func provideTripRepo(db *gorm.DB) repositories.TripRepository {
	return repositories.NewTripRepository(db)
}

func provideTripService(tripRepo repositories.TripRepository, itineraries services.ItineraryServiceInterface, log zerolog.Logger) services.TripServiceInterface {
	return services.NewTripService(tripRepo, itineraries, log.With().Str("component", "trips").Logger())
}

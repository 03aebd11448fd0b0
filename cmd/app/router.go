package main

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.uber.org/fx"
	"gorm.io/gorm"
	"travelai/internal/api/controllers"
	"travelai/internal/config"
	"travelai/internal/metrics"
	"travelai/internal/repositories"
	"travelai/pkg/middleware"
	"travelai/pkg/utils"
)

// RouterParams collects the handlers. The account and trip pieces are only present with Postgres.
type RouterParams struct {
	fx.In

	Config    *config.Config
	Log       zerolog.Logger
	Metrics   *metrics.Metrics
	Denylist  repositories.TokenDenylist
	Itinerary *controllers.ItineraryController
	Functions *controllers.FunctionsController
	SavedTrip *controllers.SavedTripController
	Board     *controllers.BoardController

	DB         *gorm.DB                       `optional:"true"`
	Redis      *redis.Client                  `optional:"true"`
	JWTManager *utils.JWTManager              `optional:"true"`
	Account    *controllers.AccountController `optional:"true"`
	Trip       *controllers.TripController    `optional:"true"`
}

func ProvideRouter(p RouterParams) *gin.Engine {
	r := gin.New()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.RequestLogger(p.Log, p.Metrics))
	r.Use(middleware.CORSMiddleware(p.Config.CORSOrigins))

	RegisterRoutes(r, p)
	return r
}

func RegisterRoutes(r *gin.Engine, p RouterParams) {
	limiter := middleware.NewRateLimiter(p.Config.RateLimitPerMinute)

	r.GET("/healthz", gin.Recovery(), controllers.NewHealthController(healthChecks(p)...).Healthz)
	r.GET("/metrics", gin.WrapH(p.Metrics.Handler()))

	functions := r.Group("/functions/v1", controllers.FunctionsRecovery(), limiter.Limit())
	functions.POST("/generate-itinerary", p.Functions.GenerateItinerary)
	functions.POST("/suggest-cities", p.Functions.SuggestCities)

	api := r.Group("", gin.Recovery())

	itineraries := api.Group("/itineraries")
	itineraries.POST("/generate", limiter.Limit(), p.Itinerary.Generate)
	itineraries.GET("/destinations", p.Itinerary.Destinations)
	api.GET("/cities", p.Itinerary.SuggestCities)

	saved := api.Group("/saved-trips", middleware.ClientIDMiddleware())
	saved.GET("", p.SavedTrip.ListTrips)
	saved.POST("", p.SavedTrip.SaveTrip)
	saved.DELETE("", p.SavedTrip.ClearTrips)
	saved.GET("/search", p.SavedTrip.SearchTrips)
	saved.GET("/by-destination", p.SavedTrip.TripsByDestination)
	saved.GET("/stats", p.SavedTrip.Stats)
	saved.GET("/export", p.SavedTrip.Export)
	saved.POST("/import", p.SavedTrip.Import)
	saved.GET("/usage", p.SavedTrip.Usage)
	saved.POST("/blank", p.Board.CreateBlankTrip)
	saved.GET("/:tripId", p.SavedTrip.GetTrip)
	saved.PATCH("/:tripId", p.SavedTrip.UpdateTrip)
	saved.DELETE("/:tripId", p.SavedTrip.DeleteTrip)

	board := saved.Group("/:tripId/board")
	board.POST("/move", p.Board.MoveActivity)
	board.POST("/activities", p.Board.AddActivity)
	board.PUT("/activities/:activityId", p.Board.EditActivity)
	board.DELETE("/activities/:activityId", p.Board.DeleteActivity)
	board.PATCH("/activities/:activityId/status", p.Board.UpdateActivityStatus)

	if p.Account == nil || p.Trip == nil || p.JWTManager == nil {
		return
	}
	auth := middleware.JWTAuthMiddleware(p.JWTManager, p.Denylist)

	accounts := api.Group("/accounts")
	accounts.POST("/register", p.Account.Register)
	accounts.POST("/login", p.Account.Login)
	accounts.POST("/logout", auth, p.Account.Logout)
	accounts.GET("/me", auth, p.Account.Me)

	trips := api.Group("/trips", auth)
	trips.POST("", p.Trip.SaveTrip)
	trips.GET("", p.Trip.ListTrips)
	trips.GET("/:tripId", p.Trip.GetTrip)
	trips.DELETE("/:tripId", p.Trip.DeleteTrip)
}

func healthChecks(p RouterParams) []controllers.HealthCheck {
	var checks []controllers.HealthCheck
	if p.Redis != nil {
		checks = append(checks, controllers.HealthCheck{Name: "redis", Check: func(ctx context.Context) error {
			return p.Redis.Ping(ctx).Err()
		}})
	}
	if p.DB != nil {
		checks = append(checks, controllers.HealthCheck{Name: "postgres", Check: func(ctx context.Context) error {
			sqlDB, err := p.DB.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		}})
	}
	return checks
}

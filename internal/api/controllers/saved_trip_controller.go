package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"travelai/internal/models/db_models"
	"travelai/internal/models/request_models"
	"travelai/internal/services"
	"travelai/pkg/middleware"
	"travelai/pkg/utils"
)

const maxImportBytes = 5 << 20

type SavedTripController struct {
	savedTripService services.SavedTripServiceInterface
}

func NewSavedTripController(savedTripService services.SavedTripServiceInterface) *SavedTripController {
	return &SavedTripController{
		savedTripService: savedTripService,
	}
}

func clientID(c *gin.Context) string {
	if id := c.GetString("client_id"); id != "" {
		return id
	}
	return middleware.AnonymousClient
}

// ListTrips godoc
// @Summary List saved trips
// @Description Trips of the calling client, newest first
// @Tags SavedTrips
// @Produce json
// @Param X-Client-ID header string false "Client ID" default(anonymous)
// @Success 200 {object} utils.APIResponse
// @Router /saved-trips [get]
func (s *SavedTripController) ListTrips(c *gin.Context) {
	trips, err := s.savedTripService.ListTrips(c.Request.Context(), clientID(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trips, "Saved trips fetched successfully")
}

// SaveTrip godoc
// @Summary Save a trip
// @Description Replaces a trip with the same id, otherwise adds it in front. Only the 50 newest trips are kept.
// @Tags SavedTrips
// @Accept json
// @Produce json
// @Param X-Client-ID header string false "Client ID" default(anonymous)
// @Param request body db_models.SavedTrip true "Trip"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /saved-trips [post]
func (s *SavedTripController) SaveTrip(c *gin.Context) {
	var trip db_models.SavedTrip
	if err := c.ShouldBindJSON(&trip); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	saved, err := s.savedTripService.SaveTrip(c.Request.Context(), clientID(c), trip)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, saved, "Trip saved successfully")
}

// ClearTrips godoc
// @Summary Delete all saved trips
// @Tags SavedTrips
// @Produce json
// @Param X-Client-ID header string false "Client ID" default(anonymous)
// @Success 200 {object} utils.APIResponse
// @Router /saved-trips [delete]
func (s *SavedTripController) ClearTrips(c *gin.Context) {
	if err := s.savedTripService.ClearTrips(c.Request.Context(), clientID(c)); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Saved trips cleared")
}

// GetTrip godoc
// @Summary Get a saved trip
// @Tags SavedTrips
// @Produce json
// @Param X-Client-ID header string false "Client ID" default(anonymous)
// @Param tripId path string true "Trip ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /saved-trips/{tripId} [get]
func (s *SavedTripController) GetTrip(c *gin.Context) {
	trip, err := s.savedTripService.GetTrip(c.Request.Context(), clientID(c), c.Param("tripId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trip, "Saved trip fetched successfully")
}

// UpdateTrip godoc
// @Summary Update a saved trip
// @Description Only the fields present in the body change
// @Tags SavedTrips
// @Accept json
// @Produce json
// @Param X-Client-ID header string false "Client ID" default(anonymous)
// @Param tripId path string true "Trip ID"
// @Param request body request_models.SavedTripPatch true "Fields to change"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /saved-trips/{tripId} [patch]
func (s *SavedTripController) UpdateTrip(c *gin.Context) {
	var patch request_models.SavedTripPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	trip, err := s.savedTripService.UpdateTrip(c.Request.Context(), clientID(c), c.Param("tripId"), patch)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trip, "Saved trip updated successfully")
}

// DeleteTrip godoc
// @Summary Delete a saved trip
// @Tags SavedTrips
// @Produce json
// @Param X-Client-ID header string false "Client ID" default(anonymous)
// @Param tripId path string true "Trip ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /saved-trips/{tripId} [delete]
func (s *SavedTripController) DeleteTrip(c *gin.Context) {
	if err := s.savedTripService.DeleteTrip(c.Request.Context(), clientID(c), c.Param("tripId")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Saved trip deleted successfully")
}

// SearchTrips godoc
// @Summary Search saved trips
// @Description Case-insensitive match on destination or any interest
// @Tags SavedTrips
// @Produce json
// @Param X-Client-ID header string false "Client ID" default(anonymous)
// @Param q query string false "Search text"
// @Success 200 {object} utils.APIResponse
// @Router /saved-trips/search [get]
func (s *SavedTripController) SearchTrips(c *gin.Context) {
	trips, err := s.savedTripService.SearchTrips(c.Request.Context(), clientID(c), c.Query("q"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trips, "Saved trips fetched successfully")
}

// TripsByDestination godoc
// @Summary Saved trips for one destination
// @Tags SavedTrips
// @Produce json
// @Param X-Client-ID header string false "Client ID" default(anonymous)
// @Param destination query string true "Destination"
// @Success 200 {object} utils.APIResponse
// @Router /saved-trips/by-destination [get]
func (s *SavedTripController) TripsByDestination(c *gin.Context) {
	destination := c.Query("destination")
	if destination == "" {
		utils.RespondError(c, http.StatusBadRequest, "destination is required")
		return
	}

	trips, err := s.savedTripService.TripsByDestination(c.Request.Context(), clientID(c), destination)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trips, "Saved trips fetched successfully")
}

// Stats godoc
// @Summary Saved trip statistics
// @Tags SavedTrips
// @Produce json
// @Param X-Client-ID header string false "Client ID" default(anonymous)
// @Success 200 {object} utils.APIResponse{data=response_models.TripStatsResponse}
// @Router /saved-trips/stats [get]
func (s *SavedTripController) Stats(c *gin.Context) {
	stats, err := s.savedTripService.Stats(c.Request.Context(), clientID(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, stats, "Statistics fetched successfully")
}

// Export godoc
// @Summary Export saved trips
// @Description Downloads the trips as an indented JSON array
// @Tags SavedTrips
// @Produce json
// @Param X-Client-ID header string false "Client ID" default(anonymous)
// @Success 200 {array} db_models.SavedTrip
// @Router /saved-trips/export [get]
func (s *SavedTripController) Export(c *gin.Context) {
	data, name, err := s.savedTripService.Export(c.Request.Context(), clientID(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	c.Data(http.StatusOK, "application/json", data)
}

// Import godoc
// @Summary Import saved trips
// @Description Accepts an exported array. Trips whose id already exists are skipped.
// @Tags SavedTrips
// @Accept json
// @Produce json
// @Param X-Client-ID header string false "Client ID" default(anonymous)
// @Param request body []db_models.SavedTrip true "Exported trips"
// @Success 200 {object} utils.APIResponse{data=response_models.ImportResultResponse}
// @Failure 400 {object} utils.APIResponse
// @Router /saved-trips/import [post]
func (s *SavedTripController) Import(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxImportBytes)
	data, err := c.GetRawData()
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Unable to read import data")
		return
	}

	result, err := s.savedTripService.Import(c.Request.Context(), clientID(c), data)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, fmt.Sprintf("Imported %d trips", result.Imported))
}

// Usage godoc
// @Summary Storage usage
// @Description Size of the client's saved trips in KB against the quota
// @Tags SavedTrips
// @Produce json
// @Param X-Client-ID header string false "Client ID" default(anonymous)
// @Success 200 {object} utils.APIResponse{data=response_models.StorageUsageResponse}
// @Router /saved-trips/usage [get]
func (s *SavedTripController) Usage(c *gin.Context) {
	usage, err := s.savedTripService.Usage(c.Request.Context(), clientID(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, usage, "Storage usage fetched successfully")
}

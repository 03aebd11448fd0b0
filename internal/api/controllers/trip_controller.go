package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"travelai/internal/models/request_models"
	"travelai/internal/services"
	"travelai/pkg/utils"
)

type TripController struct {
	tripService services.TripServiceInterface
}

func NewTripController(tripService services.TripServiceInterface) *TripController {
	return &TripController{
		tripService: tripService,
	}
}

// SaveTrip godoc
// @Summary Save a trip to the account
// @Description Stores the trip with one row per day and activity. Without an itinerary one is generated.
// @Tags Trips
// @Accept json
// @Produce json
// @Param request body request_models.SaveTripRequest true "Trip"
// @Success 201 {object} utils.APIResponse{data=response_models.TripResponse}
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips [post]
func (t *TripController) SaveTrip(c *gin.Context) {
	var req request_models.SaveTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	trip, err := t.tripService.SaveTrip(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, trip, "Trip saved successfully")
}

// ListTrips godoc
// @Summary List saved trips
// @Tags Trips
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(10) minimum(1) maximum(100)
// @Success 200 {object} utils.APIResponse{data=response_models.PagedTripsResponse}
// @Security BearerAuth
// @Router /trips [get]
func (t *TripController) ListTrips(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page number")
		return
	}
	pageSize, err := strconv.Atoi(c.DefaultQuery("page_size", "10"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page size (must be 1-100)")
		return
	}

	trips, err := t.tripService.ListTrips(c.Request.Context(), c.GetString("user_id"), page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trips, "Trips fetched successfully")
}

// GetTrip godoc
// @Summary Get a saved trip
// @Tags Trips
// @Produce json
// @Param tripId path string true "Trip ID"
// @Success 200 {object} utils.APIResponse{data=response_models.TripResponse}
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips/{tripId} [get]
func (t *TripController) GetTrip(c *gin.Context) {
	trip, err := t.tripService.GetTrip(c.Request.Context(), c.GetString("user_id"), c.Param("tripId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trip, "Trip fetched successfully")
}

// DeleteTrip godoc
// @Summary Delete a saved trip
// @Tags Trips
// @Produce json
// @Param tripId path string true "Trip ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips/{tripId} [delete]
func (t *TripController) DeleteTrip(c *gin.Context) {
	if err := t.tripService.DeleteTrip(c.Request.Context(), c.GetString("user_id"), c.Param("tripId")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Trip deleted successfully")
}

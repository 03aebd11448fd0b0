package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"travelai/internal/models/request_models"
	"travelai/internal/services"
	"travelai/pkg/utils"
)

type ItineraryController struct {
	itineraryService services.ItineraryServiceInterface
	cityService      services.CityServiceInterface
}

func NewItineraryController(itineraryService services.ItineraryServiceInterface, cityService services.CityServiceInterface) *ItineraryController {
	return &ItineraryController{
		itineraryService: itineraryService,
		cityService:      cityService,
	}
}

// Generate godoc
// @Summary Generate an itinerary
// @Description Build a day-by-day plan from the activity catalog. Budget defaults to mid-range and travelers to 1.
// @Tags Itineraries
// @Accept json
// @Produce json
// @Param request body request_models.GenerateItineraryRequest true "Trip request"
// @Success 200 {object} utils.APIResponse{data=planner.Itinerary}
// @Failure 400 {object} utils.APIResponse
// @Failure 429 {object} utils.APIResponse
// @Router /itineraries/generate [post]
func (i *ItineraryController) Generate(c *gin.Context) {
	var req request_models.GenerateItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	itinerary, err := i.itineraryService.Generate(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, itinerary, "Itinerary generated successfully")
}

// Destinations godoc
// @Summary List catalog destinations
// @Description Destinations with their own activity table. Any other destination uses the generic catalog.
// @Tags Itineraries
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /itineraries/destinations [get]
func (i *ItineraryController) Destinations(c *gin.Context) {
	utils.RespondSuccess(c, i.itineraryService.Destinations(), "Destinations fetched successfully")
}

// SuggestCities godoc
// @Summary Suggest cities for a country
// @Tags Itineraries
// @Produce json
// @Param country query string true "Country name"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /cities [get]
func (i *ItineraryController) SuggestCities(c *gin.Context) {
	cities, err := i.cityService.SuggestCities(c.Query("country"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, cities, "Cities fetched successfully")
}

package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"travelai/internal/models/request_models"
	"travelai/internal/services"
	"travelai/pkg/utils"
)

const generateFailedMessage = "Failed to generate itinerary"

// FunctionsController serves the wizard's function endpoints. Responses are bare JSON objects
// rather than the API envelope because the browser client reads them directly.
type FunctionsController struct {
	itineraryService services.ItineraryServiceInterface
	cityService      services.CityServiceInterface
}

func NewFunctionsController(itineraryService services.ItineraryServiceInterface, cityService services.CityServiceInterface) *FunctionsController {
	return &FunctionsController{
		itineraryService: itineraryService,
		cityService:      cityService,
	}
}

// GenerateItinerary godoc
// @Summary Generate an itinerary from the trip wizard
// @Description Rotates through the chosen cities one per day. Activities carry ids of the form day-slot and status planned.
// @Tags Functions
// @Accept json
// @Produce json
// @Param request body request_models.WizardItineraryRequest true "Wizard payload"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /functions/v1/generate-itinerary [post]
func (f *FunctionsController) GenerateItinerary(c *gin.Context) {
	var req request_models.WizardItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	itinerary, err := f.itineraryService.GenerateFromWizard(c.Request.Context(), req)
	if err != nil {
		respondFunctionError(c, err, generateFailedMessage)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "itinerary": itinerary})
}

// SuggestCities godoc
// @Summary Suggest cities for the trip wizard
// @Tags Functions
// @Accept json
// @Produce json
// @Param request body request_models.SuggestCitiesRequest true "Country"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Router /functions/v1/suggest-cities [post]
func (f *FunctionsController) SuggestCities(c *gin.Context) {
	var req request_models.SuggestCitiesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	cities, err := f.cityService.SuggestCities(req.DestCountry)
	if err != nil {
		respondFunctionError(c, err, "Failed to suggest cities")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "cities": cities})
}

// FunctionsRecovery turns a panic inside a function endpoint into the generic failure body.
func FunctionsRecovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		_ = c.Error(errors.New("panic while serving function"))
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": generateFailedMessage})
	})
}

func respondFunctionError(c *gin.Context, err error, fallback string) {
	if errors.Is(err, utils.ErrInvalidInput) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	_ = c.Error(err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
}

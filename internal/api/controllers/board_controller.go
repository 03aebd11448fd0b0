package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"travelai/internal/models/request_models"
	"travelai/internal/services"
	"travelai/pkg/utils"
)

type BoardController struct {
	boardService services.BoardServiceInterface
}

func NewBoardController(boardService services.BoardServiceInterface) *BoardController {
	return &BoardController{
		boardService: boardService,
	}
}

// CreateBlankTrip godoc
// @Summary Start an empty trip
// @Description Saves a seven day trip with empty days to fill on the board
// @Tags Board
// @Produce json
// @Param X-Client-ID header string false "Client ID" default(anonymous)
// @Success 201 {object} utils.APIResponse
// @Router /saved-trips/blank [post]
func (b *BoardController) CreateBlankTrip(c *gin.Context) {
	trip, err := b.boardService.CreateBlankTrip(c.Request.Context(), clientID(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, trip, "Trip created successfully")
}

// MoveActivity godoc
// @Summary Move an activity to another day
// @Tags Board
// @Accept json
// @Produce json
// @Param X-Client-ID header string false "Client ID" default(anonymous)
// @Param tripId path string true "Trip ID"
// @Param request body request_models.MoveActivityRequest true "Activity and target day"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /saved-trips/{tripId}/board/move [post]
func (b *BoardController) MoveActivity(c *gin.Context) {
	var req request_models.MoveActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	trip, err := b.boardService.MoveActivity(c.Request.Context(), clientID(c), c.Param("tripId"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trip, "Activity moved successfully")
}

// AddActivity godoc
// @Summary Add an activity to a day
// @Description Time defaults to 9:00 AM and duration to 1 hour
// @Tags Board
// @Accept json
// @Produce json
// @Param X-Client-ID header string false "Client ID" default(anonymous)
// @Param tripId path string true "Trip ID"
// @Param request body request_models.AddActivityRequest true "Activity"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /saved-trips/{tripId}/board/activities [post]
func (b *BoardController) AddActivity(c *gin.Context) {
	var req request_models.AddActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	activity, err := b.boardService.AddActivity(c.Request.Context(), clientID(c), c.Param("tripId"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, activity, "Activity added successfully")
}

// EditActivity godoc
// @Summary Edit an activity
// @Tags Board
// @Accept json
// @Produce json
// @Param X-Client-ID header string false "Client ID" default(anonymous)
// @Param tripId path string true "Trip ID"
// @Param activityId path string true "Activity ID"
// @Param request body request_models.EditActivityRequest true "Fields to change"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /saved-trips/{tripId}/board/activities/{activityId} [put]
func (b *BoardController) EditActivity(c *gin.Context) {
	var req request_models.EditActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	activity, err := b.boardService.EditActivity(c.Request.Context(), clientID(c), c.Param("tripId"), c.Param("activityId"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, activity, "Activity updated successfully")
}

// DeleteActivity godoc
// @Summary Delete an activity
// @Tags Board
// @Produce json
// @Param X-Client-ID header string false "Client ID" default(anonymous)
// @Param tripId path string true "Trip ID"
// @Param activityId path string true "Activity ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /saved-trips/{tripId}/board/activities/{activityId} [delete]
func (b *BoardController) DeleteActivity(c *gin.Context) {
	if err := b.boardService.DeleteActivity(c.Request.Context(), clientID(c), c.Param("tripId"), c.Param("activityId")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Activity deleted successfully")
}

// UpdateActivityStatus godoc
// @Summary Change an activity's status
// @Tags Board
// @Accept json
// @Produce json
// @Param X-Client-ID header string false "Client ID" default(anonymous)
// @Param tripId path string true "Trip ID"
// @Param activityId path string true "Activity ID"
// @Param request body request_models.UpdateActivityStatusRequest true "planned, confirmed or completed"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /saved-trips/{tripId}/board/activities/{activityId}/status [patch]
func (b *BoardController) UpdateActivityStatus(c *gin.Context) {
	var req request_models.UpdateActivityStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	activity, err := b.boardService.UpdateActivityStatus(c.Request.Context(), clientID(c), c.Param("tripId"), c.Param("activityId"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, activity, "Activity status updated successfully")
}

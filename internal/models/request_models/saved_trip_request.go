package request_models

import (
	"travelai/internal/models/db_models"
	"travelai/internal/planner"
)

// SavedTripPatch replaces only the fields that are present.
type SavedTripPatch struct {
	Destination   *string               `json:"destination"`
	DestCountry   *string               `json:"destCountry"`
	DepartureCity *string               `json:"departureCity"`
	StartDate     *string               `json:"startDate"`
	Duration      *int                  `json:"duration"`
	Budget        *string               `json:"budget"`
	Travelers     *string               `json:"travelers"`
	Travellers    *db_models.Travellers `json:"travellers"`
	Interests     *[]string             `json:"interests"`
	Cities        *[]string             `json:"cities"`
	Notes         *string               `json:"notes"`
	Itinerary     *planner.Itinerary    `json:"itinerary"`
}

type MoveActivityRequest struct {
	ActivityID string `json:"activity_id" binding:"required"`
	TargetDay  int    `json:"target_day" binding:"required,min=1"`
}

type AddActivityRequest struct {
	Day         int    `json:"day" binding:"required,min=1"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Time        string `json:"time"`
	Duration    string `json:"duration"`
	Location    string `json:"location"`
	Cost        string `json:"cost"`
}

type EditActivityRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Time        *string `json:"time"`
	Duration    *string `json:"duration"`
	Location    *string `json:"location"`
	Cost        *string `json:"cost"`
}

type UpdateActivityStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

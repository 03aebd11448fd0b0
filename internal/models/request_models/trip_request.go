package request_models

import "travelai/internal/planner"

// SaveTripRequest stores a trip for the signed-in account. Without an itinerary one is generated.
type SaveTripRequest struct {
	Destination   string             `json:"destination" binding:"required"`
	DepartureCity string             `json:"departure_city"`
	StartDate     string             `json:"start_date" binding:"required"`
	Duration      int                `json:"duration" binding:"required"`
	Adults        int                `json:"adults" binding:"required,min=1"`
	Kids          int                `json:"kids" binding:"min=0"`
	Budget        string             `json:"budget"`
	Interests     []string           `json:"interests"`
	Cities        []string           `json:"cities"`
	Notes         string             `json:"notes"`
	Itinerary     *planner.Itinerary `json:"itinerary"`
}

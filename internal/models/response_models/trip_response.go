package response_models

import "travelai/internal/planner"

type TripSummaryResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Destination string `json:"destination"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Duration    int    `json:"duration"`
	CreatedAt   string `json:"created_at"`
}

type TripResponse struct {
	TripSummaryResponse
	DepartureCity string            `json:"departure_city,omitempty"`
	Adults        int               `json:"adults"`
	Kids          int               `json:"kids"`
	Budget        string            `json:"budget"`
	Travelers     string            `json:"travelers"`
	Interests     []string          `json:"interests"`
	Cities        []string          `json:"cities"`
	Notes         string            `json:"notes,omitempty"`
	Itinerary     planner.Itinerary `json:"itinerary"`
}

type PagedTripsResponse struct {
	Items    []TripSummaryResponse `json:"items"`
	Total    int64                 `json:"total"`
	Page     int                   `json:"page"`
	PageSize int                   `json:"page_size"`
}

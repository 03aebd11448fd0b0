package db_models

import (
	"time"

	"travelai/internal/planner"
)

type Travellers struct {
	Adults int `json:"adults"`
	Kids   int `json:"kids"`
}

// SavedTrip is one entry of a client's saved-trip document. Budget and travelers are kept as
// plain strings so imported records with unexpected values still load.
type SavedTrip struct {
	ID            string            `json:"id"`
	Destination   string            `json:"destination"`
	DestCountry   string            `json:"destCountry,omitempty"`
	DepartureCity string            `json:"departureCity,omitempty"`
	StartDate     string            `json:"startDate,omitempty"`
	Duration      int               `json:"duration"`
	Budget        string            `json:"budget,omitempty"`
	Travelers     string            `json:"travelers,omitempty"`
	Travellers    *Travellers       `json:"travellers,omitempty"`
	Interests     []string          `json:"interests"`
	Cities        []string          `json:"cities,omitempty"`
	Notes         string            `json:"notes,omitempty"`
	Itinerary     planner.Itinerary `json:"itinerary"`
	CreatedAt     time.Time         `json:"createdAt"`
	UpdatedAt     *time.Time        `json:"updatedAt,omitempty"`
	ImportedAt    *time.Time        `json:"importedAt,omitempty"`
}

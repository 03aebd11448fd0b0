package request_models

// GenerateItineraryRequest is the direct form of a trip request. Budget defaults to mid-range and
// travelers to "1".
type GenerateItineraryRequest struct {
	Destination string   `json:"destination" binding:"required"`
	Duration    int      `json:"duration" binding:"required"`
	Budget      string   `json:"budget"`
	Travelers   string   `json:"travelers"`
	Interests   []string `json:"interests"`
	Notes       string   `json:"notes"`
	Cities      []string `json:"cities"`
}

type Travellers struct {
	Adults int `json:"adults"`
	Kids   int `json:"kids"`
}

// WizardItineraryRequest is the body the trip wizard posts to the generate-itinerary function.
type WizardItineraryRequest struct {
	DestCountry   string     `json:"destCountry"`
	DepartureCity string     `json:"departureCity"`
	StartDate     string     `json:"startDate"`
	Duration      int        `json:"duration"`
	Travellers    Travellers `json:"travellers"`
	Cities        []string   `json:"cities"`
	InterestTags  []string   `json:"interestTags"`
	Budget        string     `json:"budget"`
	Notes         string     `json:"notes"`
}

type SuggestCitiesRequest struct {
	DestCountry string `json:"destCountry"`
}

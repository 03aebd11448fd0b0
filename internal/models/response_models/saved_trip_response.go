package response_models

type DestinationCount struct {
	Destination string `json:"destination"`
	Count       int    `json:"count"`
}

type InterestCount struct {
	Interest string `json:"interest"`
	Count    int    `json:"count"`
}

type TripStatsResponse struct {
	TotalTrips           int                `json:"totalTrips"`
	TotalDays            int                `json:"totalDays"`
	FavoriteDestinations []DestinationCount `json:"favoriteDestinations"`
	FavoriteInterests    []InterestCount    `json:"favoriteInterests"`
}

// StorageUsageResponse is in kilobytes.
type StorageUsageResponse struct {
	Used       int `json:"used"`
	Available  int `json:"available"`
	Percentage int `json:"percentage"`
}

type ImportResultResponse struct {
	Imported int `json:"imported"`
}

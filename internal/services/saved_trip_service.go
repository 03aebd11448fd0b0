package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"travelai/internal/models/db_models"
	"travelai/internal/models/request_models"
	"travelai/internal/models/response_models"
	"travelai/internal/repositories"
	"travelai/pkg/utils"
)

const (
	favoriteLimit  = 5
	exportFilePfx  = "travelai_trips_"
	DefaultTripCap = 50
)

// SavedTripLimits bounds what a single client can keep.
type SavedTripLimits struct {
	Cap     int
	MaxAge  time.Duration
	QuotaKB int
}

// SavedTripObserver is told the outcome of every saved-trip operation.
type SavedTripObserver interface {
	SavedTripOp(op string, err error)
}

type SavedTripServiceInterface interface {
	SaveTrip(ctx context.Context, clientID string, trip db_models.SavedTrip) (*db_models.SavedTrip, error)
	ListTrips(ctx context.Context, clientID string) ([]db_models.SavedTrip, error)
	GetTrip(ctx context.Context, clientID, tripID string) (*db_models.SavedTrip, error)
	DeleteTrip(ctx context.Context, clientID, tripID string) error
	UpdateTrip(ctx context.Context, clientID, tripID string, patch request_models.SavedTripPatch) (*db_models.SavedTrip, error)
	SearchTrips(ctx context.Context, clientID, query string) ([]db_models.SavedTrip, error)
	TripsByDestination(ctx context.Context, clientID, destination string) ([]db_models.SavedTrip, error)
	Stats(ctx context.Context, clientID string) (*response_models.TripStatsResponse, error)
	// Export returns the client's trips as indented JSON along with a dated file name.
	Export(ctx context.Context, clientID string) ([]byte, string, error)
	Import(ctx context.Context, clientID string, data []byte) (*response_models.ImportResultResponse, error)
	ClearTrips(ctx context.Context, clientID string) error
	// Cleanup drops trips older than the configured age for every client and reports how many went.
	Cleanup(ctx context.Context) (int, error)
	Usage(ctx context.Context, clientID string) (*response_models.StorageUsageResponse, error)
}

type SavedTripService struct {
	store    repositories.SavedTripStore
	limits   SavedTripLimits
	observer SavedTripObserver
	log      zerolog.Logger
	now      func() time.Time
}

func NewSavedTripService(store repositories.SavedTripStore, limits SavedTripLimits, observer SavedTripObserver, log zerolog.Logger) SavedTripServiceInterface {
	if limits.Cap <= 0 {
		limits.Cap = DefaultTripCap
	}
	return &SavedTripService{
		store:    store,
		limits:   limits,
		observer: observer,
		log:      log,
		now:      time.Now,
	}
}

func (s *SavedTripService) SaveTrip(ctx context.Context, clientID string, trip db_models.SavedTrip) (*db_models.SavedTrip, error) {
	if strings.TrimSpace(trip.Destination) == "" && strings.TrimSpace(trip.DestCountry) == "" {
		return nil, utils.InvalidInput("destination is required")
	}
	if trip.Duration < 0 {
		return nil, utils.InvalidInput("duration cannot be negative")
	}
	if trip.ID == "" {
		trip.ID = uuid.NewString()
	}
	if trip.Destination == "" {
		trip.Destination = trip.DestCountry
	}
	now := s.now().UTC()
	if trip.CreatedAt.IsZero() {
		trip.CreatedAt = now
	}
	AnnotateItinerary(&trip.Itinerary)

	saved := trip
	_, err := s.store.Update(ctx, clientID, func(trips []db_models.SavedTrip) ([]db_models.SavedTrip, error) {
		if i := indexOfTrip(trips, trip.ID); i >= 0 {
			saved.UpdatedAt = &now
			trips[i] = saved
			return trips, nil
		}
		trips = append([]db_models.SavedTrip{saved}, trips...)
		if len(trips) > s.limits.Cap {
			trips = trips[:s.limits.Cap]
		}
		return trips, nil
	})
	if err = s.storeErr("save", clientID, err); err != nil {
		return nil, err
	}
	return &saved, nil
}

func (s *SavedTripService) ListTrips(ctx context.Context, clientID string) ([]db_models.SavedTrip, error) {
	trips, err := s.store.Load(ctx, clientID)
	if err = s.storeErr("list", clientID, err); err != nil {
		return nil, err
	}
	return trips, nil
}

func (s *SavedTripService) GetTrip(ctx context.Context, clientID, tripID string) (*db_models.SavedTrip, error) {
	trips, err := s.store.Load(ctx, clientID)
	if err = s.storeErr("get", clientID, err); err != nil {
		return nil, err
	}
	i := indexOfTrip(trips, tripID)
	if i < 0 {
		return nil, utils.ErrSavedTripNotFound
	}
	return &trips[i], nil
}

func (s *SavedTripService) DeleteTrip(ctx context.Context, clientID, tripID string) error {
	_, err := s.store.Update(ctx, clientID, func(trips []db_models.SavedTrip) ([]db_models.SavedTrip, error) {
		i := indexOfTrip(trips, tripID)
		if i < 0 {
			return nil, utils.ErrSavedTripNotFound
		}
		return append(trips[:i], trips[i+1:]...), nil
	})
	return s.storeErr("delete", clientID, err)
}

func (s *SavedTripService) UpdateTrip(ctx context.Context, clientID, tripID string, patch request_models.SavedTripPatch) (*db_models.SavedTrip, error) {
	if patch.Duration != nil && *patch.Duration < 1 {
		return nil, utils.InvalidInput("duration must be at least 1 day")
	}

	var updated db_models.SavedTrip
	_, err := s.store.Update(ctx, clientID, func(trips []db_models.SavedTrip) ([]db_models.SavedTrip, error) {
		i := indexOfTrip(trips, tripID)
		if i < 0 {
			return nil, utils.ErrSavedTripNotFound
		}
		applyPatch(&trips[i], patch)
		now := s.now().UTC()
		trips[i].UpdatedAt = &now
		updated = trips[i]
		return trips, nil
	})
	if err = s.storeErr("update", clientID, err); err != nil {
		return nil, err
	}
	return &updated, nil
}

// SearchTrips matches the query against the destination and every interest, ignoring case.
func (s *SavedTripService) SearchTrips(ctx context.Context, clientID, query string) ([]db_models.SavedTrip, error) {
	trips, err := s.ListTrips(ctx, clientID)
	if err != nil {
		return nil, err
	}
	q := strings.ToLower(query)
	out := make([]db_models.SavedTrip, 0, len(trips))
	for _, t := range trips {
		if strings.Contains(strings.ToLower(t.Destination), q) || anyContains(t.Interests, q) {
			out = append(out, t)
		}
	}
	return out, nil
}

func (s *SavedTripService) TripsByDestination(ctx context.Context, clientID, destination string) ([]db_models.SavedTrip, error) {
	trips, err := s.ListTrips(ctx, clientID)
	if err != nil {
		return nil, err
	}
	out := make([]db_models.SavedTrip, 0, len(trips))
	for _, t := range trips {
		if strings.EqualFold(t.Destination, destination) {
			out = append(out, t)
		}
	}
	return out, nil
}

func (s *SavedTripService) Stats(ctx context.Context, clientID string) (*response_models.TripStatsResponse, error) {
	trips, err := s.ListTrips(ctx, clientID)
	if err != nil {
		return nil, err
	}

	stats := &response_models.TripStatsResponse{
		TotalTrips:           len(trips),
		FavoriteDestinations: []response_models.DestinationCount{},
		FavoriteInterests:    []response_models.InterestCount{},
	}
	destinations := map[string]int{}
	interests := map[string]int{}
	for _, t := range trips {
		stats.TotalDays += t.Duration
		destinations[t.Destination]++
		for _, in := range t.Interests {
			interests[in]++
		}
	}
	for _, e := range topCounts(destinations, favoriteLimit) {
		stats.FavoriteDestinations = append(stats.FavoriteDestinations, response_models.DestinationCount{Destination: e.name, Count: e.count})
	}
	for _, e := range topCounts(interests, favoriteLimit) {
		stats.FavoriteInterests = append(stats.FavoriteInterests, response_models.InterestCount{Interest: e.name, Count: e.count})
	}
	return stats, nil
}

func (s *SavedTripService) Export(ctx context.Context, clientID string) ([]byte, string, error) {
	trips, err := s.ListTrips(ctx, clientID)
	if err != nil {
		return nil, "", err
	}
	data, err := json.MarshalIndent(trips, "", "  ")
	if err != nil {
		return nil, "", err
	}
	name := exportFilePfx + s.now().UTC().Format(utils.DateLayout) + ".json"
	return data, name, nil
}

// Import merges an exported array. Records without an id, destination, positive duration or
// itinerary are skipped; ids already present are left alone.
func (s *SavedTripService) Import(ctx context.Context, clientID string, data []byte) (*response_models.ImportResultResponse, error) {
	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, utils.InvalidInput("Invalid file format")
	}

	valid := make([]db_models.SavedTrip, 0, len(raws))
	for _, raw := range raws {
		trip, ok := decodeImported(raw)
		if ok {
			valid = append(valid, trip)
		}
	}
	if len(valid) == 0 {
		return nil, utils.ErrNoValidTrips
	}

	now := s.now().UTC()
	var dropped int
	_, err := s.store.Update(ctx, clientID, func(trips []db_models.SavedTrip) ([]db_models.SavedTrip, error) {
		dropped = 0
		for _, t := range valid {
			if indexOfTrip(trips, t.ID) >= 0 {
				continue
			}
			t.ImportedAt = &now
			trips = append(trips, t)
		}
		// Imports land at the end, so the cap drops them before any trip already saved.
		if len(trips) > s.limits.Cap {
			dropped = len(trips) - s.limits.Cap
			trips = trips[:s.limits.Cap]
		}
		return trips, nil
	})
	if err = s.storeErr("import", clientID, err); err != nil {
		return nil, err
	}
	if dropped > 0 {
		s.log.Warn().Str("client_id", clientID).Int("dropped", dropped).Int("cap", s.limits.Cap).Msg("import exceeded saved trip cap")
	}
	return &response_models.ImportResultResponse{Imported: len(valid)}, nil
}

func (s *SavedTripService) ClearTrips(ctx context.Context, clientID string) error {
	return s.storeErr("clear", clientID, s.store.Clear(ctx, clientID))
}

func (s *SavedTripService) Cleanup(ctx context.Context) (int, error) {
	if s.limits.MaxAge <= 0 {
		return 0, nil
	}
	clients, err := s.store.Clients(ctx)
	if err != nil {
		return 0, s.storeErr("cleanup", "", err)
	}

	cutoff := s.now().UTC().Add(-s.limits.MaxAge)
	removed := 0
	for _, clientID := range clients {
		dropped := 0
		_, err := s.store.Update(ctx, clientID, func(trips []db_models.SavedTrip) ([]db_models.SavedTrip, error) {
			dropped = 0
			kept := make([]db_models.SavedTrip, 0, len(trips))
			for _, t := range trips {
				if !t.CreatedAt.IsZero() && !t.CreatedAt.After(cutoff) {
					dropped++
					continue
				}
				kept = append(kept, t)
			}
			return kept, nil
		})
		if err != nil {
			return removed, s.storeErr("cleanup", clientID, err)
		}
		removed += dropped
	}
	if removed > 0 {
		s.log.Info().Int("removed", removed).Msg("cleaned up old saved trips")
	}
	return removed, nil
}

func (s *SavedTripService) Usage(ctx context.Context, clientID string) (*response_models.StorageUsageResponse, error) {
	size, err := s.store.Size(ctx, clientID)
	if err = s.storeErr("usage", clientID, err); err != nil {
		return nil, err
	}
	quota := s.limits.QuotaKB * 1024
	usage := &response_models.StorageUsageResponse{
		Used:      int(math.Round(float64(size) / 1024)),
		Available: s.limits.QuotaKB,
	}
	if quota > 0 {
		usage.Percentage = int(math.Round(float64(size) / float64(quota) * 100))
	}
	return usage, nil
}

func (s *SavedTripService) storeErr(op, clientID string, err error) error {
	return mapStoreErr(s.log, s.observer, op, clientID, err)
}

// mapStoreErr records the outcome and turns store failures into service sentinels. Errors raised
// inside a mutation are already sentinels and pass through.
func mapStoreErr(log zerolog.Logger, observer SavedTripObserver, op, clientID string, err error) error {
	if observer != nil {
		observer.SavedTripOp(op, err)
	}
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repositories.ErrConflict):
		return utils.ErrConcurrentUpdate
	case errors.Is(err, utils.ErrInvalidInput),
		errors.Is(err, utils.ErrSavedTripNotFound),
		errors.Is(err, utils.ErrDayNotFound),
		errors.Is(err, utils.ErrActivityNotFound):
		return err
	}
	log.Error().Err(err).Str("op", op).Str("client_id", clientID).Msg("saved trip store")
	return fmt.Errorf("%w: %s", utils.ErrStoreError, op)
}

func decodeImported(raw json.RawMessage) (db_models.SavedTrip, bool) {
	var probe struct {
		Itinerary json.RawMessage `json:"itinerary"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil {
		return db_models.SavedTrip{}, false
	}
	if len(probe.Itinerary) == 0 || bytes.Equal(probe.Itinerary, []byte("null")) {
		return db_models.SavedTrip{}, false
	}

	var trip db_models.SavedTrip
	if err := json.Unmarshal(raw, &trip); err != nil {
		return db_models.SavedTrip{}, false
	}
	if trip.ID == "" || trip.Destination == "" || trip.Duration <= 0 {
		return db_models.SavedTrip{}, false
	}
	return trip, true
}

func applyPatch(t *db_models.SavedTrip, p request_models.SavedTripPatch) {
	if p.Destination != nil {
		t.Destination = *p.Destination
	}
	if p.DestCountry != nil {
		t.DestCountry = *p.DestCountry
	}
	if p.DepartureCity != nil {
		t.DepartureCity = *p.DepartureCity
	}
	if p.StartDate != nil {
		t.StartDate = *p.StartDate
	}
	if p.Duration != nil {
		t.Duration = *p.Duration
	}
	if p.Budget != nil {
		t.Budget = *p.Budget
	}
	if p.Travelers != nil {
		t.Travelers = *p.Travelers
	}
	if p.Travellers != nil {
		tr := *p.Travellers
		t.Travellers = &tr
	}
	if p.Interests != nil {
		t.Interests = append([]string(nil), (*p.Interests)...)
	}
	if p.Cities != nil {
		t.Cities = append([]string(nil), (*p.Cities)...)
	}
	if p.Notes != nil {
		t.Notes = *p.Notes
	}
	if p.Itinerary != nil {
		t.Itinerary = p.Itinerary.Clone()
		AnnotateItinerary(&t.Itinerary)
	}
}

func indexOfTrip(trips []db_models.SavedTrip, id string) int {
	for i := range trips {
		if trips[i].ID == id {
			return i
		}
	}
	return -1
}

func anyContains(values []string, q string) bool {
	for _, v := range values {
		if strings.Contains(strings.ToLower(v), q) {
			return true
		}
	}
	return false
}

type nameCount struct {
	name  string
	count int
}

func topCounts(counts map[string]int, limit int) []nameCount {
	out := make([]nameCount, 0, len(counts))
	for name, n := range counts {
		out = append(out, nameCount{name, n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].count != out[j].count {
			return out[i].count > out[j].count
		}
		return out[i].name < out[j].name
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"travelai/internal/models/db_models"
	"travelai/internal/models/request_models"
	"travelai/internal/models/response_models"
	"travelai/internal/planner"
	"travelai/internal/repositories"
	mem "travelai/pkg/memcache"
	"travelai/pkg/utils"
)

var fixedNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

type opRecorder struct {
	ops []string
}

func (r *opRecorder) SavedTripOp(op string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	r.ops = append(r.ops, op+":"+outcome)
}

func newSavedTripService(t *testing.T, limits SavedTripLimits) (*SavedTripService, repositories.SavedTripStore, *opRecorder) {
	t.Helper()
	store := repositories.NewMemorySavedTripStore(mem.NewStore(), zerolog.Nop())
	rec := &opRecorder{}
	svc := NewSavedTripService(store, limits, rec, zerolog.Nop()).(*SavedTripService)
	svc.now = func() time.Time { return fixedNow }
	return svc, store, rec
}

func defaultLimits() SavedTripLimits {
	return SavedTripLimits{Cap: 50, MaxAge: 4380 * time.Hour, QuotaKB: 5120}
}

func sampleTrip(id, destination string, duration int, interests ...string) db_models.SavedTrip {
	return db_models.SavedTrip{
		ID:          id,
		Destination: destination,
		Duration:    duration,
		Interests:   interests,
		Itinerary: planner.Itinerary{
			Destination: destination,
			Duration:    duration,
			Days: []planner.DayPlan{{Day: 1, Activities: []planner.ScheduledActivity{
				{Time: "9:00 AM", Title: "Walk"},
			}}},
		},
	}
}

func TestSavedTripService_SaveUpsertsAndPrepends(t *testing.T) {
	ctx := context.Background()
	svc, _, rec := newSavedTripService(t, defaultLimits())

	first, err := svc.SaveTrip(ctx, "c1", sampleTrip("a", "Paris", 3))
	require.NoError(t, err)
	assert.True(t, fixedNow.Equal(first.CreatedAt))
	assert.Nil(t, first.UpdatedAt)
	assert.Equal(t, "1-1", first.Itinerary.Days[0].Activities[0].ID)

	_, err = svc.SaveTrip(ctx, "c1", sampleTrip("b", "Tokyo", 5))
	require.NoError(t, err)

	changed := sampleTrip("a", "Paris", 4)
	updated, err := svc.SaveTrip(ctx, "c1", changed)
	require.NoError(t, err)
	require.NotNil(t, updated.UpdatedAt)

	trips, err := svc.ListTrips(ctx, "c1")
	require.NoError(t, err)
	require.Len(t, trips, 2)
	assert.Equal(t, "b", trips[0].ID)
	assert.Equal(t, "a", trips[1].ID)
	assert.Equal(t, 4, trips[1].Duration)

	generated, err := svc.SaveTrip(ctx, "c1", db_models.SavedTrip{DestCountry: "Japan", Duration: 2})
	require.NoError(t, err)
	assert.NotEmpty(t, generated.ID)
	assert.Equal(t, "Japan", generated.Destination)

	_, err = svc.SaveTrip(ctx, "c1", db_models.SavedTrip{Duration: 2})
	assert.ErrorIs(t, err, utils.ErrInvalidInput)

	assert.Equal(t, []string{"save:ok", "save:ok", "save:ok", "list:ok", "save:ok"}, rec.ops)
}

func TestSavedTripService_CapKeepsNewest(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newSavedTripService(t, SavedTripLimits{Cap: 3})

	for i := 1; i <= 5; i++ {
		_, err := svc.SaveTrip(ctx, "c1", sampleTrip(fmt.Sprint(i), "Paris", 1))
		require.NoError(t, err)
	}
	trips, err := svc.ListTrips(ctx, "c1")
	require.NoError(t, err)
	require.Len(t, trips, 3)
	assert.Equal(t, []string{"5", "4", "3"}, []string{trips[0].ID, trips[1].ID, trips[2].ID})
}

func TestSavedTripService_ClientsAreIsolated(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newSavedTripService(t, defaultLimits())

	_, err := svc.SaveTrip(ctx, "c1", sampleTrip("a", "Paris", 3))
	require.NoError(t, err)

	_, err = svc.GetTrip(ctx, "c2", "a")
	assert.ErrorIs(t, err, utils.ErrSavedTripNotFound)
	got, err := svc.GetTrip(ctx, "c1", "a")
	require.NoError(t, err)
	assert.Equal(t, "Paris", got.Destination)
}

func TestSavedTripService_UpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newSavedTripService(t, defaultLimits())
	_, err := svc.SaveTrip(ctx, "c1", sampleTrip("a", "Paris", 3, "art"))
	require.NoError(t, err)

	notes := "bring umbrella"
	days := 5
	updated, err := svc.UpdateTrip(ctx, "c1", "a", request_models.SavedTripPatch{Notes: &notes, Duration: &days})
	require.NoError(t, err)
	assert.Equal(t, "bring umbrella", updated.Notes)
	assert.Equal(t, 5, updated.Duration)
	assert.Equal(t, "Paris", updated.Destination)
	assert.Equal(t, []string{"art"}, updated.Interests)
	require.NotNil(t, updated.UpdatedAt)
	assert.True(t, fixedNow.Equal(*updated.UpdatedAt))

	_, err = svc.UpdateTrip(ctx, "c1", "missing", request_models.SavedTripPatch{Notes: &notes})
	assert.ErrorIs(t, err, utils.ErrSavedTripNotFound)

	zero := 0
	_, err = svc.UpdateTrip(ctx, "c1", "a", request_models.SavedTripPatch{Duration: &zero})
	assert.ErrorIs(t, err, utils.ErrInvalidInput)

	require.NoError(t, svc.DeleteTrip(ctx, "c1", "a"))
	assert.ErrorIs(t, svc.DeleteTrip(ctx, "c1", "a"), utils.ErrSavedTripNotFound)
}

func TestSavedTripService_SearchAndFilter(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newSavedTripService(t, defaultLimits())
	for _, trip := range []db_models.SavedTrip{
		sampleTrip("1", "Paris", 3, "art", "food"),
		sampleTrip("2", "Tokyo", 5, "Photography"),
		sampleTrip("3", "paris", 2),
	} {
		_, err := svc.SaveTrip(ctx, "c1", trip)
		require.NoError(t, err)
	}

	found, err := svc.SearchTrips(ctx, "c1", "PAR")
	require.NoError(t, err)
	assert.Len(t, found, 2)

	found, err = svc.SearchTrips(ctx, "c1", "photo")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "2", found[0].ID)

	found, err = svc.SearchTrips(ctx, "c1", "nothing")
	require.NoError(t, err)
	assert.Empty(t, found)

	byDest, err := svc.TripsByDestination(ctx, "c1", "Paris")
	require.NoError(t, err)
	assert.Len(t, byDest, 2)
}

func TestSavedTripService_Stats(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newSavedTripService(t, defaultLimits())

	empty, err := svc.Stats(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, 0, empty.TotalTrips)
	assert.NotNil(t, empty.FavoriteDestinations)

	for i, dest := range []string{"Paris", "Tokyo", "Paris", "Rome", "Lima", "Oslo", "Bern", "Tokyo", "Paris"} {
		_, err := svc.SaveTrip(ctx, "c1", sampleTrip(fmt.Sprint(i), dest, 2, "food"))
		require.NoError(t, err)
	}
	stats, err := svc.Stats(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, 9, stats.TotalTrips)
	assert.Equal(t, 18, stats.TotalDays)
	assert.Equal(t, []response_models.DestinationCount{
		{Destination: "Paris", Count: 3},
		{Destination: "Tokyo", Count: 2},
		{Destination: "Bern", Count: 1},
		{Destination: "Lima", Count: 1},
		{Destination: "Oslo", Count: 1},
	}, stats.FavoriteDestinations)
	require.Len(t, stats.FavoriteInterests, 1)
	assert.Equal(t, 9, stats.FavoriteInterests[0].Count)
}

func TestSavedTripService_ExportImport(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newSavedTripService(t, defaultLimits())
	_, err := svc.SaveTrip(ctx, "c1", sampleTrip("a", "Paris", 3))
	require.NoError(t, err)

	data, name, err := svc.Export(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, "travelai_trips_2025-06-15.json", name)
	assert.Contains(t, string(data), "\n  {")

	result, err := svc.Import(ctx, "c2", data)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Imported)
	imported, err := svc.GetTrip(ctx, "c2", "a")
	require.NoError(t, err)
	require.NotNil(t, imported.ImportedAt)

	mixed := `[
		{"id":"a","destination":"Paris","duration":3,"itinerary":{"days":[]}},
		{"id":"b","destination":"Rome","duration":2,"itinerary":{"days":[]}},
		{"id":"c","destination":"Rome","duration":0,"itinerary":{"days":[]}},
		{"id":"d","destination":"Rome","duration":2},
		{"id":"e","destination":"Rome","duration":2,"itinerary":null},
		{"destination":"Rome","duration":2,"itinerary":{}}
	]`
	result, err = svc.Import(ctx, "c1", []byte(mixed))
	require.NoError(t, err)
	assert.Equal(t, 2, result.Imported)

	trips, err := svc.ListTrips(ctx, "c1")
	require.NoError(t, err)
	require.Len(t, trips, 2)
	assert.Equal(t, "b", trips[1].ID)
	assert.Nil(t, trips[0].ImportedAt)

	_, err = svc.Import(ctx, "c1", []byte(`{"id":"x"}`))
	assert.ErrorIs(t, err, utils.ErrInvalidInput)
	_, err = svc.Import(ctx, "c1", []byte(`[{"id":"x"}]`))
	assert.ErrorIs(t, err, utils.ErrNoValidTrips)
}

func TestSavedTripService_ImportRespectsCap(t *testing.T) {
	ctx := context.Background()
	limits := defaultLimits()
	limits.Cap = 3
	svc, _, _ := newSavedTripService(t, limits)
	for _, id := range []string{"a", "b"} {
		_, err := svc.SaveTrip(ctx, "c1", sampleTrip(id, "Paris", 2))
		require.NoError(t, err)
	}

	file := `[
		{"id":"x","destination":"Rome","duration":2,"itinerary":{"days":[]}},
		{"id":"y","destination":"Oslo","duration":2,"itinerary":{"days":[]}},
		{"id":"z","destination":"Lima","duration":2,"itinerary":{"days":[]}}
	]`
	result, err := svc.Import(ctx, "c1", []byte(file))
	require.NoError(t, err)
	assert.Equal(t, 3, result.Imported)

	trips, err := svc.ListTrips(ctx, "c1")
	require.NoError(t, err)
	require.Len(t, trips, 3)
	assert.Equal(t, []string{"b", "a", "x"}, []string{trips[0].ID, trips[1].ID, trips[2].ID})
}

func TestSavedTripService_CleanupAndClear(t *testing.T) {
	ctx := context.Background()
	svc, store, _ := newSavedTripService(t, defaultLimits())

	old := sampleTrip("old", "Paris", 3)
	old.CreatedAt = fixedNow.AddDate(0, -7, 0)
	recent := sampleTrip("recent", "Rome", 3)
	recent.CreatedAt = fixedNow.AddDate(0, -1, 0)
	for _, client := range []string{"c1", "c2"} {
		_, err := store.Update(ctx, client, func(_ []db_models.SavedTrip) ([]db_models.SavedTrip, error) {
			return []db_models.SavedTrip{recent, old}, nil
		})
		require.NoError(t, err)
	}

	removed, err := svc.Cleanup(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, removed)
	trips, err := svc.ListTrips(ctx, "c2")
	require.NoError(t, err)
	require.Len(t, trips, 1)
	assert.Equal(t, "recent", trips[0].ID)

	require.NoError(t, svc.ClearTrips(ctx, "c1"))
	trips, err = svc.ListTrips(ctx, "c1")
	require.NoError(t, err)
	assert.Empty(t, trips)
}

func TestSavedTripService_Usage(t *testing.T) {
	ctx := context.Background()
	svc, store, _ := newSavedTripService(t, SavedTripLimits{QuotaKB: 10})

	usage, err := svc.Usage(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, 0, usage.Used)
	assert.Equal(t, 10, usage.Available)

	big := sampleTrip("a", "Paris", 1)
	big.Notes = strings.Repeat("x", 3000)
	_, err = svc.SaveTrip(ctx, "c1", big)
	require.NoError(t, err)

	size, err := store.Size(ctx, "c1")
	require.NoError(t, err)
	usage, err = svc.Usage(ctx, "c1")
	require.NoError(t, err)
	assert.Greater(t, size, int64(3000))
	assert.Equal(t, int(float64(size)/1024+0.5), usage.Used)
	assert.Equal(t, int(float64(size)/10240*100+0.5), usage.Percentage)
}

type failingStore struct {
	repositories.SavedTripStore
	err error
}

func (f failingStore) Load(context.Context, string) ([]db_models.SavedTrip, error) {
	return nil, f.err
}

func (f failingStore) Update(context.Context, string, repositories.SavedTripMutator) ([]db_models.SavedTrip, error) {
	return nil, f.err
}

func TestSavedTripService_StoreErrors(t *testing.T) {
	ctx := context.Background()

	svc := NewSavedTripService(failingStore{err: errors.New("boom")}, defaultLimits(), nil, zerolog.Nop())
	_, err := svc.ListTrips(ctx, "c1")
	assert.ErrorIs(t, err, utils.ErrStoreError)

	svc = NewSavedTripService(failingStore{err: repositories.ErrConflict}, defaultLimits(), nil, zerolog.Nop())
	_, err = svc.SaveTrip(ctx, "c1", sampleTrip("a", "Paris", 1))
	assert.ErrorIs(t, err, utils.ErrConcurrentUpdate)
}

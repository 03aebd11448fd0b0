package services

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"travelai/internal/models/request_models"
	"travelai/internal/planner"
	"travelai/pkg/utils"
)

func newBoard(t *testing.T) (BoardServiceInterface, *SavedTripService) {
	t.Helper()
	trips, store, rec := newSavedTripService(t, defaultLimits())
	board := NewBoardService(store, trips, rec, zerolog.Nop()).(*BoardService)
	board.now = func() time.Time { return fixedNow }
	return board, trips
}

func generatedTrip(t *testing.T, svc *SavedTripService) string {
	t.Helper()
	it, err := newItineraryService(&generationRecorder{}).Generate(context.Background(), request_models.GenerateItineraryRequest{Destination: "Paris", Duration: 3})
	require.NoError(t, err)
	trip := sampleTrip("trip", "Paris", 3)
	trip.Itinerary = *it
	_, err = svc.SaveTrip(context.Background(), "c1", trip)
	require.NoError(t, err)
	return trip.ID
}

func TestBoardService_CreateBlankTrip(t *testing.T) {
	board, trips := newBoard(t)

	blank, err := board.CreateBlankTrip(context.Background(), "c1")
	require.NoError(t, err)
	assert.Equal(t, "New Destination", blank.DestCountry)
	assert.Equal(t, 7, blank.Duration)
	require.NotNil(t, blank.Travellers)
	assert.Equal(t, 2, blank.Travellers.Adults)
	assert.Equal(t, "2025-06-15", blank.StartDate)
	require.Len(t, blank.Itinerary.Days, 7)
	for i, day := range blank.Itinerary.Days {
		assert.Equal(t, i+1, day.Day)
		assert.Equal(t, "City", day.City)
		assert.Empty(t, day.Activities)
	}

	stored, err := trips.GetTrip(context.Background(), "c1", blank.ID)
	require.NoError(t, err)
	assert.Equal(t, blank.ID, stored.ID)
}

func TestBoardService_MoveActivity(t *testing.T) {
	ctx := context.Background()
	board, trips := newBoard(t)
	id := generatedTrip(t, trips)

	moved, err := board.MoveActivity(ctx, "c1", id, request_models.MoveActivityRequest{ActivityID: "1-2", TargetDay: 3})
	require.NoError(t, err)
	assert.Len(t, moved.Itinerary.Days[0].Activities, 5)
	day3 := moved.Itinerary.Days[2].Activities
	require.Len(t, day3, 7)
	assert.Equal(t, "1-2", day3[6].ID)
	require.NotNil(t, moved.UpdatedAt)

	_, err = board.MoveActivity(ctx, "c1", id, request_models.MoveActivityRequest{ActivityID: "1-3", TargetDay: 9})
	assert.ErrorIs(t, err, utils.ErrDayNotFound)
	stored, err := trips.GetTrip(ctx, "c1", id)
	require.NoError(t, err)
	assert.Len(t, stored.Itinerary.Days[0].Activities, 5)
	assert.Equal(t, "1-3", stored.Itinerary.Days[0].Activities[1].ID)

	_, err = board.MoveActivity(ctx, "c1", id, request_models.MoveActivityRequest{ActivityID: "9-9", TargetDay: 1})
	assert.ErrorIs(t, err, utils.ErrActivityNotFound)
	_, err = board.MoveActivity(ctx, "c1", "missing", request_models.MoveActivityRequest{ActivityID: "1-1", TargetDay: 1})
	assert.ErrorIs(t, err, utils.ErrSavedTripNotFound)
}

func TestBoardService_AddEditDelete(t *testing.T) {
	ctx := context.Background()
	board, trips := newBoard(t)
	id := generatedTrip(t, trips)

	added, err := board.AddActivity(ctx, "c1", id, request_models.AddActivityRequest{Day: 2, Title: " Picnic "})
	require.NoError(t, err)
	assert.Equal(t, "2-1749988800000", added.ID)
	assert.Equal(t, "Picnic", added.Title)
	assert.Equal(t, "9:00 AM", added.Time)
	assert.Equal(t, "1 hour", added.Duration)
	assert.Equal(t, planner.StatusPlanned, added.Status)

	_, err = board.AddActivity(ctx, "c1", id, request_models.AddActivityRequest{Day: 2, Title: "  "})
	assert.ErrorIs(t, err, utils.ErrInvalidInput)
	_, err = board.AddActivity(ctx, "c1", id, request_models.AddActivityRequest{Day: 8, Title: "Late"})
	assert.ErrorIs(t, err, utils.ErrDayNotFound)

	where := "Luxembourg Gardens"
	edited, err := board.EditActivity(ctx, "c1", id, added.ID, request_models.EditActivityRequest{Location: &where})
	require.NoError(t, err)
	assert.Equal(t, "Luxembourg Gardens", edited.Location)
	assert.Equal(t, "Picnic", edited.Title)

	empty := ""
	_, err = board.EditActivity(ctx, "c1", id, added.ID, request_models.EditActivityRequest{Title: &empty})
	assert.ErrorIs(t, err, utils.ErrInvalidInput)

	require.NoError(t, board.DeleteActivity(ctx, "c1", id, added.ID))
	assert.ErrorIs(t, board.DeleteActivity(ctx, "c1", id, added.ID), utils.ErrActivityNotFound)

	stored, err := trips.GetTrip(ctx, "c1", id)
	require.NoError(t, err)
	assert.Len(t, stored.Itinerary.Days[1].Activities, 6)
}

func TestBoardService_AddActivity_SameMillisecondGetsDistinctIDs(t *testing.T) {
	ctx := context.Background()
	board, trips := newBoard(t)
	id := generatedTrip(t, trips)

	first, err := board.AddActivity(ctx, "c1", id, request_models.AddActivityRequest{Day: 1, Title: "A"})
	require.NoError(t, err)
	second, err := board.AddActivity(ctx, "c1", id, request_models.AddActivityRequest{Day: 1, Title: "B"})
	require.NoError(t, err)
	third, err := board.AddActivity(ctx, "c1", id, request_models.AddActivityRequest{Day: 1, Title: "C"})
	require.NoError(t, err)

	assert.Equal(t, "1-1749988800000", first.ID)
	assert.Equal(t, "1-1749988800000-2", second.ID)
	assert.Equal(t, "1-1749988800000-3", third.ID)

	require.NoError(t, board.DeleteActivity(ctx, "c1", id, second.ID))

	stored, err := trips.GetTrip(ctx, "c1", id)
	require.NoError(t, err)
	var titles []string
	for _, a := range stored.Itinerary.Days[0].Activities {
		titles = append(titles, a.Title)
	}
	assert.Contains(t, titles, "A")
	assert.Contains(t, titles, "C")
	assert.NotContains(t, titles, "B")
}

func TestBoardService_UpdateActivityStatus(t *testing.T) {
	ctx := context.Background()
	board, trips := newBoard(t)
	id := generatedTrip(t, trips)

	updated, err := board.UpdateActivityStatus(ctx, "c1", id, "2-4", request_models.UpdateActivityStatusRequest{Status: "Confirmed"})
	require.NoError(t, err)
	assert.Equal(t, planner.StatusConfirmed, updated.Status)

	_, err = board.UpdateActivityStatus(ctx, "c1", id, "2-4", request_models.UpdateActivityStatusRequest{Status: "cancelled"})
	assert.ErrorIs(t, err, utils.ErrInvalidInput)

	stored, err := trips.GetTrip(ctx, "c1", id)
	require.NoError(t, err)
	assert.Equal(t, planner.StatusConfirmed, stored.Itinerary.Days[1].Activities[3].Status)
}

package repositories

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	dbm "travelai/internal/models/db_models"
	mem "travelai/pkg/memcache"
)

func newRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return mr, rdb
}

func storesUnderTest(t *testing.T) map[string]SavedTripStore {
	_, rdb := newRedis(t)
	return map[string]SavedTripStore{
		"redis":  NewRedisSavedTripStore(rdb, zerolog.Nop()),
		"memory": NewMemorySavedTripStore(mem.NewStore(), zerolog.Nop()),
	}
}

func prepend(trip dbm.SavedTrip) SavedTripMutator {
	return func(trips []dbm.SavedTrip) ([]dbm.SavedTrip, error) {
		return append([]dbm.SavedTrip{trip}, trips...), nil
	}
}

func TestSavedTripStore(t *testing.T) {
	ctx := context.Background()
	for name, store := range storesUnderTest(t) {
		t.Run(name, func(t *testing.T) {
			trips, err := store.Load(ctx, "alice")
			require.NoError(t, err)
			assert.Empty(t, trips)
			assert.NotNil(t, trips)

			created := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)
			_, err = store.Update(ctx, "alice", prepend(dbm.SavedTrip{ID: "1", Destination: "Paris", Duration: 3, CreatedAt: created}))
			require.NoError(t, err)
			stored, err := store.Update(ctx, "alice", prepend(dbm.SavedTrip{ID: "2", Destination: "Tokyo", Duration: 5, CreatedAt: created}))
			require.NoError(t, err)
			assert.Equal(t, []string{"2", "1"}, []string{stored[0].ID, stored[1].ID})

			trips, err = store.Load(ctx, "alice")
			require.NoError(t, err)
			require.Len(t, trips, 2)
			assert.Equal(t, "Tokyo", trips[0].Destination)
			assert.True(t, created.Equal(trips[1].CreatedAt))

			boom := errors.New("boom")
			_, err = store.Update(ctx, "alice", func([]dbm.SavedTrip) ([]dbm.SavedTrip, error) { return nil, boom })
			assert.ErrorIs(t, err, boom)
			trips, _ = store.Load(ctx, "alice")
			assert.Len(t, trips, 2)

			size, err := store.Size(ctx, "alice")
			require.NoError(t, err)
			assert.Greater(t, size, int64(0))

			_, err = store.Update(ctx, "bob", prepend(dbm.SavedTrip{ID: "3", Destination: "Rome", Duration: 1}))
			require.NoError(t, err)
			clients, err := store.Clients(ctx)
			require.NoError(t, err)
			assert.ElementsMatch(t, []string{"alice", "bob"}, clients)

			require.NoError(t, store.Clear(ctx, "alice"))
			trips, err = store.Load(ctx, "alice")
			require.NoError(t, err)
			assert.Empty(t, trips)
		})
	}
}

func TestSavedTripStore_ConcurrentUpdates(t *testing.T) {
	ctx := context.Background()
	for name, store := range storesUnderTest(t) {
		t.Run(name, func(t *testing.T) {
			var wg sync.WaitGroup
			errs := make(chan error, 4)
			for i := 0; i < 4; i++ {
				wg.Add(1)
				go func(i int) {
					defer wg.Done()
					_, err := store.Update(ctx, "carol", prepend(dbm.SavedTrip{ID: string(rune('a' + i)), Destination: "Lima", Duration: 2}))
					errs <- err
				}(i)
			}
			wg.Wait()
			close(errs)

			ok := 0
			for err := range errs {
				if err == nil {
					ok++
				} else {
					assert.ErrorIs(t, err, ErrConflict)
				}
			}
			trips, err := store.Load(ctx, "carol")
			require.NoError(t, err)
			assert.Len(t, trips, ok)
		})
	}
}

func TestSavedTripStore_CorruptDocumentIsReplaced(t *testing.T) {
	ctx := context.Background()
	mr, rdb := newRedis(t)
	require.NoError(t, mr.Set(savedTripKey("dave"), "{not json"))
	memory := mem.NewStore()
	memory.Set(savedTripKey("dave"), []byte("{not json"), 0)

	var logs bytes.Buffer
	log := zerolog.New(&logs)
	stores := map[string]SavedTripStore{
		"redis":  NewRedisSavedTripStore(rdb, log),
		"memory": NewMemorySavedTripStore(memory, log),
	}
	for name, store := range stores {
		t.Run(name, func(t *testing.T) {
			logs.Reset()
			trips, err := store.Load(ctx, "dave")
			require.NoError(t, err)
			assert.Empty(t, trips)
			assert.Contains(t, logs.String(), "discarding unreadable saved trips document")

			stored, err := store.Update(ctx, "dave", prepend(dbm.SavedTrip{ID: "fresh", Destination: "Rome", Duration: 2}))
			require.NoError(t, err)
			require.Len(t, stored, 1)

			trips, err = store.Load(ctx, "dave")
			require.NoError(t, err)
			require.Len(t, trips, 1)
			assert.Equal(t, "fresh", trips[0].ID)
		})
	}
}

func TestTokenDenylist(t *testing.T) {
	ctx := context.Background()
	mr, rdb := newRedis(t)

	lists := map[string]TokenDenylist{
		"redis":  NewRedisTokenDenylist(rdb),
		"memory": NewMemoryTokenDenylist(mem.NewStore()),
	}
	for name, list := range lists {
		t.Run(name, func(t *testing.T) {
			revoked, err := list.IsRevoked(ctx, "jti-1")
			require.NoError(t, err)
			assert.False(t, revoked)

			require.NoError(t, list.Revoke(ctx, "jti-1", time.Minute))
			require.NoError(t, list.Revoke(ctx, "jti-2", 0))

			revoked, err = list.IsRevoked(ctx, "jti-1")
			require.NoError(t, err)
			assert.True(t, revoked)

			revoked, err = list.IsRevoked(ctx, "jti-2")
			require.NoError(t, err)
			assert.False(t, revoked)
		})
	}

	mr.FastForward(2 * time.Minute)
	revoked, err := lists["redis"].IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked)
}

package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	dbm "travelai/internal/models/db_models"
	mem "travelai/pkg/memcache"
)

const (
	SavedTripKeyPrefix = "travelai_saved_trips:"
	maxWatchRetries    = 5
)

// SavedTripMutator receives a client's trips and returns the list to store. Returning an error
// leaves the stored list unchanged.
type SavedTripMutator func(trips []dbm.SavedTrip) ([]dbm.SavedTrip, error)

// SavedTripStore keeps one JSON array of trips per client, newest first.
type SavedTripStore interface {
	Load(ctx context.Context, clientID string) ([]dbm.SavedTrip, error)
	// Update applies fn atomically and returns the stored list.
	Update(ctx context.Context, clientID string, fn SavedTripMutator) ([]dbm.SavedTrip, error)
	Clear(ctx context.Context, clientID string) error
	// Size is the encoded size of the client's document in bytes.
	Size(ctx context.Context, clientID string) (int64, error)
	Clients(ctx context.Context) ([]string, error)
}

func savedTripKey(clientID string) string {
	return SavedTripKeyPrefix + clientID
}

// decodeTrips reads a stored document. A document that does not parse is logged and read as an
// empty list, so the next write replaces it instead of locking the client out.
func decodeTrips(log zerolog.Logger, clientID string, raw []byte) []dbm.SavedTrip {
	if len(raw) == 0 {
		return []dbm.SavedTrip{}
	}
	var trips []dbm.SavedTrip
	if err := json.Unmarshal(raw, &trips); err != nil {
		log.Warn().Err(err).Str("client_id", clientID).Int("bytes", len(raw)).Msg("discarding unreadable saved trips document")
		return []dbm.SavedTrip{}
	}
	if trips == nil {
		trips = []dbm.SavedTrip{}
	}
	return trips
}

func encodeTrips(trips []dbm.SavedTrip) ([]byte, error) {
	if trips == nil {
		trips = []dbm.SavedTrip{}
	}
	return json.Marshal(trips)
}

type redisSavedTripStore struct {
	rdb *redis.Client
	log zerolog.Logger
}

func NewRedisSavedTripStore(rdb *redis.Client, log zerolog.Logger) SavedTripStore {
	return &redisSavedTripStore{rdb: rdb, log: log}
}

func (s *redisSavedTripStore) Load(ctx context.Context, clientID string) ([]dbm.SavedTrip, error) {
	raw, err := s.rdb.Get(ctx, savedTripKey(clientID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return []dbm.SavedTrip{}, nil
		}
		return nil, err
	}
	return decodeTrips(s.log, clientID, raw), nil
}

func (s *redisSavedTripStore) Update(ctx context.Context, clientID string, fn SavedTripMutator) ([]dbm.SavedTrip, error) {
	key := savedTripKey(clientID)
	var stored []dbm.SavedTrip

	txf := func(tx *redis.Tx) error {
		raw, err := tx.Get(ctx, key).Bytes()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		next, err := fn(decodeTrips(s.log, clientID, raw))
		if err != nil {
			return err
		}
		encoded, err := encodeTrips(next)
		if err != nil {
			return err
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, encoded, 0)
			return nil
		})
		if err == nil {
			stored = next
		}
		return err
	}

	for i := 0; i < maxWatchRetries; i++ {
		err := s.rdb.Watch(ctx, txf, key)
		if err == nil {
			return stored, nil
		}
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		return nil, err
	}
	return nil, ErrConflict
}

func (s *redisSavedTripStore) Clear(ctx context.Context, clientID string) error {
	return s.rdb.Set(ctx, savedTripKey(clientID), "[]", 0).Err()
}

func (s *redisSavedTripStore) Size(ctx context.Context, clientID string) (int64, error) {
	return s.rdb.StrLen(ctx, savedTripKey(clientID)).Result()
}

func (s *redisSavedTripStore) Clients(ctx context.Context) ([]string, error) {
	var clients []string
	iter := s.rdb.Scan(ctx, 0, SavedTripKeyPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		clients = append(clients, strings.TrimPrefix(iter.Val(), SavedTripKeyPrefix))
	}
	if err := iter.Err(); err != nil {
		return nil, err
	}
	return clients, nil
}

type memorySavedTripStore struct {
	store *mem.Store
	log   zerolog.Logger
}

func NewMemorySavedTripStore(store *mem.Store, log zerolog.Logger) SavedTripStore {
	return &memorySavedTripStore{store: store, log: log}
}

func (s *memorySavedTripStore) Load(_ context.Context, clientID string) ([]dbm.SavedTrip, error) {
	raw, _ := s.store.Get(savedTripKey(clientID))
	return decodeTrips(s.log, clientID, raw), nil
}

func (s *memorySavedTripStore) Update(_ context.Context, clientID string, fn SavedTripMutator) ([]dbm.SavedTrip, error) {
	var stored []dbm.SavedTrip
	err := s.store.Update(savedTripKey(clientID), func(current []byte, _ bool) ([]byte, error) {
		next, err := fn(decodeTrips(s.log, clientID, current))
		if err != nil {
			return nil, err
		}
		encoded, err := encodeTrips(next)
		if err != nil {
			return nil, err
		}
		stored = next
		return encoded, nil
	})
	if err != nil {
		return nil, err
	}
	return stored, nil
}

func (s *memorySavedTripStore) Clear(_ context.Context, clientID string) error {
	s.store.Set(savedTripKey(clientID), []byte("[]"), 0)
	return nil
}

func (s *memorySavedTripStore) Size(_ context.Context, clientID string) (int64, error) {
	raw, _ := s.store.Get(savedTripKey(clientID))
	return int64(len(raw)), nil
}

func (s *memorySavedTripStore) Clients(_ context.Context) ([]string, error) {
	keys := s.store.Keys(SavedTripKeyPrefix)
	clients := make([]string, len(keys))
	for i, k := range keys {
		clients[i] = strings.TrimPrefix(k, SavedTripKeyPrefix)
	}
	return clients, nil
}

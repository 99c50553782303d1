package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Store is a small read-through cache over redis for rendered lookups
// (currently the QA detail endpoint). A nil Store degrades to plain DB
// reads, so a missing or unreachable redis never breaks requests.
type Store struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewStore(rdb *redis.Client, ttl time.Duration) *Store {
	return &Store{rdb: rdb, ttl: ttl}
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, bool) {
	if s == nil || s.rdb == nil {
		return nil, false
	}
	val, err := s.rdb.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	return val, true
}

func (s *Store) Set(ctx context.Context, key string, val []byte) {
	if s == nil || s.rdb == nil {
		return
	}
	// Best effort; a write failure only costs the next read a DB trip.
	s.rdb.Set(ctx, key, val, s.ttl)
}

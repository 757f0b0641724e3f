package storage

import (
	"context"
	"time"

	"github.com/coursemind/landing-forms/pkg/metrics"
	gocache "github.com/patrickmn/go-cache"
)

// MemoryStore keeps values for the life of the process
type MemoryStore struct {
	cache *gocache.Cache
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{cache: gocache.New(gocache.NoExpiration, 0)}
}

func (s *MemoryStore) Get(ctx context.Context, key string) (string, bool, error) {
	start := time.Now()
	if err := ctx.Err(); err != nil {
		metrics.ObserveStorage("get", start, err)
		return "", false, err
	}

	data, found := s.cache.Get(key)
	metrics.ObserveStorage("get", start, nil)
	if !found {
		return "", false, nil
	}
	value, ok := data.(string)
	if !ok {
		s.cache.Delete(key)
		return "", false, nil
	}
	return value, true, nil
}

func (s *MemoryStore) Set(ctx context.Context, key, value string) error {
	start := time.Now()
	if err := ctx.Err(); err != nil {
		metrics.ObserveStorage("set", start, err)
		return err
	}

	s.cache.Set(key, value, gocache.NoExpiration)
	metrics.ObserveStorage("set", start, nil)
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.cache.Delete(key)
	return nil
}

// Close drops every stored value
func (s *MemoryStore) Close() error {
	s.cache.Flush()
	return nil
}

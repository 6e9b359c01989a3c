package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"pokedex/pkg/platform/sentinel"
)

type MemoryCacheSuite struct {
	suite.Suite
	cache *MemoryCache
	now   time.Time
	ctx   context.Context
}

func TestMemoryCacheSuite(t *testing.T) {
	suite.Run(t, new(MemoryCacheSuite))
}

func (s *MemoryCacheSuite) SetupTest() {
	s.now = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	s.cache = NewMemoryCache()
	s.cache.now = func() time.Time { return s.now }
	s.ctx = context.Background()
}

func (s *MemoryCacheSuite) TestGetSet() {
	s.Run("miss returns ErrNotFound", func() {
		_, err := s.cache.Get(s.ctx, "pokemon:1")
		s.ErrorIs(err, sentinel.ErrNotFound)
	})

	s.Run("stored value is returned before expiry", func() {
		s.Require().NoError(s.cache.Set(s.ctx, "pokemon:1", []byte("bulbasaur"), time.Minute))
		value, err := s.cache.Get(s.ctx, "pokemon:1")
		s.Require().NoError(err)
		s.Equal([]byte("bulbasaur"), value)
	})

	s.Run("non-positive ttl stores nothing", func() {
		s.Require().NoError(s.cache.Set(s.ctx, "pokemon:2", []byte("ivysaur"), 0))
		_, err := s.cache.Get(s.ctx, "pokemon:2")
		s.ErrorIs(err, sentinel.ErrNotFound)
	})
}

func (s *MemoryCacheSuite) TestExpiry() {
	s.Require().NoError(s.cache.Set(s.ctx, "pokemon:4", []byte("charmander"), time.Minute))

	s.now = s.now.Add(time.Minute)
	_, err := s.cache.Get(s.ctx, "pokemon:4")
	s.ErrorIs(err, sentinel.ErrNotFound)
	s.Equal(0, s.cache.Len(), "expired entries are evicted on read")
}

func (s *MemoryCacheSuite) TestCapacity() {
	s.Run("full cache drops the entry closest to expiry", func() {
		cache := NewMemoryCache(WithMaxEntries(2))
		cache.now = func() time.Time { return s.now }

		s.Require().NoError(cache.Set(s.ctx, "pokemon:1", []byte("bulbasaur"), time.Hour))
		s.Require().NoError(cache.Set(s.ctx, "pokemon:2", []byte("ivysaur"), time.Minute))
		s.Require().NoError(cache.Set(s.ctx, "pokemon:3", []byte("venusaur"), time.Hour))

		s.Equal(2, cache.Len())
		_, err := cache.Get(s.ctx, "pokemon:2")
		s.ErrorIs(err, sentinel.ErrNotFound)
		_, err = cache.Get(s.ctx, "pokemon:1")
		s.NoError(err)
	})

	s.Run("expired entries are swept before live ones are dropped", func() {
		cache := NewMemoryCache(WithMaxEntries(3))
		cache.now = func() time.Time { return s.now }

		s.Require().NoError(cache.Set(s.ctx, "pokemon:4", []byte("charmander"), time.Minute))
		s.Require().NoError(cache.Set(s.ctx, "pokemon:5", []byte("charmeleon"), time.Minute))
		s.Require().NoError(cache.Set(s.ctx, "pokemon:6", []byte("charizard"), time.Hour))

		later := s.now.Add(2 * time.Minute)
		cache.now = func() time.Time { return later }
		s.Require().NoError(cache.Set(s.ctx, "pokemon:7", []byte("squirtle"), time.Hour))

		s.Equal(2, cache.Len())
		_, err := cache.Get(s.ctx, "pokemon:6")
		s.NoError(err)
	})

	s.Run("overwriting a key never evicts", func() {
		cache := NewMemoryCache(WithMaxEntries(1))
		cache.now = func() time.Time { return s.now }

		s.Require().NoError(cache.Set(s.ctx, "pokemon:25", []byte("pika"), time.Minute))
		s.Require().NoError(cache.Set(s.ctx, "pokemon:25", []byte("pikachu"), time.Minute))

		value, err := cache.Get(s.ctx, "pokemon:25")
		s.Require().NoError(err)
		s.Equal([]byte("pikachu"), value)
	})

	s.Run("non-positive cap keeps the default", func() {
		s.Equal(DefaultMemoryCacheEntries, NewMemoryCache(WithMaxEntries(0)).maxEntries)
	})
}

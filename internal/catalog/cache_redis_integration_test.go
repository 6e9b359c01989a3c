//go:build integration

package catalog_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"pokedex/internal/catalog"
	"pokedex/pkg/platform/sentinel"
	"pokedex/pkg/testutil/containers"
)

type RedisCacheSuite struct {
	suite.Suite
	redis *containers.RedisContainer
	cache *catalog.RedisCache
}

func TestRedisCacheSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(RedisCacheSuite))
}

func (s *RedisCacheSuite) SetupSuite() {
	s.redis = containers.NewRedisContainer(s.T())
	s.cache = catalog.NewRedisCache(s.redis.Client)
}

func (s *RedisCacheSuite) SetupTest() {
	s.Require().NoError(s.redis.FlushAll(context.Background()))
}

func (s *RedisCacheSuite) TestRoundTrip() {
	ctx := context.Background()

	_, err := s.cache.Get(ctx, "pokemon:25")
	s.ErrorIs(err, sentinel.ErrNotFound)

	s.Require().NoError(s.cache.Set(ctx, "pokemon:25", []byte(`{"id":25}`), time.Minute))
	value, err := s.cache.Get(ctx, "pokemon:25")
	s.Require().NoError(err)
	s.Equal(`{"id":25}`, string(value))

	ttl, err := s.redis.Client.TTL(ctx, "pokedex:catalog:pokemon:25").Result()
	s.Require().NoError(err)
	s.Greater(ttl, time.Duration(0))
}

func (s *RedisCacheSuite) TestExpiry() {
	ctx := context.Background()
	s.Require().NoError(s.cache.Set(ctx, "pokemon:1", []byte("x"), 50*time.Millisecond))

	s.Eventually(func() bool {
		_, err := s.cache.Get(ctx, "pokemon:1")
		return err != nil
	}, 2*time.Second, 25*time.Millisecond)
}

package service

import (
	"context"
	"errors"
	"time"

	"github.com/willinthon-tech/maquinas/internal/catalogo"
	"github.com/willinthon-tech/maquinas/internal/infra"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const opcionesPrefijo = "opciones:"

// OpcionesCache stores serialized option lists per table. Every method is
// best effort: a cache failure only means the next read goes to the database.
type OpcionesCache interface {
	Get(ctx context.Context, tabla string) ([]byte, bool)
	Set(ctx context.Context, tabla string, data []byte)
	// Invalidar drops every cached list. Option lists embed names from other
	// tables (branch options carry the group name), so any write clears all.
	Invalidar(ctx context.Context)
}

type sinCache struct{}

// SinCache is the cache used when Redis is not configured.
func SinCache() OpcionesCache { return sinCache{} }

func (sinCache) Get(context.Context, string) ([]byte, bool) { return nil, false }
func (sinCache) Set(context.Context, string, []byte)        {}
func (sinCache) Invalidar(context.Context)                  {}

type redisCache struct {
	rdb *redis.Client
	cb  *infra.CircuitBreaker
	ttl time.Duration
}

// NewOpcionesCache returns a Redis backed cache guarded by cb. A nil client
// disables caching.
func NewOpcionesCache(rdb *redis.Client, cb *infra.CircuitBreaker, ttl time.Duration) OpcionesCache {
	if rdb == nil {
		return SinCache()
	}
	if cb == nil {
		cb = infra.NewCircuitBreaker(infra.DefaultCBConfig("redis"))
	}
	return &redisCache{rdb: rdb, cb: cb, ttl: ttl}
}

func (c *redisCache) Get(ctx context.Context, tabla string) ([]byte, bool) {
	var data []byte
	err := c.cb.Execute(func() error {
		b, err := c.rdb.Get(ctx, opcionesPrefijo+tabla).Bytes()
		if errors.Is(err, redis.Nil) {
			return nil
		}
		data = b
		return err
	})
	if err != nil {
		log.Debug().Err(err).Str("tabla", tabla).Msg("opciones cache get")
		return nil, false
	}
	return data, data != nil
}

func (c *redisCache) Set(ctx context.Context, tabla string, data []byte) {
	err := c.cb.Execute(func() error {
		return c.rdb.Set(ctx, opcionesPrefijo+tabla, data, c.ttl).Err()
	})
	if err != nil {
		log.Debug().Err(err).Str("tabla", tabla).Msg("opciones cache set")
	}
}

func (c *redisCache) Invalidar(ctx context.Context) {
	keys := make([]string, 0, len(catalogo.Todas())+1)
	for _, t := range append(catalogo.Todas(), catalogo.Pianas) {
		keys = append(keys, opcionesPrefijo+t.String())
	}
	err := c.cb.Execute(func() error {
		return c.rdb.Del(ctx, keys...).Err()
	})
	if err != nil {
		// stale lists expire with the TTL
		log.Warn().Err(err).Msg("opciones cache invalidation failed")
	}
}

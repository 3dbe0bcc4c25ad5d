package service

import (
	"Lexnet/internal/pkg/redis"
	"context"
	"strconv"
	"time"
)

const counterCacheTTL = 7 * 24 * time.Hour

// CounterCache fronts hot counter reads and the dirty-set bookkeeping that
// feeds the audit job. Failures are swallowed: the relational store stays the
// source of truth.
type CounterCache interface {
	GetCount(ctx context.Context, key string) (int64, bool)
	SetCount(ctx context.Context, key string, value int64)
	Invalidate(ctx context.Context, keys ...string)
	MarkDirty(ctx context.Context, set string, id uint64)
}

type redisCounterCache struct{}

func NewCounterCache() CounterCache {
	return &redisCounterCache{}
}

func (redisCounterCache) GetCount(ctx context.Context, key string) (int64, bool) {
	v, err := redis.GetInt64(ctx, key)
	if err != nil {
		return 0, false
	}
	return v, true
}

func (redisCounterCache) SetCount(ctx context.Context, key string, value int64) {
	_ = redis.SetWithExpiration(ctx, key, value, counterCacheTTL)
}

func (redisCounterCache) Invalidate(ctx context.Context, keys ...string) {
	_ = redis.DeleteKey(ctx, keys...)
}

func (redisCounterCache) MarkDirty(ctx context.Context, set string, id uint64) {
	_ = redis.SAdd(ctx, set, strconv.FormatUint(id, 10))
}

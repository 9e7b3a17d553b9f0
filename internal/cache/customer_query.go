package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v9"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/rihla/customer-queries/internal/model"
)

const cachedQueryTimeToLive = 10 * time.Minute

// CustomerQueryCacheRepository is a by-id cache of customer query records.
// Entries are evicted on every mutation, which together with the client's
// full re-fetch is the system's only resync mechanism
type CustomerQueryCacheRepository interface {
	FindByID(ctx context.Context, id string) (*model.CustomerQuery, error)
	Create(ctx context.Context, q *model.CustomerQuery) error
	DeleteByID(ctx context.Context, id string) error
}

type redisCustomerQueryCache struct {
	client *redis.Client
}

// NewRedisCustomerQueryCache builds redis-backed CustomerQueryCacheRepository
func NewRedisCustomerQueryCache(client *redis.Client) CustomerQueryCacheRepository {
	return &redisCustomerQueryCache{client: client}
}

func (r *redisCustomerQueryCache) FindByID(ctx context.Context, id string) (*model.CustomerQuery, error) {
	res, err := r.client.Get(ctx, r.key(id)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var q model.CustomerQuery
	if err := msgpack.Unmarshal([]byte(res), &q); err != nil {
		return nil, err
	}
	return &q, nil
}

func (r *redisCustomerQueryCache) Create(ctx context.Context, q *model.CustomerQuery) error {
	encoded, err := msgpack.Marshal(q)
	if err != nil {
		return err
	}

	if _, err := r.client.SetNX(ctx, r.key(q.ID), encoded, cachedQueryTimeToLive).Result(); err != nil {
		return err
	}
	return nil
}

func (r *redisCustomerQueryCache) DeleteByID(ctx context.Context, id string) error {
	if _, err := r.client.Del(ctx, r.key(id)).Result(); err != nil {
		return err
	}
	return nil
}

func (r *redisCustomerQueryCache) key(id string) string {
	return fmt.Sprintf("customerQuery:%s", id)
}

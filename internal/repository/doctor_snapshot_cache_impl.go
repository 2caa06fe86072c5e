package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go-doctor-directory/internal/domain/entity"
	domainRepo "go-doctor-directory/internal/domain/repository"

	"github.com/redis/go-redis/v9"
)

const RedisSnapshotKey = "doctors:snapshot"

// ErrCacheMiss is returned by SnapshotCache.Get when nothing is stored.
var ErrCacheMiss = errors.New("doctor snapshot not cached")

type redisSnapshotCache struct {
	client redis.Cmdable
	ttl    time.Duration
}

func NewRedisSnapshotCache(client redis.Cmdable, ttl time.Duration) domainRepo.SnapshotCache {
	return &redisSnapshotCache{
		client: client,
		ttl:    ttl,
	}
}

func (c *redisSnapshotCache) Get(ctx context.Context) ([]entity.Doctor, error) {
	data, err := c.client.Get(ctx, RedisSnapshotKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, fmt.Errorf("get doctor snapshot: %w", err)
	}

	var doctors []entity.Doctor
	if err := json.Unmarshal(data, &doctors); err != nil {
		return nil, fmt.Errorf("decode doctor snapshot: %w", err)
	}
	return doctors, nil
}

func (c *redisSnapshotCache) Set(ctx context.Context, doctors []entity.Doctor) error {
	data, err := json.Marshal(doctors)
	if err != nil {
		return fmt.Errorf("encode doctor snapshot: %w", err)
	}
	if err := c.client.Set(ctx, RedisSnapshotKey, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("set doctor snapshot: %w", err)
	}
	return nil
}

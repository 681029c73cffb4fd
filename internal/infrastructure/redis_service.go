package infrastructure

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
)

const listingCacheTTL = 5 * time.Minute

// RedisService caches public listing reads. It is a read-side accelerator
// only; a nil service (no REDIS_HOST configured) disables caching and every
// call becomes a no-op miss.
type RedisService struct {
	client *redis.Client
}

func NewRedisService(host, port, password string, db int) *RedisService {
	if host == "" {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", host, port),
		Password: password,
		DB:       db,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Printf("redis unavailable, caching disabled: %v", err)
		return nil
	}

	return &RedisService{client: client}
}

func (r *RedisService) GetListings(ctx context.Context, key string, dest interface{}) bool {
	if r == nil {
		return false
	}
	data, err := r.client.Get(ctx, "listings:"+key).Result()
	if err != nil {
		return false
	}
	if err := json.Unmarshal([]byte(data), dest); err != nil {
		return false
	}
	return true
}

func (r *RedisService) SetListings(ctx context.Context, key string, value interface{}) {
	if r == nil {
		return
	}
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := r.client.Set(ctx, "listings:"+key, data, listingCacheTTL).Err(); err != nil {
		log.Printf("failed to cache listings %q: %v", key, err)
	}
}

// InvalidateListings drops every cached listing read. Called after each
// listing mutation so the next read hits the database.
func (r *RedisService) InvalidateListings(ctx context.Context) {
	if r == nil {
		return
	}
	iter := r.client.Scan(ctx, 0, "listings:*", 0).Iterator()
	for iter.Next(ctx) {
		if err := r.client.Del(ctx, iter.Val()).Err(); err != nil {
			log.Printf("failed to invalidate %q: %v", iter.Val(), err)
		}
	}
	if err := iter.Err(); err != nil {
		log.Printf("failed to scan listing cache keys, stale entries may remain: %v", err)
	}
}

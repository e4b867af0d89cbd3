// Package events forwards change notifications to Redis pub/sub so that
// subscribers outside the process can refresh their views.
package events

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const publishTimeout = 2 * time.Second

type RedisClient struct {
	Client *redis.Client
}

func NewRedisClient(host, password string, db int) *RedisClient {
	return &RedisClient{
		Client: redis.NewClient(&redis.Options{
			Addr:         host,
			Password:     password,
			DB:           db,
			PoolSize:     10,
			MinIdleConns: 2,
			MaxRetries:   3,
			DialTimeout:  5 * time.Second,
			ReadTimeout:  3 * time.Second,
			WriteTimeout: 3 * time.Second,
		}),
	}
}

func (r *RedisClient) Connect(ctx context.Context) error {
	log.Info().Str("addr", r.Client.Options().Addr).Msg("Connecting to Redis")

	if err := r.Client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}

	log.Info().Msg("Redis connected")
	return nil
}

func (r *RedisClient) Close() error {
	if r.Client != nil {
		return r.Client.Close()
	}
	return nil
}

// Publisher is the subset of the Redis client used to broadcast changes.
type Publisher interface {
	Publish(ctx context.Context, channel string, message interface{}) *redis.IntCmd
}

// ChangeFeed is an observer that publishes every kind tag on a channel.
// Publish failures are logged; the mutation that triggered them has already
// been committed.
type ChangeFeed struct {
	publisher Publisher
	channel   string
}

func NewChangeFeed(publisher Publisher, channel string) *ChangeFeed {
	return &ChangeFeed{publisher: publisher, channel: channel}
}

// Update implements observer.Observer.
func (f *ChangeFeed) Update(kind string) {
	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()

	if err := f.publisher.Publish(ctx, f.channel, kind).Err(); err != nil {
		log.Warn().
			Err(err).
			Str("channel", f.channel).
			Str("kind", kind).
			Msg("Failed to publish change")
		return
	}

	log.Debug().Str("channel", f.channel).Str("kind", kind).Msg("Change published")
}

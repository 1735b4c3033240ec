package session

import (
	"context"
	"fmt"
	"time"

	"github.com/bytedance/sonic"
	"github.com/cloudwego/eino/schema"
	"github.com/redis/go-redis/v9"
)

// storedHistory is the Redis value shape.
type storedHistory struct {
	Messages []*schema.Message `json:"messages"`
}

// RedisStore keeps histories in Redis with a sliding TTL. Session
// state expires on its own; nothing here is durable storage.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore connects to Redis and verifies the connection.
func NewRedisStore(ctx context.Context, redisURL string, ttl time.Duration) (*RedisStore, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis URL: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisStore{client: client, ttl: ttl}, nil
}

func (r *RedisStore) Load(ctx context.Context, sessionID string) ([]*schema.Message, error) {
	key := sessionKey(sessionID)
	data, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return []*schema.Message{}, nil
		}
		return nil, fmt.Errorf("failed to load session history: %w", err)
	}

	var history storedHistory
	if err := sonic.Unmarshal([]byte(data), &history); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session history: %w", err)
	}

	// Refresh TTL on read so active sessions stay alive.
	r.client.Expire(ctx, key, r.ttl)
	return history.Messages, nil
}

func (r *RedisStore) Save(ctx context.Context, sessionID string, history []*schema.Message) error {
	data, err := sonic.Marshal(storedHistory{Messages: history})
	if err != nil {
		return fmt.Errorf("failed to marshal session history: %w", err)
	}

	return r.client.Set(ctx, sessionKey(sessionID), data, r.ttl).Err()
}

// HealthCheck pings the backing Redis instance.
func (r *RedisStore) HealthCheck(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func sessionKey(sessionID string) string {
	return "session:" + sessionID
}

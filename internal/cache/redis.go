package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Domenick1991/dentaltrip/config"
	"github.com/Domenick1991/dentaltrip/internal/domain"
	"github.com/Domenick1991/dentaltrip/internal/estimate"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// releaseScript deletes the lock only if it still holds the caller's token.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

type RedisCache struct {
	client     *redis.Client
	sessionTTL time.Duration
}

func NewRedisCache(cfg config.RedisConfig, sessionTTL time.Duration) *RedisCache {
	return NewRedisCacheWithClient(
		redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		sessionTTL,
	)
}

func NewRedisCacheWithClient(client *redis.Client, sessionTTL time.Duration) *RedisCache {
	return &RedisCache{client: client, sessionTTL: sessionTTL}
}

func (c *RedisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}

func (c *RedisCache) GetSession(ctx context.Context, id string) (*estimate.Session, error) {
	data, err := c.client.Get(ctx, sessionKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, fmt.Errorf("%w: %s", domain.ErrSessionNotFound, id)
		}
		return nil, err
	}

	var s estimate.Session
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("decode session %s: %w", id, err)
	}
	return &s, nil
}

// SaveSession writes the session and restarts its expiry.
func (c *RedisCache) SaveSession(ctx context.Context, s *estimate.Session) error {
	payload, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, sessionKey(s.ID), payload, c.sessionTTL).Err()
}

// AcquireSessionLock returns a token when the lock was taken, or "" when
// another writer holds it.
func (c *RedisCache) AcquireSessionLock(ctx context.Context, id string, ttl time.Duration) (string, error) {
	token := uuid.NewString()
	ok, err := c.client.SetNX(ctx, sessionLockKey(id), token, ttl).Result()
	if err != nil {
		return "", err
	}
	if !ok {
		return "", nil
	}
	return token, nil
}

func (c *RedisCache) ReleaseSessionLock(ctx context.Context, id, token string) error {
	return releaseScript.Run(ctx, c.client, []string{sessionLockKey(id)}, token).Err()
}

func sessionKey(id string) string {
	return "estimate:session:" + id
}

func sessionLockKey(id string) string {
	return fmt.Sprintf("lock:estimate:%s", id)
}

package cartstore

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"jersey-storefront/internal/domain/cart"
	"jersey-storefront/internal/infra"

	"github.com/redis/go-redis/v9"
)

// RedisBackend stores each session's cart as one JSON document under <prefix>:<session id>.
// Every save refreshes the key TTL.
type RedisBackend struct {
	client redis.Cmdable
	prefix string
	ttl    time.Duration
	logger *slog.Logger
}

func NewRedisBackend(client redis.Cmdable, prefix string, ttl time.Duration, logger *slog.Logger) *RedisBackend {
	return &RedisBackend{
		client: client,
		prefix: prefix,
		ttl:    ttl,
		logger: logger,
	}
}

func (b *RedisBackend) ForSession(sessionID string) cart.Store {
	return &redisStore{backend: b, key: b.key(sessionID)}
}

func (b *RedisBackend) key(sessionID string) string {
	return b.prefix + ":" + sessionID
}

type redisStore struct {
	backend *RedisBackend
	key     string
}

func (s *redisStore) Load(ctx context.Context) ([]cart.Line, error) {
	data, err := s.backend.client.Get(ctx, s.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to read cart", err, infra.KindCacheFailure)
	}

	lines, dropped, err := decodeLines(data)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode cart", err, infra.KindDecodeFailure)
	}
	if dropped > 0 {
		s.backend.logger.WarnContext(ctx, "dropped unreadable cart lines",
			slog.String("key", s.key),
			slog.Int("dropped", dropped))
	}
	return lines, nil
}

func (s *redisStore) Save(ctx context.Context, lines []cart.Line) error {
	if len(lines) == 0 {
		if err := s.backend.client.Del(ctx, s.key).Err(); err != nil {
			return infra.WrapRepoErr("failed to delete cart", err, infra.KindCacheFailure)
		}
		return nil
	}

	data, err := encodeLines(lines)
	if err != nil {
		return infra.WrapRepoErr("failed to encode cart", err, infra.KindDecodeFailure)
	}
	if err := s.backend.client.Set(ctx, s.key, data, s.backend.ttl).Err(); err != nil {
		return infra.WrapRepoErr("failed to write cart", err, infra.KindCacheFailure)
	}
	return nil
}

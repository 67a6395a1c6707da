package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/zarshop/storefront/internal/core/domain"
	"github.com/zarshop/storefront/internal/core/port"
)

var _ port.SessionStore = (*RedisStore)(nil)

const keyPrefix = "session:"

// RedisStore keeps sessions as JSON values under "session:<token>"
// keys with a fixed TTL.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(
	ctx context.Context, addr string, ttl time.Duration,
) (RedisStore, error) {
	const op = "RedisStore"
	log := slog.With("op", op)

	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(ctx).Err(); err != nil {
		return RedisStore{}, fmt.Errorf(
			"%s: session store is unavailable: %w", op, err,
		)
	}
	log.Info("session store is available")
	return RedisStore{client: client, ttl: ttl}, nil
}

func (s RedisStore) Ping(ctx context.Context) error {
	const op = "RedisStore.Ping"

	if err := s.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s RedisStore) StoreSession(
	ctx context.Context, v domain.Session,
) error {
	const op = "RedisStore.StoreSession"

	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	err = s.client.Set(ctx, keyPrefix+v.Token, data, s.ttl).Err()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s RedisStore) Session(
	ctx context.Context, token string,
) (domain.Session, error) {
	const op = "RedisStore.Session"

	data, err := s.client.Get(ctx, keyPrefix+token).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return domain.Session{}, fmt.Errorf(
				"%s: %w", op, domain.ErrNotFound,
			)
		}
		return domain.Session{}, fmt.Errorf("%s: %w", op, err)
	}

	var v domain.Session
	if err := json.Unmarshal(data, &v); err != nil {
		return domain.Session{}, fmt.Errorf("%s: %w", op, err)
	}
	return v, nil
}

func (s RedisStore) DeleteSession(ctx context.Context, token string) error {
	const op = "RedisStore.DeleteSession"

	if err := s.client.Del(ctx, keyPrefix+token).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s RedisStore) Close() {
	const op = "RedisStore.Close"
	log := slog.With("op", op)

	if err := s.client.Close(); err != nil {
		log.Error("failed to close", "err", err)
		return
	}
	log.Info("session store is closed")
}

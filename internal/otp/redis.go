package otp

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// RedisStore keeps boarding codes in Redis so every node sees the same code.
// Keys carry the TTL; Verify deletes on success to enforce single use.
type RedisStore struct {
	rdb *goredis.Client
}

func NewRedisStore(addr string) (*RedisStore, error) {
	rdb := goredis.NewClient(&goredis.Options{Addr: addr})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis: %w", err)
	}
	log.Println("connected to Redis")
	return &RedisStore{rdb: rdb}, nil
}

func key(scheduleID string) string {
	return "otp:schedule:" + scheduleID
}

func (s *RedisStore) Generate(ctx context.Context, scheduleID string) (string, error) {
	code, err := NewCode()
	if err != nil {
		return "", err
	}
	if err := s.rdb.Set(ctx, key(scheduleID), code, TTL).Err(); err != nil {
		return "", err
	}
	return code, nil
}

func (s *RedisStore) Verify(ctx context.Context, scheduleID, code string) error {
	stored, err := s.rdb.Get(ctx, key(scheduleID)).Result()
	if errors.Is(err, goredis.Nil) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	if stored != code {
		return ErrMismatch
	}
	return s.rdb.Del(ctx, key(scheduleID)).Err()
}

func (s *RedisStore) Close() error { return s.rdb.Close() }

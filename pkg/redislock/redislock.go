package redislock

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	// ErrNotAcquired возвращается, когда блокировка уже занята другим процессом
	ErrNotAcquired = errors.New("redislock: lock is held by another process")
)

// Locker распределённая блокировка на базе Redis (SET NX + TTL)
// Используется при создании записи, чтобы два инстанса сервиса
// не обрабатывали один и тот же слот одновременно
type Locker struct {
	client *redis.Client
}

// New создает Locker и проверяет соединение с Redis
func New(addr string, password string, db int) (*Locker, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redislock: ping redis: %w", err)
	}

	return &Locker{client: client}, nil
}

// Lock пытается взять блокировку с указанным TTL
// Возвращает ErrNotAcquired, если ключ уже занят
func (l *Locker) Lock(ctx context.Context, key string, ttl time.Duration) error {
	ok, err := l.client.SetNX(ctx, lockKey(key), "1", ttl).Result()
	if err != nil {
		return fmt.Errorf("redislock: setnx: %w", err)
	}
	if !ok {
		return ErrNotAcquired
	}
	return nil
}

// Unlock снимает блокировку
func (l *Locker) Unlock(ctx context.Context, key string) error {
	if err := l.client.Del(ctx, lockKey(key)).Err(); err != nil {
		return fmt.Errorf("redislock: del: %w", err)
	}
	return nil
}

// Close закрывает соединение с Redis
func (l *Locker) Close() error {
	return l.client.Close()
}

func lockKey(key string) string {
	return fmt.Sprintf("lock:%s", key)
}

// Package lock provides per-owner mutual exclusion for the dashboard
// refresh, so two concurrent views of the same owner cannot interleave
// their 7-day upsert loops.
package lock

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type Locker interface {
	// Acquire blocks until the key is held or ctx is done. The returned
	// function releases the lock.
	Acquire(ctx context.Context, key string) (func(), error)
}

// RedisLocker implements Locker with SET NX and a TTL, for deployments
// running more than one API instance.
type RedisLocker struct {
	client *redis.Client
	ttl    time.Duration
	retry  time.Duration
}

func NewRedis(client *redis.Client) *RedisLocker {
	return &RedisLocker{client: client, ttl: 10 * time.Second, retry: 50 * time.Millisecond}
}

func (l *RedisLocker) Acquire(ctx context.Context, key string) (func(), error) {
	token := uuid.NewString()
	for {
		ok, err := l.client.SetNX(ctx, key, token, l.ttl).Result()
		if err != nil {
			return nil, err
		}
		if ok {
			break
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(l.retry):
		}
	}
	release := func() {
		// Only delete the lock if we still own it; an expired lock may
		// have been re-acquired by another request.
		val, err := l.client.Get(context.Background(), key).Result()
		if err == nil && val == token {
			l.client.Del(context.Background(), key)
		}
	}
	return release, nil
}

// LocalLocker is an in-process keyed mutex, enough for a single API
// instance and for tests.
type LocalLocker struct {
	mu   sync.Mutex
	keys map[string]*sync.Mutex
}

func NewLocal() *LocalLocker {
	return &LocalLocker{keys: make(map[string]*sync.Mutex)}
}

func (l *LocalLocker) Acquire(_ context.Context, key string) (func(), error) {
	l.mu.Lock()
	m, ok := l.keys[key]
	if !ok {
		m = &sync.Mutex{}
		l.keys[key] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock, nil
}

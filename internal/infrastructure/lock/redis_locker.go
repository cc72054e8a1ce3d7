// Package lock bloqueo distribuido sobre Redis para serializar operaciones por orden
// entre varias instancias de la API.
package lock

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bsm/redislock"
	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/gestion-api/internal/application/purchasing"
)

// ErrDisabled Redis no está configurado.
var ErrDisabled = errors.New("lock: redis no configurado")

var _ purchasing.OrderLocker = (*RedisLocker)(nil)

// RedisLocker implementa purchasing.OrderLocker con bsm/redislock.
type RedisLocker struct {
	client *redislock.Client
	ttl    time.Duration
	wait   time.Duration
}

// NewRedisLocker rdb puede ser nil; en ese caso Lock devuelve ErrDisabled y el
// llamador continúa solo con el bloqueo de fila de la base de datos.
func NewRedisLocker(rdb redis.UniversalClient, ttl time.Duration) *RedisLocker {
	if ttl <= 0 {
		ttl = 10 * time.Second
	}
	l := &RedisLocker{ttl: ttl, wait: ttl}
	if rdb != nil {
		l.client = redislock.New(rdb)
	}
	return l
}

// Lock intenta obtener key reintentando cada 50ms hasta agotar el TTL.
func (l *RedisLocker) Lock(ctx context.Context, key string) (func(), error) {
	if l == nil || l.client == nil {
		return nil, ErrDisabled
	}
	ctx, cancel := context.WithTimeout(ctx, l.wait)
	defer cancel()

	lk, err := l.client.Obtain(ctx, key, l.ttl, &redislock.Options{
		RetryStrategy: redislock.LinearBackoff(50 * time.Millisecond),
	})
	if errors.Is(err, redislock.ErrNotObtained) {
		return nil, fmt.Errorf("lock %s: ocupado tras %s: %w", key, l.wait, err)
	}
	if err != nil {
		return nil, fmt.Errorf("lock %s: %w", key, err)
	}
	return func() {
		_ = lk.Release(context.Background())
	}, nil
}

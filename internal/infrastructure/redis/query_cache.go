// Package redis implementa la caché de vistas filtradas sobre Redis, compartida entre réplicas.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	goredis "github.com/go-redis/redis/v8"
	"github.com/jhoicas/neocommerce-api/internal/application/ports"
)

var _ ports.QueryCache = (*QueryCache)(nil)

const keyPrefix = "neocommerce:catalog:query:"

// QueryCache guarda los IDs de cada vista como JSON con TTL.
type QueryCache struct {
	client goredis.Cmdable
	ttl    time.Duration
}

// NewClient abre el cliente y comprueba la conexión con un PING de 5 s.
func NewClient(ctx context.Context, addr, password string, db int) (*goredis.Client, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis: ping %s: %w", addr, err)
	}
	return client, nil
}

// NewQueryCache construye la caché sobre un cliente ya conectado.
func NewQueryCache(client goredis.Cmdable, ttl time.Duration) *QueryCache {
	return &QueryCache{client: client, ttl: ttl}
}

// Get devuelve los IDs memoizados; ok=false si la clave no existe.
func (c *QueryCache) Get(ctx context.Context, key string) ([]string, bool, error) {
	raw, err := c.client.Get(ctx, keyPrefix+key).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("redis: get: %w", err)
	}
	var ids []string
	if err := json.Unmarshal(raw, &ids); err != nil {
		return nil, false, fmt.Errorf("redis: decodificar vista: %w", err)
	}
	return ids, true, nil
}

// Set guarda los IDs con el TTL configurado (0 = sin expiración).
func (c *QueryCache) Set(ctx context.Context, key string, ids []string) error {
	if ids == nil {
		ids = []string{}
	}
	raw, err := json.Marshal(ids)
	if err != nil {
		return fmt.Errorf("redis: codificar vista: %w", err)
	}
	if err := c.client.Set(ctx, keyPrefix+key, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis: set: %w", err)
	}
	return nil
}

package cache

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"cineai/internal/config"

	"github.com/redis/go-redis/v9"
)

var client *redis.Client

// InitRedis conecta el cache de resultados. Es opcional: si no hay
// REDIS_ADDR configurado, o el ping falla, el cache queda deshabilitado
// y los helpers se vuelven no-ops (el motor funciona igual, solo que
// recalcula cada ranking).
func InitRedis(cfg *config.Config) {
	if cfg.RedisAddr == "" {
		log.Println("[cache] Redis no configurado, cache deshabilitado")
		return
	}

	c := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPass,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := c.Ping(ctx).Err(); err != nil {
		log.Printf("[cache] Redis no responde (%v), cache deshabilitado", err)
		return
	}

	client = c
	log.Println("[cache] Redis OK.")
}

// =======================================================
//  Helpers JSON para usar desde los servicios
// =======================================================

// GetJSON lee una key de Redis, si existe deserializa el JSON en `dest`.
func GetJSON(ctx context.Context, key string, dest any) (bool, error) {
	if client == nil {
		return false, nil
	}

	val, err := client.Get(ctx, key).Result()
	if err == redis.Nil {
		// no existe la clave
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if err := json.Unmarshal([]byte(val), dest); err != nil {
		return false, err
	}
	return true, nil
}

// SetJSON serializa `value` a JSON y lo guarda en Redis con TTL en segundos.
func SetJSON(ctx context.Context, key string, value any, ttlSeconds int) error {
	if client == nil {
		return nil
	}

	b, err := json.Marshal(value)
	if err != nil {
		return err
	}

	ttl := time.Duration(ttlSeconds) * time.Second
	return client.Set(ctx, key, b, ttl).Err()
}

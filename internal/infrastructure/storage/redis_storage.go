package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/Roster-api/internal/domain"
	"github.com/jhoicas/Roster-api/internal/domain/repository"
)

var _ repository.SnapshotStorage = (*RedisStorage)(nil)

const redisKeyPrefix = "roster:"

// RedisStorage guarda cada slot como un string en Redis bajo "roster:<key>".
type RedisStorage struct {
	redis *redis.Client
}

// NewRedisStorage construye el adaptador.
func NewRedisStorage(client *redis.Client) *RedisStorage {
	return &RedisStorage{redis: client}
}

// NewRedisClient abre el cliente y verifica la conexión.
func NewRedisClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}

// Load lee el slot.
func (s *RedisStorage) Load(ctx context.Context, key string) ([]byte, error) {
	result, err := s.redis.Get(ctx, redisKeyPrefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrSnapshotNotFound
		}
		return nil, fmt.Errorf("get snapshot: %w", err)
	}
	return result, nil
}

// Save escribe el slot sin expiración.
func (s *RedisStorage) Save(ctx context.Context, key string, payload []byte) error {
	if err := s.redis.Set(ctx, redisKeyPrefix+key, payload, 0).Err(); err != nil {
		return fmt.Errorf("set snapshot: %w", err)
	}
	return nil
}

// Package persistence elige el storage del snapshot según STORAGE_DRIVER.
package persistence

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/jhoicas/Roster-api/internal/domain/repository"
	"github.com/jhoicas/Roster-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Roster-api/internal/infrastructure/storage"
	"github.com/jhoicas/Roster-api/pkg/config"
)

// Open abre el storage configurado. closeFn libera conexiones y nunca es nil.
func Open(ctx context.Context, cfg *config.Config, log zerolog.Logger) (repository.SnapshotStorage, func(), error) {
	noop := func() {}
	switch cfg.Storage.Driver {
	case config.StorageMemory:
		log.Warn().Msg("storage en memoria: los cambios no sobreviven al reinicio")
		return storage.NewMemoryStorage(), noop, nil

	case config.StorageRedis:
		client, err := storage.NewRedisClient(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			return nil, noop, fmt.Errorf("conexión a Redis: %w", err)
		}
		log.Info().Str("addr", cfg.Redis.Addr).Msg("storage redis")
		return storage.NewRedisStorage(client), func() { _ = client.Close() }, nil

	case config.StoragePostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, noop, fmt.Errorf("conexión a PostgreSQL: %w", err)
		}
		repo := postgres.NewSnapshotRepository(pool)
		if err := repo.EnsureSchema(ctx); err != nil {
			pool.Close()
			return nil, noop, err
		}
		log.Info().Str("db", cfg.DB.DBName).Msg("storage postgres")
		return repo, pool.Close, nil

	case config.StorageFile, "":
		log.Info().Str("path", cfg.Storage.Path).Msg("storage en archivos")
		return storage.NewOSFileStorage(cfg.Storage.Path), noop, nil
	}
	return nil, noop, fmt.Errorf("storage desconocido %q", cfg.Storage.Driver)
}

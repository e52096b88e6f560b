package repository

import (
	"context"
	"time"
)

// SnapshotStorage define el puerto de persistencia del estado serializado (DIP).
// Cada snapshot vive en un slot con nombre; Load devuelve domain.ErrSnapshotNotFound si el slot está vacío.
type SnapshotStorage interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, payload []byte) error
}

// SnapshotRevision versión anterior de un slot.
type SnapshotRevision struct {
	Revision  int64
	Key       string
	Payload   []byte
	CreatedAt time.Time
}

// SnapshotHistory storages que conservan las últimas revisiones de cada slot.
type SnapshotHistory interface {
	Revisions(ctx context.Context, key string, limit int) ([]SnapshotRevision, error)
}

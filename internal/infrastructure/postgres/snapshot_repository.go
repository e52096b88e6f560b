package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Roster-api/internal/domain"
	"github.com/jhoicas/Roster-api/internal/domain/repository"
)

var (
	_ repository.SnapshotStorage = (*SnapshotRepo)(nil)
	_ repository.SnapshotHistory = (*SnapshotRepo)(nil)
)

// DefaultKeepRevisions revisiones conservadas por slot.
const DefaultKeepRevisions = 20

const createSnapshotsTable = `
	CREATE TABLE IF NOT EXISTS roster_snapshots (
		key        TEXT PRIMARY KEY,
		payload    JSONB NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`

const createRevisionsTable = `
	CREATE TABLE IF NOT EXISTS roster_snapshot_revisions (
		revision   BIGSERIAL PRIMARY KEY,
		key        TEXT NOT NULL,
		payload    JSONB NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);
	CREATE INDEX IF NOT EXISTS roster_snapshot_revisions_key_idx
		ON roster_snapshot_revisions (key, revision DESC)`

// SnapshotRepo implementación del puerto SnapshotStorage sobre PostgreSQL: una fila por slot
// más las últimas revisiones de cada uno.
type SnapshotRepo struct {
	pool *pgxpool.Pool
	tx   *TxRunner
	keep int
}

// NewSnapshotRepository construye el adaptador de persistencia para snapshots.
func NewSnapshotRepository(pool *pgxpool.Pool) *SnapshotRepo {
	return &SnapshotRepo{pool: pool, tx: NewTxRunner(pool), keep: DefaultKeepRevisions}
}

// EnsureSchema crea las tablas si no existen.
func (r *SnapshotRepo) EnsureSchema(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, createSnapshotsTable); err != nil {
		return fmt.Errorf("create roster_snapshots: %w", err)
	}
	if _, err := r.pool.Exec(ctx, createRevisionsTable); err != nil {
		return fmt.Errorf("create roster_snapshot_revisions: %w", err)
	}
	return nil
}

// Load obtiene el payload del slot.
func (r *SnapshotRepo) Load(ctx context.Context, key string) ([]byte, error) {
	var payload []byte
	err := r.pool.QueryRow(ctx, `SELECT payload FROM roster_snapshots WHERE key = $1`, key).Scan(&payload)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrSnapshotNotFound
		}
		return nil, fmt.Errorf("get snapshot: %w", err)
	}
	return payload, nil
}

// Save reemplaza el payload del slot y registra la revisión en la misma transacción.
func (r *SnapshotRepo) Save(ctx context.Context, key string, payload []byte) error {
	return r.tx.Run(ctx, func(q Querier) error {
		upsert := `
			INSERT INTO roster_snapshots (key, payload, updated_at)
			VALUES ($1, $2, now())
			ON CONFLICT (key) DO UPDATE SET payload = EXCLUDED.payload, updated_at = EXCLUDED.updated_at`
		if _, err := q.Exec(ctx, upsert, key, string(payload)); err != nil {
			return fmt.Errorf("upsert snapshot: %w", err)
		}
		if _, err := q.Exec(ctx,
			`INSERT INTO roster_snapshot_revisions (key, payload) VALUES ($1, $2)`, key, string(payload)); err != nil {
			return fmt.Errorf("insert revision: %w", err)
		}
		prune := `
			DELETE FROM roster_snapshot_revisions
			WHERE key = $1 AND revision NOT IN (
				SELECT revision FROM roster_snapshot_revisions WHERE key = $1 ORDER BY revision DESC LIMIT $2
			)`
		if _, err := q.Exec(ctx, prune, key, r.keep); err != nil {
			return fmt.Errorf("prune revisions: %w", err)
		}
		return nil
	})
}

// Revisions devuelve las últimas revisiones del slot, la más reciente primero.
func (r *SnapshotRepo) Revisions(ctx context.Context, key string, limit int) ([]repository.SnapshotRevision, error) {
	if limit <= 0 || limit > r.keep {
		limit = r.keep
	}
	rows, err := r.pool.Query(ctx, `
		SELECT revision, key, payload, created_at
		FROM roster_snapshot_revisions
		WHERE key = $1
		ORDER BY revision DESC
		LIMIT $2`, key, limit)
	if err != nil {
		return nil, fmt.Errorf("list revisions: %w", err)
	}
	defer rows.Close()

	var out []repository.SnapshotRevision
	for rows.Next() {
		var rev repository.SnapshotRevision
		if err := rows.Scan(&rev.Revision, &rev.Key, &rev.Payload, &rev.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan revision: %w", err)
		}
		out = append(out, rev)
	}
	return out, rows.Err()
}

package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/martin00001313/TransactionProcessing/internal/domain"
)

// SnapshotRepository persists final account snapshots, one row per
// client per processing run.
type SnapshotRepository struct {
	pool    *pgxpool.Pool
	retrier *Retrier
}

// NewSnapshotRepository creates a new SnapshotRepository.
func NewSnapshotRepository(pool *pgxpool.Pool, retrier *Retrier) *SnapshotRepository {
	return &SnapshotRepository{pool: pool, retrier: retrier}
}

// Save writes the whole snapshot atomically under the given run id.
func (r *SnapshotRepository) Save(ctx context.Context, runID string, accounts []domain.Account) error {
	return r.retrier.Retry(ctx, func() error {
		return r.save(ctx, runID, accounts)
	})
}

func (r *SnapshotRepository) save(ctx context.Context, runID string, accounts []domain.Account) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin snapshot tx: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	batch := &pgx.Batch{}
	for _, account := range accounts {
		batch.Queue(
			`INSERT INTO account_snapshots (run_id, client_id, available, held, total, locked)
			 VALUES ($1, $2, $3, $4, $5, $6)`,
			runID,
			int32(account.Client),
			account.Available,
			account.Held,
			account.Total(),
			account.Locked,
		)
	}

	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("failed to insert snapshot rows: %w", err)
	}
	return tx.Commit(ctx)
}

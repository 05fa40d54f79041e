package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/chainproof/chainproof-backend/internal/model"
)

// InsertVerifications stores audit rows in ClickHouse.
func (r *Repository) InsertVerifications(ctx context.Context, records []model.AuditRecord) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_verifications", firstChainID(records), err, start)
	}()

	if len(records) == 0 {
		return nil
	}

	batch, err := r.conn.PrepareBatch(ctx, insertVerificationsQuery())
	if err != nil {
		return fmt.Errorf("prepare verifications batch: %w", err)
	}

	for _, record := range records {
		if err = batch.Append(
			string(record.ChainID),
			record.Digest,
			string(record.Verifier),
			record.IsAuthentic,
			record.Confidence,
			record.CreatedAt,
		); err != nil {
			return fmt.Errorf("append verification: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert verifications: %w", err)
	}
	return nil
}

func insertVerificationsQuery() string {
	return `
INSERT INTO verifications (
	chain_id,
	digest,
	verifier,
	is_authentic,
	confidence,
	created_at
) VALUES`
}

package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/chainproof/chainproof-backend/internal/model"
)

// RecentVerifications returns the newest audit rows for a chain, most recent
// first.
func (r *Repository) RecentVerifications(ctx context.Context, chainID model.ChainID, limit uint64) (_ []model.AuditRecord, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("recent_verifications", chainID, err, start)
	}()

	rows, err := r.conn.Query(ctx, recentVerificationsQuery(), string(chainID), limit)
	if err != nil {
		return nil, fmt.Errorf("query recent verifications: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var records []model.AuditRecord
	for rows.Next() {
		var (
			record      model.AuditRecord
			rawChainID  string
			rawVerifier string
		)
		if err = rows.Scan(
			&rawChainID,
			&record.Digest,
			&rawVerifier,
			&record.IsAuthentic,
			&record.Confidence,
			&record.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan verification: %w", err)
		}
		record.ChainID = model.ChainID(rawChainID)
		record.Verifier = model.AccountID(rawVerifier)
		records = append(records, record)
	}
	return records, nil
}

func recentVerificationsQuery() string {
	return `
SELECT
	chain_id,
	digest,
	verifier,
	is_authentic,
	confidence,
	created_at
FROM verifications
WHERE chain_id = ?
ORDER BY created_at DESC
LIMIT ?`
}

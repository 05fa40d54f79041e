package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/chainproof/chainproof-backend/internal/model"
)

// VerifierRecordCount returns how many audit rows a verifier has on a chain.
func (r *Repository) VerifierRecordCount(ctx context.Context, chainID model.ChainID, verifier model.AccountID) (_ uint64, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("verifier_record_count", chainID, err, start)
	}()

	rows, err := r.conn.Query(ctx, verifierRecordCountQuery(), string(chainID), string(verifier))
	if err != nil {
		return 0, fmt.Errorf("query verifier record count: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	if !rows.Next() {
		return 0, nil
	}
	var count uint64
	if err = rows.Scan(&count); err != nil {
		return 0, fmt.Errorf("scan verifier record count: %w", err)
	}
	return count, nil
}

func verifierRecordCountQuery() string {
	return `
SELECT count() as cnt
FROM verifications
WHERE chain_id = ? AND verifier = ?`
}

// Package audit mirrors successful store events into ClickHouse so external
// observers get an independent, queryable trail of every verification.
package audit

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/chainproof/chainproof-backend/internal/ledger"
	"github.com/chainproof/chainproof-backend/internal/model"
	"github.com/chainproof/chainproof-backend/pkg/batcher"
)

// Inserter persists mirrored audit rows.
type Inserter interface {
	InsertVerifications(ctx context.Context, records []model.AuditRecord) error
}

// Options tunes the mirror's write batching.
type Options struct {
	FlushSize     int
	FlushInterval time.Duration
	FlushRPS      int
}

// DefaultOptions returns the mirror batching defaults.
func DefaultOptions() Options {
	return Options{
		FlushSize:     64,
		FlushInterval: 2 * time.Second,
		FlushRPS:      5,
	}
}

// Mirror subscribes to a ledger store and forwards every store event to the
// audit sink in batches. The mirror is observational only; a failed flush
// never affects the ledger.
type Mirror struct {
	logger  *zap.Logger
	store   *ledger.Store
	chainID model.ChainID
	batch   *batcher.Batcher[model.AuditRecord]
	subID   uuid.UUID
}

// NewMirror builds a Mirror writing store events from store to sink.
func NewMirror(logger *zap.Logger, store *ledger.Store, chainID model.ChainID, sink Inserter, opts Options) *Mirror {
	def := DefaultOptions()
	if opts.FlushSize <= 0 {
		opts.FlushSize = def.FlushSize
	}
	if opts.FlushInterval <= 0 {
		opts.FlushInterval = def.FlushInterval
	}
	if opts.FlushRPS <= 0 {
		opts.FlushRPS = def.FlushRPS
	}

	return &Mirror{
		logger:  logger.With(zap.String("chain_id", string(chainID))),
		store:   store,
		chainID: chainID,
		batch:   batcher.New(logger, sink.InsertVerifications, opts.FlushSize, opts.FlushInterval, opts.FlushRPS),
	}
}

// Start subscribes to the store and begins flushing in the background.
func (m *Mirror) Start(ctx context.Context) {
	m.batch.Start(ctx)
	m.subID = m.store.Subscribe(func(event model.StoreEvent) {
		record := model.AuditRecord{
			ChainID:     m.chainID,
			Digest:      event.Digest.String(),
			Verifier:    event.Verifier,
			IsAuthentic: event.IsAuthentic,
			Confidence:  event.Confidence,
			CreatedAt:   event.CreatedAt,
		}
		// The callback runs inside the store's write path and must never
		// block on a slow sink. A full buffer drops the record.
		if err := m.batch.TryAdd(record); err != nil {
			m.logger.Warn("audit record dropped", zap.String("digest", record.Digest), zap.Error(err))
		}
	})
}

// Stop unsubscribes and flushes anything still buffered.
func (m *Mirror) Stop() {
	m.store.Unsubscribe(m.subID)
	m.batch.Stop()
}

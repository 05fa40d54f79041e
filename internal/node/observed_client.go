package node

import (
	"context"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"

	"github.com/chainproof/chainproof-backend/internal/chain"
	"github.com/chainproof/chainproof-backend/internal/model"
)

type (
	// ClientMetrics records metrics for node client calls.
	ClientMetrics interface {
		Observe(operation string, err error, started time.Time)
	}
)

// ObservedClient wraps a chain.NodeClient with metrics instrumentation.
type ObservedClient struct {
	client  chain.NodeClient
	metrics ClientMetrics
}

// NewObservedClient constructs an instrumented node client.
func NewObservedClient(client chain.NodeClient, metrics ClientMetrics) *ObservedClient {
	return &ObservedClient{
		client:  client,
		metrics: metrics,
	}
}

// ChainID returns the chain identifier of the backing node.
func (o *ObservedClient) ChainID(ctx context.Context) (id model.ChainID, err error) {
	started := time.Now()
	defer func() {
		o.metrics.Observe("chain_id", err, started)
	}()
	return o.client.ChainID(ctx)
}

// Height returns the current block height.
func (o *ObservedClient) Height(ctx context.Context) (height uint64, err error) {
	started := time.Now()
	defer func() {
		o.metrics.Observe("height", err, started)
	}()
	return o.client.Height(ctx)
}

// UnitPrice returns the current price per resource unit.
func (o *ObservedClient) UnitPrice(ctx context.Context) (price uint64, err error) {
	started := time.Now()
	defer func() {
		o.metrics.Observe("unit_price", err, started)
	}()
	return o.client.UnitPrice(ctx)
}

// EstimateStoreUnits returns the resource usage estimate for a store call.
func (o *ObservedClient) EstimateStoreUnits(ctx context.Context, from model.AccountID, digest chainhash.Hash, isAuthentic bool, confidence uint8) (units uint64, err error) {
	started := time.Now()
	defer func() {
		o.metrics.Observe("estimate_store_units", err, started)
	}()
	return o.client.EstimateStoreUnits(ctx, from, digest, isAuthentic, confidence)
}

// SubmitStore submits a store transaction.
func (o *ObservedClient) SubmitStore(ctx context.Context, from model.AccountID, digest chainhash.Hash, isAuthentic bool, confidence uint8) (txHash chainhash.Hash, err error) {
	started := time.Now()
	defer func() {
		o.metrics.Observe("submit_store", err, started)
	}()
	return o.client.SubmitStore(ctx, from, digest, isAuthentic, confidence)
}

// TransactionByHash returns the lifecycle snapshot for a transaction.
func (o *ObservedClient) TransactionByHash(ctx context.Context, txHash chainhash.Hash) (tx model.PendingTransaction, err error) {
	started := time.Now()
	defer func() {
		o.metrics.Observe("transaction_by_hash", err, started)
	}()
	return o.client.TransactionByHash(ctx, txHash)
}

// Record returns the stored record for digest.
func (o *ObservedClient) Record(ctx context.Context, digest chainhash.Hash) (record model.VerificationRecord, err error) {
	started := time.Now()
	defer func() {
		o.metrics.Observe("record", err, started)
	}()
	return o.client.Record(ctx, digest)
}

// UserRecords returns the digests stored by identity.
func (o *ObservedClient) UserRecords(ctx context.Context, identity model.AccountID) (digests []chainhash.Hash, err error) {
	started := time.Now()
	defer func() {
		o.metrics.Observe("user_records", err, started)
	}()
	return o.client.UserRecords(ctx, identity)
}

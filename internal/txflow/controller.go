// Package txflow drives the write lifecycle: cost estimation, submission
// through a contract binding, and awaiting first inclusion.
package txflow

import (
	"context"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"go.uber.org/zap"

	"github.com/chainproof/chainproof-backend/internal/clock"
	"github.com/chainproof/chainproof-backend/internal/model"
	"github.com/chainproof/chainproof-backend/pkg/safe"
)

const defaultPollInterval = 500 * time.Millisecond

// Controller estimates and submits store operations and tracks their
// confirmation. It never retries: every failure is surfaced once and a
// fresh submission is the caller's decision.
type Controller struct {
	logger       *zap.Logger
	bindings     BindingSource
	metrics      Metrics
	sleep        func(context.Context, time.Duration) error
	pollInterval time.Duration
}

// NewController builds a Controller over the given binding source.
func NewController(logger *zap.Logger, bindings BindingSource, metrics Metrics) *Controller {
	return &Controller{
		logger:       logger,
		bindings:     bindings,
		metrics:      metrics,
		sleep:        clock.SleepWithContext,
		pollInterval: defaultPollInterval,
	}
}

// validate performs the cheap local rejection mirroring the ledger's own
// checks, before any network round-trip.
func validate(digest chainhash.Hash, confidence uint8) error {
	if digest == (chainhash.Hash{}) {
		return newError(KindValidation, "empty content digest")
	}
	if confidence > 100 {
		return newError(KindValidation, "confidence out of range [0,100]")
	}
	return nil
}

// EstimateCost queries the binding for a resource-usage estimate and the
// network's current unit price.
func (c *Controller) EstimateCost(ctx context.Context, digest chainhash.Hash, isAuthentic bool, confidence uint8) (estimate model.CostEstimate, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("estimate_cost", err, started)
	}()

	if err = validate(digest, confidence); err != nil {
		return model.CostEstimate{}, err
	}
	binding, ok := c.bindings.CurrentBinding()
	if !ok {
		return model.CostEstimate{}, newError(KindBindingMissing, "no store binding, call bind first")
	}

	units, uerr := binding.EstimateStoreUnits(ctx, digest, isAuthentic, confidence)
	if uerr != nil {
		return model.CostEstimate{}, classify(uerr)
	}
	price, perr := binding.UnitPrice(ctx)
	if perr != nil {
		return model.CostEstimate{}, classify(perr)
	}
	total, merr := safe.MulUint64(units, price)
	if merr != nil {
		return model.CostEstimate{}, classify(merr)
	}

	return model.CostEstimate{
		UnitsEstimated: units,
		UnitPrice:      price,
		TotalCost:      total,
	}, nil
}

// Submit sends a storeRecord write through the current binding and awaits
// first inclusion. The wait has no internal timeout; cancellation comes from
// ctx. Once sent, the submission cannot be revoked, only abandoned.
func (c *Controller) Submit(ctx context.Context, digest chainhash.Hash, isAuthentic bool, confidence uint8) (result model.SubmitResult, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("submit", err, started)
	}()

	if err = validate(digest, confidence); err != nil {
		return model.SubmitResult{}, err
	}
	// The binding is captured once; a rebind triggered mid-flight only
	// affects the next submission.
	binding, ok := c.bindings.CurrentBinding()
	if !ok {
		return model.SubmitResult{}, newError(KindBindingMissing, "no store binding, call bind first")
	}

	txHash, serr := binding.SubmitStore(ctx, digest, isAuthentic, confidence)
	if serr != nil {
		return model.SubmitResult{}, classify(serr)
	}
	c.logger.Info("store transaction submitted",
		zap.Stringer("tx_hash", txHash),
		zap.String("signer", string(binding.Signer())),
	)

	return c.awaitInclusion(ctx, binding, txHash)
}

// awaitInclusion polls until the transaction reaches a terminal status.
// The first inclusion event is authoritative.
func (c *Controller) awaitInclusion(ctx context.Context, binding Binding, txHash chainhash.Hash) (model.SubmitResult, error) {
	for {
		tx, terr := binding.TransactionByHash(ctx, txHash)

		switch tx.Status {
		case model.TxConfirmed:
			c.logger.Info("store transaction confirmed",
				zap.Stringer("tx_hash", txHash),
				zap.Uint64("block", tx.BlockNumber),
				zap.Uint64("units_consumed", tx.UnitsConsumed),
			)
			return model.SubmitResult{
				TxHash:        tx.TxHash,
				BlockNumber:   tx.BlockNumber,
				UnitsConsumed: tx.UnitsConsumed,
			}, nil
		case model.TxFailed:
			if terr == nil {
				terr = newError(KindUnknown, "transaction failed without a cause")
			}
			return model.SubmitResult{}, classify(terr)
		}

		if terr != nil {
			return model.SubmitResult{}, classify(terr)
		}
		if serr := c.sleep(ctx, c.pollInterval); serr != nil {
			return model.SubmitResult{}, &Error{
				Kind:    KindTimeout,
				Message: "inclusion wait abandoned: " + serr.Error(),
				Err:     serr,
			}
		}
	}
}

// Confirmations reports how many blocks deep a confirmed transaction is.
// This is advisory, best-effort display data; the authoritative result is
// the first inclusion event returned by Submit.
func (c *Controller) Confirmations(ctx context.Context, txHash chainhash.Hash) (uint64, error) {
	binding, ok := c.bindings.CurrentBinding()
	if !ok {
		return 0, newError(KindBindingMissing, "no store binding, call bind first")
	}

	tx, err := binding.TransactionByHash(ctx, txHash)
	if err != nil && tx.Status != model.TxFailed {
		return 0, classify(err)
	}
	if tx.Status != model.TxConfirmed {
		return 0, nil
	}
	height, err := binding.Height(ctx)
	if err != nil {
		return 0, classify(err)
	}
	if height < tx.BlockNumber {
		return 0, nil
	}
	return height - tx.BlockNumber + 1, nil
}

// Package node provides the in-process ledger node backing the live client
// path. It wraps the record store with transaction submission, fee
// accounting and inclusion tracking.
package node

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"go.uber.org/zap"

	"github.com/chainproof/chainproof-backend/internal/chain"
	"github.com/chainproof/chainproof-backend/internal/ledger"
	"github.com/chainproof/chainproof-backend/internal/model"
)

var (
	// ErrInsufficientFunds rejects a submission the sender cannot pay for. It
	// carries the provider code wallets surface for this condition.
	ErrInsufficientFunds = chain.NewProviderError(chain.CodeInsufficientFunds, "insufficient funds for store transaction")
	// ErrUnknownTransaction is returned for transaction hashes the node never saw.
	ErrUnknownTransaction = errors.New("unknown transaction hash")
)

// storeUnits is the resource usage of a storeRecord call. The record layout is
// fixed, so the estimate does not depend on the payload.
const storeUnits = 48_500

// Options configures a Node.
type Options struct {
	ChainID        model.ChainID
	UnitPrice      uint64
	InclusionDelay time.Duration
	InitialBalance uint64
}

// DefaultOptions returns the devnet node parameters.
func DefaultOptions() Options {
	return Options{
		ChainID:        "chainproof-devnet",
		UnitPrice:      25,
		InclusionDelay: 2 * time.Second,
		InitialBalance: 100_000_000,
	}
}

type pendingTx struct {
	from        model.AccountID
	digest      chainhash.Hash
	isAuthentic bool
	confidence  uint8
	submittedAt time.Time
	applied     bool
	applyErr    error
	snapshot    model.PendingTransaction
}

// Node executes store transactions against a ledger.Store. Submissions are
// accepted immediately; execution happens at inclusion, after the configured
// delay, the first time the transaction is polled past its inclusion point.
type Node struct {
	mu             sync.Mutex
	logger         *zap.Logger
	store          *ledger.Store
	chainID        model.ChainID
	unitPrice      uint64
	inclusionDelay time.Duration
	initialBalance uint64
	now            func() time.Time

	height   uint64
	nonce    uint64
	txs      map[chainhash.Hash]*pendingTx
	balances map[model.AccountID]uint64
}

// New constructs a Node over store.
func New(logger *zap.Logger, store *ledger.Store, opts Options) *Node {
	def := DefaultOptions()
	if opts.ChainID == "" {
		opts.ChainID = def.ChainID
	}
	if opts.UnitPrice == 0 {
		opts.UnitPrice = def.UnitPrice
	}
	if opts.InclusionDelay <= 0 {
		opts.InclusionDelay = def.InclusionDelay
	}
	if opts.InitialBalance == 0 {
		opts.InitialBalance = def.InitialBalance
	}
	return &Node{
		logger:         logger.With(zap.String("chain_id", string(opts.ChainID))),
		store:          store,
		chainID:        opts.ChainID,
		unitPrice:      opts.UnitPrice,
		inclusionDelay: opts.InclusionDelay,
		initialBalance: opts.InitialBalance,
		now:            time.Now,
		txs:            make(map[chainhash.Hash]*pendingTx),
		balances:       make(map[model.AccountID]uint64),
	}
}

// ChainID returns the chain this node executes on.
func (n *Node) ChainID(_ context.Context) (model.ChainID, error) {
	return n.chainID, nil
}

// Height returns the current block height.
func (n *Node) Height(_ context.Context) (uint64, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	return n.height, nil
}

// UnitPrice returns the current price per resource unit.
func (n *Node) UnitPrice(_ context.Context) (uint64, error) {
	return n.unitPrice, nil
}

// EstimateStoreUnits returns the resource usage estimate for a store call.
func (n *Node) EstimateStoreUnits(_ context.Context, _ model.AccountID, _ chainhash.Hash, _ bool, _ uint8) (uint64, error) {
	return storeUnits, nil
}

// SubmitStore accepts a store transaction from the given identity and returns
// its hash. The submission cannot be revoked once accepted; it resolves at
// inclusion under the identity it was signed with.
func (n *Node) SubmitStore(ctx context.Context, from model.AccountID, digest chainhash.Hash, isAuthentic bool, confidence uint8) (chainhash.Hash, error) {
	if err := ctx.Err(); err != nil {
		return chainhash.Hash{}, err
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	fee := storeUnits * n.unitPrice
	if n.balanceLocked(from) < fee {
		return chainhash.Hash{}, fmt.Errorf("balance %d below fee %d: %w", n.balanceLocked(from), fee, ErrInsufficientFunds)
	}

	n.nonce++
	txHash := n.txHashLocked(from, digest)
	n.txs[txHash] = &pendingTx{
		from:        from,
		digest:      digest,
		isAuthentic: isAuthentic,
		confidence:  confidence,
		submittedAt: n.now(),
		snapshot: model.PendingTransaction{
			TxHash: txHash,
			Status: model.TxPending,
		},
	}

	n.logger.Debug("store transaction accepted",
		zap.Stringer("tx_hash", txHash),
		zap.String("from", string(from)),
	)
	return txHash, nil
}

// TransactionByHash returns the lifecycle snapshot for txHash. For failed
// transactions the returned error carries the rejection cause alongside the
// snapshot; unknown hashes yield ErrUnknownTransaction.
func (n *Node) TransactionByHash(_ context.Context, txHash chainhash.Hash) (model.PendingTransaction, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	tx, ok := n.txs[txHash]
	if !ok {
		return model.PendingTransaction{}, ErrUnknownTransaction
	}

	if !tx.applied && !n.now().Before(tx.submittedAt.Add(n.inclusionDelay)) {
		n.includeLocked(tx)
	}
	return tx.snapshot, tx.applyErr
}

// includeLocked executes the transaction against the store, exactly once.
// The balance is re-checked here: earlier inclusions may have drained it
// below the fee since submission. A transaction that can no longer pay
// fails without touching the store or the balance. For transactions that
// can pay, the fee is consumed whether or not execution succeeds.
func (n *Node) includeLocked(tx *pendingTx) {
	tx.applied = true
	n.height++

	fee := uint64(storeUnits) * n.unitPrice
	balance := n.balanceLocked(tx.from)
	if balance < fee {
		tx.applyErr = fmt.Errorf("balance %d below fee %d at inclusion: %w", balance, fee, ErrInsufficientFunds)
		tx.snapshot.Status = model.TxFailed
		tx.snapshot.BlockNumber = n.height
		n.logger.Warn("store transaction rejected at inclusion",
			zap.Stringer("tx_hash", tx.snapshot.TxHash),
			zap.Error(tx.applyErr),
		)
		return
	}
	n.balances[tx.from] = balance - fee

	_, err := n.store.StoreRecord(tx.from, tx.digest, tx.isAuthentic, tx.confidence)
	if err != nil {
		tx.applyErr = err
		tx.snapshot.Status = model.TxFailed
		tx.snapshot.BlockNumber = n.height
		tx.snapshot.UnitsConsumed = storeUnits
		n.logger.Warn("store transaction rejected at inclusion",
			zap.Stringer("tx_hash", tx.snapshot.TxHash),
			zap.Error(err),
		)
		return
	}

	tx.snapshot.Status = model.TxConfirmed
	tx.snapshot.BlockNumber = n.height
	tx.snapshot.UnitsConsumed = storeUnits
	n.logger.Info("store transaction included",
		zap.Stringer("tx_hash", tx.snapshot.TxHash),
		zap.Uint64("block", n.height),
	)
}

// Record returns the stored record for digest, Exists=false when absent.
func (n *Node) Record(_ context.Context, digest chainhash.Hash) (model.VerificationRecord, error) {
	return n.store.GetRecord(digest), nil
}

// UserRecords returns the digests stored by identity, in call order.
func (n *Node) UserRecords(_ context.Context, identity model.AccountID) ([]chainhash.Hash, error) {
	return n.store.UserRecords(identity), nil
}

// SetBalance overrides the balance tracked for an identity.
func (n *Node) SetBalance(identity model.AccountID, balance uint64) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.balances[identity] = balance
}

func (n *Node) balanceLocked(identity model.AccountID) uint64 {
	if bal, ok := n.balances[identity]; ok {
		return bal
	}
	n.balances[identity] = n.initialBalance
	return n.initialBalance
}

func (n *Node) txHashLocked(from model.AccountID, digest chainhash.Hash) chainhash.Hash {
	buf := make([]byte, 0, len(from)+chainhash.HashSize+8)
	buf = append(buf, from...)
	buf = append(buf, digest[:]...)
	buf = binary.BigEndian.AppendUint64(buf, n.nonce)
	return chainhash.DoubleHashH(buf)
}

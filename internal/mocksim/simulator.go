// Package mocksim is an in-memory stand-in for the live verification path.
// It implements the same client operation surface backed by local state and
// artificial latency, so callers exercise identical control flow without a
// ledger node or wallet provider.
package mocksim

import (
	"context"
	"encoding/binary"
	"sync"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"go.uber.org/zap"

	"github.com/chainproof/chainproof-backend/internal/chain"
	"github.com/chainproof/chainproof-backend/internal/clock"
	"github.com/chainproof/chainproof-backend/internal/connection"
	"github.com/chainproof/chainproof-backend/internal/model"
	"github.com/chainproof/chainproof-backend/internal/txflow"
)

const (
	simulatedStoreUnits = 48_500
	simulatedUnitPrice  = 25
)

// Options configures a Simulator. The zero value is usable; unset fields
// fall back to DefaultOptions.
type Options struct {
	// Account is the identity reported after Connect.
	Account model.AccountID
	// ChainID is the simulated execution context.
	ChainID model.ChainID
	// Latency is applied to every simulated network round-trip.
	Latency time.Duration
	// Seed preloads records visible to Lookup. Without seeding, Lookup
	// reports non-existence for every digest, including ones previously
	// stored through this simulator.
	Seed []model.VerificationRecord
}

// DefaultOptions returns the simulator defaults.
func DefaultOptions() Options {
	return Options{
		Account: "0xs1mulated5igner",
		ChainID: "chainproof-devnet",
		Latency: 150 * time.Millisecond,
	}
}

// Simulator implements the client verification surface against in-memory
// state. Safe for concurrent use.
type Simulator struct {
	mu      sync.Mutex
	logger  *zap.Logger
	account model.AccountID
	chainID model.ChainID
	latency time.Duration
	sleep   func(context.Context, time.Duration) error

	connected bool
	bound     bool
	seeded    map[chainhash.Hash]model.VerificationRecord
	submitted map[chainhash.Hash]struct{}
	height    uint64
	nonce     uint64
}

// New builds a Simulator from opts.
func New(logger *zap.Logger, opts Options) *Simulator {
	defs := DefaultOptions()
	if opts.Account == "" {
		opts.Account = defs.Account
	}
	if opts.ChainID == "" {
		opts.ChainID = defs.ChainID
	}
	if opts.Latency == 0 {
		opts.Latency = defs.Latency
	}

	seeded := make(map[chainhash.Hash]model.VerificationRecord, len(opts.Seed))
	for _, rec := range opts.Seed {
		rec.Exists = true
		seeded[rec.Digest] = rec
	}

	return &Simulator{
		logger:    logger.With(zap.String("chain_id", string(opts.ChainID))),
		account:   opts.Account,
		chainID:   opts.ChainID,
		latency:   opts.Latency,
		sleep:     clock.SleepWithContext,
		seeded:    seeded,
		submitted: make(map[chainhash.Hash]struct{}),
	}
}

// Connect reports the simulated wallet as available with a single account.
func (s *Simulator) Connect(ctx context.Context) (model.ConnectionStatus, error) {
	if err := s.roundTrip(ctx); err != nil {
		return model.ConnectionStatus{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.connected = true
	s.logger.Info("simulated wallet connected", zap.String("account", string(s.account)))
	return s.statusLocked(), nil
}

// Disconnect clears the simulated connection and binding.
func (s *Simulator) Disconnect(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.connected = false
	s.bound = false
	return nil
}

// Status returns the current simulated connection snapshot.
func (s *Simulator) Status() model.ConnectionStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.statusLocked()
}

func (s *Simulator) statusLocked() model.ConnectionStatus {
	status := model.ConnectionStatus{
		Connected: s.connected,
		Bound:     s.bound,
	}
	if s.connected {
		status.Account = s.account
		status.ChainID = s.chainID
	}
	return status
}

// Bind marks the store reference as callable. The descriptor and address are
// accepted but not dereferenced; there is no deployed contract behind them.
func (s *Simulator) Bind(ctx context.Context, desc connection.Descriptor, address model.Address) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.connected {
		return connection.ErrNotConnected
	}
	s.bound = true
	return nil
}

// EstimateCost returns a fixed estimate after the configured latency.
func (s *Simulator) EstimateCost(ctx context.Context, digest chainhash.Hash, isAuthentic bool, confidence uint8) (model.CostEstimate, error) {
	if err := validate(digest, confidence); err != nil {
		return model.CostEstimate{}, err
	}
	if err := s.requireBinding(); err != nil {
		return model.CostEstimate{}, err
	}
	if err := s.roundTrip(ctx); err != nil {
		return model.CostEstimate{}, err
	}
	return model.CostEstimate{
		UnitsEstimated: simulatedStoreUnits,
		UnitPrice:      simulatedUnitPrice,
		TotalCost:      simulatedStoreUnits * simulatedUnitPrice,
	}, nil
}

// Submit simulates a store write reaching first inclusion. Duplicate digests
// among this simulator's own submissions fail the way the ledger would.
func (s *Simulator) Submit(ctx context.Context, digest chainhash.Hash, isAuthentic bool, confidence uint8) (model.SubmitResult, error) {
	if err := validate(digest, confidence); err != nil {
		return model.SubmitResult{}, err
	}
	if err := s.requireBinding(); err != nil {
		return model.SubmitResult{}, err
	}
	if err := s.roundTrip(ctx); err != nil {
		return model.SubmitResult{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.submitted[digest]; ok {
		return model.SubmitResult{}, &txflow.Error{
			Kind:    txflow.KindDuplicateRecord,
			Message: "record already exists for digest " + digest.String(),
		}
	}
	s.submitted[digest] = struct{}{}
	s.height++
	s.nonce++

	result := model.SubmitResult{
		TxHash:        s.txHashLocked(digest),
		BlockNumber:   s.height,
		UnitsConsumed: simulatedStoreUnits,
	}
	s.logger.Info("simulated store included",
		zap.Stringer("tx_hash", result.TxHash),
		zap.Uint64("block", result.BlockNumber),
	)
	return result, nil
}

// Lookup reads only seeded records. Digests stored through Submit are not
// visible here; callers wanting positive lookups must seed them via Options.
func (s *Simulator) Lookup(ctx context.Context, digest chainhash.Hash) (model.VerificationRecord, error) {
	if err := s.roundTrip(ctx); err != nil {
		return model.VerificationRecord{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if rec, ok := s.seeded[digest]; ok {
		return rec, nil
	}
	return model.VerificationRecord{}, nil
}

// SwitchNetwork swaps the simulated chain and drops the binding, matching
// the live path's full re-initialization on chain change.
func (s *Simulator) SwitchNetwork(ctx context.Context, network model.Network) error {
	chainID, ok := simulatedChains[network]
	if !ok {
		return chain.NewProviderError(chain.CodeUnrecognizedChain, "unrecognized network "+string(network))
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.connected {
		return connection.ErrNotConnected
	}
	if chainID == s.chainID {
		return nil
	}
	s.chainID = chainID
	s.bound = false
	s.logger = s.logger.With(zap.String("chain_id", string(chainID)))
	return nil
}

var simulatedChains = map[model.Network]model.ChainID{
	model.Mainnet: "chainproof-mainnet",
	model.Testnet: "chainproof-testnet",
	model.Devnet:  "chainproof-devnet",
}

func (s *Simulator) requireBinding() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.connected {
		return connection.ErrNotConnected
	}
	if !s.bound {
		return &txflow.Error{Kind: txflow.KindBindingMissing, Message: "no store binding, call bind first"}
	}
	return nil
}

func (s *Simulator) roundTrip(ctx context.Context) error {
	s.mu.Lock()
	latency := s.latency
	sleep := s.sleep
	s.mu.Unlock()

	if err := sleep(ctx, latency); err != nil {
		return &txflow.Error{
			Kind:    txflow.KindTimeout,
			Message: "simulated round-trip abandoned: " + err.Error(),
			Err:     err,
		}
	}
	return nil
}

func (s *Simulator) txHashLocked(digest chainhash.Hash) chainhash.Hash {
	buf := make([]byte, 0, len(s.account)+chainhash.HashSize+8)
	buf = append(buf, s.account...)
	buf = append(buf, digest[:]...)
	buf = binary.BigEndian.AppendUint64(buf, s.nonce)
	return chainhash.DoubleHashH(buf)
}

func validate(digest chainhash.Hash, confidence uint8) error {
	if digest == (chainhash.Hash{}) {
		return &txflow.Error{Kind: txflow.KindValidation, Message: "empty content digest"}
	}
	if confidence > 100 {
		return &txflow.Error{Kind: txflow.KindValidation, Message: "confidence out of range [0,100]"}
	}
	return nil
}

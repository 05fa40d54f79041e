package client

import (
	"context"
	"sync"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"go.uber.org/zap"

	"github.com/chainproof/chainproof-backend/internal/connection"
	"github.com/chainproof/chainproof-backend/internal/mocksim"
	"github.com/chainproof/chainproof-backend/internal/model"
)

// Service is the single process-wide verification facade. It delegates to
// the live path by default and can be switched onto an in-memory simulator
// for deterministic runs without a ledger or wallet.
type Service struct {
	mu      sync.Mutex
	logger  *zap.Logger
	live    Verifier
	mock    Verifier
	newMock func(opts mocksim.Options) Verifier
}

// NewService wraps the live verifier.
func NewService(logger *zap.Logger, live Verifier) *Service {
	return &Service{
		logger: logger,
		live:   live,
		newMock: func(opts mocksim.Options) Verifier {
			return mocksim.New(logger, opts)
		},
	}
}

// EnableMock routes all subsequent operations to a fresh simulator built
// from opts. The live path keeps its state and resumes on DisableMock.
func (s *Service) EnableMock(opts mocksim.Options) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mock = s.newMock(opts)
	s.logger.Info("simulation layer enabled")
}

// DisableMock discards the simulator and restores the live path.
func (s *Service) DisableMock() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.mock != nil {
		s.mock = nil
		s.logger.Info("simulation layer disabled")
	}
}

// MockEnabled reports whether the simulator is active.
func (s *Service) MockEnabled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mock != nil
}

func (s *Service) active() Verifier {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.mock != nil {
		return s.mock
	}
	return s.live
}

// Connect implements Verifier.
func (s *Service) Connect(ctx context.Context) (model.ConnectionStatus, error) {
	return s.active().Connect(ctx)
}

// Disconnect implements Verifier.
func (s *Service) Disconnect(ctx context.Context) error {
	return s.active().Disconnect(ctx)
}

// Status implements Verifier.
func (s *Service) Status() model.ConnectionStatus {
	return s.active().Status()
}

// Bind implements Verifier.
func (s *Service) Bind(ctx context.Context, desc connection.Descriptor, address model.Address) error {
	return s.active().Bind(ctx, desc, address)
}

// EstimateCost implements Verifier.
func (s *Service) EstimateCost(ctx context.Context, digest chainhash.Hash, isAuthentic bool, confidence uint8) (model.CostEstimate, error) {
	return s.active().EstimateCost(ctx, digest, isAuthentic, confidence)
}

// Submit implements Verifier.
func (s *Service) Submit(ctx context.Context, digest chainhash.Hash, isAuthentic bool, confidence uint8) (model.SubmitResult, error) {
	return s.active().Submit(ctx, digest, isAuthentic, confidence)
}

// Lookup implements Verifier.
func (s *Service) Lookup(ctx context.Context, digest chainhash.Hash) (model.VerificationRecord, error) {
	return s.active().Lookup(ctx, digest)
}

// SwitchNetwork implements Verifier.
func (s *Service) SwitchNetwork(ctx context.Context, network model.Network) error {
	return s.active().SwitchNetwork(ctx, network)
}

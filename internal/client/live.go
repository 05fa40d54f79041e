// Package client composes the connection manager, the transaction lifecycle
// controller and the node clients into the single verification surface a
// process exposes. Exactly one Service exists per running client; every
// component receives it explicitly.
package client

import (
	"context"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"go.uber.org/zap"

	"github.com/chainproof/chainproof-backend/internal/connection"
	"github.com/chainproof/chainproof-backend/internal/model"
	"github.com/chainproof/chainproof-backend/internal/txflow"
)

// LiveOptions wires the live verification path.
type LiveOptions struct {
	// StoreAddress is the deployed record store address, assumed identical
	// across the configured networks.
	StoreAddress model.Address
	// Networks maps user-facing network keys onto chain identifiers.
	Networks map[model.Network]model.ChainID
	// Nodes maps each chain identifier onto its node client.
	Nodes map[model.ChainID]connection.NodeClient
}

// Live is the production Verifier. All writes go through the connection
// manager's current binding; the manager serializes state mutation.
type Live struct {
	logger   *zap.Logger
	manager  *connection.Manager
	flow     *txflow.Controller
	address  model.Address
	networks map[model.Network]model.ChainID
	nodes    map[model.ChainID]connection.NodeClient
}

// managerBindings adapts the connection manager to the lifecycle
// controller's binding source.
type managerBindings struct {
	manager *connection.Manager
}

func (s managerBindings) CurrentBinding() (txflow.Binding, bool) {
	binding, ok := s.manager.CurrentBinding()
	if !ok {
		return nil, false
	}
	return binding, true
}

// NewLive builds the live verification path on top of provider.
func NewLive(logger *zap.Logger, provider connection.SigningProvider, metrics txflow.Metrics, opts LiveOptions) *Live {
	manager := connection.NewManager(logger, provider)
	return &Live{
		logger:   logger,
		manager:  manager,
		flow:     txflow.NewController(logger, managerBindings{manager: manager}, metrics),
		address:  opts.StoreAddress,
		networks: opts.Networks,
		nodes:    opts.Nodes,
	}
}

// Connect requests account access from the wallet provider.
func (l *Live) Connect(ctx context.Context) (model.ConnectionStatus, error) {
	return l.manager.Connect(ctx)
}

// Disconnect clears the connection state.
func (l *Live) Disconnect(ctx context.Context) error {
	l.manager.Disconnect()
	return nil
}

// Status returns the current connection snapshot.
func (l *Live) Status() model.ConnectionStatus {
	return l.manager.Status()
}

// Bind derives a store binding for the connected chain.
func (l *Live) Bind(ctx context.Context, desc connection.Descriptor, address model.Address) error {
	status := l.manager.Status()
	if !status.Connected {
		return connection.ErrNotConnected
	}
	node, ok := l.nodes[status.ChainID]
	if !ok {
		return fmt.Errorf("no node configured for chain %s: %w", status.ChainID, connection.ErrWrongNetwork)
	}
	if address == "" {
		address = l.address
	}
	_, err := l.manager.Bind(desc, address, node)
	return err
}

// EstimateCost projects the cost of storing a record.
func (l *Live) EstimateCost(ctx context.Context, digest chainhash.Hash, isAuthentic bool, confidence uint8) (model.CostEstimate, error) {
	return l.flow.EstimateCost(ctx, digest, isAuthentic, confidence)
}

// Submit stores a verification record and awaits first inclusion.
func (l *Live) Submit(ctx context.Context, digest chainhash.Hash, isAuthentic bool, confidence uint8) (model.SubmitResult, error) {
	return l.flow.Submit(ctx, digest, isAuthentic, confidence)
}

// Lookup reads the record for digest through the current binding. Callers
// must check Exists; absence is not an error.
func (l *Live) Lookup(ctx context.Context, digest chainhash.Hash) (model.VerificationRecord, error) {
	binding, ok := l.manager.CurrentBinding()
	if !ok {
		return model.VerificationRecord{}, &txflow.Error{
			Kind:    txflow.KindBindingMissing,
			Message: "no store binding, call bind first",
		}
	}
	return binding.Record(ctx, digest)
}

// UserRecords reads the connected identity's append-only digest index.
func (l *Live) UserRecords(ctx context.Context) ([]chainhash.Hash, error) {
	binding, ok := l.manager.CurrentBinding()
	if !ok {
		return nil, &txflow.Error{
			Kind:    txflow.KindBindingMissing,
			Message: "no store binding, call bind first",
		}
	}
	return binding.UserRecords(ctx)
}

// Confirmations reports advisory confirmation depth for a transaction.
func (l *Live) Confirmations(ctx context.Context, txHash chainhash.Hash) (uint64, error) {
	return l.flow.Confirmations(ctx, txHash)
}

// SwitchNetwork asks the wallet provider to move to the chain behind the
// network key. The resulting chain-changed notification re-initializes the
// connection state.
func (l *Live) SwitchNetwork(ctx context.Context, network model.Network) error {
	chainID, ok := l.networks[network]
	if !ok {
		return fmt.Errorf("unknown network %q", network)
	}
	return l.manager.SwitchNetwork(ctx, chainID)
}

// SubscribeEvents forwards connection lifecycle events to fn.
func (l *Live) SubscribeEvents(fn func(connection.Event)) {
	l.manager.Subscribe(fn)
}

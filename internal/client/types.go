package client

import (
	"context"

	"github.com/btcsuite/btcd/chaincfg/chainhash"

	"github.com/chainproof/chainproof-backend/internal/connection"
	"github.com/chainproof/chainproof-backend/internal/model"
)

// Verifier is the full client operation surface: connection lifecycle, store
// binding, write lifecycle and reads. The live path and the simulator both
// implement it, so callers cannot tell them apart except by the absence of
// real external calls.
type Verifier interface {
	Connect(ctx context.Context) (model.ConnectionStatus, error)
	Disconnect(ctx context.Context) error
	Status() model.ConnectionStatus
	Bind(ctx context.Context, desc connection.Descriptor, address model.Address) error
	EstimateCost(ctx context.Context, digest chainhash.Hash, isAuthentic bool, confidence uint8) (model.CostEstimate, error)
	Submit(ctx context.Context, digest chainhash.Hash, isAuthentic bool, confidence uint8) (model.SubmitResult, error)
	Lookup(ctx context.Context, digest chainhash.Hash) (model.VerificationRecord, error)
	SwitchNetwork(ctx context.Context, network model.Network) error
}

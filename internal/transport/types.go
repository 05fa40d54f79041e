// Package transport exposes the verification client over HTTP JSON.
package transport

import (
	"context"

	"github.com/btcsuite/btcd/chaincfg/chainhash"

	"github.com/chainproof/chainproof-backend/internal/connection"
	"github.com/chainproof/chainproof-backend/internal/mocksim"
	"github.com/chainproof/chainproof-backend/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Verifier is the client surface the handler serves.
	Verifier interface {
		Connect(ctx context.Context) (model.ConnectionStatus, error)
		Disconnect(ctx context.Context) error
		Status() model.ConnectionStatus
		Bind(ctx context.Context, desc connection.Descriptor, address model.Address) error
		EstimateCost(ctx context.Context, digest chainhash.Hash, isAuthentic bool, confidence uint8) (model.CostEstimate, error)
		Submit(ctx context.Context, digest chainhash.Hash, isAuthentic bool, confidence uint8) (model.SubmitResult, error)
		Lookup(ctx context.Context, digest chainhash.Hash) (model.VerificationRecord, error)
		SwitchNetwork(ctx context.Context, network model.Network) error
	}

	// MockControl toggles the in-memory simulation layer.
	MockControl interface {
		EnableMock(opts mocksim.Options)
		DisableMock()
		MockEnabled() bool
	}
)

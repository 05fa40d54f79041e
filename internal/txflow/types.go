package txflow

import (
	"context"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"

	"github.com/chainproof/chainproof-backend/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Binding is the callable store reference writes and estimates go through.
	Binding interface {
		Signer() model.AccountID
		EstimateStoreUnits(ctx context.Context, digest chainhash.Hash, isAuthentic bool, confidence uint8) (uint64, error)
		UnitPrice(ctx context.Context) (uint64, error)
		SubmitStore(ctx context.Context, digest chainhash.Hash, isAuthentic bool, confidence uint8) (chainhash.Hash, error)
		TransactionByHash(ctx context.Context, txHash chainhash.Hash) (model.PendingTransaction, error)
		Height(ctx context.Context) (uint64, error)
	}

	// BindingSource yields the current binding handle. A submission captures
	// the handle once; only the next submission observes a rebind.
	BindingSource interface {
		CurrentBinding() (Binding, bool)
	}

	// Metrics records lifecycle operation outcomes.
	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}
)

package connection

import (
	"context"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/google/uuid"

	"github.com/chainproof/chainproof-backend/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// SigningProvider is the external wallet supplying accounts, the active
	// chain and change notifications. Notification callbacks are delivered in
	// order and run to completion relative to each other.
	SigningProvider interface {
		RequestAccounts(ctx context.Context) ([]model.AccountID, error)
		ChainID(ctx context.Context) (model.ChainID, error)
		SwitchChain(ctx context.Context, id model.ChainID) error
		SubscribeAccountsChanged(fn func([]model.AccountID)) uuid.UUID
		SubscribeChainChanged(fn func(model.ChainID)) uuid.UUID
		Unsubscribe(id uuid.UUID)
	}

	// NodeClient is the ledger entrypoint surface a binding invokes.
	NodeClient interface {
		ChainID(ctx context.Context) (model.ChainID, error)
		Height(ctx context.Context) (uint64, error)
		UnitPrice(ctx context.Context) (uint64, error)
		EstimateStoreUnits(ctx context.Context, from model.AccountID, digest chainhash.Hash, isAuthentic bool, confidence uint8) (uint64, error)
		SubmitStore(ctx context.Context, from model.AccountID, digest chainhash.Hash, isAuthentic bool, confidence uint8) (chainhash.Hash, error)
		TransactionByHash(ctx context.Context, txHash chainhash.Hash) (model.PendingTransaction, error)
		Record(ctx context.Context, digest chainhash.Hash) (model.VerificationRecord, error)
		UserRecords(ctx context.Context, identity model.AccountID) ([]chainhash.Hash, error)
	}
)

// Package chain defines interfaces and types shared between the client-side
// connection, transaction lifecycle components and the ledger node they drive.
package chain

import (
	"context"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"

	"github.com/chainproof/chainproof-backend/internal/model"
)

// NodeClient is the ledger entrypoint surface used by a contract binding.
type NodeClient interface {
	ChainID(ctx context.Context) (model.ChainID, error)
	Height(ctx context.Context) (uint64, error)
	UnitPrice(ctx context.Context) (uint64, error)
	EstimateStoreUnits(ctx context.Context, from model.AccountID, digest chainhash.Hash, isAuthentic bool, confidence uint8) (uint64, error)
	SubmitStore(ctx context.Context, from model.AccountID, digest chainhash.Hash, isAuthentic bool, confidence uint8) (chainhash.Hash, error)
	TransactionByHash(ctx context.Context, txHash chainhash.Hash) (model.PendingTransaction, error)
	Record(ctx context.Context, digest chainhash.Hash) (model.VerificationRecord, error)
	UserRecords(ctx context.Context, identity model.AccountID) ([]chainhash.Hash, error)
}

// Provider error codes, as surfaced by wallet providers.
const (
	CodeUserRejected      = 4001
	CodeUnauthorized      = 4100
	CodeUnrecognizedChain = 4902
	CodeInsufficientFunds = -32000
	CodeResourceExhausted = -32005
	CodeProviderInternal  = -32603
)

// ProviderError carries the raw code and message returned by a wallet or node
// provider so callers can classify and display it.
type ProviderError struct {
	Code    int
	Message string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider error %d: %s", e.Code, e.Message)
}

// NewProviderError builds a ProviderError from a raw code/message pair.
func NewProviderError(code int, message string) *ProviderError {
	return &ProviderError{Code: code, Message: message}
}

// Package model defines domain models shared across the verification ledger components.
package model

import (
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// VerificationRecord is a single authenticity verdict stored on the ledger,
// keyed by content digest. Records are immutable once created.
type VerificationRecord struct {
	Digest      chainhash.Hash
	IsAuthentic bool
	Confidence  uint8
	CreatedAt   time.Time
	Verifier    AccountID
	Exists      bool
}

// StoreEvent is the durable notification emitted on every successful store.
// External observers subscribe to it for independent audit trails.
type StoreEvent struct {
	Digest      chainhash.Hash
	Verifier    AccountID
	IsAuthentic bool
	Confidence  uint8
	CreatedAt   time.Time
}

// TxStatus describes the lifecycle state of a submitted transaction.
type TxStatus string

var (
	// TxPending marks a transaction that has been sent but not yet included.
	TxPending TxStatus = "pending"
	// TxConfirmed marks a transaction that reached first inclusion.
	TxConfirmed TxStatus = "confirmed"
	// TxFailed marks a transaction rejected by the ledger.
	TxFailed TxStatus = "failed"
)

// PendingTransaction tracks a submitted write until it reaches a terminal
// status. BlockNumber and UnitsConsumed are meaningful only once confirmed.
type PendingTransaction struct {
	TxHash        chainhash.Hash
	Status        TxStatus
	BlockNumber   uint64
	UnitsConsumed uint64
}

// CostEstimate is the projected cost of a store operation.
type CostEstimate struct {
	UnitsEstimated uint64
	UnitPrice      uint64
	TotalCost      uint64
}

// SubmitResult is returned once a submitted write reaches first inclusion.
type SubmitResult struct {
	TxHash        chainhash.Hash
	BlockNumber   uint64
	UnitsConsumed uint64
}

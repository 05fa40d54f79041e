package txflow

import (
	"context"
	"errors"
	"fmt"

	"github.com/chainproof/chainproof-backend/internal/chain"
	"github.com/chainproof/chainproof-backend/internal/connection"
	"github.com/chainproof/chainproof-backend/internal/ledger"
)

// Kind classifies a transaction lifecycle failure. Every failure is surfaced
// exactly once, typed, with the raw provider diagnostic preserved.
type Kind string

var (
	KindValidation        Kind = "validation"
	KindWalletUnavailable Kind = "wallet_unavailable"
	KindNotConnected      Kind = "not_connected"
	KindBindingMissing    Kind = "binding_missing"
	KindUserRejected      Kind = "user_rejected"
	KindInsufficientFunds Kind = "insufficient_funds"
	KindWrongNetwork      Kind = "wrong_network"
	KindTimeout           Kind = "timeout"
	KindDuplicateRecord   Kind = "duplicate_record"
	KindUnknown           Kind = "unknown"
)

// Retriable reports whether a fresh submission can succeed after the caller
// addresses the cause. Validation failures need fixed input and a duplicate
// is terminal for its digest.
func (k Kind) Retriable() bool {
	switch k {
	case KindValidation, KindDuplicateRecord:
		return false
	default:
		return true
	}
}

// Error is a classified lifecycle failure. Code carries the raw provider
// code when one was present.
type Error struct {
	Kind    Kind
	Code    int
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}
	return string(e.Kind)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// newError builds a classified error without an underlying cause.
func newError(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// classify maps an underlying failure onto the taxonomy. The original error
// remains reachable through Unwrap for display and diagnostics.
func classify(err error) *Error {
	var classified *Error
	if errors.As(err, &classified) {
		return classified
	}

	kind := KindUnknown
	switch {
	case errors.Is(err, ledger.ErrEmptyDigest), errors.Is(err, ledger.ErrConfidenceRange):
		kind = KindValidation
	case errors.Is(err, ledger.ErrDuplicateRecord):
		kind = KindDuplicateRecord
	case errors.Is(err, connection.ErrWalletUnavailable):
		kind = KindWalletUnavailable
	case errors.Is(err, connection.ErrNotConnected):
		kind = KindNotConnected
	case errors.Is(err, connection.ErrWrongNetwork):
		kind = KindWrongNetwork
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		kind = KindTimeout
	}

	code := 0
	var perr *chain.ProviderError
	if errors.As(err, &perr) {
		code = perr.Code
		if kind == KindUnknown {
			switch perr.Code {
			case chain.CodeUserRejected:
				kind = KindUserRejected
			case chain.CodeInsufficientFunds:
				kind = KindInsufficientFunds
			case chain.CodeUnrecognizedChain:
				kind = KindWrongNetwork
			case chain.CodeResourceExhausted:
				kind = KindTimeout
			}
		}
	}

	return &Error{Kind: kind, Code: code, Message: err.Error(), Err: err}
}

// KindOf extracts the classification from err, or KindUnknown for errors
// that never passed through the lifecycle controller.
func KindOf(err error) Kind {
	var classified *Error
	if errors.As(err, &classified) {
		return classified.Kind
	}
	return KindUnknown
}

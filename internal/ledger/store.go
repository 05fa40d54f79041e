// Package ledger implements the on-ledger verification record store.
//
// The store mirrors the ledger's serialized execution model: every write runs
// to completion under a single lock, which makes the duplicate-digest check
// atomic. Records are immutable once created and the per-identity index is
// append-only.
package ledger

import (
	"errors"
	"sync"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/chainproof/chainproof-backend/internal/model"
)

var (
	// ErrEmptyDigest rejects the zero-value content digest.
	ErrEmptyDigest = errors.New("empty content digest")
	// ErrConfidenceRange rejects confidence values outside [0,100].
	ErrConfidenceRange = errors.New("confidence out of range [0,100]")
	// ErrDuplicateRecord rejects a second store for an already-recorded digest.
	ErrDuplicateRecord = errors.New("record already exists for digest")
)

// maxConfidence is the inclusive upper bound for a verdict confidence score.
const maxConfidence = 100

// Store persists verification records keyed by content digest.
type Store struct {
	mu        sync.Mutex
	logger    *zap.Logger
	now       func() time.Time
	records   map[chainhash.Hash]model.VerificationRecord
	userIndex map[model.AccountID][]chainhash.Hash
	subs      map[uuid.UUID]func(model.StoreEvent)
	subOrder  []uuid.UUID
}

// NewStore constructs an empty record store.
func NewStore(logger *zap.Logger) *Store {
	return &Store{
		logger:    logger,
		now:       time.Now,
		records:   make(map[chainhash.Hash]model.VerificationRecord),
		userIndex: make(map[model.AccountID][]chainhash.Hash),
		subs:      make(map[uuid.UUID]func(model.StoreEvent)),
	}
}

// StoreRecord creates a record for the digest on behalf of caller.
// It fails with no state change on an empty digest, an out-of-range
// confidence, or a duplicate digest.
func (s *Store) StoreRecord(caller model.AccountID, digest chainhash.Hash, isAuthentic bool, confidence uint8) (model.VerificationRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if digest == (chainhash.Hash{}) {
		return model.VerificationRecord{}, ErrEmptyDigest
	}
	if confidence > maxConfidence {
		return model.VerificationRecord{}, ErrConfidenceRange
	}
	if _, ok := s.records[digest]; ok {
		return model.VerificationRecord{}, ErrDuplicateRecord
	}

	record := model.VerificationRecord{
		Digest:      digest,
		IsAuthentic: isAuthentic,
		Confidence:  confidence,
		CreatedAt:   s.now(),
		Verifier:    caller,
		Exists:      true,
	}
	s.records[digest] = record
	s.userIndex[caller] = append(s.userIndex[caller], digest)

	s.logger.Info("verification record stored",
		zap.Stringer("digest", &digest),
		zap.String("verifier", string(caller)),
		zap.Bool("is_authentic", isAuthentic),
		zap.Uint8("confidence", confidence),
	)

	event := model.StoreEvent{
		Digest:      record.Digest,
		Verifier:    record.Verifier,
		IsAuthentic: record.IsAuthentic,
		Confidence:  record.Confidence,
		CreatedAt:   record.CreatedAt,
	}
	for _, id := range s.subOrder {
		if fn, ok := s.subs[id]; ok {
			fn(event)
		}
	}

	return record, nil
}

// GetRecord returns the record for digest. Absent digests yield a zero record
// with Exists=false; callers must check Exists, never infer existence from
// field values.
func (s *Store) GetRecord(digest chainhash.Hash) model.VerificationRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.records[digest]
	if !ok {
		return model.VerificationRecord{}
	}
	return record
}

// RecordExists reports whether a record has been stored for digest.
func (s *Store) RecordExists(digest chainhash.Hash) bool {
	return s.GetRecord(digest).Exists
}

// UserRecords returns the digests stored by identity, in call order.
func (s *Store) UserRecords(identity model.AccountID) []chainhash.Hash {
	s.mu.Lock()
	defer s.mu.Unlock()

	index := s.userIndex[identity]
	out := make([]chainhash.Hash, len(index))
	copy(out, index)
	return out
}

// UserRecordCount returns the number of records stored by identity.
func (s *Store) UserRecordCount(identity model.AccountID) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.userIndex[identity])
}

// Subscribe registers fn to receive the durable store notification for every
// successful store. Delivery is in subscription order, run to completion,
// within the store's serialized execution.
func (s *Store) Subscribe(fn func(model.StoreEvent)) uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := uuid.New()
	s.subs[id] = fn
	s.subOrder = append(s.subOrder, id)
	return id
}

// Unsubscribe removes a previously registered subscriber.
func (s *Store) Unsubscribe(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.subs, id)
	for i, sid := range s.subOrder {
		if sid == id {
			s.subOrder = append(s.subOrder[:i], s.subOrder[i+1:]...)
			break
		}
	}
}

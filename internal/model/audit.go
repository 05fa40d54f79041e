package model

import "time"

// AuditRecord is a row in the off-chain audit mirror of successful store
// events. Digest is the hex form of the content digest.
type AuditRecord struct {
	ChainID     ChainID
	Digest      string
	Verifier    AccountID
	IsAuthentic bool
	Confidence  uint8
	CreatedAt   time.Time
}

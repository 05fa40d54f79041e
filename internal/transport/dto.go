package transport

import (
	"time"

	"github.com/chainproof/chainproof-backend/internal/model"
)

type statusResponse struct {
	Connected bool   `json:"connected"`
	Account   string `json:"account,omitempty"`
	ChainID   string `json:"chain_id,omitempty"`
	Bound     bool   `json:"bound"`
}

func toStatusResponse(status model.ConnectionStatus) statusResponse {
	return statusResponse{
		Connected: status.Connected,
		Account:   string(status.Account),
		ChainID:   string(status.ChainID),
		Bound:     status.Bound,
	}
}

type bindRequest struct {
	Address string `json:"address"`
}

type networkRequest struct {
	Network string `json:"network"`
}

type storeRequest struct {
	Digest      string `json:"digest"`
	IsAuthentic bool   `json:"is_authentic"`
	Confidence  uint8  `json:"confidence"`
}

type estimateResponse struct {
	UnitsEstimated uint64 `json:"units_estimated"`
	UnitPrice      uint64 `json:"unit_price"`
	TotalCost      uint64 `json:"total_cost"`
}

type submitResponse struct {
	TxHash        string `json:"tx_hash"`
	BlockNumber   uint64 `json:"block_number"`
	UnitsConsumed uint64 `json:"units_consumed"`
}

type recordResponse struct {
	Digest      string    `json:"digest"`
	IsAuthentic bool      `json:"is_authentic"`
	Confidence  uint8     `json:"confidence"`
	CreatedAt   time.Time `json:"created_at,omitempty"`
	Verifier    string    `json:"verifier,omitempty"`
	Exists      bool      `json:"exists"`
}

func toRecordResponse(digest string, record model.VerificationRecord) recordResponse {
	resp := recordResponse{
		Digest: digest,
		Exists: record.Exists,
	}
	if record.Exists {
		resp.IsAuthentic = record.IsAuthentic
		resp.Confidence = record.Confidence
		resp.CreatedAt = record.CreatedAt
		resp.Verifier = string(record.Verifier)
	}
	return resp
}

type batchLookupRequest struct {
	Digests []string `json:"digests"`
}

type batchLookupResponse struct {
	Records []recordResponse `json:"records"`
}

type seedRecord struct {
	Digest      string `json:"digest"`
	IsAuthentic bool   `json:"is_authentic"`
	Confidence  uint8  `json:"confidence"`
	Verifier    string `json:"verifier"`
}

type enableMockRequest struct {
	LatencyMS uint64       `json:"latency_ms"`
	Account   string       `json:"account"`
	ChainID   string       `json:"chain_id"`
	Seed      []seedRecord `json:"seed"`
}

type errorResponse struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Kind    string `json:"kind"`
	Code    int    `json:"code,omitempty"`
	Message string `json:"message"`
}

package transport

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/chainproof/chainproof-backend/internal/connection"
	"github.com/chainproof/chainproof-backend/internal/mocksim"
	"github.com/chainproof/chainproof-backend/internal/model"
	"github.com/chainproof/chainproof-backend/internal/txflow"
	"github.com/chainproof/chainproof-backend/pkg/workerpool"
)

const (
	batchLookupWorkers = 8
	batchLookupMaxSize = 256
	defaultMockLatency = 150 * time.Millisecond
)

// Handler serves the verification client surface over HTTP JSON.
type Handler struct {
	logger   *zap.Logger
	verifier Verifier
	control  MockControl
}

// NewHandler returns a Handler. control may be nil, disabling the mock
// toggle endpoints.
func NewHandler(logger *zap.Logger, verifier Verifier, control MockControl) *Handler {
	return &Handler{
		logger:   logger,
		verifier: verifier,
		control:  control,
	}
}

// Register mounts all routes on r.
func (h *Handler) Register(r chi.Router) {
	r.Get("/health", h.handleHealth)
	r.Post("/v1/connect", h.handleConnect)
	r.Post("/v1/disconnect", h.handleDisconnect)
	r.Get("/v1/status", h.handleStatus)
	r.Post("/v1/bind", h.handleBind)
	r.Post("/v1/network", h.handleSwitchNetwork)
	r.Post("/v1/estimate", h.handleEstimate)
	r.Post("/v1/verifications", h.handleSubmit)
	r.Get("/v1/verifications/{digest}", h.handleLookup)
	r.Post("/v1/verifications/batch-lookup", h.handleBatchLookup)
	if h.control != nil {
		r.Post("/v1/mock/enable", h.handleEnableMock)
		r.Post("/v1/mock/disable", h.handleDisableMock)
	}
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) handleConnect(w http.ResponseWriter, r *http.Request) {
	status, err := h.verifier.Connect(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toStatusResponse(status))
}

func (h *Handler) handleDisconnect(w http.ResponseWriter, r *http.Request) {
	if err := h.verifier.Disconnect(r.Context()); err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toStatusResponse(h.verifier.Status()))
}

func (h *Handler) handleStatus(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, toStatusResponse(h.verifier.Status()))
}

func (h *Handler) handleBind(w http.ResponseWriter, r *http.Request) {
	var req bindRequest
	if !h.decode(w, r, &req) {
		return
	}
	if err := h.verifier.Bind(r.Context(), connection.StoreDescriptor(), model.Address(req.Address)); err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toStatusResponse(h.verifier.Status()))
}

func (h *Handler) handleSwitchNetwork(w http.ResponseWriter, r *http.Request) {
	var req networkRequest
	if !h.decode(w, r, &req) {
		return
	}
	if err := h.verifier.SwitchNetwork(r.Context(), model.Network(req.Network)); err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toStatusResponse(h.verifier.Status()))
}

func (h *Handler) handleEstimate(w http.ResponseWriter, r *http.Request) {
	var req storeRequest
	if !h.decode(w, r, &req) {
		return
	}
	digest, ok := h.parseDigest(w, req.Digest)
	if !ok {
		return
	}
	estimate, err := h.verifier.EstimateCost(r.Context(), digest, req.IsAuthentic, req.Confidence)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, estimateResponse{
		UnitsEstimated: estimate.UnitsEstimated,
		UnitPrice:      estimate.UnitPrice,
		TotalCost:      estimate.TotalCost,
	})
}

func (h *Handler) handleSubmit(w http.ResponseWriter, r *http.Request) {
	var req storeRequest
	if !h.decode(w, r, &req) {
		return
	}
	digest, ok := h.parseDigest(w, req.Digest)
	if !ok {
		return
	}
	result, err := h.verifier.Submit(r.Context(), digest, req.IsAuthentic, req.Confidence)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, submitResponse{
		TxHash:        result.TxHash.String(),
		BlockNumber:   result.BlockNumber,
		UnitsConsumed: result.UnitsConsumed,
	})
}

func (h *Handler) handleLookup(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "digest")
	digest, ok := h.parseDigest(w, raw)
	if !ok {
		return
	}
	record, err := h.verifier.Lookup(r.Context(), digest)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toRecordResponse(raw, record))
}

func (h *Handler) handleBatchLookup(w http.ResponseWriter, r *http.Request) {
	var req batchLookupRequest
	if !h.decode(w, r, &req) {
		return
	}
	if len(req.Digests) == 0 {
		h.writeJSON(w, http.StatusOK, batchLookupResponse{Records: []recordResponse{}})
		return
	}
	if len(req.Digests) > batchLookupMaxSize {
		h.writeError(w, &txflow.Error{Kind: txflow.KindValidation, Message: "too many digests in one batch"})
		return
	}

	type indexed struct {
		index int
		raw   string
	}
	items := make([]indexed, 0, len(req.Digests))
	for i, raw := range req.Digests {
		items = append(items, indexed{index: i, raw: raw})
	}

	var mu sync.Mutex
	records := make([]recordResponse, len(items))
	err := workerpool.Process(r.Context(), batchLookupWorkers, items,
		func(ctx context.Context, item indexed) error {
			digest, derr := chainhash.NewHashFromStr(item.raw)
			if derr != nil {
				return &txflow.Error{Kind: txflow.KindValidation, Message: "invalid digest " + item.raw}
			}
			record, lerr := h.verifier.Lookup(ctx, *digest)
			if lerr != nil {
				return lerr
			}
			mu.Lock()
			records[item.index] = toRecordResponse(item.raw, record)
			mu.Unlock()
			return nil
		}, nil)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, batchLookupResponse{Records: records})
}

func (h *Handler) handleEnableMock(w http.ResponseWriter, r *http.Request) {
	var req enableMockRequest
	if !h.decode(w, r, &req) {
		return
	}
	opts := mocksim.Options{
		Account: model.AccountID(req.Account),
		ChainID: model.ChainID(req.ChainID),
		Latency: time.Duration(req.LatencyMS) * time.Millisecond,
	}
	if opts.Latency == 0 {
		opts.Latency = defaultMockLatency
	}
	for _, seed := range req.Seed {
		digest, err := chainhash.NewHashFromStr(seed.Digest)
		if err != nil {
			h.writeError(w, &txflow.Error{Kind: txflow.KindValidation, Message: "invalid seed digest " + seed.Digest})
			return
		}
		opts.Seed = append(opts.Seed, model.VerificationRecord{
			Digest:      *digest,
			IsAuthentic: seed.IsAuthentic,
			Confidence:  seed.Confidence,
			Verifier:    model.AccountID(seed.Verifier),
		})
	}
	h.control.EnableMock(opts)
	h.writeJSON(w, http.StatusOK, map[string]bool{"mock_enabled": true})
}

func (h *Handler) handleDisableMock(w http.ResponseWriter, _ *http.Request) {
	h.control.DisableMock()
	h.writeJSON(w, http.StatusOK, map[string]bool{"mock_enabled": false})
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		h.writeError(w, &txflow.Error{Kind: txflow.KindValidation, Message: "invalid request body: " + err.Error()})
		return false
	}
	return true
}

func (h *Handler) parseDigest(w http.ResponseWriter, raw string) (chainhash.Hash, bool) {
	digest, err := chainhash.NewHashFromStr(raw)
	if err != nil {
		h.writeError(w, &txflow.Error{Kind: txflow.KindValidation, Message: "invalid digest: " + err.Error()})
		return chainhash.Hash{}, false
	}
	return *digest, true
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error("encode response", zap.Error(err))
	}
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	kind := txflow.KindOf(err)
	switch {
	case errors.Is(err, connection.ErrWalletUnavailable):
		kind = txflow.KindWalletUnavailable
	case errors.Is(err, connection.ErrNoAccounts):
		kind = txflow.KindWalletUnavailable
	case errors.Is(err, connection.ErrNotConnected):
		kind = txflow.KindNotConnected
	case errors.Is(err, connection.ErrWrongNetwork):
		kind = txflow.KindWrongNetwork
	}

	body := errorBody{Kind: string(kind), Message: err.Error()}
	var terr *txflow.Error
	if errors.As(err, &terr) {
		body.Code = terr.Code
	}

	h.logger.Warn("request failed", zap.String("kind", body.Kind), zap.Error(err))
	h.writeJSON(w, statusOf(kind), errorResponse{Error: body})
}

func statusOf(kind txflow.Kind) int {
	switch kind {
	case txflow.KindValidation:
		return http.StatusBadRequest
	case txflow.KindWalletUnavailable, txflow.KindNotConnected, txflow.KindBindingMissing:
		return http.StatusConflict
	case txflow.KindUserRejected:
		return http.StatusForbidden
	case txflow.KindInsufficientFunds:
		return http.StatusPaymentRequired
	case txflow.KindWrongNetwork:
		return http.StatusConflict
	case txflow.KindTimeout:
		return http.StatusGatewayTimeout
	case txflow.KindDuplicateRecord:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

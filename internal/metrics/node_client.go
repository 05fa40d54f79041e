package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/chainproof/chainproof-backend/internal/model"
)

var (
	nodeClientRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "chainproof",
		Subsystem: "node_client",
		Name:      "operations_total",
		Help:      "Count of ledger node operations.",
	}, []string{"operation", "chain_id", "status"})
	nodeClientRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "chainproof",
		Subsystem: "node_client",
		Name:      "operation_duration_seconds",
		Help:      "Duration of ledger node operations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "chain_id", "status"})
)

// NodeClient tracks metrics for calls to a ledger node.
type NodeClient struct {
	chainID model.ChainID
}

// NewNodeClient constructs a metrics collector for node calls.
func NewNodeClient(chainID model.ChainID) *NodeClient {
	if chainID == "" {
		chainID = "unknown"
	}
	return &NodeClient{chainID: chainID}
}

// Observe records a single node call outcome and duration.
func (m NodeClient) Observe(operation string, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}

	nodeClientRequestsTotal.WithLabelValues(operation, string(m.chainID), status).Inc()
	nodeClientRequestDuration.WithLabelValues(operation, string(m.chainID), status).Observe(time.Since(started).Seconds())
}

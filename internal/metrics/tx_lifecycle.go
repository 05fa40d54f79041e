package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	txLifecycleOperationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "chainproof",
		Subsystem: "tx_lifecycle",
		Name:      "operations_total",
		Help:      "Count of transaction lifecycle operations.",
	}, []string{"operation", "status"})
	txLifecycleOperationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "chainproof",
		Subsystem: "tx_lifecycle",
		Name:      "operation_duration_seconds",
		Help:      "Duration of transaction lifecycle operations.",
		Buckets:   []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 30, 60, 120},
	}, []string{"operation", "status"})
)

// TxLifecycle tracks metrics for estimate and submit operations. Submission
// latency is dominated by inclusion waits, hence the wide buckets.
type TxLifecycle struct{}

// NewTxLifecycle constructs a metrics collector for lifecycle operations.
func NewTxLifecycle() *TxLifecycle {
	return &TxLifecycle{}
}

// Observe records a single lifecycle operation outcome and duration.
func (m TxLifecycle) Observe(operation string, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}

	txLifecycleOperationsTotal.WithLabelValues(operation, status).Inc()
	txLifecycleOperationDuration.WithLabelValues(operation, status).Observe(time.Since(started).Seconds())
}

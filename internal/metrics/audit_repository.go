package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/chainproof/chainproof-backend/internal/model"
)

var (
	auditRepositoryRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "chainproof",
		Subsystem: "audit_repository",
		Name:      "operations_total",
		Help:      "Count of audit repository operations.",
	}, []string{"operation", "chain_id", "status"})
	auditRepositoryRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "chainproof",
		Subsystem: "audit_repository",
		Name:      "operation_duration_seconds",
		Help:      "Duration of audit repository operations.",
		Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 15, 20, 30},
	}, []string{"operation", "chain_id", "status"})
)

// AuditRepository tracks metrics for ClickHouse audit repository operations.
type AuditRepository struct{}

// NewAuditRepository creates an AuditRepository metrics collector.
func NewAuditRepository() *AuditRepository {
	return &AuditRepository{}
}

// Observe records duration and status of a repository operation.
func (m AuditRepository) Observe(operation string, chainID model.ChainID, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	if chainID == "" {
		chainID = "unknown"
	}

	auditRepositoryRequestsTotal.WithLabelValues(operation, string(chainID), status).Inc()
	auditRepositoryRequestDuration.WithLabelValues(operation, string(chainID), status).Observe(time.Since(started).Seconds())
}

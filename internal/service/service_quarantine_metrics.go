package service

import (
	"context"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/MKhiriev/quarantine-vault/models"
)

// QuarantineMetrics holds the Prometheus collectors of the lifecycle service.
type QuarantineMetrics struct {
	OperationsTotal   *prometheus.CounterVec   // quarantine_operations_total{operation,result}
	OperationDuration *prometheus.HistogramVec // quarantine_operation_duration_seconds{operation}

	BytesQuarantined prometheus.Counter // quarantine_bytes_quarantined_total
	ItemsExpired     prometheus.Counter // quarantine_items_expired_total
	ContentAccessed  prometheus.Counter // quarantine_content_accessed_total
}

// NewQuarantineMetrics registers the service collectors with registry, or
// with the default registerer when registry is nil.
func NewQuarantineMetrics(registry prometheus.Registerer) *QuarantineMetrics {
	if registry == nil {
		registry = prometheus.DefaultRegisterer
	}
	factory := promauto.With(registry)

	return &QuarantineMetrics{
		OperationsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "quarantine_operations_total",
			Help: "Quarantine service calls by operation and result",
		}, []string{"operation", "result"}),

		OperationDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "quarantine_operation_duration_seconds",
			Help:    "Quarantine service call duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"operation"}),

		BytesQuarantined: factory.NewCounter(prometheus.CounterOpts{
			Name: "quarantine_bytes_quarantined_total",
			Help: "Total plaintext bytes accepted into quarantine",
		}),

		ItemsExpired: factory.NewCounter(prometheus.CounterOpts{
			Name: "quarantine_items_expired_total",
			Help: "Total records expired by sweeps",
		}),

		ContentAccessed: factory.NewCounter(prometheus.CounterOpts{
			Name: "quarantine_content_accessed_total",
			Help: "Total decrypted content retrievals",
		}),
	}
}

// observe records one call of operation that started at start.
func (m *QuarantineMetrics) observe(operation string, start time.Time, err error) {
	m.OperationsTotal.WithLabelValues(operation, resultLabel(err)).Inc()
	m.OperationDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}

func resultLabel(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrValidation):
		return "invalid"
	case errors.Is(err, ErrRecordNotFound):
		return "not_found"
	default:
		return "error"
	}
}

// QuarantineMetricsService records call counts, latencies and volumes of
// the wrapped service.
type QuarantineMetricsService struct {
	inner   QuarantineService
	metrics *QuarantineMetrics
}

func NewQuarantineMetricsService(metrics *QuarantineMetrics) QuarantineServiceWrapper {
	return &QuarantineMetricsService{metrics: metrics}
}

func (m *QuarantineMetricsService) Store(ctx context.Context, plaintext []byte, req models.QuarantineRequest) (string, error) {
	start := time.Now()
	id, err := m.inner.Store(ctx, plaintext, req)
	m.metrics.observe("store", start, err)
	if err == nil {
		m.metrics.BytesQuarantined.Add(float64(len(plaintext)))
	}
	return id, err
}

func (m *QuarantineMetricsService) GetMetadata(ctx context.Context, id string) (models.QuarantineRecord, bool, error) {
	start := time.Now()
	record, found, err := m.inner.GetMetadata(ctx, id)
	m.metrics.observe("get_metadata", start, err)
	return record, found, err
}

func (m *QuarantineMetricsService) UpdateStatus(ctx context.Context, update models.StatusUpdate) error {
	start := time.Now()
	err := m.inner.UpdateStatus(ctx, update)
	m.metrics.observe("update_status", start, err)
	return err
}

func (m *QuarantineMetricsService) SignedContentURL(ctx context.Context, id string, ttl time.Duration) (models.SignedLink, error) {
	start := time.Now()
	link, err := m.inner.SignedContentURL(ctx, id, ttl)
	m.metrics.observe("signed_content_url", start, err)
	return link, err
}

func (m *QuarantineMetricsService) SweepExpired(ctx context.Context, now time.Time) (int, error) {
	start := time.Now()
	count, err := m.inner.SweepExpired(ctx, now)
	m.metrics.observe("sweep_expired", start, err)
	if err == nil {
		m.metrics.ItemsExpired.Add(float64(count))
	}
	return count, err
}

func (m *QuarantineMetricsService) ListRecords(ctx context.Context, filter models.RecordFilter) ([]models.QuarantineRecord, error) {
	start := time.Now()
	records, err := m.inner.ListRecords(ctx, filter)
	m.metrics.observe("list_records", start, err)
	return records, err
}

func (m *QuarantineMetricsService) RetrieveContent(ctx context.Context, id string) ([]byte, models.QuarantineRecord, error) {
	start := time.Now()
	content, record, err := m.inner.RetrieveContent(ctx, id)
	m.metrics.observe("retrieve_content", start, err)
	if err == nil {
		m.metrics.ContentAccessed.Inc()
	}
	return content, record, err
}

func (m *QuarantineMetricsService) Wrap(wrapped QuarantineService) QuarantineService {
	m.inner = wrapped
	return m
}

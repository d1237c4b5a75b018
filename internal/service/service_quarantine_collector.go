package service

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/MKhiriev/quarantine-vault/internal/logger"
	"github.com/MKhiriev/quarantine-vault/internal/store"
	"github.com/MKhiriev/quarantine-vault/models"
)

// recordStatusQueryTimeout bounds the count query run on each scrape.
const recordStatusQueryTimeout = 5 * time.Second

var recordStatusDesc = prometheus.NewDesc(
	"quarantine_records",
	"Quarantine records currently stored, by lifecycle status",
	[]string{"status"}, nil,
)

// RecordStatusCollector exports the record count per status. The counts are
// read from the metadata store at scrape time.
type RecordStatusCollector struct {
	records store.QuarantineRepository
	logger  *logger.Logger
}

// NewRecordStatusCollector returns a collector over records.
func NewRecordStatusCollector(records store.QuarantineRepository, logger *logger.Logger) *RecordStatusCollector {
	return &RecordStatusCollector{records: records, logger: logger}
}

func (c *RecordStatusCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- recordStatusDesc
}

// Collect emits one gauge per known status, zero for statuses with no
// records. A failed query emits nothing so the series go stale instead of
// reporting zeros.
func (c *RecordStatusCollector) Collect(ch chan<- prometheus.Metric) {
	ctx, cancel := context.WithTimeout(context.Background(), recordStatusQueryTimeout)
	defer cancel()

	counts, err := c.records.CountByStatus(ctx)
	if err != nil {
		c.logger.Err(err).Str("func", "RecordStatusCollector.Collect").Msg("counting records by status failed")
		return
	}

	for _, status := range models.AllStatuses {
		ch <- prometheus.MustNewConstMetric(recordStatusDesc, prometheus.GaugeValue, float64(counts[status]), string(status))
	}
}

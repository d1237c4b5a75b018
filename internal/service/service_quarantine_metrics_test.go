package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/quarantine-vault/internal/logger"
	"github.com/MKhiriev/quarantine-vault/internal/mock"
	"github.com/MKhiriev/quarantine-vault/models"
)

func TestResultLabel(t *testing.T) {
	assert.Equal(t, "ok", resultLabel(nil))
	assert.Equal(t, "invalid", resultLabel(fmt.Errorf("%w: %w", ErrValidation, ErrValidationNoID)))
	assert.Equal(t, "not_found", resultLabel(ErrRecordNotFound))
	assert.Equal(t, "error", resultLabel(errors.New("boom")))
}

func TestQuarantineMetricsService(t *testing.T) {
	registry := prometheus.NewRegistry()
	metrics := NewQuarantineMetrics(registry)

	inner := mock.NewMockQuarantineService(gomock.NewController(t))
	svc := NewQuarantineMetricsService(metrics).Wrap(inner)
	ctx := context.Background()
	now := time.Now()

	inner.EXPECT().Store(ctx, []byte("secret"), gomock.Any()).Return("id", nil)
	inner.EXPECT().Store(ctx, []byte("other"), gomock.Any()).Return("", errors.New("upload failed"))
	inner.EXPECT().SweepExpired(ctx, now).Return(3, nil)
	inner.EXPECT().RetrieveContent(ctx, "id").Return([]byte("secret"), models.QuarantineRecord{}, nil)
	inner.EXPECT().GetMetadata(ctx, "gone").Return(models.QuarantineRecord{}, false, nil)
	inner.EXPECT().UpdateStatus(ctx, gomock.Any()).Return(ErrRecordNotFound)

	_, err := svc.Store(ctx, []byte("secret"), models.QuarantineRequest{Tier: "HIGH"})
	require.NoError(t, err)
	_, err = svc.Store(ctx, []byte("other"), models.QuarantineRequest{Tier: "HIGH"})
	require.Error(t, err)
	_, err = svc.SweepExpired(ctx, now)
	require.NoError(t, err)
	_, _, err = svc.RetrieveContent(ctx, "id")
	require.NoError(t, err)
	_, _, err = svc.GetMetadata(ctx, "gone")
	require.NoError(t, err)
	err = svc.UpdateStatus(ctx, models.StatusUpdate{ID: "gone", Status: models.StatusReleased})
	require.ErrorIs(t, err, ErrRecordNotFound)

	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.OperationsTotal.WithLabelValues("store", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.OperationsTotal.WithLabelValues("store", "error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.OperationsTotal.WithLabelValues("update_status", "not_found")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.OperationsTotal.WithLabelValues("get_metadata", "ok")))
	// only successful stores count towards volume
	assert.Equal(t, 6.0, testutil.ToFloat64(metrics.BytesQuarantined))
	assert.Equal(t, 3.0, testutil.ToFloat64(metrics.ItemsExpired))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.ContentAccessed))
	assert.Equal(t, 5, testutil.CollectAndCount(metrics.OperationDuration))
}

func TestDecorateQuarantineService_CountsRejectedRequests(t *testing.T) {
	registry := prometheus.NewRegistry()
	metrics := NewQuarantineMetrics(registry)

	// no expectations: a rejected request must not reach the core service
	core := mock.NewMockQuarantineService(gomock.NewController(t))
	svc := decorateQuarantineService(core, metrics)
	ctx := context.Background()

	_, err := svc.Store(ctx, []byte("secret"), models.QuarantineRequest{})
	require.ErrorIs(t, err, ErrValidation)
	err = svc.UpdateStatus(ctx, models.StatusUpdate{Status: models.StatusReleased})
	require.ErrorIs(t, err, ErrValidationNoID)

	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.OperationsTotal.WithLabelValues("store", "invalid")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.OperationsTotal.WithLabelValues("update_status", "invalid")))
	assert.Equal(t, 0.0, testutil.ToFloat64(metrics.BytesQuarantined))
}

func TestRecordStatusCollector(t *testing.T) {
	records := mock.NewMockQuarantineRepository(gomock.NewController(t))
	collector := NewRecordStatusCollector(records, logger.Nop())

	records.EXPECT().CountByStatus(gomock.Any()).Return(map[models.QuarantineStatus]int64{
		models.StatusQuarantined: 4,
		models.StatusExpired:     2,
	}, nil)

	expected := `
# HELP quarantine_records Quarantine records currently stored, by lifecycle status
# TYPE quarantine_records gauge
quarantine_records{status="DELETED"} 0
quarantine_records{status="EXPIRED"} 2
quarantine_records{status="QUARANTINED"} 4
quarantine_records{status="RELEASED"} 0
quarantine_records{status="UNDER_REVIEW"} 0
`
	require.NoError(t, testutil.CollectAndCompare(collector, strings.NewReader(expected), "quarantine_records"))
}

func TestRecordStatusCollector_QueryErrorEmitsNothing(t *testing.T) {
	records := mock.NewMockQuarantineRepository(gomock.NewController(t))
	collector := NewRecordStatusCollector(records, logger.Nop())

	records.EXPECT().CountByStatus(gomock.Any()).Return(nil, errors.New("db down"))

	assert.Equal(t, 0, testutil.CollectAndCount(collector))
}

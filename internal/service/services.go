package service

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/MKhiriev/quarantine-vault/internal/config"
	"github.com/MKhiriev/quarantine-vault/internal/crypto"
	"github.com/MKhiriev/quarantine-vault/internal/logger"
	"github.com/MKhiriev/quarantine-vault/internal/store"
)

type Services struct {
	QuarantineService  QuarantineService
	ContentLinkService ContentLinkService
	AuthService        AuthService
	AppInfoService     AppInfoService
}

// NewServices builds the envelope engine from the configured master key and
// wires every service. metricsRegistry may be nil to use the default
// Prometheus registerer.
func NewServices(storages *store.Storages, cfg *config.StructuredConfig, metricsRegistry prometheus.Registerer, logger *logger.Logger) (*Services, error) {
	masterKey, err := crypto.DecodeMasterKey(cfg.App.MasterKey)
	if err != nil {
		return nil, err
	}
	engine, err := crypto.NewEnvelopeEngine(masterKey)
	clear(masterKey)
	if err != nil {
		return nil, err
	}

	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("app info service: %w", err)
	}

	if metricsRegistry == nil {
		metricsRegistry = prometheus.DefaultRegisterer
	}
	if err := metricsRegistry.Register(NewRecordStatusCollector(storages.Records, logger)); err != nil {
		return nil, fmt.Errorf("record status collector: %w", err)
	}

	quarantine := decorateQuarantineService(
		NewQuarantineService(engine, storages, cfg.App.QuarantineTTL, logger),
		NewQuarantineMetrics(metricsRegistry),
	)

	return &Services{
		QuarantineService:  quarantine,
		ContentLinkService: NewContentLinkService(storages.LinkResolver, storages.Objects, logger),
		AuthService:        NewAuthService(cfg.App, logger),
		AppInfoService:     appInfo,
	}, nil
}

// decorateQuarantineService wraps core with validation and then metrics, so
// rejected requests are counted with result "invalid" and never reach core.
func decorateQuarantineService(core QuarantineService, metrics *QuarantineMetrics) QuarantineService {
	quarantine := NewQuarantineValidationService().Wrap(core)
	return NewQuarantineMetricsService(metrics).Wrap(quarantine)
}

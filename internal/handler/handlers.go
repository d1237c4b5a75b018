package handler

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/MKhiriev/quarantine-vault/internal/config"
	"github.com/MKhiriev/quarantine-vault/internal/handler/http"
	"github.com/MKhiriev/quarantine-vault/internal/logger"
	"github.com/MKhiriev/quarantine-vault/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers creates the transport handlers enabled by cfg. gatherer backs
// the /metrics endpoint and may be nil.
func NewHandlers(services *service.Services, cfg config.Server, gatherer prometheus.Gatherer, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, cfg, gatherer, logger),
	}, nil
}

package http

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/MKhiriev/quarantine-vault/internal/config"
	"github.com/MKhiriev/quarantine-vault/internal/logger"
	"github.com/MKhiriev/quarantine-vault/internal/service"
)

type Handler struct {
	services *service.Services

	requestTimeout time.Duration
	metrics        http.Handler

	logger *logger.Logger
}

// NewHandler builds the HTTP handler. gatherer backs the /metrics endpoint;
// nil selects the default Prometheus gatherer.
func NewHandler(services *service.Services, cfg config.Server, gatherer prometheus.Gatherer, logger *logger.Logger) *Handler {
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = config.DefaultRequestTimeout
	}

	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		requestTimeout: timeout,
		metrics:        promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}),
		logger:         logger,
	}
}

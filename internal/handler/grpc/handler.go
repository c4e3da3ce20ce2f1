// Package grpc exposes the standard gRPC health service of the changelog
// server. Load balancers and orchestrators probe it instead of the REST
// liveness route.
package grpc

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/MKhiriev/go-budget-vault/internal/logger"
	"github.com/MKhiriev/go-budget-vault/internal/service"
)

// ChangeLogServiceName is the health service name reported next to the
// overall ("") status.
const ChangeLogServiceName = "budgetvault.ChangeLog"

// Handler is the root gRPC transport handler. It owns the health server
// and keeps its status in line with database reachability.
type Handler struct {
	// services provides the database ping behind the health status.
	services *service.Services

	health *health.Server

	logger *logger.Logger
}

// NewHandler constructs a [Handler]. The status starts as NOT_SERVING until
// the first probe succeeds.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	h := &Handler{
		services: services,
		health:   health.NewServer(),
		logger:   logger,
	}
	h.setStatus(healthpb.HealthCheckResponse_NOT_SERVING)

	logger.Debug().Msg("gRPC handler created")
	return h
}

// Register attaches the health service to s.
func (h *Handler) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, h.health)
}

// Probe pings the database once and publishes the resulting status.
func (h *Handler) Probe(ctx context.Context) healthpb.HealthCheckResponse_ServingStatus {
	status := healthpb.HealthCheckResponse_SERVING
	if err := h.services.ChangeLogService.Ping(ctx); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*Handler.Probe").Msg("database ping failed")
		status = healthpb.HealthCheckResponse_NOT_SERVING
	}
	h.setStatus(status)
	return status
}

// Watch probes every interval until ctx is done, then reports NOT_SERVING
// for good so in-flight watchers see the shutdown.
func (h *Handler) Watch(ctx context.Context, interval time.Duration) {
	h.Probe(ctx)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			h.health.Shutdown()
			return
		case <-ticker.C:
			h.Probe(ctx)
		}
	}
}

func (h *Handler) setStatus(status healthpb.HealthCheckResponse_ServingStatus) {
	h.health.SetServingStatus("", status)
	h.health.SetServingStatus(ChangeLogServiceName, status)
}

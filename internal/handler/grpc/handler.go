// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package grpc exposes the standard grpc.health.v1.Health service of the
// settings server.
package grpc

import (
	"context"
	"time"

	"github.com/MKhiriev/go-settings-sync/internal/logger"
	"github.com/MKhiriev/go-settings-sync/internal/service"
	"github.com/MKhiriev/go-settings-sync/internal/store"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// SettingsServiceName is the health-check service name of the settings API.
// The empty name reports the server as a whole.
const SettingsServiceName = "settings.v1.Settings"

const defaultProbeInterval = 10 * time.Second

// Handler is the root gRPC transport handler.
//
// The server as a whole is SERVING while the HTTP API is up. The settings
// service additionally follows the database health probe.
type Handler struct {
	health  *health.Server
	checker store.HealthChecker

	logger *logger.Logger
}

// NewHandler returns a Handler that reports NOT_SERVING until [Handler.SetServing]
// is called.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	h := &Handler{
		health:  health.NewServer(),
		checker: services.HealthChecker,
		logger:  logger,
	}
	h.setStatus(healthpb.HealthCheckResponse_NOT_SERVING)

	logger.Debug().Msg("gRPC handler created")
	return h
}

// Register adds the health service to s.
func (h *Handler) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, h.health)
}

func (h *Handler) SetServing() {
	h.setStatus(healthpb.HealthCheckResponse_SERVING)
}

// Shutdown switches every service to NOT_SERVING and ignores later updates.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}

// Probe checks the database once and updates the settings service status.
func (h *Handler) Probe(ctx context.Context) {
	if h.checker == nil {
		return
	}

	status := healthpb.HealthCheckResponse_SERVING
	if err := h.checker.Healthy(ctx); err != nil {
		h.logger.Warn().Err(err).Msg("database health probe failed")
		status = healthpb.HealthCheckResponse_NOT_SERVING
	}
	h.health.SetServingStatus(SettingsServiceName, status)
}

// Watch probes the database every interval until ctx is done. A
// non-positive interval falls back to 10 seconds.
func (h *Handler) Watch(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = defaultProbeInterval
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		h.Probe(ctx)

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func (h *Handler) setStatus(status healthpb.HealthCheckResponse_ServingStatus) {
	h.health.SetServingStatus("", status)
	h.health.SetServingStatus(SettingsServiceName, status)
}

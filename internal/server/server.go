// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"fmt"
	"net"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/go-settings-sync/internal/config"
	"github.com/MKhiriev/go-settings-sync/internal/handler"
	"github.com/MKhiriev/go-settings-sync/internal/logger"
)

const shutdownTimeout = 10 * time.Second

type server struct {
	httpServer *httpServer
	gRPCServer *grpcServer
	handlers   *handler.Handlers
	logger     *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	servers := &server{handlers: handlers, logger: logger}

	if cfg.HTTPAddress != "" && handlers.HTTP != nil {
		servers.httpServer = newHTTPServer(handlers.HTTP.Init(), cfg, logger)
	}
	if cfg.GRPCAddress != "" && handlers.GRPC != nil {
		servers.gRPCServer = newGRPCServer(handlers.GRPC, cfg, logger)
	}

	if servers.httpServer == nil && servers.gRPCServer == nil {
		return nil, errNoServersAreCreated
	}

	return servers, nil
}

func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	if err := s.Run(ctx); err != nil {
		s.logger.Error().Err(err).Msg("error running server")
	}
}

// Run binds every enabled transport, marks the health service SERVING and
// blocks until ctx is done.
func (s *server) Run(ctx context.Context) error {
	if s.httpServer == nil && s.gRPCServer == nil {
		return errNoServersToRun
	}

	var httpListener, grpcListener net.Listener
	var err error

	if s.httpServer != nil {
		if httpListener, err = s.httpServer.listen(); err != nil {
			return fmt.Errorf("http listen: %w", err)
		}
	}
	if s.gRPCServer != nil {
		if grpcListener, err = s.gRPCServer.listen(); err != nil {
			if httpListener != nil {
				httpListener.Close()
			}
			return fmt.Errorf("grpc listen: %w", err)
		}
	}

	if s.httpServer != nil {
		s.logger.Info().Str("address", httpListener.Addr().String()).Msg("Launching HTTP server")
		go s.httpServer.RunServer(httpListener)
	}
	if s.gRPCServer != nil {
		s.logger.Info().Str("address", grpcListener.Addr().String()).Msg("Launching gRPC server")
		go s.gRPCServer.RunServer(grpcListener)

		// the whole server follows the HTTP API
		if s.httpServer != nil {
			s.handlers.GRPC.SetServing()
		}
		go s.handlers.GRPC.Watch(ctx, 0)
	}

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	s.Shutdown(shutdownCtx)

	s.logger.Info().Msg("server Shutdown gracefully")
	return nil
}

// Shutdown reports NOT_SERVING first so that health checks see the server
// draining while HTTP requests finish.
func (s *server) Shutdown(ctx context.Context) {
	if s.gRPCServer != nil {
		s.handlers.GRPC.Shutdown()
	}

	if s.httpServer != nil {
		s.httpServer.Shutdown(ctx)
	}

	if s.gRPCServer != nil {
		s.gRPCServer.Shutdown()
	}
}

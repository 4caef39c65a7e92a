// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"net"

	"github.com/MKhiriev/go-settings-sync/internal/config"
	myGRPC "github.com/MKhiriev/go-settings-sync/internal/handler/grpc"
	"github.com/MKhiriev/go-settings-sync/internal/logger"

	"google.golang.org/grpc"
)

type grpcServer struct {
	address string

	server *grpc.Server

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) *grpcServer {
	s := grpc.NewServer()
	handler.Register(s)

	return &grpcServer{
		address: cfg.GRPCAddress,
		server:  s,
		logger:  logger,
	}
}

func (g *grpcServer) listen() (net.Listener, error) {
	return net.Listen("tcp", g.address)
}

func (g *grpcServer) RunServer(listener net.Listener) {
	if err := g.server.Serve(listener); err != nil {
		g.logger.Error().Err(err).Msg("gRPC server Serve")
	}
}

func (g *grpcServer) Shutdown() {
	g.logger.Info().Msg("gRPC server Shutdown")
	g.server.GracefulStop()
}

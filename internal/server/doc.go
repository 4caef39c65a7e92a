// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server wires and runs the transport servers of the settings
// server.
//
// It provides orchestration for HTTP and gRPC server lifecycles, including
// startup, signal handling, health reporting and graceful shutdown of all
// enabled transports.
package server

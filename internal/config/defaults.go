// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

const (
	defaultRequestTimeout = 15 * time.Second
	defaultLocalDSN       = "settings.db"
	defaultAdapterAddress = "http://localhost:8080"
	defaultHTTPAddress    = "localhost:8080"
	defaultGRPCAddress    = "localhost:3200"
)

// defaults returns the values used for fields that no other source set.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		Storage: Storage{
			Local: Local{DSN: defaultLocalDSN},
		},
		Server: Server{
			HTTPAddress:    defaultHTTPAddress,
			GRPCAddress:    defaultGRPCAddress,
			RequestTimeout: defaultRequestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    defaultAdapterAddress,
			RequestTimeout: defaultRequestTimeout,
		},
	}
}

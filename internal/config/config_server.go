// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// ServerConfig is the subset of [StructuredConfig] the settings server needs.
type ServerConfig struct {
	App     App
	Server  Server
	Storage DB
}

// GetServerConfig builds and validates the server config view.
func GetServerConfig(args []string) (*ServerConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := &ServerConfig{
		App:     cfg.App,
		Server:  cfg.Server,
		Storage: cfg.Storage.DB,
	}

	return serverCfg, serverCfg.validate()
}

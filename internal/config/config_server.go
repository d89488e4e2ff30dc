// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// ServerConfig is the validated configuration view of the backend binary.
type ServerConfig struct {
	App     App
	Storage Storage
	Server  Server
	Workers Workers
}

// GetServerConfig builds and validates the server configuration from the
// merged structured configuration.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newServerConfig(cfg)
}

func newServerConfig(cfg *StructuredConfig) (*ServerConfig, error) {
	serverCfg := &ServerConfig{
		App:     cfg.App,
		Storage: cfg.Storage,
		Server:  cfg.Server,
		Workers: cfg.Workers,
	}

	if err := serverCfg.validate(); err != nil {
		return nil, err
	}
	return serverCfg, nil
}

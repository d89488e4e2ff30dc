// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"net/url"
	"strings"
)

// validate checks that the server configuration satisfies all startup
// invariants.
func (cfg *ServerConfig) validate() error {
	if cfg.App.TokenSignKey == "" || cfg.App.SessionDuration <= 0 {
		return ErrInvalidAppConfigs
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 ||
		cfg.Server.RateLimit <= 0 || cfg.Server.RateBurst < 1 {
		return ErrInvalidServerConfigs
	}

	if cfg.Workers.SessionCleanupInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.RequestTimeout <= 0 ||
		cfg.Adapter.DatabaseID == "" || cfg.Adapter.CollectionID == "" {
		return ErrInvalidAdapterConfigs
	}

	u, err := url.Parse(cfg.Adapter.Endpoint)
	if err != nil || u.Host == "" {
		return ErrInvalidAdapterConfigs
	}

	return nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

const (
	defaultHTTPAddress            = "localhost:8080"
	defaultGRPCAddress            = "localhost:9090"
	defaultRequestTimeout         = 30 * time.Second
	defaultRateLimit              = 5
	defaultRateBurst              = 10
	defaultTokenIssuer            = "go-note-keeper"
	defaultSessionDuration        = 30 * 24 * time.Hour
	defaultVersion                = "dev"
	defaultEndpoint               = "http://localhost:8080"
	defaultDatabaseID             = "main"
	defaultCollectionID           = "notes"
	defaultAdapterRequestTimeout  = 15 * time.Second
	defaultSessionCleanupInterval = time.Hour
)

// defaultConfig returns the lowest-priority values. Secrets and DSNs have no
// defaults.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:     defaultTokenIssuer,
			SessionDuration: defaultSessionDuration,
			Version:         defaultVersion,
		},
		Server: Server{
			HTTPAddress:    defaultHTTPAddress,
			GRPCAddress:    defaultGRPCAddress,
			RequestTimeout: defaultRequestTimeout,
			RateLimit:      defaultRateLimit,
			RateBurst:      defaultRateBurst,
		},
		Adapter: Adapter{
			Endpoint:       defaultEndpoint,
			DatabaseID:     defaultDatabaseID,
			CollectionID:   defaultCollectionID,
			RequestTimeout: defaultAdapterRequestTimeout,
		},
		Workers: Workers{
			SessionCleanupInterval: defaultSessionCleanupInterval,
		},
	}
}

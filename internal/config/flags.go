// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses the configuration flags found in args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-grpc-address grpc server address in format [host]:[port]
//	-d database DSN (PostgreSQL URL or SQLite path)
//	-c/-config json file path with configs
//	-token-sign-key session signing key
//	-token-issuer session issuer name
//	-session-duration session lifetime (e.g., "720h")
//	-request-timeout server request timeout (e.g., "30s", "1m")
//	-rate-limit auth requests per second per client
//	-rate-burst auth request burst per client
//	-project-id project identifier, checked by the server and sent by the client
//	-endpoint backend base URL
//	-database-id notes database identifier
//	-collection-id notes collection identifier
//	-adapter-timeout client request timeout
//	-cleanup-interval expired session sweep period
func ParseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("go-note-keeper", flag.ContinueOnError)

	var serverAddress, grpcServerAddress NetAddress
	var databaseDSN string
	var jsonConfigPath string
	var tokenSignKey string
	var tokenIssuer string
	var sessionDuration time.Duration
	var requestTimeout time.Duration
	var rateLimit float64
	var rateBurst int
	var projectID string
	var endpoint string
	var databaseID string
	var collectionID string
	var adapterTimeout time.Duration
	var cleanupInterval time.Duration

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.Var(&grpcServerAddress, "grpc-address", "Net grpc server address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Session signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Session issuer")
	fs.DurationVar(&sessionDuration, "session-duration", 0, "Session lifetime (e.g., 720h)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.Float64Var(&rateLimit, "rate-limit", 0, "Auth requests per second per client")
	fs.IntVar(&rateBurst, "rate-burst", 0, "Auth request burst per client")
	fs.StringVar(&projectID, "project-id", "", "Project identifier")
	fs.StringVar(&endpoint, "endpoint", "", "Backend base URL")
	fs.StringVar(&databaseID, "database-id", "", "Notes database identifier")
	fs.StringVar(&collectionID, "collection-id", "", "Notes collection identifier")
	fs.DurationVar(&adapterTimeout, "adapter-timeout", 0, "Client request timeout (e.g., 15s)")
	fs.DurationVar(&cleanupInterval, "cleanup-interval", 0, "Expired session sweep period (e.g., 1h)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey:    tokenSignKey,
			TokenIssuer:     tokenIssuer,
			SessionDuration: sessionDuration,
			ProjectID:       projectID,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			GRPCAddress:    grpcServerAddress.String(),
			RequestTimeout: requestTimeout,
			RateLimit:      rateLimit,
			RateBurst:      rateBurst,
		},
		Adapter: Adapter{
			Endpoint:       endpoint,
			ProjectID:      projectID,
			DatabaseID:     databaseID,
			CollectionID:   collectionID,
			RequestTimeout: adapterTimeout,
		},
		Workers: Workers{
			SessionCleanupInterval: cleanupInterval,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// It returns an empty string when neither Host nor Port is set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}

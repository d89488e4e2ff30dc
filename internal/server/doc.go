// Package server wires and runs the backend's transport servers: the HTTP
// API and the gRPC health service. It owns startup, signal handling and
// graceful shutdown of all enabled transports.
package server

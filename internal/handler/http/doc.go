// Package http implements the HTTP transport layer of the note backend.
//
// It exposes the account and document routes under /v1, the version probe
// and the Prometheus scrape endpoint. Project scoping, session
// authentication, rate limiting, request tracing, access logging and metrics
// are handled here before requests are delegated to the service layer.
package http

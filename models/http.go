// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ErrorResponse is the JSON body of every non-2xx API response.
type ErrorResponse struct {
	// Message is a human-readable description of the failure.
	Message string `json:"message"`

	// Code repeats the HTTP status code.
	Code int `json:"code"`

	// Type is a stable machine-readable error identifier
	// (e.g. "user_invalid_credentials").
	Type string `json:"type"`
}

// Request and response headers shared by the client and the server.
const (
	// HeaderProjectID carries the project the request is addressed to.
	HeaderProjectID = "X-Project-ID"

	// HeaderTraceID carries the request trace identifier.
	HeaderTraceID = "X-Trace-ID"

	// HeaderAuthorization carries "Bearer <session secret>".
	HeaderAuthorization = "Authorization"
)

// Stable values of [ErrorResponse.Type].
const (
	ErrorTypeGeneralUnknown           = "general_unknown"
	ErrorTypeGeneralArgumentInvalid   = "general_argument_invalid"
	ErrorTypeGeneralQueryInvalid      = "general_query_invalid"
	ErrorTypeGeneralUnauthorized      = "general_unauthorized_scope"
	ErrorTypeGeneralRateLimit         = "general_rate_limit_exceeded"
	ErrorTypeGeneralRouteNotFound     = "general_route_not_found"
	ErrorTypeGeneralServerError       = "general_server_error"
	ErrorTypeProjectNotFound          = "project_not_found"
	ErrorTypeUserAlreadyExists        = "user_already_exists"
	ErrorTypeUserInvalidCredentials   = "user_invalid_credentials"
	ErrorTypeUserNotFound             = "user_not_found"
	ErrorTypeUserSessionNotFound      = "user_session_not_found"
	ErrorTypeDocumentNotFound         = "document_not_found"
	ErrorTypeDocumentAlreadyExists    = "document_already_exists"
	ErrorTypeDocumentInvalidStructure = "document_invalid_structure"
)

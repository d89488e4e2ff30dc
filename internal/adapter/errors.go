// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"fmt"
)

// Sentinel errors matched by [RemoteError] through [errors.Is]. They let the
// service layer branch on the failure class without knowing status codes.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrNetwork             = errors.New("network failure")
	ErrUnexpectedStatus    = errors.New("unexpected status")
)

// TypeNetworkFailure is the [RemoteError.Type] of failures that happened
// before any response was received.
const TypeNetworkFailure = "network_failure"

// RemoteError is the single error shape of every failed backend call. It
// carries the HTTP status (0 for transport failures), the machine-readable
// error type and the human-readable message reported by the backend.
type RemoteError struct {
	Code    int
	Type    string
	Message string

	kind  error
	cause error
}

// Error implements the error interface.
func (e *RemoteError) Error() string {
	if e.Code == 0 {
		return fmt.Sprintf("%s: %s", e.Type, e.Message)
	}
	return fmt.Sprintf("remote error %d %s: %s", e.Code, e.Type, e.Message)
}

// Unwrap exposes the sentinel class and, for transport failures, the
// underlying cause.
func (e *RemoteError) Unwrap() []error {
	errs := make([]error, 0, 2)
	if e.kind != nil {
		errs = append(errs, e.kind)
	}
	if e.cause != nil {
		errs = append(errs, e.cause)
	}
	return errs
}

// NewRemoteError builds the error reported for an HTTP response with status
// code. The sentinel class follows from code; 0 means no response arrived.
func NewRemoteError(code int, errType, message string) *RemoteError {
	if code == 0 {
		return &RemoteError{Type: errType, Message: message, kind: ErrNetwork}
	}

	kind, ok := statusKinds[code]
	if !ok {
		kind = ErrUnexpectedStatus
	}
	return &RemoteError{Code: code, Type: errType, Message: message, kind: kind}
}

// AsRemoteError returns the [RemoteError] in err's chain, if any.
func AsRemoteError(err error) (*RemoteError, bool) {
	var remoteErr *RemoteError
	if errors.As(err, &remoteErr) {
		return remoteErr, true
	}
	return nil, false
}

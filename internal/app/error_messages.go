// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used by the note
// keeper server handlers and the terminal client.
//
// Msg* constants are the human-readable messages written into API error
// bodies. UserMsg* constants are what the client shows on screen. Keeping them
// in one place ensures consistent wording throughout the API and the UI.
package app

// API error messages.
const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails validation.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidQuery is returned when a list request carries a query that
	// cannot be parsed or is not supported.
	MsgInvalidQuery = "invalid query"

	// MsgInvalidDocumentStructure is returned when document data is not a
	// JSON object or uses a reserved attribute name.
	MsgInvalidDocumentStructure = "invalid document structure"

	// MsgInvalidCredentials is returned when the supplied email/password
	// combination does not match any account.
	MsgInvalidCredentials = "invalid credentials: please check the email and password"

	// MsgUnauthorized is returned when a request needs a session but carries
	// no valid one.
	MsgUnauthorized = "user is not authorized to perform this action"

	// MsgUserAlreadyExists is returned when the email is taken.
	MsgUserAlreadyExists = "a user with the same email already exists"

	// MsgUserNotFound is returned when the account no longer exists.
	MsgUserNotFound = "user not found"

	// MsgSessionNotFound is returned when the session to delete does not
	// exist or belongs to another user.
	MsgSessionNotFound = "session not found"

	// MsgDocumentNotFound is returned for missing documents and for documents
	// owned by another user.
	MsgDocumentNotFound = "document not found"

	// MsgDocumentAlreadyExists is returned when the document ID is taken in
	// the collection.
	MsgDocumentAlreadyExists = "document with the requested ID already exists"

	// MsgProjectNotFound is returned when X-Project-ID names another project.
	MsgProjectNotFound = "project not found"

	// MsgRouteNotFound is returned for unknown paths.
	MsgRouteNotFound = "route not found"

	// MsgRateLimitExceeded is returned when a client sends too many
	// authentication requests.
	MsgRateLimitExceeded = "rate limit exceeded"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"
)

// Messages shown by the terminal client.
const (
	UserMsgInvalidCredentials = "Wrong email or password."
	UserMsgUserAlreadyExists  = "An account with this email already exists."
	UserMsgInvalidInput       = "Please check the entered data: email must be valid and the password at least 8 characters."
	UserMsgNotAuthenticated   = "You are not logged in."
	UserMsgSessionExpired     = "Your session has expired. Please log in again."
	UserMsgNoteNotFound       = "The note no longer exists."
	UserMsgRateLimited        = "Too many attempts. Please wait a moment."
	UserMsgNetwork            = "Cannot reach the server. Check your connection."
	UserMsgServer             = "The server failed to process the request."
	UserMsgUnexpected         = "Something went wrong."
)

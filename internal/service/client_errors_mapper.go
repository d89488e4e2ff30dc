// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"

	"github.com/MKhiriev/go-note-keeper/internal/adapter"
	"github.com/MKhiriev/go-note-keeper/internal/app"
	"github.com/MKhiriev/go-note-keeper/models"
)

var remoteTypeMessages = map[string]string{
	models.ErrorTypeUserInvalidCredentials: app.UserMsgInvalidCredentials,
	models.ErrorTypeUserAlreadyExists:      app.UserMsgUserAlreadyExists,
	models.ErrorTypeGeneralArgumentInvalid: app.UserMsgInvalidInput,
	models.ErrorTypeGeneralUnauthorized:    app.UserMsgSessionExpired,
	models.ErrorTypeDocumentNotFound:       app.UserMsgNoteNotFound,
	models.ErrorTypeGeneralRateLimit:       app.UserMsgRateLimited,
	adapter.TypeNetworkFailure:             app.UserMsgNetwork,
}

// UserMessage translates a client service error into the text shown to the
// user. It returns "" for a nil error.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	if errors.Is(err, ErrNotAuthenticated) {
		return app.UserMsgNotAuthenticated
	}

	remoteErr, ok := adapter.AsRemoteError(err)
	if !ok {
		return app.UserMsgUnexpected
	}

	if msg, found := remoteTypeMessages[remoteErr.Type]; found {
		return msg
	}

	switch {
	case errors.Is(remoteErr, adapter.ErrInternalServerError), errors.Is(remoteErr, adapter.ErrBadGateway):
		return app.UserMsgServer
	case remoteErr.Message != "":
		return remoteErr.Message
	}

	return app.UserMsgUnexpected
}

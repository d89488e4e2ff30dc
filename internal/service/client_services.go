// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-note-keeper/internal/adapter"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
	"github.com/MKhiriev/go-note-keeper/models"
)

type ClientServices struct {
	AuthService ClientAuthService
	NoteService ClientNoteService
}

// NewClientServices wires the client services to one backend adapter, so the
// session set by the auth service authenticates the note calls. storages may
// be nil.
func NewClientServices(storages *store.ClientStorages, backend adapter.BackendAdapter, collection models.CollectionRef, logger *logger.Logger) *ClientServices {
	var sessions store.LocalSessionRepository
	if storages != nil {
		sessions = storages.SessionRepository
	}

	return &ClientServices{
		AuthService: NewClientAuthService(backend, sessions, logger),
		NoteService: NewClientNoteService(backend, collection, utils.NewUUIDGenerator(), logger),
	}
}

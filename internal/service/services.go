// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/crypto"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
	"github.com/MKhiriev/go-note-keeper/models"
)

// Services groups the server-side services. Account and document services
// are wrapped with input validation.
type Services struct {
	AccountService  AccountService
	DocumentService DocumentService
	AppInfoService  AppInfoService
}

func NewServices(storages *store.Storages, cfg config.App, build models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg, build, logger)
	if err != nil {
		return nil, err
	}

	ids := utils.NewUUIDGenerator()

	accountService := NewAccountService(storages.UserRepository, storages.SessionRepository,
		crypto.NewArgon2Hasher(), ids, cfg, logger)
	documentService := NewDocumentService(storages.DocumentRepository, ids, logger)

	return &Services{
		AccountService:  NewAccountValidationService().Wrap(accountService),
		DocumentService: NewDocumentValidationService().Wrap(documentService),
		AppInfoService:  appInfoService,
	}, nil
}

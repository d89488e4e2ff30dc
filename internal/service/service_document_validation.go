// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-note-keeper/internal/utils"
	"github.com/MKhiriev/go-note-keeper/internal/validators"
	"github.com/MKhiriev/go-note-keeper/models"
)

// DocumentValidationService rejects malformed references, data and queries
// before they reach the wrapped DocumentService.
//
// Error classes: bad identifiers are ErrInvalidDataProvided, bad data is
// ErrInvalidDocumentStructure, bad queries are ErrInvalidQuery.
type DocumentValidationService struct {
	inner     DocumentService
	validator validators.Validator
}

func NewDocumentValidationService() DocumentServiceWrapper {
	return &DocumentValidationService{
		validator: validators.NewDocumentValidator(),
	}
}

func (v *DocumentValidationService) CreateDocument(ctx context.Context, ref models.CollectionRef, ownerID string, req models.DocumentCreateRequest) (models.Document, error) {
	if err := v.validateScope(ctx, ref, ownerID); err != nil {
		return models.Document{}, err
	}
	if err := v.validator.Validate(ctx, req, validators.FieldDocumentID); err != nil {
		return models.Document{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	if err := v.validator.Validate(ctx, req, validators.FieldData); err != nil {
		return models.Document{}, fmt.Errorf("%w: %w", ErrInvalidDocumentStructure, err)
	}

	return v.inner.CreateDocument(ctx, ref, ownerID, req)
}

func (v *DocumentValidationService) ListDocuments(ctx context.Context, ref models.CollectionRef, ownerID string, queries []models.Query) (models.DocumentList, error) {
	if err := v.validateScope(ctx, ref, ownerID); err != nil {
		return models.DocumentList{}, err
	}
	if err := v.validator.Validate(ctx, queries); err != nil {
		return models.DocumentList{}, fmt.Errorf("%w: %w", ErrInvalidQuery, err)
	}

	return v.inner.ListDocuments(ctx, ref, ownerID, queries)
}

func (v *DocumentValidationService) GetDocument(ctx context.Context, ref models.CollectionRef, ownerID, documentID string) (models.Document, error) {
	if err := v.validateDocumentScope(ctx, ref, ownerID, documentID); err != nil {
		return models.Document{}, err
	}

	return v.inner.GetDocument(ctx, ref, ownerID, documentID)
}

func (v *DocumentValidationService) UpdateDocument(ctx context.Context, ref models.CollectionRef, ownerID, documentID string, req models.DocumentUpdateRequest) (models.Document, error) {
	if err := v.validateDocumentScope(ctx, ref, ownerID, documentID); err != nil {
		return models.Document{}, err
	}
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Document{}, fmt.Errorf("%w: %w", ErrInvalidDocumentStructure, err)
	}

	return v.inner.UpdateDocument(ctx, ref, ownerID, documentID, req)
}

func (v *DocumentValidationService) DeleteDocument(ctx context.Context, ref models.CollectionRef, ownerID, documentID string) error {
	if err := v.validateDocumentScope(ctx, ref, ownerID, documentID); err != nil {
		return err
	}

	return v.inner.DeleteDocument(ctx, ref, ownerID, documentID)
}

func (v *DocumentValidationService) Wrap(wrapped DocumentService) DocumentService {
	v.inner = wrapped
	return v
}

func (v *DocumentValidationService) validateScope(ctx context.Context, ref models.CollectionRef, ownerID string) error {
	if ownerID == "" {
		return ErrNoUserID
	}
	if err := v.validator.Validate(ctx, ref); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return nil
}

func (v *DocumentValidationService) validateDocumentScope(ctx context.Context, ref models.CollectionRef, ownerID, documentID string) error {
	if err := v.validateScope(ctx, ref, ownerID); err != nil {
		return err
	}
	if !utils.IsValidID(documentID) {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrInvalidDocumentID)
	}
	return nil
}

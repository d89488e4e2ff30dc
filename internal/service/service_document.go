// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/models"
)

type documentService struct {
	documents store.DocumentRepository
	ids       IDGenerator
	now       func() time.Time

	logger *logger.Logger
}

// NewDocumentService constructs a DocumentService on top of the document
// repository. Input is expected to be validated already; see
// [NewDocumentValidationService].
func NewDocumentService(documents store.DocumentRepository, ids IDGenerator, logger *logger.Logger) DocumentService {
	return &documentService{
		documents: documents,
		ids:       ids,
		now:       time.Now,
		logger:    logger,
	}
}

func (s *documentService) CreateDocument(ctx context.Context, ref models.CollectionRef, ownerID string, req models.DocumentCreateRequest) (models.Document, error) {
	log := logger.FromContext(ctx)

	data, ok := req.Data.(map[string]any)
	if !ok {
		return models.Document{}, ErrInvalidDocumentStructure
	}

	documentID := req.DocumentID
	if documentID == models.UniqueID {
		documentID = s.ids.Generate()
	}

	now := s.timestamp()
	doc, err := s.documents.CreateDocument(ctx, models.Document{
		ID:           documentID,
		DatabaseID:   ref.DatabaseID,
		CollectionID: ref.CollectionID,
		OwnerID:      ownerID,
		CreatedAt:    now,
		UpdatedAt:    now,
		Data:         data,
	})
	if err != nil {
		log.Err(err).Str("func", "*documentService.CreateDocument").Str("document_id", documentID).Msg("document creation failed")
		return models.Document{}, fmt.Errorf("document creation failed: %w", err)
	}

	return doc, nil
}

// ListDocuments returns every matching document; there is no paging, so Total
// always equals len(Documents).
func (s *documentService) ListDocuments(ctx context.Context, ref models.CollectionRef, ownerID string, queries []models.Query) (models.DocumentList, error) {
	docs, err := s.documents.ListDocuments(ctx, ref, ownerID, queries)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*documentService.ListDocuments").Msg("document listing failed")
		return models.DocumentList{}, fmt.Errorf("document listing failed: %w", err)
	}

	return models.DocumentList{Total: len(docs), Documents: docs}, nil
}

func (s *documentService) GetDocument(ctx context.Context, ref models.CollectionRef, ownerID, documentID string) (models.Document, error) {
	doc, err := s.documents.GetDocument(ctx, ref, documentID, ownerID)
	if err != nil {
		return models.Document{}, fmt.Errorf("document lookup failed: %w", err)
	}

	return doc, nil
}

func (s *documentService) UpdateDocument(ctx context.Context, ref models.CollectionRef, ownerID, documentID string, req models.DocumentUpdateRequest) (models.Document, error) {
	data, ok := req.Data.(map[string]any)
	if !ok {
		return models.Document{}, ErrInvalidDocumentStructure
	}

	doc, err := s.documents.UpdateDocument(ctx, ref, documentID, ownerID, data, s.timestamp())
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*documentService.UpdateDocument").Str("document_id", documentID).Msg("document update failed")
		return models.Document{}, fmt.Errorf("document update failed: %w", err)
	}

	return doc, nil
}

func (s *documentService) DeleteDocument(ctx context.Context, ref models.CollectionRef, ownerID, documentID string) error {
	if err := s.documents.DeleteDocument(ctx, ref, documentID, ownerID); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*documentService.DeleteDocument").Str("document_id", documentID).Msg("document deletion failed")
		return fmt.Errorf("document deletion failed: %w", err)
	}

	return nil
}

func (s *documentService) timestamp() time.Time {
	return s.now().UTC().Truncate(time.Millisecond)
}

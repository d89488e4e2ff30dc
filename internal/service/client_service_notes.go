// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/adapter"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/models"
)

type clientNoteService struct {
	documents  adapter.DocumentAdapter
	collection models.CollectionRef
	ids        IDGenerator
	now        func() time.Time

	logger *logger.Logger
}

// NewClientNoteService constructs a ClientNoteService storing notes as
// documents of collection.
func NewClientNoteService(documents adapter.DocumentAdapter, collection models.CollectionRef, ids IDGenerator, logger *logger.Logger) ClientNoteService {
	return &clientNoteService{
		documents:  documents,
		collection: collection,
		ids:        ids,
		now:        time.Now,
		logger:     logger,
	}
}

func (s *clientNoteService) Create(ctx context.Context, identity models.Identity, content string) (models.Note, error) {
	if identity.IsZero() {
		return models.Note{}, ErrNotAuthenticated
	}

	doc, err := s.documents.CreateDocument(ctx, s.collection, s.ids.Generate(),
		models.NewNoteDocument(identity.ID, content, s.now()))
	if err != nil {
		s.logger.Err(err).Str("func", "*clientNoteService.Create").Str("user_id", identity.ID).Msg("note creation failed")
		return models.Note{}, err
	}

	return documentToNote(doc)
}

func (s *clientNoteService) List(ctx context.Context, identity models.Identity) ([]models.Note, error) {
	if identity.IsZero() {
		return nil, ErrNotAuthenticated
	}

	list, err := s.documents.ListDocuments(ctx, s.collection,
		models.QueryEqual(models.NoteAttrUserID, identity.ID),
		models.QueryOrderDesc(models.NoteAttrCreatedAt),
	)
	if err != nil {
		s.logger.Err(err).Str("func", "*clientNoteService.List").Str("user_id", identity.ID).Msg("note listing failed")
		return nil, err
	}

	notes := make([]models.Note, 0, len(list.Documents))
	for _, doc := range list.Documents {
		note, err := documentToNote(doc)
		if err != nil {
			s.logger.Err(err).Str("func", "*clientNoteService.List").Str("note_id", doc.ID).Msg("malformed note document")
			return nil, err
		}
		notes = append(notes, note)
	}

	return notes, nil
}

func (s *clientNoteService) Update(ctx context.Context, identity models.Identity, id, content string) (models.Note, error) {
	if identity.IsZero() {
		return models.Note{}, ErrNotAuthenticated
	}

	doc, err := s.documents.UpdateDocument(ctx, s.collection, id, models.NewNoteUpdate(content, s.now()))
	if err != nil {
		s.logger.Err(err).Str("func", "*clientNoteService.Update").Str("note_id", id).Msg("note update failed")
		return models.Note{}, err
	}

	return documentToNote(doc)
}

func (s *clientNoteService) Delete(ctx context.Context, identity models.Identity, id string) error {
	if identity.IsZero() {
		return ErrNotAuthenticated
	}

	if err := s.documents.DeleteDocument(ctx, s.collection, id); err != nil {
		s.logger.Err(err).Str("func", "*clientNoteService.Delete").Str("note_id", id).Msg("note deletion failed")
		return err
	}

	return nil
}

// documentToNote is the single mapping from a stored document to a note.
func documentToNote(doc models.Document) (models.Note, error) {
	var nd models.NoteDocument
	if err := doc.Decode(&nd); err != nil {
		return models.Note{}, err
	}

	note, err := nd.ToNote()
	if err != nil {
		return models.Note{}, fmt.Errorf("malformed note document: %w", err)
	}
	return note, nil
}

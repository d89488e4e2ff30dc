// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/models"
	"github.com/jackc/pgerrcode"
)

// documentRepository is the PostgreSQL-backed implementation of
// [DocumentRepository]. Document data lives in a jsonb column; every
// statement is scoped by database, collection and owner.
type documentRepository struct {
	*DB
	logger *logger.Logger
}

// NewDocumentRepository constructs a [DocumentRepository] backed by the
// provided database connection and logger.
func NewDocumentRepository(db *DB, logger *logger.Logger) DocumentRepository {
	logger.Debug().Msg("creating document repository")
	return &documentRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateDocument inserts doc and returns the stored row.
// A taken id inside the collection yields [ErrDocumentAlreadyExists].
func (d *documentRepository) CreateDocument(ctx context.Context, doc models.Document) (models.Document, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertDocumentQuery(doc)
	if err != nil {
		log.Err(err).Str("func", "*documentRepository.CreateDocument").Msg("failed to build query")
		return models.Document{}, err
	}

	created, err := scanDocument(d.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).
			Str("func", "*documentRepository.CreateDocument").
			Str("document_id", doc.ID).
			Bool("retryable", d.retryable(err)).
			Msg("failed to insert document")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Document{}, ErrDocumentAlreadyExists
		case pgerrcode.ForeignKeyViolation:
			return models.Document{}, ErrUserNotFound
		case "":
			return models.Document{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
		default:
			return models.Document{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	return created, nil
}

// GetDocument returns one owned document or [ErrDocumentNotFound].
func (d *documentRepository) GetDocument(ctx context.Context, ref models.CollectionRef, documentID, ownerID string) (models.Document, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectDocumentQuery(ref, documentID, ownerID)
	if err != nil {
		log.Err(err).Str("func", "*documentRepository.GetDocument").Msg("failed to build query")
		return models.Document{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	doc, err := scanDocument(d.DB.QueryRowContext(ctx, query, args...))
	switch {
	case err == nil:
		return doc, nil
	case errors.Is(err, sql.ErrNoRows):
		return models.Document{}, ErrDocumentNotFound
	default:
		log.Err(err).
			Str("func", "*documentRepository.GetDocument").
			Str("document_id", documentID).
			Bool("retryable", d.retryable(err)).
			Msg("failed to read document")
		return models.Document{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
}

// ListDocuments returns every owned document of the collection matching
// queries, in the order the queries request.
func (d *documentRepository) ListDocuments(ctx context.Context, ref models.CollectionRef, ownerID string, queries []models.Query) ([]models.Document, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListDocumentsQuery(ref, ownerID, queries)
	if err != nil {
		log.Err(err).Str("func", "*documentRepository.ListDocuments").Msg("failed to build query")
		return nil, err
	}

	rows, err := d.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*documentRepository.ListDocuments").
			Str("owner_id", ownerID).
			Bool("retryable", d.retryable(err)).
			Msg("failed to execute query for listing documents")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	docs := make([]models.Document, 0)
	for rows.Next() {
		doc, scanErr := scanDocument(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*documentRepository.ListDocuments").Msg("failed to scan document row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		docs = append(docs, doc)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "*documentRepository.ListDocuments").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return docs, nil
}

// UpdateDocument merges data into the stored object and stamps updatedAt.
// Keys absent from data keep their values.
func (d *documentRepository) UpdateDocument(ctx context.Context, ref models.CollectionRef, documentID, ownerID string, data map[string]any, updatedAt time.Time) (models.Document, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateDocumentQuery(ref, documentID, ownerID, data, updatedAt)
	if err != nil {
		log.Err(err).Str("func", "*documentRepository.UpdateDocument").Msg("failed to build query")
		return models.Document{}, err
	}

	doc, err := scanDocument(d.DB.QueryRowContext(ctx, query, args...))
	switch {
	case err == nil:
		return doc, nil
	case errors.Is(err, sql.ErrNoRows):
		return models.Document{}, ErrDocumentNotFound
	default:
		log.Err(err).
			Str("func", "*documentRepository.UpdateDocument").
			Str("document_id", documentID).
			Bool("retryable", d.retryable(err)).
			Msg("failed to update document")
		return models.Document{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
}

// DeleteDocument removes one owned document or returns [ErrDocumentNotFound].
func (d *documentRepository) DeleteDocument(ctx context.Context, ref models.CollectionRef, documentID, ownerID string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteDocumentQuery(ref, documentID, ownerID)
	if err != nil {
		log.Err(err).Str("func", "*documentRepository.DeleteDocument").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := d.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*documentRepository.DeleteDocument").
			Str("document_id", documentID).
			Msg("failed to delete document")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrDocumentNotFound
	}

	return nil
}

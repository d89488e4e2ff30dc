// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-note-keeper/models"
	sq "github.com/Masterminds/squirrel"
)

const (
	createUser = `
		INSERT INTO users (id, email, password_hash, name, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, email, password_hash, name, created_at, updated_at;`

	findUserByEmail = `
		SELECT id, email, password_hash, name, created_at, updated_at
		FROM users
		WHERE LOWER(email) = LOWER($1);`

	findUserByID = `
		SELECT id, email, password_hash, name, created_at, updated_at
		FROM users
		WHERE id = $1;`

	createSession = `
		INSERT INTO sessions (id, user_id, created_at, expires_at)
		VALUES ($1, $2, $3, $4);`

	getSession = `
		SELECT id, user_id, created_at, expires_at
		FROM sessions
		WHERE id = $1;`

	deleteSession = `
		DELETE FROM sessions
		WHERE id = $1 AND user_id = $2;`

	deleteExpiredSessions = `
		DELETE FROM sessions
		WHERE expires_at <= $1;`
)

// client (sqlite) queries
const (
	saveLocalSession = `
		INSERT INTO sessions (slot, id, user_id, secret, expire, created_at)
		VALUES ('current', ?, ?, ?, ?, ?)
		ON CONFLICT (slot) DO UPDATE SET
			id         = excluded.id,
			user_id    = excluded.user_id,
			secret     = excluded.secret,
			expire     = excluded.expire,
			created_at = excluded.created_at;`

	loadLocalSession = `
		SELECT id, user_id, secret, expire, created_at
		FROM sessions
		WHERE slot = 'current';`

	clearLocalSession = `
		DELETE FROM sessions
		WHERE slot = 'current';`
)

const documentsTable = "documents"

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var documentColumns = []string{
	"database_id",
	"collection_id",
	"id",
	"owner_id",
	"data",
	"created_at",
	"updated_at",
}

// documentSystemColumns maps queryable system attributes to their columns.
// Every other attribute addresses a key of the data object.
var documentSystemColumns = map[string]string{
	models.DocumentAttrID:        "id",
	models.DocumentAttrCreatedAt: "created_at",
	models.DocumentAttrUpdatedAt: "updated_at",
}

func documentReturning() string {
	return "RETURNING " + strings.Join(documentColumns, ", ")
}

func collectionScope(ref models.CollectionRef, ownerID string) sq.Eq {
	return sq.Eq{
		"database_id":   ref.DatabaseID,
		"collection_id": ref.CollectionID,
		"owner_id":      ownerID,
	}
}

// documentScope addresses a single owned document. squirrel sorts the keys,
// so the arguments are: collection_id, database_id, id, owner_id.
func documentScope(ref models.CollectionRef, documentID, ownerID string) sq.Eq {
	scope := collectionScope(ref, ownerID)
	scope["id"] = documentID
	return scope
}

func buildInsertDocumentQuery(doc models.Document) (string, []any, error) {
	data, err := encodeDocumentData(doc.Data)
	if err != nil {
		return "", nil, err
	}

	return psql.Insert(documentsTable).
		Columns(documentColumns...).
		Values(doc.DatabaseID, doc.CollectionID, doc.ID, doc.OwnerID, data, doc.CreatedAt, doc.UpdatedAt).
		Suffix(documentReturning()).
		ToSql()
}

func buildSelectDocumentQuery(ref models.CollectionRef, documentID, ownerID string) (string, []any, error) {
	return psql.Select(documentColumns...).
		From(documentsTable).
		Where(documentScope(ref, documentID, ownerID)).
		ToSql()
}

// buildListDocumentsQuery translates list queries to SQL. Data keys are read
// with the jsonb operators; without an explicit order documents come back in
// creation order.
func buildListDocumentsQuery(ref models.CollectionRef, ownerID string, queries []models.Query) (string, []any, error) {
	builder := psql.Select(documentColumns...).
		From(documentsTable).
		Where(collectionScope(ref, ownerID))

	ordered := false
	for _, q := range queries {
		switch q.Method {
		case models.QueryMethodEqual:
			cond, err := equalCondition(q)
			if err != nil {
				return "", nil, err
			}
			builder = builder.Where(cond)
		case models.QueryMethodOrderAsc, models.QueryMethodOrderDesc:
			direction := "ASC"
			if q.Method == models.QueryMethodOrderDesc {
				direction = "DESC"
			}
			if column, ok := documentSystemColumns[q.Attribute]; ok {
				builder = builder.OrderBy(column + " " + direction)
			} else {
				builder = builder.OrderByClause("data->>? "+direction, q.Attribute)
			}
			ordered = true
		default:
			return "", nil, fmt.Errorf("%w: method %q", ErrUnsupportedQuery, q.Method)
		}
	}

	if !ordered {
		builder = builder.OrderBy("created_at ASC")
	}

	return builder.OrderBy("id ASC").ToSql()
}

// equalCondition matches the attribute against any of the query values.
// Data keys are compared as jsonb, so "true" and true are different values.
func equalCondition(q models.Query) (sq.Sqlizer, error) {
	if len(q.Values) == 0 {
		return nil, fmt.Errorf("%w: equal on %q without values", ErrUnsupportedQuery, q.Attribute)
	}

	if column, ok := documentSystemColumns[q.Attribute]; ok {
		return sq.Eq{column: q.Values}, nil
	}

	cond := make(sq.Or, 0, len(q.Values))
	for _, v := range q.Values {
		raw, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		cond = append(cond, sq.Expr("data->? = ?::jsonb", q.Attribute, string(raw)))
	}
	return cond, nil
}

func buildUpdateDocumentQuery(ref models.CollectionRef, documentID, ownerID string, data map[string]any, updatedAt time.Time) (string, []any, error) {
	patch, err := encodeDocumentData(data)
	if err != nil {
		return "", nil, err
	}

	return psql.Update(documentsTable).
		Set("data", sq.Expr("data || ?::jsonb", patch)).
		Set("updated_at", updatedAt).
		Where(documentScope(ref, documentID, ownerID)).
		Suffix(documentReturning()).
		ToSql()
}

func buildDeleteDocumentQuery(ref models.CollectionRef, documentID, ownerID string) (string, []any, error) {
	return psql.Delete(documentsTable).
		Where(documentScope(ref, documentID, ownerID)).
		ToSql()
}

func encodeDocumentData(data map[string]any) (string, error) {
	if data == nil {
		return "{}", nil
	}

	raw, err := json.Marshal(data)
	if err != nil {
		return "", fmt.Errorf("%w: encode document data: %w", ErrBuildingSQLQuery, err)
	}
	return string(raw), nil
}

func decodeDocumentData(raw []byte) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var data map[string]any
	if err := dec.Decode(&data); err != nil {
		return nil, fmt.Errorf("decode document data: %w", err)
	}
	if data == nil {
		data = make(map[string]any)
	}
	return data, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDocument(row rowScanner) (models.Document, error) {
	var (
		doc  models.Document
		data []byte
	)

	if err := row.Scan(&doc.DatabaseID, &doc.CollectionID, &doc.ID, &doc.OwnerID, &data, &doc.CreatedAt, &doc.UpdatedAt); err != nil {
		return models.Document{}, err
	}

	decoded, err := decodeDocumentData(data)
	if err != nil {
		return models.Document{}, err
	}
	doc.Data = decoded
	doc.CreatedAt = doc.CreatedAt.UTC()
	doc.UpdatedAt = doc.UpdatedAt.UTC()

	return doc, nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-note-keeper/internal/utils"
	"github.com/MKhiriev/go-note-keeper/models"
)

// Field names understood by [DocumentValidator].
const (
	FieldDatabaseID   = "database_id"
	FieldCollectionID = "collection_id"
	FieldDocumentID   = "document_id"
	FieldData         = "data"
)

var queryableSystemAttributes = map[string]bool{
	models.DocumentAttrID:        true,
	models.DocumentAttrCreatedAt: true,
	models.DocumentAttrUpdatedAt: true,
}

// DocumentValidator checks collection references, document requests and
// list queries.
type DocumentValidator struct{}

// NewDocumentValidator constructs a [DocumentValidator].
func NewDocumentValidator() Validator {
	return &DocumentValidator{}
}

// Validate accepts [models.CollectionRef], [models.DocumentCreateRequest],
// [models.DocumentUpdateRequest], [models.Query] and []models.Query.
// Request data must already be decoded into a map[string]any.
func (v *DocumentValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.CollectionRef:
		return v.validateCollectionRef(value, fields...)
	case *models.CollectionRef:
		return v.validateCollectionRef(*value, fields...)

	case models.DocumentCreateRequest:
		return v.validateCreateRequest(value, fields...)
	case *models.DocumentCreateRequest:
		return v.validateCreateRequest(*value, fields...)

	case models.DocumentUpdateRequest:
		return validateData(value.Data)
	case *models.DocumentUpdateRequest:
		return validateData(value.Data)

	case models.Query:
		return validateQuery(value)
	case []models.Query:
		for i, q := range value {
			if err := validateQuery(q); err != nil {
				return fmt.Errorf("query at index %d: %w", i, err)
			}
		}
		return nil

	default:
		return ErrUnsupportedType
	}
}

func (v *DocumentValidator) validateCollectionRef(ref models.CollectionRef, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldDatabaseID, FieldCollectionID}
	}

	for _, f := range fields {
		switch f {
		case FieldDatabaseID:
			if !utils.IsValidID(ref.DatabaseID) {
				return ErrInvalidDatabaseID
			}
		case FieldCollectionID:
			if !utils.IsValidID(ref.CollectionID) {
				return ErrInvalidCollectionID
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *DocumentValidator) validateCreateRequest(req models.DocumentCreateRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldDocumentID, FieldData}
	}

	for _, f := range fields {
		switch f {
		case FieldDocumentID:
			if req.DocumentID != models.UniqueID && !utils.IsValidID(req.DocumentID) {
				return ErrInvalidDocumentID
			}
		case FieldData:
			if err := validateData(req.Data); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validateData(data any) error {
	object, ok := data.(map[string]any)
	if !ok || object == nil {
		return ErrInvalidDocumentData
	}

	for key := range object {
		if key == "" {
			return ErrEmptyAttribute
		}
		if strings.HasPrefix(key, "$") {
			return fmt.Errorf("%w: %q", ErrReservedAttribute, key)
		}
	}

	return nil
}

func validateQuery(q models.Query) error {
	if q.Attribute == "" {
		return fmt.Errorf("%w: %s: %w", ErrInvalidQuery, q.Method, ErrEmptyAttribute)
	}
	if strings.HasPrefix(q.Attribute, "$") && !queryableSystemAttributes[q.Attribute] {
		return fmt.Errorf("%w: unknown attribute %q", ErrInvalidQuery, q.Attribute)
	}

	switch q.Method {
	case models.QueryMethodEqual:
		if len(q.Values) == 0 {
			return fmt.Errorf("%w: equal on %q needs at least one value", ErrInvalidQuery, q.Attribute)
		}
	case models.QueryMethodOrderAsc, models.QueryMethodOrderDesc:
		if len(q.Values) != 0 {
			return fmt.Errorf("%w: %s takes no values", ErrInvalidQuery, q.Method)
		}
	default:
		return fmt.Errorf("%w: unsupported method %q", ErrInvalidQuery, q.Method)
	}

	return nil
}

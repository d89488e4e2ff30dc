// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"
)

// System attributes of a document. They live next to the data keys in the
// JSON form of a document and may be used in queries.
const (
	DocumentAttrID           = "$id"
	DocumentAttrDatabaseID   = "$databaseId"
	DocumentAttrCollectionID = "$collectionId"
	DocumentAttrCreatedAt    = "$createdAt"
	DocumentAttrUpdatedAt    = "$updatedAt"
)

// CollectionRef addresses one collection of one database.
type CollectionRef struct {
	DatabaseID   string
	CollectionID string
}

// DocumentsPath returns the API path of the collection's documents.
func (c CollectionRef) DocumentsPath() string {
	return fmt.Sprintf("/v1/databases/%s/collections/%s/documents",
		url.PathEscape(c.DatabaseID), url.PathEscape(c.CollectionID))
}

// DocumentPath returns the API path of a single document.
func (c CollectionRef) DocumentPath(documentID string) string {
	return c.DocumentsPath() + "/" + url.PathEscape(documentID)
}

// Document is a stored record of a collection: user data plus system
// attributes. On the wire the data keys and the $-prefixed system attributes
// share a single flat JSON object.
type Document struct {
	ID           string
	DatabaseID   string
	CollectionID string
	OwnerID      string
	CreatedAt    time.Time
	UpdatedAt    time.Time
	Data         map[string]any
}

// MarshalJSON flattens Data and the system attributes into one object.
// OwnerID is not exposed.
func (d Document) MarshalJSON() ([]byte, error) {
	flat := make(map[string]any, len(d.Data)+5)
	for k, v := range d.Data {
		flat[k] = v
	}
	flat[DocumentAttrID] = d.ID
	flat[DocumentAttrDatabaseID] = d.DatabaseID
	flat[DocumentAttrCollectionID] = d.CollectionID
	flat[DocumentAttrCreatedAt] = FormatTimestamp(d.CreatedAt)
	flat[DocumentAttrUpdatedAt] = FormatTimestamp(d.UpdatedAt)

	return json.Marshal(flat)
}

// UnmarshalJSON splits a flat document object into system attributes and
// Data. Unknown $-prefixed keys are dropped.
func (d *Document) UnmarshalJSON(b []byte) error {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()

	var flat map[string]any
	if err := dec.Decode(&flat); err != nil {
		return err
	}

	doc := Document{Data: make(map[string]any, len(flat))}
	for k, v := range flat {
		if !strings.HasPrefix(k, "$") {
			doc.Data[k] = v
			continue
		}

		s, _ := v.(string)
		switch k {
		case DocumentAttrID:
			doc.ID = s
		case DocumentAttrDatabaseID:
			doc.DatabaseID = s
		case DocumentAttrCollectionID:
			doc.CollectionID = s
		case DocumentAttrCreatedAt, DocumentAttrUpdatedAt:
			if s == "" {
				continue
			}
			t, err := ParseTimestamp(s)
			if err != nil {
				return fmt.Errorf("document attribute %s: %w", k, err)
			}
			if k == DocumentAttrCreatedAt {
				doc.CreatedAt = t
			} else {
				doc.UpdatedAt = t
			}
		}
	}

	*d = doc
	return nil
}

// Decode unmarshals the flat JSON form of the document into v.
func (d Document) Decode(v any) error {
	payload, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("encode document %q: %w", d.ID, err)
	}
	if err = json.Unmarshal(payload, v); err != nil {
		return fmt.Errorf("decode document %q: %w", d.ID, err)
	}
	return nil
}

// DocumentList is the response of the list-documents call.
type DocumentList struct {
	Total     int        `json:"total"`
	Documents []Document `json:"documents"`
}

// DocumentCreateRequest is the body of the create-document call.
type DocumentCreateRequest struct {
	DocumentID string `json:"documentId"`
	Data       any    `json:"data"`
}

// DocumentUpdateRequest is the body of the update-document call.
type DocumentUpdateRequest struct {
	Data any `json:"data"`
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocument_MarshalJSON_Flattens(t *testing.T) {
	created := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	doc := Document{
		ID:           "d1",
		DatabaseID:   "db",
		CollectionID: "notes",
		OwnerID:      "secret-owner",
		CreatedAt:    created,
		UpdatedAt:    created.Add(time.Minute),
		Data:         map[string]any{"content": "hello"},
	}

	b, err := json.Marshal(doc)
	require.NoError(t, err)

	var flat map[string]any
	require.NoError(t, json.Unmarshal(b, &flat))

	assert.Equal(t, "d1", flat["$id"])
	assert.Equal(t, "db", flat["$databaseId"])
	assert.Equal(t, "notes", flat["$collectionId"])
	assert.Equal(t, "2026-02-01T12:00:00.000Z", flat["$createdAt"])
	assert.Equal(t, "2026-02-01T12:01:00.000Z", flat["$updatedAt"])
	assert.Equal(t, "hello", flat["content"])
	assert.NotContains(t, string(b), "secret-owner")
}

func TestDocument_UnmarshalJSON_SplitsSystemAttributes(t *testing.T) {
	raw := `{"$id":"d1","$databaseId":"db","$collectionId":"notes",
		"$createdAt":"2026-02-01T12:00:00.000Z","$updatedAt":"2026-02-01T12:01:00.000Z",
		"$permissions":[],"content":"hello","count":3}`

	var doc Document
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))

	assert.Equal(t, "d1", doc.ID)
	assert.Equal(t, "db", doc.DatabaseID)
	assert.Equal(t, "notes", doc.CollectionID)
	assert.Equal(t, time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC), doc.CreatedAt)
	assert.Equal(t, time.Date(2026, 2, 1, 12, 1, 0, 0, time.UTC), doc.UpdatedAt)
	assert.Equal(t, "hello", doc.Data["content"])
	assert.Equal(t, json.Number("3"), doc.Data["count"])
	assert.NotContains(t, doc.Data, "$permissions")
}

func TestDocument_UnmarshalJSON_BadTimestamp(t *testing.T) {
	var doc Document
	err := json.Unmarshal([]byte(`{"$id":"d1","$createdAt":"nope"}`), &doc)
	require.Error(t, err)
}

func TestDocument_Decode_IntoNoteDocument(t *testing.T) {
	doc := Document{
		ID: "n1",
		Data: map[string]any{
			"title":      "hello",
			"content":    "hello",
			"userId":     "u1",
			"createdAt":  "2026-02-01T12:00:00.000Z",
			"updatedAt":  "2026-02-01T12:00:00.000Z",
			"isArchived": false,
		},
	}

	var note NoteDocument
	require.NoError(t, doc.Decode(&note))

	assert.Equal(t, NoteDocument{
		ID:        "n1",
		Title:     "hello",
		Content:   "hello",
		UserID:    "u1",
		CreatedAt: "2026-02-01T12:00:00.000Z",
		UpdatedAt: "2026-02-01T12:00:00.000Z",
	}, note)
}

func TestCollectionRef_Paths(t *testing.T) {
	ref := CollectionRef{DatabaseID: "main", CollectionID: "notes"}

	assert.Equal(t, "/v1/databases/main/collections/notes/documents", ref.DocumentsPath())
	assert.Equal(t, "/v1/databases/main/collections/notes/documents/a%2Fb", ref.DocumentPath("a/b"))
}

func TestQuery_StringAndParse(t *testing.T) {
	q := QueryEqual("userId", "u1")
	assert.JSONEq(t, `{"method":"equal","attribute":"userId","values":["u1"]}`, q.String())

	parsed, err := ParseQuery(QueryOrderDesc("createdAt").String())
	require.NoError(t, err)
	assert.Equal(t, QueryMethodOrderDesc, parsed.Method)
	assert.Equal(t, "createdAt", parsed.Attribute)
	assert.Empty(t, parsed.Values)

	_, err = ParseQuery("equal(userId)")
	assert.Error(t, err)
}

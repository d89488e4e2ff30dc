// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-note-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_buildListDocumentsQuery(t *testing.T) {
	tests := []struct {
		name     string
		queries  []models.Query
		contains []string
		args     []any
		wantErr  error
	}{
		{
			name:     "no queries defaults to creation order",
			contains: []string{"WHERE collection_id = $1 AND database_id = $2 AND owner_id = $3", "ORDER BY created_at ASC, id ASC"},
			args:     []any{"notes", "main", "u-1"},
		},
		{
			name:     "equal on data key with several values",
			queries:  []models.Query{models.QueryEqual("status", "a", "b")},
			contains: []string{"(data->$4 = $5::jsonb OR data->$6 = $7::jsonb)"},
			args:     []any{"notes", "main", "u-1", "status", `"a"`, "status", `"b"`},
		},
		{
			name:     "equal keeps json types",
			queries:  []models.Query{models.QueryEqual("isArchived", false)},
			contains: []string{"data->$4 = $5::jsonb"},
			args:     []any{"notes", "main", "u-1", "isArchived", "false"},
		},
		{
			name:     "equal on system attribute",
			queries:  []models.Query{models.QueryEqual(models.DocumentAttrID, "n-1", "n-2")},
			contains: []string{"id IN ($4,$5)"},
			args:     []any{"notes", "main", "u-1", "n-1", "n-2"},
		},
		{
			name:     "order by data key",
			queries:  []models.Query{models.QueryOrderDesc("createdAt")},
			contains: []string{"ORDER BY data->>$4 DESC, id ASC"},
			args:     []any{"notes", "main", "u-1", "createdAt"},
		},
		{
			name:     "order by system attribute",
			queries:  []models.Query{models.QueryOrderAsc(models.DocumentAttrUpdatedAt)},
			contains: []string{"ORDER BY updated_at ASC, id ASC"},
			args:     []any{"notes", "main", "u-1"},
		},
		{
			name:    "equal without values",
			queries: []models.Query{{Method: models.QueryMethodEqual, Attribute: "userId"}},
			wantErr: ErrUnsupportedQuery,
		},
		{
			name:    "unknown method",
			queries: []models.Query{{Method: "limit", Values: []any{10}}},
			wantErr: ErrUnsupportedQuery,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildListDocumentsQuery(testRef, "u-1", tt.queries)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)

			assert.True(t, strings.HasPrefix(query, "SELECT database_id, collection_id, id, owner_id, data, created_at, updated_at FROM documents"))
			for _, part := range tt.contains {
				assert.Contains(t, query, part)
			}
			assert.Equal(t, tt.args, args)
		})
	}
}

func Test_buildInsertDocumentQuery(t *testing.T) {
	now := time.Now().UTC()
	query, args, err := buildInsertDocumentQuery(models.Document{
		ID:           "n-1",
		DatabaseID:   "main",
		CollectionID: "notes",
		OwnerID:      "u-1",
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	require.NoError(t, err)

	assert.Contains(t, query, "INSERT INTO documents (database_id,collection_id,id,owner_id,data,created_at,updated_at) VALUES ($1,$2,$3,$4,$5,$6,$7)")
	assert.Contains(t, query, "RETURNING database_id, collection_id, id, owner_id, data, created_at, updated_at")
	assert.Equal(t, []any{"main", "notes", "n-1", "u-1", "{}", now, now}, args)
}

func Test_buildUpdateDocumentQuery(t *testing.T) {
	now := time.Now().UTC()
	query, args, err := buildUpdateDocumentQuery(testRef, "n-1", "u-1", map[string]any{"content": "x"}, now)
	require.NoError(t, err)

	assert.Contains(t, query, "UPDATE documents SET data = data || $1::jsonb, updated_at = $2")
	assert.Contains(t, query, "WHERE collection_id = $3 AND database_id = $4 AND id = $5 AND owner_id = $6")
	assert.Equal(t, []any{`{"content":"x"}`, now, "notes", "main", "n-1", "u-1"}, args)
}

func Test_buildDeleteDocumentQuery(t *testing.T) {
	query, args, err := buildDeleteDocumentQuery(testRef, "n-1", "u-1")
	require.NoError(t, err)

	assert.Equal(t, "DELETE FROM documents WHERE collection_id = $1 AND database_id = $2 AND id = $3 AND owner_id = $4", query)
	assert.Equal(t, []any{"notes", "main", "n-1", "u-1"}, args)
}

func Test_decodeDocumentData(t *testing.T) {
	data, err := decodeDocumentData([]byte(`{"n":1.5,"s":"x"}`))
	require.NoError(t, err)
	assert.Equal(t, json.Number("1.5"), data["n"])
	assert.Equal(t, "x", data["s"])

	data, err = decodeDocumentData([]byte(`null`))
	require.NoError(t, err)
	assert.NotNil(t, data)

	_, err = decodeDocumentData([]byte(`[`))
	assert.Error(t, err)
}

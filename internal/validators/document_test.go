package validators

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-note-keeper/models"
	"github.com/stretchr/testify/assert"
)

func TestDocumentValidator_CollectionRef(t *testing.T) {
	v := NewDocumentValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.CollectionRef{DatabaseID: "main", CollectionID: "notes"}))
	assert.ErrorIs(t, v.Validate(ctx, models.CollectionRef{CollectionID: "notes"}), ErrInvalidDatabaseID)
	assert.ErrorIs(t, v.Validate(ctx, &models.CollectionRef{DatabaseID: "main", CollectionID: "a/b"}), ErrInvalidCollectionID)
	assert.NoError(t, v.Validate(ctx, models.CollectionRef{DatabaseID: "main"}, FieldDatabaseID))
}

func TestDocumentValidator_CreateRequest(t *testing.T) {
	tests := []struct {
		name string
		req  models.DocumentCreateRequest
		want error
	}{
		{name: "unique id", req: models.DocumentCreateRequest{DocumentID: models.UniqueID, Data: map[string]any{"a": 1}}},
		{name: "custom id", req: models.DocumentCreateRequest{DocumentID: "018f-abc", Data: map[string]any{}}},
		{name: "empty id", req: models.DocumentCreateRequest{Data: map[string]any{}}, want: ErrInvalidDocumentID},
		{name: "nil data", req: models.DocumentCreateRequest{DocumentID: "d1"}, want: ErrInvalidDocumentData},
		{name: "array data", req: models.DocumentCreateRequest{DocumentID: "d1", Data: []any{}}, want: ErrInvalidDocumentData},
		{name: "typed nil map", req: models.DocumentCreateRequest{DocumentID: "d1", Data: map[string]any(nil)}, want: ErrInvalidDocumentData},
		{name: "reserved key", req: models.DocumentCreateRequest{DocumentID: "d1", Data: map[string]any{"$createdAt": "x"}}, want: ErrReservedAttribute},
		{name: "empty key", req: models.DocumentCreateRequest{DocumentID: "d1", Data: map[string]any{"": 1}}, want: ErrEmptyAttribute},
	}

	v := NewDocumentValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), tt.req)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestDocumentValidator_UpdateRequest(t *testing.T) {
	v := NewDocumentValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.DocumentUpdateRequest{Data: map[string]any{"content": "x"}}))
	assert.ErrorIs(t, v.Validate(ctx, &models.DocumentUpdateRequest{Data: map[string]any{"$id": "x"}}), ErrReservedAttribute)
}

func TestDocumentValidator_Queries(t *testing.T) {
	v := NewDocumentValidator()
	ctx := context.Background()

	valid := []models.Query{
		models.QueryEqual("userId", "u1"),
		models.QueryEqual(models.DocumentAttrID, "a", "b"),
		models.QueryOrderAsc(models.DocumentAttrUpdatedAt),
		models.QueryOrderDesc("createdAt"),
	}
	assert.NoError(t, v.Validate(ctx, valid))

	invalid := []models.Query{
		{Method: "between", Attribute: "n", Values: []any{1, 2}},
		{Method: models.QueryMethodEqual, Attribute: "userId"},
		{Method: models.QueryMethodOrderAsc, Attribute: "title", Values: []any{"x"}},
		{Method: models.QueryMethodEqual, Attribute: "$databaseId", Values: []any{"main"}},
		{Method: models.QueryMethodOrderDesc},
	}
	for _, q := range invalid {
		assert.ErrorIs(t, v.Validate(ctx, q), ErrInvalidQuery, "query %s", q)
	}

	err := v.Validate(ctx, []models.Query{valid[0], invalid[0]})
	assert.ErrorIs(t, err, ErrInvalidQuery)
	assert.Contains(t, err.Error(), "index 1")
}

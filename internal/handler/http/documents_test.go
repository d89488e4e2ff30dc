package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testCollection = models.CollectionRef{DatabaseID: "main", CollectionID: "notes"}

func testDocument(id string) models.Document {
	return models.Document{
		ID:           id,
		DatabaseID:   testCollection.DatabaseID,
		CollectionID: testCollection.CollectionID,
		OwnerID:      "user-1",
		CreatedAt:    handlerNow,
		UpdatedAt:    handlerNow,
		Data:         map[string]any{"title": "hello", "content": "hello", "userId": "user-1"},
	}
}

// serveAuthenticated sends req through the full router as user-1.
func serveAuthenticated(t *testing.T, h *Handler, m handlerMocks, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()

	m.accounts.EXPECT().ParseSession(gomock.Any(), "secret").
		Return(models.Session{ID: "session-1", UserID: "user-1"}, nil)
	req.Header.Set(models.HeaderAuthorization, "Bearer secret")

	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)
	return rec
}

// ── create ───────────────────────────────────────────────────────────────────

func TestCreateDocument_Created(t *testing.T) {
	ctrl := gomock.NewController(t)
	h, m := newTestHandlerWithMocks(t, ctrl, nil)

	m.documents.EXPECT().
		CreateDocument(gomock.Any(), testCollection, "user-1", gomock.Any()).
		DoAndReturn(func(_ any, _ models.CollectionRef, _ string, req models.DocumentCreateRequest) (models.Document, error) {
			assert.Equal(t, "doc-1", req.DocumentID)
			data, ok := req.Data.(map[string]any)
			require.True(t, ok)
			assert.Equal(t, "hello", data["content"])
			assert.Equal(t, json.Number("3"), data["revision"])
			return testDocument("doc-1"), nil
		})

	body := `{"documentId":"doc-1","data":{"content":"hello","revision":3}}`
	rec := serveAuthenticated(t, h, m, httptest.NewRequest(http.MethodPost, testDocumentsPath, strings.NewReader(body)))

	require.Equal(t, http.StatusCreated, rec.Code)

	var got map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, "doc-1", got[models.DocumentAttrID])
	assert.Equal(t, "main", got[models.DocumentAttrDatabaseID])
	assert.Equal(t, "notes", got[models.DocumentAttrCollectionID])
	assert.Equal(t, "2026-03-01T10:00:00.000Z", got[models.DocumentAttrCreatedAt])
	assert.Equal(t, "hello", got["content"])
}

func TestCreateDocument_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		serviceErr error
		wantStatus int
		wantType   string
	}{
		{
			name:       "invalid JSON",
			body:       `{"documentId":`,
			wantStatus: http.StatusBadRequest,
			wantType:   models.ErrorTypeGeneralArgumentInvalid,
		},
		{
			name:       "reserved attribute in data",
			body:       `{"documentId":"doc-1","data":{"$id":"x"}}`,
			serviceErr: service.ErrInvalidDocumentStructure,
			wantStatus: http.StatusBadRequest,
			wantType:   models.ErrorTypeDocumentInvalidStructure,
		},
		{
			name:       "duplicate document ID",
			body:       `{"documentId":"doc-1","data":{}}`,
			serviceErr: store.ErrDocumentAlreadyExists,
			wantStatus: http.StatusConflict,
			wantType:   models.ErrorTypeDocumentAlreadyExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			h, m := newTestHandlerWithMocks(t, ctrl, nil)
			if tt.serviceErr != nil {
				m.documents.EXPECT().CreateDocument(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(models.Document{}, tt.serviceErr)
			}

			rec := serveAuthenticated(t, h, m, httptest.NewRequest(http.MethodPost, testDocumentsPath, strings.NewReader(tt.body)))

			require.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantType, decodeErrorResponse(t, rec).Type)
		})
	}
}

// ── list ─────────────────────────────────────────────────────────────────────

func TestListDocuments_PassesQueries(t *testing.T) {
	ctrl := gomock.NewController(t)
	h, m := newTestHandlerWithMocks(t, ctrl, nil)

	wantQueries := []models.Query{
		models.QueryEqual("userId", "user-1"),
		models.QueryOrderDesc("createdAt"),
	}
	m.documents.EXPECT().
		ListDocuments(gomock.Any(), testCollection, "user-1", gomock.Len(2)).
		DoAndReturn(func(_ any, _ models.CollectionRef, _ string, queries []models.Query) (models.DocumentList, error) {
			assert.Equal(t, wantQueries[0].Method, queries[0].Method)
			assert.Equal(t, wantQueries[0].Attribute, queries[0].Attribute)
			assert.Equal(t, []any{"user-1"}, queries[0].Values)
			assert.Equal(t, wantQueries[1], queries[1])
			docs := []models.Document{testDocument("doc-2"), testDocument("doc-1")}
			return models.DocumentList{Total: len(docs), Documents: docs}, nil
		})

	params := url.Values{}
	for _, q := range wantQueries {
		params.Add(models.QueryParam, q.String())
	}
	req := httptest.NewRequest(http.MethodGet, testDocumentsPath+"?"+params.Encode(), nil)
	rec := serveAuthenticated(t, h, m, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got struct {
		Total     int              `json:"total"`
		Documents []map[string]any `json:"documents"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, 2, got.Total)
	require.Len(t, got.Documents, 2)
	assert.Equal(t, "doc-2", got.Documents[0][models.DocumentAttrID])
}

func TestListDocuments_EmptyListIsArray(t *testing.T) {
	ctrl := gomock.NewController(t)
	h, m := newTestHandlerWithMocks(t, ctrl, nil)
	m.documents.EXPECT().ListDocuments(gomock.Any(), testCollection, "user-1", gomock.Len(0)).
		Return(models.DocumentList{}, nil)

	rec := serveAuthenticated(t, h, m, httptest.NewRequest(http.MethodGet, testDocumentsPath, nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"total":0,"documents":[]}`, rec.Body.String())
}

func TestListDocuments_MalformedQuery(t *testing.T) {
	ctrl := gomock.NewController(t)
	h, m := newTestHandlerWithMocks(t, ctrl, nil)

	params := url.Values{models.QueryParam: {"{not json"}}
	req := httptest.NewRequest(http.MethodGet, testDocumentsPath+"?"+params.Encode(), nil)
	rec := serveAuthenticated(t, h, m, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, models.ErrorTypeGeneralQueryInvalid, decodeErrorResponse(t, rec).Type)
}

func TestListDocuments_UnsupportedQuery(t *testing.T) {
	ctrl := gomock.NewController(t)
	h, m := newTestHandlerWithMocks(t, ctrl, nil)
	m.documents.EXPECT().ListDocuments(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(models.DocumentList{}, service.ErrInvalidQuery)

	params := url.Values{models.QueryParam: {`{"method":"search","attribute":"content"}`}}
	req := httptest.NewRequest(http.MethodGet, testDocumentsPath+"?"+params.Encode(), nil)
	rec := serveAuthenticated(t, h, m, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, models.ErrorTypeGeneralQueryInvalid, decodeErrorResponse(t, rec).Type)
}

// ── get / update / delete ────────────────────────────────────────────────────

func TestGetDocument(t *testing.T) {
	tests := []struct {
		name       string
		serviceErr error
		wantStatus int
	}{
		{name: "found", wantStatus: http.StatusOK},
		{name: "missing or owned by someone else", serviceErr: store.ErrDocumentNotFound, wantStatus: http.StatusNotFound},
		{name: "storage failure", serviceErr: errors.New("connection reset"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			h, m := newTestHandlerWithMocks(t, ctrl, nil)
			m.documents.EXPECT().GetDocument(gomock.Any(), testCollection, "user-1", "doc-1").
				Return(testDocument("doc-1"), tt.serviceErr)

			rec := serveAuthenticated(t, h, m, httptest.NewRequest(http.MethodGet, testDocumentsPath+"/doc-1", nil))

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.serviceErr == nil {
				var got map[string]any
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
				assert.Equal(t, "doc-1", got[models.DocumentAttrID])
			}
		})
	}
}

func TestUpdateDocument_OK(t *testing.T) {
	ctrl := gomock.NewController(t)
	h, m := newTestHandlerWithMocks(t, ctrl, nil)

	updated := testDocument("doc-1")
	updated.Data["content"] = "edited"
	m.documents.EXPECT().
		UpdateDocument(gomock.Any(), testCollection, "user-1", "doc-1", gomock.Any()).
		DoAndReturn(func(_ any, _ models.CollectionRef, _, _ string, req models.DocumentUpdateRequest) (models.Document, error) {
			assert.Equal(t, map[string]any{"content": "edited"}, req.Data)
			return updated, nil
		})

	body := `{"data":{"content":"edited"}}`
	rec := serveAuthenticated(t, h, m, httptest.NewRequest(http.MethodPatch, testDocumentsPath+"/doc-1", strings.NewReader(body)))

	require.Equal(t, http.StatusOK, rec.Code)

	var got map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, "edited", got["content"])
}

func TestUpdateDocument_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	h, m := newTestHandlerWithMocks(t, ctrl, nil)
	m.documents.EXPECT().UpdateDocument(gomock.Any(), testCollection, "user-1", "doc-1", gomock.Any()).
		Return(models.Document{}, store.ErrDocumentNotFound)

	rec := serveAuthenticated(t, h, m, httptest.NewRequest(http.MethodPatch, testDocumentsPath+"/doc-1", strings.NewReader(`{"data":{}}`)))

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, models.ErrorTypeDocumentNotFound, decodeErrorResponse(t, rec).Type)
}

func TestDeleteDocument(t *testing.T) {
	tests := []struct {
		name       string
		serviceErr error
		wantStatus int
	}{
		{name: "deleted", wantStatus: http.StatusNoContent},
		{name: "not found", serviceErr: store.ErrDocumentNotFound, wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			h, m := newTestHandlerWithMocks(t, ctrl, nil)
			m.documents.EXPECT().DeleteDocument(gomock.Any(), testCollection, "user-1", "doc-1").Return(tt.serviceErr)

			rec := serveAuthenticated(t, h, m, httptest.NewRequest(http.MethodDelete, testDocumentsPath+"/doc-1", nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

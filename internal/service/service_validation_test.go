package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-note-keeper/internal/mock"
	"github.com/MKhiriev/go-note-keeper/internal/validators"
	"github.com/MKhiriev/go-note-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ── AccountValidationService ─────────────────────────────────────────────────

func TestAccountValidationService_CreateAccount(t *testing.T) {
	tests := []struct {
		name      string
		req       models.AccountCreateRequest
		wantInner bool
		wantErr   error
	}{
		{
			name:      "valid",
			req:       models.AccountCreateRequest{UserID: models.UniqueID, Email: "ann@example.com", Password: "password123", Name: "Ann"},
			wantInner: true,
		},
		{
			name:    "bad email",
			req:     models.AccountCreateRequest{Email: "not-an-email", Password: "password123"},
			wantErr: validators.ErrInvalidEmail,
		},
		{
			name:    "short password",
			req:     models.AccountCreateRequest{Email: "ann@example.com", Password: "short"},
			wantErr: validators.ErrInvalidPassword,
		},
		{
			name:    "bad user id",
			req:     models.AccountCreateRequest{UserID: "_bad", Email: "ann@example.com", Password: "password123"},
			wantErr: validators.ErrInvalidUserID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			inner := mock.NewMockAccountService(ctrl)
			svc := NewAccountValidationService().Wrap(inner)
			ctx := context.Background()

			if tt.wantInner {
				inner.EXPECT().CreateAccount(ctx, tt.req).Return(models.User{ID: "u1"}, nil)
			}

			_, err := svc.CreateAccount(ctx, tt.req)

			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, ErrInvalidDataProvided)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestAccountValidationService_CreateSession_EmptyPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := NewAccountValidationService().Wrap(mock.NewMockAccountService(ctrl))

	_, err := svc.CreateSession(context.Background(), models.SessionCreateRequest{Email: "ann@example.com"})

	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestAccountValidationService_ShortPasswordLoginReachesService(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner := mock.NewMockAccountService(ctrl)
	svc := NewAccountValidationService().Wrap(inner)
	ctx := context.Background()

	req := models.SessionCreateRequest{Email: "ann@example.com", Password: "short"}
	inner.EXPECT().CreateSession(ctx, req).Return(models.Session{}, ErrInvalidCredentials)

	_, err := svc.CreateSession(ctx, req)

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAccountValidationService_Guards(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := NewAccountValidationService().Wrap(mock.NewMockAccountService(ctrl))
	ctx := context.Background()

	_, err := svc.ParseSession(ctx, "")
	assert.ErrorIs(t, err, ErrSessionExpiredOrInvalid)

	_, err = svc.GetAccount(ctx, "")
	assert.ErrorIs(t, err, ErrNoUserID)

	assert.ErrorIs(t, svc.DeleteSession(ctx, "", "sess"), ErrNoUserID)
	assert.ErrorIs(t, svc.DeleteSession(ctx, "user", ""), ErrInvalidDataProvided)
}

// ── DocumentValidationService ────────────────────────────────────────────────

func TestDocumentValidationService_CreateDocument(t *testing.T) {
	tests := []struct {
		name      string
		ref       models.CollectionRef
		ownerID   string
		req       models.DocumentCreateRequest
		wantInner bool
		wantErr   error
	}{
		{
			name:      "valid",
			ref:       notesRef,
			ownerID:   "user-1",
			req:       models.DocumentCreateRequest{DocumentID: models.UniqueID, Data: map[string]any{"title": "t"}},
			wantInner: true,
		},
		{
			name:    "no owner",
			ref:     notesRef,
			req:     models.DocumentCreateRequest{DocumentID: "d1", Data: map[string]any{}},
			wantErr: ErrNoUserID,
		},
		{
			name:    "bad collection",
			ref:     models.CollectionRef{DatabaseID: "main", CollectionID: "no spaces"},
			ownerID: "user-1",
			req:     models.DocumentCreateRequest{DocumentID: "d1", Data: map[string]any{}},
			wantErr: ErrInvalidDataProvided,
		},
		{
			name:    "bad document id",
			ref:     notesRef,
			ownerID: "user-1",
			req:     models.DocumentCreateRequest{DocumentID: "", Data: map[string]any{}},
			wantErr: ErrInvalidDataProvided,
		},
		{
			name:    "reserved key",
			ref:     notesRef,
			ownerID: "user-1",
			req:     models.DocumentCreateRequest{DocumentID: "d1", Data: map[string]any{"$id": "x"}},
			wantErr: ErrInvalidDocumentStructure,
		},
		{
			name:    "data is not an object",
			ref:     notesRef,
			ownerID: "user-1",
			req:     models.DocumentCreateRequest{DocumentID: "d1", Data: "text"},
			wantErr: ErrInvalidDocumentStructure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			inner := mock.NewMockDocumentService(ctrl)
			svc := NewDocumentValidationService().Wrap(inner)
			ctx := context.Background()

			if tt.wantInner {
				inner.EXPECT().CreateDocument(ctx, tt.ref, tt.ownerID, tt.req).Return(models.Document{ID: "d"}, nil)
			}

			_, err := svc.CreateDocument(ctx, tt.ref, tt.ownerID, tt.req)

			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestDocumentValidationService_ListDocuments_RejectsBadQueries(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := NewDocumentValidationService().Wrap(mock.NewMockDocumentService(ctrl))
	ctx := context.Background()

	bad := [][]models.Query{
		{{Method: "search", Attribute: "title", Values: []any{"x"}}},
		{{Method: models.QueryMethodEqual, Attribute: "userId"}},
		{{Method: models.QueryMethodOrderDesc, Attribute: "$secret"}},
		{{Method: models.QueryMethodOrderAsc, Attribute: ""}},
	}

	for _, queries := range bad {
		_, err := svc.ListDocuments(ctx, notesRef, "user-1", queries)
		assert.ErrorIs(t, err, ErrInvalidQuery, "queries %v", queries)
	}
}

func TestDocumentValidationService_ListDocuments_PassesValidQueries(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner := mock.NewMockDocumentService(ctrl)
	svc := NewDocumentValidationService().Wrap(inner)
	ctx := context.Background()

	queries := []models.Query{models.QueryEqual("userId", "user-1"), models.QueryOrderDesc(models.DocumentAttrCreatedAt)}
	inner.EXPECT().ListDocuments(ctx, notesRef, "user-1", queries).Return(models.DocumentList{}, nil)

	_, err := svc.ListDocuments(ctx, notesRef, "user-1", queries)

	require.NoError(t, err)
}

func TestDocumentValidationService_UpdateAndDelete(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner := mock.NewMockDocumentService(ctrl)
	svc := NewDocumentValidationService().Wrap(inner)
	ctx := context.Background()

	_, err := svc.UpdateDocument(ctx, notesRef, "user-1", "doc-1", models.DocumentUpdateRequest{Data: map[string]any{"$updatedAt": "x"}})
	assert.ErrorIs(t, err, ErrInvalidDocumentStructure)

	_, err = svc.GetDocument(ctx, notesRef, "user-1", "bad id!")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	inner.EXPECT().DeleteDocument(ctx, notesRef, "user-1", "doc-1").Return(nil)
	require.NoError(t, svc.DeleteDocument(ctx, notesRef, "user-1", "doc-1"))
}

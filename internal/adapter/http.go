package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
	"github.com/MKhiriev/go-note-keeper/models"
	"github.com/go-resty/resty/v2"
)

const (
	pathAccount         = "/v1/account"
	pathEmailSessions   = "/v1/account/sessions/email"
	pathAccountSessions = "/v1/account/sessions/"
)

type httpBackendAdapter struct {
	client *utils.HTTPClient

	mu     sync.RWMutex
	secret string

	logger *logger.Logger
}

// NewHTTPBackendAdapter constructs the HTTP/REST implementation of
// [BackendAdapter]. It normalises and validates the endpoint, sets the request
// timeout and attaches the project header to every request.
//
// Returns an error if adapterCfg.Endpoint is empty or cannot be parsed as a
// valid URL.
func NewHTTPBackendAdapter(adapterCfg config.ClientAdapter, log *logger.Logger) (BackendAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter endpoint: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout)
	if adapterCfg.ProjectID != "" {
		client.SetHeader(models.HeaderProjectID, adapterCfg.ProjectID)
	}

	client.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
		log.Debug().
			Str("func", "httpBackendAdapter.OnAfterResponse").
			Str("method", resp.Request.Method).
			Str("url", resp.Request.URL).
			Int("status", resp.StatusCode()).
			Dur("duration", resp.Time()).
			Msg("backend request done")
		return nil
	})

	return &httpBackendAdapter{client: client, logger: log}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetSession implements [AccountAdapter].
func (h *httpBackendAdapter) SetSession(secret string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.secret = strings.TrimSpace(secret)
}

// Session implements [AccountAdapter].
func (h *httpBackendAdapter) Session() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.secret
}

// CreateAccount implements [AccountAdapter]: POST /v1/account.
func (h *httpBackendAdapter) CreateAccount(ctx context.Context, req models.AccountCreateRequest) (models.User, error) {
	var user models.User

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&user).
		Post(pathAccount)
	if err != nil {
		return models.User{}, mapTransportError("create account request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return user, nil
}

// CreateEmailPasswordSession implements [AccountAdapter]:
// POST /v1/account/sessions/email. The secret is read from the body and, if
// absent there, from the Authorization response header.
func (h *httpBackendAdapter) CreateEmailPasswordSession(ctx context.Context, email, password string) (models.Session, error) {
	var session models.Session

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.SessionCreateRequest{Email: email, Password: password}).
		SetResult(&session).
		Post(pathEmailSessions)
	if err != nil {
		return models.Session{}, mapTransportError("create session request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Session{}, err
	}

	if session.Secret == "" {
		secret, err := utils.ParseBearerToken(resp.Header().Get(models.HeaderAuthorization))
		if err != nil {
			return models.Session{}, fmt.Errorf("create session parse bearer token: %w", err)
		}
		session.Secret = secret
	}

	return session, nil
}

// GetAccount implements [AccountAdapter]: GET /v1/account.
func (h *httpBackendAdapter) GetAccount(ctx context.Context) (models.User, error) {
	var user models.User

	resp, err := h.authedRequest(ctx).
		SetResult(&user).
		Get(pathAccount)
	if err != nil {
		return models.User{}, mapTransportError("get account request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return user, nil
}

// DeleteSession implements [AccountAdapter]:
// DELETE /v1/account/sessions/{sessionId}.
func (h *httpBackendAdapter) DeleteSession(ctx context.Context, sessionID string) error {
	resp, err := h.authedRequest(ctx).
		Delete(pathAccountSessions + url.PathEscape(sessionID))
	if err != nil {
		return mapTransportError("delete session request", err)
	}

	return mapHTTPError(resp)
}

// CreateDocument implements [DocumentAdapter]:
// POST /v1/databases/{db}/collections/{coll}/documents.
func (h *httpBackendAdapter) CreateDocument(ctx context.Context, ref models.CollectionRef, documentID string, data any) (models.Document, error) {
	var doc models.Document

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.DocumentCreateRequest{DocumentID: documentID, Data: data}).
		SetResult(&doc).
		Post(ref.DocumentsPath())
	if err != nil {
		return models.Document{}, mapTransportError("create document request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Document{}, err
	}

	return doc, nil
}

// ListDocuments implements [DocumentAdapter]:
// GET /v1/databases/{db}/collections/{coll}/documents?queries[]=...
func (h *httpBackendAdapter) ListDocuments(ctx context.Context, ref models.CollectionRef, queries ...models.Query) (models.DocumentList, error) {
	var list models.DocumentList

	params := url.Values{}
	for _, q := range queries {
		params.Add(models.QueryParam, q.String())
	}

	resp, err := h.authedRequest(ctx).
		SetQueryParamsFromValues(params).
		SetResult(&list).
		Get(ref.DocumentsPath())
	if err != nil {
		return models.DocumentList{}, mapTransportError("list documents request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.DocumentList{}, err
	}

	return list, nil
}

// GetDocument implements [DocumentAdapter]:
// GET /v1/databases/{db}/collections/{coll}/documents/{id}.
func (h *httpBackendAdapter) GetDocument(ctx context.Context, ref models.CollectionRef, documentID string) (models.Document, error) {
	var doc models.Document

	resp, err := h.authedRequest(ctx).
		SetResult(&doc).
		Get(ref.DocumentPath(documentID))
	if err != nil {
		return models.Document{}, mapTransportError("get document request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Document{}, err
	}

	return doc, nil
}

// UpdateDocument implements [DocumentAdapter]:
// PATCH /v1/databases/{db}/collections/{coll}/documents/{id}.
func (h *httpBackendAdapter) UpdateDocument(ctx context.Context, ref models.CollectionRef, documentID string, data any) (models.Document, error) {
	var doc models.Document

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.DocumentUpdateRequest{Data: data}).
		SetResult(&doc).
		Patch(ref.DocumentPath(documentID))
	if err != nil {
		return models.Document{}, mapTransportError("update document request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Document{}, err
	}

	return doc, nil
}

// DeleteDocument implements [DocumentAdapter]:
// DELETE /v1/databases/{db}/collections/{coll}/documents/{id}.
func (h *httpBackendAdapter) DeleteDocument(ctx context.Context, ref models.CollectionRef, documentID string) error {
	resp, err := h.authedRequest(ctx).
		Delete(ref.DocumentPath(documentID))
	if err != nil {
		return mapTransportError("delete document request", err)
	}

	return mapHTTPError(resp)
}

func (h *httpBackendAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if secret := h.Session(); secret != "" {
		req.SetHeader(models.HeaderAuthorization, "Bearer "+secret)
	}
	return req
}

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/models"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestWithMetrics_CountsByRoutePattern(t *testing.T) {
	ctrl := gomock.NewController(t)
	h, m := newTestHandlerWithMocks(t, ctrl, nil)
	m.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("1.0.0").Times(2)
	router := h.Init()

	for range 2 {
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/v1/health/version", nil))
	}

	m.documents.EXPECT().GetDocument(gomock.Any(), testCollection, "user-1", "doc-1").Return(models.Document{}, store.ErrDocumentNotFound)
	serveAuthenticated(t, h, m, httptest.NewRequest(http.MethodGet, testDocumentsPath+"/doc-1", nil))

	assert.Equal(t, 2.0, testutil.ToFloat64(h.metrics.requests.WithLabelValues("/v1/health/version", http.MethodGet, "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(h.metrics.requests.WithLabelValues(
		"/v1/databases/{databaseId}/collections/{collectionId}/documents/{documentId}", http.MethodGet, "404")))
	assert.Equal(t, 0.0, testutil.ToFloat64(h.metrics.inFlight))
}

func TestWithMetrics_ImplicitStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	h, _ := newTestHandlerWithMocks(t, ctrl, nil)

	next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})
	h.withMetrics(next).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/x", nil))

	assert.Equal(t, 1.0, testutil.ToFloat64(h.metrics.requests.WithLabelValues("unmatched", http.MethodGet, "200")))
}

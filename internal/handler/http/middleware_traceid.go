package http

import (
	"net/http"

	"github.com/MKhiriev/go-note-keeper/models"
	"github.com/google/uuid"
)

// maxTraceIDLen bounds client supplied trace IDs.
const maxTraceIDLen = 128

// withTraceID tags the request with a trace ID, taken from the request
// header when it is usable or generated otherwise. The ID is echoed in the
// response header and attached to the request scoped logger.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(models.HeaderTraceID)
		if !validTraceID(traceID) {
			traceID = uuid.NewString()
		}

		log := h.logger.WithField("trace_id", traceID)

		w.Header().Set(models.HeaderTraceID, traceID)
		next.ServeHTTP(w, r.WithContext(log.WithContext(r.Context())))
	})
}

// validTraceID accepts non-empty printable ASCII IDs without spaces.
func validTraceID(id string) bool {
	if id == "" || len(id) > maxTraceIDLen {
		return false
	}
	for i := 0; i < len(id); i++ {
		if id[i] <= ' ' || id[i] > '~' {
			return false
		}
	}
	return true
}

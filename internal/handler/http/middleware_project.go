package http

import (
	"net/http"

	"github.com/MKhiriev/go-note-keeper/internal/app"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
	"github.com/MKhiriev/go-note-keeper/models"
)

// checkProject rejects requests addressed to another project. It is a no-op
// when the server has no project ID configured.
func (h *Handler) checkProject(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.projectID == "" {
			next.ServeHTTP(w, r)
			return
		}

		if projectID := r.Header.Get(models.HeaderProjectID); projectID != h.projectID {
			logger.FromRequest(r).Warn().Str("project_id", projectID).Msg("request for unknown project")
			utils.WriteError(w, http.StatusNotFound, models.ErrorTypeProjectNotFound, app.MsgProjectNotFound)
			return
		}

		next.ServeHTTP(w, r)
	})
}

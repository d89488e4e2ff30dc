package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-note-keeper/internal/app"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
	"github.com/MKhiriev/go-note-keeper/models"
	"github.com/go-chi/chi/v5"
)

func collectionFromRequest(r *http.Request) models.CollectionRef {
	return models.CollectionRef{
		DatabaseID:   chi.URLParam(r, "databaseId"),
		CollectionID: chi.URLParam(r, "collectionId"),
	}
}

// decodeJSON decodes the request body keeping numbers as json.Number, so
// stored values keep their original representation.
func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.UseNumber()
	return dec.Decode(v)
}

func (h *Handler) createDocument(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, _ := utils.GetUserIDFromContext(ctx)

	var req models.DocumentCreateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadJSON(w, r, err)
		return
	}

	doc, err := h.services.DocumentService.CreateDocument(ctx, collectionFromRequest(r), userID, req)
	if err != nil {
		writeServiceError(w, r, err, "document creation failed")
		return
	}

	logger.FromRequest(r).Debug().Str("document_id", doc.ID).Msg("document created")
	utils.WriteJSON(w, doc, http.StatusCreated)
}

func (h *Handler) listDocuments(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	userID, _ := utils.GetUserIDFromContext(ctx)

	rawQueries := r.URL.Query()[models.QueryParam]
	queries := make([]models.Query, 0, len(rawQueries))
	for _, raw := range rawQueries {
		query, err := models.ParseQuery(raw)
		if err != nil {
			log.Warn().Err(err).Msg("query parsing failed")
			utils.WriteError(w, http.StatusBadRequest, models.ErrorTypeGeneralQueryInvalid, app.MsgInvalidQuery)
			return
		}
		queries = append(queries, query)
	}

	list, err := h.services.DocumentService.ListDocuments(ctx, collectionFromRequest(r), userID, queries)
	if err != nil {
		writeServiceError(w, r, err, "document listing failed")
		return
	}

	if list.Documents == nil {
		list.Documents = []models.Document{}
	}
	utils.WriteJSON(w, list, http.StatusOK)
}

func (h *Handler) getDocument(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, _ := utils.GetUserIDFromContext(ctx)

	doc, err := h.services.DocumentService.GetDocument(ctx, collectionFromRequest(r), userID, chi.URLParam(r, "documentId"))
	if err != nil {
		writeServiceError(w, r, err, "document lookup failed")
		return
	}

	utils.WriteJSON(w, doc, http.StatusOK)
}

func (h *Handler) updateDocument(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, _ := utils.GetUserIDFromContext(ctx)

	var req models.DocumentUpdateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadJSON(w, r, err)
		return
	}

	doc, err := h.services.DocumentService.UpdateDocument(ctx, collectionFromRequest(r), userID, chi.URLParam(r, "documentId"), req)
	if err != nil {
		writeServiceError(w, r, err, "document update failed")
		return
	}

	utils.WriteJSON(w, doc, http.StatusOK)
}

func (h *Handler) deleteDocument(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, _ := utils.GetUserIDFromContext(ctx)

	documentID := chi.URLParam(r, "documentId")
	if err := h.services.DocumentService.DeleteDocument(ctx, collectionFromRequest(r), userID, documentID); err != nil {
		writeServiceError(w, r, err, "document deletion failed")
		return
	}

	logger.FromRequest(r).Debug().Str("document_id", documentID).Msg("document deleted")
	w.WriteHeader(http.StatusNoContent)
}

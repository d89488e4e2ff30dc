package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
	"github.com/MKhiriev/go-note-keeper/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) createAccount(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.AccountCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadJSON(w, r, err)
		return
	}

	user, err := h.services.AccountService.CreateAccount(ctx, req)
	if err != nil {
		writeServiceError(w, r, err, "account creation failed")
		return
	}

	log.Debug().Str("user_id", user.ID).Msg("account created")
	utils.WriteJSON(w, user, http.StatusCreated)
}

func (h *Handler) createSession(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.SessionCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadJSON(w, r, err)
		return
	}

	session, err := h.services.AccountService.CreateSession(ctx, req)
	if err != nil {
		writeServiceError(w, r, err, "session creation failed")
		return
	}

	log.Debug().Str("user_id", session.UserID).Str("session_id", session.ID).Msg("session created")

	w.Header().Set(models.HeaderAuthorization, fmt.Sprintf("Bearer %s", session.Secret))
	utils.WriteJSON(w, session, http.StatusCreated)
}

func (h *Handler) getAccount(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		writeServiceError(w, r, service.ErrNoUserID, "no user in request context")
		return
	}

	user, err := h.services.AccountService.GetAccount(ctx, userID)
	if err != nil {
		writeServiceError(w, r, err, "account lookup failed")
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

// deleteSession destroys a session of the caller. "current" names the session
// the request was authenticated with.
func (h *Handler) deleteSession(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		writeServiceError(w, r, service.ErrNoUserID, "no user in request context")
		return
	}

	sessionID := chi.URLParam(r, "sessionId")
	if sessionID == models.CurrentSessionID {
		sessionID, _ = utils.GetSessionIDFromContext(ctx)
	}

	if err := h.services.AccountService.DeleteSession(ctx, userID, sessionID); err != nil {
		writeServiceError(w, r, err, "session deletion failed")
		return
	}

	logger.FromRequest(r).Debug().Str("session_id", sessionID).Msg("session deleted")
	w.WriteHeader(http.StatusNoContent)
}

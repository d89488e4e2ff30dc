package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
	"github.com/MKhiriev/go-note-keeper/models"
)

// auth is an HTTP middleware that enforces session-based authentication.
//
// It extracts the bearer secret from the "Authorization" header, resolves it
// via [service.AccountService.ParseSession] (signature, expiry and the
// session record are all checked), and stores the user and session IDs in
// the request context with [utils.WithSession].
//
// Requests without a usable secret are rejected with 401
// general_unauthorized_scope. Storage failures while resolving the session
// are reported as 500.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		secret, err := getTokenFromAuthHeader(r.Header.Get(models.HeaderAuthorization))
		if err != nil {
			log.Warn().Err(err).Msg("request rejected")
			writeUnauthorized(w)
			return
		}

		ctx := r.Context()
		session, err := h.services.AccountService.ParseSession(ctx, secret)
		if err != nil {
			writeServiceError(w, r, err, "session resolution failed")
			return
		}

		ctx = utils.WithSession(ctx, session.UserID, session.ID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// getTokenFromAuthHeader returns the secret of a "Bearer <secret>" header
// value. The scheme is matched case-insensitively.
func getTokenFromAuthHeader(authHeader string) (string, error) {
	if authHeader == "" {
		return "", ErrEmptyAuthorizationHeader
	}

	scheme, secret, found := strings.Cut(authHeader, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", ErrInvalidAuthorizationHeader
	}
	if secret = strings.TrimSpace(secret); secret == "" {
		return "", ErrEmptyToken
	}

	return secret, nil
}

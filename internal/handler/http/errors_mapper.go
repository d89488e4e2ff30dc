package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-note-keeper/internal/app"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
	"github.com/MKhiriev/go-note-keeper/models"
)

// apiError is the status, type and message written for a known error.
type apiError struct {
	status  int
	errType string
	message string
}

var errInternal = apiError{
	status:  http.StatusInternalServerError,
	errType: models.ErrorTypeGeneralServerError,
	message: app.MsgInternalServerError,
}

var errorStatusMap = map[error]apiError{
	service.ErrInvalidDataProvided:      {http.StatusBadRequest, models.ErrorTypeGeneralArgumentInvalid, app.MsgInvalidDataProvided},
	service.ErrInvalidQuery:             {http.StatusBadRequest, models.ErrorTypeGeneralQueryInvalid, app.MsgInvalidQuery},
	service.ErrInvalidDocumentStructure: {http.StatusBadRequest, models.ErrorTypeDocumentInvalidStructure, app.MsgInvalidDocumentStructure},
	service.ErrInvalidCredentials:       {http.StatusUnauthorized, models.ErrorTypeUserInvalidCredentials, app.MsgInvalidCredentials},
	service.ErrSessionExpiredOrInvalid:  {http.StatusUnauthorized, models.ErrorTypeGeneralUnauthorized, app.MsgUnauthorized},
	service.ErrNoUserID:                 {http.StatusUnauthorized, models.ErrorTypeGeneralUnauthorized, app.MsgUnauthorized},

	store.ErrUnsupportedQuery:      {http.StatusBadRequest, models.ErrorTypeGeneralQueryInvalid, app.MsgInvalidQuery},
	store.ErrUserAlreadyExists:     {http.StatusConflict, models.ErrorTypeUserAlreadyExists, app.MsgUserAlreadyExists},
	store.ErrUserNotFound:          {http.StatusNotFound, models.ErrorTypeUserNotFound, app.MsgUserNotFound},
	store.ErrSessionNotFound:       {http.StatusNotFound, models.ErrorTypeUserSessionNotFound, app.MsgSessionNotFound},
	store.ErrDocumentNotFound:      {http.StatusNotFound, models.ErrorTypeDocumentNotFound, app.MsgDocumentNotFound},
	store.ErrDocumentAlreadyExists: {http.StatusConflict, models.ErrorTypeDocumentAlreadyExists, app.MsgDocumentAlreadyExists},
}

// apiErrorFromError returns the response for err. Unknown errors become
// 500 general_server_error.
func apiErrorFromError(err error) apiError {
	for target, apiErr := range errorStatusMap {
		if errors.Is(err, target) {
			return apiErr
		}
	}
	return errInternal
}

// writeServiceError logs err and writes the matching error body.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	apiErr := apiErrorFromError(err)

	log := logger.FromRequest(r)
	if apiErr.status >= http.StatusInternalServerError {
		log.Err(err).Int("status", apiErr.status).Msg(msg)
	} else {
		log.Warn().Err(err).Int("status", apiErr.status).Msg(msg)
	}

	utils.WriteError(w, apiErr.status, apiErr.errType, apiErr.message)
}

func writeBadJSON(w http.ResponseWriter, r *http.Request, err error) {
	logger.FromRequest(r).Warn().Err(err).Msg("invalid JSON was passed")
	utils.WriteError(w, http.StatusBadRequest, models.ErrorTypeGeneralArgumentInvalid, app.MsgInvalidDataProvided)
}

func writeUnauthorized(w http.ResponseWriter) {
	utils.WriteError(w, http.StatusUnauthorized, models.ErrorTypeGeneralUnauthorized, app.MsgUnauthorized)
}

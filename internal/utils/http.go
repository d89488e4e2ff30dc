package utils

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-note-keeper/models"
)

const contentTypeJSON = "application/json"

// WriteJSON marshals data and writes it with statusCode. When data cannot be
// marshaled a plain 500 is sent instead and the marshal error is returned.
// The int result is the number of body bytes written.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	body, err := json.Marshal(data)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return 0, fmt.Errorf("marshal response body: %w", err)
	}

	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(statusCode)

	return w.Write(body)
}

// WriteError sends the {"message","code","type"} error body used by every
// API failure.
func WriteError(w http.ResponseWriter, statusCode int, errType, message string) (int, error) {
	return WriteJSON(w, models.ErrorResponse{
		Message: message,
		Code:    statusCode,
		Type:    errType,
	}, statusCode)
}

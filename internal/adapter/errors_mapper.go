package adapter

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-note-keeper/models"
	"github.com/go-resty/resty/v2"
)

var statusKinds = map[int]error{
	http.StatusBadRequest:          ErrBadRequest,
	http.StatusUnauthorized:        ErrUnauthorized,
	http.StatusForbidden:           ErrForbidden,
	http.StatusNotFound:            ErrNotFound,
	http.StatusConflict:            ErrConflict,
	http.StatusTooManyRequests:     ErrTooManyRequests,
	http.StatusInternalServerError: ErrInternalServerError,
	http.StatusBadGateway:          ErrBadGateway,
	http.StatusServiceUnavailable:  ErrBadGateway,
	http.StatusGatewayTimeout:      ErrBadGateway,
}

// mapHTTPError converts a non-2xx response into a [RemoteError]. The body is
// expected to be a [models.ErrorResponse]; anything else becomes the message.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	var errType, message string

	var body models.ErrorResponse
	if err := json.Unmarshal(resp.Body(), &body); err == nil && (body.Type != "" || body.Message != "") {
		errType = body.Type
		message = body.Message
	} else {
		message = strings.TrimSpace(string(resp.Body()))
	}

	if errType == "" {
		errType = models.ErrorTypeGeneralUnknown
	}
	if message == "" {
		message = http.StatusText(resp.StatusCode())
	}

	return NewRemoteError(resp.StatusCode(), errType, message)
}

// mapTransportError wraps a failure that produced no response.
func mapTransportError(op string, err error) error {
	remoteErr := NewRemoteError(0, TypeNetworkFailure, op+": "+err.Error())
	remoteErr.cause = err
	return remoteErr
}

// File: response.go
// Title: Error Responses
// Description: Writes structured errors as JSON HTTP responses.
// Author: bastawesy
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18

package httpx

import (
	"net/http"

	ruerror "github.com/bastawesy/reactorutils/core/error"
	"github.com/bastawesy/reactorutils/utils/jsonx"
)

// ErrorBody is the JSON body written by WriteError
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	ErrorID string `json:"error_id,omitempty"`
}

// WriteError writes err with the status of its code. Messages of errors
// that are not *Error are not exposed.
func WriteError(w http.ResponseWriter, err error, mapper *jsonx.Mapper) {
	body := ErrorBody{
		Code:    string(ruerror.CodeUnknown),
		Message: http.StatusText(http.StatusInternalServerError),
	}
	if e, ok := ruerror.As(err); ok {
		body = ErrorBody{
			Code:    e.Code().String(),
			Message: e.Message(),
			ErrorID: e.ID(),
		}
	}
	WriteJSON(w, ruerror.HTTPStatus(err), body, mapper)
}

// WriteJSON writes v as a JSON response with status
func WriteJSON(w http.ResponseWriter, status int, v any, mapper *jsonx.Mapper) {
	if mapper == nil {
		mapper = jsonx.Default()
	}

	data, err := mapper.Marshal(v)
	if err != nil {
		status = http.StatusInternalServerError
		data = []byte(`{"code":"INTERNAL","message":"failed to encode response"}`)
	}

	w.Header().Set("Content-Type", ContentTypeJSON)
	w.WriteHeader(status)
	_, _ = w.Write(data)
}

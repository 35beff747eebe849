package utils

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
)

// Envelope is the standard success payload: rows, query metadata and a
// trace id the frontend reports back on support tickets.
type Envelope struct {
	Data    any    `json:"data"`
	Meta    any    `json:"meta"`
	TraceID string `json:"trace_id"`
}

// ErrorBody describes a failed request.
// swagger:model ErrorBody
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
	Details any    `json:"details,omitempty"`
}

// ErrorResponse wraps ErrorBody with a trace id.
// swagger:model ErrorResponse
type ErrorResponse struct {
	Error   ErrorBody `json:"error"`
	TraceID string    `json:"trace_id"`
}

func WriteJSON(w http.ResponseWriter, payload any, code int) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	return json.NewEncoder(w).Encode(payload)
}

func WriteOK(w http.ResponseWriter, data, meta any) error {
	return WriteJSON(w, Envelope{Data: data, Meta: meta, TraceID: uuid.NewString()}, http.StatusOK)
}

func WriteError(w http.ResponseWriter, code, message string, status int) error {
	return WriteJSON(w, ErrorResponse{
		Error:   ErrorBody{Code: code, Message: message},
		TraceID: uuid.NewString(),
	}, status)
}

// WriteValidationError reports every collected violation at once.
func WriteValidationError(w http.ResponseWriter, details any) error {
	return WriteJSON(w, ErrorResponse{
		Error:   ErrorBody{Code: "VALIDATION_ERROR", Details: details},
		TraceID: uuid.NewString(),
	}, http.StatusBadRequest)
}

func DecodeBody(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}

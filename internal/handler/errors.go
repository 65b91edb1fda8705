package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
)

// errorResponse is the JSON body of every 4xx/5xx response.
type errorResponse struct {
	Message string `json:"message"`
}

// writeJSON serializes v as the response body with the given status code.
// An encoding failure at this point can only be logged — headers are gone.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("write response", "error", err)
	}
}

// badRequest writes a 400 with the given human-readable message.
func badRequest(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusBadRequest, errorResponse{Message: message})
}

// pointNotFound writes the API's fixed not-found response for points.
// The original contract uses 400, not 404, for a missing point.
func pointNotFound(w http.ResponseWriter) {
	writeJSON(w, http.StatusBadRequest, errorResponse{Message: "Point not found."})
}

// serverError logs the error and writes a generic 500 response.
// Internal details never reach the client.
func serverError(w http.ResponseWriter, r *http.Request, err error) {
	slog.ErrorContext(r.Context(), "server error", "method", r.Method, "path", r.URL.Path, "error", err)
	writeJSON(w, http.StatusInternalServerError, errorResponse{
		Message: "the server encountered a problem and could not process your request",
	})
}

// validationMessage extracts the human-readable part from a wrapped
// domain.ErrValidation error.
// e.g. "service.PointService.Create: validation error: items list is empty"
// → "items list is empty"
func validationMessage(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	if i := strings.LastIndex(msg, "validation error: "); i >= 0 {
		return msg[i+len("validation error: "):]
	}
	return msg
}

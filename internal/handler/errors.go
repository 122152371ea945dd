package handler

import (
	"errors"
	"net/http"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

// Error codes used in ErrorResponse bodies.
const (
	codeNotFound        = "not_found"
	codeValidation      = "validation_error"
	codePayloadTooLarge = "payload_too_large"
	codeInternal        = "internal_error"
)

// ErrorResponse is the JSON body of every non-2xx response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail carries a machine-readable code and a human-readable message.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// writeError writes an ErrorResponse with the given status.
func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, ErrorResponse{Error: ErrorDetail{Code: code, Message: message}})
}

// notFound writes a 404. The caller supplies the message (e.g. "customer not
// found") because the handler is the layer that knows what was looked up.
func notFound(w http.ResponseWriter, message string) {
	writeError(w, http.StatusNotFound, codeNotFound, message)
}

// badRequest writes a rejection for input refused before reaching the service.
func badRequest(w http.ResponseWriter, status int, message string) {
	writeError(w, status, codeValidation, message)
}

// decodeFailed reports a body that could not be read or parsed.
func decodeFailed(w http.ResponseWriter, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		writeError(w, http.StatusRequestEntityTooLarge, codePayloadTooLarge, "request body too large")
		return
	}
	badRequest(w, http.StatusUnprocessableEntity, err.Error())
}

// internalError logs err and writes an opaque 500.
func (s *Server) internalError(w http.ResponseWriter, r *http.Request, err error) {
	s.log.ErrorContext(r.Context(), "request failed",
		"method", r.Method,
		"path", r.URL.Path,
		"request_id", chimiddleware.GetReqID(r.Context()),
		"error", err,
	)
	writeError(w, http.StatusInternalServerError, codeInternal, "internal server error")
}

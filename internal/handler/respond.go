package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"

	"github.com/pkordes/shopapi/internal/domain"
)

// writeJSON encodes v as the response body with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	//nolint:errcheck // the status line is already sent; nothing useful to do on failure.
	json.NewEncoder(w).Encode(v)
}

// decodeJSON reads the request body into dst.
// An empty body is reported as "request body is required". The body must hold
// exactly one JSON value; anything after it is rejected.
func decodeJSON(r *http.Request, dst any) error {
	if r.Body == nil {
		return errors.New("request body is required")
	}
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return errors.New("request body is required")
		}
		return wrapDecodeErr(err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		if err == nil {
			return errors.New("invalid JSON body: unexpected data after JSON value")
		}
		return wrapDecodeErr(err)
	}
	return nil
}

// wrapDecodeErr keeps body-too-large errors intact for decodeFailed and wraps
// everything else as a JSON syntax problem.
func wrapDecodeErr(err error) error {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return err
	}
	return fmt.Errorf("invalid JSON body: %w", err)
}

// bindID parses the {id} path parameter the same way generated OpenAPI
// servers do, then rejects identifiers the store can never assign.
func bindID(r *http.Request) (domain.ID, error) {
	var id int64
	err := runtime.BindStyledParameterWithOptions("simple", "id", chi.URLParam(r, "id"), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return 0, fmt.Errorf("invalid id: %w", err)
	}
	if id <= 0 {
		return 0, errors.New("invalid id: must be a positive integer")
	}
	return domain.ID(id), nil
}

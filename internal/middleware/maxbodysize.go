package middleware

import (
	"encoding/json"
	"net/http"
)

// tooLargeBody matches the error body written by the handlers for a 413.
var tooLargeBody = mustMarshal(map[string]any{
	"error": map[string]string{
		"code":    "payload_too_large",
		"message": "request body too large",
	},
})

// NewMaxBodySizeHandler returns a middleware that limits request bodies to
// limit bytes. Requests that declare a larger Content-Length are rejected with
// 413 before reaching the next handler; bodies of unknown length are wrapped
// in http.MaxBytesReader so reading past the limit fails.
func NewMaxBodySizeHandler(limit int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.ContentLength > limit {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusRequestEntityTooLarge)
				_, _ = w.Write(tooLargeBody)
				return
			}
			r.Body = http.MaxBytesReader(w, r.Body, limit)
			next.ServeHTTP(w, r)
		})
	}
}

func mustMarshal(v any) []byte {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return append(b, '\n')
}

// Package httpjson holds the small JSON request/response helpers shared by
// the API features.
package httpjson

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/dalemusser/foodhub/internal/app/system/limits"
)

// Write encodes v as the response body with the given status.
func Write(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Error writes a plain JSON string describing the problem, matching the
// API's flat error style (no structured codes beyond the HTTP status).
func Error(w http.ResponseWriter, status int, msg string) {
	Write(w, status, msg)
}

// Decode parses the request body into v. Unknown fields and trailing data
// are rejected so malformed shapes fail at the boundary instead of deep in
// a handler. Bodies over limits.MaxJSONBody fail the decode.
func Decode(r *http.Request, v any) error {
	defer r.Body.Close()

	dec := json.NewDecoder(io.LimitReader(r.Body, limits.MaxJSONBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return errors.New("invalid request body: trailing data")
	}
	return nil
}

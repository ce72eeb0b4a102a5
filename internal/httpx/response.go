// Package httpx maps handler results onto the JSON response contract:
// success payloads, error envelopes, and the translation of store
// error kinds to status codes.
package httpx

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/Yasinefedemirrr/FinalizerDemoProject/internal/store"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}

func JSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	var body []byte
	var err error
	if payload != nil {
		body, err = json.Marshal(payload)
		if err != nil {
			// best-effort error response; avoid writing partial JSON
			http.Error(w, `{"error":"encode_error"}`, http.StatusInternalServerError)
			return
		}
	} else {
		body = []byte("null")
	}
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		// nothing we can do at this point
		_ = err
	}
}

func JSONError(w http.ResponseWriter, status int, msg string, details any) {
	JSON(w, status, ErrorResponse{Error: msg, Details: details})
}

// StoreError maps a store failure onto the response contract:
// NotFound → 404, IntegrityViolation and Duplicate → 400, anything
// else → 500 with the cause logged but not leaked.
func StoreError(w http.ResponseWriter, err error, notFoundMsg, failMsg string) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		JSONError(w, http.StatusNotFound, notFoundMsg, nil)
	case errors.Is(err, store.ErrIntegrity):
		JSONError(w, http.StatusBadRequest, store.ErrIntegrity.Error(), nil)
	case errors.Is(err, store.ErrDuplicate):
		JSONError(w, http.StatusBadRequest, store.ErrDuplicate.Error(), nil)
	default:
		log.Printf("storage error: %v", err)
		JSONError(w, http.StatusInternalServerError, failMsg, nil)
	}
}

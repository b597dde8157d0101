package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"fitlife/internal/service"
	"fitlife/internal/store"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeServiceError maps the service error taxonomy to a status class.
// Unauthorized, invalid input and not-found are client faults; anything else
// is reported as a generic 500 with the detail kept to the logs.
func writeServiceError(w http.ResponseWriter, err error, notFoundMsg, internalMsg string) {
	var ie *service.InvalidInputError
	switch {
	case errors.Is(err, service.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "Unauthorized")
	case errors.As(err, &ie):
		writeError(w, http.StatusBadRequest, ie.Message)
	case errors.Is(err, store.ErrNotFound):
		writeError(w, http.StatusNotFound, notFoundMsg)
	default:
		writeError(w, http.StatusInternalServerError, internalMsg)
	}
}

package controllers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"inkwell/app/apperr"
)

// sendJSON writes data with the given status code.
func sendJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// sendError maps an application error kind onto an HTTP status. The body
// shape depends on the kind: validation failures carry the per-field
// message list, everything else a single message. Unexpected failures are
// logged and masked.
func sendError(w http.ResponseWriter, err error) {
	switch apperr.KindOf(err) {
	case apperr.KindValidation:
		sendJSON(w, http.StatusUnprocessableEntity, map[string]interface{}{
			"errors": apperr.FieldsOf(err),
		})
	case apperr.KindUnauthenticated:
		sendJSON(w, http.StatusUnauthorized, map[string]string{"message": err.Error()})
	case apperr.KindForbidden:
		sendJSON(w, http.StatusForbidden, map[string]string{"message": err.Error()})
	case apperr.KindNotFound:
		sendJSON(w, http.StatusNotFound, map[string]string{"message": err.Error()})
	case apperr.KindConflict:
		sendJSON(w, http.StatusConflict, map[string]string{"message": err.Error()})
	default:
		slog.Error("unexpected error", "error", err)
		sendJSON(w, http.StatusInternalServerError, map[string]string{"message": "an unexpected error occurred"})
	}
}

package common

import (
	"encoding/json"
	"net/http"

	"vidshare/internal/logging"
)

const MsgInternalError = "Internal Server Error"

// WriteJSON writes v with the given status.
func WriteJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.Logger.Error().Err(err).Msg("failed to encode response")
	}
}

func WriteMessage(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, MessageResponse{Message: message})
}

// WriteInternalError logs err and replies with a generic 500.
func WriteInternalError(w http.ResponseWriter, r *http.Request, op string, err error) {
	logging.Logger.Error().
		Err(err).
		Str("op", op).
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Msg("unexpected error")
	WriteMessage(w, http.StatusInternalServerError, MsgInternalError)
}

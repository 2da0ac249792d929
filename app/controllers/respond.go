package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/MUCCHU/imf-gadgets-api/app/dto"
	"github.com/MUCCHU/imf-gadgets-api/global"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, dto.ErrorResponse{Error: msg})
}

// internalError logs the cause and answers with a generic 500 body so internal
// details never reach the client.
func internalError(w http.ResponseWriter, r *http.Request, err error) {
	global.Logger.Error().Err(err).Str("method", r.Method).Str("path", r.URL.Path).Msg("request failed")
	writeError(w, http.StatusInternalServerError, "Internal Server Error")
}

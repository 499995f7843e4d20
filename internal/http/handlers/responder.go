package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

func writeJSON(w http.ResponseWriter, status int, payload any, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil && logger != nil {
		logger.Error("failed to encode response", "err", err)
	}
}

// writeDetail emits the error body shape clients depend on: {"detail": msg}.
func writeDetail(w http.ResponseWriter, status int, message string, logger *slog.Logger) {
	writeJSON(w, status, map[string]string{"detail": message}, logger)
}

func requireMethod(w http.ResponseWriter, r *http.Request, method string, logger *slog.Logger) bool {
	if r.Method == method {
		return true
	}
	w.Header().Set("Allow", method)
	writeDetail(w, http.StatusMethodNotAllowed, "method not allowed", logger)
	return false
}

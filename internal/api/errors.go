package api

import (
	"encoding/json"
	"net/http"
)

// writeError writes a minimal JSON error body with the given HTTP status.
// Internal detail never reaches the client; handlers log it instead.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}

// writeJSON writes a JSON response with the given HTTP status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

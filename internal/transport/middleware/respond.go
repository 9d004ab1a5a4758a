package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/heartmarshall/viovio/internal/wire"
)

// writeError writes the API error body.
func writeError(w http.ResponseWriter, status int, code, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(wire.ErrorResponse{Error: msg, Code: code})
}

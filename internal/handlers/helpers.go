// Package handlers implements the REST surface consumed by the Weigh Lanka
// web frontend.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/weighlanka/backend/internal/db"
)

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// storageStatus maps storage errors onto HTTP statuses: missing documents
// are 404, anything else is a 500.
func storageStatus(err error) int {
	if errors.Is(err, db.ErrNotFound) {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

package handlers

import (
	"log"
	"net/http"
)

// HandleHealthCheck reports process liveness
func HandleHealthCheck(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(`{"status":"ok"}`)); err != nil {
		log.Printf("❌ Failed to write health response: %v", err)
	}
}

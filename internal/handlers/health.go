package handlers

import (
	"net/http"

	"github.com/factlens/factlens/pkg/version"
)

// HealthCheck reports liveness along with the running build.
func HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": version.Version,
	})
}

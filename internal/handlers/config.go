package handlers

import (
	"net/http"
	"time"

	"github.com/factlens/factlens/internal/verifier"
	"github.com/factlens/factlens/pkg/version"
)

// ConfigHandler serves application configuration info.
type ConfigHandler struct {
	AnalysisDelay time.Duration
	Catalog       *verifier.Catalog
}

type configResponse struct {
	Version         string `json:"version"`
	Commit          string `json:"commit"`
	AnalysisDelayMs int64  `json:"analysisDelayMs"`
	SourceCount     int    `json:"sourceCount"`
}

// GetConfig returns build info and the effective analysis settings.
func (h *ConfigHandler) GetConfig(w http.ResponseWriter, r *http.Request) {
	resp := configResponse{
		Version:         version.Version,
		Commit:          version.Commit,
		AnalysisDelayMs: h.AnalysisDelay.Milliseconds(),
	}
	if h.Catalog != nil {
		resp.SourceCount = h.Catalog.Len()
	}
	writeJSON(w, http.StatusOK, resp)
}

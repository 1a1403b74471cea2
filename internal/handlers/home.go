package handlers

import (
	"log/slog"
	"net/http"

	"github.com/factlens/factlens/internal/verifier"
	"github.com/factlens/factlens/internal/web"
	"github.com/factlens/factlens/pkg/version"
)

// PageRenderer renders the HTML front end.
type PageRenderer interface {
	Index(data web.PageData) ([]byte, error)
}

// HomeHandler serves the HTML front end.
type HomeHandler struct {
	Renderer PageRenderer
	Catalog  *verifier.Catalog
}

// Home renders the index page.
func (h *HomeHandler) Home(w http.ResponseWriter, r *http.Request) {
	data := web.PageData{Version: version.Version}
	if h.Catalog != nil {
		data.Sources = h.Catalog.All()
	}

	page, err := h.Renderer.Index(data)
	if err != nil {
		slog.Error("failed to render home page", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to render page")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(page)
}

package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/factlens/factlens/internal/verifier"
)

// SourceHandler exposes the trusted source catalog.
type SourceHandler struct {
	Catalog *verifier.Catalog
}

// List returns every trusted source in catalog order.
func (h *SourceHandler) List(w http.ResponseWriter, r *http.Request) {
	if h.Catalog == nil {
		writeJSON(w, http.StatusOK, []verifier.TrustedSource{})
		return
	}
	writeJSON(w, http.StatusOK, h.Catalog.All())
}

// Get returns a single trusted source by ID.
func (h *SourceHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if h.Catalog == nil {
		writeError(w, http.StatusNotFound, "source not found")
		return
	}
	src, ok := h.Catalog.Get(id)
	if !ok {
		writeError(w, http.StatusNotFound, "source not found")
		return
	}
	writeJSON(w, http.StatusOK, src)
}

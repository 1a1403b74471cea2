// Package web holds the embedded HTML front end.
package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"github.com/factlens/factlens/internal/verifier"
)

//go:embed templates/*.html
var templateFS embed.FS

// PageData is the data rendered into the home page.
type PageData struct {
	Version string
	Sources []verifier.TrustedSource
}

// Renderer renders the home page.
type Renderer struct {
	tmpl *template.Template
}

// NewRenderer parses the embedded templates.
func NewRenderer() (*Renderer, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// MustNewRenderer is like NewRenderer but panics on error.
func MustNewRenderer() *Renderer {
	r, err := NewRenderer()
	if err != nil {
		panic(err)
	}
	return r
}

// Index renders index.html. Output is buffered so a failed render never
// leaves a partial page on the wire.
func (r *Renderer) Index(data PageData) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, "index.html", data); err != nil {
		return nil, fmt.Errorf("render index: %w", err)
	}
	return buf.Bytes(), nil
}

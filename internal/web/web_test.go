package web

import (
	"strings"
	"testing"

	"github.com/factlens/factlens/internal/verifier"
)

func TestRenderer_Index(t *testing.T) {
	r, err := NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer returned error: %v", err)
	}

	out, err := r.Index(PageData{
		Version: "v1.2.3",
		Sources: verifier.DefaultCatalog().All(),
	})
	if err != nil {
		t.Fatalf("Index returned error: %v", err)
	}

	body := string(out)
	for _, want := range []string{"<html", "v1.2.3", "The New York Times", "Reuters", "/analyze"} {
		if !strings.Contains(body, want) {
			t.Errorf("expected page to contain %q", want)
		}
	}
}

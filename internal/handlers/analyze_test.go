package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/factlens/factlens/internal/verifier"
)

type stubAnalyzer struct {
	calls  int
	result verifier.AnalysisResult
}

func (s *stubAnalyzer) Analyze(_ context.Context, _, _ string) verifier.AnalysisResult {
	s.calls++
	return s.result
}

type recordingRecorder struct {
	verdicts []bool
}

func (r *recordingRecorder) ObserveVerdict(isFake bool) {
	r.verdicts = append(r.verdicts, isFake)
}

func newAnalyzeRouter(h *AnalyzeHandler) chi.Router {
	r := chi.NewRouter()
	r.Post("/analyze", h.Analyze)
	return r
}

func TestAnalyzeHandler_MissingInput(t *testing.T) {
	bodies := map[string]string{
		"empty object":  `{}`,
		"null fields":   `{"url": null, "text": null}`,
		"empty strings": `{"url": "", "text": ""}`,
		"empty body":    ``,
		"json null":     `null`,
	}

	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			stub := &stubAnalyzer{}
			r := newAnalyzeRouter(&AnalyzeHandler{Analyzer: stub})

			req := httptest.NewRequest(http.MethodPost, "/analyze", strings.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			r.ServeHTTP(w, req)

			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected status 400, got %d: %s", w.Code, w.Body.String())
			}
			var resp map[string]string
			if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if len(resp) != 1 || resp["error"] != ErrMissingInput {
				t.Errorf("unexpected body: %v", resp)
			}
			if stub.calls != 0 {
				t.Errorf("analyzer should not be called, got %d calls", stub.calls)
			}
		})
	}
}

func TestAnalyzeHandler_InvalidBody(t *testing.T) {
	bodies := []string{
		`{"url": `,
		`[1, 2]`,
		`{"text": 42}`,
		`{"text": "x"} not json`,
		`{"text": "x"}{"text": "y"}`,
		`{"text": "x"} []`,
	}
	for _, body := range bodies {
		stub := &stubAnalyzer{}
		r := newAnalyzeRouter(&AnalyzeHandler{Analyzer: stub})

		req := httptest.NewRequest(http.MethodPost, "/analyze", strings.NewReader(body))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("body %q: expected status 400, got %d", body, w.Code)
		}
		if !strings.Contains(w.Body.String(), "invalid request body") {
			t.Errorf("body %q: unexpected response %s", body, w.Body.String())
		}
		if stub.calls != 0 {
			t.Errorf("body %q: analyzer should not be called", body)
		}
	}
}

func TestAnalyzeHandler_TrailingWhitespaceAccepted(t *testing.T) {
	stub := &stubAnalyzer{}
	r := newAnalyzeRouter(&AnalyzeHandler{Analyzer: stub})

	req := httptest.NewRequest(http.MethodPost, "/analyze", strings.NewReader("{\"text\": \"x\"}\n\t "))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}
	if stub.calls != 1 {
		t.Errorf("expected analyzer to be called once, got %d", stub.calls)
	}
}

func TestAnalyzeHandler_Success(t *testing.T) {
	fixed := time.Date(2025, 3, 15, 9, 30, 0, 0, time.UTC)
	v := verifier.New(verifier.WithDelay(0), verifier.WithClock(func() time.Time { return fixed }))

	tests := []struct {
		name string
		body string
	}{
		{name: "text only", body: `{"text": "Breaking: scientists discover..."}`},
		{name: "url only", body: `{"url": "http://example.com"}`},
		{name: "unreachable url", body: `{"url": "not a url at all"}`},
		{name: "both", body: `{"url": "http://example.com", "text": "something"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &recordingRecorder{}
			r := newAnalyzeRouter(&AnalyzeHandler{Analyzer: v, Recorder: rec})

			req := httptest.NewRequest(http.MethodPost, "/analyze", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			r.ServeHTTP(w, req)

			if w.Code != http.StatusOK {
				t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
			}
			if ct := w.Header().Get("Content-Type"); ct != "application/json" {
				t.Errorf("expected application/json, got %s", ct)
			}
			if strings.Contains(w.Body.String(), "http://example.com") {
				t.Error("input url should not be echoed")
			}

			var resp verifier.AnalysisResult
			if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if resp.Confidence < 0 || resp.Confidence >= 100 {
				t.Errorf("confidence out of range: %f", resp.Confidence)
			}
			if resp.Explanation == "" {
				t.Error("expected non-empty explanation")
			}
			if len(resp.Sources) != 4 {
				t.Fatalf("expected 4 sources, got %d", len(resp.Sources))
			}
			wantNames := []string{"The New York Times", "BBC News", "Associated Press", "Reuters"}
			for i, s := range resp.Sources {
				if s.Name != wantNames[i] {
					t.Errorf("source %d: expected %s, got %s", i, wantNames[i], s.Name)
				}
				if s.MatchingContent[0].Verified == resp.IsFake {
					t.Errorf("source %d: verified flag disagrees with verdict", i)
				}
			}
			if len(rec.verdicts) != 1 || rec.verdicts[0] != resp.IsFake {
				t.Errorf("expected recorded verdict %v, got %v", resp.IsFake, rec.verdicts)
			}
		})
	}
}

func TestAnalyzeHandler_WireFormat(t *testing.T) {
	stub := &stubAnalyzer{result: verifier.AnalysisResult{
		IsFake:      true,
		Confidence:  42.5,
		Explanation: verifier.Explanation,
		Sources: []verifier.SourceMatch{{
			Name:        "Reuters",
			URL:         "https://www.reuters.com",
			Reliability: 95,
			MatchingContent: []verifier.MatchingContent{{
				Headline:    verifier.HeadlineContradicting,
				URL:         "https://www.reuters.com/example",
				PublishDate: "2025-03-14",
				Verified:    false,
			}},
		}},
	}}
	r := newAnalyzeRouter(&AnalyzeHandler{Analyzer: stub})

	req := httptest.NewRequest(http.MethodPost, "/analyze", strings.NewReader(`{"text": "x"}`))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var raw map[string]any
	if err := json.NewDecoder(w.Body).Decode(&raw); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	for _, key := range []string{"isFake", "confidence", "explanation", "sources"} {
		if _, ok := raw[key]; !ok {
			t.Errorf("missing key %q", key)
		}
	}
	src := raw["sources"].([]any)[0].(map[string]any)
	for _, key := range []string{"name", "url", "reliability", "matchingContent"} {
		if _, ok := src[key]; !ok {
			t.Errorf("missing source key %q", key)
		}
	}
	mc := src["matchingContent"].([]any)[0].(map[string]any)
	for _, key := range []string{"headline", "url", "publishDate", "verified"} {
		if _, ok := mc[key]; !ok {
			t.Errorf("missing matchingContent key %q", key)
		}
	}
	if mc["publishDate"] != "2025-03-14" {
		t.Errorf("unexpected publishDate %v", mc["publishDate"])
	}
}

package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/factlens/factlens/internal/verifier"
)

// ErrMissingInput is the message returned when neither url nor text is set.
const ErrMissingInput = "Please provide either a URL or text content"

// VerdictRecorder observes completed analyses.
type VerdictRecorder interface {
	ObserveVerdict(isFake bool)
}

// AnalyzeHandler serves mock verification requests.
type AnalyzeHandler struct {
	Analyzer verifier.Analyzer
	Recorder VerdictRecorder
}

type analyzeRequest struct {
	URL  *string `json:"url"`
	Text *string `json:"text"`
}

func (r analyzeRequest) url() string {
	if r.URL == nil {
		return ""
	}
	return *r.URL
}

func (r analyzeRequest) text() string {
	if r.Text == nil {
		return ""
	}
	return *r.Text
}

// decodeAnalyzeRequest accepts an empty body as an empty request and
// rejects anything after the first JSON value.
func decodeAnalyzeRequest(body io.Reader) (analyzeRequest, error) {
	var req analyzeRequest
	dec := json.NewDecoder(body)
	if err := dec.Decode(&req); err != nil {
		if errors.Is(err, io.EOF) {
			return analyzeRequest{}, nil
		}
		return analyzeRequest{}, err
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return analyzeRequest{}, errors.New("unexpected data after JSON body")
	}
	return req, nil
}

// Analyze validates that a URL or text snippet is present and returns a
// synthetic verdict for it.
func (h *AnalyzeHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	req, err := decodeAnalyzeRequest(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	url, text := req.url(), req.text()
	if url == "" && text == "" {
		writeError(w, http.StatusBadRequest, ErrMissingInput)
		return
	}

	slog.Debug("analyzing content",
		"request_id", chimw.GetReqID(r.Context()),
		"has_url", url != "",
		"text_len", len(text),
	)

	result := h.Analyzer.Analyze(r.Context(), url, text)
	if h.Recorder != nil {
		h.Recorder.ObserveVerdict(result.IsFake)
	}

	writeJSON(w, http.StatusOK, result)
}

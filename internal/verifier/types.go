package verifier

// TrustedSource is a reputable outlet used to decorate analysis results.
type TrustedSource struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	URL         string `json:"url"`
	Reliability int    `json:"reliability"`
}

// MatchingContent is a synthetic article attributed to a trusted source.
type MatchingContent struct {
	Headline    string `json:"headline"`
	URL         string `json:"url"`
	PublishDate string `json:"publishDate"`
	Verified    bool   `json:"verified"`
}

// SourceMatch pairs a trusted source with the content it supposedly carries.
type SourceMatch struct {
	Name            string            `json:"name"`
	URL             string            `json:"url"`
	Reliability     int               `json:"reliability"`
	MatchingContent []MatchingContent `json:"matchingContent"`
}

// AnalysisResult is the verdict returned for a single analysis request.
type AnalysisResult struct {
	IsFake      bool          `json:"isFake"`
	Confidence  float64       `json:"confidence"`
	Explanation string        `json:"explanation"`
	Sources     []SourceMatch `json:"sources"`
}

package verifier

import (
	"context"
	"math/rand"
	"sync"
	"time"
)

const (
	// DefaultDelay is the simulated processing time of an analysis.
	DefaultDelay = 1500 * time.Millisecond

	// MaxPublishAgeDays bounds how far back synthetic articles are dated.
	MaxPublishAgeDays = 5

	// Explanation is returned verbatim with every result.
	Explanation = "Based on our comprehensive cross-reference analysis across major news outlets, " +
		"we've evaluated the content's authenticity by comparing it with verified reporting " +
		"from trusted sources."

	HeadlineRelated       = "Related coverage of this topic"
	HeadlineContradicting = "Contradicting coverage of this topic"

	dateLayout = "2006-01-02"
)

// Analyzer produces a verdict for a URL and/or text snippet.
type Analyzer interface {
	Analyze(ctx context.Context, url, text string) AnalysisResult
}

// Option configures a Verifier.
type Option func(*Verifier)

// WithDelay overrides the simulated processing delay.
func WithDelay(d time.Duration) Option {
	return func(v *Verifier) { v.delay = d }
}

// WithCatalog overrides the trusted source catalog.
func WithCatalog(c *Catalog) Option {
	return func(v *Verifier) { v.catalog = c }
}

// WithRand overrides the random source.
func WithRand(rng *rand.Rand) Option {
	return func(v *Verifier) { v.rng = rng }
}

// WithClock overrides the clock used to date synthetic articles.
func WithClock(now func() time.Time) Option {
	return func(v *Verifier) { v.now = now }
}

// Verifier is a mock verification engine. Its verdicts are random and the
// input is never inspected.
type Verifier struct {
	catalog *Catalog
	delay   time.Duration
	now     func() time.Time
	sleep   func(time.Duration)

	mu  sync.Mutex
	rng *rand.Rand
}

// New returns a Verifier using the default catalog and delay.
func New(opts ...Option) *Verifier {
	v := &Verifier{
		catalog: DefaultCatalog(),
		delay:   DefaultDelay,
		now:     time.Now,
		sleep:   time.Sleep,
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Catalog returns the catalog the verifier draws sources from.
func (v *Verifier) Catalog() *Catalog {
	return v.catalog
}

// Delay returns the simulated processing delay.
func (v *Verifier) Delay() time.Duration {
	return v.delay
}

// Analyze blocks for the configured delay and returns a synthetic verdict.
// The url and text arguments do not influence the result. The wait is not
// cancelled by ctx.
func (v *Verifier) Analyze(_ context.Context, _, _ string) AnalysisResult {
	if v.delay > 0 {
		v.sleep(v.delay)
	}

	now := v.now()

	v.mu.Lock()
	defer v.mu.Unlock()

	isFake := v.rng.Float64() > 0.5
	result := AnalysisResult{
		IsFake:      isFake,
		Confidence:  v.rng.Float64() * 100,
		Explanation: Explanation,
		Sources:     make([]SourceMatch, 0, v.catalog.Len()),
	}

	for _, src := range v.catalog.sources {
		result.Sources = append(result.Sources, SourceMatch{
			Name:        src.Name,
			URL:         src.URL,
			Reliability: src.Reliability,
			MatchingContent: []MatchingContent{{
				Headline:    headline(isFake),
				URL:         src.URL + "/example",
				PublishDate: v.publishDate(now),
				Verified:    !isFake,
			}},
		})
	}
	return result
}

// --- helpers ---

func headline(isFake bool) string {
	if isFake {
		return HeadlineContradicting
	}
	return HeadlineRelated
}

// publishDate must be called with v.mu held.
func (v *Verifier) publishDate(now time.Time) string {
	days := v.rng.Intn(MaxPublishAgeDays + 1)
	return now.AddDate(0, 0, -days).Format(dateLayout)
}

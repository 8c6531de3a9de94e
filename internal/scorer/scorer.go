// Package scorer derives a bounded credibility score for a URL from a small
// set of weighted heuristic signals and assembles a per-signal explanation.
// Score never fails past its boundary: every error path is folded into a
// valid Result.
package scorer

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/MOYARU/crs/internal/analysis"
	"github.com/MOYARU/crs/internal/engine"
	"github.com/MOYARU/crs/internal/signals"
)

// Result is the sole output of a scoring pass. It marshals to a JSON object
// with exactly these two keys.
type Result struct {
	Score       float64 `json:"score"`
	Explanation string  `json:"explanation"`
}

type Scorer struct {
	client    *http.Client
	weights   signals.Weights
	timeout   time.Duration
	userAgent string
}

type Option func(*Scorer)

// WithTimeout bounds the single fetch a scoring pass performs.
func WithTimeout(d time.Duration) Option {
	return func(s *Scorer) {
		s.timeout = d
	}
}

// WithHTTPClient replaces the default client. Tests use this to point the
// scorer at httptest servers.
func WithHTTPClient(c *http.Client) Option {
	return func(s *Scorer) {
		s.client = c
	}
}

// WithWeights replaces the default weight table.
func WithWeights(w signals.Weights) Option {
	return func(s *Scorer) {
		s.weights = w
	}
}

// WithUserAgent overrides the User-Agent header sent on the scoring fetch.
// Empty keeps the default bot identity.
func WithUserAgent(ua string) Option {
	return func(s *Scorer) {
		s.userAgent = ua
	}
}

func New(opts ...Option) *Scorer {
	s := &Scorer{
		weights: signals.DefaultWeights(),
		timeout: engine.DefaultTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.client == nil {
		s.client = engine.NewHTTPClient(s.timeout)
	}
	return s
}

// Score evaluates one URL. The pass is linear: validate, apply the domain
// prior, fetch once, run the content signals in their fixed order, then sum
// and clamp. Concurrent calls are safe; the scorer holds no mutable state.
func (s *Scorer) Score(ctx context.Context, rawURL string) Result {
	target, err := engine.Normalize(rawURL)
	if err != nil {
		return Result{
			Score:       0.0,
			Explanation: fmt.Sprintf("Invalid input URL (%v).", err),
		}
	}

	w := s.weights
	prior := signals.DomainPrior(target, w)
	base := w.Base + prior.Delta
	clauses := []string{prior.Clause}

	fetchCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	fr, err := engine.Fetch(fetchCtx, s.client, target, s.userAgent)
	if err != nil {
		category := engine.ClassifyError(err)
		log.Debug().Err(err).Str("url", rawURL).Str("category", category).Msg("fetch failed")
		clauses = append(clauses, fmt.Sprintf("Could not reliably access the source (%s).", category))
		return finish(math.Max(w.FetchFloor, base-w.FetchPenalty), clauses)
	}

	if fr.StatusCode < 200 || fr.StatusCode >= 300 {
		clauses = append(clauses, fmt.Sprintf("Could not reliably access the source (HTTP %d).", fr.StatusCode))
		return finish(math.Max(w.FetchFloor, base-w.FetchPenalty), clauses)
	}

	page := analysis.NewPage(fr)
	score := base

	transport := signals.Transport(page, w)
	score += transport.Delta
	clauses = append(clauses, transport.Clause)

	if !page.IsHTML {
		nonHTML := signals.NonHTML(page)
		clauses = append(clauses, nonHTML.Clause)
		return finish(score, clauses)
	}

	for _, sig := range signals.ContentSignals() {
		fired, ok := sig(page, w)
		if !ok {
			continue
		}
		score += fired.Delta
		clauses = append(clauses, fired.Clause)
		log.Debug().Str("signal", fired.ID).Float64("delta", fired.Delta).Msg("signal fired")
	}

	return finish(score, clauses)
}

func finish(score float64, clauses []string) Result {
	return Result{
		Score:       round3(clamp01(score)),
		Explanation: strings.Join(clauses, " "),
	}
}

func clamp01(x float64) float64 {
	return math.Max(0.0, math.Min(x, 1.0))
}

func round3(x float64) float64 {
	return math.Round(x*1000) / 1000
}

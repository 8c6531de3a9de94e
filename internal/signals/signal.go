// Package signals holds the independent credibility signals. Each signal is a
// pure function over an analysis.Page; the scorer composes them in a fixed
// order so the assembled explanation is deterministic for a given fetch
// outcome.
package signals

import "github.com/MOYARU/crs/internal/analysis"

type Signal struct {
	ID     string
	Clause string
	Delta  float64
}

// ContentSignal inspects a fetched page and reports whether it fired.
type ContentSignal func(p *analysis.Page, w Weights) (Signal, bool)

// ContentSignals returns the content-level signals in evaluation order.
// The order is part of the contract: explanations list clauses in the order
// the signals appear here.
func ContentSignals() []ContentSignal {
	return []ContentSignal{
		Title,
		TextVolume,
		AuthorHint,
		DateHint,
		ReferenceHint,
	}
}

package signals

import (
	"fmt"
	"regexp"

	"github.com/MOYARU/crs/internal/analysis"
)

var authorPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bby\s+[A-Z][a-z]+\s+[A-Z][a-z]+`), // "By John Smith"
	regexp.MustCompile(`(?i)author`),
	regexp.MustCompile(`(?i)written by`),
}

var datePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b(19|20)\d{2}\b`),
	regexp.MustCompile(`(?i)\b(Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\s+\d{1,2},\s+(19|20)\d{2}\b`),
	regexp.MustCompile(`\b\d{1,2}/\d{1,2}/(19|20)\d{2}\b`),
	regexp.MustCompile(`(?i)\bupdated\b|\bpublished\b|\blast reviewed\b`),
}

var referencePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\breferences\b`),
	regexp.MustCompile(`(?i)\bcitations?\b`),
	regexp.MustCompile(`(?i)\bbibliography\b`),
	regexp.MustCompile(`(?i)\bdoi:`),
	regexp.MustCompile(`(?i)\bPMID\b`),
	regexp.MustCompile(`(?i)\bjournal\b`),
}

// Title fires when an HTML page carries a non-empty <title>.
func Title(p *analysis.Page, w Weights) (Signal, bool) {
	if !p.IsHTML || p.Title == "" {
		return Signal{}, false
	}
	return Signal{
		ID:     "CONTENT_TITLE",
		Clause: "Page has a title, suggesting a structured page.",
		Delta:  w.TitleBonus,
	}, true
}

// TextVolume grades the amount of readable text. It always fires for HTML
// pages; very short pages draw a small penalty since there is little to
// assess.
func TextVolume(p *analysis.Page, w Weights) (Signal, bool) {
	if !p.IsHTML {
		return Signal{}, false
	}
	n := len(p.Text)
	switch {
	case n >= w.LongTextLen:
		return Signal{
			ID:     "CONTENT_TEXT_LONG",
			Clause: "Has substantial content length.",
			Delta:  w.LongTextBonus,
		}, true
	case n >= w.ModerateTextLen:
		return Signal{
			ID:     "CONTENT_TEXT_MODERATE",
			Clause: "Has moderate content length.",
			Delta:  w.ModerateTextBonus,
		}, true
	default:
		return Signal{
			ID:     "CONTENT_TEXT_SHORT",
			Clause: "Very little readable text; harder to assess credibility.",
			Delta:  -w.ShortTextPenalty,
		}, true
	}
}

// AuthorHint fires when the visible text names an author.
func AuthorHint(p *analysis.Page, w Weights) (Signal, bool) {
	if !p.IsHTML || !matchAny(authorPatterns, p.Text) {
		return Signal{}, false
	}
	return Signal{
		ID:     "CONTENT_AUTHOR",
		Clause: "Author information detected.",
		Delta:  w.AuthorBonus,
	}, true
}

// DateHint fires when the visible text carries a publication or update date.
func DateHint(p *analysis.Page, w Weights) (Signal, bool) {
	if !p.IsHTML || !matchAny(datePatterns, p.Text) {
		return Signal{}, false
	}
	return Signal{
		ID:     "CONTENT_DATE",
		Clause: "Publication/update date hints detected.",
		Delta:  w.DateBonus,
	}, true
}

// ReferenceHint fires when the visible text carries citation markers.
func ReferenceHint(p *analysis.Page, w Weights) (Signal, bool) {
	if !p.IsHTML || !matchAny(referencePatterns, p.Text) {
		return Signal{}, false
	}
	return Signal{
		ID:     "CONTENT_REFERENCES",
		Clause: "Reference/citation hints detected.",
		Delta:  w.ReferenceBonus,
	}, true
}

// NonHTML is the limited-analysis note for opaque content types. The page is
// still a valid, reachable source; there is just no text to inspect.
func NonHTML(p *analysis.Page) Signal {
	return Signal{
		ID:     "CONTENT_NON_HTML",
		Clause: fmt.Sprintf("Non-HTML content (%d bytes; limited text analysis).", p.BodyLen),
		Delta:  0,
	}
}

func matchAny(patterns []*regexp.Regexp, text string) bool {
	for _, p := range patterns {
		if p.MatchString(text) {
			return true
		}
	}
	return false
}

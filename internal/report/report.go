// Package report persists the results of a scoring run as timestamped JSON
// and Markdown files under the configured report directory.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/MOYARU/crs/internal/scorer"
)

type Band string

const (
	BandHigh     Band = "HIGH"
	BandModerate Band = "MODERATE"
	BandLow      Band = "LOW"
)

// BandFor buckets a score for display. The cutoffs are presentation only;
// they never feed back into scoring.
func BandFor(score float64) Band {
	switch {
	case score >= 0.7:
		return BandHigh
	case score >= 0.4:
		return BandModerate
	default:
		return BandLow
	}
}

type Entry struct {
	URL         string  `json:"url"`
	Score       float64 `json:"score"`
	Explanation string  `json:"explanation"`
}

func NewEntry(url string, r scorer.Result) Entry {
	return Entry{URL: url, Score: r.Score, Explanation: r.Explanation}
}

type Run struct {
	Timestamp time.Time `json:"timestamp"`
	Entries   []Entry   `json:"entries"`
}

func NewRun(entries []Entry) *Run {
	return &Run{Timestamp: time.Now(), Entries: entries}
}

// SortedByScore returns the entries highest score first, ties broken by URL
// so report ordering is stable.
func (r *Run) SortedByScore() []Entry {
	sorted := make([]Entry, len(r.Entries))
	copy(sorted, r.Entries)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Score == sorted[j].Score {
			return sorted[i].URL < sorted[j].URL
		}
		return sorted[i].Score > sorted[j].Score
	})
	return sorted
}

func (r *Run) stamp() string {
	return r.Timestamp.Format("20060102_150405")
}

// WriteJSON writes the run to credibility_<stamp>.json under dir, creating
// the directory if needed. Returns the written path.
func (r *Run) WriteJSON(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create report dir: %w", err)
	}

	path := filepath.Join(dir, fmt.Sprintf("credibility_%s.json", r.stamp()))
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode report: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}
	return path, nil
}

// WriteMarkdown writes a human-readable score table to
// credibility_<stamp>.md under dir. Returns the written path.
func (r *Run) WriteMarkdown(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create report dir: %w", err)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "# Credibility Report - %s\n\n", r.Timestamp.Format(time.RFC1123))
	sb.WriteString("| Score | Band | URL | Explanation |\n")
	sb.WriteString("|-------|------|-----|-------------|\n")
	for _, e := range r.SortedByScore() {
		fmt.Fprintf(&sb, "| %.3f | %s | %s | %s |\n",
			e.Score, BandFor(e.Score), e.URL, strings.ReplaceAll(e.Explanation, "|", "\\|"))
	}
	sb.WriteString("\nScores are heuristic and bounded to [0,1]; higher typically reflects trusted domains, HTTPS, and author/date/reference signals.\n")

	path := filepath.Join(dir, fmt.Sprintf("credibility_%s.md", r.stamp()))
	if err := os.WriteFile(path, []byte(sb.String()), 0o644); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}
	return path, nil
}

package report

import (
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"time"
)

type htmlEntry struct {
	Entry
	Band    Band
	Percent int
}

type htmlReportData struct {
	Generated     string
	Total         int
	HighCount     int
	ModerateCount int
	LowCount      int
	Entries       []htmlEntry
}

// SaveHTML renders the run to credibility_<stamp>.html under dir.
// Returns the written path.
func (r *Run) SaveHTML(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create report dir: %w", err)
	}

	data := htmlReportData{
		Generated: r.Timestamp.Format(time.RFC1123),
		Total:     len(r.Entries),
	}
	for _, e := range r.SortedByScore() {
		band := BandFor(e.Score)
		switch band {
		case BandHigh:
			data.HighCount++
		case BandModerate:
			data.ModerateCount++
		default:
			data.LowCount++
		}
		data.Entries = append(data.Entries, htmlEntry{
			Entry:   e,
			Band:    band,
			Percent: int(e.Score * 100),
		})
	}

	t, err := template.New("report").Parse(htmlTemplate)
	if err != nil {
		return "", fmt.Errorf("parse report template: %w", err)
	}

	path := filepath.Join(dir, fmt.Sprintf("credibility_%s.html", r.stamp()))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create report file: %w", err)
	}
	defer f.Close()

	if err := t.Execute(f, data); err != nil {
		return "", fmt.Errorf("render report: %w", err)
	}
	return path, nil
}

const htmlTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<title>CRS Credibility Report</title>
<style>
    body { font-family: -apple-system, "Segoe UI", Roboto, sans-serif; margin: 0; background: #10141a; color: #e6e9ee; }
    .wrap { max-width: 1000px; margin: 0 auto; padding: 32px 20px; }
    h1 { font-size: 1.5rem; margin-bottom: 0.25rem; }
    .meta { color: #8a93a3; margin-bottom: 24px; }
    .cards { display: grid; grid-template-columns: repeat(auto-fit, minmax(160px, 1fr)); gap: 12px; margin-bottom: 28px; }
    .card { background: #1a2029; border-radius: 8px; padding: 16px; text-align: center; }
    .card .num { font-size: 1.8rem; font-weight: 700; }
    .card .label { color: #8a93a3; font-size: 0.8rem; text-transform: uppercase; letter-spacing: 0.05em; }
    .high .num { color: #4ade80; }
    .moderate .num { color: #facc15; }
    .low .num { color: #f87171; }
    .entry { background: #1a2029; border-radius: 8px; padding: 16px 20px; margin-bottom: 12px; }
    .entry .url { font-weight: 600; word-break: break-all; }
    .entry .score { float: right; font-variant-numeric: tabular-nums; }
    .bar { height: 6px; border-radius: 3px; background: #2a3340; margin: 10px 0; overflow: hidden; }
    .bar span { display: block; height: 100%; }
    .bar.HIGH span { background: #4ade80; }
    .bar.MODERATE span { background: #facc15; }
    .bar.LOW span { background: #f87171; }
    .explanation { color: #aab3c0; font-size: 0.9rem; }
    .footer { color: #626b7a; font-size: 0.8rem; margin-top: 24px; }
</style>
</head>
<body>
<div class="wrap">
    <h1>Credibility Report</h1>
    <div class="meta">Generated {{.Generated}} &middot; {{.Total}} source(s)</div>
    <div class="cards">
        <div class="card high"><div class="num">{{.HighCount}}</div><div class="label">High</div></div>
        <div class="card moderate"><div class="num">{{.ModerateCount}}</div><div class="label">Moderate</div></div>
        <div class="card low"><div class="num">{{.LowCount}}</div><div class="label">Low</div></div>
    </div>
    {{range .Entries}}
    <div class="entry">
        <span class="score">{{printf "%.3f" .Score}}</span>
        <div class="url">{{.URL}}</div>
        <div class="bar {{.Band}}"><span style="width: {{.Percent}}%"></span></div>
        <div class="explanation">{{.Explanation}}</div>
    </div>
    {{end}}
    <div class="footer">Scores are heuristic, additive, and clamped to [0,1]. They summarize surface signals, not editorial truth.</div>
</div>
</body>
</html>
`

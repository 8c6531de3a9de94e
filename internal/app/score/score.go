// Package score drives a scoring run end to end: build the scorer from
// policy and flags, score each URL serially, then render and persist the
// results.
package score

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/MOYARU/crs/internal/app/ui"
	"github.com/MOYARU/crs/internal/config"
	"github.com/MOYARU/crs/internal/report"
	"github.com/MOYARU/crs/internal/scorer"
)

type Options struct {
	JSON    bool
	HTML    bool
	Report  bool
	Timeout time.Duration
}

// Run scores the given URLs one at a time and renders the outcome. It only
// returns an error for collaborator failures (bad policy file, unwritable
// report dir); scoring itself always produces a result per URL.
func Run(ctx context.Context, urls []string, opts Options) error {
	if len(urls) == 0 {
		return fmt.Errorf("no URLs to score")
	}

	policy, err := config.LoadPolicy()
	if err != nil {
		return err
	}

	timeout := policy.Timeout()
	if opts.Timeout > 0 {
		timeout = opts.Timeout
	}

	s := scorer.New(
		scorer.WithTimeout(timeout),
		scorer.WithWeights(policy.Weights),
		scorer.WithUserAgent(policy.UserAgent),
	)

	ctx, cancel := ui.WaitForCancel(ctx)
	defer cancel()

	entries := make([]report.Entry, 0, len(urls))
	for i, u := range urls {
		if ctx.Err() != nil {
			log.Warn().Int("scored", i).Int("total", len(urls)).Msg("run cancelled")
			break
		}
		if !opts.JSON {
			printProgress(i+1, len(urls), u)
		}
		entries = append(entries, report.NewEntry(u, s.Score(ctx, u)))
	}
	if !opts.JSON {
		fmt.Print("\r\033[K")
	}
	if len(entries) == 0 {
		return fmt.Errorf("no URLs scored")
	}

	run := report.NewRun(entries)

	if opts.JSON {
		if err := printJSON(run); err != nil {
			return err
		}
	} else {
		printTable(run)
	}

	if opts.Report {
		jsonPath, err := run.WriteJSON(policy.ReportDir)
		if err != nil {
			return err
		}
		mdPath, err := run.WriteMarkdown(policy.ReportDir)
		if err != nil {
			return err
		}
		fmt.Printf("%sReports written: %s, %s%s\n", ui.ColorGray, jsonPath, mdPath, ui.ColorReset)
	}

	if opts.HTML {
		htmlPath, err := run.SaveHTML(policy.ReportDir)
		if err != nil {
			return err
		}
		fmt.Printf("%sHTML report written: %s%s\n", ui.ColorGray, htmlPath, ui.ColorReset)
	}

	return nil
}

func printProgress(current, total int, target string) {
	if len(target) > 50 {
		target = target[:47] + "..."
	}
	fmt.Printf("\rScoring [%d/%d]: %s\033[K", current, total, target)
}

// printJSON emits the bare two-key result for a single URL, or the entry
// list for a batch.
func printJSON(run *report.Run) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if len(run.Entries) == 1 {
		e := run.Entries[0]
		return enc.Encode(scorer.Result{Score: e.Score, Explanation: e.Explanation})
	}
	return enc.Encode(run.SortedByScore())
}

func printTable(run *report.Run) {
	fmt.Printf("\n%sCredibility scores (highest first):%s\n", ui.ColorWhite, ui.ColorReset)
	for _, e := range run.SortedByScore() {
		band := report.BandFor(e.Score)
		fmt.Printf("\n%s[%.3f] %-8s%s %s\n", bandColor(band), e.Score, band, ui.ColorReset, e.URL)
		fmt.Printf("%s - %s%s\n", ui.ColorGray, e.Explanation, ui.ColorReset)
	}
}

func bandColor(b report.Band) string {
	switch b {
	case report.BandHigh:
		return ui.ColorBandHigh
	case report.BandModerate:
		return ui.ColorBandModerate
	default:
		return ui.ColorBandLow
	}
}

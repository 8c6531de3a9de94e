/*
Copyright (c) 2026 moyaru <rbffo@icloud.com>
*/

package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/MOYARU/crs/internal/app/interactive"
	"github.com/MOYARU/crs/internal/app/score"
	"github.com/MOYARU/crs/internal/app/ui"
	appver "github.com/MOYARU/crs/internal/version"
)

var (
	version = appver.Value

	jsonOutput  bool
	htmlOutput  bool
	writeReport bool
	timeoutSecs int
	verbose     bool
	quiet       bool
)

var rootCmd = &cobra.Command{
	Use:   "crs [url ...]",
	Short: "CRS scores the credibility of web sources: it fetches each URL once, inspects transport and content signals (domain suffix, HTTPS, title, text volume, author/date/reference hints), and reports a bounded [0,1] score with a per-signal explanation.",
	Args:  cobra.ArbitraryArgs,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogging()
	},
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			interactive.RunInteractiveMode(cmd)
			return
		}
		opts := score.Options{
			JSON:    jsonOutput,
			HTML:    htmlOutput,
			Report:  writeReport,
			Timeout: time.Duration(timeoutSecs) * time.Second,
		}
		if err := score.Run(cmd.Context(), args, opts); err != nil {
			fmt.Printf("%sScoring run failed: %v%s\n", ui.ColorRed, err, ui.ColorReset)
			os.Exit(1)
		}
	},
}

func setupLogging() {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	zerolog.SetGlobalLevel(logLevel(quiet, verbose))
}

// logLevel maps the logging flags to a zerolog level. Quiet wins when both
// are set.
func logLevel(quiet, verbose bool) zerolog.Level {
	switch {
	case quiet:
		return zerolog.ErrorLevel
	case verbose:
		return zerolog.DebugLevel
	default:
		return zerolog.WarnLevel
	}
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = version

	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Log per-signal scoring detail to stderr")
	rootCmd.PersistentFlags().BoolVar(&quiet, "quiet", false, "Only log errors")
	rootCmd.Flags().BoolVar(&jsonOutput, "json", false, "Output result as JSON")
	rootCmd.Flags().BoolVar(&htmlOutput, "html", false, "Write an HTML report")
	rootCmd.Flags().BoolVar(&writeReport, "report", false, "Write timestamped JSON and Markdown reports")
	rootCmd.Flags().IntVar(&timeoutSecs, "timeout", 0, "Fetch timeout in seconds (default: 8, or .crs.yaml)")

	rootCmd.Long = ui.AsciiArt + `
CRS is a heuristic credibility scorer for web sources.

Usage:
   crs [url ...] [flags]

Example:
  crs https://www.nih.gov
  crs nih.gov example.com --report
  crs https://example.com --json
  crs bench --calls 20 --workers 8

Flags:
  --json               Output result as JSON
  --html               Write an HTML report
  --report             Write timestamped JSON and Markdown reports
  --timeout            Fetch timeout in seconds
  --verbose            Log per-signal scoring detail
  --quiet              Only log errors

Scores are heuristic and bounded to [0,1]. They summarize surface signals
(domain suffix, HTTPS, title, text volume, author/date/reference hints),
not editorial truth.
`
}

// Package interactive implements the prompt loop used when crs starts
// without arguments: read a URL, score it, print the result, repeat.
package interactive

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MOYARU/crs/internal/app/ui"
	"github.com/MOYARU/crs/internal/config"
	"github.com/MOYARU/crs/internal/report"
	"github.com/MOYARU/crs/internal/scorer"
)

func RunInteractiveMode(cmdObj *cobra.Command) {
	ui.PrintGradientAsciiArt()

	helpText := strings.Replace(cmdObj.Long, ui.AsciiArt, "", 1)
	fmt.Println(helpText)

	policy, err := config.LoadPolicy()
	if err != nil {
		fmt.Printf("%s%v%s\n", ui.ColorRed, err, ui.ColorReset)
		return
	}

	s := scorer.New(
		scorer.WithTimeout(policy.Timeout()),
		scorer.WithWeights(policy.Weights),
		scorer.WithUserAgent(policy.UserAgent),
	)

	ctx, cancel := ui.WaitForCancel(context.Background())
	defer cancel()

	fmt.Printf("%sEnter a URL to score, or 'quit' to exit.%s\n\n", ui.ColorGray, ui.ColorReset)

	var entries []report.Entry
	reader := bufio.NewReader(os.Stdin)
	for {
		if ctx.Err() != nil {
			break
		}

		fmt.Printf("%scrs>%s ", ui.ColorYellow, ui.ColorReset)
		line, err := reader.ReadString('\n')
		if err != nil {
			break
		}

		input := strings.TrimSpace(line)
		switch input {
		case "":
			continue
		case "quit", "exit", "q":
			goto done
		}

		result := s.Score(ctx, input)
		entries = append(entries, report.NewEntry(input, result))

		band := report.BandFor(result.Score)
		fmt.Printf("%s[%.3f] %s%s\n", bandColor(band), result.Score, band, ui.ColorReset)
		fmt.Printf("%s - %s%s\n\n", ui.ColorGray, result.Explanation, ui.ColorReset)
	}

done:
	if len(entries) == 0 {
		return
	}

	prompt := fmt.Sprintf("%sSave a report for this session?%s", ui.ColorYellow, ui.ColorReset)
	confirmed, err := ui.Confirm(prompt)
	if err != nil || !confirmed {
		return
	}

	run := report.NewRun(entries)
	jsonPath, err := run.WriteJSON(policy.ReportDir)
	if err != nil {
		fmt.Printf("%s%v%s\n", ui.ColorRed, err, ui.ColorReset)
		return
	}
	mdPath, err := run.WriteMarkdown(policy.ReportDir)
	if err != nil {
		fmt.Printf("%s%v%s\n", ui.ColorRed, err, ui.ColorReset)
		return
	}
	fmt.Printf("%sReports written: %s, %s%s\n", ui.ColorGray, jsonPath, mdPath, ui.ColorReset)
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

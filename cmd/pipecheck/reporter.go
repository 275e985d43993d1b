package main

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/spboyer/pipecheck/internal/report"
)

const headerWidth = 60

// padRight pads s with spaces so its terminal display width reaches width.
func padRight(s string, width int) string {
	sw := runewidth.StringWidth(s)
	if sw >= width {
		return s
	}
	return s + strings.Repeat(" ", width-sw)
}

type writer = interface{ Write([]byte) (int, error) }

//nolint:errcheck
func printHeader(w writer) {
	fmt.Fprintf(w, "\n%s\n", strings.Repeat("═", headerWidth))
	fmt.Fprintf(w, "  🚀 CI/CD Pipeline Challenge\n")
	fmt.Fprintf(w, "%s\n\n", strings.Repeat("═", headerWidth))
}

// ruleNameWidth returns the widest rule name in the report, so detail
// columns line up across categories.
func ruleNameWidth(rep *report.RunReport) int {
	width := 0
	for _, cr := range rep.Categories {
		for _, rr := range cr.Rules {
			if rw := runewidth.StringWidth(rr.Name); rw > width {
				width = rw
			}
		}
	}
	return width
}

// renderReport writes the full text progress report: per-category sections,
// the advisory bonus section, the progress bar, and a closing message.
//
//nolint:errcheck // display function — fmt.Fprintf errors to stdout are not actionable
func renderReport(w writer, rep *report.RunReport) {
	printHeader(w)
	fmt.Fprintf(w, "  Checking your CI/CD workflows...\n\n")

	nameWidth := ruleNameWidth(rep)
	for _, cr := range rep.Categories {
		statusIcon := "⏳"
		if cr.Complete() {
			statusIcon = "✅"
		}
		fmt.Fprintf(w, "  %s %s (%d/%d points)\n", statusIcon, cr.Name, cr.Score, cr.Max)

		for _, rr := range cr.Rules {
			mark := "✗"
			if rr.Passed {
				mark = "✓"
			}
			if rr.Detail != "" {
				fmt.Fprintf(w, "      %s %s - %s\n", mark, padRight(rr.Name, nameWidth), rr.Detail)
			} else {
				fmt.Fprintf(w, "      %s %s\n", mark, rr.Name)
			}
		}
		fmt.Fprintf(w, "\n")
	}

	// The bonus section is advisory only and never contributes to the score.
	fmt.Fprintf(w, "  Bonus Points:\n")
	fmt.Fprintf(w, "      ⏳ Branch protection - Configure in GitHub Settings\n")
	fmt.Fprintf(w, "      ⏳ Secrets management - Configure in GitHub Secrets\n\n")

	filled := rep.FilledSegments()
	bar := strings.Repeat("█", filled) + strings.Repeat("░", report.BarSegments-filled)
	fmt.Fprintf(w, "  Score:\n")
	fmt.Fprintf(w, "  %s %d/%d points (%d%%)\n", bar, rep.Total, rep.Max, rep.Percentage())

	switch {
	case rep.Complete():
		fmt.Fprintf(w, "\n  🎉 All workflows complete!\n")
		fmt.Fprintf(w, "  Push to GitHub and watch your pipelines run!\n")
	case rep.Percentage() >= 80:
		fmt.Fprintf(w, "\n  Almost there! Check the items marked with ✗\n")
	default:
		fmt.Fprintf(w, "\n  Keep going! See README.md for guidance.\n")
	}
	fmt.Fprintf(w, "\n")
}

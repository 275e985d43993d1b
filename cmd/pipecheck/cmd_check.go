package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/spboyer/pipecheck/internal/projectconfig"
	"github.com/spboyer/pipecheck/internal/report"
	"github.com/spboyer/pipecheck/internal/reporting"
	"github.com/spboyer/pipecheck/internal/rules"
	"github.com/spf13/cobra"
)

func newCheckCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Score the workflow files and print a progress report",
		Long: `Score the three workflow files and print a progress report.

Reads ci.yml, build.yml, and deploy.yml from the workflow directory
(.github/workflows/ unless overridden in .pipecheck.yaml) and checks each
for the expected pipeline configuration. A missing file scores zero for its
category. 75 points total; 100% means the challenge is complete.`,
		Args:          cobra.NoArgs,
		RunE:          runCheck,
		SilenceErrors: true,
	}
	cmd.Flags().String("format", "text", "Output format: text | json | junit")
	return cmd
}

func runCheck(cmd *cobra.Command, _ []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}
	if format != "text" && format != "json" && format != "junit" {
		return fmt.Errorf("invalid format %q: expected text, json, or junit", format)
	}
	return checkWorkflows(cmd, format)
}

// checkWorkflows runs the aggregator and renders the report in the requested
// format. It is shared with the root command, which always renders text.
func checkWorkflows(cmd *cobra.Command, format string) error {
	cfg, err := projectconfig.Load(".")
	if err != nil {
		return err
	}

	rep, err := report.Run(cfg.Workflows.Dir)
	if err != nil {
		return err
	}

	switch format {
	case "json":
		return outputCheckJSON(cmd, rep)
	case "junit":
		return reporting.WriteJUnit(cmd.OutOrStdout(), rep)
	}
	renderReport(cmd.OutOrStdout(), rep)
	return nil
}

// --- JSON output structs ---

type checkJSONReport struct {
	Timestamp  string                 `json:"timestamp"`
	Categories []rules.CategoryResult `json:"categories"`
	Total      int                    `json:"total"`
	Max        int                    `json:"max"`
	Percentage int                    `json:"percentage"`
	Complete   bool                   `json:"complete"`
}

// outputCheckJSON marshals the report as JSON to the command's stdout.
func outputCheckJSON(cmd *cobra.Command, rep *report.RunReport) error {
	jsonReport := checkJSONReport{
		Timestamp:  time.Now().UTC().Format(time.RFC3339Nano),
		Categories: rep.Categories,
		Total:      rep.Total,
		Max:        rep.Max,
		Percentage: rep.Percentage(),
		Complete:   rep.Complete(),
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(jsonReport); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	_, err := fmt.Fprint(cmd.OutOrStdout(), buf.String())
	return err
}

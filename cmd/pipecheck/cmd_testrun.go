package main

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/spboyer/pipecheck/internal/projectconfig"
	"github.com/spf13/cobra"
)

func newTestCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "test",
		Short: "Run the subject service's test suite locally",
		Long: `Run the subject service's test suite locally before pushing.

The same suite runs in the CI pipeline, so a green run here means the CI
test stage will pass. The command and arguments can be overridden via the
test section of .pipecheck.yaml.`,
		Args: cobra.NoArgs,
		RunE: runLocalTests,
	}
}

//nolint:errcheck
func runLocalTests(cmd *cobra.Command, _ []string) error {
	w := cmd.OutOrStdout()

	cfg, err := projectconfig.Load(".")
	if err != nil {
		return err
	}

	printHeader(w)
	fmt.Fprintf(w, "  Running tests locally...\n\n")

	// Check the toolchain is available before attempting to run anything.
	path, err := exec.LookPath(cfg.Test.Command)
	if err != nil {
		fmt.Fprintf(w, "  ❌ %s not found on PATH\n", cfg.Test.Command)
		fmt.Fprintf(w, "  Install it before running tests locally\n\n")
		return nil
	}

	fmt.Fprintf(w, "  Running: %s %s\n\n", cfg.Test.Command, strings.Join(cfg.Test.Args, " "))

	testCmd := exec.CommandContext(cmd.Context(), path, cfg.Test.Args...)
	testCmd.Stdout = w
	testCmd.Stderr = cmd.ErrOrStderr()
	runErr := testCmd.Run()

	fmt.Fprintf(w, "\n")
	var exitErr *exec.ExitError
	switch {
	case runErr == nil:
		fmt.Fprintf(w, "  ✅ All tests passed!\n")
		fmt.Fprintf(w, "  Your CI pipeline will also pass these tests.\n\n")
	case errors.As(runErr, &exitErr):
		fmt.Fprintf(w, "  ❌ Some tests failed.\n")
		fmt.Fprintf(w, "  Fix these before pushing - CI will fail!\n\n")
	default:
		return fmt.Errorf("running tests: %w", runErr)
	}
	return nil
}

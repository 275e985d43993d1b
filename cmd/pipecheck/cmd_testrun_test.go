package main

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeTestConfig points the test runner at the given command.
func writeTestConfig(t *testing.T, command string, args []string) {
	t.Helper()
	dir := t.TempDir()
	cfg := "test:\n  command: " + command + "\n  args: ["
	for i, a := range args {
		if i > 0 {
			cfg += ", "
		}
		cfg += "\"" + a + "\""
	}
	cfg += "]\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".pipecheck.yaml"), []byte(cfg), 0o644))
	t.Chdir(dir)
}

func runTestCommand(t *testing.T) string {
	t.Helper()
	cmd := newTestCommand()
	var output bytes.Buffer
	cmd.SetOut(&output)
	cmd.SetErr(&output)
	cmd.SetArgs([]string{})
	require.NoError(t, cmd.Execute())
	return output.String()
}

func TestTestCommandSuccess(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("relies on POSIX true/false")
	}
	writeTestConfig(t, "true", nil)

	out := runTestCommand(t)
	assert.Contains(t, out, "Running tests locally...")
	assert.Contains(t, out, "✅ All tests passed!")
}

func TestTestCommandFailure(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("relies on POSIX true/false")
	}
	writeTestConfig(t, "false", nil)

	out := runTestCommand(t)
	assert.Contains(t, out, "❌ Some tests failed.")
	assert.Contains(t, out, "Fix these before pushing - CI will fail!")
}

func TestTestCommandMissingToolchain(t *testing.T) {
	writeTestConfig(t, "definitely-not-a-real-toolchain", nil)

	out := runTestCommand(t)
	assert.Contains(t, out, "❌ definitely-not-a-real-toolchain not found on PATH")
	assert.NotContains(t, out, "Running:")
}

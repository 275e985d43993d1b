package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const passingBuild = `name: Build
permissions:
  packages: write
jobs:
  build:
    steps:
      - uses: docker/setup-buildx-action@v3
      - uses: docker/login-action@v3
        with:
          registry: ghcr.io
      - uses: docker/build-push-action@v5
`

// setupWorkspace chdirs into a temp repo with the given workflow files.
func setupWorkspace(t *testing.T, files map[string]string) {
	t.Helper()
	dir := t.TempDir()
	wfDir := filepath.Join(dir, ".github", "workflows")
	require.NoError(t, os.MkdirAll(wfDir, 0o755))
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(wfDir, name), []byte(content), 0o644))
	}
	t.Chdir(dir)
}

func TestCheckCommand(t *testing.T) {
	setupWorkspace(t, map[string]string{"build.yml": passingBuild})

	cmd := newCheckCommand()
	var output bytes.Buffer
	cmd.SetOut(&output)
	cmd.SetErr(&output)
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())
	result := output.String()

	assert.Contains(t, result, "✅ Build Pipeline (25/25 points)")
	assert.Contains(t, result, "⏳ CI Pipeline (0/25 points)")
	assert.Contains(t, result, "File not found")
	assert.Contains(t, result, "25/75 points (33%)")
}

func TestCheckCommandJSON(t *testing.T) {
	setupWorkspace(t, map[string]string{"build.yml": passingBuild})

	cmd := newCheckCommand()
	var output bytes.Buffer
	cmd.SetOut(&output)
	cmd.SetErr(&output)
	cmd.SetArgs([]string{"--format", "json"})

	require.NoError(t, cmd.Execute())

	var rep checkJSONReport
	require.NoError(t, json.Unmarshal(output.Bytes(), &rep))

	assert.Len(t, rep.Categories, 3)
	assert.Equal(t, 25, rep.Total)
	assert.Equal(t, 75, rep.Max)
	assert.Equal(t, 33, rep.Percentage)
	assert.False(t, rep.Complete)
	assert.NotEmpty(t, rep.Timestamp)
}

func TestCheckCommandJUnit(t *testing.T) {
	setupWorkspace(t, map[string]string{"build.yml": passingBuild})

	cmd := newCheckCommand()
	var output bytes.Buffer
	cmd.SetOut(&output)
	cmd.SetErr(&output)
	cmd.SetArgs([]string{"--format", "junit"})

	require.NoError(t, cmd.Execute())
	out := output.String()
	assert.Contains(t, out, "<?xml")
	assert.Contains(t, out, `name="Build Pipeline"`)
	assert.Contains(t, out, "RuleNotSatisfied")
}

func TestCheckCommandInvalidFormat(t *testing.T) {
	cmd := newCheckCommand()
	var output bytes.Buffer
	cmd.SetOut(&output)
	cmd.SetErr(&output)
	cmd.SetArgs([]string{"--format", "xml"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}

func TestCheckCommandWorkflowDirOverride(t *testing.T) {
	dir := t.TempDir()
	wfDir := filepath.Join(dir, "pipelines")
	require.NoError(t, os.MkdirAll(wfDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(wfDir, "build.yml"), []byte(passingBuild), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".pipecheck.yaml"),
		[]byte("workflows:\n  dir: pipelines\n"), 0o644))
	t.Chdir(dir)

	cmd := newCheckCommand()
	var output bytes.Buffer
	cmd.SetOut(&output)
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, output.String(), "✅ Build Pipeline (25/25 points)")
}

func TestRootCommandRunsCheck(t *testing.T) {
	setupWorkspace(t, nil)

	cmd := newRootCommand()
	var output bytes.Buffer
	cmd.SetOut(&output)
	cmd.SetErr(&output)
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, output.String(), "0/75 points (0%)")
}

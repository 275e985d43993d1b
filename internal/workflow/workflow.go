// Package workflow loads GitHub Actions workflow definitions as opaque text.
// Files are never parsed as YAML; the checker's rules operate on raw content.
package workflow

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// DefaultDir is the conventional workflow directory, relative to the repo root.
const DefaultDir = ".github/workflows"

// Text is the raw content of one workflow file. Immutable once loaded.
type Text struct {
	// Content is the file's text. Empty when Found is false.
	Content string
	// Found reports whether the file existed on disk.
	Found bool
}

// Load reads the named workflow file from dir. A missing file is not an
// error: it returns a Text with Found set to false so the caller can score
// the absence. Any other I/O failure is returned to the caller.
func Load(dir, filename string) (*Text, error) {
	data, err := os.ReadFile(filepath.Join(dir, filename))
	if errors.Is(err, os.ErrNotExist) {
		return &Text{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading workflow %s: %w", filename, err)
	}
	return &Text{Content: string(data), Found: true}, nil
}

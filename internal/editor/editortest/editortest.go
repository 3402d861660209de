// Package editortest provides a scripted editor.Runner for tests.
package editortest

import (
	"context"
	"fmt"
	"os"

	kerrors "github.com/PolarWolf314/deary/internal/errors"
)

// Runner replaces the file it is asked to edit with Content.
type Runner struct {
	// Content is written to the file on every Edit.
	Content []byte

	// EditFunc, when set, is called instead of writing Content.
	EditFunc func(path string) error

	// Status makes Edit fail with ErrEditorFailed and this exit status.
	Status int

	// Missing makes Check and Edit fail with ErrToolNotFound.
	Missing bool

	// Seen holds the file content observed before each edit.
	Seen [][]byte

	// Paths holds the path of each edited file.
	Paths []string
}

// Check implements editor.Runner.
func (r *Runner) Check() error {
	if r.Missing {
		return fmt.Errorf("%w: fake editor", kerrors.ErrToolNotFound)
	}
	return nil
}

// Edit implements editor.Runner.
func (r *Runner) Edit(ctx context.Context, path string) error {
	if err := r.Check(); err != nil {
		return err
	}

	before, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("fake editor: %w", err)
	}
	r.Seen = append(r.Seen, before)
	r.Paths = append(r.Paths, path)

	if r.Status != 0 {
		// Simulate a half-written buffer before the crash.
		_ = os.WriteFile(path, []byte("partial"), 0600)
		return &kerrors.ToolFailure{Tool: "fake-editor", Status: r.Status, Kind: kerrors.ErrEditorFailed}
	}

	if r.EditFunc != nil {
		return r.EditFunc(path)
	}
	return os.WriteFile(path, r.Content, 0600)
}

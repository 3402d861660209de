package workflows

import (
	"context"
	"fmt"
	"os"
	"strings"

	kerrors "github.com/PolarWolf314/deary/internal/errors"
	"github.com/PolarWolf314/deary/internal/store"
)

// CleanOptions configures the clean workflow.
type CleanOptions struct {
	// DryRun previews what would be removed without making changes.
	DryRun bool
}

// CleanResult contains the outcome of a clean operation.
type CleanResult struct {
	// Partials are the leftover partial ciphertext files found.
	Partials []string

	// RemovedCount is the number of files removed (0 if dry-run).
	RemovedCount int

	DryRun bool
}

// Clean removes partial ciphertext files left behind when deary was killed
// in the middle of encrypting. They are never tracked, so removing them
// does not touch the history.
func (e *Engine) Clean(ctx context.Context, opts CleanOptions) (*CleanResult, error) {
	st, err := e.open()
	if err != nil {
		return nil, err
	}

	partials, err := findPartials(st)
	if err != nil {
		return nil, err
	}

	result := &CleanResult{Partials: partials, DryRun: opts.DryRun}
	if len(partials) == 0 || opts.DryRun {
		return result, nil
	}

	for _, name := range partials {
		if err := os.Remove(st.EntryPath(name)); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: removing %s: %v", kerrors.ErrIO, name, err)
		}
		result.RemovedCount++
	}

	e.log.Infof("Removed %d partial file(s)", result.RemovedCount)
	return result, nil
}

func findPartials(st *store.Store) ([]string, error) {
	entries, err := os.ReadDir(st.WorkingDirectory())
	if err != nil {
		return nil, fmt.Errorf("%w: listing %s: %v", kerrors.ErrIO, st.WorkingDirectory(), err)
	}

	var partials []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasPrefix(entry.Name(), partialPrefix) {
			partials = append(partials, entry.Name())
		}
	}
	return partials, nil
}

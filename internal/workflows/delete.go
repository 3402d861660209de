package workflows

import (
	"context"
	"fmt"
	"os"

	kerrors "github.com/PolarWolf314/deary/internal/errors"
	"github.com/PolarWolf314/deary/internal/store"
)

// DeleteResult contains the outcome of a delete operation.
type DeleteResult struct {
	Name   string
	Commit string
}

// Delete removes an entry from the working directory and commits the
// removal. Earlier versions stay in the history.
//
// Returns ErrNotFound if the entry does not exist.
func (e *Engine) Delete(ctx context.Context, name string) (*DeleteResult, error) {
	st, err := e.open()
	if err != nil {
		return nil, err
	}

	path, err := requireEntry(st, name)
	if err != nil {
		return nil, err
	}

	previous, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: reading entry %q: %v", kerrors.ErrIO, name, err)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := os.Remove(path); err != nil {
		return nil, fmt.Errorf("%w: removing entry %q: %v", kerrors.ErrIO, name, err)
	}

	hash, err := st.RecordChange(name, store.Delete)
	if err != nil {
		e.restore(st, name, previous)
		return nil, err
	}

	e.log.Infof("Deleted entry %s (%s)", name, hash)
	return &DeleteResult{Name: name, Commit: hash.String()}, nil
}

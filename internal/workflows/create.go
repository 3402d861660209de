package workflows

import (
	"bytes"
	"context"
	"fmt"
	"os"

	kerrors "github.com/PolarWolf314/deary/internal/errors"
	"github.com/PolarWolf314/deary/internal/store"
)

// CreateResult contains the outcome of a create operation.
type CreateResult struct {
	// Name is the generated entry name.
	Name string

	// Commit is the hash of the "Add" commit.
	Commit string
}

// Create opens the editor on an empty staging file, encrypts what the user
// wrote into a new entry named after the current UTC time and commits it.
//
// Returns ErrEmptyEntry if nothing was written, and ErrAlreadyExists if an
// entry with the generated name exists already.
func (e *Engine) Create(ctx context.Context) (*CreateResult, error) {
	st, err := e.open()
	if err != nil {
		return nil, err
	}

	if err := e.checkTools(true); err != nil {
		return nil, err
	}

	recipient, err := st.RecipientID()
	if err != nil {
		return nil, err
	}

	f, err := e.stage(nil)
	if err != nil {
		return nil, err
	}
	defer e.release(f)

	if err := e.editor.Edit(ctx, f.Path()); err != nil {
		return nil, err
	}

	plaintext, err := f.ReadAll()
	if err != nil {
		return nil, err
	}
	empty := len(bytes.TrimSpace(plaintext)) == 0
	zero(plaintext)
	if empty {
		return nil, kerrors.ErrEmptyEntry
	}

	name := e.now().UTC().Format(NameLayout)
	if _, err := os.Lstat(st.EntryPath(name)); err == nil {
		return nil, fmt.Errorf("%w: entry %q", kerrors.ErrAlreadyExists, name)
	}

	if err := e.encryptInto(ctx, st, f.Path(), name, recipient); err != nil {
		return nil, err
	}

	hash, err := st.RecordChange(name, store.Add)
	if err != nil {
		e.restore(st, name, nil)
		return nil, err
	}

	e.log.Infof("Created entry %s (%s)", name, hash)
	return &CreateResult{Name: name, Commit: hash.String()}, nil
}

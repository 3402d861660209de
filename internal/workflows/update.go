package workflows

import (
	"context"
	"fmt"
	"os"

	kerrors "github.com/PolarWolf314/deary/internal/errors"
	"github.com/PolarWolf314/deary/internal/store"
)

// UpdateResult contains the outcome of an update operation.
type UpdateResult struct {
	Name   string
	Commit string
}

// Update decrypts an entry, lets the user edit it, re-encrypts the result
// over the entry and commits it.
//
// Returns ErrNotFound if the entry does not exist. If decryption, the
// editor or encryption fails, the entry and the history are unchanged.
func (e *Engine) Update(ctx context.Context, name string) (*UpdateResult, error) {
	st, err := e.open()
	if err != nil {
		return nil, err
	}

	path, err := requireEntry(st, name)
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

	previous, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: reading entry %q: %v", kerrors.ErrIO, name, err)
	}

	plaintext, err := e.cipher.Decrypt(ctx, path)
	if err != nil {
		return nil, err
	}

	f, err := e.stage(plaintext)
	zero(plaintext)
	if err != nil {
		return nil, err
	}
	defer e.release(f)

	if err := e.editor.Edit(ctx, f.Path()); err != nil {
		return nil, err
	}

	if err := e.encryptInto(ctx, st, f.Path(), name, recipient); err != nil {
		return nil, err
	}

	hash, err := st.RecordChange(name, store.Edit)
	if err != nil {
		e.restore(st, name, previous)
		return nil, err
	}

	e.log.Infof("Updated entry %s (%s)", name, hash)
	return &UpdateResult{Name: name, Commit: hash.String()}, nil
}

package workflows

import (
	"context"
)

// ReadResult contains the outcome of a read operation.
type ReadResult struct {
	Name      string
	Plaintext []byte
}

// Read decrypts an entry into memory. Nothing is written to disk.
//
// Returns ErrNotFound if the entry does not exist.
func (e *Engine) Read(ctx context.Context, name string) (*ReadResult, error) {
	st, err := e.open()
	if err != nil {
		return nil, err
	}

	path, err := requireEntry(st, name)
	if err != nil {
		return nil, err
	}

	if err := e.checkTools(false); err != nil {
		return nil, err
	}

	plaintext, err := e.cipher.Decrypt(ctx, path)
	if err != nil {
		return nil, err
	}

	return &ReadResult{Name: name, Plaintext: plaintext}, nil
}

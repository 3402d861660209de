// Package errors provides typed error values for deary.
//
// Using sentinel errors allows callers to handle specific error conditions
// programmatically with errors.Is() rather than string matching.
//
// # Error Categories
//
//   - Repository errors: ErrAlreadyExists, ErrNotFound, ErrStoreFailure
//   - Tool errors: ErrToolNotFound, ErrToolFailed, ErrEditorFailed
//   - Entry errors: ErrInvalidEntryName, ErrEmptyEntry
//   - Everything else touching the filesystem: ErrIO
//
// External process failures are reported as *ToolFailure, which carries the
// exit status and unwraps to ErrToolFailed or ErrEditorFailed:
//
//	var tf *errors.ToolFailure
//	if stderrors.As(err, &tf) {
//	    fmt.Println("exit status", tf.Status)
//	}
//
// Wrap errors with additional context:
//
//	return fmt.Errorf("reading entry %s: %w", name, errors.ErrNotFound)
package errors

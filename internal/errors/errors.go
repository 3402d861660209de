package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Repository errors indicate problems with the journal repository itself.
var (
	// ErrAlreadyExists indicates the init target is already a repository or an occupied path.
	ErrAlreadyExists = errors.New("already exists")

	// ErrNotFound indicates a repository, entry, or metadata file is missing.
	ErrNotFound = errors.New("not found")

	// ErrStoreFailure indicates a version-control primitive failed (index, tree, commit, HEAD).
	ErrStoreFailure = errors.New("version store failure")
)

// Tool errors indicate failures of the external editor or cipher executables.
var (
	// ErrToolNotFound indicates an external executable could not be resolved.
	ErrToolNotFound = errors.New("executable not found")

	// ErrToolFailed indicates the encryption tool exited with a non-zero status.
	ErrToolFailed = errors.New("external tool failed")

	// ErrEditorFailed indicates the editor exited with a non-zero status.
	ErrEditorFailed = errors.New("editor failed")
)

// Entry errors indicate invalid input for a journal entry.
var (
	// ErrInvalidEntryName indicates a caller-supplied entry name is reserved or unsafe.
	ErrInvalidEntryName = errors.New("invalid entry name")

	// ErrEmptyEntry indicates the user saved an empty entry.
	ErrEmptyEntry = errors.New("entry is empty")
)

var (
	// ErrIO indicates a filesystem read or write failed.
	ErrIO = errors.New("i/o failure")

	// ErrInvalidDateFormat indicates a date filter could not be parsed.
	ErrInvalidDateFormat = errors.New("invalid date format")

	// ErrInvalidConfig indicates the configuration file is malformed.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// ToolFailure reports an external process that exited unsuccessfully.
type ToolFailure struct {
	Tool   string
	Status int
	Stderr string

	// Kind is ErrToolFailed or ErrEditorFailed.
	Kind error
}

func (e *ToolFailure) Error() string {
	msg := fmt.Sprintf("%s exited with status %d", e.Tool, e.Status)
	if s := strings.TrimSpace(e.Stderr); s != "" {
		msg += ": " + s
	}
	return msg
}

func (e *ToolFailure) Unwrap() error {
	if e.Kind == nil {
		return ErrToolFailed
	}
	return e.Kind
}

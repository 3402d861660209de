package workflows

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/PolarWolf314/deary/internal/cipher"
	"github.com/PolarWolf314/deary/internal/editor"
	kerrors "github.com/PolarWolf314/deary/internal/errors"
	logger "github.com/PolarWolf314/deary/internal/logging"
	"github.com/PolarWolf314/deary/internal/staging"
	"github.com/PolarWolf314/deary/internal/store"
	"github.com/google/uuid"
)

// NameLayout is the time layout of generated entry names.
const NameLayout = "20060102-150405"

const partialPrefix = ".partial-"

// Options configures an Engine. Zero values select the real tools.
type Options struct {
	// StagingDir holds plaintext while it is being edited. Defaults to
	// staging.DefaultDir().
	StagingDir string

	// Now names new entries. Defaults to time.Now.
	Now func() time.Time

	Logger logger.Logger

	// Cipher defaults to gpg from PATH.
	Cipher cipher.Tool

	// Editor defaults to vim.
	Editor editor.Runner
}

// Engine runs the journal workflows against one repository.
type Engine struct {
	repoPath string
	staging  *staging.Area
	now      func() time.Time
	log      logger.Logger
	cipher   cipher.Tool
	editor   editor.Runner
}

// New returns an Engine for the repository at repoPath.
func New(repoPath string, opts Options) *Engine {
	e := &Engine{
		repoPath: repoPath,
		staging:  staging.NewArea(opts.StagingDir),
		now:      opts.Now,
		log:      opts.Logger,
		cipher:   opts.Cipher,
		editor:   opts.Editor,
	}
	if e.now == nil {
		e.now = time.Now
	}
	if e.cipher == nil {
		e.cipher = &cipher.GPG{Logger: opts.Logger}
	}
	if e.editor == nil {
		e.editor = &editor.Command{Logger: opts.Logger}
	}
	return e
}

// RepoPath returns the repository the engine operates on.
func (e *Engine) RepoPath() string {
	return e.repoPath
}

// StagingDir returns where plaintext is staged.
func (e *Engine) StagingDir() string {
	return e.staging.Dir
}

func (e *Engine) open() (*store.Store, error) {
	st, err := store.Open(e.repoPath)
	if err != nil {
		return nil, err
	}
	e.log.Debugf("Opened journal at %s", st.WorkingDirectory())
	return st, nil
}

// checkTools locates the cipher and, when needed, the editor before any
// file is touched.
func (e *Engine) checkTools(withEditor bool) error {
	if err := e.cipher.Check(); err != nil {
		return err
	}
	if withEditor {
		if err := e.editor.Check(); err != nil {
			return err
		}
	}
	return nil
}

// ValidateName rejects names that are empty, reserved or not a plain file name.
func ValidateName(name string) error {
	switch {
	case name == "":
		return fmt.Errorf("%w: name is empty", kerrors.ErrInvalidEntryName)
	case store.IsReserved(name):
		return fmt.Errorf("%w: %q is reserved", kerrors.ErrInvalidEntryName, name)
	case strings.ContainsRune(name, '/') || strings.ContainsRune(name, os.PathSeparator):
		return fmt.Errorf("%w: %q contains a path separator", kerrors.ErrInvalidEntryName, name)
	}
	return nil
}

// requireEntry returns the path of an existing entry.
func requireEntry(st *store.Store, name string) (string, error) {
	if err := ValidateName(name); err != nil {
		return "", err
	}

	path := st.EntryPath(name)
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return "", fmt.Errorf("%w: entry %q", kerrors.ErrNotFound, name)
	}
	if err != nil {
		return "", fmt.Errorf("%w: checking entry %q: %v", kerrors.ErrIO, name, err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("%w: %q is not an entry", kerrors.ErrInvalidEntryName, name)
	}
	return path, nil
}

// stage allocates a staging file and warns when plaintext would land on disk.
func (e *Engine) stage(content []byte) (*staging.File, error) {
	if !staging.InMemory(e.staging.Dir) {
		e.log.Warnf("Staging directory %s is not memory-backed; plaintext may reach disk", e.staging.Dir)
	}

	f, err := e.staging.Allocate(content)
	if err != nil {
		return nil, err
	}
	e.log.Debugf("Staging plaintext in %s", f.Path())
	return f, nil
}

func (e *Engine) release(f *staging.File) {
	if err := f.Release(); err != nil {
		e.log.Warnf("Failed to clean up staging file %s: %v", f.Path(), err)
	}
}

// encryptInto encrypts plainPath for recipient into a reserved partial file
// and renames it over the entry, so the entry is never half written.
func (e *Engine) encryptInto(ctx context.Context, st *store.Store, plainPath, name, recipient string) error {
	partial := st.EntryPath(partialPrefix + uuid.NewString())

	e.log.Debugf("Encrypting %s for %s", name, recipient)
	if err := e.cipher.Encrypt(ctx, plainPath, partial, recipient); err != nil {
		_ = os.Remove(partial)
		return err
	}

	if err := os.Rename(partial, st.EntryPath(name)); err != nil {
		_ = os.Remove(partial)
		return fmt.Errorf("%w: moving ciphertext into place: %v", kerrors.ErrIO, err)
	}
	return nil
}

// restore puts a previous working-directory state back after a failed commit.
// A nil previous means the entry did not exist.
func (e *Engine) restore(st *store.Store, name string, previous []byte) {
	path := st.EntryPath(name)

	var err error
	if previous == nil {
		err = os.Remove(path)
		if os.IsNotExist(err) {
			err = nil
		}
	} else {
		err = os.WriteFile(path, previous, 0600)
	}

	if err != nil {
		e.log.Errorf("Could not restore %s after a failed commit: %v", path, err)
		return
	}
	e.log.Debugf("Restored %s to its last committed state", name)
}

func zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

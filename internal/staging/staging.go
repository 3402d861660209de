package staging

import (
	"fmt"
	"os"
	"path/filepath"

	kerrors "github.com/PolarWolf314/deary/internal/errors"
	"github.com/google/uuid"
)

// SharedMemoryDir is preferred for plaintext when it exists.
const SharedMemoryDir = "/dev/shm"

const filePrefix = "deary-"

// DefaultDir returns /dev/shm when available and the system temp dir otherwise.
func DefaultDir() string {
	if info, err := os.Stat(SharedMemoryDir); err == nil && info.IsDir() {
		return SharedMemoryDir
	}
	return os.TempDir()
}

// Area allocates scoped plaintext files inside Dir.
type Area struct {
	Dir string
}

// NewArea returns an Area rooted at dir, or at DefaultDir when dir is empty.
func NewArea(dir string) *Area {
	if dir == "" {
		dir = DefaultDir()
	}
	return &Area{Dir: dir}
}

// File is a plaintext file owned by a single operation.
type File struct {
	path     string
	released bool
}

// Allocate creates a new file seeded with content. The caller must call Release.
func (a *Area) Allocate(content []byte) (*File, error) {
	path := filepath.Join(a.Dir, filePrefix+uuid.NewString())

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_EXCL, 0600)
	if err != nil {
		return nil, fmt.Errorf("%w: creating staging file in %s: %v", kerrors.ErrIO, a.Dir, err)
	}

	if len(content) > 0 {
		if _, err := f.Write(content); err != nil {
			_ = f.Close()
			_ = os.Remove(path)
			return nil, fmt.Errorf("%w: writing staging file: %v", kerrors.ErrIO, err)
		}
	}

	if err := f.Close(); err != nil {
		_ = os.Remove(path)
		return nil, fmt.Errorf("%w: closing staging file: %v", kerrors.ErrIO, err)
	}

	return &File{path: path}, nil
}

// Path returns the absolute path of the staging file.
func (f *File) Path() string {
	return f.path
}

// ReadAll returns the current content of the staging file.
func (f *File) ReadAll() ([]byte, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return nil, fmt.Errorf("%w: reading staging file: %v", kerrors.ErrIO, err)
	}
	return data, nil
}

// Release wipes and removes the file. It is safe to call more than once and
// tolerates the file having been removed by someone else (an editor that
// replaces files on save, for instance).
func (f *File) Release() error {
	if f.released {
		return nil
	}
	f.released = true

	if err := wipe(f.path); err != nil && !os.IsNotExist(err) {
		// Still try to unlink it.
		_ = os.Remove(f.path)
		return fmt.Errorf("%w: wiping staging file: %v", kerrors.ErrIO, err)
	}

	if err := os.Remove(f.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("%w: removing staging file: %v", kerrors.ErrIO, err)
	}
	return nil
}

// wipe overwrites the file with zeros and syncs it.
func wipe(path string) error {
	f, err := os.OpenFile(path, os.O_WRONLY, 0)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	info, err := f.Stat()
	if err != nil {
		return err
	}

	zeros := make([]byte, 4096)
	remaining := info.Size()
	for remaining > 0 {
		n := int64(len(zeros))
		if remaining < n {
			n = remaining
		}
		if _, err := f.Write(zeros[:n]); err != nil {
			return err
		}
		remaining -= n
	}

	return f.Sync()
}

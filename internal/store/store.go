package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	kerrors "github.com/PolarWolf314/deary/internal/errors"
	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/format/index"
	"github.com/go-git/go-git/v5/plumbing/object"
	"gopkg.in/ini.v1"
)

// RecipientFile holds the recipient identifier at the repository root.
const RecipientFile = ".gpg_id"

// DefaultGitConfig is applied by Init when the caller passes no identity.
// The journal has a single author, so the identity is only a placeholder.
var DefaultGitConfig = map[string]string{
	"user.name":  "noname",
	"user.email": "noemail",
}

// Store is an open journal repository.
type Store struct {
	repo *git.Repository
	root string
}

// Init creates a repository at path, writes recipient into RecipientFile and
// records it in the initial commit.
//
// Returns ErrAlreadyExists if path is a file, a repository, or a non-empty directory.
func Init(path, recipient string, gitConfig map[string]string) (*Store, error) {
	root, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("%w: resolving %s: %v", kerrors.ErrIO, path, err)
	}

	info, err := os.Stat(root)
	switch {
	case err == nil && !info.IsDir():
		return nil, fmt.Errorf("%w: %s is not a directory", kerrors.ErrAlreadyExists, root)
	case err == nil:
		entries, err := os.ReadDir(root)
		if err != nil {
			return nil, fmt.Errorf("%w: reading %s: %v", kerrors.ErrIO, root, err)
		}
		if len(entries) > 0 {
			return nil, fmt.Errorf("%w: repository %s", kerrors.ErrAlreadyExists, root)
		}
	case !os.IsNotExist(err):
		return nil, fmt.Errorf("%w: checking %s: %v", kerrors.ErrIO, root, err)
	}

	if err := os.MkdirAll(root, 0700); err != nil {
		return nil, fmt.Errorf("%w: creating %s: %v", kerrors.ErrIO, root, err)
	}

	repo, err := git.PlainInit(root, false)
	if errors.Is(err, git.ErrRepositoryAlreadyExists) {
		return nil, fmt.Errorf("%w: repository %s", kerrors.ErrAlreadyExists, root)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: initializing repository: %v", kerrors.ErrStoreFailure, err)
	}

	s := &Store{repo: repo, root: root}

	if len(gitConfig) == 0 {
		gitConfig = DefaultGitConfig
	}
	if err := s.setConfig(gitConfig); err != nil {
		return nil, err
	}

	if err := os.WriteFile(s.EntryPath(RecipientFile), []byte(recipient), 0600); err != nil {
		return nil, fmt.Errorf("%w: writing %s: %v", kerrors.ErrIO, RecipientFile, err)
	}

	if _, err := s.commitChange(RecipientFile, Add, Genesis()); err != nil {
		return nil, err
	}

	return s, nil
}

// Open opens the repository at path.
//
// Returns ErrNotFound if path is not a repository and ErrStoreFailure if it cannot be read.
func Open(path string) (*Store, error) {
	root, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("%w: resolving %s: %v", kerrors.ErrIO, path, err)
	}

	repo, err := git.PlainOpen(root)
	if errors.Is(err, git.ErrRepositoryNotExists) {
		return nil, fmt.Errorf("%w: no journal repository at %s", kerrors.ErrNotFound, root)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: opening %s: %v", kerrors.ErrStoreFailure, root, err)
	}

	if _, err := repo.Worktree(); err != nil {
		return nil, fmt.Errorf("%w: %s has no working directory: %v", kerrors.ErrStoreFailure, root, err)
	}

	return &Store{repo: repo, root: root}, nil
}

// WorkingDirectory returns the absolute path entries live in.
func (s *Store) WorkingDirectory() string {
	return s.root
}

// EntryPath returns the absolute path of name inside the working directory.
func (s *Store) EntryPath(name string) string {
	return filepath.Join(s.root, name)
}

// RecipientID returns the trimmed content of RecipientFile.
func (s *Store) RecipientID() (string, error) {
	data, err := os.ReadFile(s.EntryPath(RecipientFile))
	if os.IsNotExist(err) {
		return "", fmt.Errorf("%w: %s is missing from %s", kerrors.ErrNotFound, RecipientFile, s.root)
	}
	if err != nil {
		return "", fmt.Errorf("%w: reading %s: %v", kerrors.ErrIO, RecipientFile, err)
	}
	return strings.TrimSpace(string(data)), nil
}

// ListTrackedNames returns the top-level names in the working directory,
// skipping reserved names. No particular order is guaranteed.
func (s *Store) ListTrackedNames() ([]string, error) {
	entries, err := os.ReadDir(s.root)
	if err != nil {
		return nil, fmt.Errorf("%w: listing %s: %v", kerrors.ErrIO, s.root, err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if IsReserved(e.Name()) {
			continue
		}
		names = append(names, e.Name())
	}
	return names, nil
}

// IsReserved reports whether name is metadata rather than an entry.
func IsReserved(name string) bool {
	return strings.HasPrefix(name, ".")
}

// Head resolves the tip of the history.
func (s *Store) Head() (Parent, error) {
	ref, err := s.repo.Head()
	if errors.Is(err, plumbing.ErrReferenceNotFound) {
		return Genesis(), nil
	}
	if err != nil {
		return Parent{}, fmt.Errorf("%w: resolving HEAD: %v", kerrors.ErrStoreFailure, err)
	}
	return Child(ref.Hash()), nil
}

// RecordChange stages name and commits it as a child of HEAD with the
// message "<kind> <name>". The working-directory file must already reflect
// the change (written for Add and Edit, removed for Delete).
func (s *Store) RecordChange(name string, kind ChangeKind) (plumbing.Hash, error) {
	parent, err := s.Head()
	if err != nil {
		return plumbing.ZeroHash, err
	}
	if parent.IsGenesis() {
		return plumbing.ZeroHash, fmt.Errorf("%w: HEAD is missing, repository was not initialized", kerrors.ErrStoreFailure)
	}
	return s.commitChange(name, kind, parent)
}

func (s *Store) commitChange(name string, kind ChangeKind, parent Parent) (plumbing.Hash, error) {
	wt, err := s.repo.Worktree()
	if err != nil {
		return plumbing.ZeroHash, fmt.Errorf("%w: opening worktree: %v", kerrors.ErrStoreFailure, err)
	}

	sig, err := s.signature()
	if err != nil {
		return plumbing.ZeroHash, err
	}

	previous, err := s.repo.Storer.Index()
	if err != nil {
		return plumbing.ZeroHash, fmt.Errorf("%w: reading index: %v", kerrors.ErrStoreFailure, err)
	}

	if err := stage(wt, name, kind); err != nil {
		s.restoreIndex(previous)
		return plumbing.ZeroHash, fmt.Errorf("%w: staging %s: %v", kerrors.ErrStoreFailure, name, err)
	}

	hash, err := wt.Commit(kind.Message(name), &git.CommitOptions{
		Author:    sig,
		Committer: sig,
		Parents:   parent.Hashes(),
	})
	if err != nil {
		s.restoreIndex(previous)
		return plumbing.ZeroHash, fmt.Errorf("%w: committing %q: %v", kerrors.ErrStoreFailure, kind.Message(name), err)
	}

	return hash, nil
}

func stage(wt *git.Worktree, name string, kind ChangeKind) error {
	switch kind {
	case Add, Edit:
		_, err := wt.Add(name)
		return err
	case Delete:
		_, err := wt.Remove(name)
		return err
	default:
		return fmt.Errorf("unknown change kind %d", kind)
	}
}

func (s *Store) restoreIndex(idx *index.Index) {
	_ = s.repo.Storer.SetIndex(idx)
}

func (s *Store) signature() (*object.Signature, error) {
	cfg, err := s.repo.Config()
	if err != nil {
		return nil, fmt.Errorf("%w: reading repository config: %v", kerrors.ErrStoreFailure, err)
	}
	if cfg.User.Name == "" && cfg.User.Email == "" {
		return nil, fmt.Errorf("%w: no commit identity (user.name, user.email) in %s",
			kerrors.ErrStoreFailure, filepath.Join(s.root, ".git", "config"))
	}
	return &object.Signature{
		Name:  cfg.User.Name,
		Email: cfg.User.Email,
		When:  time.Now(),
	}, nil
}

// setConfig writes "section.key" values into .git/config.
func (s *Store) setConfig(values map[string]string) error {
	cfgPath := filepath.Join(s.root, ".git", "config")

	cfg, err := ini.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("%w: loading %s: %v", kerrors.ErrStoreFailure, cfgPath, err)
	}

	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		parts := strings.SplitN(key, ".", 2)
		if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
			return fmt.Errorf("%w: invalid git config key %q", kerrors.ErrStoreFailure, key)
		}
		cfg.Section(parts[0]).Key(parts[1]).SetValue(values[key])
	}

	if err := cfg.SaveTo(cfgPath); err != nil {
		return fmt.Errorf("%w: saving %s: %v", kerrors.ErrStoreFailure, cfgPath, err)
	}
	return nil
}

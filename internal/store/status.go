package store

import (
	"fmt"
	"sort"

	kerrors "github.com/PolarWolf314/deary/internal/errors"
	git "github.com/go-git/go-git/v5"
)

// Pending returns the paths whose working-directory state differs from the
// last commit, untracked files included, sorted.
func (s *Store) Pending() ([]string, error) {
	wt, err := s.repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("%w: opening worktree: %v", kerrors.ErrStoreFailure, err)
	}

	status, err := wt.Status()
	if err != nil {
		return nil, fmt.Errorf("%w: reading status: %v", kerrors.ErrStoreFailure, err)
	}

	var paths []string
	for path, st := range status {
		if st.Staging == git.Unmodified && st.Worktree == git.Unmodified {
			continue
		}
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths, nil
}

package store

import (
	"errors"
	"fmt"
	"time"

	kerrors "github.com/PolarWolf314/deary/internal/errors"
	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// Commit is a read-only view of one commit.
type Commit struct {
	Hash        string
	Parents     []string
	AuthorName  string
	AuthorEmail string
	When        time.Time
	Message     string
}

// History returns every commit reachable from HEAD, newest first.
func (s *Store) History() ([]Commit, error) {
	ref, err := s.repo.Head()
	if errors.Is(err, plumbing.ErrReferenceNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: resolving HEAD: %v", kerrors.ErrStoreFailure, err)
	}

	iter, err := s.repo.Log(&git.LogOptions{From: ref.Hash()})
	if err != nil {
		return nil, fmt.Errorf("%w: reading log: %v", kerrors.ErrStoreFailure, err)
	}
	defer iter.Close()

	var commits []Commit
	err = iter.ForEach(func(c *object.Commit) error {
		parents := make([]string, 0, len(c.ParentHashes))
		for _, p := range c.ParentHashes {
			parents = append(parents, p.String())
		}
		commits = append(commits, Commit{
			Hash:        c.Hash.String(),
			Parents:     parents,
			AuthorName:  c.Author.Name,
			AuthorEmail: c.Author.Email,
			When:        c.Author.When,
			Message:     c.Message,
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: walking history: %v", kerrors.ErrStoreFailure, err)
	}

	return commits, nil
}

// CommitCount returns the number of commits reachable from HEAD.
func (s *Store) CommitCount() (int, error) {
	commits, err := s.History()
	if err != nil {
		return 0, err
	}
	return len(commits), nil
}

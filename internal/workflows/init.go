package workflows

import (
	"context"
	"fmt"
	"strings"

	kerrors "github.com/PolarWolf314/deary/internal/errors"
	"github.com/PolarWolf314/deary/internal/store"
)

// InitOptions configures the init workflow.
type InitOptions struct {
	// Recipient is the gpg key id or user id entries are encrypted to.
	Recipient string

	// GitConfig is written to the repository's .git/config as
	// "section.key" pairs. Defaults to store.DefaultGitConfig.
	GitConfig map[string]string
}

// InitResult contains the outcome of an init operation.
type InitResult struct {
	Path      string
	Recipient string
	Commit    string
}

// Init creates the journal repository.
//
// Returns ErrAlreadyExists if the path is already a repository, a file or a
// non-empty directory. The existing repository is left untouched.
func (e *Engine) Init(ctx context.Context, opts InitOptions) (*InitResult, error) {
	recipient := strings.TrimSpace(opts.Recipient)
	if recipient == "" {
		return nil, fmt.Errorf("%w: recipient key id is empty", kerrors.ErrInvalidConfig)
	}

	e.log.Infof("Initializing journal at %s", e.repoPath)

	st, err := store.Init(e.repoPath, recipient, opts.GitConfig)
	if err != nil {
		return nil, err
	}

	head, err := st.Head()
	if err != nil {
		return nil, err
	}

	e.log.Infof("Recorded recipient %s", recipient)

	return &InitResult{
		Path:      st.WorkingDirectory(),
		Recipient: recipient,
		Commit:    head.Hash().String(),
	}, nil
}

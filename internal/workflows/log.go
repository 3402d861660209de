package workflows

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/PolarWolf314/deary/internal/audit"
	kerrors "github.com/PolarWolf314/deary/internal/errors"
)

const dateLayout = "2006-01-02"

// LogOptions configures the log workflow.
type LogOptions struct {
	// Limit is the maximum number of entries to return. 0 means no limit.
	Limit int

	// Reverse orders entries from most recent to oldest when true.
	Reverse bool

	// Operations filters entries by operation (add, edit, delete, other).
	Operations []string

	// Entry is a doublestar glob matched against the entry name.
	Entry string

	// Since filters entries on or after this date (YYYY-MM-DD).
	Since string

	// Until filters entries on or before this date (YYYY-MM-DD).
	Until string
}

// LogResult contains the outcome of a log operation.
type LogResult struct {
	// Entries are the filtered history entries.
	Entries []audit.Entry

	// TotalEntriesBeforeFilter is the count of entries before filtering.
	TotalEntriesBeforeFilter int
}

// Log reads and filters the journal history.
//
// Returns ErrInvalidDateFormat if Since or Until is not YYYY-MM-DD.
func (e *Engine) Log(ctx context.Context, opts LogOptions) (*LogResult, error) {
	criteria := audit.Criteria{Name: opts.Entry}

	for _, op := range opts.Operations {
		if op = strings.TrimSpace(op); op != "" {
			criteria.Operations = append(criteria.Operations, op)
		}
	}

	if opts.Since != "" {
		since, err := time.Parse(dateLayout, opts.Since)
		if err != nil {
			return nil, fmt.Errorf("%w: --since date format invalid, use YYYY-MM-DD", kerrors.ErrInvalidDateFormat)
		}
		criteria.Since = since
	}

	if opts.Until != "" {
		until, err := time.Parse(dateLayout, opts.Until)
		if err != nil {
			return nil, fmt.Errorf("%w: --until date format invalid, use YYYY-MM-DD", kerrors.ErrInvalidDateFormat)
		}
		// Include the entire day.
		criteria.Until = until.Add(24*time.Hour - time.Nanosecond)
	}

	st, err := e.open()
	if err != nil {
		return nil, err
	}

	commits, err := st.History()
	if err != nil {
		return nil, err
	}

	entries := audit.FromCommits(commits)
	result := &LogResult{TotalEntriesBeforeFilter: len(entries)}

	filtered := audit.Filter(entries, criteria)

	if opts.Reverse {
		for i, j := 0, len(filtered)-1; i < j; i, j = i+1, j-1 {
			filtered[i], filtered[j] = filtered[j], filtered[i]
		}
	}

	if opts.Limit > 0 && len(filtered) > opts.Limit {
		if opts.Reverse {
			// When reversed, limit takes first N (most recent).
			filtered = filtered[:opts.Limit]
		} else {
			// When not reversed, limit takes last N (most recent).
			filtered = filtered[len(filtered)-opts.Limit:]
		}
	}

	result.Entries = filtered
	return result, nil
}

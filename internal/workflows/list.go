package workflows

import (
	"context"
	"fmt"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// SortOrder controls the order of List results.
type SortOrder int

const (
	// SortNone keeps directory enumeration order.
	SortNone SortOrder = iota
	SortAscending
	SortDescending
)

// ParseSortOrder maps "none", "asc" and "desc" to a SortOrder.
func ParseSortOrder(s string) (SortOrder, error) {
	switch s {
	case "", "none":
		return SortNone, nil
	case "asc", "ascending", "oldest":
		return SortAscending, nil
	case "desc", "descending", "newest":
		return SortDescending, nil
	default:
		return SortNone, fmt.Errorf("unknown sort order %q (use none, asc or desc)", s)
	}
}

// ListOptions configures the list workflow.
type ListOptions struct {
	// Pattern is a doublestar glob entry names must match.
	Pattern string

	Sort SortOrder
}

// ListResult contains the outcome of a list operation.
type ListResult struct {
	Names []string

	// Total is the number of entries before Pattern was applied.
	Total int
}

// List returns the names of the entries in the journal. Reserved names
// (starting with ".") are never included.
func (e *Engine) List(ctx context.Context, opts ListOptions) (*ListResult, error) {
	if opts.Pattern != "" && !doublestar.ValidatePattern(opts.Pattern) {
		return nil, fmt.Errorf("invalid pattern %q: %w", opts.Pattern, doublestar.ErrBadPattern)
	}

	st, err := e.open()
	if err != nil {
		return nil, err
	}

	names, err := st.ListTrackedNames()
	if err != nil {
		return nil, err
	}

	result := &ListResult{Total: len(names)}

	matched := names
	if opts.Pattern != "" {
		matched = make([]string, 0, len(names))
		for _, name := range names {
			if ok, _ := doublestar.Match(opts.Pattern, name); ok {
				matched = append(matched, name)
			}
		}
	}

	switch opts.Sort {
	case SortAscending:
		sort.Strings(matched)
	case SortDescending:
		sort.Sort(sort.Reverse(sort.StringSlice(matched)))
	}

	result.Names = matched
	return result, nil
}

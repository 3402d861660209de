package audit

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/PolarWolf314/deary/internal/store"
	"github.com/bmatcuk/doublestar/v4"
)

// TimestampFormat is RFC3339 with microseconds.
const TimestampFormat = "2006-01-02T15:04:05.000000Z"

// Operations recognised in commit messages.
const (
	OpAdd    = "add"
	OpEdit   = "edit"
	OpDelete = "delete"
	OpOther  = "other"
)

// Entry represents a single change in the journal history.
type Entry struct {
	Timestamp string `json:"ts"`             // RFC3339 with microseconds.
	Hash      string `json:"hash"`           // Commit hash.
	User      string `json:"user"`           // Commit author email.
	Operation string `json:"op"`             // add, edit, delete or other.
	Name      string `json:"name,omitempty"` // Entry name.
	Message   string `json:"message"`        // Raw commit message.
}

// Time parses the entry timestamp. It returns the zero time if malformed.
func (e Entry) Time() time.Time {
	t, err := time.Parse(TimestampFormat, e.Timestamp)
	if err != nil {
		return time.Time{}
	}
	return t
}

// ShortHash returns the first seven characters of the commit hash.
func (e Entry) ShortHash() string {
	if len(e.Hash) > 7 {
		return e.Hash[:7]
	}
	return e.Hash
}

// ParseMessage splits a commit message into operation and entry name.
func ParseMessage(message string) (op, name string) {
	message = strings.TrimSpace(message)
	if i := strings.IndexByte(message, '\n'); i >= 0 {
		message = message[:i]
	}

	kind, rest, ok := strings.Cut(message, " ")
	if !ok || rest == "" {
		return OpOther, ""
	}

	switch kind {
	case store.Add.String():
		return OpAdd, rest
	case store.Edit.String():
		return OpEdit, rest
	case store.Delete.String():
		return OpDelete, rest
	default:
		return OpOther, ""
	}
}

// FromCommits converts newest-first commits into oldest-first entries.
func FromCommits(commits []store.Commit) []Entry {
	entries := make([]Entry, 0, len(commits))
	for i := len(commits) - 1; i >= 0; i-- {
		c := commits[i]
		op, name := ParseMessage(c.Message)
		entries = append(entries, Entry{
			Timestamp: c.When.UTC().Format(TimestampFormat),
			Hash:      c.Hash,
			User:      c.AuthorEmail,
			Operation: op,
			Name:      name,
			Message:   strings.TrimSpace(c.Message),
		})
	}
	return entries
}

// Criteria narrows a list of entries. Zero values match everything.
type Criteria struct {
	Operations []string
	// Name is a doublestar glob matched against the entry name.
	Name  string
	Since time.Time
	Until time.Time
}

// Filter returns the entries matching c, preserving order.
func Filter(entries []Entry, c Criteria) []Entry {
	var result []Entry
	for _, e := range entries {
		if len(c.Operations) > 0 && !containsFold(c.Operations, e.Operation) {
			continue
		}
		if c.Name != "" {
			if ok, err := doublestar.Match(c.Name, e.Name); err != nil || !ok {
				continue
			}
		}
		ts := e.Time()
		if !c.Since.IsZero() && ts.Before(c.Since) {
			continue
		}
		if !c.Until.IsZero() && ts.After(c.Until) {
			continue
		}
		result = append(result, e)
	}
	return result
}

func containsFold(values []string, s string) bool {
	for _, v := range values {
		if strings.EqualFold(v, s) {
			return true
		}
	}
	return false
}

// MarshalEntries renders entries as an indented JSON array.
func MarshalEntries(entries []Entry) ([]byte, error) {
	if entries == nil {
		entries = []Entry{}
	}
	return json.MarshalIndent(entries, "", "  ")
}

// Package audit turns the journal's git history into an audit trail.
//
// Every create, edit and delete is a commit whose message names the
// operation and the entry ("Add 20240101-093000"). This package decodes
// those commits into Entry values and filters them for the log command.
//
// # Entry Format
//
// Each entry contains:
//   - Timestamp (RFC3339 with microseconds, UTC)
//   - Commit hash and author
//   - Operation: add, edit, delete, or other for commits not written by deary
//   - Entry name
//
// # Usage
//
//	commits, err := store.History()
//	entries := audit.FromCommits(commits)
//	entries = audit.Filter(entries, audit.Criteria{Operations: []string{"delete"}})
//
// Entries are returned oldest first, matching the order of the original
// JSON Lines log this package replaced.
package audit

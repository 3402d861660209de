// Package store keeps the journal's working directory under git.
//
// The store uses git in a deliberately narrow way: one branch, one linear
// history, one commit per logical change. Every commit stages exactly one
// path and is written as a child of the current HEAD; only the commit made
// by Init, which records the recipient file, has no parent.
//
// # Layout
//
//	<root>/
//	  .git/          repository metadata
//	  .gpg_id        recipient of every entry (reserved)
//	  20240101-093000
//	  20240102-211544
//
// Names starting with a dot are reserved and never reported as entries.
//
// # Failure Handling
//
// RecordChange snapshots the index before staging. If staging or the commit
// fails, the snapshot is written back so a later call never sees a
// half-staged change. Errors from git are wrapped in errors.ErrStoreFailure
// and are not retried.
package store

// Package workflows is the entry lifecycle engine behind the deary commands.
//
// An Engine coordinates the staging area, the editor, the cipher tool and
// the versioned store to implement each command:
//
//   - Init: creates the journal repository and records the recipient
//   - Create: edit a new entry, encrypt it, commit "Add <name>"
//   - Read: decrypt an entry into memory
//   - Update: decrypt, edit, re-encrypt, commit "Edit <name>"
//   - Delete: remove an entry, commit "Delete <name>"
//   - List: entry names, optionally filtered and sorted
//   - Log: the change history
//
// The cmd/ package stays a thin layer: it parses flags, builds an Engine
// from the resolved configuration, calls one method and formats the result.
//
// # Failure Model
//
// Every mutating workflow changes the working directory only after
// encryption has fully succeeded, and commits only after the working
// directory is in its final state. If the commit fails, the previous
// working-directory file is put back so the repository stays at its last
// commit. Plaintext only ever exists in memory and in a staging file that
// is wiped on every exit path.
//
// # Error Handling
//
// Workflows return typed errors from the internal/errors package:
//
//	_, err := engine.Update(ctx, name)
//	if errors.Is(err, kerrors.ErrNotFound) {
//	    // No such entry
//	}
//
// # Context Usage
//
// All workflow methods accept a context.Context as their first parameter.
// It is passed down to the editor and gpg processes.
package workflows

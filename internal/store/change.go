package store

import "github.com/go-git/go-git/v5/plumbing"

// ChangeKind tags a commit with the logical change it records.
type ChangeKind int

const (
	Add ChangeKind = iota
	Edit
	Delete
)

func (k ChangeKind) String() string {
	switch k {
	case Add:
		return "Add"
	case Edit:
		return "Edit"
	case Delete:
		return "Delete"
	default:
		return "Unknown"
	}
}

// Message returns the commit message recording this change to name.
func (k ChangeKind) Message(name string) string {
	return k.String() + " " + name
}

// Parent is either Genesis (no parent) or Child of an existing commit.
type Parent struct {
	hash    plumbing.Hash
	genesis bool
}

// Genesis is the parent of the first commit in a repository.
func Genesis() Parent {
	return Parent{genesis: true}
}

// Child makes a commit a descendant of hash.
func Child(hash plumbing.Hash) Parent {
	return Parent{hash: hash}
}

func (p Parent) IsGenesis() bool {
	return p.genesis
}

// Hash returns the parent commit, or the zero hash for Genesis.
func (p Parent) Hash() plumbing.Hash {
	return p.hash
}

// Hashes returns the parent list for a commit object.
func (p Parent) Hashes() []plumbing.Hash {
	if p.genesis {
		return nil
	}
	return []plumbing.Hash{p.hash}
}

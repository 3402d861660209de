package store

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	kerrors "github.com/PolarWolf314/deary/internal/errors"
)

func initStore(t *testing.T) *Store {
	t.Helper()
	s, err := Init(filepath.Join(t.TempDir(), "journal"), "test@example.com", nil)
	if err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	return s
}

func writeEntry(t *testing.T, s *Store, name, content string) {
	t.Helper()
	if err := os.WriteFile(s.EntryPath(name), []byte(content), 0600); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
}

func commitCount(t *testing.T, s *Store) int {
	t.Helper()
	n, err := s.CommitCount()
	if err != nil {
		t.Fatalf("CommitCount failed: %v", err)
	}
	return n
}

func TestInitCreatesSingleCommit(t *testing.T) {
	s := initStore(t)

	if n := commitCount(t, s); n != 1 {
		t.Fatalf("expected 1 commit, got %d", n)
	}

	history, err := s.History()
	if err != nil {
		t.Fatalf("History failed: %v", err)
	}
	first := history[0]
	if len(first.Parents) != 0 {
		t.Errorf("initial commit should have no parent, got %v", first.Parents)
	}
	if first.Message != "Add .gpg_id" {
		t.Errorf("message = %q, expected %q", first.Message, "Add .gpg_id")
	}
	if first.AuthorName != "noname" || first.AuthorEmail != "noemail" {
		t.Errorf("author = %s <%s>, expected noname <noemail>", first.AuthorName, first.AuthorEmail)
	}

	entries, err := os.ReadDir(s.WorkingDirectory())
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}
	var visible []string
	for _, e := range entries {
		if e.Name() != ".git" {
			visible = append(visible, e.Name())
		}
	}
	if len(visible) != 1 || visible[0] != ".gpg_id" {
		t.Errorf("working directory = %v, expected only .gpg_id", visible)
	}

	data, err := os.ReadFile(s.EntryPath(".gpg_id"))
	if err != nil {
		t.Fatalf("Failed to read .gpg_id: %v", err)
	}
	if string(data) != "test@example.com" {
		t.Errorf(".gpg_id = %q, expected %q", data, "test@example.com")
	}
}

func TestInitAppliesGitConfig(t *testing.T) {
	s, err := Init(filepath.Join(t.TempDir(), "journal"), "key", map[string]string{
		"user.name":  "Diarist",
		"user.email": "diarist@example.com",
	})
	if err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	history, err := s.History()
	if err != nil {
		t.Fatalf("History failed: %v", err)
	}
	if history[0].AuthorName != "Diarist" || history[0].AuthorEmail != "diarist@example.com" {
		t.Errorf("author = %s <%s>", history[0].AuthorName, history[0].AuthorEmail)
	}
}

func TestInitRejectsInvalidConfigKey(t *testing.T) {
	_, err := Init(filepath.Join(t.TempDir(), "journal"), "key", map[string]string{"username": "x"})
	if !errors.Is(err, kerrors.ErrStoreFailure) {
		t.Errorf("expected ErrStoreFailure, got %v", err)
	}
}

func TestInitOverExistingRepository(t *testing.T) {
	s := initStore(t)

	_, err := Init(s.WorkingDirectory(), "other@example.com", nil)
	if !errors.Is(err, kerrors.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}

	reopened, err := Open(s.WorkingDirectory())
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if n := commitCount(t, reopened); n != 1 {
		t.Errorf("commit count changed to %d", n)
	}
	if id, _ := reopened.RecipientID(); id != "test@example.com" {
		t.Errorf("recipient changed to %q", id)
	}
}

func TestInitTargets(t *testing.T) {
	t.Run("EmptyDirectory", func(t *testing.T) {
		dir := t.TempDir()
		if _, err := Init(dir, "key", nil); err != nil {
			t.Errorf("Init into empty directory failed: %v", err)
		}
	})

	t.Run("NonEmptyDirectory", func(t *testing.T) {
		dir := t.TempDir()
		if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0600); err != nil {
			t.Fatalf("Failed to write file: %v", err)
		}
		if _, err := Init(dir, "key", nil); !errors.Is(err, kerrors.ErrAlreadyExists) {
			t.Errorf("expected ErrAlreadyExists, got %v", err)
		}
	})

	t.Run("RegularFile", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "file")
		if err := os.WriteFile(path, []byte("x"), 0600); err != nil {
			t.Fatalf("Failed to write file: %v", err)
		}
		if _, err := Init(path, "key", nil); !errors.Is(err, kerrors.ErrAlreadyExists) {
			t.Errorf("expected ErrAlreadyExists, got %v", err)
		}
	})
}

func TestOpenMissingRepository(t *testing.T) {
	tests := []struct {
		name string
		path func(t *testing.T) string
	}{
		{"MissingPath", func(t *testing.T) string { return filepath.Join(t.TempDir(), "nope") }},
		{"PlainDirectory", func(t *testing.T) string { return t.TempDir() }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Open(tc.path(t))
			if !errors.Is(err, kerrors.ErrNotFound) {
				t.Errorf("expected ErrNotFound, got %v", err)
			}
		})
	}
}

func TestRecordChangeBuildsLinearHistory(t *testing.T) {
	s := initStore(t)

	steps := []struct {
		kind    ChangeKind
		name    string
		prepare func()
		message string
	}{
		{Add, "20240101-090000", func() { writeEntry(t, s, "20240101-090000", "one") }, "Add 20240101-090000"},
		{Edit, "20240101-090000", func() { writeEntry(t, s, "20240101-090000", "one, revised") }, "Edit 20240101-090000"},
		{Add, "named", func() { writeEntry(t, s, "named", "two") }, "Add named"},
		{Delete, "20240101-090000", func() { _ = os.Remove(s.EntryPath("20240101-090000")) }, "Delete 20240101-090000"},
	}

	for i, step := range steps {
		before, err := s.Head()
		if err != nil {
			t.Fatalf("Head failed: %v", err)
		}

		step.prepare()
		hash, err := s.RecordChange(step.name, step.kind)
		if err != nil {
			t.Fatalf("step %d: RecordChange failed: %v", i, err)
		}

		if n := commitCount(t, s); n != i+2 {
			t.Errorf("step %d: commit count = %d, expected %d", i, n, i+2)
		}

		history, err := s.History()
		if err != nil {
			t.Fatalf("History failed: %v", err)
		}
		tip := history[0]
		if tip.Hash != hash.String() {
			t.Errorf("step %d: tip %s is not the new commit %s", i, tip.Hash, hash)
		}
		if len(tip.Parents) != 1 || tip.Parents[0] != before.Hash().String() {
			t.Errorf("step %d: parents = %v, expected [%s]", i, tip.Parents, before.Hash())
		}
		if tip.Message != step.message {
			t.Errorf("step %d: message = %q, expected %q", i, tip.Message, step.message)
		}
	}
}

func TestRecordChangeFailureLeavesIndexClean(t *testing.T) {
	s := initStore(t)

	// Deleting an untracked name fails in the index.
	if _, err := s.RecordChange("ghost", Delete); !errors.Is(err, kerrors.ErrStoreFailure) {
		t.Fatalf("expected ErrStoreFailure, got %v", err)
	}

	if n := commitCount(t, s); n != 1 {
		t.Errorf("failed change created a commit: count = %d", n)
	}

	// A later change commits only its own path.
	writeEntry(t, s, "real", "content")
	if _, err := s.RecordChange("real", Add); err != nil {
		t.Fatalf("RecordChange failed: %v", err)
	}
	wt, err := s.repo.Worktree()
	if err != nil {
		t.Fatalf("Worktree failed: %v", err)
	}
	status, err := wt.Status()
	if err != nil {
		t.Fatalf("Status failed: %v", err)
	}
	if !status.IsClean() {
		t.Errorf("worktree not clean after commit:\n%s", status)
	}
}

func TestRecordChangeRequiresHead(t *testing.T) {
	dir := t.TempDir()
	s := initStore(t)

	// A bare git init with no commits has no HEAD to build on.
	empty, err := Init(dir, "key", nil)
	if err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if err := os.Remove(filepath.Join(empty.WorkingDirectory(), ".git", "refs", "heads", "master")); err != nil {
		t.Fatalf("Failed to remove branch ref: %v", err)
	}

	writeEntry(t, empty, "entry", "x")
	if _, err := empty.RecordChange("entry", Add); !errors.Is(err, kerrors.ErrStoreFailure) {
		t.Errorf("expected ErrStoreFailure without HEAD, got %v", err)
	}

	// The healthy store is unaffected.
	if n := commitCount(t, s); n != 1 {
		t.Errorf("commit count = %d", n)
	}
}

func TestListTrackedNamesSkipsReserved(t *testing.T) {
	s := initStore(t)

	for _, name := range []string{".hidden", ".another", "20240101-120000", "b-entry"} {
		writeEntry(t, s, name, "x")
	}

	names, err := s.ListTrackedNames()
	if err != nil {
		t.Fatalf("ListTrackedNames failed: %v", err)
	}

	if len(names) != 2 {
		t.Fatalf("expected 2 names, got %v", names)
	}
	for _, n := range names {
		if strings.HasPrefix(n, ".") {
			t.Errorf("reserved name %q listed", n)
		}
	}
}

func TestRecipientID(t *testing.T) {
	s, err := Init(filepath.Join(t.TempDir(), "journal"), "  ABCDEF0123456789 \n", nil)
	if err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	id, err := s.RecipientID()
	if err != nil {
		t.Fatalf("RecipientID failed: %v", err)
	}
	if id != "ABCDEF0123456789" {
		t.Errorf("RecipientID = %q, expected trimmed key id", id)
	}

	if err := os.Remove(s.EntryPath(RecipientFile)); err != nil {
		t.Fatalf("Failed to remove recipient file: %v", err)
	}
	if _, err := s.RecipientID(); !errors.Is(err, kerrors.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestChangeKindMessage(t *testing.T) {
	tests := []struct {
		kind ChangeKind
		want string
	}{
		{Add, "Add 20240101-090000"},
		{Edit, "Edit 20240101-090000"},
		{Delete, "Delete 20240101-090000"},
	}
	for _, tc := range tests {
		if got := tc.kind.Message("20240101-090000"); got != tc.want {
			t.Errorf("Message = %q, expected %q", got, tc.want)
		}
	}
}

func TestParentVariants(t *testing.T) {
	if g := Genesis(); !g.IsGenesis() || g.Hashes() != nil {
		t.Errorf("Genesis should have no parent hashes")
	}

	s := initStore(t)
	head, err := s.Head()
	if err != nil {
		t.Fatalf("Head failed: %v", err)
	}
	if head.IsGenesis() {
		t.Fatal("initialized repository should have a HEAD commit")
	}
	if hashes := head.Hashes(); len(hashes) != 1 || hashes[0] != head.Hash() {
		t.Errorf("Hashes = %v", hashes)
	}
}

func TestPending(t *testing.T) {
	s := initStore(t)

	pending, err := s.Pending()
	if err != nil {
		t.Fatalf("Pending failed: %v", err)
	}
	if len(pending) != 0 {
		t.Errorf("fresh repository has pending paths %v", pending)
	}

	writeEntry(t, s, "b-untracked", "x")
	writeEntry(t, s, "a-committed", "x")
	if _, err := s.RecordChange("a-committed", Add); err != nil {
		t.Fatalf("RecordChange failed: %v", err)
	}
	writeEntry(t, s, "a-committed", "changed")

	pending, err = s.Pending()
	if err != nil {
		t.Fatalf("Pending failed: %v", err)
	}
	if len(pending) != 2 || pending[0] != "a-committed" || pending[1] != "b-untracked" {
		t.Errorf("Pending = %v, want [a-committed b-untracked]", pending)
	}
}

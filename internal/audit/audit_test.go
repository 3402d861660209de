package audit

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/PolarWolf314/deary/internal/store"
)

func TestParseMessage(t *testing.T) {
	tests := []struct {
		name     string
		message  string
		wantOp   string
		wantName string
	}{
		{"Add", "Add 20240101-093000", OpAdd, "20240101-093000"},
		{"Edit", "Edit 20240101-093000\n", OpEdit, "20240101-093000"},
		{"Delete", "Delete my-entry", OpDelete, "my-entry"},
		{"Metadata", "Add .gpg_id", OpAdd, ".gpg_id"},
		{"MultiLine", "Edit x\n\nbody text", OpEdit, "x"},
		{"Foreign", "Merge branch 'main'", OpOther, ""},
		{"NoName", "Add", OpOther, ""},
		{"Empty", "", OpOther, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			op, name := ParseMessage(tc.message)
			if op != tc.wantOp || name != tc.wantName {
				t.Errorf("ParseMessage(%q) = (%q, %q), expected (%q, %q)",
					tc.message, op, name, tc.wantOp, tc.wantName)
			}
		})
	}
}

func sampleCommits() []store.Commit {
	base := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	// Newest first, as store.History returns them.
	return []store.Commit{
		{Hash: "dddddddddddddddd", AuthorEmail: "noemail", When: base.Add(72 * time.Hour), Message: "Delete 20240301-100500"},
		{Hash: "cccccccccccccccc", AuthorEmail: "noemail", When: base.Add(48 * time.Hour), Message: "Edit 20240301-100500"},
		{Hash: "bbbbbbbbbbbbbbbb", AuthorEmail: "noemail", When: base.Add(24 * time.Hour), Message: "Add 20240301-100500"},
		{Hash: "aaaaaaaaaaaaaaaa", AuthorEmail: "noemail", When: base, Message: "Add .gpg_id"},
	}
}

func TestFromCommitsOrdersOldestFirst(t *testing.T) {
	entries := FromCommits(sampleCommits())

	if len(entries) != 4 {
		t.Fatalf("expected 4 entries, got %d", len(entries))
	}
	if entries[0].Name != ".gpg_id" || entries[3].Operation != OpDelete {
		t.Errorf("unexpected order: %+v", entries)
	}
	if entries[0].Timestamp != "2024-03-01T10:00:00.000000Z" {
		t.Errorf("timestamp = %q", entries[0].Timestamp)
	}
	if entries[1].ShortHash() != "bbbbbbb" {
		t.Errorf("ShortHash = %q", entries[1].ShortHash())
	}
}

func TestFilter(t *testing.T) {
	entries := FromCommits(sampleCommits())
	day := func(d int) time.Time { return time.Date(2024, 3, d, 0, 0, 0, 0, time.UTC) }

	tests := []struct {
		name     string
		criteria Criteria
		want     int
	}{
		{"NoCriteria", Criteria{}, 4},
		{"Operation", Criteria{Operations: []string{"add"}}, 2},
		{"OperationCaseInsensitive", Criteria{Operations: []string{"EDIT", "delete"}}, 2},
		{"NameGlob", Criteria{Name: "2024*"}, 3},
		{"NameExact", Criteria{Name: ".gpg_id"}, 1},
		{"Since", Criteria{Since: day(2)}, 3},
		{"Until", Criteria{Until: day(2).Add(24*time.Hour - time.Nanosecond)}, 2},
		{"Combined", Criteria{Operations: []string{"add"}, Name: "2024*"}, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Filter(entries, tc.criteria)
			if len(got) != tc.want {
				t.Errorf("Filter returned %d entries, expected %d: %+v", len(got), tc.want, got)
			}
		})
	}
}

func TestMarshalEntries(t *testing.T) {
	data, err := MarshalEntries(nil)
	if err != nil {
		t.Fatalf("MarshalEntries failed: %v", err)
	}
	if string(data) != "[]" {
		t.Errorf("empty entries = %s, expected []", data)
	}

	data, err = MarshalEntries(FromCommits(sampleCommits())[:1])
	if err != nil {
		t.Fatalf("MarshalEntries failed: %v", err)
	}
	var decoded []map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded[0]["op"] != "add" || decoded[0]["name"] != ".gpg_id" {
		t.Errorf("unexpected JSON: %s", data)
	}
}

package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"testing"
	"time"

	"tableflip.dev/tracker/pkg/model"
)

func TestSnapshotIsImportable(t *testing.T) {
	snap := model.Snapshot{
		Entries:    []*model.Entry{{ID: "e1", Title: "read"}},
		Categories: model.DefaultCategories(),
		Trackers:   model.DefaultTrackers(),
		Settings:   model.Settings{"theme": "dark"},
	}

	data, err := Snapshot(snap)
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}

	back, counts, err := ValidateImport(data)
	if err != nil {
		t.Fatalf("exported snapshot must validate: %v", err)
	}
	if counts.Entries != 1 || counts.Categories != 5 || counts.Trackers != 3 {
		t.Fatalf("unexpected counts: %+v", counts)
	}
	if back.Entries[0].Title != "read" {
		t.Fatalf("round trip lost the entry title: %q", back.Entries[0].Title)
	}
	if back.Settings["theme"] != "dark" {
		t.Fatalf("round trip lost settings: %v", back.Settings)
	}
}

func TestEntriesCSV(t *testing.T) {
	created := model.Timestamp{Time: time.Date(2026, 2, 3, 9, 0, 0, 0, time.Local)}
	entries := []*model.Entry{
		{
			Title:       `Say "hello", world`,
			Description: "line one\nline two",
			Category:    "cat_tasks",
			Status:      model.StatusCompleted,
			Priority:    model.PriorityHigh,
			Tags:        []string{"greeting", "multi"},
			Repeat:      model.RepeatNone,
			Progress:    100,
			Mood:        4,
			CreatedAt:   created,
			CompletedAt: created,
		},
		{Title: "no dates", Status: model.StatusPending, Priority: model.PriorityLow},
	}

	var buf bytes.Buffer
	err := EntriesCSV(&buf, entries, func(id string) string {
		if id == "cat_tasks" {
			return "Tasks"
		}
		return ""
	})
	if err != nil {
		t.Fatalf("csv: %v", err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("output must parse back as csv: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header + 2 rows, got %d", len(rows))
	}
	if len(rows[0]) != len(CSVHeaders) {
		t.Fatalf("header width mismatch: %v", rows[0])
	}

	first := rows[1]
	if first[0] != `Say "hello", world` {
		t.Fatalf("quotes and commas must survive: %q", first[0])
	}
	if first[1] != "line one\nline two" {
		t.Fatalf("newlines must survive: %q", first[1])
	}
	if first[2] != "Tasks" {
		t.Fatalf("category column must carry the display name: %q", first[2])
	}
	if first[6] != "greeting; multi" {
		t.Fatalf("tags join with semicolons: %q", first[6])
	}
	if first[10] != "Feb 3, 2026" {
		t.Fatalf("unexpected created column: %q", first[10])
	}

	second := rows[2]
	if second[3] != "" || second[11] != "" {
		t.Fatalf("zero timestamps render empty, got due=%q completed=%q", second[3], second[11])
	}
}

func TestValidateImportRejectsNonObject(t *testing.T) {
	for _, payload := range []string{`[]`, `"hello"`, `42`, `not json`} {
		if _, _, err := ValidateImport([]byte(payload)); err == nil {
			t.Fatalf("%s: expected rejection", payload)
		}
	}
}

func TestValidateImportRejectsNonArrayEntries(t *testing.T) {
	if _, _, err := ValidateImport([]byte(`{"entries":{"id":"e1"}}`)); err == nil {
		t.Fatalf("entries as an object must be rejected")
	}
	if _, _, err := ValidateImport([]byte(`{"entries":"nope"}`)); err == nil {
		t.Fatalf("entries as a string must be rejected")
	}
}

func TestValidateImportAcceptsNullAndMissingEntries(t *testing.T) {
	if _, _, err := ValidateImport([]byte(`{"entries":null}`)); err != nil {
		t.Fatalf("null entries: %v", err)
	}
	snap, counts, err := ValidateImport([]byte(`{"settings":{"theme":"dark"}}`))
	if err != nil {
		t.Fatalf("missing entries: %v", err)
	}
	if counts.Entries != 0 {
		t.Fatalf("expected zero entries, got %d", counts.Entries)
	}
	if snap.Settings["theme"] != "dark" {
		t.Fatalf("settings lost: %v", snap.Settings)
	}
}

func TestValidateImportCountsMatchPayload(t *testing.T) {
	payload, _ := json.Marshal(model.Snapshot{
		Entries:    []*model.Entry{{ID: "a"}, {ID: "b"}},
		Categories: []*model.Category{{ID: "c"}},
	})
	_, counts, err := ValidateImport(payload)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if counts.Entries != 2 || counts.Categories != 1 || counts.Trackers != 0 {
		t.Fatalf("unexpected counts: %+v", counts)
	}
}

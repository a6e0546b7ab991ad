// Package export serializes store state for backup downloads and tabular
// reports, and validates backup payloads before import.
package export

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"tableflip.dev/tracker/pkg/model"
)

const layoutUS = "Jan 2, 2006"

// CSVHeaders is the fixed, ordered column set for entry exports.
var CSVHeaders = []string{
	"Title", "Description", "Category", "Due Date", "Status",
	"Priority", "Tags", "Repeat", "Progress", "Mood",
	"Created", "Completed",
}

// Snapshot renders the full application state as indented JSON, identical in
// shape to the persistence format.
func Snapshot(snap model.Snapshot) ([]byte, error) {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("export: encode snapshot: %w", err)
	}
	return data, nil
}

// EntriesCSV writes one row per entry with human-readable columns. The
// category column carries the resolved display name; tags join with "; ".
// Quoting and escaping follow RFC 4180 via encoding/csv.
func EntriesCSV(w io.Writer, entries []*model.Entry, categoryName func(id string) string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(CSVHeaders); err != nil {
		return fmt.Errorf("export: write csv header: %w", err)
	}

	for _, e := range entries {
		row := []string{
			e.Title,
			e.Description,
			categoryName(e.Category),
			formatDate(e.DueDate),
			string(e.Status),
			string(e.Priority),
			strings.Join(e.Tags, "; "),
			string(e.Repeat),
			strconv.Itoa(e.Progress),
			strconv.Itoa(e.Mood),
			formatDate(e.CreatedAt),
			formatDate(e.CompletedAt),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("export: write csv row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

func formatDate(t model.Timestamp) string {
	if t.IsZero() {
		return ""
	}
	return t.Local().Format(layoutUS)
}

// Counts reports how many records an accepted import carries.
type Counts struct {
	Entries    int
	Categories int
	Trackers   int
}

// ValidateImport decodes a backup payload, rejecting anything that is not a
// JSON object or whose entries field is not an array. The store is never
// touched on rejection.
func ValidateImport(data []byte) (model.Snapshot, Counts, error) {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(data, &probe); err != nil {
		return model.Snapshot{}, Counts{}, errors.New("export: that does not look like a valid backup file")
	}

	if raw, ok := probe["entries"]; ok {
		trimmed := strings.TrimSpace(string(raw))
		if trimmed != "null" && !strings.HasPrefix(trimmed, "[") {
			return model.Snapshot{}, Counts{}, errors.New("export: the entries data does not look right")
		}
	}

	var snap model.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return model.Snapshot{}, Counts{}, fmt.Errorf("export: could not read backup: %w", err)
	}

	return snap, Counts{
		Entries:    len(snap.Entries),
		Categories: len(snap.Categories),
		Trackers:   len(snap.Trackers),
	}, nil
}

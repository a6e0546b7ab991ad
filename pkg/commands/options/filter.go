// Package options defines shared flag helpers for CLI commands.
package options

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/tracker/pkg/model"
	"tableflip.dev/tracker/pkg/store"
)

const layoutISO = "2006-01-02"

// FilterOptions captures the entry selection flags shared by list-style
// commands.
type FilterOptions struct {
	Status   string
	Category string
	Tracker  string
	Priority string
	Tag      string
	From     string
	To       string
	Query    string
	Sort     string
}

// AddFilterArgs wires filter flags on the provided command.
func AddFilterArgs(cmd *cobra.Command, o *FilterOptions) {
	cmd.Flags().StringVarP(&o.Status, "status", "s", "",
		"Filter by status: pending, completed, skipped, archived, or all.")
	cmd.Flags().StringVarP(&o.Category, "category", "c", "",
		"Filter by category id or name.")
	cmd.Flags().StringVar(&o.Tracker, "tracker", "",
		"Filter by tracker id.")
	cmd.Flags().StringVarP(&o.Priority, "priority", "p", "",
		"Filter by priority: low, medium, high.")
	cmd.Flags().StringVar(&o.Tag, "tag", "",
		"Filter by tag membership.")
	cmd.Flags().StringVar(&o.From, "from", "",
		`Start of due-date range, example: --from="2026-02-01".`)
	cmd.Flags().StringVar(&o.To, "to", "",
		`End of due-date range (inclusive), example: --to="2026-02-28".`)
	cmd.Flags().StringVarP(&o.Query, "query", "q", "",
		"Free-text search over title, description, tags, and category.")
	cmd.Flags().StringVar(&o.Sort, "sort", "",
		"Sort order: newest, oldest, priority, dueDate, status, custom.")
}

// Filter resolves the flags into a store filter. Category names are resolved
// to ids through the store.
func (o *FilterOptions) Filter(s *store.Store) (store.Filter, error) {
	f := store.Filter{
		Status:    o.Status,
		TrackerID: o.Tracker,
		Priority:  model.Priority(o.Priority),
		Tag:       o.Tag,
		Query:     o.Query,
		Sort:      store.Sort(o.Sort),
	}

	if o.Category != "" {
		f.Category = o.Category
		if c := s.GetCategoryByName(o.Category); c != nil {
			f.Category = c.ID
		}
	}

	if o.From != "" {
		t, err := time.ParseInLocation(layoutISO, o.From, time.Local)
		if err != nil {
			return store.Filter{}, fmt.Errorf("invalid --from date %q: %w", o.From, err)
		}
		f.DateFrom = t
	}
	if o.To != "" {
		t, err := time.ParseInLocation(layoutISO, o.To, time.Local)
		if err != nil {
			return store.Filter{}, fmt.Errorf("invalid --to date %q: %w", o.To, err)
		}
		f.DateTo = t
	}

	return f, nil
}

package store

import (
	"sort"
	"time"

	"tableflip.dev/tracker/pkg/model"
	"tableflip.dev/tracker/pkg/search"
	"tableflip.dev/tracker/pkg/timeutil"
)

// Sort names an entry ordering. Sorts are stable: entries that compare equal
// keep their relative order.
type Sort string

const (
	SortNewest   Sort = "newest"
	SortOldest   Sort = "oldest"
	SortPriority Sort = "priority"
	SortDueDate  Sort = "dueDate"
	SortStatus   Sort = "status"
	SortCustom   Sort = "custom"
)

// Status filter values beyond the entry statuses themselves.
const (
	StatusAll      = "all"
	StatusArchived = string(model.StatusArchived)
)

// Filter selects and orders entries for GetEntries. The zero value returns
// every non-archived entry, newest first. Archived entries are excluded
// unless Status is exactly "archived" or "all".
type Filter struct {
	Status    string
	Category  string
	TrackerID string
	Priority  model.Priority
	Tag       string
	DateFrom  time.Time
	DateTo    time.Time
	Query     string
	Sort      Sort
}

// apply runs the filter pipeline over entries, resolving category display
// names through catName for query matching. The input slice is not modified.
func (f Filter) apply(entries []*model.Entry, catName func(id string) string) []*model.Entry {
	out := make([]*model.Entry, 0, len(entries))

	includeArchived := f.Status == StatusArchived || f.Status == StatusAll
	from := f.DateFrom
	if !from.IsZero() {
		from = timeutil.StartOfDay(from)
	}
	to := f.DateTo
	if !to.IsZero() {
		// Inclusive range: dateTo means end of that day.
		to = timeutil.EndOfDay(to)
	}

	for _, e := range entries {
		if e.Status == model.StatusArchived && !includeArchived {
			continue
		}
		if f.Status != "" && f.Status != StatusAll && string(e.Status) != f.Status {
			continue
		}
		if f.Category != "" && e.Category != f.Category {
			continue
		}
		if f.TrackerID != "" && e.TrackerID != f.TrackerID {
			continue
		}
		if f.Priority != "" && e.Priority != f.Priority {
			continue
		}
		if f.Tag != "" && !e.HasTag(f.Tag) {
			continue
		}
		if !from.IsZero() && e.EffectiveDate().Before(from) {
			continue
		}
		if !to.IsZero() && e.EffectiveDate().After(to) {
			continue
		}
		if f.Query != "" && !search.Match(search.Fields{
			Title:        e.Title,
			Description:  e.Description,
			Tags:         e.Tags,
			CategoryName: catName(e.Category),
		}, f.Query) {
			continue
		}
		out = append(out, e)
	}

	f.sortEntries(out)
	return out
}

func (f Filter) sortEntries(entries []*model.Entry) {
	s := f.Sort
	if s == "" {
		s = SortNewest
	}

	switch s {
	case SortNewest:
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[j].CreatedAt.Before(entries[i].CreatedAt.Time)
		})
	case SortOldest:
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].CreatedAt.Before(entries[j].CreatedAt.Time)
		})
	case SortPriority:
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].Priority.Rank() < entries[j].Priority.Rank()
		})
	case SortDueDate:
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].EffectiveDate().Before(entries[j].EffectiveDate().Time)
		})
	case SortStatus:
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].Status.Rank() < entries[j].Status.Rank()
		})
	case SortCustom:
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].Order < entries[j].Order
		})
	}
}

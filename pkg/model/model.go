// Package model defines the record shapes the tracker stores: entries,
// categories, trackers, and the snapshot that bundles them for persistence.
package model

import "strings"

// Status is the lifecycle state of an entry.
type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusSkipped   Status = "skipped"
	StatusArchived  Status = "archived"
)

// Rank orders statuses for sorting: pending < completed < skipped < archived.
func (s Status) Rank() int {
	switch s {
	case StatusPending:
		return 0
	case StatusCompleted:
		return 1
	case StatusSkipped:
		return 2
	case StatusArchived:
		return 3
	}
	return 0
}

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusCompleted, StatusSkipped, StatusArchived:
		return true
	}
	return false
}

// Priority is the urgency of an entry.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Rank orders priorities for sorting: high < medium < low.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	case PriorityLow:
		return 2
	}
	return 1
}

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Repeat is the recurrence cadence of an entry.
type Repeat string

const (
	RepeatNone     Repeat = "none"
	RepeatDaily    Repeat = "daily"
	RepeatWeekly   Repeat = "weekly"
	RepeatBiweekly Repeat = "biweekly"
	RepeatMonthly  Repeat = "monthly"
)

func (r Repeat) Valid() bool {
	switch r {
	case RepeatNone, RepeatDaily, RepeatWeekly, RepeatBiweekly, RepeatMonthly:
		return true
	}
	return false
}

// Entry is a single trackable record: a task, habit, or goal instance.
type Entry struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Category    string    `json:"category,omitempty"`
	TrackerID   string    `json:"trackerId,omitempty"`
	Date        Timestamp `json:"date"`
	DueDate     Timestamp `json:"dueDate,omitempty"`
	Status      Status    `json:"status"`
	Priority    Priority  `json:"priority"`
	Tags        []string  `json:"tags,omitempty"`
	Repeat      Repeat    `json:"repeat"`
	Progress    int       `json:"progress"`
	Mood        int       `json:"mood"`
	Links       string    `json:"links,omitempty"`
	CompletedAt Timestamp `json:"completedAt,omitempty"`
	CreatedAt   Timestamp `json:"createdAt"`
	UpdatedAt   Timestamp `json:"updatedAt"`
	Order       int64     `json:"order"`
}

// Clone returns a deep copy of the entry.
func (e *Entry) Clone() *Entry {
	cp := *e
	if e.Tags != nil {
		cp.Tags = append([]string(nil), e.Tags...)
	}
	return &cp
}

// HasTag reports whether the entry carries the tag, ignoring case.
func (e *Entry) HasTag(tag string) bool {
	tag = strings.ToLower(strings.TrimSpace(tag))
	for _, t := range e.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// EffectiveDate is the date an entry counts against for range filters and
// due-date sorting: the due date when set, the entry date otherwise.
func (e *Entry) EffectiveDate() Timestamp {
	if !e.DueDate.IsZero() {
		return e.DueDate
	}
	return e.Date
}

// Category labels and color-codes entries, independent of tracker.
type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
	Icon  string `json:"icon,omitempty"`
}

// Tracker is a named grouping of entries surfaced as its own view.
type Tracker struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	CategoryID string `json:"categoryId,omitempty"`
	Icon       string `json:"icon,omitempty"`
}

// Settings is an open key-value mapping (theme and friends).
type Settings map[string]any

// Snapshot bundles the full application state for persistence and export.
type Snapshot struct {
	Entries    []*Entry    `json:"entries"`
	Categories []*Category `json:"categories"`
	Trackers   []*Tracker  `json:"trackers"`
	Settings   Settings    `json:"settings"`
}

// NormalizeTags lowercases, trims, and deduplicates a tag list, preserving
// first-seen order.
func NormalizeTags(tags []string) []string {
	if len(tags) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// ClampProgress bounds progress to [0,100].
func ClampProgress(p int) int {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

// ClampMood bounds mood to [1,5].
func ClampMood(m int) int {
	if m < 1 {
		return 1
	}
	if m > 5 {
		return 5
	}
	return m
}

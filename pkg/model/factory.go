package model

import (
	"time"

	"github.com/google/uuid"
)

// EntryDraft carries caller-supplied values for a new entry. Zero values fall
// back to the defaults every entry starts with.
type EntryDraft struct {
	Title       string
	Description string
	Category    string
	TrackerID   string
	Date        Timestamp
	DueDate     Timestamp
	Status      Status
	Priority    Priority
	Tags        []string
	Repeat      Repeat
	Progress    int
	Mood        int
	Links       string
}

// NewEntry constructs a well-formed entry from a draft, filling defaults:
// status pending, priority medium, repeat none, mood 3, created now.
func NewEntry(d EntryDraft) *Entry {
	now := Now()
	e := &Entry{
		ID:          uuid.NewString(),
		Title:       d.Title,
		Description: d.Description,
		Category:    d.Category,
		TrackerID:   d.TrackerID,
		Date:        now,
		DueDate:     d.DueDate,
		Status:      StatusPending,
		Priority:    PriorityMedium,
		Tags:        NormalizeTags(d.Tags),
		Repeat:      RepeatNone,
		Progress:    ClampProgress(d.Progress),
		Mood:        3,
		Links:       d.Links,
		CreatedAt:   now,
		UpdatedAt:   now,
		Order:       time.Now().UnixMilli(),
	}
	if !d.Date.IsZero() {
		e.Date = d.Date
	}
	if d.Status.Valid() {
		e.Status = d.Status
	}
	if d.Priority.Valid() {
		e.Priority = d.Priority
	}
	if d.Repeat.Valid() {
		e.Repeat = d.Repeat
	}
	if d.Mood != 0 {
		e.Mood = ClampMood(d.Mood)
	}
	if e.Status == StatusCompleted {
		e.CompletedAt = now
	}
	return e
}

// NewCategory constructs a category, defaulting the name, color, and icon.
func NewCategory(name, color, icon string) *Category {
	c := &Category{
		ID:    "cat_" + uuid.NewString(),
		Name:  name,
		Color: color,
		Icon:  icon,
	}
	if c.Name == "" {
		c.Name = "New Category"
	}
	if c.Color == "" {
		c.Color = "#8a8480"
	}
	if c.Icon == "" {
		c.Icon = "•"
	}
	return c
}

// NewTracker constructs a tracker, defaulting the name and icon.
func NewTracker(name, categoryID, icon string) *Tracker {
	t := &Tracker{
		ID:         "trk_" + uuid.NewString(),
		Name:       name,
		CategoryID: categoryID,
		Icon:       icon,
	}
	if t.Name == "" {
		t.Name = "New Tracker"
	}
	if t.Icon == "" {
		t.Icon = "◉"
	}
	return t
}

// DefaultCategories is the seed set a fresh store starts with.
func DefaultCategories() []*Category {
	return []*Category{
		{ID: "cat_tasks", Name: "Tasks", Color: "#5a9ae6", Icon: "✓"},
		{ID: "cat_habits", Name: "Habits", Color: "#6bb87d", Icon: "↻"},
		{ID: "cat_goals", Name: "Goals", Color: "#d4a54a", Icon: "★"},
		{ID: "cat_expenses", Name: "Expenses", Color: "#d06a5c", Icon: "$"},
		{ID: "cat_study", Name: "Study", Color: "#9a7bd4", Icon: "📖"},
	}
}

// DefaultTrackers is the seed set a fresh store starts with.
func DefaultTrackers() []*Tracker {
	return []*Tracker{
		{ID: "trk_tasks", Name: "Tasks", CategoryID: "cat_tasks", Icon: "✓"},
		{ID: "trk_habits", Name: "Habits", CategoryID: "cat_habits", Icon: "↻"},
		{ID: "trk_goals", Name: "Goals", CategoryID: "cat_goals", Icon: "★"},
	}
}

// DefaultSettings is the settings map a fresh store starts with.
func DefaultSettings() Settings {
	return Settings{"theme": "light"}
}

package model

// EntryPatch is a partial update for an entry. Nil fields are left untouched;
// set fields are merged in one at a time. A set-but-zero DueDate or
// CompletedAt clears the date.
type EntryPatch struct {
	Title       *string
	Description *string
	Category    *string
	TrackerID   *string
	DueDate     *Timestamp
	Status      *Status
	Priority    *Priority
	Tags        *[]string
	Repeat      *Repeat
	Progress    *int
	Mood        *int
	Links       *string
	CompletedAt *Timestamp
	Order       *int64
}

// Apply merges the patch into the entry field by field. The caller is
// responsible for refreshing UpdatedAt.
func (p EntryPatch) Apply(e *Entry) {
	if p.Title != nil {
		e.Title = *p.Title
	}
	if p.Description != nil {
		e.Description = *p.Description
	}
	if p.Category != nil {
		e.Category = *p.Category
	}
	if p.TrackerID != nil {
		e.TrackerID = *p.TrackerID
	}
	if p.DueDate != nil {
		e.DueDate = *p.DueDate
	}
	if p.Status != nil && p.Status.Valid() {
		e.Status = *p.Status
	}
	if p.Priority != nil && p.Priority.Valid() {
		e.Priority = *p.Priority
	}
	if p.Tags != nil {
		e.Tags = NormalizeTags(*p.Tags)
	}
	if p.Repeat != nil && p.Repeat.Valid() {
		e.Repeat = *p.Repeat
	}
	if p.Progress != nil {
		e.Progress = ClampProgress(*p.Progress)
	}
	if p.Mood != nil {
		e.Mood = ClampMood(*p.Mood)
	}
	if p.Links != nil {
		e.Links = *p.Links
	}
	if p.CompletedAt != nil {
		e.CompletedAt = *p.CompletedAt
	}
	if p.Order != nil {
		e.Order = *p.Order
	}
}

// IsZero reports whether the patch changes nothing.
func (p EntryPatch) IsZero() bool {
	return p == EntryPatch{}
}

// CategoryPatch is a partial update for a category.
type CategoryPatch struct {
	Name  *string
	Color *string
	Icon  *string
}

func (p CategoryPatch) Apply(c *Category) {
	if p.Name != nil && *p.Name != "" {
		c.Name = *p.Name
	}
	if p.Color != nil {
		c.Color = *p.Color
	}
	if p.Icon != nil {
		c.Icon = *p.Icon
	}
}

// TrackerPatch is a partial update for a tracker.
type TrackerPatch struct {
	Name       *string
	CategoryID *string
	Icon       *string
}

func (p TrackerPatch) Apply(t *Tracker) {
	if p.Name != nil && *p.Name != "" {
		t.Name = *p.Name
	}
	if p.CategoryID != nil {
		t.CategoryID = *p.CategoryID
	}
	if p.Icon != nil {
		t.Icon = *p.Icon
	}
}

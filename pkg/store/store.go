// Package store owns the authoritative application state: entries,
// categories, trackers, and settings. It is the sole mutator of that state
// and the unit of consistency — every operation reads, mutates, persists,
// and notifies before returning.
//
// The store is single-actor by design and is not safe for concurrent use.
package store

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"tableflip.dev/tracker/pkg/model"
)

// Store holds all mutable application data. Construct it once with New and
// hand it to consumers; there is no ambient singleton.
type Store struct {
	adapter Adapter
	log     zerolog.Logger
	now     func() time.Time

	entries    []*model.Entry
	categories []*model.Category
	trackers   []*model.Tracker
	settings   model.Settings

	undoStack []undoRecord
	bus       bus
}

// New builds a store from the adapter's last snapshot. An absent or
// unreadable snapshot degrades to defaults — it never fails construction —
// and a partially valid snapshot falls back collection by collection.
func New(adapter Adapter, logger zerolog.Logger) *Store {
	s := &Store{
		adapter: adapter,
		log:     logger,
		now:     time.Now,
	}
	s.load()
	return s
}

func (s *Store) load() {
	data, err := s.adapter.Load()
	if err != nil {
		s.log.Warn().Err(err).Msg("could not load snapshot, starting fresh")
		data = nil
	}

	if data == nil {
		s.loadDefaults()
		return
	}

	var snap model.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		s.log.Warn().Err(err).Msg("could not parse saved data, starting fresh")
		s.loadDefaults()
		return
	}

	s.entries = snap.Entries
	if s.entries == nil {
		s.entries = []*model.Entry{}
	}
	s.categories = snap.Categories
	if s.categories == nil {
		s.categories = model.DefaultCategories()
	}
	s.trackers = snap.Trackers
	if s.trackers == nil {
		s.trackers = model.DefaultTrackers()
	}
	s.settings = snap.Settings
	if s.settings == nil {
		s.settings = model.DefaultSettings()
	}
}

func (s *Store) loadDefaults() {
	s.entries = []*model.Entry{}
	s.categories = model.DefaultCategories()
	s.trackers = model.DefaultTrackers()
	s.settings = model.DefaultSettings()
	s.persist()
}

// persist writes the full snapshot through the adapter. Failures are logged
// and swallowed: in-memory state stays the source of truth for the session.
func (s *Store) persist() {
	data, err := json.Marshal(s.snapshotLocked())
	if err != nil {
		s.log.Error().Err(err).Msg("failed to encode snapshot")
		return
	}
	if err := s.adapter.Save(data); err != nil {
		s.log.Error().Err(err).Msg("failed to save data")
	}
}

// snapshotLocked returns the live collections bundled for serialization.
// Callers must not hold onto the slices.
func (s *Store) snapshotLocked() model.Snapshot {
	return model.Snapshot{
		Entries:    s.entries,
		Categories: s.categories,
		Trackers:   s.trackers,
		Settings:   s.settings,
	}
}

// Snapshot returns a deep copy of the full application state.
func (s *Store) Snapshot() model.Snapshot {
	snap := model.Snapshot{
		Entries:    make([]*model.Entry, 0, len(s.entries)),
		Categories: make([]*model.Category, 0, len(s.categories)),
		Trackers:   make([]*model.Tracker, 0, len(s.trackers)),
		Settings:   make(model.Settings, len(s.settings)),
	}
	for _, e := range s.entries {
		snap.Entries = append(snap.Entries, e.Clone())
	}
	for _, c := range s.categories {
		cp := *c
		snap.Categories = append(snap.Categories, &cp)
	}
	for _, t := range s.trackers {
		cp := *t
		snap.Trackers = append(snap.Trackers, &cp)
	}
	for k, v := range s.settings {
		snap.Settings[k] = v
	}
	return snap
}

// Subscribe registers a callback for store events and returns its
// unsubscribe handle. Callbacks run synchronously after a mutation has
// persisted; they must not mutate the store.
func (s *Store) Subscribe(fn func(Event)) (unsubscribe func()) {
	return s.bus.subscribe(fn)
}

// --- Entries ---

// GetEntries returns a filtered, sorted copy of the entry collection.
func (s *Store) GetEntries(f Filter) []*model.Entry {
	matched := f.apply(s.entries, s.categoryName)
	out := make([]*model.Entry, 0, len(matched))
	for _, e := range matched {
		out = append(out, e.Clone())
	}
	return out
}

// GetEntry returns a copy of the entry with the given id, or nil.
func (s *Store) GetEntry(id string) *model.Entry {
	if e := s.findEntry(id); e != nil {
		return e.Clone()
	}
	return nil
}

func (s *Store) findEntry(id string) *model.Entry {
	for _, e := range s.entries {
		if e.ID == id {
			return e
		}
	}
	return nil
}

func (s *Store) entryIndex(id string) int {
	for i, e := range s.entries {
		if e.ID == id {
			return i
		}
	}
	return -1
}

// AddEntry constructs an entry from the draft, appends it, persists, and
// notifies. The new entry is returned as a copy.
func (s *Store) AddEntry(draft model.EntryDraft) *model.Entry {
	e := model.NewEntry(draft)
	s.entries = append(s.entries, e)
	s.persist()
	s.bus.publish(ChangeEvent{})
	return e.Clone()
}

// UpdateEntry merges the patch over the entry with the given id, capturing
// the prior value for undo. It returns (nil, false) when the id is unknown;
// no state changes and nothing is emitted.
func (s *Store) UpdateEntry(id string, patch model.EntryPatch) (*model.Entry, bool) {
	e := s.findEntry(id)
	if e == nil {
		return nil, false
	}

	s.pushUndo(undoUpdate{prior: e.Clone()})

	patch.Apply(e)
	s.reconcileCompletion(e)
	e.UpdatedAt = model.Timestamp{Time: s.now()}

	s.persist()
	s.bus.publish(ChangeEvent{})
	return e.Clone(), true
}

// reconcileCompletion maintains the invariant that completedAt is set iff the
// entry is completed.
func (s *Store) reconcileCompletion(e *model.Entry) {
	if e.Status == model.StatusCompleted {
		if e.CompletedAt.IsZero() {
			e.CompletedAt = model.Timestamp{Time: s.now()}
		}
		return
	}
	e.CompletedAt = model.Timestamp{}
}

// ToggleComplete flips the entry between pending and completed, stamping or
// clearing completedAt, by delegating to UpdateEntry.
func (s *Store) ToggleComplete(id string) (*model.Entry, bool) {
	e := s.findEntry(id)
	if e == nil {
		return nil, false
	}

	status := model.StatusCompleted
	completedAt := model.Timestamp{Time: s.now()}
	if e.Status == model.StatusCompleted {
		status = model.StatusPending
		completedAt = model.Timestamp{}
	}
	return s.UpdateEntry(id, model.EntryPatch{
		Status:      &status,
		CompletedAt: &completedAt,
	})
}

// DeleteEntry removes the entry, capturing the removed value for undo.
func (s *Store) DeleteEntry(id string) (*model.Entry, bool) {
	idx := s.entryIndex(id)
	if idx == -1 {
		return nil, false
	}

	removed := s.entries[idx]
	s.entries = append(s.entries[:idx], s.entries[idx+1:]...)
	s.pushUndo(undoDelete{removed: removal{entry: removed, index: idx}})

	s.persist()
	s.bus.publish(ChangeEvent{})
	return removed.Clone(), true
}

// DuplicateEntry clones an entry under a new identity with the title
// suffixed, status reset to pending, and timestamps reset to now. The clone
// is additive, so it is not undo-tracked.
func (s *Store) DuplicateEntry(id string) (*model.Entry, bool) {
	e := s.findEntry(id)
	if e == nil {
		return nil, false
	}

	dup := model.NewEntry(model.EntryDraft{
		Title:       e.Title + " (copy)",
		Description: e.Description,
		Category:    e.Category,
		TrackerID:   e.TrackerID,
		DueDate:     e.DueDate,
		Priority:    e.Priority,
		Tags:        e.Tags,
		Repeat:      e.Repeat,
		Progress:    e.Progress,
		Mood:        e.Mood,
		Links:       e.Links,
	})
	s.entries = append(s.entries, dup)

	s.persist()
	s.bus.publish(ChangeEvent{})
	return dup.Clone(), true
}

// BulkUpdateStatus sets the status on every known id, capturing one
// composite undo record. Unknown ids are skipped. It returns the number of
// entries updated; zero updates mutate nothing and emit nothing.
func (s *Store) BulkUpdateStatus(ids []string, status model.Status) int {
	if !status.Valid() {
		return 0
	}

	priors := make([]*model.Entry, 0, len(ids))
	now := model.Timestamp{Time: s.now()}
	for _, id := range ids {
		e := s.findEntry(id)
		if e == nil {
			continue
		}
		priors = append(priors, e.Clone())
		e.Status = status
		e.UpdatedAt = now
		s.reconcileCompletion(e)
	}

	if len(priors) == 0 {
		return 0
	}
	s.pushUndo(undoBulkUpdate{priors: priors})
	s.persist()
	s.bus.publish(ChangeEvent{})
	return len(priors)
}

// BulkDelete removes every known id, capturing one composite undo record.
// Unknown ids are skipped. A single Undo restores all removed entries.
func (s *Store) BulkDelete(ids []string) int {
	removed := make([]removal, 0, len(ids))
	for _, id := range ids {
		idx := s.entryIndex(id)
		if idx == -1 {
			continue
		}
		removed = append(removed, removal{entry: s.entries[idx], index: idx})
		s.entries = append(s.entries[:idx], s.entries[idx+1:]...)
	}

	if len(removed) == 0 {
		return 0
	}
	s.pushUndo(undoBulkDelete{removed: removed})
	s.persist()
	s.bus.publish(ChangeEvent{})
	return len(removed)
}

// --- Categories ---

// GetCategories returns a copy of the category collection.
func (s *Store) GetCategories() []*model.Category {
	out := make([]*model.Category, 0, len(s.categories))
	for _, c := range s.categories {
		cp := *c
		out = append(out, &cp)
	}
	return out
}

// GetCategoryByID returns a copy of the category, or nil.
func (s *Store) GetCategoryByID(id string) *model.Category {
	for _, c := range s.categories {
		if c.ID == id {
			cp := *c
			return &cp
		}
	}
	return nil
}

// GetCategoryByName looks a category up by display name, ignoring case.
func (s *Store) GetCategoryByName(name string) *model.Category {
	for _, c := range s.categories {
		if strings.EqualFold(c.Name, name) {
			cp := *c
			return &cp
		}
	}
	return nil
}

// GetCategoryName resolves a category id to its display name, or "" when the
// id is empty or unknown.
func (s *Store) GetCategoryName(id string) string {
	return s.categoryName(id)
}

func (s *Store) categoryName(id string) string {
	if id == "" {
		return ""
	}
	for _, c := range s.categories {
		if c.ID == id {
			return c.Name
		}
	}
	return ""
}

// AddCategory creates and appends a category.
func (s *Store) AddCategory(name, color, icon string) *model.Category {
	c := model.NewCategory(name, color, icon)
	s.categories = append(s.categories, c)
	s.persist()
	s.bus.publish(ChangeEvent{})
	cp := *c
	return &cp
}

// UpdateCategory merges the patch over the category with the given id.
func (s *Store) UpdateCategory(id string, patch model.CategoryPatch) (*model.Category, bool) {
	for _, c := range s.categories {
		if c.ID == id {
			patch.Apply(c)
			s.persist()
			s.bus.publish(ChangeEvent{})
			cp := *c
			return &cp, true
		}
	}
	return nil, false
}

// DeleteCategory removes the category and clears the reference on every
// entry that held it. Entries are never deleted as a side effect.
func (s *Store) DeleteCategory(id string) bool {
	idx := -1
	for i, c := range s.categories {
		if c.ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return false
	}

	s.categories = append(s.categories[:idx], s.categories[idx+1:]...)
	for _, e := range s.entries {
		if e.Category == id {
			e.Category = ""
		}
	}

	s.persist()
	s.bus.publish(ChangeEvent{})
	return true
}

// --- Trackers ---

// GetTrackers returns a copy of the tracker collection.
func (s *Store) GetTrackers() []*model.Tracker {
	out := make([]*model.Tracker, 0, len(s.trackers))
	for _, t := range s.trackers {
		cp := *t
		out = append(out, &cp)
	}
	return out
}

// GetTracker returns a copy of the tracker, or nil.
func (s *Store) GetTracker(id string) *model.Tracker {
	for _, t := range s.trackers {
		if t.ID == id {
			cp := *t
			return &cp
		}
	}
	return nil
}

// AddTracker creates and appends a tracker.
func (s *Store) AddTracker(name, categoryID, icon string) *model.Tracker {
	t := model.NewTracker(name, categoryID, icon)
	s.trackers = append(s.trackers, t)
	s.persist()
	s.bus.publish(ChangeEvent{})
	cp := *t
	return &cp
}

// UpdateTracker merges the patch over the tracker with the given id.
func (s *Store) UpdateTracker(id string, patch model.TrackerPatch) (*model.Tracker, bool) {
	for _, t := range s.trackers {
		if t.ID == id {
			patch.Apply(t)
			s.persist()
			s.bus.publish(ChangeEvent{})
			cp := *t
			return &cp, true
		}
	}
	return nil, false
}

// DeleteTracker removes the tracker and clears the reference on every entry
// that held it, mirroring DeleteCategory.
func (s *Store) DeleteTracker(id string) bool {
	idx := -1
	for i, t := range s.trackers {
		if t.ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return false
	}

	s.trackers = append(s.trackers[:idx], s.trackers[idx+1:]...)
	for _, e := range s.entries {
		if e.TrackerID == id {
			e.TrackerID = ""
		}
	}

	s.persist()
	s.bus.publish(ChangeEvent{})
	return true
}

// --- Settings ---

// GetSetting returns the value stored under key.
func (s *Store) GetSetting(key string) (any, bool) {
	v, ok := s.settings[key]
	return v, ok
}

// SetSetting stores the value and emits a SettingsEvent rather than the
// general change event.
func (s *Store) SetSetting(key string, value any) {
	s.settings[key] = value
	s.persist()
	s.bus.publish(SettingsEvent{Key: key, Value: value})
}

// --- Bulk replace ---

// ImportData replaces every collection present in the snapshot wholesale.
// Missing collections are left untouched; settings merge instead of
// replacing.
func (s *Store) ImportData(snap model.Snapshot) {
	if snap.Entries != nil {
		s.entries = snap.Entries
	}
	if snap.Categories != nil {
		s.categories = snap.Categories
	}
	if snap.Trackers != nil {
		s.trackers = snap.Trackers
	}
	for k, v := range snap.Settings {
		s.settings[k] = v
	}

	s.persist()
	s.bus.publish(ChangeEvent{})
}

// ClearAll empties the entry collection, capturing it as one undo record.
// Categories and trackers survive.
func (s *Store) ClearAll() {
	// Captured as repeated head deletions so a single undo rebuilds the
	// collection in order.
	removed := make([]removal, 0, len(s.entries))
	for _, e := range s.entries {
		removed = append(removed, removal{entry: e, index: 0})
	}
	s.pushUndo(undoBulkDelete{removed: removed})
	s.entries = []*model.Entry{}

	s.persist()
	s.bus.publish(ChangeEvent{})
}

package store

import (
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/tracker/pkg/model"
)

// memAdapter keeps the snapshot in memory and records save activity.
type memAdapter struct {
	data     []byte
	saves    int
	failSave bool
}

func (m *memAdapter) Load() ([]byte, error) {
	if m.data == nil {
		return nil, nil
	}
	return m.data, nil
}

func (m *memAdapter) Save(data []byte) error {
	m.saves++
	if m.failSave {
		return errors.New("disk full")
	}
	m.data = data
	return nil
}

var testClock = time.Date(2026, 2, 18, 12, 0, 0, 0, time.Local)

func newTestStore(t *testing.T) (*Store, *memAdapter) {
	t.Helper()
	adapter := &memAdapter{}
	s := New(adapter, zerolog.Nop())
	s.now = func() time.Time { return testClock }
	return s, adapter
}

// countEvents subscribes counters for both event variants.
func countEvents(s *Store) (changes, settings *int) {
	c, set := 0, 0
	s.Subscribe(func(ev Event) {
		switch ev.(type) {
		case ChangeEvent:
			c++
		case SettingsEvent:
			set++
		}
	})
	return &c, &set
}

func TestNewSeedsDefaults(t *testing.T) {
	assert := assert.New(t)

	s, adapter := newTestStore(t)

	assert.Empty(s.GetEntries(Filter{}))
	assert.Len(s.GetCategories(), 5)
	assert.Len(s.GetTrackers(), 3)

	theme, ok := s.GetSetting("theme")
	assert.True(ok)
	assert.Equal("light", theme)

	// Defaults are persisted immediately.
	assert.NotNil(adapter.data)
}

func TestNewMalformedSnapshotDegradesToDefaults(t *testing.T) {
	assert := assert.New(t)

	adapter := &memAdapter{data: []byte("{not json")}
	s := New(adapter, zerolog.Nop())

	assert.Empty(s.GetEntries(Filter{}))
	assert.Len(s.GetCategories(), 5)
}

func TestNewPartialSnapshotFallsBackPerCollection(t *testing.T) {
	assert := assert.New(t)

	adapter := &memAdapter{data: []byte(`{"entries":[{"id":"e1","title":"kept","status":"pending","priority":"medium","repeat":"none"}]}`)}
	s := New(adapter, zerolog.Nop())

	assert.Len(s.GetEntries(Filter{}), 1)
	assert.Len(s.GetCategories(), 5)
	assert.Len(s.GetTrackers(), 3)
	_, ok := s.GetSetting("theme")
	assert.True(ok)
}

func TestRoundTripThroughAdapter(t *testing.T) {
	assert := assert.New(t)

	s, adapter := newTestStore(t)
	added := s.AddEntry(model.EntryDraft{Title: "persisted", Tags: []string{"keep"}})

	reloaded := New(adapter, zerolog.Nop())
	got := reloaded.GetEntry(added.ID)
	assert.NotNil(got)
	assert.Equal("persisted", got.Title)
	assert.Equal([]string{"keep"}, got.Tags)
}

func TestAddEntryEmitsAndPersists(t *testing.T) {
	assert := assert.New(t)

	s, adapter := newTestStore(t)
	changes, _ := countEvents(s)
	saves := adapter.saves

	e := s.AddEntry(model.EntryDraft{Title: "new"})

	assert.NotEmpty(e.ID)
	assert.Equal(1, *changes)
	assert.Equal(saves+1, adapter.saves)
}

func TestGetEntriesReturnsCopies(t *testing.T) {
	assert := assert.New(t)

	s, _ := newTestStore(t)
	e := s.AddEntry(model.EntryDraft{Title: "original"})

	list := s.GetEntries(Filter{})
	list[0].Title = "mutated"

	assert.Equal("original", s.GetEntry(e.ID).Title)
}

func TestUpdateEntry(t *testing.T) {
	assert := assert.New(t)

	s, _ := newTestStore(t)
	e := s.AddEntry(model.EntryDraft{Title: "before"})

	title := "after"
	updated, ok := s.UpdateEntry(e.ID, model.EntryPatch{Title: &title})
	assert.True(ok)
	assert.Equal("after", updated.Title)
	assert.Equal(testClock, updated.UpdatedAt.Time)
}

func TestUpdateUnknownIDIsNoOp(t *testing.T) {
	assert := assert.New(t)

	s, adapter := newTestStore(t)
	s.AddEntry(model.EntryDraft{Title: "stay"})

	changes, _ := countEvents(s)
	saves := adapter.saves
	depth := s.UndoDepth()

	title := "x"
	updated, ok := s.UpdateEntry("missing", model.EntryPatch{Title: &title})

	assert.False(ok)
	assert.Nil(updated)
	assert.Equal(0, *changes)
	assert.Equal(saves, adapter.saves)
	assert.Equal(depth, s.UndoDepth())
}

func TestDeleteUnknownIDIsNoOp(t *testing.T) {
	assert := assert.New(t)

	s, _ := newTestStore(t)
	s.AddEntry(model.EntryDraft{Title: "stay"})

	changes, _ := countEvents(s)
	removed, ok := s.DeleteEntry("missing")

	assert.False(ok)
	assert.Nil(removed)
	assert.Equal(0, *changes)
	assert.Len(s.GetEntries(Filter{}), 1)
}

func TestToggleComplete(t *testing.T) {
	assert := assert.New(t)

	s, _ := newTestStore(t)
	e := s.AddEntry(model.EntryDraft{Title: "flip"})

	done, ok := s.ToggleComplete(e.ID)
	assert.True(ok)
	assert.Equal(model.StatusCompleted, done.Status)
	assert.Equal(testClock, done.CompletedAt.Time)

	back, ok := s.ToggleComplete(e.ID)
	assert.True(ok)
	assert.Equal(model.StatusPending, back.Status)
	assert.True(back.CompletedAt.IsZero())
}

func TestCompletedAtInvariantOnUpdate(t *testing.T) {
	assert := assert.New(t)

	s, _ := newTestStore(t)
	e := s.AddEntry(model.EntryDraft{Title: "x"})

	completed := model.StatusCompleted
	got, _ := s.UpdateEntry(e.ID, model.EntryPatch{Status: &completed})
	assert.False(got.CompletedAt.IsZero(), "completing must stamp completedAt")

	skipped := model.StatusSkipped
	got, _ = s.UpdateEntry(e.ID, model.EntryPatch{Status: &skipped})
	assert.True(got.CompletedAt.IsZero(), "leaving completed must clear completedAt")
}

func TestDuplicateEntry(t *testing.T) {
	assert := assert.New(t)

	s, _ := newTestStore(t)
	e := s.AddEntry(model.EntryDraft{Title: "habit", Tags: []string{"a"}})
	s.ToggleComplete(e.ID)
	depth := s.UndoDepth()

	dup, ok := s.DuplicateEntry(e.ID)
	assert.True(ok)
	assert.NotEqual(e.ID, dup.ID)
	assert.Equal("habit (copy)", dup.Title)
	assert.Equal(model.StatusPending, dup.Status)
	assert.True(dup.CompletedAt.IsZero())
	assert.Equal([]string{"a"}, dup.Tags)

	// Duplication is additive, not destructive: nothing new to undo.
	assert.Equal(depth, s.UndoDepth())
}

func TestBulkUpdateStatus(t *testing.T) {
	assert := assert.New(t)

	s, _ := newTestStore(t)
	a := s.AddEntry(model.EntryDraft{Title: "a"})
	b := s.AddEntry(model.EntryDraft{Title: "b"})

	changes, _ := countEvents(s)
	count := s.BulkUpdateStatus([]string{a.ID, "missing", b.ID}, model.StatusCompleted)

	assert.Equal(2, count)
	assert.Equal(1, *changes, "one composite change event")
	assert.Equal(model.StatusCompleted, s.GetEntry(a.ID).Status)
	assert.False(s.GetEntry(a.ID).CompletedAt.IsZero())
	assert.Equal(model.StatusCompleted, s.GetEntry(b.ID).Status)
}

func TestBulkUpdateStatusAllUnknownIsNoOp(t *testing.T) {
	assert := assert.New(t)

	s, _ := newTestStore(t)
	s.AddEntry(model.EntryDraft{Title: "stay"})

	changes, _ := countEvents(s)
	depth := s.UndoDepth()
	count := s.BulkUpdateStatus([]string{"nope"}, model.StatusCompleted)

	assert.Equal(0, count)
	assert.Equal(0, *changes)
	assert.Equal(depth, s.UndoDepth())
}

func TestBulkDeleteSkipsUnknownAndUndoesAtomically(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	s, _ := newTestStore(t)
	a := s.AddEntry(model.EntryDraft{Title: "a"})
	b := s.AddEntry(model.EntryDraft{Title: "b"})
	c := s.AddEntry(model.EntryDraft{Title: "c"})

	count := s.BulkDelete([]string{a.ID, "missing", c.ID})
	assert.Equal(2, count)

	left := s.GetEntries(Filter{Sort: SortOldest})
	require.Len(left, 1)
	assert.Equal(b.ID, left[0].ID)

	kind, restored, ok := s.Undo()
	require.True(ok)
	assert.Equal(UndoBulkDelete, kind)
	assert.Equal(2, restored)

	after := s.GetEntries(Filter{Sort: SortOldest})
	require.Len(after, 3)
	assert.Equal([]string{a.ID, b.ID, c.ID}, []string{after[0].ID, after[1].ID, after[2].ID})
}

func TestCategoryCRUDAndReferenceNulling(t *testing.T) {
	assert := assert.New(t)

	s, _ := newTestStore(t)
	cat := s.AddCategory("Reading", "#9a7bd4", "📖")
	assert.NotEmpty(cat.ID)
	assert.Equal(cat.ID, s.GetCategoryByName("reading").ID)

	x := s.AddEntry(model.EntryDraft{Title: "x", Category: cat.ID})
	y := s.AddEntry(model.EntryDraft{Title: "y", Category: cat.ID, Tags: []string{"keep"}})

	assert.True(s.DeleteCategory(cat.ID))
	assert.Nil(s.GetCategoryByID(cat.ID))

	gotX := s.GetEntry(x.ID)
	gotY := s.GetEntry(y.ID)
	assert.Empty(gotX.Category)
	assert.Empty(gotY.Category)
	assert.Equal("y", gotY.Title, "other fields untouched")
	assert.Equal([]string{"keep"}, gotY.Tags)
}

func TestDeleteUnknownCategoryIsNoOp(t *testing.T) {
	assert := assert.New(t)

	s, _ := newTestStore(t)
	changes, _ := countEvents(s)

	assert.False(s.DeleteCategory("missing"))
	assert.Equal(0, *changes)
}

func TestTrackerReferenceNulling(t *testing.T) {
	assert := assert.New(t)

	s, _ := newTestStore(t)
	trk := s.AddTracker("Reading", "", "")
	e := s.AddEntry(model.EntryDraft{Title: "x", TrackerID: trk.ID})

	assert.True(s.DeleteTracker(trk.ID))
	assert.Empty(s.GetEntry(e.ID).TrackerID)
}

func TestSettingsEmitDistinctEvent(t *testing.T) {
	assert := assert.New(t)

	s, _ := newTestStore(t)
	changes, settings := countEvents(s)

	var got SettingsEvent
	s.Subscribe(func(ev Event) {
		if se, ok := ev.(SettingsEvent); ok {
			got = se
		}
	})

	s.SetSetting("theme", "dark")

	assert.Equal(0, *changes, "settings writes do not emit the general change event")
	assert.Equal(1, *settings)
	assert.Equal("theme", got.Key)
	assert.Equal("dark", got.Value)

	v, ok := s.GetSetting("theme")
	assert.True(ok)
	assert.Equal("dark", v)
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	assert := assert.New(t)

	s, _ := newTestStore(t)
	count := 0
	cancel := s.Subscribe(func(Event) { count++ })

	s.AddEntry(model.EntryDraft{Title: "one"})
	cancel()
	s.AddEntry(model.EntryDraft{Title: "two"})

	assert.Equal(1, count)
}

func TestImportDataReplacesPresentCollections(t *testing.T) {
	assert := assert.New(t)

	s, _ := newTestStore(t)
	s.AddEntry(model.EntryDraft{Title: "old"})
	s.SetSetting("theme", "light")

	changes, _ := countEvents(s)
	s.ImportData(model.Snapshot{
		Entries:  []*model.Entry{{ID: "imp", Title: "imported"}},
		Settings: model.Settings{"accent": "teal"},
	})

	assert.Equal(1, *changes)
	assert.Len(s.GetEntries(Filter{}), 1)
	assert.Equal("imported", s.GetEntry("imp").Title)

	// Missing collections untouched; settings merged, not replaced.
	assert.Len(s.GetCategories(), 5)
	theme, _ := s.GetSetting("theme")
	assert.Equal("light", theme)
	accent, _ := s.GetSetting("accent")
	assert.Equal("teal", accent)
}

func TestClearAllKeepsCategoriesAndIsUndoable(t *testing.T) {
	assert := assert.New(t)

	s, _ := newTestStore(t)
	a := s.AddEntry(model.EntryDraft{Title: "a"})
	b := s.AddEntry(model.EntryDraft{Title: "b"})

	s.ClearAll()
	assert.Empty(s.GetEntries(Filter{}))
	assert.Len(s.GetCategories(), 5)

	_, restored, ok := s.Undo()
	assert.True(ok)
	assert.Equal(2, restored)

	after := s.GetEntries(Filter{Sort: SortOldest})
	assert.Equal([]string{a.ID, b.ID}, []string{after[0].ID, after[1].ID})
}

func TestSaveFailureKeepsMemoryState(t *testing.T) {
	assert := assert.New(t)

	s, adapter := newTestStore(t)
	adapter.failSave = true

	e := s.AddEntry(model.EntryDraft{Title: "survives"})
	assert.NotNil(s.GetEntry(e.ID), "in-memory state is the source of truth after a failed save")
}

func TestSnapshotIsDeepCopy(t *testing.T) {
	assert := assert.New(t)

	s, _ := newTestStore(t)
	e := s.AddEntry(model.EntryDraft{Title: "original"})

	snap := s.Snapshot()
	snap.Entries[0].Title = "mutated"
	snap.Categories[0].Name = "mutated"
	snap.Settings["theme"] = "mutated"

	assert.Equal("original", s.GetEntry(e.ID).Title)
	assert.Equal("Tasks", s.GetCategories()[0].Name)
	theme, _ := s.GetSetting("theme")
	assert.Equal("light", theme)
}

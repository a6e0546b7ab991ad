package store

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/tracker/pkg/model"
)

func TestUndoEmptyStack(t *testing.T) {
	s, _ := newTestStore(t)

	_, _, ok := s.Undo()
	assert.False(t, ok)
	assert.Equal(t, 0, s.UndoDepth())
}

func TestUndoUpdateRestoresPriorExactly(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	s, _ := newTestStore(t)
	before := s.AddEntry(model.EntryDraft{Title: "read", Tags: []string{"books"}, Priority: model.PriorityHigh})

	title := "changed"
	tags := []string{"other"}
	_, ok := s.UpdateEntry(before.ID, model.EntryPatch{Title: &title, Tags: &tags})
	require.True(ok)

	kind, restored, ok := s.Undo()
	require.True(ok)
	assert.Equal(UndoUpdate, kind)
	assert.Equal(1, restored)
	assert.Equal(before, s.GetEntry(before.ID))
}

func TestUndoDeleteReinsertsInPlace(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	s, _ := newTestStore(t)
	a := s.AddEntry(model.EntryDraft{Title: "a"})
	b := s.AddEntry(model.EntryDraft{Title: "b"})
	c := s.AddEntry(model.EntryDraft{Title: "c"})

	_, ok := s.DeleteEntry(b.ID)
	require.True(ok)

	kind, restored, ok := s.Undo()
	require.True(ok)
	assert.Equal(UndoDelete, kind)
	assert.Equal(1, restored)

	after := s.GetEntries(Filter{Sort: SortCustom})
	require.Len(after, 3)
	assert.Equal([]string{a.ID, b.ID, c.ID}, []string{after[0].ID, after[1].ID, after[2].ID})
}

func TestUndoBulkUpdateRestoresEveryPrior(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	s, _ := newTestStore(t)
	a := s.AddEntry(model.EntryDraft{Title: "a"})
	b := s.AddEntry(model.EntryDraft{Title: "b", Status: model.StatusCompleted})

	s.BulkUpdateStatus([]string{a.ID, b.ID}, model.StatusSkipped)

	kind, restored, ok := s.Undo()
	require.True(ok)
	assert.Equal(UndoBulkUpdate, kind)
	assert.Equal(2, restored)
	assert.Equal(model.StatusPending, s.GetEntry(a.ID).Status)
	assert.Equal(model.StatusCompleted, s.GetEntry(b.ID).Status)
	assert.False(s.GetEntry(b.ID).CompletedAt.IsZero())
}

func TestUndoStackEvictsOldestAtCapacity(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	s, _ := newTestStore(t)
	e := s.AddEntry(model.EntryDraft{Title: "t0"})

	for i := 1; i <= undoCapacity+5; i++ {
		title := fmt.Sprintf("t%d", i)
		_, ok := s.UpdateEntry(e.ID, model.EntryPatch{Title: &title})
		require.True(ok)
	}
	assert.Equal(undoCapacity, s.UndoDepth())

	// Unwinding the whole stack lands on the state the oldest surviving
	// record captured, not the original.
	for s.UndoDepth() > 0 {
		_, _, ok := s.Undo()
		require.True(ok)
	}
	assert.Equal("t5", s.GetEntry(e.ID).Title)

	_, _, ok := s.Undo()
	assert.False(ok)
}

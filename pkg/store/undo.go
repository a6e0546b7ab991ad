package store

import "tableflip.dev/tracker/pkg/model"

// undoCapacity bounds the undo stack. The oldest record is evicted first;
// Undo consumes newest-first.
const undoCapacity = 20

// UndoKind names the operation an undo record reverses.
type UndoKind string

const (
	UndoUpdate     UndoKind = "update"
	UndoDelete     UndoKind = "delete"
	UndoBulkUpdate UndoKind = "bulk-update"
	UndoBulkDelete UndoKind = "bulk-delete"
)

// undoRecord captures exactly the data needed to reverse one destructive
// operation. One variant per capturable mutation.
type undoRecord interface {
	kind() UndoKind
}

type undoUpdate struct {
	prior *model.Entry
}

// removal pairs a deleted entry with the index it was removed from so an
// undo can reinsert it in place.
type removal struct {
	entry *model.Entry
	index int
}

type undoDelete struct {
	removed removal
}

type undoBulkUpdate struct {
	priors []*model.Entry
}

type undoBulkDelete struct {
	removed []removal
}

func (undoUpdate) kind() UndoKind     { return UndoUpdate }
func (undoDelete) kind() UndoKind     { return UndoDelete }
func (undoBulkUpdate) kind() UndoKind { return UndoBulkUpdate }
func (undoBulkDelete) kind() UndoKind { return UndoBulkDelete }

func (s *Store) pushUndo(r undoRecord) {
	s.undoStack = append(s.undoStack, r)
	if len(s.undoStack) > undoCapacity {
		s.undoStack = s.undoStack[1:]
	}
}

// Undo reverses the most recent destructive operation. It returns the kind of
// operation undone and the number of entries restored, or ok=false when the
// stack is empty. Bulk reversals restore every captured entry in one step.
// Undo is itself not undoable.
func (s *Store) Undo() (kind UndoKind, restored int, ok bool) {
	if len(s.undoStack) == 0 {
		return "", 0, false
	}
	last := s.undoStack[len(s.undoStack)-1]
	s.undoStack = s.undoStack[:len(s.undoStack)-1]

	switch r := last.(type) {
	case undoUpdate:
		restored = s.restorePrior(r.prior)
	case undoDelete:
		s.reinsert(r.removed)
		restored = 1
	case undoBulkUpdate:
		for _, prior := range r.priors {
			restored += s.restorePrior(prior)
		}
	case undoBulkDelete:
		// Removals were captured in deletion order with the index each entry
		// held at deletion time; reinserting in reverse order is the exact
		// inverse.
		for i := len(r.removed) - 1; i >= 0; i-- {
			s.reinsert(r.removed[i])
		}
		restored = len(r.removed)
	}

	s.persist()
	s.bus.publish(ChangeEvent{})
	return last.kind(), restored, true
}

// restorePrior swaps a captured pre-update value back in place of the current
// entry with the same id.
func (s *Store) restorePrior(prior *model.Entry) int {
	for i, e := range s.entries {
		if e.ID == prior.ID {
			s.entries[i] = prior
			return 1
		}
	}
	return 0
}

// reinsert puts a deleted entry back at its captured index, clamped to the
// current collection length.
func (s *Store) reinsert(rm removal) {
	idx := rm.index
	if idx < 0 {
		idx = 0
	}
	if idx > len(s.entries) {
		idx = len(s.entries)
	}
	s.entries = append(s.entries, nil)
	copy(s.entries[idx+1:], s.entries[idx:])
	s.entries[idx] = rm.entry
}

// UndoDepth reports how many operations are currently reversible.
func (s *Store) UndoDepth() int {
	return len(s.undoStack)
}

package remove

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/tracker/pkg/store"
)

// Remove deletes one or more entries. A single id is an ordinary delete; more
// than one becomes a bulk delete reversible with a single undo.
type Remove struct {
	IDs []string

	Store *store.Store
}

func (n *Remove) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not remove, no store")
	}
	if len(n.IDs) == 0 {
		return errors.New("no entry ids given")
	}

	if len(n.IDs) == 1 {
		removed, ok := n.Store.DeleteEntry(n.IDs[0])
		if !ok {
			return errors.New("entry not found: " + n.IDs[0])
		}
		fmt.Printf("removed %q\n", removed.Title)
		return nil
	}

	count := n.Store.BulkDelete(n.IDs)
	fmt.Printf("removed %d of %d entries\n", count, len(n.IDs))
	return nil
}

// Package mark provides the runner logic for bulk status changes.
package mark

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/tracker/pkg/model"
	"tableflip.dev/tracker/pkg/store"
)

// Mark sets the same status on a batch of entries in one undoable step.
type Mark struct {
	IDs    []string
	Status model.Status

	Store *store.Store
}

func (n *Mark) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not mark, no store")
	}
	if !n.Status.Valid() {
		return fmt.Errorf("invalid status %q", n.Status)
	}
	if len(n.IDs) == 0 {
		return errors.New("no entry ids given")
	}

	count := n.Store.BulkUpdateStatus(n.IDs, n.Status)
	fmt.Printf("marked %d of %d entries %s\n", count, len(n.IDs), n.Status)
	return nil
}

// Package complete provides the runner logic for toggling entry completion.
package complete

import (
	"context"
	"errors"

	"tableflip.dev/tracker/pkg/model"
	"tableflip.dev/tracker/pkg/printers"
	"tableflip.dev/tracker/pkg/store"
)

// Complete flips an entry between pending and completed.
type Complete struct {
	ID string

	Store *store.Store
}

// Do executes the toggle for the configured entry ID.
func (n *Complete) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not complete, no store")
	}

	e, ok := n.Store.ToggleComplete(n.ID)
	if !ok {
		return errors.New("entry not found: " + n.ID)
	}

	pp := printers.PrettyPrint{ShowID: true}
	if e.Status == model.StatusCompleted {
		pp.Title("completed")
	} else {
		pp.Title("reopened")
	}
	pp.Entries([]*model.Entry{e}, n.Store.GetCategoryName)
	return nil
}

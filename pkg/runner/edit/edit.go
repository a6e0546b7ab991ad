package edit

import (
	"context"
	"errors"

	"tableflip.dev/tracker/pkg/model"
	"tableflip.dev/tracker/pkg/printers"
	"tableflip.dev/tracker/pkg/store"
)

type Edit struct {
	ID    string
	Patch model.EntryPatch

	Store *store.Store
}

func (n *Edit) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not edit, no store")
	}
	if n.Patch.IsZero() {
		return errors.New("nothing to change")
	}

	e, ok := n.Store.UpdateEntry(n.ID, n.Patch)
	if !ok {
		return errors.New("entry not found: " + n.ID)
	}

	pp := printers.PrettyPrint{ShowID: true}
	pp.Title("updated")
	pp.Entries([]*model.Entry{e}, n.Store.GetCategoryName)
	return nil
}

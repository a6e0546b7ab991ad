package duplicate

import (
	"context"
	"errors"

	"tableflip.dev/tracker/pkg/model"
	"tableflip.dev/tracker/pkg/printers"
	"tableflip.dev/tracker/pkg/store"
)

type Duplicate struct {
	ID string

	Store *store.Store
}

func (n *Duplicate) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not duplicate, no store")
	}

	dup, ok := n.Store.DuplicateEntry(n.ID)
	if !ok {
		return errors.New("entry not found: " + n.ID)
	}

	pp := printers.PrettyPrint{ShowID: true}
	pp.Title("duplicated")
	pp.Entries([]*model.Entry{dup}, n.Store.GetCategoryName)
	return nil
}

package add

import (
	"context"
	"errors"

	"tableflip.dev/tracker/pkg/model"
	"tableflip.dev/tracker/pkg/printers"
	"tableflip.dev/tracker/pkg/store"
)

type Add struct {
	Draft model.EntryDraft

	Store *store.Store
}

func (n *Add) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not add, no store")
	}

	// Resolve a category name to its id if one matches.
	if n.Draft.Category != "" {
		if c := n.Store.GetCategoryByName(n.Draft.Category); c != nil {
			n.Draft.Category = c.ID
		}
	}

	e := n.Store.AddEntry(n.Draft)

	pp := printers.PrettyPrint{}
	pp.Title("added")
	pp.Entries([]*model.Entry{e}, n.Store.GetCategoryName)
	return nil
}

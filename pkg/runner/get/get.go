package get

import (
	"context"
	"errors"

	"tableflip.dev/tracker/pkg/printers"
	"tableflip.dev/tracker/pkg/store"
)

type Get struct {
	Filter store.Filter
	ShowID bool

	Store *store.Store
}

func (n *Get) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not get, no store")
	}

	entries := n.Store.GetEntries(n.Filter)

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.TitleWithCount("entries", len(entries))
	pp.Entries(entries, n.Store.GetCategoryName)
	return nil
}

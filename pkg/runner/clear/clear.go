package clear

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/tracker/pkg/store"
)

// Clear empties the entry collection. Categories and trackers survive, and a
// single undo restores everything.
type Clear struct {
	Store *store.Store
}

func (n *Clear) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not clear, no store")
	}

	count := len(n.Store.GetEntries(store.Filter{Status: store.StatusAll}))
	n.Store.ClearAll()
	fmt.Printf("cleared %d entries (undo to restore)\n", count)
	return nil
}

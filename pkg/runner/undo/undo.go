package undo

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/tracker/pkg/store"
)

// Undo reverses the most recent destructive store operation.
type Undo struct {
	Store *store.Store
}

func (n *Undo) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not undo, no store")
	}

	kind, restored, ok := n.Store.Undo()
	if !ok {
		fmt.Println("nothing to undo")
		return nil
	}

	switch restored {
	case 1:
		fmt.Printf("undid %s (1 entry restored)\n", kind)
	default:
		fmt.Printf("undid %s (%d entries restored)\n", kind, restored)
	}
	return nil
}

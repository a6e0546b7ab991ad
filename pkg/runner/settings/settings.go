// Package settings provides runner logic for the settings key-value map.
package settings

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/tracker/pkg/store"
)

// Get prints the value stored under a key.
type Get struct {
	Key string

	Store *store.Store
}

func (n *Get) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("no store")
	}
	v, ok := n.Store.GetSetting(n.Key)
	if !ok {
		return fmt.Errorf("no setting %q", n.Key)
	}
	fmt.Printf("%s = %v\n", n.Key, v)
	return nil
}

// Set stores a value under a key.
type Set struct {
	Key   string
	Value string

	Store *store.Store
}

func (n *Set) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("no store")
	}
	n.Store.SetSetting(n.Key, n.Value)
	fmt.Printf("%s = %s\n", n.Key, n.Value)
	return nil
}

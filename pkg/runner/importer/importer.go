// Package importer provides runner logic for restoring a backup file.
package importer

import (
	"context"
	"errors"
	"fmt"
	"os"

	"tableflip.dev/tracker/pkg/export"
	"tableflip.dev/tracker/pkg/store"
)

// Import validates a backup file and replaces the store's collections with
// its contents. Invalid payloads leave the store untouched.
type Import struct {
	Path string

	Store *store.Store
}

func (n *Import) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not import, no store")
	}

	data, err := os.ReadFile(n.Path)
	if err != nil {
		return fmt.Errorf("read %s: %w", n.Path, err)
	}

	snap, counts, err := export.ValidateImport(data)
	if err != nil {
		return err
	}

	n.Store.ImportData(snap)
	fmt.Printf("imported %d entries, %d categories, %d trackers\n",
		counts.Entries, counts.Categories, counts.Trackers)
	return nil
}

// Package export provides runner logic for backup and CSV downloads.
package export

import (
	"context"
	"errors"
	"fmt"
	"os"

	"tableflip.dev/tracker/pkg/export"
	"tableflip.dev/tracker/pkg/store"
)

const (
	FormatJSON = "json"
	FormatCSV  = "csv"
)

// Export writes the store's state to a file or stdout, either as a full JSON
// snapshot or as a tabular CSV of entries.
type Export struct {
	Format string
	Output string

	Store *store.Store
}

func (n *Export) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not export, no store")
	}

	out := os.Stdout
	if n.Output != "" {
		f, err := os.Create(n.Output)
		if err != nil {
			return fmt.Errorf("create %s: %w", n.Output, err)
		}
		defer f.Close()
		out = f
	}

	switch n.Format {
	case FormatJSON, "":
		data, err := export.Snapshot(n.Store.Snapshot())
		if err != nil {
			return err
		}
		if _, err := out.Write(data); err != nil {
			return err
		}
		_, err = fmt.Fprintln(out)
		return err
	case FormatCSV:
		entries := n.Store.GetEntries(store.Filter{Status: store.StatusAll})
		if len(entries) == 0 {
			return errors.New("nothing to export yet")
		}
		return export.EntriesCSV(out, entries, n.Store.GetCategoryName)
	}
	return fmt.Errorf("unknown export format %q", n.Format)
}

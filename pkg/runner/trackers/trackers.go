// Package trackers provides runner logic for tracker management.
package trackers

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/tracker/pkg/model"
	"tableflip.dev/tracker/pkg/store"
)

// List prints every tracker.
type List struct {
	Store *store.Store
}

func (n *List) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("no store")
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("ID", "ICON", "NAME", "CATEGORY")
	for _, t := range n.Store.GetTrackers() {
		tbl.AddRow(t.ID, t.Icon, t.Name, n.Store.GetCategoryName(t.CategoryID))
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
	return nil
}

// Add creates a tracker.
type Add struct {
	Name     string
	Category string
	Icon     string

	Store *store.Store
}

func (n *Add) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("no store")
	}

	categoryID := n.Category
	if categoryID != "" {
		if c := n.Store.GetCategoryByName(n.Category); c != nil {
			categoryID = c.ID
		}
	}

	t := n.Store.AddTracker(n.Name, categoryID, n.Icon)
	fmt.Printf("added tracker %q (%s)\n", t.Name, t.ID)
	return nil
}

// Edit updates a tracker in place.
type Edit struct {
	ID    string
	Patch model.TrackerPatch

	Store *store.Store
}

func (n *Edit) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("no store")
	}
	t, ok := n.Store.UpdateTracker(n.ID, n.Patch)
	if !ok {
		return errors.New("tracker not found: " + n.ID)
	}
	fmt.Printf("updated tracker %q\n", t.Name)
	return nil
}

// Remove deletes a tracker. Entries that referenced it survive with the
// reference cleared.
type Remove struct {
	ID string

	Store *store.Store
}

func (n *Remove) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("no store")
	}
	if !n.Store.DeleteTracker(n.ID) {
		return errors.New("tracker not found: " + n.ID)
	}
	fmt.Printf("removed tracker %s\n", n.ID)
	return nil
}

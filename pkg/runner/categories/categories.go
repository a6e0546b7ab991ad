// Package categories provides runner logic for category management.
package categories

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/tracker/pkg/model"
	"tableflip.dev/tracker/pkg/store"
)

// List prints every category.
type List struct {
	Store *store.Store
}

func (n *List) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("no store")
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("ID", "ICON", "NAME", "COLOR")
	for _, c := range n.Store.GetCategories() {
		tbl.AddRow(c.ID, c.Icon, c.Name, c.Color)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
	return nil
}

// Add creates a category.
type Add struct {
	Name  string
	Color string
	Icon  string

	Store *store.Store
}

func (n *Add) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("no store")
	}
	c := n.Store.AddCategory(n.Name, n.Color, n.Icon)
	fmt.Printf("added category %q (%s)\n", c.Name, c.ID)
	return nil
}

// Edit updates a category in place.
type Edit struct {
	ID    string
	Patch model.CategoryPatch

	Store *store.Store
}

func (n *Edit) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("no store")
	}
	c, ok := n.Store.UpdateCategory(n.ID, n.Patch)
	if !ok {
		return errors.New("category not found: " + n.ID)
	}
	fmt.Printf("updated category %q\n", c.Name)
	return nil
}

// Remove deletes a category. Entries that referenced it survive with the
// reference cleared.
type Remove struct {
	ID string

	Store *store.Store
}

func (n *Remove) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("no store")
	}
	if !n.Store.DeleteCategory(n.ID) {
		return errors.New("category not found: " + n.ID)
	}
	fmt.Printf("removed category %s\n", n.ID)
	return nil
}

package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/tracker/pkg/model"
	"tableflip.dev/tracker/pkg/runner/categories"
)

func addCategories(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "category",
		Aliases: []string{"categories", "cat"},
		Short:   "Manage categories",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addCategoryList(cmd)
	addCategoryAdd(cmd)
	addCategoryEdit(cmd)
	addCategoryRemove(cmd)

	topLevel.AddCommand(cmd)
}

func addCategoryList(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List categories",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadStore()
			if err != nil {
				return oo.HandleError(err)
			}
			r := categories.List{Store: s}
			return oo.HandleError(r.Do(context.Background()))
		},
	}
	topLevel.AddCommand(cmd)
}

func addCategoryAdd(topLevel *cobra.Command) {
	var colorFlag, icon string

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a category",
		Example: `
tracker category add Reading --color="#9a7bd4" --icon="📖"
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadStore()
			if err != nil {
				return oo.HandleError(err)
			}
			r := categories.Add{
				Name:  strings.Join(args, " "),
				Color: colorFlag,
				Icon:  icon,
				Store: s,
			}
			return oo.HandleError(r.Do(context.Background()))
		},
	}
	cmd.Flags().StringVar(&colorFlag, "color", "", "Display color, example: #5a9ae6.")
	cmd.Flags().StringVar(&icon, "icon", "", "Display icon.")
	topLevel.AddCommand(cmd)
}

func addCategoryEdit(topLevel *cobra.Command) {
	var name, colorFlag, icon string

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var patch model.CategoryPatch
			if cmd.Flags().Changed("name") {
				patch.Name = &name
			}
			if cmd.Flags().Changed("color") {
				patch.Color = &colorFlag
			}
			if cmd.Flags().Changed("icon") {
				patch.Icon = &icon
			}
			s, err := loadStore()
			if err != nil {
				return oo.HandleError(err)
			}
			r := categories.Edit{
				ID:    args[0],
				Patch: patch,
				Store: s,
			}
			return oo.HandleError(r.Do(context.Background()))
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "New display name.")
	cmd.Flags().StringVar(&colorFlag, "color", "", "New display color.")
	cmd.Flags().StringVar(&icon, "icon", "", "New display icon.")
	topLevel.AddCommand(cmd)
}

func addCategoryRemove(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "remove <id>",
		Aliases: []string{"rm"},
		Short:   "Remove a category; entries that used it keep everything else",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadStore()
			if err != nil {
				return oo.HandleError(err)
			}
			r := categories.Remove{ID: args[0], Store: s}
			return oo.HandleError(r.Do(context.Background()))
		},
	}
	topLevel.AddCommand(cmd)
}

package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/tracker/pkg/model"
	"tableflip.dev/tracker/pkg/runner/trackers"
)

func addTrackers(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "trackers",
		Aliases: []string{"trk"},
		Short:   "Manage trackers",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addTrackerList(cmd)
	addTrackerAdd(cmd)
	addTrackerEdit(cmd)
	addTrackerRemove(cmd)

	topLevel.AddCommand(cmd)
}

func addTrackerList(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List trackers",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadStore()
			if err != nil {
				return oo.HandleError(err)
			}
			r := trackers.List{Store: s}
			return oo.HandleError(r.Do(context.Background()))
		},
	}
	topLevel.AddCommand(cmd)
}

func addTrackerAdd(topLevel *cobra.Command) {
	var category, icon string

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a tracker",
		Example: `
tracker trackers add Reading --category Study
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadStore()
			if err != nil {
				return oo.HandleError(err)
			}
			r := trackers.Add{
				Name:     strings.Join(args, " "),
				Category: category,
				Icon:     icon,
				Store:    s,
			}
			return oo.HandleError(r.Do(context.Background()))
		},
	}
	cmd.Flags().StringVarP(&category, "category", "c", "", "Category id or name.")
	cmd.Flags().StringVar(&icon, "icon", "", "Display icon.")
	topLevel.AddCommand(cmd)
}

func addTrackerEdit(topLevel *cobra.Command) {
	var name, category, icon string

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a tracker",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var patch model.TrackerPatch
			if cmd.Flags().Changed("name") {
				patch.Name = &name
			}
			if cmd.Flags().Changed("category") {
				patch.CategoryID = &category
			}
			if cmd.Flags().Changed("icon") {
				patch.Icon = &icon
			}
			s, err := loadStore()
			if err != nil {
				return oo.HandleError(err)
			}
			r := trackers.Edit{
				ID:    args[0],
				Patch: patch,
				Store: s,
			}
			return oo.HandleError(r.Do(context.Background()))
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "New display name.")
	cmd.Flags().StringVarP(&category, "category", "c", "", "New category id.")
	cmd.Flags().StringVar(&icon, "icon", "", "New display icon.")
	topLevel.AddCommand(cmd)
}

func addTrackerRemove(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "remove <id>",
		Aliases: []string{"rm"},
		Short:   "Remove a tracker; entries that used it keep everything else",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadStore()
			if err != nil {
				return oo.HandleError(err)
			}
			r := trackers.Remove{ID: args[0], Store: s}
			return oo.HandleError(r.Do(context.Background()))
		},
	}
	topLevel.AddCommand(cmd)
}

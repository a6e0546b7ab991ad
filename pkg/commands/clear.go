package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/tracker/pkg/runner/clear"
)

func addClear(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete every entry (categories and trackers survive)",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadStore()
			if err != nil {
				return oo.HandleError(err)
			}
			r := clear.Clear{Store: s}
			return oo.HandleError(r.Do(context.Background()))
		},
	}

	topLevel.AddCommand(cmd)
}

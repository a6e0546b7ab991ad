package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/tracker/pkg/runner/duplicate"
)

func addDuplicate(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "duplicate <id>",
		Aliases: []string{"dup"},
		Short:   "Clone an entry as a fresh pending copy",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadStore()
			if err != nil {
				return oo.HandleError(err)
			}
			r := duplicate.Duplicate{
				ID:    resolveID(s, args[0]),
				Store: s,
			}
			return oo.HandleError(r.Do(context.Background()))
		},
	}

	topLevel.AddCommand(cmd)
}

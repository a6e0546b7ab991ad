package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/tracker/pkg/runner/remove"
)

func addRemove(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "remove <id> [id...]",
		Aliases: []string{"rm", "delete"},
		Short:   "Delete entries (reversible with undo)",
		Example: `
tracker remove 171dff69
tracker remove 171dff69 28ab3c01 9f2e11d4
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadStore()
			if err != nil {
				return oo.HandleError(err)
			}
			r := remove.Remove{
				IDs:   resolveIDs(s, args),
				Store: s,
			}
			return oo.HandleError(r.Do(context.Background()))
		},
	}

	topLevel.AddCommand(cmd)
}

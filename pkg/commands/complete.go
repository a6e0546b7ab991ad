package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/tracker/pkg/runner/complete"
)

func addComplete(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "complete <id>",
		Short: "Toggle an entry between pending and completed",
		Example: `
tracker complete 171dff69
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadStore()
			if err != nil {
				return oo.HandleError(err)
			}
			r := complete.Complete{
				ID:    resolveID(s, args[0]),
				Store: s,
			}
			return oo.HandleError(r.Do(context.Background()))
		},
	}

	topLevel.AddCommand(cmd)
}

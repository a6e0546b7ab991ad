package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/tracker/pkg/model"
	"tableflip.dev/tracker/pkg/runner/mark"
)

func addMark(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "mark <status> <id> [id...]",
		Short: "Set the same status on several entries in one undoable step",
		Example: `
tracker mark completed 171dff69 28ab3c01
tracker mark archived 9f2e11d4
`,
		ValidArgs: []string{
			string(model.StatusPending),
			string(model.StatusCompleted),
			string(model.StatusSkipped),
			string(model.StatusArchived),
		},
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadStore()
			if err != nil {
				return oo.HandleError(err)
			}
			r := mark.Mark{
				IDs:    resolveIDs(s, args[1:]),
				Status: model.Status(args[0]),
				Store:  s,
			}
			return oo.HandleError(r.Do(context.Background()))
		},
	}

	topLevel.AddCommand(cmd)
}

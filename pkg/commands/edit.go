package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/tracker/pkg/commands/options"
	"tableflip.dev/tracker/pkg/runner/edit"
)

func addEdit(topLevel *cobra.Command) {
	eo := &options.EntryOptions{}

	cmd := &cobra.Command{
		Use:   "edit <id> [new title]",
		Short: "Update fields on an entry",
		Example: `
tracker edit 171dff69 --priority high --due="2026-03-01"
tracker edit 171dff69 "a better title"
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			patch, err := eo.Patch(cmd, strings.Join(args[1:], " "))
			if err != nil {
				return oo.HandleError(err)
			}
			s, err := loadStore()
			if err != nil {
				return oo.HandleError(err)
			}
			r := edit.Edit{
				ID:    resolveID(s, args[0]),
				Patch: patch,
				Store: s,
			}
			return oo.HandleError(r.Do(context.Background()))
		},
	}

	options.AddEntryArgs(cmd, eo)

	topLevel.AddCommand(cmd)
}

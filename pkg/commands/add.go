package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/tracker/pkg/commands/options"
	"tableflip.dev/tracker/pkg/runner/add"
)

func addAdd(topLevel *cobra.Command) {
	eo := &options.EntryOptions{}

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a new entry",
		Example: `
tracker add "morning run" --category Habits --tag fitness
tracker add "file taxes" --due="2026-04-15" --priority high
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("a title is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			draft, err := eo.Draft(strings.Join(args, " "))
			if err != nil {
				return oo.HandleError(err)
			}
			s, err := loadStore()
			if err != nil {
				return oo.HandleError(err)
			}
			r := add.Add{
				Draft: draft,
				Store: s,
			}
			return oo.HandleError(r.Do(context.Background()))
		},
	}

	options.AddEntryArgs(cmd, eo)

	topLevel.AddCommand(cmd)
}

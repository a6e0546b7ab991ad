package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/tracker/pkg/commands/options"
	"tableflip.dev/tracker/pkg/runner/get"
)

func addGet(topLevel *cobra.Command) {
	fo := &options.FilterOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "get",
		Short: "List entries, filtered and sorted",
		Example: `
tracker get
tracker get --status pending --priority high
tracker get --query "tax" --sort dueDate --show-id
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadStore()
			if err != nil {
				return oo.HandleError(err)
			}
			filter, err := fo.Filter(s)
			if err != nil {
				return oo.HandleError(err)
			}
			r := get.Get{
				Filter: filter,
				ShowID: io.ShowID,
				Store:  s,
			}
			return oo.HandleError(r.Do(context.Background()))
		},
	}

	options.AddFilterArgs(cmd, fo)
	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}

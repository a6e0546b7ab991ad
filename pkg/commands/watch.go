package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"tableflip.dev/tracker/pkg/commands/options"
	"tableflip.dev/tracker/pkg/runner/watch"
	"tableflip.dev/tracker/pkg/store"
)

func addWatch(topLevel *cobra.Command) {
	fo := &options.FilterOptions{}

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Follow the entry list, re-rendering when the data changes",
		Example: `
tracker watch --status pending
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			adapter, err := loadPersistence()
			if err != nil {
				return oo.HandleError(err)
			}

			filter, err := fo.Filter(store.New(adapter, newLogger()))
			if err != nil {
				return oo.HandleError(err)
			}

			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			r := watch.Watch{
				Adapter: adapter,
				Filter:  filter,
				Log:     newLogger(),
			}
			return oo.HandleError(r.Do(ctx))
		},
	}

	options.AddFilterArgs(cmd, fo)

	topLevel.AddCommand(cmd)
}

package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/tracker/pkg/commands/options"
	"tableflip.dev/tracker/pkg/runner/stats"
	"tableflip.dev/tracker/pkg/timeutil"
)

func addStats(topLevel *cobra.Command) {
	wo := &options.WindowOptions{}

	cmd := &cobra.Command{
		Use:     "stats",
		Aliases: []string{"report"},
		Short:   "Show streaks, completion rates, and breakdowns",
		Example: `
tracker stats
tracker stats --window 4w
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			days, label, err := timeutil.ParseWindowDays(wo.Window)
			if err != nil {
				return oo.HandleError(err)
			}
			s, err := loadStore()
			if err != nil {
				return oo.HandleError(err)
			}
			r := stats.Stats{
				WindowDays:  days,
				WindowLabel: label,
				Store:       s,
			}
			return oo.HandleError(r.Do(context.Background()))
		},
	}

	options.AddWindowArgs(cmd, wo)

	topLevel.AddCommand(cmd)
}

package commands

import (
	"context"

	"github.com/spf13/cobra"

	runner "tableflip.dev/tracker/pkg/runner/export"
)

func addExport(topLevel *cobra.Command) {
	var output string

	cmd := &cobra.Command{
		Use:   "export [json|csv]",
		Short: "Export a full backup (json) or an entries table (csv)",
		Example: `
tracker export json --output backup.json
tracker export csv --output entries.csv
`,
		ValidArgs: []string{runner.FormatJSON, runner.FormatCSV},
		Args:      cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format := runner.FormatJSON
			if len(args) == 1 {
				format = args[0]
			}
			s, err := loadStore()
			if err != nil {
				return oo.HandleError(err)
			}
			r := runner.Export{
				Format: format,
				Output: output,
				Store:  s,
			}
			return oo.HandleError(r.Do(context.Background()))
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Write to a file instead of stdout.")

	topLevel.AddCommand(cmd)
}

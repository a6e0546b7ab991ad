package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/tracker/pkg/runner/importer"
)

func addImport(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Restore collections from a backup file",
		Example: `
tracker import backup.json
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadStore()
			if err != nil {
				return oo.HandleError(err)
			}
			r := importer.Import{
				Path:  args[0],
				Store: s,
			}
			return oo.HandleError(r.Do(context.Background()))
		},
	}

	topLevel.AddCommand(cmd)
}

// Package commands wires the tracker CLI: every command builds the store
// from the configured persistence and hands it to a runner.
package commands

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/tracker/pkg/store"
)

var (
	oo = &base.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "tracker",
		Short: base.Wrap80("Track tasks, habits, and goals on the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addAdd(topLevel)
	addGet(topLevel)
	addComplete(topLevel)
	addEdit(topLevel)
	addRemove(topLevel)
	addDuplicate(topLevel)
	addMark(topLevel)
	addUndo(topLevel)
	addClear(topLevel)
	addStats(topLevel)
	addCategories(topLevel)
	addTrackers(topLevel)
	addSettings(topLevel)
	addExport(topLevel)
	addImport(topLevel)
	addWatch(topLevel)
	addVersion(topLevel)
}

func newLogger() zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(zerolog.WarnLevel).
		With().Timestamp().Logger()
}

// loadPersistence opens the configured diskv-backed snapshot slot.
func loadPersistence() (*store.DiskvAdapter, error) {
	return store.NewDiskvAdapter(nil)
}

// loadStore builds the state store from the last saved snapshot.
func loadStore() (*store.Store, error) {
	adapter, err := loadPersistence()
	if err != nil {
		return nil, err
	}
	return store.New(adapter, newLogger()), nil
}

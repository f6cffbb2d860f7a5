package main

import (
	"os"

	"github.com/deepnoodle-ai/fern/config"
	"github.com/deepnoodle-ai/fern/date"
	"github.com/deepnoodle-ai/fern/log"
	"github.com/spf13/cobra"
)

const version = "0.1.0"

// app bundles what every subcommand needs: the loaded configuration, the
// clock, and a logger.
type app struct {
	config *config.Config
	clock  date.Clock
	logger log.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{clock: date.WallClock{}}

	root := &cobra.Command{
		Use:           "fern",
		Short:         "Assemble a daily journal entry out of notes, todos, reminders, pull requests, and tasks",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			a.logger = log.New(log.LevelFromString(os.Getenv("JOURNAL__LOG_LEVEL")))

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			a.config = cfg
			return nil
		},
	}

	root.AddCommand(newNewCmd(a))
	root.AddCommand(newReminderCmd(a))
	root.AddCommand(newConfigCmd(a))
	return root
}

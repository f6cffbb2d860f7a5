package main

import (
	"fmt"

	"github.com/deepnoodle-ai/fern/journal"
	"github.com/deepnoodle-ai/fern/log"
	"github.com/deepnoodle-ai/fern/reminder"
	"github.com/deepnoodle-ai/fern/section"
	"github.com/deepnoodle-ai/fern/template"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newNewCmd(a *app) *cobra.Command {
	var writeToStdout bool

	cmd := &cobra.Command{
		Use:   "new <title>",
		Short: "Create today's journal entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			title := args[0]
			ctx := log.WithLogger(cmd.Context(), a.logger)

			j := journal.NewAt(a.config.Dir)

			// The reminder store is loaded once per invocation; sections
			// only read from it.
			store := reminder.NewStore()
			if a.config.RemindersEnabled() {
				loaded, err := reminder.Load(a.config.ReminderLocation())
				if err != nil {
					return err
				}
				store = loaded
			}

			deps := section.Deps{
				Journal:   j,
				Clock:     a.clock,
				Reminders: store,
				Logger:    a.logger,
			}

			rendered, err := section.BuildAll(ctx, a.config.EnabledSections(), deps)
			if err != nil {
				return err
			}

			today := a.clock.Today()
			day := template.Day{Title: title, Date: today, Sections: rendered}
			out, err := day.Render(a.config.SectionOrder())
			if err != nil {
				return err
			}

			if writeToStdout {
				fmt.Fprint(cmd.OutOrStdout(), out)
				return nil
			}

			path, err := j.AddEntry(journal.Filename(today, title), out)
			if err != nil {
				return err
			}
			a.logger.Info("wrote new entry", "path", path)
			fmt.Fprintln(cmd.OutOrStdout(), color.GreenString("Created %s", path))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&writeToStdout, "stdout", "s", false,
		"print the entry instead of writing it to the journal")
	return cmd
}

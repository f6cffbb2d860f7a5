package main

import (
	"fmt"
	"strconv"

	"github.com/deepnoodle-ai/fern/reminder"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newReminderCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reminder",
		Short: "Manage reminders that show up in new entries",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := cmd.Root().PersistentPreRunE(cmd, args); err != nil {
				return err
			}
			if !a.config.RemindersEnabled() {
				return fmt.Errorf("No reminder configuration set. Please add it first")
			}
			return nil
		},
	}

	cmd.AddCommand(newReminderAddCmd(a))
	cmd.AddCommand(newReminderListCmd(a))
	cmd.AddCommand(newReminderDeleteCmd(a))
	return cmd
}

func newReminderAddCmd(a *app) *cobra.Command {
	var on string
	var every string

	cmd := &cobra.Command{
		Use:   "add <text>",
		Short: "Add a one-off or recurring reminder",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := args[0]

			store, err := reminder.Load(a.config.ReminderLocation())
			if err != nil {
				return err
			}

			switch {
			case on != "":
				spec, err := reminder.ParseSpecificDate(on)
				if err != nil {
					return err
				}
				day, err := spec.Resolve(a.clock.Today())
				if err != nil {
					return err
				}
				store.AddOnDate(day, text)
			case every != "":
				interval, err := reminder.ParseInterval(every)
				if err != nil {
					return err
				}
				store.AddRecurring(a.clock.Today(), interval, text)
			}

			if err := store.Save(a.config.ReminderLocation()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), color.GreenString("Added reminder %q", text))
			return nil
		},
	}

	cmd.Flags().StringVar(&on, "on", "",
		"remind on a specific date, e.g. 15.Jan.2022, 12.Feb, or Wednesday")
	cmd.Flags().StringVar(&every, "every", "",
		"remind on a recurring schedule, e.g. Monday, 2.weeks, or 3.days")
	cmd.MarkFlagsOneRequired("on", "every")
	cmd.MarkFlagsMutuallyExclusive("on", "every")
	return cmd
}

func newReminderListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the stored reminders",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := reminder.Load(a.config.ReminderLocation())
			if err != nil {
				return err
			}

			listings := store.List()
			if len(listings) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No reminders yet.")
				return nil
			}
			for _, listing := range listings {
				fmt.Fprintf(cmd.OutOrStdout(), "%3d  %-16s %s\n",
					listing.Position, color.CyanString(listing.When), listing.Text)
			}
			return nil
		},
	}
}

func newReminderDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <number>",
		Short: "Delete a reminder by its list number",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			position, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("%q is not a reminder number", args[0])
			}

			store, err := reminder.Load(a.config.ReminderLocation())
			if err != nil {
				return err
			}
			if err := store.Delete(position); err != nil {
				return err
			}
			if err := store.Save(a.config.ReminderLocation()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), color.GreenString("Deleted reminder %d", position))
			return nil
		},
	}
}

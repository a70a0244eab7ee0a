package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/versedeck/versedeck/pkg/deck"
	"github.com/versedeck/versedeck/pkg/remind"
	"github.com/versedeck/versedeck/pkg/store"
)

// remindCommand creates the reminder management command group.
func (c *CLI) remindCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remind",
		Short: "Manage review reminders",
	}

	cmd.AddCommand(c.remindSetCommand())
	cmd.AddCommand(c.remindListCommand())
	cmd.AddCommand(c.remindDeleteCommand())
	cmd.AddCommand(c.remindDueCommand())

	return cmd
}

// weekdayNames maps flag values to weekdays.
var weekdayNames = map[string]time.Weekday{
	"sun": time.Sunday, "mon": time.Monday, "tue": time.Tuesday,
	"wed": time.Wednesday, "thu": time.Thursday, "fri": time.Friday,
	"sat": time.Saturday,
}

func parseWeekdays(spec string) ([]time.Weekday, error) {
	if spec == "" {
		return nil, nil
	}
	var days []time.Weekday
	for _, part := range strings.Split(spec, ",") {
		d, ok := weekdayNames[strings.ToLower(strings.TrimSpace(part))]
		if !ok {
			return nil, fmt.Errorf("unknown weekday %q (expected sun..sat)", part)
		}
		days = append(days, d)
	}
	return days, nil
}

// remindSetCommand creates the "remind set" subcommand.
func (c *CLI) remindSetCommand() *cobra.Command {
	var days string

	cmd := &cobra.Command{
		Use:   "set <pack> <HH:MM>",
		Short: "Schedule a recurring review reminder",
		Long: `Schedule a recurring review reminder for a pack.

By default the reminder fires every day at the given time; --days
restricts it to a comma-separated weekday list:

  versedeck remind set "Romans Road" 07:30
  versedeck remind set "Psalms" 21:00 --days mon,wed,fri`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			st, err := c.openStore(cmd)
			if err != nil {
				return err
			}
			defer st.Close()

			pack, err := store.FindPackByName(ctx, st, args[0])
			if err != nil {
				return fmt.Errorf("pack %q: %w", args[0], err)
			}

			weekdays, err := parseWeekdays(days)
			if err != nil {
				return err
			}

			r, err := deck.NewReminder(pack.ID, args[1], weekdays)
			if err != nil {
				return err
			}
			if err := st.PutReminder(ctx, r); err != nil {
				return fmt.Errorf("store reminder: %w", err)
			}

			printSuccess("Reminder set for %s at %s", StyleHighlight.Render(pack.Name), args[1])
			if next := remind.NextDue(r, time.Now()); !next.IsZero() {
				printDetail("Next: %s", next.Format("Mon Jan 2 15:04"))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&days, "days", "", "weekdays, comma-separated (default: every day)")
	return cmd
}

// remindListCommand creates the "remind list" subcommand.
func (c *CLI) remindListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List reminders",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			st, err := c.openStore(cmd)
			if err != nil {
				return err
			}
			defer st.Close()

			reminders, err := st.ListReminders(ctx)
			if err != nil {
				return err
			}
			if len(reminders) == 0 {
				printInfo("No reminders")
				return nil
			}

			for _, r := range reminders {
				name := r.PackID
				if pack, err := st.GetPack(ctx, r.PackID); err == nil {
					name = pack.Name
				}

				line := StyleHighlight.Render(name) + "  " + StyleValue.Render(r.TimeOfDay)
				line += StyleDim.Render("  " + formatWeekdays(r.Weekdays))
				if !r.Enabled {
					line += StyleWarning.Render("  disabled")
				}
				fmt.Println(line)
				if next := remind.NextDue(r, time.Now()); !next.IsZero() {
					printDetail("next %s · id %s", next.Format("Mon Jan 2 15:04"), r.ID)
				} else {
					printDetail("id %s", r.ID)
				}
			}
			return nil
		},
	}
}

func formatWeekdays(days []time.Weekday) string {
	if len(days) == 0 {
		return "every day"
	}
	names := make([]string, len(days))
	for i, d := range days {
		names[i] = d.String()[:3]
	}
	return strings.Join(names, ",")
}

// remindDeleteCommand creates the "remind delete" subcommand.
func (c *CLI) remindDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a reminder",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := c.openStore(cmd)
			if err != nil {
				return err
			}
			defer st.Close()

			if err := st.DeleteReminder(cmd.Context(), args[0]); err != nil {
				return err
			}
			printSuccess("Deleted reminder %s", args[0])
			return nil
		},
	}
}

// remindDueCommand creates the "remind due" subcommand.
func (c *CLI) remindDueCommand() *cobra.Command {
	var window time.Duration

	cmd := &cobra.Command{
		Use:   "due",
		Short: "Show reminders that fired recently",
		Long: `Show reminders that fired inside the lookback window.

This is meant for shell prompts and login hooks: it exits quietly when
nothing fired, and prints one line per due pack otherwise.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			st, err := c.openStore(cmd)
			if err != nil {
				return err
			}
			defer st.Close()

			reminders, err := st.ListReminders(ctx)
			if err != nil {
				return err
			}

			now := time.Now()
			due := remind.Due(reminders, now.Add(-window), now)
			if len(due) == 0 {
				printInfo("Nothing due")
				return nil
			}

			for _, f := range due {
				name := f.Reminder.PackID
				if pack, err := st.GetPack(ctx, f.Reminder.PackID); err == nil {
					name = pack.Name
				}
				printWarning("%s was due at %s", name, f.At.Format("15:04"))
				printNextStep("Review it", fmt.Sprintf("versedeck review %q", name))
			}
			return nil
		},
	}

	cmd.Flags().DurationVar(&window, "window", 24*time.Hour, "lookback window")
	return cmd
}

package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/saifk/ramadan-companion/internal/state"
	"github.com/saifk/ramadan-companion/internal/timeutil"
)

var snoozeMinutes int

var remindCmd = &cobra.Command{
	Use:   "remind",
	Short: "Inspect and manage reminders",
}

var remindListCmd = &cobra.Command{
	Use:   "list",
	Short: "List active and snoozed reminders",
	Args:  cobra.NoArgs,
	RunE:  runRemindList,
}

var remindSnoozeCmd = &cobra.Command{
	Use:   "snooze <reminder-id>",
	Short: "Snooze an active reminder",
	Args:  cobra.ExactArgs(1),
	RunE:  runRemindSnooze,
}

var remindDismissCmd = &cobra.Command{
	Use:   "dismiss <reminder-id>",
	Short: "Dismiss an active reminder",
	Args:  cobra.ExactArgs(1),
	RunE:  runRemindDismiss,
}

func init() {
	remindSnoozeCmd.Flags().IntVar(&snoozeMinutes, "minutes", 10, "Minutes until the reminder returns")

	remindCmd.AddCommand(remindListCmd)
	remindCmd.AddCommand(remindSnoozeCmd)
	remindCmd.AddCommand(remindDismissCmd)
}

func runRemindList(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.close()

	notifications := a.store.State().Notifications
	if len(notifications.ActiveReminders) == 0 && len(notifications.SnoozedReminders) == 0 {
		fmt.Println("No reminders.")
		return nil
	}

	if len(notifications.ActiveReminders) > 0 {
		fmt.Println("Active:")
		for _, r := range notifications.ActiveReminders {
			created := r.CreatedAt
			if t, ok := timeutil.ParseTimestamp(r.CreatedAt); ok {
				created = t.Local().Format("15:04")
			}
			fmt.Printf("  %s  %s - %s (%s)\n", r.ID, r.Title, r.Message, created)
		}
	}
	if len(notifications.SnoozedReminders) > 0 {
		fmt.Println("Snoozed:")
		for _, r := range notifications.SnoozedReminders {
			wake := r.WakeAt
			if t, ok := timeutil.ParseTimestamp(r.WakeAt); ok {
				wake = t.Local().Format("15:04")
			}
			fmt.Printf("  %s  %s - wakes at %s\n", r.ID, r.Title, wake)
		}
	}
	return nil
}

func runRemindSnooze(cmd *cobra.Command, args []string) error {
	if snoozeMinutes <= 0 {
		return fmt.Errorf("minutes must be greater than zero")
	}

	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.close()

	before := a.store.State()
	after := a.store.Dispatch(state.SnoozeReminder{
		ReminderID: args[0],
		Minutes:    snoozeMinutes,
		Now:        time.Now(),
	})
	if after == before {
		return fmt.Errorf("no active reminder %q", args[0])
	}
	fmt.Printf("Snoozed for %d minutes.\n", snoozeMinutes)
	return nil
}

func runRemindDismiss(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.close()

	a.store.Dispatch(state.DismissReminder{ReminderID: args[0]})
	fmt.Println("Dismissed.")
	return nil
}

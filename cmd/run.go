package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/saifk/ramadan-companion/internal/engine"
	"github.com/saifk/ramadan-companion/internal/notify"
)

var runQuiet bool

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the reminder daemon",
	Long: `run keeps the prayer-time cache warm, resets checklists on day and
week boundaries, and delivers prayer and quote reminders as desktop
notifications. Stop with Ctrl-C.`,
	Args: cobra.NoArgs,
	RunE: runRun,
}

func init() {
	runCmd.Flags().BoolVar(&runQuiet, "quiet", false, "Evaluate reminders without desktop notifications")
}

func runRun(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.close()

	var notifier notify.Notifier = notify.Desktop{Log: a.log}
	if runQuiet {
		notifier = notify.Discard{}
	}

	eng := &engine.Engine{
		Store:    a.store,
		Notifier: notifier,
		Log:      a.log,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a.log.Info().
		Str("state", a.files.Path()).
		Dur("reminderTick", a.cfg.ReminderTick).
		Dur("housekeepingTick", a.cfg.HousekeepingTick).
		Msg("reminder daemon started")

	eng.Run(ctx, a.cfg.ReminderTick, a.cfg.HousekeepingTick)

	a.log.Info().Msg("reminder daemon stopped")
	return nil
}

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "rdc",
	Short: "Ramadan Companion, an offline desk companion for Ramadan",
	Long: `rdc tracks Qur'an reading sessions, a reflection journal, devotional
checklists, prayer-time schedules and reminders. All data is stored as a
single human-readable JSON file in ~/.rdc/; nothing leaves the device.`,
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(sessionCmd)
	rootCmd.AddCommand(journalCmd)
	rootCmd.AddCommand(checklistCmd)
	rootCmd.AddCommand(prayerCmd)
	rootCmd.AddCommand(remindCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(quotesCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(exportCmd)
}

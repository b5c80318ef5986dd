package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/saifk/ramadan-companion/internal/model"
	"github.com/saifk/ramadan-companion/internal/state"
	"github.com/saifk/ramadan-companion/internal/timeutil"
)

var (
	sessionMinutes int
	sessionPages   int
	sessionEndedAt string
	sessionLimit   int
)

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Record and list Qur'an reading sessions",
}

var sessionAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a completed reading session",
	Args:  cobra.NoArgs,
	RunE:  runSessionAdd,
}

var sessionListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent reading sessions",
	Args:  cobra.NoArgs,
	RunE:  runSessionList,
}

func init() {
	sessionAddCmd.Flags().IntVar(&sessionMinutes, "minutes", 0, "Session length in minutes")
	sessionAddCmd.Flags().IntVar(&sessionPages, "pages", 0, "Pages read")
	sessionAddCmd.Flags().StringVar(&sessionEndedAt, "ended-at", "", "End time (RFC 3339, default now)")
	_ = sessionAddCmd.MarkFlagRequired("minutes")

	sessionListCmd.Flags().IntVar(&sessionLimit, "limit", 10, "Maximum sessions to show")

	sessionCmd.AddCommand(sessionAddCmd)
	sessionCmd.AddCommand(sessionListCmd)
}

func runSessionAdd(cmd *cobra.Command, args []string) error {
	if sessionMinutes <= 0 {
		return fmt.Errorf("minutes must be greater than zero")
	}
	if sessionPages < 0 {
		return fmt.Errorf("pages must not be negative")
	}

	endedAt := model.Now()
	if sessionEndedAt != "" {
		t, ok := timeutil.ParseTimestamp(sessionEndedAt)
		if !ok {
			return fmt.Errorf("ended-at must be RFC 3339, e.g. 2026-03-01T21:30:00Z")
		}
		endedAt = timeutil.Timestamp(t)
	}

	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.close()

	a.store.Dispatch(state.AddSession{Session: model.ReadingSession{
		ID:              model.NewID(),
		EndedAt:         endedAt,
		DurationSeconds: sessionMinutes * 60,
		PagesRead:       sessionPages,
	}})

	fmt.Printf("Recorded %d minute session (%d pages).\n", sessionMinutes, sessionPages)
	return nil
}

func runSessionList(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.close()

	sessions := a.store.State().Sessions
	if len(sessions) == 0 {
		fmt.Println("No reading sessions yet.")
		return nil
	}

	shown := 0
	for _, s := range sessions {
		if shown >= sessionLimit {
			break
		}
		ended := s.EndedAt
		if t, ok := timeutil.ParseTimestamp(s.EndedAt); ok {
			ended = t.Local().Format("2006-01-02 15:04")
		}
		fmt.Printf("%s  %-8s  %d pages\n", ended, timeutil.FormatDuration(int64(s.DurationSeconds)), s.PagesRead)
		shown++
	}
	return nil
}

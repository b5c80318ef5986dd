package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/saifk/ramadan-companion/internal/model"
	"github.com/saifk/ramadan-companion/internal/state"
	"github.com/saifk/ramadan-companion/internal/timeutil"
)

var (
	journalIntention string
	journalNotes     string
	journalLimit     int
)

var journalCmd = &cobra.Command{
	Use:   "journal",
	Short: "Keep a reflection journal",
}

var journalAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a journal entry",
	Args:  cobra.NoArgs,
	RunE:  runJournalAdd,
}

var journalListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent journal entries",
	Args:  cobra.NoArgs,
	RunE:  runJournalList,
}

func init() {
	journalAddCmd.Flags().StringVar(&journalIntention, "intention", "", "Intention for the entry")
	journalAddCmd.Flags().StringVar(&journalNotes, "notes", "", "Free-form notes")
	_ = journalAddCmd.MarkFlagRequired("intention")

	journalListCmd.Flags().IntVar(&journalLimit, "limit", 10, "Maximum entries to show")

	journalCmd.AddCommand(journalAddCmd)
	journalCmd.AddCommand(journalListCmd)
}

func runJournalAdd(cmd *cobra.Command, args []string) error {
	intention := strings.TrimSpace(journalIntention)
	if intention == "" {
		return fmt.Errorf("intention must not be empty")
	}

	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.close()

	a.store.Dispatch(state.AddJournalEntry{Entry: model.JournalEntry{
		ID:        model.NewID(),
		Intention: intention,
		Notes:     strings.TrimSpace(journalNotes),
		CreatedAt: model.Now(),
	}})

	fmt.Println("Journal entry saved.")
	return nil
}

func runJournalList(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.close()

	journal := a.store.State().Journal
	if len(journal) == 0 {
		fmt.Println("No journal entries yet.")
		return nil
	}

	shown := 0
	for _, entry := range journal {
		if shown >= journalLimit {
			break
		}
		created := entry.CreatedAt
		if t, ok := timeutil.ParseTimestamp(entry.CreatedAt); ok {
			created = t.Local().Format("2006-01-02 15:04")
		}
		fmt.Printf("%s  %s\n", created, entry.Intention)
		if entry.Notes != "" {
			fmt.Printf("  %s\n", entry.Notes)
		}
		shown++
	}
	return nil
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/saifk/ramadan-companion/internal/model"
	"github.com/saifk/ramadan-companion/internal/timeutil"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show progress totals",
	Args:  cobra.NoArgs,
	RunE:  runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.close()

	s := a.store.State()

	totalSeconds := int64(0)
	totalPages := 0
	for _, sess := range s.Sessions {
		totalSeconds += int64(sess.DurationSeconds)
		totalPages += sess.PagesRead
	}

	fmt.Printf("Reading time:    %s across %d sessions\n", timeutil.FormatDuration(totalSeconds), len(s.Sessions))
	fmt.Printf("Pages read:      %d\n", totalPages)
	fmt.Printf("Journal entries: %d\n", len(s.Journal))
	fmt.Println("Checklists:")
	for _, category := range model.Categories {
		done := 0
		items := s.Checklists[category]
		for _, item := range items {
			if item.Done {
				done++
			}
		}
		fmt.Printf("  %-8s %d/%d done\n", category, done, len(items))
	}
	if len(s.FavoriteQuoteIDs) > 0 {
		fmt.Printf("Favorite quotes: %d\n", len(s.FavoriteQuoteIDs))
	}
	return nil
}

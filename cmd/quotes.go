package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/saifk/ramadan-companion/internal/quotes"
	"github.com/saifk/ramadan-companion/internal/state"
	"github.com/saifk/ramadan-companion/internal/timeutil"
)

var quotesFavoritesOnly bool

var quotesCmd = &cobra.Command{
	Use:   "quotes",
	Short: "Show motivational quotes",
	Args:  cobra.NoArgs,
	RunE:  runQuotes,
}

var quotesFavCmd = &cobra.Command{
	Use:   "fav <quote-id>",
	Short: "Toggle a quote as favorite",
	Args:  cobra.ExactArgs(1),
	RunE:  runQuotesFav,
}

func init() {
	quotesCmd.Flags().BoolVar(&quotesFavoritesOnly, "favorites", false, "Only list favorited quotes")
	quotesCmd.AddCommand(quotesFavCmd)
}

func runQuotes(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.close()

	s := a.store.State()
	favorites := map[string]bool{}
	for _, id := range s.FavoriteQuoteIDs {
		favorites[id] = true
	}

	if !quotesFavoritesOnly {
		// The day key follows the configured location zone so the featured
		// quote matches the one the reminder engine notifies.
		loc, err := timeutil.Zone(s.Settings.Location.TimeZone)
		if err != nil {
			loc = time.Local
		}
		if q := quotes.OfTheDay(timeutil.DayKeyIn(time.Now(), loc)); q != nil {
			fmt.Printf("Today: [%s] %s\n    %s\n\n", q.ID, q.Theme, q.Text)
		}
	}

	listed := 0
	for _, q := range quotes.All {
		if quotesFavoritesOnly && !favorites[q.ID] {
			continue
		}
		mark := " "
		if favorites[q.ID] {
			mark = "*"
		}
		fmt.Printf("%s [%s] %s\n    %s\n", mark, q.ID, q.Theme, q.Text)
		listed++
	}
	if listed == 0 {
		fmt.Println("No favorite quotes yet. Use `rdc quotes fav <quote-id>`.")
	}
	return nil
}

func runQuotesFav(cmd *cobra.Command, args []string) error {
	if quotes.ByID(args[0]) == nil {
		return fmt.Errorf("unknown quote id %q", args[0])
	}

	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.close()

	a.store.Dispatch(state.ToggleFavoriteQuote{QuoteID: args[0]})

	for _, id := range a.store.State().FavoriteQuoteIDs {
		if id == args[0] {
			fmt.Printf("Added %s to favorites.\n", args[0])
			return nil
		}
	}
	fmt.Printf("Removed %s from favorites.\n", args[0])
	return nil
}

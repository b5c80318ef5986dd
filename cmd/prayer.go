package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/saifk/ramadan-companion/internal/model"
	"github.com/saifk/ramadan-companion/internal/prayer"
	"github.com/saifk/ramadan-companion/internal/state"
	"github.com/saifk/ramadan-companion/internal/timeutil"
)

var (
	prayerYear    int
	prayerMonth   int
	prayerShift   int
	prayerRefresh bool
)

var prayerCmd = &cobra.Command{
	Use:   "prayer",
	Short: "Show prayer times for the configured location",
}

var prayerTodayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show today's prayer timeline",
	Args:  cobra.NoArgs,
	RunE:  runPrayerToday,
}

var prayerNextCmd = &cobra.Command{
	Use:   "next",
	Short: "Show the next prayer event and countdown",
	Args:  cobra.NoArgs,
	RunE:  runPrayerNext,
}

var prayerMonthCmd = &cobra.Command{
	Use:   "month",
	Short: "Show a month of prayer times",
	Args:  cobra.NoArgs,
	RunE:  runPrayerMonth,
}

func init() {
	prayerMonthCmd.Flags().IntVar(&prayerYear, "year", 0, "Year (default: selected month cursor)")
	prayerMonthCmd.Flags().IntVar(&prayerMonth, "month", 0, "Month 1-12 (default: selected month cursor)")
	prayerMonthCmd.Flags().IntVar(&prayerShift, "shift", 0, "Months to move the cursor, e.g. -1 or 1")
	prayerMonthCmd.Flags().BoolVar(&prayerRefresh, "refresh", false, "Recompute even when cached")

	prayerCmd.AddCommand(prayerTodayCmd)
	prayerCmd.AddCommand(prayerNextCmd)
	prayerCmd.AddCommand(prayerMonthCmd)
}

// todaySchedules makes sure today's and tomorrow's months are cached and
// returns both day schedules with the location zone.
func todaySchedules(a *app, now time.Time) (today, tomorrow *model.DaySchedule, loc *time.Location, err error) {
	s := a.store.State()
	loc, err = timeutil.Zone(s.Settings.Location.TimeZone)
	if err != nil {
		return nil, nil, nil, err
	}

	generatedAt := timeutil.Timestamp(now)
	for _, t := range []time.Time{now, now.Add(24 * time.Hour)} {
		year, month := timeutil.MonthStampIn(t, loc)
		s = a.store.Dispatch(state.EnsureMonthCache{Year: year, Month: int(month), GeneratedAt: generatedAt})
	}

	lookup := func(t time.Time) *model.DaySchedule {
		year, month := timeutil.MonthStampIn(t, loc)
		entry, ok := s.Prayer.MonthCache[prayer.BuildCacheKey(year, int(month), s.Settings)]
		if !ok {
			return nil
		}
		return prayer.FindDay(&entry, timeutil.DayKeyIn(t, loc))
	}
	return lookup(now), lookup(now.Add(24 * time.Hour)), loc, nil
}

func runPrayerToday(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.close()

	now := time.Now()
	today, tomorrow, loc, err := todaySchedules(a, now)
	if err != nil {
		return err
	}
	if today == nil {
		return fmt.Errorf("no schedule available for today; check location settings")
	}

	s := a.store.State()
	fmt.Printf("%s (%s) - %s\n\n", s.Settings.Location.Name, s.Settings.Location.TimeZone, today.DayKey)
	for _, event := range prayer.EventTimeline(today) {
		fmt.Printf("%-30s %s\n", event.Label, event.Time.In(loc).Format("15:04"))
	}

	if next := prayer.NextEvent(today, tomorrow, now); next != nil {
		fmt.Printf("\nNext: %s at %s (in %s)\n",
			next.Label, next.Time.In(loc).Format("15:04"), timeutil.Countdown(next.Time, now))
	}
	return nil
}

func runPrayerNext(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.close()

	now := time.Now()
	today, tomorrow, loc, err := todaySchedules(a, now)
	if err != nil {
		return err
	}

	next := prayer.NextEvent(today, tomorrow, now)
	if next == nil {
		fmt.Println("No upcoming prayer event found.")
		return nil
	}
	fmt.Printf("%s at %s - %s\n",
		next.Label, next.Time.In(loc).Format("15:04"), timeutil.Countdown(next.Time, now))
	return nil
}

func runPrayerMonth(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.close()

	s := a.store.State()
	year, month := prayerYear, prayerMonth
	if year == 0 {
		year = s.Prayer.SelectedYear
	}
	if month == 0 {
		month = s.Prayer.SelectedMonth
	}
	if month < 1 || month > 12 {
		return fmt.Errorf("month must be between 1 and 12")
	}
	if prayerShift != 0 {
		year, month = prayer.ShiftMonth(year, month, prayerShift)
	}

	loc, err := timeutil.Zone(s.Settings.Location.TimeZone)
	if err != nil {
		return err
	}

	s = a.store.Dispatch(state.SetSelectedMonth{Year: year, Month: month})
	s = a.store.Dispatch(state.EnsureMonthCache{
		Year:        year,
		Month:       month,
		Force:       prayerRefresh,
		GeneratedAt: model.Now(),
	})

	entry, ok := s.Prayer.MonthCache[prayer.BuildCacheKey(year, month, s.Settings)]
	if !ok {
		return fmt.Errorf("no schedule available for %04d-%02d; check location settings", year, month)
	}

	fmt.Printf("%s %d - %s (generated %s)\n\n",
		time.Month(month), year, s.Settings.Location.Name, entry.GeneratedAt)
	fmt.Printf("%-12s %7s %7s %7s %7s %7s %7s\n", "Day", "Fajr", "Sunrise", "Dhuhr", "Asr", "Maghrib", "Isha")
	for _, day := range entry.Days {
		fmt.Printf("%-12s", day.DayKey)
		for _, key := range []string{model.EventFajr, model.EventSunrise, model.EventDhuhr, model.EventAsr, model.EventMaghrib, model.EventIsha} {
			clock := "--:--"
			if iso, ok := day.Events[key]; ok {
				if t, ok := timeutil.ParseTimestamp(iso); ok {
					clock = t.In(loc).Format("15:04")
				}
			}
			fmt.Printf(" %7s", clock)
		}
		fmt.Println()
	}
	return nil
}

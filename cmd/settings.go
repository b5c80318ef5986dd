package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/saifk/ramadan-companion/internal/model"
	"github.com/saifk/ramadan-companion/internal/prayer"
	"github.com/saifk/ramadan-companion/internal/state"
)

var (
	setName      string
	setLatitude  float64
	setLongitude float64
	setTimeZone  string
	setMethod    string
	setMadhab    string

	quoteEnable  bool
	quoteDisable bool
	quoteTime    string

	teachingStart string
	teachingEnd   string
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show and change prayer and reminder settings",
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	Args:  cobra.NoArgs,
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Change location, calculation method or madhab",
	Args:  cobra.NoArgs,
	RunE:  runSettingsSet,
}

var settingsOffsetsCmd = &cobra.Command{
	Use:   "offsets <event> <minutes>",
	Short: "Set reminder minute offsets for one prayer event",
	Long: `Offsets are a comma-separated minute list, e.g. "20,5". Duplicates
are dropped and the list is sorted largest-first. An empty string disables
reminders for the event.`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsOffsets,
}

var settingsQuoteCmd = &cobra.Command{
	Use:   "quote",
	Short: "Configure the daily motivation notification",
	Args:  cobra.NoArgs,
	RunE:  runSettingsQuote,
}

var teachingCmd = &cobra.Command{
	Use:   "teaching",
	Short: "Configure teaching-mode quiet hours",
	Long: `During quiet hours reminders still fire and are recorded, but the
desktop notification is delivered silently. Weekdays are 0 (Sunday)
through 6 (Saturday).`,
}

var teachingOnCmd = &cobra.Command{
	Use:   "on",
	Short: "Enable teaching mode",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return setTeachingEnabled(true)
	},
}

var teachingOffCmd = &cobra.Command{
	Use:   "off",
	Short: "Disable teaching mode",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return setTeachingEnabled(false)
	},
}

var teachingAddCmd = &cobra.Command{
	Use:   "add <weekday>",
	Short: "Add a quiet-hours range to a weekday",
	Args:  cobra.ExactArgs(1),
	RunE:  runTeachingAdd,
}

var teachingSetCmd = &cobra.Command{
	Use:   "set <weekday> <range-id>",
	Short: "Change a quiet-hours range",
	Args:  cobra.ExactArgs(2),
	RunE:  runTeachingSet,
}

var teachingRmCmd = &cobra.Command{
	Use:   "rm <weekday> <range-id>",
	Short: "Remove a quiet-hours range",
	Args:  cobra.ExactArgs(2),
	RunE:  runTeachingRm,
}

func init() {
	settingsSetCmd.Flags().StringVar(&setName, "name", "", "Location name")
	settingsSetCmd.Flags().Float64Var(&setLatitude, "lat", 91, "Latitude")
	settingsSetCmd.Flags().Float64Var(&setLongitude, "lon", 181, "Longitude")
	settingsSetCmd.Flags().StringVar(&setTimeZone, "timezone", "", "IANA timezone, e.g. Asia/Hong_Kong")
	settingsSetCmd.Flags().StringVar(&setMethod, "method", "", "Calculation method: "+strings.Join(prayer.Methods, ", "))
	settingsSetCmd.Flags().StringVar(&setMadhab, "madhab", "", "Madhab: Shafi or Hanafi")

	settingsQuoteCmd.Flags().BoolVar(&quoteEnable, "enable", false, "Enable the daily quote notification")
	settingsQuoteCmd.Flags().BoolVar(&quoteDisable, "disable", false, "Disable the daily quote notification")
	settingsQuoteCmd.Flags().StringVar(&quoteTime, "time", "", "Delivery time as HH:MM")

	teachingSetCmd.Flags().StringVar(&teachingStart, "start", "", "Range start as HH:MM")
	teachingSetCmd.Flags().StringVar(&teachingEnd, "end", "", "Range end as HH:MM")

	teachingCmd.AddCommand(teachingOnCmd)
	teachingCmd.AddCommand(teachingOffCmd)
	teachingCmd.AddCommand(teachingAddCmd)
	teachingCmd.AddCommand(teachingSetCmd)
	teachingCmd.AddCommand(teachingRmCmd)

	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsOffsetsCmd)
	settingsCmd.AddCommand(settingsQuoteCmd)
	settingsCmd.AddCommand(teachingCmd)
}

func runSettingsShow(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.close()

	s := a.store.State().Settings
	fmt.Printf("Location:   %s (%.4f, %.4f) %s\n",
		s.Location.Name, s.Location.Latitude, s.Location.Longitude, s.Location.TimeZone)
	fmt.Printf("Method:     %s\n", s.CalculationMethod)
	fmt.Printf("Madhab:     %s\n", s.Madhab)
	fmt.Println("Reminders:")
	for _, key := range model.EventKeys {
		offsets := s.Reminders[key]
		if len(offsets) == 0 {
			fmt.Printf("  %-12s off\n", key)
			continue
		}
		parts := make([]string, len(offsets))
		for i, o := range offsets {
			parts[i] = fmt.Sprintf("%dm", o)
		}
		fmt.Printf("  %-12s %s before\n", key, strings.Join(parts, ", "))
	}
	quoteState := "off"
	if s.QuoteNotificationEnabled {
		quoteState = "daily at " + s.QuoteNotificationTime
	}
	fmt.Printf("Quote:      %s\n", quoteState)

	teaching := "off"
	if s.TeachingMode.Enabled {
		teaching = "on"
	}
	fmt.Printf("Teaching:   %s\n", teaching)
	for day := 0; day <= 6; day++ {
		ranges := s.TeachingMode.Schedule[fmt.Sprintf("%d", day)]
		for _, r := range ranges {
			fmt.Printf("  weekday %d  %s-%s  (%s)\n", day, r.Start, r.End, r.ID)
		}
	}
	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.close()

	settings := a.store.State().Settings
	settings.Reminders = model.CopyReminderOffsets(settings.Reminders)

	if cmd.Flags().Changed("name") {
		settings.Location.Name = setName
	}
	if cmd.Flags().Changed("lat") {
		settings.Location.Latitude = setLatitude
	}
	if cmd.Flags().Changed("lon") {
		settings.Location.Longitude = setLongitude
	}
	if cmd.Flags().Changed("timezone") {
		settings.Location.TimeZone = setTimeZone
	}
	if cmd.Flags().Changed("method") {
		settings.CalculationMethod = setMethod
	}
	if cmd.Flags().Changed("madhab") {
		settings.Madhab = setMadhab
	}

	// Settings are validated here, at the input boundary; the reducer
	// trusts validated payloads.
	if err := prayer.ValidateSettings(settings); err != nil {
		return err
	}

	a.store.Dispatch(state.SaveSettings{Settings: settings})
	fmt.Println("Settings saved.")
	return nil
}

func runSettingsOffsets(cmd *cobra.Command, args []string) error {
	eventKey := args[0]
	known := false
	for _, key := range model.EventKeys {
		if key == eventKey {
			known = true
			break
		}
	}
	if !known {
		return fmt.Errorf("unknown event %q (expected one of: %s)", eventKey, strings.Join(model.EventKeys, ", "))
	}

	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.close()

	offsets := prayer.ParseReminderOffsets(args[1])
	a.store.Dispatch(state.SetReminderOffsets{EventKey: eventKey, Offsets: offsets})
	fmt.Printf("Offsets for %s: %v\n", eventKey, offsets)
	return nil
}

func runSettingsQuote(cmd *cobra.Command, args []string) error {
	if quoteEnable && quoteDisable {
		return fmt.Errorf("--enable and --disable are mutually exclusive")
	}

	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.close()

	if quoteEnable || quoteDisable {
		a.store.Dispatch(state.SetQuoteNotificationEnabled{Enabled: quoteEnable})
	}
	if quoteTime != "" {
		before := a.store.State()
		after := a.store.Dispatch(state.SetQuoteNotificationTime{Time: quoteTime})
		if after == before && before.Settings.QuoteNotificationTime != quoteTime {
			return fmt.Errorf("time must be HH:MM, e.g. 09:00")
		}
	}
	fmt.Println("Quote notification updated.")
	return nil
}

func setTeachingEnabled(enabled bool) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.close()

	a.store.Dispatch(state.SetTeachingModeEnabled{Enabled: enabled})
	if enabled {
		fmt.Println("Teaching mode enabled.")
	} else {
		fmt.Println("Teaching mode disabled.")
	}
	return nil
}

func checkWeekday(value string) error {
	if len(value) != 1 || value[0] < '0' || value[0] > '6' {
		return fmt.Errorf("weekday must be 0 (Sunday) through 6 (Saturday)")
	}
	return nil
}

func runTeachingAdd(cmd *cobra.Command, args []string) error {
	if err := checkWeekday(args[0]); err != nil {
		return err
	}

	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.close()

	s := a.store.Dispatch(state.AddTeachingRange{DayKey: args[0]})
	ranges := s.Settings.TeachingMode.Schedule[args[0]]
	added := ranges[len(ranges)-1]
	fmt.Printf("Added range %s-%s (%s) to weekday %s.\n", added.Start, added.End, added.ID, args[0])
	return nil
}

func runTeachingSet(cmd *cobra.Command, args []string) error {
	if err := checkWeekday(args[0]); err != nil {
		return err
	}
	if teachingStart == "" && teachingEnd == "" {
		return fmt.Errorf("provide --start and/or --end")
	}

	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.close()

	var updates []state.Action
	if teachingStart != "" {
		updates = append(updates, state.UpdateTeachingRange{DayKey: args[0], RangeID: args[1], Field: "start", Value: teachingStart})
	}
	if teachingEnd != "" {
		updates = append(updates, state.UpdateTeachingRange{DayKey: args[0], RangeID: args[1], Field: "end", Value: teachingEnd})
	}

	// Validate the would-be result before committing, so a bad edit never
	// leaves a broken range behind.
	preview := a.store.State()
	var reducer state.Reducer
	for _, action := range updates {
		preview = reducer.Reduce(preview, action)
	}
	if err := prayer.ValidateSettings(preview.Settings); err != nil {
		return err
	}

	for _, action := range updates {
		a.store.Dispatch(action)
	}
	fmt.Println("Range updated.")
	return nil
}

func runTeachingRm(cmd *cobra.Command, args []string) error {
	if err := checkWeekday(args[0]); err != nil {
		return err
	}

	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.close()

	a.store.Dispatch(state.RemoveTeachingRange{DayKey: args[0], RangeID: args[1]})
	fmt.Println("Range removed.")
	return nil
}

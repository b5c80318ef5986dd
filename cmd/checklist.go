package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/saifk/ramadan-companion/internal/model"
	"github.com/saifk/ramadan-companion/internal/state"
)

var checklistCmd = &cobra.Command{
	Use:   "checklist",
	Short: "Manage devotional checklists",
	Long: `Checklists come in four categories: daily and evening reset every
day, weekly and friday reset every week.`,
}

var checklistListCmd = &cobra.Command{
	Use:   "list <category>",
	Short: "Show a checklist",
	Args:  cobra.ExactArgs(1),
	RunE:  runChecklistList,
}

var checklistAddCmd = &cobra.Command{
	Use:   "add <category> <title>",
	Short: "Add an item to a checklist",
	Args:  cobra.MinimumNArgs(2),
	RunE:  runChecklistAdd,
}

var checklistToggleCmd = &cobra.Command{
	Use:   "toggle <category> <item-id>",
	Short: "Toggle an item done/undone",
	Args:  cobra.ExactArgs(2),
	RunE:  runChecklistToggle,
}

var checklistRmCmd = &cobra.Command{
	Use:   "rm <category> <item-id>",
	Short: "Delete an item",
	Args:  cobra.ExactArgs(2),
	RunE:  runChecklistRm,
}

func init() {
	checklistCmd.AddCommand(checklistListCmd)
	checklistCmd.AddCommand(checklistAddCmd)
	checklistCmd.AddCommand(checklistToggleCmd)
	checklistCmd.AddCommand(checklistRmCmd)
}

func checkCategory(category string) error {
	for _, c := range model.Categories {
		if c == category {
			return nil
		}
	}
	return fmt.Errorf("unknown category %q (expected one of: %s)", category, strings.Join(model.Categories, ", "))
}

func runChecklistList(cmd *cobra.Command, args []string) error {
	category := args[0]
	if err := checkCategory(category); err != nil {
		return err
	}

	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.close()

	items := a.store.State().Checklists[category]
	done := 0
	for _, item := range items {
		mark := " "
		if item.Done {
			mark = "x"
			done++
		}
		fmt.Printf("[%s] %-12s %s\n", mark, item.ID, item.Title)
	}
	fmt.Printf("%d/%d done\n", done, len(items))
	return nil
}

func runChecklistAdd(cmd *cobra.Command, args []string) error {
	category := args[0]
	if err := checkCategory(category); err != nil {
		return err
	}
	title := strings.TrimSpace(strings.Join(args[1:], " "))
	if title == "" {
		return fmt.Errorf("title must not be empty")
	}

	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.close()

	a.store.Dispatch(state.AddChecklistItem{Category: category, Title: title})
	fmt.Printf("Added to %s checklist: %s\n", category, title)
	return nil
}

func runChecklistToggle(cmd *cobra.Command, args []string) error {
	category, itemID := args[0], args[1]
	if err := checkCategory(category); err != nil {
		return err
	}

	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.close()

	before := a.store.State()
	after := a.store.Dispatch(state.ToggleChecklistItem{Category: category, ItemID: itemID})
	if after == before {
		return fmt.Errorf("no item %q in %s checklist", itemID, category)
	}
	fmt.Println("Toggled.")
	return nil
}

func runChecklistRm(cmd *cobra.Command, args []string) error {
	category, itemID := args[0], args[1]
	if err := checkCategory(category); err != nil {
		return err
	}

	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.close()

	a.store.Dispatch(state.DeleteChecklistItem{Category: category, ItemID: itemID})
	fmt.Println("Removed.")
	return nil
}

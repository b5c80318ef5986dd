package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var exportFormat string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export reading sessions and journal entries to stdout",
	Args:  cobra.NoArgs,
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", "csv", "Output format: csv, json")
}

func runExport(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.close()

	s := a.store.State()

	switch exportFormat {
	case "json":
		payload := struct {
			Sessions any `json:"sessions"`
			Journal  any `json:"journal"`
		}{Sessions: s.Sessions, Journal: s.Journal}
		data, err := json.MarshalIndent(payload, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding JSON: %w", err)
		}
		fmt.Println(string(data))
	case "csv":
		fmt.Println("type,id,timestamp,duration_minutes,pages,intention,notes")
		for _, sess := range s.Sessions {
			fmt.Printf("session,%s,%s,%d,%d,,\n",
				csvEscape(sess.ID),
				csvEscape(sess.EndedAt),
				sess.DurationSeconds/60,
				sess.PagesRead,
			)
		}
		for _, e := range s.Journal {
			fmt.Printf("journal,%s,%s,,,%s,%s\n",
				csvEscape(e.ID),
				csvEscape(e.CreatedAt),
				csvEscape(e.Intention),
				csvEscape(e.Notes),
			)
		}
	default:
		return fmt.Errorf("unknown format %q (want csv or json)", exportFormat)
	}

	return nil
}

// csvEscape wraps a field in quotes if it contains a comma, quote, or newline.
func csvEscape(s string) string {
	needsQuote := false
	for _, c := range s {
		if c == ',' || c == '"' || c == '\n' || c == '\r' {
			needsQuote = true
			break
		}
	}
	if !needsQuote {
		return s
	}
	// Escape internal double quotes by doubling them.
	escaped := ""
	for _, c := range s {
		if c == '"' {
			escaped += "\""
		}
		escaped += string(c)
	}
	return `"` + escaped + `"`
}

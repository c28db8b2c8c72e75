package dotsentry

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/dotsentry/dotsentry/internal/report"
	"github.com/dotsentry/dotsentry/internal/scanner"
)

func init() {
	cmd := &cobra.Command{
		Use:   "patterns",
		Short: "List the secret patterns the scanner knows",
		RunE:  runPatterns,
	}
	rootCmd.AddCommand(cmd)
}

func runPatterns(_ *cobra.Command, _ []string) error {
	if flagJSON {
		type row struct {
			ID         string `json:"id"`
			Name       string `json:"name"`
			Confidence string `json:"confidence"`
			Pattern    string `json:"pattern"`
			RevokeURL  string `json:"revoke_url,omitempty"`
		}
		var rows []row
		for _, p := range scanner.Patterns() {
			rows = append(rows, row{
				ID: p.ID, Name: p.Name, Confidence: string(p.Confidence),
				Pattern: p.Regexp().String(), RevokeURL: p.RevokeURL,
			})
		}
		return report.WriteJSON(os.Stdout, rows)
	}

	table := tablewriter.NewTable(os.Stdout)
	table.Header("ID", "Name", "Confidence", "Revoke at")
	for _, p := range scanner.Patterns() {
		if err := table.Append(p.ID, p.Name, string(p.Confidence), p.RevokeURL); err != nil {
			return err
		}
	}
	if err := table.Render(); err != nil {
		return err
	}
	fmt.Printf("\n%d patterns, plus an entropy fallback for unrecognized tokens\n", len(scanner.Patterns()))
	return nil
}

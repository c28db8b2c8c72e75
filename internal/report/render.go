// Package report renders findings and validation issues: plain text, tables,
// JSON, GitHub annotations, and a SARIF subset. Rendering is a pure projection
// of the input lists; no policy decisions happen here.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/olekukonko/tablewriter"

	"github.com/dotsentry/dotsentry/internal/types"
)

type PrintOptions struct {
	NoColor      bool
	Duration     time.Duration
	FilesScanned int
}

// PrintFindings writes one line per finding plus a summary footer.
func PrintFindings(w io.Writer, findings []types.Finding, opts PrintOptions) {
	if len(findings) == 0 {
		fmt.Fprintln(w, "No secrets found")
	} else {
		maxPat := 8
		for _, f := range findings {
			if l := len(f.Pattern); l > maxPat {
				maxPat = l
			}
		}
		for _, f := range findings {
			conf := string(f.Confidence)
			if !opts.NoColor {
				conf = colorConfidence(f.Confidence)
			}
			fmt.Fprintf(w, "%-6s %-*s %s:%d  %s\n", conf, maxPat, f.Pattern, f.Path, f.Line, f.Match)
		}
	}

	high, med, low := 0, 0, 0
	for _, f := range findings {
		switch f.Confidence {
		case types.ConfHigh:
			high++
		case types.ConfMedium:
			med++
		default:
			low++
		}
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Findings: %d (high: %d, medium: %d, low: %d)\n", len(findings), high, med, low)
	if opts.Duration > 0 {
		fmt.Fprintf(w, "Scan duration: %.2fs\n", opts.Duration.Seconds())
	}
	if opts.FilesScanned > 0 {
		fmt.Fprintf(w, "Files scanned: %d\n", opts.FilesScanned)
	}
}

// PrintFindingsTable renders findings as an aligned table.
func PrintFindingsTable(w io.Writer, findings []types.Finding) error {
	table := tablewriter.NewTable(w)
	table.Header("Confidence", "Pattern", "Location", "Match")
	for _, f := range findings {
		if err := table.Append(string(f.Confidence), f.Pattern,
			fmt.Sprintf("%s:%d", f.Path, f.Line), f.Match); err != nil {
			return err
		}
	}
	return table.Render()
}

// PrintIssues writes validation issues grouped under a summary header.
func PrintIssues(w io.Writer, issues []types.Issue, opts PrintOptions) {
	if len(issues) == 0 {
		fmt.Fprintln(w, "No issues found")
		return
	}
	for i, iss := range issues {
		sev := string(iss.Severity)
		if !opts.NoColor {
			sev = colorSeverity(iss.Severity)
		}
		fmt.Fprintf(w, "%2d. [%s] %s\n", i+1, sev, iss.Message)
		if iss.Suggestion != "" {
			fmt.Fprintf(w, "    -> %s\n", iss.Suggestion)
		}
		if iss.Line > 0 {
			fmt.Fprintf(w, "    at %s:%d\n", iss.File, iss.Line)
		} else if iss.File != "" {
			fmt.Fprintf(w, "    at %s\n", iss.File)
		}
	}

	errors, warnings, info := 0, 0, 0
	for _, iss := range issues {
		switch iss.Severity {
		case types.SevError:
			errors++
		case types.SevWarning:
			warnings++
		default:
			info++
		}
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Issues: %d (errors: %d, warnings: %d, info: %d)\n", len(issues), errors, warnings, info)
}

// WriteJSON emits v as indented JSON; used for both findings and issues.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func colorConfidence(c types.Confidence) string {
	switch c {
	case types.ConfHigh:
		return "\x1b[31mhigh\x1b[0m" // red
	case types.ConfMedium:
		return "\x1b[33mmedium\x1b[0m" // yellow
	default:
		return "\x1b[36mlow\x1b[0m" // cyan
	}
}

func colorSeverity(s types.Severity) string {
	switch s {
	case types.SevError:
		return "\x1b[31merror\x1b[0m"
	case types.SevWarning:
		return "\x1b[33mwarning\x1b[0m"
	default:
		return "\x1b[36minfo\x1b[0m"
	}
}

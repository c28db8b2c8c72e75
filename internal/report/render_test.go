package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/dotsentry/dotsentry/internal/types"
)

func sampleFindings() []types.Finding {
	return []types.Finding{
		{Path: ".env", Line: 3, Column: 9, Pattern: "AWS Access Key", Confidence: types.ConfHigh,
			Match: "AKIA************MPL0", RevokeURL: "https://console.aws.amazon.com/iam"},
		{Path: "config/dev.env", Line: 1, Pattern: "High-entropy string", Confidence: types.ConfLow,
			Match: "8f3k************Ke2"},
	}
}

func TestPrintFindings_Empty(t *testing.T) {
	var buf bytes.Buffer
	PrintFindings(&buf, nil, PrintOptions{Duration: 1200 * time.Millisecond, FilesScanned: 10})
	out := buf.String()
	if !strings.Contains(out, "No secrets found") {
		t.Fatalf("expected friendly no-findings message; got: %q", out)
	}
	if !strings.Contains(out, "Files scanned: 10") {
		t.Fatalf("expected footer with files scanned; got: %q", out)
	}
}

func TestPrintFindings_WithFindings(t *testing.T) {
	var buf bytes.Buffer
	PrintFindings(&buf, sampleFindings(), PrintOptions{NoColor: true})
	out := buf.String()
	if !strings.Contains(out, "AWS Access Key") {
		t.Fatalf("expected pattern column; got: %q", out)
	}
	if !strings.Contains(out, ".env:3") {
		t.Fatalf("expected path:line; got: %q", out)
	}
	if !strings.Contains(out, "Findings: 2 (high: 1, medium: 0, low: 1)") {
		t.Fatalf("expected summary footer; got: %q", out)
	}
}

func TestPrintFindingsTable(t *testing.T) {
	var buf bytes.Buffer
	if err := PrintFindingsTable(&buf, sampleFindings()); err != nil {
		t.Fatalf("PrintFindingsTable: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "AWS Access Key") {
		t.Fatalf("expected pattern in table; got: %q", out)
	}
	if !strings.Contains(out, ".env:3") {
		t.Fatalf("expected location in table; got: %q", out)
	}
}

func TestPrintIssues(t *testing.T) {
	issues := []types.Issue{
		{Severity: types.SevError, Kind: types.KindMissingRequired, Variable: "SECRET_KEY",
			Message: "missing required variable SECRET_KEY", File: ".env",
			Suggestion: "add SECRET_KEY=<value> to .env"},
		{Severity: types.SevWarning, Kind: types.KindBooleanStringTrap, Variable: "DEBUG",
			Message: `DEBUG is the string "False", which many runtimes treat as truthy`,
			File: ".env", Line: 4},
	}

	var buf bytes.Buffer
	PrintIssues(&buf, issues, PrintOptions{NoColor: true})
	out := buf.String()
	if !strings.Contains(out, "[error] missing required variable SECRET_KEY") {
		t.Fatalf("expected error line; got: %q", out)
	}
	if !strings.Contains(out, "-> add SECRET_KEY=<value> to .env") {
		t.Fatalf("expected suggestion line; got: %q", out)
	}
	if !strings.Contains(out, "at .env:4") {
		t.Fatalf("expected location line; got: %q", out)
	}
	if !strings.Contains(out, "Issues: 2 (errors: 1, warnings: 1, info: 0)") {
		t.Fatalf("expected summary; got: %q", out)
	}
}

func TestPrintIssues_Empty(t *testing.T) {
	var buf bytes.Buffer
	PrintIssues(&buf, nil, PrintOptions{})
	if !strings.Contains(buf.String(), "No issues found") {
		t.Fatalf("expected no-issues message; got: %q", buf.String())
	}
}

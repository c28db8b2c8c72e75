package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/dotsentry/dotsentry/internal/types"
)

func TestWriteSARIF(t *testing.T) {
	findings := []types.Finding{
		{Path: ".env", Line: 3, Column: 9, Pattern: "AWS Access Key", Confidence: types.ConfHigh,
			RevokeURL: "https://console.aws.amazon.com/iam"},
		{Path: ".env", Line: 7, Pattern: "AWS Access Key", Confidence: types.ConfHigh,
			RevokeURL: "https://console.aws.amazon.com/iam"},
		{Path: "a.txt", Line: 1, Pattern: "High-entropy string", Confidence: types.ConfLow},
	}

	var buf bytes.Buffer
	if err := WriteSARIF(&buf, findings, "1.0.0"); err != nil {
		t.Fatalf("WriteSARIF: %v", err)
	}

	var doc struct {
		Version string `json:"version"`
		Runs    []struct {
			Tool struct {
				Driver struct {
					Name  string `json:"name"`
					Rules []struct {
						ID      string `json:"id"`
						HelpURI string `json:"helpUri"`
					} `json:"rules"`
				} `json:"driver"`
			} `json:"tool"`
			Results []struct {
				RuleID    string `json:"ruleId"`
				Level     string `json:"level"`
				Locations []struct {
					PhysicalLocation struct {
						ArtifactLocation struct {
							URI string `json:"uri"`
						} `json:"artifactLocation"`
						Region struct {
							StartLine   int `json:"startLine"`
							StartColumn int `json:"startColumn"`
						} `json:"region"`
					} `json:"physicalLocation"`
				} `json:"locations"`
			} `json:"results"`
		} `json:"runs"`
	}
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, buf.String())
	}

	if doc.Version != "2.1.0" {
		t.Fatalf("version = %q", doc.Version)
	}
	run := doc.Runs[0]
	if run.Tool.Driver.Name != "dotsentry" {
		t.Fatalf("driver name = %q", run.Tool.Driver.Name)
	}
	// one rule per distinct pattern, not per result
	if len(run.Tool.Driver.Rules) != 2 {
		t.Fatalf("rules = %d, want 2", len(run.Tool.Driver.Rules))
	}
	if run.Tool.Driver.Rules[0].HelpURI != "https://console.aws.amazon.com/iam" {
		t.Fatalf("rule helpUri = %q", run.Tool.Driver.Rules[0].HelpURI)
	}
	if len(run.Results) != 3 {
		t.Fatalf("results = %d, want 3", len(run.Results))
	}
	first := run.Results[0]
	if first.Level != "error" || first.RuleID != "AWS Access Key" {
		t.Fatalf("first result = %+v", first)
	}
	loc := first.Locations[0].PhysicalLocation
	if loc.ArtifactLocation.URI != ".env" || loc.Region.StartLine != 3 || loc.Region.StartColumn != 9 {
		t.Fatalf("location = %+v", loc)
	}
	if run.Results[2].Level != "note" {
		t.Fatalf("low confidence should map to note, got %q", run.Results[2].Level)
	}
}

func TestWriteIssueAnnotations(t *testing.T) {
	issues := []types.Issue{
		{Severity: types.SevError, Message: "missing required variable SECRET_KEY", File: ".env"},
		{Severity: types.SevWarning, Message: "DEBUG is truthy", File: ".env", Line: 4,
			Suggestion: "use 1 instead"},
	}

	var buf bytes.Buffer
	WriteIssueAnnotations(&buf, issues)
	out := buf.String()

	if !strings.Contains(out, "::error file=.env,line=1::missing required variable SECRET_KEY") {
		t.Fatalf("missing error annotation; got: %q", out)
	}
	if !strings.Contains(out, "::warning file=.env,line=4::DEBUG is truthy") {
		t.Fatalf("missing warning annotation; got: %q", out)
	}
	if !strings.Contains(out, "::warning file=.env,line=4::Suggestion: use 1 instead") {
		t.Fatalf("missing suggestion annotation; got: %q", out)
	}
}

func TestWriteFindingAnnotations_EscapesNewlines(t *testing.T) {
	var buf bytes.Buffer
	WriteFindingAnnotations(&buf, []types.Finding{
		{Path: "a.txt", Line: 2, Pattern: "odd\npattern", Confidence: types.ConfMedium},
	})
	out := buf.String()
	if !strings.Contains(out, "odd%0Apattern") {
		t.Fatalf("newline not escaped; got: %q", out)
	}
}

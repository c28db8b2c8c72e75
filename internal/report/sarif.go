package report

import (
	"encoding/json"
	"io"

	"github.com/dotsentry/dotsentry/internal/types"
)

type sarif struct {
	Version string     `json:"version"`
	Schema  string     `json:"$schema"`
	Runs    []sarifRun `json:"runs"`
}

type sarifRun struct {
	Tool    sarifTool     `json:"tool"`
	Results []sarifResult `json:"results"`
}

type sarifTool struct {
	Driver sarifDriver `json:"driver"`
}

type sarifDriver struct {
	Name    string      `json:"name"`
	Version string      `json:"version"`
	Rules   []sarifRule `json:"rules"`
}

type sarifRule struct {
	ID               string       `json:"id"`
	ShortDescription sarifMessage `json:"shortDescription"`
	HelpURI          string       `json:"helpUri,omitempty"`
}

type sarifResult struct {
	RuleID    string       `json:"ruleId"`
	Level     string       `json:"level"`
	Message   sarifMessage `json:"message"`
	Locations []sarifLoc   `json:"locations"`
}

type sarifMessage struct {
	Text string `json:"text"`
}

type sarifLoc struct {
	PhysicalLocation sarifPhys `json:"physicalLocation"`
}

type sarifPhys struct {
	ArtifactLocation sarifArt    `json:"artifactLocation"`
	Region           sarifRegion `json:"region"`
}

type sarifArt struct {
	URI string `json:"uri"`
}

type sarifRegion struct {
	StartLine   int `json:"startLine"`
	StartColumn int `json:"startColumn,omitempty"`
}

func confToLevel(c types.Confidence) string {
	switch c {
	case types.ConfHigh:
		return "error"
	case types.ConfMedium:
		return "warning"
	default:
		return "note"
	}
}

// WriteSARIF writes findings as SARIF 2.1.0. The driver carries one rule per
// distinct pattern seen in the findings.
func WriteSARIF(w io.Writer, findings []types.Finding, version string) error {
	run := sarifRun{
		Tool: sarifTool{Driver: sarifDriver{Name: "dotsentry", Version: version}},
	}

	seen := map[string]bool{}
	for _, f := range findings {
		if !seen[f.Pattern] {
			seen[f.Pattern] = true
			run.Tool.Driver.Rules = append(run.Tool.Driver.Rules, sarifRule{
				ID:               f.Pattern,
				ShortDescription: sarifMessage{Text: f.Pattern + " detected"},
				HelpURI:          f.RevokeURL,
			})
		}
		run.Results = append(run.Results, sarifResult{
			RuleID:  f.Pattern,
			Level:   confToLevel(f.Confidence),
			Message: sarifMessage{Text: f.Pattern + " detected"},
			Locations: []sarifLoc{{
				PhysicalLocation: sarifPhys{
					ArtifactLocation: sarifArt{URI: f.Path},
					Region:           sarifRegion{StartLine: f.Line, StartColumn: f.Column},
				},
			}},
		})
	}

	doc := sarif{
		Version: "2.1.0",
		Schema:  "https://json.schemastore.org/sarif-2.1.0.json",
		Runs:    []sarifRun{run},
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

func sevToLevel(s types.Severity) string {
	switch s {
	case types.SevError:
		return "error"
	case types.SevWarning:
		return "warning"
	default:
		return "note"
	}
}

// WriteIssueSARIF writes validation issues as SARIF 2.1.0, one rule per
// issue kind.
func WriteIssueSARIF(w io.Writer, issues []types.Issue, version string) error {
	run := sarifRun{
		Tool: sarifTool{Driver: sarifDriver{Name: "dotsentry", Version: version}},
	}

	seen := map[types.IssueKind]bool{}
	for _, is := range issues {
		if !seen[is.Kind] {
			seen[is.Kind] = true
			run.Tool.Driver.Rules = append(run.Tool.Driver.Rules, sarifRule{
				ID:               string(is.Kind),
				ShortDescription: sarifMessage{Text: string(is.Kind)},
			})
		}
		text := is.Message
		if is.Suggestion != "" {
			text += ". " + is.Suggestion
		}
		line := is.Line
		if line < 1 {
			line = 1
		}
		run.Results = append(run.Results, sarifResult{
			RuleID:  string(is.Kind),
			Level:   sevToLevel(is.Severity),
			Message: sarifMessage{Text: text},
			Locations: []sarifLoc{{
				PhysicalLocation: sarifPhys{
					ArtifactLocation: sarifArt{URI: is.File},
					Region:           sarifRegion{StartLine: line},
				},
			}},
		})
	}

	doc := sarif{
		Version: "2.1.0",
		Schema:  "https://json.schemastore.org/sarif-2.1.0.json",
		Runs:    []sarifRun{run},
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

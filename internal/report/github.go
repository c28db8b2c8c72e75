package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/dotsentry/dotsentry/internal/types"
)

// WriteIssueAnnotations emits GitHub Actions workflow commands for validation
// issues, one ::error/::warning/::notice line each.
func WriteIssueAnnotations(w io.Writer, issues []types.Issue) {
	for _, iss := range issues {
		level := "notice"
		switch iss.Severity {
		case types.SevError:
			level = "error"
		case types.SevWarning:
			level = "warning"
		}
		line := iss.Line
		if line < 1 {
			line = 1
		}
		fmt.Fprintf(w, "::%s file=%s,line=%d::%s\n", level, iss.File, line, escapeAnnotation(iss.Message))
		if iss.Suggestion != "" {
			fmt.Fprintf(w, "::%s file=%s,line=%d::Suggestion: %s\n", level, iss.File, line, escapeAnnotation(iss.Suggestion))
		}
	}
}

// WriteFindingAnnotations emits workflow commands for scanner findings.
func WriteFindingAnnotations(w io.Writer, findings []types.Finding) {
	for _, f := range findings {
		level := "notice"
		switch f.Confidence {
		case types.ConfHigh:
			level = "error"
		case types.ConfMedium:
			level = "warning"
		}
		fmt.Fprintf(w, "::%s file=%s,line=%d::%s\n", level, f.Path, f.Line,
			escapeAnnotation(fmt.Sprintf("%s detected", f.Pattern)))
	}
}

// escapeAnnotation applies the workflow-command escaping rules for message
// data.
func escapeAnnotation(s string) string {
	s = strings.ReplaceAll(s, "%", "%25")
	s = strings.ReplaceAll(s, "\r", "%0D")
	s = strings.ReplaceAll(s, "\n", "%0A")
	return s
}

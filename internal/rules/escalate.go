package rules

import "github.com/dotsentry/dotsentry/internal/types"

// Escalate promotes issue severities for strict mode: warnings become errors
// and info becomes warnings. It is a pure post-processing step over an
// already-evaluated issue list and returns a new slice; rule evaluation itself
// is never strict-aware.
func Escalate(issues []types.Issue) []types.Issue {
	out := make([]types.Issue, len(issues))
	for i, iss := range issues {
		switch iss.Severity {
		case types.SevWarning:
			iss.Severity = types.SevError
		case types.SevInfo:
			iss.Severity = types.SevWarning
		}
		out[i] = iss
	}
	return out
}

// Blocking reports whether the issue list should fail the invocation.
func Blocking(issues []types.Issue) bool {
	for _, iss := range issues {
		if iss.Severity == types.SevError {
			return true
		}
	}
	return false
}

// Count tallies issues per severity.
func Count(issues []types.Issue) (errors, warnings, info int) {
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
	return errors, warnings, info
}

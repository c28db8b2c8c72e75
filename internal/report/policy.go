package report

import "github.com/dotsentry/dotsentry/internal/types"

// ShouldFail reports whether findings at or above the failOn confidence tier
// exist. Unknown tiers fall back to medium.
func ShouldFail(findings []types.Finding, failOn string) bool {
	threshold := types.Confidence(failOn).Rank()
	if threshold == 0 {
		threshold = types.ConfMedium.Rank()
	}
	for _, f := range findings {
		if f.Confidence.Rank() >= threshold {
			return true
		}
	}
	return false
}

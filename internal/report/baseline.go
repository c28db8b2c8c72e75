package report

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/cespare/xxhash/v2"

	"github.com/dotsentry/dotsentry/internal/types"
)

// Baseline is a set of accepted finding fingerprints. Findings already in the
// baseline are suppressed on later runs so CI only fails on new leaks.
type Baseline struct {
	Items map[string]bool `json:"items"`
}

func LoadBaseline(path string) (Baseline, error) {
	b := Baseline{Items: map[string]bool{}}
	buf, err := os.ReadFile(path)
	if err != nil {
		return b, err
	}
	if err := json.Unmarshal(buf, &b); err != nil {
		return b, fmt.Errorf("bad baseline file %s: %w", path, err)
	}
	if b.Items == nil {
		b.Items = map[string]bool{}
	}
	return b, nil
}

func SaveBaseline(path string, findings []types.Finding) error {
	b := Baseline{Items: map[string]bool{}}
	for _, f := range findings {
		b.Items[fingerprint(f)] = true
	}
	buf, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(buf, '\n'), 0o644)
}

// FilterNew drops findings whose fingerprint is already in the baseline.
func FilterNew(findings []types.Finding, base Baseline) []types.Finding {
	var out []types.Finding
	for _, f := range findings {
		if !base.Items[fingerprint(f)] {
			out = append(out, f)
		}
	}
	return out
}

// fingerprint identifies a finding across runs. Line numbers are excluded so
// unrelated edits above a known finding do not resurface it.
func fingerprint(f types.Finding) string {
	h := xxhash.New()
	h.WriteString(f.Path)
	h.WriteString("|")
	h.WriteString(f.Pattern)
	h.WriteString("|")
	h.WriteString(f.Match)
	return fmt.Sprintf("%016x", h.Sum64())
}

package report

import (
	"path/filepath"
	"testing"

	"github.com/dotsentry/dotsentry/internal/types"
)

func TestBaseline_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "baseline.json")
	known := types.Finding{Path: ".env", Pattern: "AWS Access Key", Match: "AKIA****MPL0", Line: 3}
	fresh := types.Finding{Path: ".env", Pattern: "Stripe Secret Key (live)", Match: "sk_l****k1L2", Line: 9}

	if err := SaveBaseline(path, []types.Finding{known}); err != nil {
		t.Fatalf("SaveBaseline: %v", err)
	}
	base, err := LoadBaseline(path)
	if err != nil {
		t.Fatalf("LoadBaseline: %v", err)
	}

	out := FilterNew([]types.Finding{known, fresh}, base)
	if len(out) != 1 || out[0].Pattern != fresh.Pattern {
		t.Fatalf("FilterNew = %+v, want only the fresh finding", out)
	}
}

func TestBaseline_LineChangesDoNotResurface(t *testing.T) {
	path := filepath.Join(t.TempDir(), "baseline.json")
	f := types.Finding{Path: ".env", Pattern: "AWS Access Key", Match: "AKIA****MPL0", Line: 3}
	if err := SaveBaseline(path, []types.Finding{f}); err != nil {
		t.Fatalf("SaveBaseline: %v", err)
	}
	base, err := LoadBaseline(path)
	if err != nil {
		t.Fatalf("LoadBaseline: %v", err)
	}

	f.Line = 17 // file edited above the secret
	if out := FilterNew([]types.Finding{f}, base); len(out) != 0 {
		t.Fatalf("moved finding resurfaced: %+v", out)
	}
}

func TestLoadBaseline_Missing(t *testing.T) {
	if _, err := LoadBaseline(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatal("expected error for missing baseline")
	}
}

func TestShouldFail(t *testing.T) {
	findings := []types.Finding{{Confidence: types.ConfMedium}}

	if ShouldFail(findings, "high") {
		t.Fatal("medium finding should not fail at high threshold")
	}
	if !ShouldFail(findings, "medium") {
		t.Fatal("medium finding should fail at medium threshold")
	}
	if !ShouldFail(findings, "") {
		t.Fatal("default threshold should be medium")
	}
	if ShouldFail(nil, "low") {
		t.Fatal("no findings should never fail")
	}
}

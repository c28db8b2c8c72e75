package rules

import (
	"strings"
	"testing"

	"github.com/dotsentry/dotsentry/internal/dotenv"
	"github.com/dotsentry/dotsentry/internal/types"
)

func parse(t *testing.T, text string) *dotenv.Model {
	t.Helper()
	m, err := dotenv.Parse(text, dotenv.DefaultConfig())
	if err != nil {
		t.Fatalf("Parse(%q): %v", text, err)
	}
	return m
}

func byKind(issues []types.Issue, kind types.IssueKind) []types.Issue {
	var out []types.Issue
	for _, iss := range issues {
		if iss.Kind == kind {
			out = append(out, iss)
		}
	}
	return out
}

func TestValidate_MissingRequired(t *testing.T) {
	target := parse(t, "DATABASE_URL=postgres://x")
	template := parse(t, "DATABASE_URL=\nSECRET_KEY=")

	issues := Validate(target, template, DefaultOptions())
	if len(issues) != 1 {
		t.Fatalf("got %d issues, want exactly 1: %+v", len(issues), issues)
	}
	iss := issues[0]
	if iss.Kind != types.KindMissingRequired || iss.Severity != types.SevError {
		t.Fatalf("got %+v, want missing_required error", iss)
	}
	if iss.Variable != "SECRET_KEY" {
		t.Fatalf("Variable = %q, want SECRET_KEY", iss.Variable)
	}
}

func TestValidate_PlaceholderAnyKeyCasing(t *testing.T) {
	for _, text := range []string{
		"api_key=YOUR_KEY_HERE",
		"API_KEY=your_key_here",
		"Api_Key=YOUR_KEY_HERE",
	} {
		target := parse(t, text)
		issues := Validate(target, parse(t, text), DefaultOptions())
		found := byKind(issues, types.KindPlaceholder)
		if len(found) != 1 || found[0].Severity != types.SevError {
			t.Fatalf("%q: placeholder issues = %+v, want one error", text, found)
		}
	}
}

func TestValidate_PlaceholderBracketed(t *testing.T) {
	target := parse(t, `TOKEN="<your-token>"`)
	issues := Validate(target, parse(t, "TOKEN="), DefaultOptions())
	if len(byKind(issues, types.KindPlaceholder)) != 1 {
		t.Fatalf("bracketed value not flagged: %+v", issues)
	}
}

func TestValidate_PortRange(t *testing.T) {
	cases := []struct {
		value    string
		severity types.Severity
		flagged  bool
	}{
		{"99999", types.SevError, true},
		{"0", types.SevError, true},
		{"80", types.SevWarning, true},
		{"1024", types.SevWarning, true},
		{"1025", "", false},
		{"3000", "", false},
		{"65535", "", false},
		{"65536", types.SevError, true},
	}
	for _, tc := range cases {
		target := parse(t, "PORT="+tc.value)
		issues := byKind(Validate(target, parse(t, "PORT="), DefaultOptions()), types.KindInvalidPort)
		if !tc.flagged {
			if len(issues) != 0 {
				t.Fatalf("PORT=%s: unexpected issues %+v", tc.value, issues)
			}
			continue
		}
		if len(issues) != 1 || issues[0].Severity != tc.severity {
			t.Fatalf("PORT=%s: issues = %+v, want one %s", tc.value, issues, tc.severity)
		}
	}
}

func TestValidate_PortSuffixOnly(t *testing.T) {
	target := parse(t, "REDIS_PORT=70000\nPASSPORT=70000\nSUPPORT_LEVEL=99999")
	issues := byKind(Validate(target, target, DefaultOptions()), types.KindInvalidPort)
	if len(issues) != 1 || issues[0].Variable != "REDIS_PORT" {
		t.Fatalf("issues = %+v, want only REDIS_PORT", issues)
	}
}

func TestValidate_BooleanTrap(t *testing.T) {
	target := parse(t, "DEBUG=False\nVERBOSE=True\nWORKERS=4")
	issues := byKind(Validate(target, target, DefaultOptions()), types.KindBooleanStringTrap)
	if len(issues) != 2 {
		t.Fatalf("issues = %+v, want DEBUG and VERBOSE flagged", issues)
	}
}

func TestValidate_WeakSecretTiers(t *testing.T) {
	strong := strings.Repeat("a7b9c4d1e8", 6) // 60 chars, no weak words

	cases := []struct {
		name     string
		value    string
		severity types.Severity
		flagged  bool
	}{
		{"guessable word", "my-production-password-123456789012345678901234567890", types.SevError, true},
		{"too short", "a7b9c4d1e8f2g5h3", types.SevError, true},
		{"below minimum", "a7b9c4d1e8f2g5h3i6j0k9l8m7n6o5p4q3", types.SevWarning, true},
		{"low entropy", strings.Repeat("ab", 30), types.SevWarning, true},
		{"strong", strong, "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			target := parse(t, "SECRET_KEY="+tc.value)
			issues := byKind(Validate(target, target, DefaultOptions()), types.KindWeakSecret)
			if !tc.flagged {
				if len(issues) != 0 {
					t.Fatalf("unexpected issues %+v", issues)
				}
				return
			}
			if len(issues) != 1 || issues[0].Severity != tc.severity {
				t.Fatalf("issues = %+v, want one %s", issues, tc.severity)
			}
		})
	}
}

func TestValidate_WeakSecretOnlyForSecretNames(t *testing.T) {
	target := parse(t, "GREETING=hi")
	if issues := byKind(Validate(target, target, DefaultOptions()), types.KindWeakSecret); len(issues) != 0 {
		t.Fatalf("non-secret variable flagged: %+v", issues)
	}
}

func TestValidate_LocalhostOnlyInProduction(t *testing.T) {
	target := parse(t, "DATABASE_URL=postgres://localhost:5432/app")

	opts := DefaultOptions()
	if issues := byKind(Validate(target, target, opts), types.KindLocalhostInProd); len(issues) != 0 {
		t.Fatalf("flagged outside production mode: %+v", issues)
	}

	opts.Production = true
	issues := byKind(Validate(target, target, opts), types.KindLocalhostInProd)
	if len(issues) != 1 || issues[0].Severity != types.SevWarning {
		t.Fatalf("issues = %+v, want one warning", issues)
	}
}

func TestValidate_ExtraVariableIsInfo(t *testing.T) {
	target := parse(t, "KNOWN=1\nSURPRISE=2")
	template := parse(t, "KNOWN=")

	issues := byKind(Validate(target, template, DefaultOptions()), types.KindExtraVariable)
	if len(issues) != 1 || issues[0].Severity != types.SevInfo || issues[0].Variable != "SURPRISE" {
		t.Fatalf("issues = %+v, want one info for SURPRISE", issues)
	}
}

func TestValidate_OrderingSeverityThenLine(t *testing.T) {
	target := parse(t, "EXTRA=1\nDEBUG=True\nAPI_KEY=CHANGE_ME")
	template := parse(t, "DEBUG=\nAPI_KEY=\nMISSING=")

	issues := Validate(target, template, DefaultOptions())
	var ranks []int
	for _, iss := range issues {
		ranks = append(ranks, iss.Severity.Rank())
	}
	for i := 1; i < len(ranks); i++ {
		if ranks[i] > ranks[i-1] {
			t.Fatalf("issues not ordered by severity: %+v", issues)
		}
	}
}

func TestEscalate_PureAndPromoting(t *testing.T) {
	in := []types.Issue{
		{Severity: types.SevError},
		{Severity: types.SevWarning},
		{Severity: types.SevInfo},
	}
	out := Escalate(in)

	if in[1].Severity != types.SevWarning {
		t.Fatal("Escalate mutated its input")
	}
	if out[0].Severity != types.SevError || out[1].Severity != types.SevError || out[2].Severity != types.SevWarning {
		t.Fatalf("Escalate = %+v", out)
	}
}

func TestBlocking(t *testing.T) {
	if Blocking([]types.Issue{{Severity: types.SevWarning}}) {
		t.Fatal("warnings alone should not block")
	}
	if !Blocking([]types.Issue{{Severity: types.SevWarning}, {Severity: types.SevError}}) {
		t.Fatal("errors should block")
	}
}

// Package rules validates a parsed environment file against a template
// (typically .env.example). Each rule is evaluated independently; strict-mode
// escalation happens afterwards over the finished issue list.
package rules

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/dotsentry/dotsentry/internal/dotenv"
	"github.com/dotsentry/dotsentry/internal/scanner"
	"github.com/dotsentry/dotsentry/internal/types"
)

// Options tunes rule evaluation. Zero value plus DefaultOptions covers the
// common case.
type Options struct {
	// Production enables the localhost rule: values pointing at localhost
	// are suspicious when the file is destined for a container or server.
	Production bool

	// MinSecretLength is the shortest acceptable secret value.
	MinSecretLength int

	// EntropyThreshold is the minimum Shannon entropy (bits per character)
	// for a secret value before it counts as weak.
	EntropyThreshold float64

	// TargetPath and TemplatePath are used in messages and suggestions only.
	TargetPath   string
	TemplatePath string
}

// DefaultOptions returns the thresholds used by the CLI.
func DefaultOptions() Options {
	return Options{
		MinSecretLength:  50,
		EntropyThreshold: 3.0,
		TargetPath:       ".env",
		TemplatePath:     ".env.example",
	}
}

// placeholders are matched case-insensitively as substrings of the value.
// Immutable; constructed once.
var placeholders = []string{
	"your_key_here",
	"your_secret_here",
	"your_token_here",
	"change_me",
	"changeme",
	"replace_me",
	"replace_this",
	"example",
	"xxx",
	"todo",
	"generate-with",
}

var (
	bracketRe    = regexp.MustCompile(`^<[^>]*>$`)
	secretNameRe = regexp.MustCompile(`(?i)(SECRET|KEY|TOKEN|PASSWORD|PASSWD)`)
	boolNameRe   = regexp.MustCompile(`(?i)(^(DEBUG|VERBOSE|IS_|HAS_|USE_|ENABLE|DISABLE)|_(ENABLED|DISABLED|DEBUG|FLAG)$)`)
	hostNameRe   = regexp.MustCompile(`(URL|HOST|ADDR|ENDPOINT)`)
	digitsRe     = regexp.MustCompile(`^\d+$`)
)

// weakWords inside a secret value mark it weak regardless of length.
var weakWords = []string{"secret", "password", "dev", "test", "1234", "abcd", "changeme"}

// Validate evaluates every rule over target against template and returns the
// issues ordered by severity (errors, warnings, info) then line number.
func Validate(target, template *dotenv.Model, opts Options) []types.Issue {
	if opts.MinSecretLength <= 0 {
		opts.MinSecretLength = DefaultOptions().MinSecretLength
	}
	if opts.EntropyThreshold <= 0 {
		opts.EntropyThreshold = DefaultOptions().EntropyThreshold
	}

	var issues []types.Issue

	issues = append(issues, missingRequired(target, template, opts)...)
	for _, e := range target.Entries() {
		issues = append(issues, checkEntry(e, opts)...)
	}
	issues = append(issues, extraVariables(target, template, opts)...)

	sortIssues(issues)
	return issues
}

func missingRequired(target, template *dotenv.Model, opts Options) []types.Issue {
	var out []types.Issue
	for _, e := range template.Entries() {
		if target.Has(e.Name) {
			continue
		}
		out = append(out, types.Issue{
			Severity:   types.SevError,
			Kind:       types.KindMissingRequired,
			Variable:   e.Name,
			Message:    fmt.Sprintf("missing required variable %s", e.Name),
			File:       opts.TargetPath,
			Suggestion: fmt.Sprintf("add %s=<value> to %s", e.Name, opts.TargetPath),
		})
	}
	return out
}

func extraVariables(target, template *dotenv.Model, opts Options) []types.Issue {
	var out []types.Issue
	for _, e := range target.Entries() {
		if template.Has(e.Name) {
			continue
		}
		out = append(out, types.Issue{
			Severity:   types.SevInfo,
			Kind:       types.KindExtraVariable,
			Variable:   e.Name,
			Message:    fmt.Sprintf("%s is not declared in %s", e.Name, opts.TemplatePath),
			File:       opts.TargetPath,
			Line:       e.Line,
			Suggestion: fmt.Sprintf("add %s to %s or remove it from %s", e.Name, opts.TemplatePath, opts.TargetPath),
		})
	}
	return out
}

func checkEntry(e *dotenv.Entry, opts Options) []types.Issue {
	var out []types.Issue

	if IsPlaceholder(e.Value) {
		out = append(out, types.Issue{
			Severity:   types.SevError,
			Kind:       types.KindPlaceholder,
			Variable:   e.Name,
			Message:    fmt.Sprintf("%s looks like a placeholder value", e.Name),
			File:       opts.TargetPath,
			Line:       e.Line,
			Suggestion: placeholderSuggestion(e.Name),
		})
		return out // a placeholder is not additionally weak or truthy
	}

	if iss, ok := booleanTrap(e, opts); ok {
		out = append(out, iss)
	}
	if iss, ok := weakSecret(e, opts); ok {
		out = append(out, iss)
	}
	if opts.Production {
		if iss, ok := localhostValue(e, opts); ok {
			out = append(out, iss)
		}
	}
	if iss, ok := portRange(e, opts); ok {
		out = append(out, iss)
	}
	return out
}

// IsPlaceholder reports whether value is an unfilled credential slot, such as
// YOUR_KEY_HERE, CHANGE_ME, or a bracketed <like-this> template.
func IsPlaceholder(value string) bool {
	if bracketRe.MatchString(strings.TrimSpace(value)) {
		return true
	}
	lower := strings.ToLower(value)
	for _, p := range placeholders {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return false
}

func placeholderSuggestion(name string) string {
	upper := strings.ToUpper(name)
	switch {
	case strings.Contains(upper, "SECRET"):
		return "run: openssl rand -hex 32"
	case strings.Contains(upper, "AWS"):
		return "get a real credential from the AWS console"
	case strings.Contains(upper, "STRIPE"):
		return "get a real key from the Stripe dashboard"
	default:
		return ""
	}
}

func booleanTrap(e *dotenv.Entry, opts Options) (types.Issue, bool) {
	v := e.Value
	trapped := v == "True" || v == "False" || (v == "0" && boolNameRe.MatchString(e.Name))
	if !trapped {
		return types.Issue{}, false
	}
	return types.Issue{
		Severity:   types.SevWarning,
		Kind:       types.KindBooleanStringTrap,
		Variable:   e.Name,
		Message:    fmt.Sprintf("%s is the string %q, which many runtimes treat as truthy", e.Name, v),
		File:       opts.TargetPath,
		Line:       e.Line,
		Suggestion: "use 1 or an empty value instead of a spelled-out boolean",
	}, true
}

func weakSecret(e *dotenv.Entry, opts Options) (types.Issue, bool) {
	if !secretNameRe.MatchString(e.Name) || e.Value == "" {
		return types.Issue{}, false
	}

	iss := types.Issue{
		Kind:       types.KindWeakSecret,
		Variable:   e.Name,
		File:       opts.TargetPath,
		Line:       e.Line,
		Suggestion: "run: openssl rand -hex 32",
	}

	lower := strings.ToLower(e.Value)
	for _, w := range weakWords {
		if strings.Contains(lower, w) {
			iss.Severity = types.SevError
			iss.Message = fmt.Sprintf("%s contains the guessable token %q", e.Name, w)
			return iss, true
		}
	}
	if len(e.Value) < 32 {
		iss.Severity = types.SevError
		iss.Message = fmt.Sprintf("%s is only %d characters long", e.Name, len(e.Value))
		return iss, true
	}
	if len(e.Value) < opts.MinSecretLength {
		iss.Severity = types.SevWarning
		iss.Message = fmt.Sprintf("%s is shorter than %d characters", e.Name, opts.MinSecretLength)
		return iss, true
	}
	if h := scanner.Entropy(e.Value); h < opts.EntropyThreshold {
		iss.Severity = types.SevWarning
		iss.Message = fmt.Sprintf("%s has low entropy (%.1f bits/char)", e.Name, h)
		return iss, true
	}
	return types.Issue{}, false
}

func localhostValue(e *dotenv.Entry, opts Options) (types.Issue, bool) {
	if !hostNameRe.MatchString(strings.ToUpper(e.Name)) {
		return types.Issue{}, false
	}
	if !strings.Contains(e.Value, "localhost") && !strings.Contains(e.Value, "127.0.0.1") {
		return types.Issue{}, false
	}
	return types.Issue{
		Severity:   types.SevWarning,
		Kind:       types.KindLocalhostInProd,
		Variable:   e.Name,
		Message:    fmt.Sprintf("%s points at localhost", e.Name),
		File:       opts.TargetPath,
		Line:       e.Line,
		Suggestion: "in a container, use the service name instead (e.g. db:5432)",
	}, true
}

func portRange(e *dotenv.Entry, opts Options) (types.Issue, bool) {
	if e.Name != "PORT" && !strings.HasSuffix(e.Name, "_PORT") {
		return types.Issue{}, false
	}
	if !digitsRe.MatchString(e.Value) {
		return types.Issue{}, false
	}
	// Atoi overflow counts as out of range
	n, err := strconv.Atoi(e.Value)
	if err == nil && n >= 1025 && n <= 65535 {
		return types.Issue{}, false
	}

	iss := types.Issue{
		Kind:     types.KindInvalidPort,
		Variable: e.Name,
		File:     opts.TargetPath,
		Line:     e.Line,
	}
	if err != nil || n < 1 || n > 65535 {
		iss.Severity = types.SevError
		iss.Message = fmt.Sprintf("%s=%s is outside the valid port range 1-65535", e.Name, e.Value)
		iss.Suggestion = "pick a port between 1024 and 65535"
	} else {
		iss.Severity = types.SevWarning
		iss.Message = fmt.Sprintf("%s=%s is a privileged port", e.Name, e.Value)
		iss.Suggestion = "ports below 1025 need elevated permissions"
	}
	return iss, true
}

func sortIssues(issues []types.Issue) {
	sort.SliceStable(issues, func(i, j int) bool {
		if issues[i].Severity != issues[j].Severity {
			return issues[i].Severity.Rank() > issues[j].Severity.Rank()
		}
		return issues[i].Line < issues[j].Line
	})
}

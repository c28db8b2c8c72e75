package types

// Confidence is a qualitative certainty tier for a scanner finding.
type Confidence string

const (
	ConfHigh   Confidence = "high"
	ConfMedium Confidence = "medium"
	ConfLow    Confidence = "low"
)

// Rank maps a confidence tier to a sortable weight (higher is more certain).
func (c Confidence) Rank() int {
	switch c {
	case ConfHigh:
		return 3
	case ConfMedium:
		return 2
	case ConfLow:
		return 1
	}
	return 0
}

// Severity is the level of a validation issue.
type Severity string

const (
	SevError   Severity = "error"
	SevWarning Severity = "warning"
	SevInfo    Severity = "info"
)

// Rank maps a severity to a sortable weight (higher is worse).
func (s Severity) Rank() int {
	switch s {
	case SevError:
		return 3
	case SevWarning:
		return 2
	case SevInfo:
		return 1
	}
	return 0
}

// Finding describes a potential secret detected at a path and line,
// including the pattern name, confidence tier, and an optional revocation URL.
type Finding struct {
	Path       string     `json:"path"`
	Line       int        `json:"line"`
	Column     int        `json:"column,omitempty"` // 1-based, 0 if unknown
	Length     int        `json:"length,omitempty"` // matched span in bytes
	Pattern    string     `json:"pattern"`
	Confidence Confidence `json:"confidence"`
	Match      string     `json:"match"` // may be redacted
	Variable   string     `json:"variable,omitempty"`
	RevokeURL  string     `json:"revoke_url,omitempty"`
}

// IssueKind identifies which validation rule produced an issue.
type IssueKind string

const (
	KindMissingRequired   IssueKind = "missing_required"
	KindPlaceholder       IssueKind = "placeholder"
	KindBooleanStringTrap IssueKind = "boolean_string_trap"
	KindWeakSecret        IssueKind = "weak_secret"
	KindLocalhostInProd   IssueKind = "localhost_in_prod"
	KindInvalidPort       IssueKind = "invalid_port"
	KindExtraVariable     IssueKind = "extra_variable"
)

// Issue is a structured validation result, not an error: whether a run fails
// is decided by severity policy after all rules have run.
type Issue struct {
	Severity   Severity  `json:"severity"`
	Kind       IssueKind `json:"kind"`
	Variable   string    `json:"variable"`
	Message    string    `json:"message"`
	File       string    `json:"file"`
	Line       int       `json:"line,omitempty"`
	Suggestion string    `json:"suggestion,omitempty"`
}

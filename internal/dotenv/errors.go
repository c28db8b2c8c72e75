package dotenv

import "fmt"

// Parse errors are typed so callers can branch on the failure mode. All of
// them are fatal to the parse of one source but must not abort a multi-file
// run; the caller records the failure and moves on.

// MissingDelimiterError reports a non-comment line without a '='.
type MissingDelimiterError struct {
	Line int
}

func (e *MissingDelimiterError) Error() string {
	return fmt.Sprintf("line %d: missing '=' separator", e.Line)
}

// InvalidIdentifierError reports a variable name outside
// [A-Za-z_][A-Za-z0-9_]*. Only raised in strict mode; otherwise the line is
// skipped with a warning.
type InvalidIdentifierError struct {
	Line int
	Name string
}

func (e *InvalidIdentifierError) Error() string {
	return fmt.Sprintf("line %d: invalid variable name %q", e.Line, e.Name)
}

// UndefinedVariableError reports a ${VAR} or $VAR reference to a variable not
// defined earlier in the same source. Only raised in strict mode.
type UndefinedVariableError struct {
	Line int
	Name string
}

func (e *UndefinedVariableError) Error() string {
	return fmt.Sprintf("line %d: undefined variable %q", e.Line, e.Name)
}

// ExpansionOverflowError reports a reference chain deeper than the configured
// maximum.
type ExpansionOverflowError struct {
	Line int
	Max  int
}

func (e *ExpansionOverflowError) Error() string {
	return fmt.Sprintf("line %d: variable expansion exceeds max depth %d", e.Line, e.Max)
}

// UnterminatedQuoteError reports a quote that is not closed on the same line.
// Multiline values are unsupported and fail fast rather than truncating.
type UnterminatedQuoteError struct {
	Line int
}

func (e *UnterminatedQuoteError) Error() string {
	return fmt.Sprintf("line %d: unterminated quoted value", e.Line)
}

// EncodingError reports input that is not valid UTF-8.
type EncodingError struct{}

func (e *EncodingError) Error() string {
	return "input is not valid UTF-8"
}

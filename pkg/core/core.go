package core

import (
	"context"
	"fmt"

	"github.com/dotsentry/dotsentry/internal/convert"
	"github.com/dotsentry/dotsentry/internal/diff"
	"github.com/dotsentry/dotsentry/internal/dotenv"
	"github.com/dotsentry/dotsentry/internal/engine"
	"github.com/dotsentry/dotsentry/internal/rules"
	"github.com/dotsentry/dotsentry/internal/scanner"
	"github.com/dotsentry/dotsentry/internal/types"
)

// Re-export selected internal types as a stable public API surface.
// These are type aliases so external consumers can depend on a stable path.
type (
	Model           = dotenv.Model
	Entry           = dotenv.Entry
	ParserConfig    = dotenv.Config
	Finding         = types.Finding
	Issue           = types.Issue
	DiffResult      = diff.Result
	ScanConfig      = engine.Config
	ValidateOptions = rules.Options
	Converter       = convert.Converter
	ConvertOptions  = convert.Options
	ScannerOptions  = scanner.Options
)

// Parse lexes env file text into an ordered model.
func Parse(text string, cfg ParserConfig) (*Model, error) {
	return dotenv.Parse(text, cfg)
}

// DefaultParserConfig returns the parser settings the CLI uses.
func DefaultParserConfig() ParserConfig { return dotenv.DefaultConfig() }

// DefaultValidateOptions returns the validation settings the CLI uses.
func DefaultValidateOptions() ValidateOptions { return rules.DefaultOptions() }

// Serialize renders a model back to env file text.
func Serialize(m *Model) string { return dotenv.Serialize(m) }

// Validate evaluates every rule over target against template.
func Validate(target, template *Model, opts ValidateOptions) []Issue {
	return rules.Validate(target, template, opts)
}

// Diff compares target against reference.
func Diff(target, reference *Model, reverse bool) *DiffResult {
	return diff.Compare(target, reference, reverse)
}

// Scan runs the secret scanner over a directory tree.
func Scan(ctx context.Context, cfg ScanConfig) ([]Finding, error) {
	return engine.Scan(ctx, cfg)
}

// ScanText runs the scanner over in-memory file texts.
func ScanText(files map[string]string, opts ScannerOptions) []Finding {
	in := make([]scanner.File, 0, len(files))
	for path, text := range files {
		in = append(in, scanner.File{Path: path, Text: text})
	}
	return scanner.Scan(in, opts)
}

// Convert projects a model into the named output format.
func Convert(m *Model, format string, opts ConvertOptions) (string, error) {
	c, ok := convert.Get(format)
	if !ok {
		return "", fmt.Errorf("unknown format %q", format)
	}
	return c.Convert(m, opts)
}

// GetConverter looks up a registered output format by name.
func GetConverter(name string) (Converter, bool) { return convert.Get(name) }

// ConverterNames lists the registered output formats.
func ConverterNames() []string { return convert.Names() }

// Package core provides a small, stable facade over dotsentry's internal
// packages for external integrations. It deliberately re-exports a narrow API
// surface so editor plugins and CI tooling can depend on a stable import path
// without reaching into internal implementation packages.
//
// Example:
//
//	model, err := core.Parse(text, core.DefaultParserConfig())
//	if err != nil { /* handle */ }
//	issues := core.Validate(model, template, core.DefaultValidateOptions())
package core

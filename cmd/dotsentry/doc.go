// Package dotsentry provides the command-line interface for the dotsentry
// tool. It configures subcommands (validate, diff, scan, convert, doctor,
// etc.), parses flags, and executes the selected command.
//
// Typical usage from a main package:
//
//	package main
//	import "github.com/dotsentry/dotsentry/cmd/dotsentry"
//	func main() { dotsentry.Execute() }
package dotsentry

// Package model defines the domain types and value objects for the
// fixfmt CLI.
//
// This package contains pure data structures with no external dependencies:
// file classification (FileKind), the per-file formatting outcome
// (FileResult), and the end-of-run aggregate (RunSummary).
//
// The package also defines exit codes (ExitCode) and a custom error type
// (CLIError) that carries exit codes for proper OS process exit handling.
package model

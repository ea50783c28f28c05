// Package model defines the domain types for the fixfmt CLI.
//
// All entities in this package are transient representations of a single
// command invocation: the files selected for formatting, what happened to
// each of them, and the aggregate outcome. Nothing here survives the run.
package model

import (
	"fmt"
	"path"
	"path/filepath"
	"strings"
)

// FileKind classifies a candidate file by which formatting pipeline
// applies to it:
//
//	KindPython → import sorting + code formatter + whitespace fixes
//	KindCpp    → clang-format (when configured) or whitespace fixes
//	KindText   → whitespace fixes only (Cython, CMake, Java, JS, ...)
type FileKind string

const (
	// KindPython indicates a .py file, eligible for isort and either
	// black or the legacy code formatter.
	KindPython FileKind = "python"

	// KindCpp indicates a C/C++/CUDA source or header, eligible for
	// clang-format when a .clang-format file governs it.
	KindCpp FileKind = "cpp"

	// KindText indicates any other supported file type, which only
	// receives textual normalization (trailing whitespace, tabs).
	KindText FileKind = "text"
)

// String returns the string representation of FileKind.
func (k FileKind) String() string {
	return string(k)
}

// IsValid checks whether the FileKind value is one of the predefined kinds.
func (k FileKind) IsValid() bool {
	switch k {
	case KindPython, KindCpp, KindText:
		return true
	default:
		return false
	}
}

// cppPatterns are the file name patterns treated as C++ sources.
// These receive clang-format treatment and the UTF-8/BOM encoding checks.
var cppPatterns = []string{
	"*.cpp",
	"*.c",
	"*.h",
	"*.hpp",
	"*.hxx",
	"*.cxx",
	"*.cu",
}

// IncludePatterns lists every file name pattern the tool will touch.
// Exclusion globs from the project configuration take precedence over
// this list.
var IncludePatterns = append([]string{
	"*.py",
	"*.java",
	"*.js",
	"*.pyx",
	"*.pxd",
	"CMakeLists.txt",
	"*.cmake",
}, cppPatterns...)

// IsCpp reports whether the file name matches one of the C++ patterns.
// Only the base name is considered, mirroring how the include patterns
// are matched during file selection.
func IsCpp(filename string) bool {
	base := filepath.Base(filename)
	for _, p := range cppPatterns {
		// path.Match cannot fail here: the patterns above are all valid.
		if ok, _ := path.Match(p, base); ok {
			return true
		}
	}
	return false
}

// ClassifyFile determines the FileKind for a file name.
// Classification is purely name-based; content is never inspected.
func ClassifyFile(filename string) FileKind {
	if IsCpp(filename) {
		return KindCpp
	}
	if strings.EqualFold(filepath.Ext(filename), ".py") {
		return KindPython
	}
	return KindText
}

// FileResult holds the outcome of processing a single file.
//
// A file can both change and carry errors (e.g. a Python file whose BOM
// was stripped records an error and a content change). Errors never abort
// the run; they are accumulated and reported in the end-of-run summary.
type FileResult struct {
	// Path is the file path as it was selected (not necessarily absolute).
	Path string `json:"path"`

	// Changed reports whether the file content differs after formatting
	// (fix mode) or would differ (check mode).
	Changed bool `json:"changed"`

	// Formatter names the external formatter that handled the file,
	// when one applies ("clang-format", "legacy formatter"). Empty when
	// only textual normalization ran.
	Formatter string `json:"formatter,omitempty"`

	// Errors lists the per-file error messages produced while processing.
	Errors []string `json:"errors,omitempty"`
}

// RunSummary aggregates the outcome of a whole invocation.
// It feeds both the human-readable final line and the --json output.
type RunSummary struct {
	// Check records whether the run was a check-only run.
	Check bool `json:"check"`

	// Analysed counts the files that passed the selection filters and
	// entered the formatting pipeline.
	Analysed int `json:"analysed"`

	// Changed counts the files that were (or would be) reformatted.
	Changed int `json:"changed"`

	// BlackWouldFormat records that the batch black invocation reported,
	// in check mode, files it would reformat. Black reports those files
	// itself, so they are not counted in Changed.
	BlackWouldFormat bool `json:"blackWouldFormat,omitempty"`

	// Errors lists every per-file error message, in processing order.
	Errors []string `json:"errors,omitempty"`

	// Results holds the per-file outcomes, in processing order.
	Results []FileResult `json:"results,omitempty"`
}

// Failed reports whether the run must exit non-zero: any per-file error,
// or (in check mode) any file that would be reformatted.
func (s *RunSummary) Failed() bool {
	if len(s.Errors) > 0 {
		return true
	}
	return s.Check && (s.Changed > 0 || s.BlackWouldFormat)
}

// ExitCode defines the CLI exit codes. These codes allow pre-commit hook
// chains and CI systems to programmatically determine the outcome of a run.
type ExitCode int

const (
	// ExitSuccess indicates the command completed successfully and, in
	// check mode, that no file would be reformatted.
	ExitSuccess ExitCode = 0

	// ExitGeneralError indicates per-file errors, check-mode differences,
	// or any other unspecified failure.
	ExitGeneralError ExitCode = 1

	// ExitGitError indicates a Git invocation failed (e.g. --commit was
	// used outside a repository).
	ExitGitError ExitCode = 2

	// ExitHookError indicates the pre-commit hook could not be installed.
	ExitHookError ExitCode = 3
)

// CLIError is a custom error type that carries an exit code.
// This allows the CLI layer to translate domain errors into
// appropriate process exit codes.
type CLIError struct {
	// Code is the exit code to return to the OS.
	Code ExitCode

	// Message is the human-readable error description. It may be empty
	// for failures that already reported themselves (e.g. the per-file
	// ERRORS banner), in which case the CLI prints nothing further.
	Message string

	// Err is the underlying error, if any.
	Err error
}

// Error satisfies the error interface. It returns the human-readable
// error message, optionally including the underlying error.
func (e *CLIError) Error() string {
	if e.Err != nil {
		if e.Message == "" {
			return e.Err.Error()
		}
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for use with errors.Is/errors.As.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewCLIError creates a new CLIError with the given exit code and message.
func NewCLIError(code ExitCode, message string) *CLIError {
	return &CLIError{Code: code, Message: message}
}

// WrapCLIError creates a new CLIError that wraps an existing error.
func WrapCLIError(code ExitCode, message string, err error) *CLIError {
	return &CLIError{Code: code, Message: message, Err: err}
}

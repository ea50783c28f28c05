// Package format implements the per-file formatting pipeline.
//
// Depending on the file kind and repository configuration, a file is
// handled by one of:
//
//   - clang-format (C++ files governed by a .clang-format), invoked once
//     per file with -i, or -output-replacements-xml in check mode
//   - isort plus either black or the legacy stdin/stdout formatter
//     (Python files); black runs once over the whole batch, everything
//     else runs per file
//   - textual normalization only (all other supported types): trailing
//     whitespace stripped, tabs expanded to 4 spaces, with the file's
//     original EOL style and trailing-newline state preserved
//
// All formatter invocations are synchronous subprocesses. Failures are
// recorded as per-file errors and never abort the run.
package format

// Package fileset resolves which files a fixfmt run will touch.
//
// Candidates come from three sources (direct arguments, a recursive
// directory walk, or the git-modified set) and are then filtered:
//
//   - include patterns match the base name (*.py, *.cpp, CMakeLists.txt, ...)
//   - exclusion globs from the project configuration match the absolute
//     path and take precedence over the include patterns
//   - .git and .hg directories and git-ignored files are never walked into
//   - .py files paired with a jupytext-managed notebook are skipped,
//     since jupytext regenerates them from the notebook
//
// Patterns use fnmatch-style semantics: '*' matches any run of characters
// including path separators, as in the Python fnmatch module.
package fileset

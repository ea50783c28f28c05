// Package config resolves the repository-level configuration a fixfmt
// run depends on:
//
//   - pyproject.toml discovery (common ancestor of the inputs, then
//     upward) and its [tool.fix_format] section: exclusion globs and the
//     legacy Python formatter command
//   - [tool.black] presence, which switches Python formatting from the
//     legacy formatter to a single batch black invocation
//   - the effective isort line_length, read from the nearest .isort.cfg,
//     setup.cfg, tox.ini, or pyproject.toml, used to flag repositories
//     with missing or stale isort configuration
//   - .clang-format discovery for C++ files, searched upward from each
//     file with per-directory caching, honoring DisableFormat
package config

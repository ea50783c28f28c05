// Package hook installs the fixfmt pre-commit hook into a Git
// repository.
//
// The installation is parts-based: .git/hooks/pre-commit is a small
// driver that executes every script in .git/hooks/_pre-commit-parts/ in
// name order and fails the commit if any part fails. fixfmt contributes
// one part, which pipes the staged file list through
// `fixfmt --check --stdin`. The parts directory is recreated on every
// install, so re-running installation is safe.
//
// Submodule checkouts, where .git is a file pointing at the superproject,
// are skipped: their hooks live in the superproject's .git directory.
package hook

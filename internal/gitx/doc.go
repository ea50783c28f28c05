// Package gitx provides the Git integration for the fixfmt CLI.
//
// All Git operations are performed via os/exec calls to the git binary,
// rather than using a Git library like go-git. This approach:
//   - Avoids CGO dependencies (libgit2)
//   - Uses the exact same Git behavior the user sees in their terminal
//   - Keeps ignore-rule and porcelain semantics identical to the hooks
//     that later consume the tool's exit code
//
// The package answers two questions: which files has the user modified
// (for the --commit flag), and which files does Git ignore (so directory
// walks skip build output).
package gitx

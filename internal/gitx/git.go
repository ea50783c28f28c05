package gitx

import (
	"fmt"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"

	"github.com/mmr-tortoise/fixfmt/internal/model"
)

// RepoRoot returns the absolute path to the top-level directory of the
// Git repository containing the given path.
//
// This uses `git rev-parse --show-toplevel`, which works correctly for
// both the main repository and worktrees.
func RepoRoot(dir string) (string, error) {
	output, err := runGit(dir, "rev-parse", "--show-toplevel")
	if err != nil {
		return "", err
	}
	// Trim whitespace/newline from git output.
	return strings.TrimSpace(output), nil
}

// ModifiedFiles returns the sorted union of files the user is about to
// commit or has touched in the working tree:
//
//   - staged changes:   git diff --name-only --diff-filter=ACM --staged
//   - unstaged changes: git diff --name-only --diff-filter=ACM
//   - untracked files:  git ls-files -o --full-name --exclude-standard
//
// The ACM diff filter keeps added, copied, and modified files — deleted
// and renamed-away paths no longer exist on disk and must not be
// formatted. All paths are returned absolute, joined against the repo
// root, because git prints them relative to the top level.
func ModifiedFiles(dir string) ([]string, error) {
	root, err := RepoRoot(dir)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	commands := [][]string{
		{"diff", "--name-only", "--diff-filter=ACM", "--staged"},
		{"diff", "--name-only", "--diff-filter=ACM"},
		{"ls-files", "-o", "--full-name", "--exclude-standard"},
	}
	for _, args := range commands {
		output, err := runGit(dir, args...)
		if err != nil {
			return nil, err
		}
		for _, line := range strings.Split(output, "\n") {
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			seen[line] = struct{}{}
		}
	}

	files := make([]string, 0, len(seen))
	for rel := range seen {
		files = append(files, filepath.Join(root, rel))
	}
	sort.Strings(files)
	return files, nil
}

// IgnoredFiles returns the set of git-ignored files under directory,
// keyed by absolute, cleaned path.
//
// It parses `git status --ignored --untracked-files=all --porcelain=2`
// output, where ignored entries are prefixed with "!". If the directory
// is not tracked by git at all, an empty set is returned rather than an
// error — directory walks outside a repository are a supported case.
func IgnoredFiles(directory string) map[string]struct{} {
	result := make(map[string]struct{})

	// Resolve once: git runs with this as its cwd (-C), and porcelain
	// paths come back relative to that cwd, so relative arguments would
	// both break the pathspec and corrupt the joined keys.
	absDir, err := filepath.Abs(directory)
	if err != nil {
		return result
	}

	if _, err := RepoRoot(absDir); err != nil {
		// Assume we are not in a directory tracked by git.
		return result
	}

	output, err := runGit(absDir, "status", "--ignored",
		"--untracked-files=all", "--porcelain=2", absDir)
	if err != nil {
		return result
	}

	for _, line := range strings.Split(output, "\n") {
		if !strings.HasPrefix(line, "!") {
			continue
		}
		p := strings.TrimSpace(line[1:])
		if p == "" {
			continue
		}
		// filepath.Join also cleans the result.
		result[filepath.Join(absDir, p)] = struct{}{}
	}
	return result
}

// runGit executes a git command with the given arguments in the specified
// directory.
//
// It captures stdout and stderr separately. On success it returns the
// stdout output. On failure it returns a model.CLIError with ExitGitError,
// including the stderr output in the error message for diagnostics.
//
// The dir parameter is passed to git via the -C flag, which causes git to
// change to that directory before doing anything else. This avoids mutating
// the process's working directory.
func runGit(dir string, args ...string) (string, error) {
	fullArgs := append([]string{"-C", dir}, args...)

	// #nosec G204 — args are constructed internally, not from user input
	cmd := exec.Command("git", fullArgs...)

	var stdout, stderr strings.Builder
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		stderrStr := strings.TrimSpace(stderr.String())
		message := fmt.Sprintf("git %s failed", strings.Join(args, " "))
		if stderrStr != "" {
			message = fmt.Sprintf("%s: %s", message, stderrStr)
		}
		return "", model.WrapCLIError(model.ExitGitError, message, err)
	}

	return stdout.String(), nil
}

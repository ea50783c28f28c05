package hook

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmr-tortoise/fixfmt/internal/model"
)

// setupRepoDir creates a bare-bones repository layout: just the .git
// directory structure hook installation needs.
func setupRepoDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, ".git", "hooks"), 0755))
	return dir
}

// TestInstallPreCommit verifies the installed layout: driver script,
// parts directory, the fixfmt part, and executable bits.
func TestInstallPreCommit(t *testing.T) {
	repo := setupRepoDir(t)

	require.NoError(t, InstallPreCommit(repo))

	preCommit := filepath.Join(repo, ".git", "hooks", "pre-commit")
	info, err := os.Stat(preCommit)
	require.NoError(t, err)
	if runtime.GOOS != "windows" {
		assert.NotZero(t, info.Mode().Perm()&0100, "pre-commit should be executable")
	}

	content, err := os.ReadFile(preCommit)
	require.NoError(t, err)
	assert.Contains(t, string(content), "_pre-commit-parts")

	part := filepath.Join(repo, ".git", "hooks", "_pre-commit-parts", "00001_fixfmt")
	partContent, err := os.ReadFile(part)
	require.NoError(t, err)
	assert.Contains(t, string(partContent), "fixfmt --check --stdin")
	if runtime.GOOS != "windows" {
		partInfo, err := os.Stat(part)
		require.NoError(t, err)
		assert.NotZero(t, partInfo.Mode().Perm()&0100, "hook part should be executable")
	}
}

// TestInstallPreCommitFromSubdirectory verifies the upward .git search.
func TestInstallPreCommitFromSubdirectory(t *testing.T) {
	repo := setupRepoDir(t)
	sub := filepath.Join(repo, "src", "pkg")
	require.NoError(t, os.MkdirAll(sub, 0755))

	require.NoError(t, InstallPreCommit(sub))

	_, err := os.Stat(filepath.Join(repo, ".git", "hooks", "pre-commit"))
	assert.NoError(t, err)
}

// TestInstallPreCommitRecreatesParts verifies that stale parts from a
// previous install are removed.
func TestInstallPreCommitRecreatesParts(t *testing.T) {
	repo := setupRepoDir(t)
	partsDir := filepath.Join(repo, ".git", "hooks", "_pre-commit-parts")
	require.NoError(t, os.MkdirAll(partsDir, 0755))
	stale := filepath.Join(partsDir, "00002_oldtool")
	require.NoError(t, os.WriteFile(stale, []byte("#!/bin/bash\n"), 0755))

	require.NoError(t, InstallPreCommit(repo))

	_, err := os.Stat(stale)
	assert.True(t, os.IsNotExist(err), "stale hook part should be removed")
}

// TestInstallPreCommitSubmodule verifies that a submodule checkout
// (.git is a file) is skipped without error.
func TestInstallPreCommitSubmodule(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".git"),
		[]byte("gitdir: ../.git/modules/sub\n"), 0644))

	require.NoError(t, InstallPreCommit(dir))

	_, err := os.Stat(filepath.Join(dir, ".git", "hooks", "pre-commit"))
	assert.Error(t, err, "no hook should be installed in a submodule")
}

// TestFindAncestorWithGitMissing verifies the error outside any
// repository, carrying the hook exit code.
func TestFindAncestorWithGitMissing(t *testing.T) {
	_, err := FindAncestorWithGit(t.TempDir())
	require.Error(t, err)

	var cliErr *model.CLIError
	require.ErrorAs(t, err, &cliErr)
	assert.Equal(t, model.ExitHookError, cliErr.Code)
}

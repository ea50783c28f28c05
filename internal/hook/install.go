package hook

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mmr-tortoise/fixfmt/internal/model"
)

// partsDirName is the directory under .git/hooks holding the individual
// hook parts run by the pre-commit driver.
const partsDirName = "_pre-commit-parts"

// hookName is the name of the part contributed by this tool. The numeric
// prefix orders parts; installation always recreates the parts directory,
// so fixfmt is part number one.
const hookName = "00001_fixfmt"

// preCommitScript is the driver installed as .git/hooks/pre-commit.
// It runs every part, even if an earlier one fails, and exits non-zero
// if any part failed.
const preCommitScript = `#!/bin/bash
# installed automatically by fixfmt --git-hooks, changes will be lost!

echo ` + "`pwd`" + `
globalreturncode=0
for i in ` + "`ls .git/hooks/_pre-commit-parts`" + `;
do
    .git/hooks/_pre-commit-parts/$i
    returncode=$?
    if [ "$returncode" != "0" ]
    then
        globalreturncode=1
    fi
done
exit $globalreturncode
`

// partScript is the fixfmt hook part. It checks the staged file list and
// blocks the commit when formatting is non-compliant, telling the
// developer how to fix it.
const partScript = `#!/bin/bash

echo -e "\033[34mHook fixfmt in progress ....\033[0m"
if ! which fixfmt >/dev/null 2>&1
then
    echo "fixfmt not found, install it and make sure it is on PATH"
    exit 1
else
    git diff-index --diff-filter=ACM --name-only --cached HEAD | fixfmt --check --stdin
    returncode=$?
    if [ "$returncode" != "0" ]
    then
        echo ""
        echo "fixfmt check failed (status=$returncode)! To fix, execute:"
        echo "  fixfmt -c"
        exit 1
    fi
fi
`

// InstallPreCommit installs the pre-commit hook for the repository
// enclosing beginIn (walking upward to find .git).
//
// When the repository is a submodule checkout, .git is a file rather
// than a directory; hook installation is skipped with a notice, since
// submodule hooks live in the superproject.
func InstallPreCommit(beginIn string) error {
	gitRoot, err := FindAncestorWithGit(beginIn)
	if err != nil {
		return err
	}

	fmt.Printf("%s hooks\n", filepath.Base(gitRoot))

	gitPath := filepath.Join(gitRoot, ".git")
	info, err := os.Stat(gitPath)
	if err != nil {
		return model.WrapCLIError(model.ExitHookError,
			fmt.Sprintf("expected to find %s", gitPath), err)
	}
	if !info.IsDir() {
		fmt.Printf("Skipping hook installation, %s is a file\n", gitPath)
		return nil
	}

	hooksDir := filepath.Join(gitPath, "hooks")
	partsDir := filepath.Join(hooksDir, partsDirName)

	// Recreate the parts directory so repeated installs stay idempotent
	// and stale parts from older versions disappear.
	if err := os.RemoveAll(partsDir); err != nil {
		return model.WrapCLIError(model.ExitHookError, "removing old hook parts", err)
	}
	if err := os.MkdirAll(partsDir, 0755); err != nil {
		return model.WrapCLIError(model.ExitHookError, "creating hook parts directory", err)
	}

	partPath := filepath.Join(partsDir, hookName)
	if err := os.WriteFile(partPath, []byte(partScript), 0755); err != nil {
		return model.WrapCLIError(model.ExitHookError, "writing hook part", err)
	}

	preCommitPath := filepath.Join(hooksDir, "pre-commit")
	if err := os.WriteFile(preCommitPath, []byte(preCommitScript), 0755); err != nil {
		return model.WrapCLIError(model.ExitHookError, "writing pre-commit hook", err)
	}

	fmt.Printf("Pre-commit hook installed: %s\n", preCommitPath)
	return nil
}

// FindAncestorWithGit looks in beginIn and its ancestor directories for
// one containing a .git entry (directory or file) and returns it.
func FindAncestorWithGit(beginIn string) (string, error) {
	dir, err := filepath.Abs(beginIn)
	if err != nil {
		return "", model.WrapCLIError(model.ExitHookError, "resolving start directory", err)
	}

	for {
		if _, err := os.Lstat(filepath.Join(dir, ".git")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", model.NewCLIError(model.ExitHookError,
				fmt.Sprintf("unable to find .git in the %s hierarchy", beginIn))
		}
		dir = parent
	}
}

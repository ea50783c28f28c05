package fileset

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/mmr-tortoise/fixfmt/internal/gitx"
)

// skipDirs are directory names never walked into. These are VCS metadata
// directories whose contents must not be formatted.
var skipDirs = map[string]struct{}{
	".git": {},
	".hg":  {},
}

// Collect expands a mixed list of files and directories into a sorted,
// de-duplicated list of candidate file paths.
//
// Plain file arguments are passed through untouched — explicit arguments
// are trusted, and filtering happens later in the per-file loop.
// Directories are walked recursively; during the walk, only files whose
// base name matches an include pattern are kept, and git-ignored files
// (per `git status --ignored`) are dropped.
func Collect(filesOrDirectories []string) ([]string, error) {
	seen := make(map[string]struct{})
	var files []string
	add := func(path string) {
		if _, dup := seen[path]; dup {
			return
		}
		seen[path] = struct{}{}
		files = append(files, path)
	}

	for _, arg := range filesOrDirectories {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			add(arg)
			continue
		}

		ignored := gitx.IgnoredFiles(arg)
		err = filepath.WalkDir(arg, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			abs, absErr := filepath.Abs(path)
			if absErr != nil {
				abs = path
			}
			if d.IsDir() {
				if _, skip := skipDirs[d.Name()]; skip {
					return filepath.SkipDir
				}
				// Git may report a whole ignored directory as one entry.
				if _, skip := ignored[abs]; skip {
					return filepath.SkipDir
				}
				return nil
			}
			if !ShouldInclude(path) {
				return nil
			}
			if _, skip := ignored[abs]; skip {
				return nil
			}
			add(path)
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	sort.Strings(files)
	return files, nil
}

package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ClangFormatIndex answers "is this file governed by a .clang-format?"
// with per-directory caching, since a run may process hundreds of files
// from the same few directories and each lookup otherwise walks to the
// filesystem root.
//
// A directory's cached value means: a .clang-format exists in it or any
// ancestor, and the nearest one does not set DisableFormat.
type ClangFormatIndex struct {
	cache map[string]bool
}

// NewClangFormatIndex creates an empty index. The cache is scoped to one
// index (and therefore one run); tests get isolation for free.
func NewClangFormatIndex() *ClangFormatIndex {
	return &ClangFormatIndex{cache: make(map[string]bool)}
}

// Applies reports whether clang-format should run on filename.
func (ix *ClangFormatIndex) Applies(filename string) bool {
	abs, err := filepath.Abs(filename)
	if err != nil {
		abs = filename
	}
	dir := filepath.Dir(abs)

	// Walk upward until a cached directory, a .clang-format file, or the
	// root is hit; remember the directories visited so they can all be
	// cached with the answer.
	var visited []string
	result := false
	for d := dir; ; {
		if cached, ok := ix.cache[d]; ok {
			result = cached
			break
		}
		visited = append(visited, d)

		candidate := filepath.Join(d, ".clang-format")
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			result = clangFormatEnabled(candidate)
			break
		}

		parent := filepath.Dir(d)
		if parent == d {
			break
		}
		d = parent
	}

	for _, d := range visited {
		ix.cache[d] = result
	}
	return result
}

// clangFormatEnabled parses a .clang-format file and reports whether it
// actually enables formatting. clang-format treats DisableFormat: true as
// "leave these files alone", so such a file counts as absent.
//
// .clang-format is YAML; a file that fails to parse still counts as
// present — deciding its validity is clang-format's job, not ours.
func clangFormatEnabled(path string) bool {
	content, err := os.ReadFile(path)
	if err != nil {
		return false
	}

	var style struct {
		DisableFormat bool `yaml:"DisableFormat"`
	}
	if err := yaml.Unmarshal(content, &style); err != nil {
		return true
	}
	return !style.DisableFormat
}

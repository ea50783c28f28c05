package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// DefaultLegacyFormatter is the command used to format Python code when
// the repository has not opted into black. It reads source on stdin and
// writes the formatted result to stdout.
const DefaultLegacyFormatter = "pydevf"

// Project holds the repository-level configuration resolved from
// pyproject.toml. The zero value (no pyproject.toml found) is usable:
// no exclusions, legacy formatter, black disabled.
type Project struct {
	// PyprojectPath is the absolute path to the discovered pyproject.toml.
	// Empty when none was found.
	PyprojectPath string

	// Excludes holds the exclusion globs from [tool.fix_format] exclude,
	// resolved to absolute paths against the pyproject.toml directory.
	Excludes []string

	// LegacyFormatter is the command for the non-black Python formatter,
	// from [tool.fix_format] legacy-formatter.
	LegacyFormatter string

	// UseBlack is true when pyproject.toml contains a [tool.black]
	// section, selecting black for all Python files.
	UseBlack bool
}

// pyprojectFile mirrors the subset of pyproject.toml this tool reads.
type pyprojectFile struct {
	Tool struct {
		FixFormat struct {
			Exclude         []string `toml:"exclude"`
			LegacyFormatter string   `toml:"legacy-formatter"`
		} `toml:"fix_format"`
	} `toml:"tool"`
}

// LoadProject discovers and parses the pyproject.toml governing the given
// input paths. When no pyproject.toml exists, a usable default Project is
// returned.
func LoadProject(inputs []string) (*Project, error) {
	project := &Project{LegacyFormatter: DefaultLegacyFormatter}

	path, ok := FindPyproject(inputs)
	if !ok {
		return project, nil
	}
	project.PyprojectPath = path

	var parsed pyprojectFile
	md, err := toml.DecodeFile(path, &parsed)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w (the exclude option must be a list of strings)", path, err)
	}

	// [tool.black] presence is the whole signal; its contents belong to
	// black and are never interpreted here.
	project.UseBlack = md.IsDefined("tool", "black")

	if parsed.Tool.FixFormat.LegacyFormatter != "" {
		project.LegacyFormatter = parsed.Tool.FixFormat.LegacyFormatter
	}

	dir := filepath.Dir(path)
	for _, pattern := range parsed.Tool.FixFormat.Exclude {
		if !filepath.IsAbs(pattern) {
			pattern = filepath.Join(dir, pattern)
		}
		project.Excludes = append(project.Excludes, pattern)
	}

	return project, nil
}

// FindPyproject searches for a pyproject.toml based on the list of files
// and directories given: the common ancestor of all inputs is computed,
// then the search proceeds from there upward to the filesystem root.
//
// Returns the absolute path of the first pyproject.toml found.
func FindPyproject(inputs []string) (string, bool) {
	if len(inputs) == 0 {
		return "", false
	}

	common, err := commonAncestor(inputs)
	if err != nil {
		return "", false
	}

	for dir := common; ; {
		candidate := filepath.Join(dir, "pyproject.toml")
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

// commonAncestor returns the deepest directory containing every input.
// A single file input resolves to its own directory.
func commonAncestor(inputs []string) (string, error) {
	abs := make([][]string, 0, len(inputs))
	for _, in := range inputs {
		a, err := filepath.Abs(in)
		if err != nil {
			return "", err
		}
		if info, err := os.Stat(a); err == nil && !info.IsDir() {
			a = filepath.Dir(a)
		}
		abs = append(abs, strings.Split(filepath.Clean(a), string(filepath.Separator)))
	}

	common := abs[0]
	for _, parts := range abs[1:] {
		n := 0
		for n < len(common) && n < len(parts) && common[n] == parts[n] {
			n++
		}
		common = common[:n]
	}

	result := strings.Join(common, string(filepath.Separator))
	if result == "" {
		result = string(filepath.Separator)
	}
	return result, nil
}

package fileset

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/mmr-tortoise/fixfmt/internal/model"
)

// Skip reasons reported for files that are filtered out before the
// formatting pipeline. They surface to the user only under --verbose.
const (
	ReasonExcluded = "Excluded file"
	ReasonUnknown  = "Unknown file type"
	ReasonJupytext = "Jupytext generated file"
)

// ShouldFormat reports whether filename should enter the formatting
// pipeline, and if not, the reason it was filtered.
//
// Exclusion patterns are matched against the absolute path and have
// precedence over the include patterns, which are matched against the
// base name only.
func ShouldFormat(filename string, includePatterns, excludePatterns []string) (bool, string) {
	abs, err := filepath.Abs(filename)
	if err != nil {
		abs = filename
	}
	for _, pattern := range excludePatterns {
		if fnmatch(pattern, abs) {
			return false, ReasonExcluded
		}
	}

	if strings.EqualFold(filepath.Ext(filename), ".py") && isJupytextPaired(filename) {
		return false, ReasonJupytext
	}

	base := filepath.Base(filename)
	for _, pattern := range includePatterns {
		if fnmatch(pattern, base) {
			return true, ""
		}
	}

	return false, ReasonUnknown
}

// ShouldInclude applies only the include patterns, with no exclusion or
// notebook checks. The directory walk uses it as a cheap pre-filter;
// full filtering happens later in the per-file loop.
func ShouldInclude(filename string) bool {
	base := filepath.Base(filename)
	for _, pattern := range model.IncludePatterns {
		if fnmatch(pattern, base) {
			return true
		}
	}
	return false
}

// fnmatch matches name against an fnmatch-style pattern: '*' matches any
// run of characters (including path separators), '?' matches a single
// character, and '[...]' matches a character class.
//
// path.Match is deliberately not used here: its '*' stops at '/', while
// exclusion globs like "/repo/generated/*" are expected to match the
// whole subtree.
func fnmatch(pattern, name string) bool {
	re, err := compilePattern(pattern)
	if err != nil {
		return false
	}
	return re.MatchString(name)
}

// compilePattern translates an fnmatch pattern into an anchored regexp.
func compilePattern(pattern string) (*regexp.Regexp, error) {
	var b strings.Builder
	b.WriteString(`(?s)^`)
	for i := 0; i < len(pattern); i++ {
		switch c := pattern[i]; c {
		case '*':
			b.WriteString(`.*`)
		case '?':
			b.WriteString(`.`)
		case '[':
			// Find the closing bracket; an unterminated class is literal.
			j := i + 1
			if j < len(pattern) && (pattern[j] == '!' || pattern[j] == '^') {
				j++
			}
			if j < len(pattern) && pattern[j] == ']' {
				j++
			}
			for j < len(pattern) && pattern[j] != ']' {
				j++
			}
			if j >= len(pattern) {
				b.WriteString(`\[`)
				continue
			}
			class := pattern[i+1 : j]
			if strings.HasPrefix(class, "!") {
				class = "^" + class[1:]
			}
			b.WriteString("[" + strings.ReplaceAll(class, `\`, `\\`) + "]")
			i = j
		default:
			b.WriteString(regexp.QuoteMeta(string(c)))
		}
	}
	b.WriteString(`$`)
	return regexp.Compile(b.String())
}

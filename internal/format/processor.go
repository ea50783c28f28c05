package format

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/mmr-tortoise/fixfmt/internal/config"
	"github.com/mmr-tortoise/fixfmt/internal/model"
)

// utf8BOM is the UTF-8 byte order mark as raw bytes and as a decoded rune.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

const bomRune = "\uFEFF"

// FormatterClangFormat and FormatterLegacy are the formatter names
// reported in per-file status lines.
const (
	FormatterClangFormat = "clang-format"
	FormatterLegacy      = "legacy formatter"
)

// Processor runs the per-file pipeline. One Processor serves a whole run;
// it carries the run mode, the repository configuration, and the
// .clang-format directory cache.
type Processor struct {
	// Check selects check-only mode: files are never written.
	Check bool

	// Clang answers whether a C++ file is governed by a .clang-format.
	Clang *config.ClangFormatIndex

	// PythonFormat pipes Python source through the code formatter.
	// Nil when black handles code formatting (black runs as one batch,
	// outside this processor), in which case only isort and the textual
	// fixes apply to Python files.
	PythonFormat func(content string) (string, error)
}

// ProcessFile runs the pipeline on one file and returns its outcome.
// All failures are recorded in the result; ProcessFile never aborts the
// run and never returns an error.
func (p *Processor) ProcessFile(filename string) model.FileResult {
	result := model.FileResult{Path: filename}

	kind := model.ClassifyFile(filename)

	if kind == model.KindCpp {
		contentBytes, err := os.ReadFile(filename)
		if err != nil {
			result.Errors = append(result.Errors,
				fmt.Sprintf("%s: ERROR (%v)", filename, err))
			return result
		}
		if !utf8.Valid(contentBytes) {
			result.Errors = append(result.Errors,
				filename+": ERROR The file contents can not be decoded using UTF-8")
			return result
		}
		// C++ sources containing non-ASCII characters must carry a BOM so
		// that downstream Windows tooling decodes them as UTF-8.
		if containsNonASCII(contentBytes) && !strings.HasPrefix(string(contentBytes), string(utf8BOM)) {
			result.Errors = append(result.Errors,
				filename+": ERROR Not a valid UTF-8 encoded file, since it contains"+
					" non-ASCII characters. Ensure it has UTF-8 encoding with BOM.")
			return result
		}

		if p.Clang.Applies(filename) {
			result.Formatter = FormatterClangFormat
			changed, err := p.runClangFormat(filename)
			if err != nil {
				result.Errors = append(result.Errors, fmt.Sprintf(
					"%s: ERROR (%v): Please check if %q is installed and accessible",
					filename, err, "clang-format"))
				return result
			}
			result.Changed = changed
			return result
		}
	}

	contentBytes, err := os.ReadFile(filename)
	if err != nil {
		result.Errors = append(result.Errors,
			fmt.Sprintf("%s: ERROR (%v)", filename, err))
		return result
	}
	if !utf8.Valid(contentBytes) {
		result.Errors = append(result.Errors,
			fmt.Sprintf("%s: ERROR (invalid UTF-8: the file contents can not be decoded)", filename))
		return result
	}
	original := string(contentBytes)

	eol := DetectEOL(FirstLine(original))
	endsWithEOL := strings.HasSuffix(original, eol)

	newContents := original

	switch {
	case kind == model.KindPython:
		newContents = p.formatPython(filename, newContents, &result)
	case kind == model.KindCpp:
		// A C++ file without a governing .clang-format only receives the
		// textual fixes.
		result.Formatter = FormatterLegacy
	}

	newContents = Normalize(newContents, eol, endsWithEOL)
	result.Changed = newContents != original

	if !p.Check && result.Changed {
		if err := writePreservingMode(filename, newContents); err != nil {
			result.Errors = append(result.Errors,
				fmt.Sprintf("%s: ERROR (%v)", filename, err))
		}
	}

	return result
}

// formatPython applies the Python-specific steps: the isort configuration
// sanity check, import sorting, the optional code formatter, and the BOM
// policy. Errors are recorded on the result and the best available
// content is returned so the textual fixes still run.
func (p *Processor) formatPython(filename, content string, result *model.FileResult) string {
	settingsDir, err := filepath.Abs(filepath.Dir(filename))
	if err != nil {
		settingsDir = filepath.Dir(filename)
	}

	// isort's built-in default is 79 columns; seeing it (or anything
	// lower) means the repository never configured isort.
	if config.IsortLineLength(settingsDir) < config.MinIsortLineLength {
		result.Errors = append(result.Errors,
			filename+": ERROR .isort.cfg not available in repository (or line_length config < 80).")
	}

	sorted, err := RunIsort(content, settingsDir)
	if err != nil {
		result.Errors = append(result.Errors,
			fmt.Sprintf("Error formatting code: %v", err))
	} else {
		content = sorted
	}

	if p.PythonFormat != nil {
		formatted, err := p.PythonFormat(content)
		if err != nil {
			result.Errors = append(result.Errors,
				fmt.Sprintf("Error formatting code: %v", err))
		} else {
			content = formatted
		}
	}

	if strings.HasPrefix(content, bomRune) {
		result.Errors = append(result.Errors,
			filename+": ERROR python file should not have a BOM.")
		content = strings.TrimPrefix(content, bomRune)
	}

	return content
}

// runClangFormat dispatches between check and fix mode for a C++ file.
func (p *Processor) runClangFormat(filename string) (bool, error) {
	if p.Check {
		return clangCheck(filename)
	}
	return clangFix(filename)
}

// containsNonASCII reports whether content has any byte outside the
// printable ASCII range and common whitespace. The UTF-8 BOM itself is
// not counted.
func containsNonASCII(content []byte) bool {
	for _, b := range bytesTrimBOM(content) {
		if b >= 0x20 && b <= 0x7E {
			continue
		}
		switch b {
		case '\t', '\n', '\r', '\v', '\f':
			continue
		}
		return true
	}
	return false
}

// bytesTrimBOM strips a leading UTF-8 BOM, if present.
func bytesTrimBOM(content []byte) []byte {
	if len(content) >= 3 && content[0] == utf8BOM[0] && content[1] == utf8BOM[1] && content[2] == utf8BOM[2] {
		return content[3:]
	}
	return content
}

// writePreservingMode writes content to filename keeping the file's
// existing permission bits.
func writePreservingMode(filename, content string) error {
	mode := os.FileMode(0644)
	if info, err := os.Stat(filename); err == nil {
		mode = info.Mode().Perm()
	}
	return os.WriteFile(filename, []byte(content), mode)
}

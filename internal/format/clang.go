package format

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// clangCheck runs clang-format in replacement-report mode and reports
// whether the file would change. The file is never modified.
//
// `clang-format -output-replacements-xml` prints an XML document listing
// every edit it would make; a compliant file yields a document with no
// <replacement> elements.
func clangCheck(filename string) (bool, error) {
	output, err := runClang("-output-replacements-xml", filename)
	if err != nil {
		return false, err
	}
	return bytes.Contains(output, []byte("<replacement ")), nil
}

// clangFix runs `clang-format -i` on the file and reports whether the
// content actually changed, by comparing bytes before and after.
func clangFix(filename string) (bool, error) {
	before, err := os.ReadFile(filename)
	if err != nil {
		return false, err
	}

	if _, err := runClang("-i", filename); err != nil {
		return false, err
	}

	after, err := os.ReadFile(filename)
	if err != nil {
		return false, err
	}
	return !bytes.Equal(before, after), nil
}

// runClang invokes the clang-format binary, capturing stdout and folding
// stderr into the failure error.
func runClang(args ...string) ([]byte, error) {
	// #nosec G204 — arguments are file paths selected by this run
	cmd := exec.Command("clang-format", args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		detail := strings.TrimSpace(stderr.String())
		if detail != "" {
			return nil, fmt.Errorf("clang-format failed: %s: %w", detail, err)
		}
		return nil, fmt.Errorf("clang-format failed: %w", err)
	}
	return stdout.Bytes(), nil
}

package format

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// runFilter pipes content through an external command that reads source
// on stdin and writes the formatted result to stdout. Stderr is captured
// and folded into the error on failure.
func runFilter(name string, args []string, content string) (string, error) {
	// #nosec G204 — command names come from tool configuration, not file content
	cmd := exec.Command(name, args...)
	cmd.Stdin = strings.NewReader(content)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		detail := strings.TrimSpace(stderr.String())
		if detail != "" {
			return "", fmt.Errorf("%s failed: %s: %w", name, detail, err)
		}
		return "", fmt.Errorf("%s failed: %w", name, err)
	}
	return stdout.String(), nil
}

// RunIsort sorts the imports of Python source by piping it through the
// isort CLI in stream mode ("-" reads stdin, writes stdout), pointing
// isort's configuration discovery at settingsDir.
//
// A file carrying an "isort:skip_file" comment directive is returned
// unchanged without invoking isort, mirroring isort's own skip handling.
func RunIsort(content, settingsDir string) (string, error) {
	if hasSkipFileDirective(content) {
		return content, nil
	}
	return runFilter("isort", []string{"--quiet", "--settings-path", settingsDir, "-"}, content)
}

// hasSkipFileDirective reports whether content carries an
// "isort:skip_file" directive on a comment line. The directive only
// counts inside a comment; the same text in a string literal or
// docstring must not suppress sorting.
func hasSkipFileDirective(content string) bool {
	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "#") && strings.Contains(trimmed, "isort:skip_file") {
			return true
		}
	}
	return false
}

// RunLegacyFormatter pipes Python source through the configured legacy
// formatter command (stdin → stdout contract).
func RunLegacyFormatter(command, content string) (string, error) {
	return runFilter(command, nil, content)
}

// RunBlack formats (or checks) the given Python files with a single black
// invocation. Black's own output goes straight to the user's terminal, so
// errors are expected to be visible without further reporting.
//
// Returns (wouldBeFormatted, failed): in check mode, exit status 1 means
// black would reformat at least one file; in fix mode, any non-zero
// status is a failure.
func RunBlack(files []string, check, verbose bool) (wouldBeFormatted, failed bool) {
	args := make([]string, 0, len(files)+2)
	if check {
		args = append(args, "--check")
	}
	if verbose {
		args = append(args, "--verbose")
	}
	args = append(args, files...)

	// #nosec G204 — arguments are file paths selected by this run
	cmd := exec.Command("black", args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	err := cmd.Run()
	status := 0
	if err != nil {
		status = -1
		if cmd.ProcessState != nil {
			status = cmd.ProcessState.ExitCode()
		}
	}

	// In check mode status 1 is black's "would reformat" signal, not a
	// failure. Every other non-zero status (including a missing binary)
	// is a failure in either mode.
	wouldBeFormatted = check && status == 1
	failed = status != 0 && !wouldBeFormatted
	return wouldBeFormatted, failed
}

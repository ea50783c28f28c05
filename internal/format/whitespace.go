package format

import "strings"

// tabWidth is the column width tabs are expanded to.
const tabWidth = 4

// DetectEOL returns the EOL sequence used by the given first line of a
// file: "\r\n", "\r", or "\n" (the default for empty input).
//
// The EOL must be detected before any processing happens: external
// formatters normalize output to "\n", and the original line endings are
// restored afterwards.
func DetectEOL(firstLine string) string {
	if strings.HasSuffix(firstLine, "\r\n") {
		return "\r\n"
	}
	if strings.HasSuffix(firstLine, "\r") {
		return "\r"
	}
	return "\n"
}

// FirstLine returns the first line of content including its terminator,
// for use with DetectEOL.
func FirstLine(content string) string {
	for i := 0; i < len(content); i++ {
		switch content[i] {
		case '\n':
			return content[:i+1]
		case '\r':
			if i+1 < len(content) && content[i+1] == '\n' {
				return content[:i+2]
			}
			return content[:i+1]
		}
	}
	return content
}

// Normalize applies the textual fixes to content: every line has its
// trailing whitespace stripped and its tabs expanded, lines are rejoined
// with eol, and a final eol is appended only when endsWithEOL.
func Normalize(content, eol string, endsWithEOL bool) string {
	lines := splitLines(content)
	for i, line := range lines {
		lines[i] = expandTabs(strings.TrimRight(line, " \t\v\f\r\n"))
	}
	result := strings.Join(lines, eol)
	if endsWithEOL {
		result += eol
	}
	return result
}

// splitLines splits content into lines without their terminators,
// recognizing "\n", "\r\n", and bare "\r". Unlike strings.Split, a
// trailing terminator does not produce a final empty line.
func splitLines(s string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\n':
			lines = append(lines, s[start:i])
			start = i + 1
		case '\r':
			lines = append(lines, s[start:i])
			if i+1 < len(s) && s[i+1] == '\n' {
				i++
			}
			start = i + 1
		}
	}
	if start < len(s) {
		lines = append(lines, s[start:])
	}
	return lines
}

// expandTabs replaces each tab with the number of spaces needed to reach
// the next tab stop, tracking the current column the way Python's
// str.expandtabs does.
func expandTabs(line string) string {
	if !strings.ContainsRune(line, '\t') {
		return line
	}

	var b strings.Builder
	col := 0
	for _, r := range line {
		if r == '\t' {
			n := tabWidth - col%tabWidth
			b.WriteString(strings.Repeat(" ", n))
			col += n
			continue
		}
		b.WriteRune(r)
		col++
	}
	return b.String()
}

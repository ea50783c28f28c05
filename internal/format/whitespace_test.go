package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestDetectEOL covers the three supported EOL styles and the default.
func TestDetectEOL(t *testing.T) {
	tests := []struct {
		name      string
		firstLine string
		want      string
	}{
		{"unix", "import os\n", "\n"},
		{"windows", "import os\r\n", "\r\n"},
		{"old mac", "import os\r", "\r"},
		{"no terminator", "import os", "\n"},
		{"empty", "", "\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectEOL(tt.firstLine))
		})
	}
}

// TestFirstLine verifies terminator-inclusive first line extraction.
func TestFirstLine(t *testing.T) {
	assert.Equal(t, "a\n", FirstLine("a\nb\n"))
	assert.Equal(t, "a\r\n", FirstLine("a\r\nb\r\n"))
	assert.Equal(t, "a\r", FirstLine("a\rb"))
	assert.Equal(t, "a", FirstLine("a"))
	assert.Equal(t, "", FirstLine(""))
}

// TestNormalize covers trailing whitespace, tab expansion, EOL
// preservation, and the trailing-newline invariant.
func TestNormalize(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		eol         string
		endsWithEOL bool
		want        string
	}{
		{
			name:        "trailing spaces stripped",
			content:     "x = 1   \ny = 2\t\n",
			eol:         "\n",
			endsWithEOL: true,
			want:        "x = 1\ny = 2\n",
		},
		{
			name:        "tabs expanded to four columns",
			content:     "\tx\n", // tab at column 0 → 4 spaces
			eol:         "\n",
			endsWithEOL: true,
			want:        "    x\n",
		},
		{
			name:        "tab stops are columns not counts",
			content:     "ab\tc\n", // tab at column 2 → 2 spaces to reach column 4
			eol:         "\n",
			endsWithEOL: true,
			want:        "ab  c\n",
		},
		{
			name:        "windows EOLs preserved",
			content:     "x = 1 \r\ny = 2\r\n",
			eol:         "\r\n",
			endsWithEOL: true,
			want:        "x = 1\r\ny = 2\r\n",
		},
		{
			name:        "missing final newline preserved",
			content:     "x = 1 ",
			eol:         "\n",
			endsWithEOL: false,
			want:        "x = 1",
		},
		{
			name:        "blank lines kept",
			content:     "a\n\nb\n",
			eol:         "\n",
			endsWithEOL: true,
			want:        "a\n\nb\n",
		},
		{
			name:        "whitespace-only lines emptied",
			content:     "a\n   \nb\n",
			eol:         "\n",
			endsWithEOL: true,
			want:        "a\n\nb\n",
		},
		{
			name:        "empty content",
			content:     "",
			eol:         "\n",
			endsWithEOL: false,
			want:        "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.content, tt.eol, tt.endsWithEOL)
			assert.Equal(t, tt.want, got)

			// Normalizing a second time must be a no-op.
			again := Normalize(got, tt.eol, tt.endsWithEOL)
			assert.Equal(t, got, again, "Normalize should be idempotent")
		})
	}
}

// TestNormalizeMixedEOLs verifies that a file with inconsistent line
// endings is unified to the style of its first line.
func TestNormalizeMixedEOLs(t *testing.T) {
	content := "a\r\nb\nc\r\n"
	eol := DetectEOL(FirstLine(content))
	assert.Equal(t, "\r\n", eol)

	got := Normalize(content, eol, true)
	assert.Equal(t, "a\r\nb\r\nc\r\n", got)
}

// TestExpandTabs covers rune handling and the no-tab fast path.
func TestExpandTabs(t *testing.T) {
	assert.Equal(t, "no tabs here", expandTabs("no tabs here"))
	assert.Equal(t, "    a", expandTabs("\ta"))
	assert.Equal(t, "a   b", expandTabs("a\tb"))
	assert.Equal(t, "abcd    e", expandTabs("abcd\te"))
	// Multi-byte runes count as one column, as in Python's expandtabs.
	assert.Equal(t, "é   x", expandTabs("é\tx"))
}

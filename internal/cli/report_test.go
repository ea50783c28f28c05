// Package cli — report_test.go contains unit tests for the pure output
// helpers: status labels, the summary line, the errors banner, and the
// stdin file-list reader.
//
// These tests verify data transformation logic without invoking any
// external formatter or touching a git repository.
package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmr-tortoise/fixfmt/internal/model"
)

// TestStatusLabel verifies the status word for every combination of
// run mode and file outcome.
func TestStatusLabel(t *testing.T) {
	tests := []struct {
		name    string
		check   bool
		changed bool
		want    string
	}{
		{name: "fix mode changed file", check: false, changed: true, want: "Fixed"},
		{name: "fix mode unchanged file", check: false, changed: false, want: "Skipped"},
		{name: "check mode changed file", check: true, changed: true, want: "Failed"},
		{name: "check mode unchanged file", check: true, changed: false, want: "OK"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, c := StatusLabel(tt.check, tt.changed)
			assert.Equal(t, tt.want, got)
			assert.NotNil(t, c)
		})
	}
}

// TestSummaryLine verifies the final human-readable summary line in
// both fix and check mode, with and without changed files.
func TestSummaryLine(t *testing.T) {
	tests := []struct {
		name    string
		summary model.RunSummary
		want    string
	}{
		{
			name:    "fix mode with changes",
			summary: model.RunSummary{Analysed: 7, Changed: 2},
			want:    "fixfmt: 2 files changed, 5 files left unchanged.",
		},
		{
			name:    "fix mode without changes",
			summary: model.RunSummary{Analysed: 7, Changed: 0},
			want:    "fixfmt: 7 files left unchanged.",
		},
		{
			name:    "check mode with changes",
			summary: model.RunSummary{Check: true, Analysed: 3, Changed: 3},
			want:    "fixfmt: 3 files would be changed, 0 files would be left unchanged.",
		},
		{
			name:    "check mode without changes",
			summary: model.RunSummary{Check: true, Analysed: 4},
			want:    "fixfmt: 4 files would be left unchanged.",
		},
		{
			name:    "no files analysed",
			summary: model.RunSummary{},
			want:    "fixfmt: 0 files left unchanged.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SummaryLine(&tt.summary))
		})
	}
}

// TestBanner verifies the caption is centered in a line of '=' runes.
func TestBanner(t *testing.T) {
	got := Banner("ERRORS")

	assert.Contains(t, got, " ERRORS ")
	assert.True(t, strings.HasPrefix(got, "===="))
	assert.True(t, strings.HasSuffix(got, "===="))
	// Even padding on both sides.
	parts := strings.Split(got, " ERRORS ")
	require.Len(t, parts, 2)
	assert.Equal(t, parts[0], parts[1])
}

// TestReadFileList verifies that the stdin file-list reader splits on
// newlines and drops blank lines and surrounding whitespace.
func TestReadFileList(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "one path per line",
			input: "a.py\nsub/b.cpp\nCMakeLists.txt\n",
			want:  []string{"a.py", "sub/b.cpp", "CMakeLists.txt"},
		},
		{
			name:  "blank lines and whitespace are skipped",
			input: "a.py\n\n  \n  b.py  \n",
			want:  []string{"a.py", "b.py"},
		},
		{
			name:  "empty input yields no files",
			input: "",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := readFileList(strings.NewReader(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// TestRunSummaryFailed verifies the exit-status decision for a run.
func TestRunSummaryFailed(t *testing.T) {
	tests := []struct {
		name    string
		summary model.RunSummary
		want    bool
	}{
		{name: "clean run", summary: model.RunSummary{Analysed: 3}, want: false},
		{name: "errors always fail", summary: model.RunSummary{Errors: []string{"boom"}}, want: true},
		{name: "changes in fix mode succeed", summary: model.RunSummary{Analysed: 2, Changed: 1}, want: false},
		{name: "changes in check mode fail", summary: model.RunSummary{Check: true, Analysed: 2, Changed: 1}, want: true},
		{name: "black diff in check mode fails", summary: model.RunSummary{Check: true, BlackWouldFormat: true}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.summary.Failed())
		})
	}
}

// Package cli — report.go implements the console output of a run:
// per-file status lines, the ERRORS banner, and the final summary in
// text or JSON form.
package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/mmr-tortoise/fixfmt/internal/model"
)

// Colors used for the per-file status lines and the summary. fatih/color
// disables itself automatically when stdout is not a terminal.
var (
	red       = color.New(color.FgRed)
	green     = color.New(color.FgGreen)
	yellow    = color.New(color.FgYellow)
	cyan      = color.New(color.FgCyan)
	white     = color.New(color.FgWhite)
	boldGreen = color.New(color.FgGreen, color.Bold)
)

// StatusLabel returns the status word and its color for a processed
// file, based on the run mode and whether the file changed:
//
//	fix mode:   changed → "Fixed" (green),  unchanged → "Skipped" (yellow)
//	check mode: changed → "Failed" (red),   unchanged → "OK" (green)
func StatusLabel(check, changed bool) (string, *color.Color) {
	if check {
		if changed {
			return "Failed", red
		}
		return "OK", green
	}
	if changed {
		return "Fixed", green
	}
	return "Skipped", yellow
}

// printFileResult prints the errors and the status line for one file.
// Unchanged files are only shown under --verbose, keeping the default
// output focused on what the run actually did.
func printFileResult(result model.FileResult, check bool) {
	for _, msg := range result.Errors {
		red.Println(msg)
	}

	if !result.Changed && !verbose {
		return
	}

	status, c := StatusLabel(check, result.Changed)
	msg := result.Path + ": " + status
	if result.Formatter != "" {
		msg += " (" + result.Formatter + ")"
	}
	c.Println(msg)
}

// printSkipped prints a filtered-out file and its reason (verbose only).
func printSkipped(filename, reason string) {
	white.Println(filename + ": " + reason)
}

// Banner centers a caption in a 100-column line of '=' characters,
// matching the ERRORS banner format.
func Banner(caption string) string {
	caption = " " + caption + " "
	fill := (100 - len(caption)) / 2
	h := strings.Repeat("=", fill)
	return h + caption + h
}

// SummaryLine renders the final human-readable line of a run, e.g.
//
//	fixfmt: 2 files changed, 5 files left unchanged.
//	fixfmt: 7 files would be left unchanged.
func SummaryLine(summary *model.RunSummary) string {
	verb := ""
	if summary.Check {
		verb = "would be "
	}

	first := ""
	if summary.Changed > 0 {
		first = fmt.Sprintf("%d files %schanged, ", summary.Changed, verb)
	}
	return fmt.Sprintf("fixfmt: %s%d files %sleft unchanged.",
		first, summary.Analysed-summary.Changed, verb)
}

// reportSummary prints the end-of-run report: under --json the whole
// summary object, otherwise the ERRORS banner (when needed) followed by
// the summary line.
func reportSummary(summary *model.RunSummary) {
	if IsJSONOutput() {
		data, _ := json.MarshalIndent(summary, "", "  ")
		fmt.Println(string(data))
		return
	}

	if len(summary.Errors) > 0 {
		fmt.Println()
		red.Println(Banner("ERRORS"))
		for _, msg := range summary.Errors {
			red.Println(msg)
		}
		return
	}

	boldGreen.Println(SummaryLine(summary))
}

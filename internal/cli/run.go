// Package cli — run.go implements the formatting run behind the root
// command: input resolution, configuration discovery, the optional black
// batch, the sequential per-file loop, and the final exit decision.
package cli

import (
	"bufio"
	"io"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/fixfmt/internal/config"
	"github.com/mmr-tortoise/fixfmt/internal/fileset"
	"github.com/mmr-tortoise/fixfmt/internal/format"
	"github.com/mmr-tortoise/fixfmt/internal/gitx"
	"github.com/mmr-tortoise/fixfmt/internal/model"
)

// runFormat is the main logic behind the root command.
//
// It resolves the candidate file list from the selected source, loads
// the project configuration, runs black as one batch when configured,
// then processes every remaining candidate sequentially. Per-file errors
// never abort the loop; they decide the exit code at the end.
func runFormat(cmd *cobra.Command, flags *rootFlags, args []string) error {
	files, err := resolveFiles(cmd.InOrStdin(), flags, args)
	if err != nil {
		return err
	}
	sort.Strings(files)

	project, err := config.LoadProject(files)
	if err != nil {
		return model.WrapCLIError(model.ExitGeneralError, "loading configuration", err)
	}
	if project.PyprojectPath != "" {
		VerboseLog("Using configuration from %s", project.PyprojectPath)
	}

	summary := &model.RunSummary{Check: flags.check}

	if project.UseBlack {
		runBlackBatch(files, flags, project, summary)
	}

	processor := &format.Processor{
		Check: flags.check,
		Clang: config.NewClangFormatIndex(),
	}
	if !project.UseBlack {
		// The legacy formatter applies per file; black (above) replaces it.
		command := project.LegacyFormatter
		processor.PythonFormat = func(content string) (string, error) {
			return format.RunLegacyFormatter(command, content)
		}
	}

	for _, filename := range files {
		ok, reason := fileset.ShouldFormat(filename, model.IncludePatterns, project.Excludes)
		if !ok {
			if verbose && !IsJSONOutput() {
				printSkipped(filename, reason)
			}
			continue
		}

		result := processor.ProcessFile(filename)

		summary.Analysed++
		if result.Changed {
			summary.Changed++
		}
		summary.Errors = append(summary.Errors, result.Errors...)
		summary.Results = append(summary.Results, result)

		if !IsJSONOutput() {
			printFileResult(result, flags.check)
		}
	}

	reportSummary(summary)

	if summary.Failed() {
		// Everything relevant has been printed; only the exit code is
		// left to deliver, so the CLIError message stays empty.
		return model.NewCLIError(model.ExitGeneralError, "")
	}
	return nil
}

// resolveFiles produces the candidate list from the selected input
// source: stdin, the git-modified set, or positional arguments (with
// directories expanded recursively).
func resolveFiles(stdin io.Reader, flags *rootFlags, args []string) ([]string, error) {
	switch {
	case flags.stdin:
		return readFileList(stdin)
	case flags.commit:
		return gitx.ModifiedFiles(".")
	default:
		return fileset.Collect(args)
	}
}

// readFileList reads one path per line, skipping blank lines. This is
// the input format produced by `git diff --name-only` in the pre-commit
// hook.
func readFileList(r io.Reader) ([]string, error) {
	var files []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			files = append(files, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, model.WrapCLIError(model.ExitGeneralError, "reading file list from stdin", err)
	}
	return files, nil
}

// runBlackBatch selects the Python files black should handle and runs
// it once over all of them. Black prints its own per-file report, so
// only the batch outcome feeds the summary.
func runBlackBatch(files []string, flags *rootFlags, project *config.Project, summary *model.RunSummary) {
	var pyFiles []string
	for _, f := range files {
		if ok, _ := fileset.ShouldFormat(f, []string{"*.py"}, project.Excludes); ok {
			pyFiles = append(pyFiles, f)
		}
	}
	if len(pyFiles) == 0 {
		return
	}

	if !IsJSONOutput() {
		if flags.check {
			cyan.Printf("Checking black on %d files...\n", len(pyFiles))
		} else {
			cyan.Printf("Running black on %d files...\n", len(pyFiles))
		}
	}

	wouldBeFormatted, failed := format.RunBlack(pyFiles, flags.check, verbose)
	summary.BlackWouldFormat = wouldBeFormatted
	if failed {
		summary.Errors = append(summary.Errors, "Error formatting black (see console)")
	}
}

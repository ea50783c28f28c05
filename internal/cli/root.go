// Package cli implements the cobra-based command surface for fixfmt.
//
// fixfmt is a single root command: positional arguments are files or
// directories, and flags select the input source (--stdin, --commit),
// the mode (--check), or the one-shot hook installation (--git-hooks).
// This file defines the command, its flags, and the error-to-exit-code
// translation; the formatting run itself lives in run.go and the output
// helpers in report.go.
package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/fixfmt/internal/hook"
	"github.com/mmr-tortoise/fixfmt/internal/model"
)

// Global flag variables bound to the root command.
var (
	// jsonOutput switches the run summary to structured JSON on stdout.
	jsonOutput bool

	// verbose also prints skipped files (and their skip reason) and the
	// unchanged status lines that are normally suppressed.
	verbose bool
)

// version, commit, and date are set at build time via ldflags.
// They are injected from the main package to display version information.
var (
	// Version is the semantic version of the binary (e.g., "1.0.0").
	Version = "dev"

	// Commit is the Git commit hash the binary was built from.
	Commit = "none"

	// Date is the build timestamp.
	Date = "unknown"
)

// rootFlags holds the per-run flag values of the root command.
type rootFlags struct {
	// check selects check-only mode: report, never write.
	check bool

	// stdin reads the file list from standard input, one path per line.
	stdin bool

	// commit selects the git-modified file set as input.
	commit bool

	// gitHooks installs the pre-commit hook and exits.
	gitHooks bool
}

// NewRootCommand creates and configures the root cobra command.
// This is the entry point for the entire CLI application.
func NewRootCommand() *cobra.Command {
	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:   "fixfmt [FILES_OR_DIRECTORIES...]",
		Short: "Fix and check source formatting",
		Long: `fixfmt fixes and checks the formatting of Python, C++, Cython, CMake,
Java, and JavaScript files.

Python files go through isort and either black (when pyproject.toml has a
[tool.black] section) or the configured legacy formatter. C++ files governed
by a .clang-format file go through clang-format. Every other supported file
gets trailing whitespace stripped and tabs expanded.

Examples:
  fixfmt src/                 fix everything under src/
  fixfmt --check src/         report files that need fixing
  fixfmt -c                   fix the files modified in git
  git ls-files | fixfmt --check --stdin
  fixfmt --git-hooks          install the pre-commit hook`,

		// SilenceUsage prevents cobra from printing usage on every error.
		// We handle error output ourselves for cleaner UX.
		SilenceUsage: true,

		// SilenceErrors prevents cobra from printing errors automatically.
		// We format errors ourselves (text or JSON based on --json flag).
		SilenceErrors: true,

		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date),

		Args: cobra.ArbitraryArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			if flags.gitHooks {
				// Hook installation uses the current directory to locate
				// the repository, as documented; file arguments are not
				// meaningful here.
				cwd, err := os.Getwd()
				if err != nil {
					return model.WrapCLIError(model.ExitHookError, "resolving current directory", err)
				}
				return hook.InstallPreCommit(cwd)
			}
			return runFormat(cmd, flags, args)
		},
	}

	rootCmd.Flags().BoolVarP(&flags.check, "check", "k", false,
		"Check if files are correctly formatted (never write)")
	rootCmd.Flags().BoolVar(&flags.stdin, "stdin", false,
		"Read filenames from stdin (1 per line)")
	rootCmd.Flags().BoolVarP(&flags.commit, "commit", "c", false,
		"Use modified files from git")
	rootCmd.Flags().BoolVar(&flags.gitHooks, "git-hooks", false,
		"Add git pre-commit hooks to the repo in the current dir")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Show skipped files in the output")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false,
		"Output the run summary in JSON format")

	return rootCmd
}

// Execute runs the root command and handles exit codes.
// This is the main entry point called from main.go.
//
// It inspects errors returned by cobra commands and translates them
// into appropriate OS exit codes. CLIError types carry their own
// exit codes; other errors default to exit code 1.
func Execute(rootCmd *cobra.Command) {
	if err := rootCmd.Execute(); err != nil {
		if cliErr, ok := err.(*model.CLIError); ok {
			// An empty message means the run already reported itself
			// (per-file errors, the ERRORS banner); only the exit code
			// remains to be delivered.
			if cliErr.Message != "" || cliErr.Err != nil {
				printError(cliErr.Error())
			}
			os.Exit(int(cliErr.Code))
		}

		printError(err.Error())
		os.Exit(int(model.ExitGeneralError))
	}
}

// printError outputs an error message in the appropriate format
// (JSON or text) based on the --json global flag.
func printError(message string) {
	if jsonOutput {
		errObj := map[string]interface{}{
			"error": map[string]interface{}{
				"message": message,
			},
		}
		// Errors go to stderr even in JSON mode, because stdout is
		// reserved for the run summary.
		data, _ := json.MarshalIndent(errObj, "", "  ")
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", message)
	}
}

// VerboseLog prints a message to stderr only when verbose mode is
// enabled. Used for diagnostics that help users understand what the
// run is doing.
func VerboseLog(format string, args ...interface{}) {
	if verbose {
		fmt.Fprintf(os.Stderr, "[verbose] "+format+"\n", args...)
	}
}

// IsJSONOutput returns whether the --json flag is set.
func IsJSONOutput() bool {
	return jsonOutput
}

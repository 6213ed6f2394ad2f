package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/gitpeek/gitpeek/internal/gitx"
)

const version = "1.2.0"

// Exit codes: success or the single shared failure path.
const (
	ExitSuccess = 0
	ExitFailure = 1
)

// exitCode is set by command handlers to control the process exit code.
var exitCode = ExitSuccess

var flagVerbose bool

var rootCmd = &cobra.Command{
	Use:   "gitpeek",
	Short: "Readable, colorized view of pending git changes",
	Long:  "Gitpeek shows pending repository changes as a colorized diff with a change-status summary, delegating diff computation to git.",
}

// Run executes the root command and returns an exit code.
func Run() int {
	rootCmd.AddCommand(diffCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		// Cobra already prints the error
		return ExitFailure
	}

	return exitCode
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print gitpeek version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(os.Stdout, "gitpeek version %s\n", version)
	},
}

// newRunner builds a git runner rooted at the current directory with command
// tracing enabled behind --verbose.
func newRunner() *gitx.Runner {
	level := zerolog.WarnLevel
	if flagVerbose {
		level = zerolog.DebugLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()

	cwd, err := os.Getwd()
	if err != nil {
		cwd = "."
	}
	return gitx.New(cwd, log)
}

// fail reports a terminal message and marks the invocation failed.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	exitCode = ExitFailure
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Trace executed git commands")
}

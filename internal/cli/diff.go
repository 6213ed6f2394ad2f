package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/gitpeek/gitpeek/internal/config"
	"github.com/gitpeek/gitpeek/internal/difffilter"
	"github.com/gitpeek/gitpeek/internal/query"
	"github.com/gitpeek/gitpeek/internal/render"
	"github.com/gitpeek/gitpeek/internal/status"
)

// Diff command flags
var (
	flagStaged   bool
	flagUnstaged bool
	flagAll      bool
	flagBranch   string
	flagCommit   string
	flagFile     string
	flagContext  string
	flagNoColor  bool
	flagWordDiff bool
)

// buildOptions folds config defaults under the flag values. The raw context
// string is handed through so malformed values fall back inside the resolver.
func buildOptions(cfg config.Config) query.Options {
	opts := query.Options{
		Staged:   flagStaged,
		Unstaged: flagUnstaged,
		All:      flagAll,
		Branch:   flagBranch,
		Commit:   flagCommit,
		File:     flagFile,
		Context:  flagContext,
		WordDiff: flagWordDiff || cfg.WordDiff,
		NoColor:  flagNoColor || cfg.NoColor,
	}
	if opts.Context == "" {
		opts.Context = strconv.Itoa(cfg.ContextLines)
	}
	return opts
}

var diffCmd = &cobra.Command{
	Use:   "diff",
	Short: "Show pending changes as a colorized diff",
	Long:  "Show pending changes as a colorized unified diff, with sections for ignored paths removed and a change summary appended.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			fail("%v", err)
			return nil
		}

		r := newRunner()
		if !r.IsRepo() {
			fail("not a git repository")
			return nil
		}

		req := query.Resolve(buildOptions(cfg))

		spinner, _ := pterm.DefaultSpinner.WithWriter(os.Stderr).Start("Collecting changes")
		raw, err := r.Diff(req)
		if err != nil {
			stopSpinner(spinner)
			fail("%v", err)
			return nil
		}
		filtered := difffilter.FilterIgnored(raw, r.IsIgnored)
		stopSpinner(spinner)

		fmt.Printf("%s\n\n", query.Describe(req))
		if strings.TrimSpace(filtered) == "" {
			fmt.Println("No changes to show.")
		} else {
			fmt.Print(render.Render(filtered, req.Colorize))
			if !strings.HasSuffix(filtered, "\n") {
				fmt.Println()
			}
		}

		printSummary(r, req)
		return nil
	},
}

// gitRunner is the slice of the git runner the trailing summary needs.
type gitRunner interface {
	DiffStat(req query.Request) (string, error)
	ShortStatus() ([]status.Entry, error)
}

// printSummary appends the shortstat line and the status tally. Both are
// best-effort: a failure here never masks diff output already printed.
func printSummary(r gitRunner, req query.Request) {
	fmt.Println()
	if stat, err := r.DiffStat(req); err == nil && stat != "" {
		fmt.Println(stat)
	}
	entries, err := r.ShortStatus()
	if err != nil {
		return
	}
	fmt.Println(formatCounts(status.Tally(entries)))
}

// formatCounts renders a tally as a one-line summary.
func formatCounts(c status.Counts) string {
	if c.Total() == 0 {
		return "Working tree clean."
	}
	var parts []string
	add := func(n int, label string) {
		if n > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", n, label))
		}
	}
	add(c.Modified, "modified")
	add(c.Added, "added")
	add(c.Deleted, "deleted")
	add(c.Renamed, "renamed")
	add(c.Unmerged, "unmerged")
	add(c.Untracked, "untracked")
	return "Status: " + strings.Join(parts, ", ")
}

func stopSpinner(spinner *pterm.SpinnerPrinter) {
	if spinner != nil {
		_ = spinner.Stop()
	}
}

func init() {
	diffCmd.Flags().BoolVar(&flagStaged, "staged", false, "Show staged changes only (index vs HEAD)")
	diffCmd.Flags().BoolVar(&flagUnstaged, "unstaged", false, "Show unstaged changes only (working tree vs index)")
	diffCmd.Flags().BoolVar(&flagAll, "all", false, "Show staged and unstaged changes (working tree vs HEAD)")
	diffCmd.Flags().StringVar(&flagBranch, "branch", "", "Compare working tree against a branch")
	diffCmd.Flags().StringVar(&flagCommit, "commit", "", "Compare working tree against a commit or ref")
	diffCmd.Flags().StringVar(&flagFile, "file", "", "Restrict the diff to a path")
	diffCmd.Flags().StringVar(&flagContext, "context", "", "Context lines around changes (default 3)")
	diffCmd.Flags().BoolVar(&flagNoColor, "no-color", false, "Disable colorized output")
	diffCmd.Flags().BoolVar(&flagWordDiff, "word-diff", false, "Show word-level changes")
}

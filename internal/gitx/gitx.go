package gitx

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/rs/zerolog"

	"github.com/gitpeek/gitpeek/internal/query"
	"github.com/gitpeek/gitpeek/internal/status"
)

// DefaultMaxOutputBytes bounds a single git invocation's stdout. Diffs of
// tens of megabytes pass; anything larger is a hard failure rather than a
// partial read.
const DefaultMaxOutputBytes = 64 << 20

// errPrefix is prepended to git's own error text when an invocation fails.
const errPrefix = "git error"

// Runner executes git subprocesses in a fixed working directory.
type Runner struct {
	// Dir is the working directory for every invocation. Empty means the
	// current process directory.
	Dir string
	// Log traces executed commands at debug level.
	Log zerolog.Logger
	// MaxOutputBytes overrides DefaultMaxOutputBytes when positive.
	MaxOutputBytes int
}

// New returns a Runner rooted at dir.
func New(dir string, log zerolog.Logger) *Runner {
	return &Runner{Dir: dir, Log: log}
}

// Output runs git with the given arguments and returns its stdout. On a
// non-zero exit the captured stderr is surfaced verbatim behind a fixed
// prefix; the invocation is never retried.
func (r *Runner) Output(args ...string) (string, error) {
	r.Log.Debug().Strs("args", args).Msg("running git")

	cmd := exec.Command("git", args...)
	cmd.Dir = r.Dir
	out, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", fmt.Errorf("%s: %s", errPrefix, strings.TrimSpace(string(exitErr.Stderr)))
		}
		return "", fmt.Errorf("%s: %v", errPrefix, err)
	}

	limit := r.MaxOutputBytes
	if limit <= 0 {
		limit = DefaultMaxOutputBytes
	}
	if len(out) > limit {
		return "", fmt.Errorf("%s: output exceeds %d bytes", errPrefix, limit)
	}
	return string(out), nil
}

// IsRepo reports whether the runner's directory is inside a git work tree.
func (r *Runner) IsRepo() bool {
	out, err := r.Output("rev-parse", "--is-inside-work-tree")
	return err == nil && strings.TrimSpace(out) == "true"
}

// Diff executes a resolved diff request and returns the raw unified diff.
func (r *Runner) Diff(req query.Request) (string, error) {
	return r.Output(query.Args(req)...)
}

// DiffStat returns the one-line insertion/deletion summary for the same
// comparison as req. Empty when there are no changes.
func (r *Runner) DiffStat(req query.Request) (string, error) {
	out, err := r.Output(query.StatArgs(req)...)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// ShortStatus returns the classified porcelain status entries.
func (r *Runner) ShortStatus() ([]status.Entry, error) {
	out, err := r.Output("status", "--porcelain")
	if err != nil {
		return nil, err
	}
	return status.ParseOutput(out), nil
}

// CurrentBranch returns the checked-out branch name.
func (r *Runner) CurrentBranch() (string, error) {
	out, err := r.Output("rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// RemoteURL returns the origin remote URL, or placeholder when no remote is
// configured. A missing remote is recoverable, never an error.
func (r *Runner) RemoteURL(placeholder string) string {
	out, err := r.Output("remote", "get-url", "origin")
	if err != nil {
		return placeholder
	}
	url := strings.TrimSpace(out)
	if url == "" {
		return placeholder
	}
	return url
}

// LastCommit returns the one-line summary of the most recent commit.
func (r *Runner) LastCommit() (string, error) {
	out, err := r.Output("log", "-1", "--oneline")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// IsIgnored reports whether path is excluded by the repository's ignore
// rules. check-ignore exits 0 for ignored paths and 1 otherwise; any failure
// to run counts as not ignored.
func (r *Runner) IsIgnored(path string) bool {
	cmd := exec.Command("git", "check-ignore", "-q", path)
	cmd.Dir = r.Dir
	return cmd.Run() == nil
}

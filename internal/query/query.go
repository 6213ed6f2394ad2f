package query

import (
	"fmt"
	"strconv"
)

// DefaultContextLines is the number of context lines used when no valid
// context option is supplied.
const DefaultContextLines = 3

// Mode identifies what the diff compares.
type Mode int

const (
	// ModeWorking diffs the working tree against the index (the default).
	ModeWorking Mode = iota
	// ModeStaged diffs the index against HEAD.
	ModeStaged
	// ModeUnstaged diffs the working tree against the index, selected
	// explicitly. Same git invocation as ModeWorking, different heading.
	ModeUnstaged
	// ModeAll diffs the working tree against HEAD, covering staged and
	// unstaged changes together.
	ModeAll
	// ModeBranch diffs the working tree against a named branch.
	ModeBranch
	// ModeCommit diffs the working tree against a commit or ref.
	ModeCommit
)

// Options is the partially-filled option bag collected from CLI flags.
// No field is required; contradictory mode flags are legal and resolved by
// precedence.
type Options struct {
	Staged   bool
	Unstaged bool
	All      bool
	Branch   string
	Commit   string
	File     string
	Context  string // raw flag value; non-numeric falls back to the default
	WordDiff bool
	NoColor  bool
}

// Request is the resolved intent for one invocation. Exactly one mode is
// active per request.
type Request struct {
	Mode         Mode
	Target       string // branch or ref, set iff Mode is ModeBranch or ModeCommit
	PathFilter   string
	ContextLines int
	WordLevel    bool
	Colorize     bool
}

// ResolveContext parses a raw context-line value, falling back to fallback
// when the value is empty, non-numeric, or negative.
func ResolveContext(raw string, fallback int) int {
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return fallback
	}
	return n
}

// Resolve maps an option bag onto a Request. Mode precedence, first match
// wins: staged > unstaged > all > branch > commit > working tree.
func Resolve(opts Options) Request {
	req := Request{
		Mode:         ModeWorking,
		PathFilter:   opts.File,
		ContextLines: ResolveContext(opts.Context, DefaultContextLines),
		WordLevel:    opts.WordDiff,
		Colorize:     !opts.NoColor,
	}
	switch {
	case opts.Staged:
		req.Mode = ModeStaged
	case opts.Unstaged:
		req.Mode = ModeUnstaged
	case opts.All:
		req.Mode = ModeAll
	case opts.Branch != "":
		req.Mode = ModeBranch
		req.Target = opts.Branch
	case opts.Commit != "":
		req.Mode = ModeCommit
		req.Target = opts.Commit
	}
	return req
}

// Args builds the git argument list for a resolved request.
func Args(req Request) []string {
	args := []string{"diff"}
	switch req.Mode {
	case ModeStaged:
		args = append(args, "--cached")
	case ModeAll:
		args = append(args, "HEAD")
	case ModeBranch, ModeCommit:
		args = append(args, req.Target)
	}
	args = append(args, fmt.Sprintf("-U%d", req.ContextLines))
	if req.WordLevel {
		args = append(args, "--word-diff")
	}
	// Submodule-internal diffs are noise for the primary repository.
	args = append(args, "--ignore-submodules")
	if req.PathFilter != "" {
		args = append(args, "--", req.PathFilter)
	}
	return args
}

// StatArgs builds the argument list for the one-line insertion/deletion
// summary of the same comparison.
func StatArgs(req Request) []string {
	args := []string{"diff", "--shortstat"}
	switch req.Mode {
	case ModeStaged:
		args = append(args, "--cached")
	case ModeAll:
		args = append(args, "HEAD")
	case ModeBranch, ModeCommit:
		args = append(args, req.Target)
	}
	args = append(args, "--ignore-submodules")
	if req.PathFilter != "" {
		args = append(args, "--", req.PathFilter)
	}
	return args
}

// Describe returns the human-readable heading for a resolved request.
func Describe(req Request) string {
	switch req.Mode {
	case ModeStaged:
		return "Staged changes"
	case ModeUnstaged:
		return "Unstaged changes"
	case ModeAll:
		return "All changes (staged + unstaged)"
	case ModeBranch:
		return fmt.Sprintf("Changes vs branch '%s'", req.Target)
	case ModeCommit:
		return fmt.Sprintf("Changes vs commit '%s'", req.Target)
	default:
		return "Working directory changes"
	}
}

// Synthesize resolves an option bag and returns the git arguments together
// with the heading, the contract used by the diff command.
func Synthesize(opts Options) ([]string, string) {
	req := Resolve(opts)
	return Args(req), Describe(req)
}

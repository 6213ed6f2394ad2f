package status

import "strings"

// Entry is one working-tree change from `git status --porcelain`: the
// index and worktree state characters plus the path they refer to.
type Entry struct {
	Index    byte
	Worktree byte
	Path     string
}

// Code returns the two-character short-status code.
func (e Entry) Code() string {
	return string([]byte{e.Index, e.Worktree})
}

// Untracked reports whether the entry uses the "??" sentinel.
func (e Entry) Untracked() bool {
	return e.Index == '?' && e.Worktree == '?'
}

// Counts is the aggregate tally of entry categories. Derived once per
// invocation, never mutated afterwards.
type Counts struct {
	Modified  int
	Added     int
	Deleted   int
	Renamed   int
	Unmerged  int
	Untracked int
}

// Total returns the sum of all category counters. With inclusive tallying a
// single file can contribute to more than one counter.
func (c Counts) Total() int {
	return c.Modified + c.Added + c.Deleted + c.Renamed + c.Unmerged + c.Untracked
}

// Parse classifies short-status lines in input order. Empty lines are
// skipped. The first two characters are the state code and the path starts at
// the fourth character.
func Parse(lines []string) []Entry {
	var entries []Entry
	for _, line := range lines {
		if len(line) == 0 {
			continue
		}
		e := Entry{Index: ' ', Worktree: ' '}
		e.Index = line[0]
		if len(line) > 1 {
			e.Worktree = line[1]
		}
		if len(line) > 3 {
			e.Path = line[3:]
		}
		entries = append(entries, e)
	}
	return entries
}

// ParseOutput splits raw porcelain output into lines and classifies them.
func ParseOutput(out string) []Entry {
	return Parse(strings.Split(out, "\n"))
}

// Tally aggregates entries into category counts. A state letter anywhere in
// the two-character code counts, so an entry differing between index and
// worktree may be tallied under two categories. Untracked entries are counted
// only as untracked.
func Tally(entries []Entry) Counts {
	var c Counts
	for _, e := range entries {
		if e.Untracked() {
			c.Untracked++
			continue
		}
		code := e.Code()
		if strings.ContainsRune(code, 'M') {
			c.Modified++
		}
		if strings.ContainsRune(code, 'A') {
			c.Added++
		}
		if strings.ContainsRune(code, 'D') {
			c.Deleted++
		}
		if strings.ContainsRune(code, 'R') {
			c.Renamed++
		}
		if strings.ContainsRune(code, 'U') {
			c.Unmerged++
		}
	}
	return c
}

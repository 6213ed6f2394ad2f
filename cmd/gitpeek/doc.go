// Gitpeek is a CLI for inspecting pending changes in a git repository.
//
// It prints a readable, colorized unified diff with ignored-path sections
// removed, plus a change-status summary, delegating all diff computation to
// the git executable.
//
// Usage:
//
//	gitpeek diff                  # working directory changes
//	gitpeek diff --staged         # index vs HEAD
//	gitpeek diff --all            # staged + unstaged together
//	gitpeek diff --branch main    # working tree vs a branch
//	gitpeek diff --commit HEAD~3  # working tree vs a commit
//	gitpeek status                # classified short status with counts
//	gitpeek info                  # branch, remote, last commit
//
// Running gitpeek with no arguments prints a help summary.
package main

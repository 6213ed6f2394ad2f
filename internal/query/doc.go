// Package query resolves user-selected diff options into a single git diff
// invocation.
//
// Option bags from the CLI may set contradictory mode flags; [Resolve] applies
// a fixed precedence order (staged > unstaged > all > branch > commit >
// working tree) so exactly one mode wins. [Args] turns the resolved request
// into git arguments and [Describe] into the heading shown above the diff.
package query

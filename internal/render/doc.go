// Package render applies presentation tags to filtered diff text.
//
// Classification works line by line on prefixes only, independent of section
// boundaries, and produces (text, kind) pairs; escape-sequence emission is
// deferred to the lipgloss styles at the terminal boundary so the logic stays
// terminal-agnostic. Content and ordering are never altered.
package render

// Package status classifies git short-status lines into per-file change
// records and aggregate counts.
//
// Tallying is deliberately inclusive: a line whose two-character code carries
// two different state letters (say "MD") increments both counters, matching
// the summary behavior of the reference tool rather than a mutually-exclusive
// state machine.
package status

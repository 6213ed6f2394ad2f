// Package difffilter removes per-file sections from raw unified-diff text
// when their path is ignored by the repository.
//
// git's own ignore handling is inconsistent for some file classes, so the
// filter works on the diff text itself: a "diff --git a/<old> b/<new>" line
// opens a section that runs to the next such marker or end of input, and a
// section whose effective path is ignored is dropped whole. Retained text is
// emitted byte-for-byte in its original order, so filtering with a predicate
// that never matches is the identity.
package difffilter

// Package gitx shells out to the git executable and exposes the handful of
// queries the CLI consumes: unified diffs, porcelain status lines, the
// shortstat summary, branch/remote/last-commit metadata, and per-path
// ignore checks.
//
// A [Runner] carries its working directory explicitly so callers stay
// independent of process-global state. Invocations are synchronous, one at a
// time, with a hard output ceiling; there is no timeout or retry.
package gitx

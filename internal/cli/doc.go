// Package cli wires the gitpeek commands: diff, status, info, and version.
//
// Commands report failures as terminal messages and set a process exit code
// instead of panicking; 0 means success and 1 covers every failure path.
package cli

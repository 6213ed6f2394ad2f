// Package config builds the effective gitpeek configuration by layering
// defaults, the JSON config file, GITPEEK_* environment variables, and CLI
// flag overrides, in that order.
package config

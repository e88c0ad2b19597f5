// Package version holds build metadata injected with -ldflags -X and the
// `version` subcommand shared by every binary.
package version

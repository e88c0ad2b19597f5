// Package common holds helpers shared by the command-line tools.
//
// It provides a gRPC client for the daemon's alarm API with per-call timeouts
// and detection of the current system actor (hostname/username) for audit logs.
//
//nolint:revive,nolintlint // Package name "common" is intentional for shared helpers.
package common

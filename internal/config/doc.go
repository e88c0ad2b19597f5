// Package config loads the runtime settings shared by the clock binaries
// from CLOCKROBUSTUS_* environment variables and validates them.
package config

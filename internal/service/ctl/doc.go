// Package ctl implements the clockctl commands: alarm management through the
// daemon API, YAML export and import, and a process status check.
package ctl

// Package apperr defines the error kinds shared by the clock daemon, the
// listener and the control tool.
//
// Every failure that crosses a package boundary is wrapped with one of the
// sentinel kinds so that callers can classify it with errors.Is.
package apperr

// Package alarms persists alarm definitions in a single SQLite table.
//
// The Store is opened once by the daemon and passed to every component that
// needs it. Reads share the lock, writes take it exclusively, and each
// operation runs as its own statement without a surrounding transaction.
package alarms

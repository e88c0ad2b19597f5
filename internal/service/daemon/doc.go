// Package daemon implements the clockd process.
//
// On every tick the publisher reads the alarm table, broadcasts the alarms
// that must ring now and then broadcasts the current clock snapshot. The same
// process serves the alarm management API on top of the store.
package daemon

// Package clock builds the clock snapshots broadcast on every tick.
//
// A Snapshot carries the wall-clock time together with the angles of the
// three hands so that subscribers can draw a dial without any computation.
package clock

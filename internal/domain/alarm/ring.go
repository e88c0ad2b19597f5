package alarm

import "time"

// FiringWindow is how long an alarm rings after its configured second.
// The window does not depend on the tick cadence: with ticks longer than
// one second a tick can miss the window and the alarm is skipped that day.
const FiringWindow = time.Second

// MustRing reports whether the alarm fires at now: the weekday of now is
// active and now lies within FiringWindow from the alarm's time of day.
func (a *Alarm) MustRing(now time.Time) bool {
	if !a.ActiveDays.Has(now.Weekday()) {
		return false
	}

	delta := timeOfDay(now) - a.TimeOfDay()

	return delta >= 0 && delta < FiringWindow
}

// timeOfDay returns the wall-clock offset from midnight, ignoring DST shifts.
func timeOfDay(t time.Time) time.Duration {
	return time.Duration(t.Hour())*time.Hour +
		time.Duration(t.Minute())*time.Minute +
		time.Duration(t.Second())*time.Second +
		time.Duration(t.Nanosecond())
}

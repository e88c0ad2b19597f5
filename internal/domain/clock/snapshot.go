package clock

import (
	"math"
	"time"
)

const pi = float32(math.Pi)

// Snapshot is an immutable clock reading with hand angles in radians.
// 0 rad is the 9 o'clock mark and angles grow clockwise, so 12 o'clock is π/2.
type Snapshot struct {
	Hours        uint8   `json:"hours" yaml:"hours"`
	Minutes      uint8   `json:"minutes" yaml:"minutes"`
	Seconds      uint8   `json:"seconds" yaml:"seconds"`
	HoursAngle   float32 `json:"hoursAngle" yaml:"hours_angle"`
	MinutesAngle float32 `json:"minutesAngle" yaml:"minutes_angle"`
	SecondsAngle float32 `json:"secondsAngle" yaml:"seconds_angle"`
}

// New samples the wall-clock fields of now. Callers pass local time.
func New(now time.Time) Snapshot {
	var (
		hours   = uint8(now.Hour())
		minutes = uint8(now.Minute())
		seconds = uint8(now.Second())
	)

	return Snapshot{
		Hours:        hours,
		Minutes:      minutes,
		Seconds:      seconds,
		HoursAngle:   HourAngle(hours, minutes),
		MinutesAngle: SixtyAngle(minutes, seconds),
		SecondsAngle: SixtyAngle(seconds, 0),
	}
}

// HourAngle places the hour hand on the 12-hour face, advancing with minutes.
func HourAngle(hours, minutes uint8) float32 {
	minuteArc := float32(minutes) * pi / 360
	hourArc := pi/2 + pi*float32(hours%12)/6

	return hourArc + minuteArc
}

// SixtyAngle places a minute or second hand on the 60-unit face; arc is the
// next smaller unit (seconds for the minute hand) and advances the hand.
func SixtyAngle(value, arc uint8) float32 {
	subArc := float32(arc) * pi / 1800
	angle := pi/2 + pi*float32(value%60)/30

	return angle + subArc
}

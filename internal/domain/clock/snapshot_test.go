package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const tolerance = 1e-5

// TestHourAngle covers the quarter marks and the minute arc.
func TestHourAngle(t *testing.T) {
	t.Parallel()

	cases := []struct {
		hours, minutes uint8
		want           float32
	}{
		{9, 0, 2 * pi},
		{21, 0, 2 * pi},
		{0, 0, pi / 2},
		{12, 0, pi / 2},
		{3, 0, pi},
		{15, 0, pi},
		{6, 0, 3 * pi / 2},
		{18, 0, 3 * pi / 2},
		{10, 0, 2*pi + pi/6},
		{1, 0, 2 * pi / 3},
		{13, 0, 2 * pi / 3},
		// 11:60 is noon.
		{11, 60, 2*pi + pi/2},
	}

	for _, c := range cases {
		require.InDelta(t, c.want, HourAngle(c.hours, c.minutes), tolerance, "%02d:%02d", c.hours, c.minutes)
	}
}

// TestSixtyAngle covers the minute and second hands.
func TestSixtyAngle(t *testing.T) {
	t.Parallel()

	cases := []struct {
		value, arc uint8
		want       float32
	}{
		{45, 0, 2 * pi},
		{0, 0, pi / 2},
		{15, 0, pi},
		{30, 0, 3 * pi / 2},
		{46, 0, 2*pi + pi/30},
		{0, 30, pi/2 + pi/60},
	}

	for _, c := range cases {
		require.InDelta(t, c.want, SixtyAngle(c.value, c.arc), tolerance, "%d+%d", c.value, c.arc)
	}
}

// TestNew samples the time fields and derives the angles from them.
func TestNew(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, time.March, 9, 15, 30, 45, 123, time.Local)
	s := New(now)

	require.Equal(t, uint8(15), s.Hours)
	require.Equal(t, uint8(30), s.Minutes)
	require.Equal(t, uint8(45), s.Seconds)
	require.Equal(t, HourAngle(15, 30), s.HoursAngle)
	require.Equal(t, SixtyAngle(30, 45), s.MinutesAngle)
	require.Equal(t, SixtyAngle(45, 0), s.SecondsAngle)
	require.InDelta(t, pi+pi/12, s.HoursAngle, tolerance)
}

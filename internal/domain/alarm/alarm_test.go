package alarm

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// TestActorClone verifies that Clone returns a deep copy and handles nil safely.
func TestActorClone(t *testing.T) {
	t.Parallel()
	require.Nil(t, (*Actor)(nil).Clone())

	a := &Actor{
		Hostname: "kitchen-pc",
		Username: "clock",
	}

	b := a.Clone()

	require.Equal(t, a, b)
	require.NotSame(t, a, b)
	require.Equal(t, "clock@kitchen-pc", b.String())
	require.Equal(t, "<unknown>", (*Actor)(nil).String())
}

// TestAlarm_Validate rejects out-of-range time fields.
func TestAlarm_Validate(t *testing.T) {
	t.Parallel()

	valid := Alarm{ActiveDays: AllDays, Hour: 23, Minute: 59, Seconds: 59}
	require.NoError(t, valid.Validate())

	for _, a := range []Alarm{
		{Hour: 24},
		{Minute: 60},
		{Seconds: 60},
	} {
		require.ErrorIs(t, a.Validate(), ErrInvalidAlarm)
	}
}

// TestAlarm_IsSaved distinguishes new and persisted alarms.
func TestAlarm_IsSaved(t *testing.T) {
	t.Parallel()

	a := Alarm{Hour: 1}
	require.False(t, a.IsSaved())

	a.ID = NewID(42)
	require.True(t, a.IsSaved())
	require.Equal(t, "#42 01:00:00 []", a.String())
}

// TestAlarm_TimeOfDay converts the fields into an offset from midnight.
func TestAlarm_TimeOfDay(t *testing.T) {
	t.Parallel()

	a := Alarm{Hour: 13, Minute: 12, Seconds: 9}
	require.Equal(t, 13*time.Hour+12*time.Minute+9*time.Second, a.TimeOfDay())
}

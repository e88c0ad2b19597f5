package alarm

import (
	"errors"
	"fmt"
	"time"
)

// Alarm is an alarm definition.
// A nil ID means the alarm has not been persisted yet; identity is the ID,
// not the field values.
type Alarm struct {
	// ID is the store-generated primary key.
	ID *int64 `json:"id" yaml:"id,omitempty"`
	// ActiveDays lists the weekdays the alarm is enabled on.
	ActiveDays ActiveDays `json:"activeDays" yaml:"active_days"`
	// Hour is in the 0-23 range.
	Hour uint8 `json:"hour" yaml:"hour"`
	// Minute is in the 0-59 range.
	Minute uint8 `json:"minute" yaml:"minute"`
	// Seconds is in the 0-59 range.
	Seconds uint8 `json:"seconds" yaml:"seconds"`
}

// ErrInvalidAlarm is returned by Validate for out-of-range fields.
var ErrInvalidAlarm = errors.New("invalid alarm")

// NewID returns a pointer to id, for building saved alarms.
func NewID(id int64) *int64 {
	return &id
}

// IsSaved reports whether the alarm has a persisted id.
func (a *Alarm) IsSaved() bool {
	return a.ID != nil
}

// Validate checks the time-of-day fields.
func (a *Alarm) Validate() error {
	switch {
	case a.Hour > 23:
		return fmt.Errorf("%w: hour %d out of range", ErrInvalidAlarm, a.Hour)
	case a.Minute > 59:
		return fmt.Errorf("%w: minute %d out of range", ErrInvalidAlarm, a.Minute)
	case a.Seconds > 59:
		return fmt.Errorf("%w: seconds %d out of range", ErrInvalidAlarm, a.Seconds)
	}

	return nil
}

// TimeOfDay returns the configured time as an offset from midnight.
func (a *Alarm) TimeOfDay() time.Duration {
	return time.Duration(a.Hour)*time.Hour +
		time.Duration(a.Minute)*time.Minute +
		time.Duration(a.Seconds)*time.Second
}

// String renders the alarm for logs.
func (a Alarm) String() string {
	id := "new"
	if a.ID != nil {
		id = fmt.Sprint(*a.ID)
	}

	return fmt.Sprintf("#%s %02d:%02d:%02d %v", id, a.Hour, a.Minute, a.Seconds, a.ActiveDays)
}

package alarm

import (
	"encoding/json"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// ActiveDays is a weekday bitmask: bit 0 is Monday, bit 6 is Sunday.
// Bit 7 is never set by the constructors of this package.
type ActiveDays uint8

// Weekday bits.
const (
	Monday ActiveDays = 1 << iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday

	// AllDays has every weekday bit set.
	AllDays = Monday | Tuesday | Wednesday | Thursday | Friday | Saturday | Sunday
)

// dayNames is indexed by bit position.
//
//nolint:gochecknoglobals // Fixed lookup table.
var dayNames = [7]string{
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
	"Saturday",
	"Sunday",
}

// ParseActiveDays builds a mask from weekday names. Unknown names are ignored.
func ParseActiveDays(names []string) ActiveDays {
	var days ActiveDays

	for _, name := range names {
		for bit, dayName := range dayNames {
			if name == dayName {
				days |= 1 << bit
				break
			}
		}
	}

	return days
}

// Names returns the names of the set days in Monday to Sunday order.
func (d ActiveDays) Names() []string {
	names := make([]string, 0, len(dayNames))

	for bit, name := range dayNames {
		if d&(1<<bit) != 0 {
			names = append(names, name)
		}
	}

	return names
}

// Has reports whether the given weekday is active.
func (d ActiveDays) Has(day time.Weekday) bool {
	// time.Weekday starts at Sunday = 0.
	bit := (int(day) + 6) % 7

	return d&(1<<bit) != 0
}

// Weekdays returns the active days as time.Weekday values, Monday first.
func (d ActiveDays) Weekdays() []time.Weekday {
	weekdays := make([]time.Weekday, 0, len(dayNames))

	for bit := range dayNames {
		if d&(1<<bit) != 0 {
			weekdays = append(weekdays, time.Weekday((bit+1)%7))
		}
	}

	return weekdays
}

// String implements fmt.Stringer.
func (d ActiveDays) String() string {
	return fmt.Sprint(d.Names())
}

// MarshalJSON renders the mask as a list of weekday names.
func (d ActiveDays) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Names())
}

// UnmarshalJSON reads a list of weekday names.
func (d *ActiveDays) UnmarshalJSON(data []byte) error {
	var names []string
	if err := json.Unmarshal(data, &names); err != nil {
		return fmt.Errorf("active days: %w", err)
	}

	*d = ParseActiveDays(names)

	return nil
}

// MarshalYAML renders the mask as a list of weekday names.
func (d ActiveDays) MarshalYAML() (any, error) {
	return d.Names(), nil
}

// UnmarshalYAML reads a list of weekday names.
func (d *ActiveDays) UnmarshalYAML(value *yaml.Node) error {
	var names []string
	if err := value.Decode(&names); err != nil {
		return fmt.Errorf("active days: %w", err)
	}

	*d = ParseActiveDays(names)

	return nil
}

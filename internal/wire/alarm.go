package wire

import "github.com/oshokin/clockrobustus/internal/domain/alarm"

// AlarmPayloadSize is the size of an alarm payload without the header.
const AlarmPayloadSize = 4

// EncodeAlarm returns the alarm payload: active days, hour, minute, seconds.
func EncodeAlarm(a alarm.Alarm) []byte {
	return []byte{
		byte(a.ActiveDays),
		a.Hour,
		a.Minute,
		a.Seconds,
	}
}

// DecodeAlarm reads an alarm payload. Extra trailing bytes are ignored.
// The returned alarm has no id.
func DecodeAlarm(payload []byte) (alarm.Alarm, error) {
	if err := tooShort(AlarmHeader, payload, AlarmPayloadSize); err != nil {
		return alarm.Alarm{}, err
	}

	return alarm.Alarm{
		ActiveDays: alarm.ActiveDays(payload[0]),
		Hour:       payload[1],
		Minute:     payload[2],
		Seconds:    payload[3],
	}, nil
}

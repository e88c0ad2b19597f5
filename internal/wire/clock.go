package wire

import (
	"encoding/binary"
	"math"

	"github.com/oshokin/clockrobustus/internal/domain/clock"
)

// ClockPayloadSize is the size of a clock payload without the header.
const ClockPayloadSize = 15

// EncodeClock returns the clock payload: three time bytes and three big-endian float32 angles.
func EncodeClock(s clock.Snapshot) []byte {
	payload := make([]byte, 3, ClockPayloadSize)
	payload[0] = s.Hours
	payload[1] = s.Minutes
	payload[2] = s.Seconds

	payload = binary.BigEndian.AppendUint32(payload, math.Float32bits(s.HoursAngle))
	payload = binary.BigEndian.AppendUint32(payload, math.Float32bits(s.MinutesAngle))
	payload = binary.BigEndian.AppendUint32(payload, math.Float32bits(s.SecondsAngle))

	return payload
}

// DecodeClock reads a clock payload. Angles are taken as sent, not recomputed.
func DecodeClock(payload []byte) (clock.Snapshot, error) {
	if err := tooShort(ClockHeader, payload, ClockPayloadSize); err != nil {
		return clock.Snapshot{}, err
	}

	return clock.Snapshot{
		Hours:        payload[0],
		Minutes:      payload[1],
		Seconds:      payload[2],
		HoursAngle:   math.Float32frombits(binary.BigEndian.Uint32(payload[3:7])),
		MinutesAngle: math.Float32frombits(binary.BigEndian.Uint32(payload[7:11])),
		SecondsAngle: math.Float32frombits(binary.BigEndian.Uint32(payload[11:15])),
	}, nil
}

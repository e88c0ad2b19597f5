package wire

import (
	"github.com/oshokin/clockrobustus/internal/domain/alarm"
	"github.com/oshokin/clockrobustus/internal/domain/clock"
)

// Envelope headers. They are fixed wire constants: 0xFF also served as the
// alarm "ring" marker of earlier frames and must not change.
const (
	AlarmHeader byte = 0xFF
	ClockHeader byte = 0xFE
)

// Message is a decoded frame: either *AlarmMessage or *ClockMessage.
type Message interface {
	// Header returns the envelope byte of the variant.
	Header() byte

	payload() []byte
}

// AlarmMessage is a ringing alarm.
type AlarmMessage struct {
	Alarm alarm.Alarm
}

// Header implements Message.
func (*AlarmMessage) Header() byte { return AlarmHeader }

func (m *AlarmMessage) payload() []byte { return EncodeAlarm(m.Alarm) }

// ClockMessage is a clock snapshot.
type ClockMessage struct {
	Clock clock.Snapshot
}

// Header implements Message.
func (*ClockMessage) Header() byte { return ClockHeader }

func (m *ClockMessage) payload() []byte { return EncodeClock(m.Clock) }

// Encode prefixes the variant payload with its header.
func Encode(m Message) []byte {
	payload := m.payload()

	frame := make([]byte, 0, 1+len(payload))
	frame = append(frame, m.Header())

	return append(frame, payload...)
}

// Decode validates the header and dispatches to the payload decoder.
func Decode(frame []byte) (Message, error) {
	if len(frame) == 0 {
		return nil, &DecodeError{Reason: ReasonEmpty}
	}

	header, payload := frame[0], frame[1:]

	switch header {
	case AlarmHeader:
		a, err := DecodeAlarm(payload)
		if err != nil {
			return nil, err
		}

		return &AlarmMessage{Alarm: a}, nil
	case ClockHeader:
		s, err := DecodeClock(payload)
		if err != nil {
			return nil, err
		}

		return &ClockMessage{Clock: s}, nil
	default:
		return nil, &DecodeError{Reason: ReasonUnknownHeader, Header: header}
	}
}

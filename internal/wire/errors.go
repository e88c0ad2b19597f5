package wire

import (
	"fmt"

	"github.com/oshokin/clockrobustus/internal/apperr"
)

// DecodeReason tells why a frame could not be decoded.
type DecodeReason uint8

// Decode failure reasons.
const (
	// ReasonEmpty is reported for zero-length frames.
	ReasonEmpty DecodeReason = iota + 1
	// ReasonUnknownHeader is reported when the header byte is not a known variant.
	ReasonUnknownHeader
	// ReasonTooShort is reported when the payload is shorter than the variant needs.
	ReasonTooShort
)

// String implements fmt.Stringer.
func (r DecodeReason) String() string {
	switch r {
	case ReasonEmpty:
		return "empty frame"
	case ReasonUnknownHeader:
		return "unknown header"
	case ReasonTooShort:
		return "payload too short"
	default:
		return "unknown reason"
	}
}

// DecodeError describes a frame that could not be decoded.
// It matches apperr.ErrDecode with errors.Is.
type DecodeError struct {
	// Reason is the failure class.
	Reason DecodeReason
	// Header is the first byte of the frame, if any.
	Header byte
	// Want is the payload size the variant needs (ReasonTooShort only).
	Want int
	// Got is the payload size that was supplied (ReasonTooShort only).
	Got int
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	switch e.Reason {
	case ReasonUnknownHeader:
		return fmt.Sprintf("decode: %s %#02x", e.Reason, e.Header)
	case ReasonTooShort:
		return fmt.Sprintf("decode: %s: want %d bytes, got %d", e.Reason, e.Want, e.Got)
	default:
		return "decode: " + e.Reason.String()
	}
}

// Is reports whether target is apperr.ErrDecode.
func (e *DecodeError) Is(target error) bool {
	return target == apperr.ErrDecode
}

// tooShort checks the payload length before any field is read.
func tooShort(header byte, payload []byte, want int) error {
	if len(payload) >= want {
		return nil
	}

	return &DecodeError{
		Reason: ReasonTooShort,
		Header: header,
		Want:   want,
		Got:    len(payload),
	}
}

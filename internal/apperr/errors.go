package apperr

import (
	"errors"
	"fmt"
)

var (
	// ErrConfig marks missing or unparseable configuration values.
	ErrConfig = errors.New("configuration error")
	// ErrTransport marks bind, connect, send and receive failures of the broadcast channel.
	ErrTransport = errors.New("transport error")
	// ErrStorage marks schema or query failures of the alarm store.
	ErrStorage = errors.New("storage error")
	// ErrDecode marks frames that cannot be decoded.
	ErrDecode = errors.New("decode error")
	// ErrUnsavedEntity is returned when an operation needs a persisted id and the entity has none.
	ErrUnsavedEntity = errors.New("entity is not saved")
)

// Wrap annotates err with an operation name and an error kind.
// It returns nil when err is nil.
func Wrap(kind error, op string, err error) error {
	if err == nil {
		return nil
	}

	return fmt.Errorf("%s: %w: %w", op, kind, err)
}

// Kind returns a short name of the error kind for log fields.
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrConfig):
		return "config"
	case errors.Is(err, ErrTransport):
		return "transport"
	case errors.Is(err, ErrStorage):
		return "storage"
	case errors.Is(err, ErrDecode):
		return "decode"
	case errors.Is(err, ErrUnsavedEntity):
		return "unsaved_entity"
	default:
		return "internal"
	}
}

package listener

import (
	"context"
	"fmt"

	"github.com/oshokin/clockrobustus/internal/domain/alarm"
	"github.com/oshokin/clockrobustus/internal/domain/clock"
	"github.com/oshokin/clockrobustus/internal/logger"
	"github.com/oshokin/clockrobustus/internal/transport/broadcast"
	"github.com/oshokin/clockrobustus/internal/wire"
)

// Dispatcher receives decoded events.
type Dispatcher interface {
	OnAlarm(ctx context.Context, a alarm.Alarm) error
	OnClock(ctx context.Context, s clock.Snapshot) error
}

// Funcs adapts plain functions to Dispatcher. Nil fields ignore the event.
type Funcs struct {
	Alarm func(ctx context.Context, a alarm.Alarm) error
	Clock func(ctx context.Context, s clock.Snapshot) error
}

var _ Dispatcher = Funcs{}

// OnAlarm calls f.Alarm when set.
func (f Funcs) OnAlarm(ctx context.Context, a alarm.Alarm) error {
	if f.Alarm == nil {
		return nil
	}

	return f.Alarm(ctx, a)
}

// OnClock calls f.Clock when set.
func (f Funcs) OnClock(ctx context.Context, s clock.Snapshot) error {
	if f.Clock == nil {
		return nil
	}

	return f.Clock(ctx, s)
}

// Listen receives, decodes and dispatches frames until ctx is canceled.
// A malformed frame aborts with its decode error. A receive error after
// cancellation is a clean exit.
func Listen(ctx context.Context, receiver broadcast.Receiver, dispatcher Dispatcher) error {
	for ctx.Err() == nil {
		frame, err := receiver.Receive()
		if err != nil {
			if ctx.Err() != nil {
				break
			}

			return fmt.Errorf("receive: %w", err)
		}

		message, err := wire.Decode(frame)
		if err != nil {
			logger.ErrorKV(ctx, "Failed to decode frame", "size", len(frame), "error", err)

			return err
		}

		if err = dispatch(ctx, message, dispatcher); err != nil {
			return err
		}
	}

	logger.Debug(ctx, "Listener stopped")

	return nil
}

func dispatch(ctx context.Context, message wire.Message, dispatcher Dispatcher) error {
	switch m := message.(type) {
	case *wire.AlarmMessage:
		if err := dispatcher.OnAlarm(ctx, m.Alarm); err != nil {
			return fmt.Errorf("dispatch alarm: %w", err)
		}
	case *wire.ClockMessage:
		if err := dispatcher.OnClock(ctx, m.Clock); err != nil {
			return fmt.Errorf("dispatch clock: %w", err)
		}
	}

	return nil
}

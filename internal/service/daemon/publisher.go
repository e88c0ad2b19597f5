package daemon

import (
	"context"
	"time"

	"github.com/jmhodges/clock"

	"github.com/oshokin/clockrobustus/internal/domain/alarm"
	clockface "github.com/oshokin/clockrobustus/internal/domain/clock"
	"github.com/oshokin/clockrobustus/internal/logger"
	"github.com/oshokin/clockrobustus/internal/transport/broadcast"
	"github.com/oshokin/clockrobustus/internal/wire"
)

// AlarmLister is the read side of the alarm store used by the publisher.
type AlarmLister interface {
	List(ctx context.Context) ([]alarm.Alarm, error)
}

// Publisher drives the broadcast loop.
type Publisher struct {
	// repo supplies the alarm table on every tick.
	repo AlarmLister
	// sender broadcasts encoded frames.
	sender broadcast.Sender
	// clk is the time source; tests inject a fake.
	clk clock.Clock
	// tick is the pause between iterations.
	tick time.Duration
}

// NewPublisher builds a publisher. A nil clock means the wall clock.
func NewPublisher(repo AlarmLister, sender broadcast.Sender, clk clock.Clock, tick time.Duration) *Publisher {
	if clk == nil {
		clk = clock.New()
	}

	return &Publisher{
		repo:   repo,
		sender: sender,
		clk:    clk,
		tick:   tick,
	}
}

// Tick runs one iteration: due alarms first, then the clock snapshot.
// Store and publish failures are logged and never stop the loop.
// A tick that has started is not interrupted by cancellation of ctx.
func (p *Publisher) Tick(ctx context.Context) {
	ctx = context.WithoutCancel(ctx)
	now := p.clk.Now().Local()

	alarms, err := p.repo.List(ctx)
	if err != nil {
		logger.ErrorKV(ctx, "Failed to read alarms, treating table as empty", "error", err)

		alarms = nil
	}

	for i := range alarms {
		if !alarms[i].MustRing(now) {
			continue
		}

		logger.InfoKV(ctx, "Alarm is ringing", "alarm", alarms[i].String())
		p.publish(ctx, &wire.AlarmMessage{Alarm: alarms[i]})
	}

	p.publish(ctx, &wire.ClockMessage{Clock: clockface.New(now)})
}

// Run loops until ctx is canceled. Cancellation is observed between ticks
// and during the sleep.
func (p *Publisher) Run(ctx context.Context) {
	logger.InfoKV(ctx, "Publisher started", "tick", p.tick)

	for ctx.Err() == nil {
		p.Tick(ctx)

		select {
		case <-ctx.Done():
		case <-p.clk.After(p.tick):
		}
	}

	logger.Info(ctx, "Publisher stopped")
}

func (p *Publisher) publish(ctx context.Context, m wire.Message) {
	if err := p.sender.Publish(wire.Encode(m)); err != nil {
		logger.ErrorKV(ctx, "Failed to publish message", "header", m.Header(), "error", err)
	}
}

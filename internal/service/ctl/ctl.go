package ctl

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/oshokin/clockrobustus/internal/config"
	"github.com/oshokin/clockrobustus/internal/domain/alarm"
	"github.com/oshokin/clockrobustus/internal/logger"
	"github.com/oshokin/clockrobustus/internal/service/common"
)

// AlarmAPI is the subset of the daemon API used by the controller.
type AlarmAPI interface {
	ListAlarms(ctx context.Context, actor *alarm.Actor) ([]alarm.Alarm, error)
	UpsertAlarm(ctx context.Context, actor *alarm.Actor, a *alarm.Alarm) error
	DeleteAlarm(ctx context.Context, actor *alarm.Actor, a *alarm.Alarm) error
}

// Controller runs control commands on behalf of one actor.
type Controller struct {
	// api talks to the daemon.
	api AlarmAPI
	// actor is attached to every request for the audit log.
	actor *alarm.Actor
	// out receives human-readable output.
	out io.Writer
}

// Options configures the connection to the daemon.
type Options struct {
	// APIAddress overrides CLOCKROBUSTUS_API_ADDR.
	APIAddress string
	// Output receives command output; stdout when nil.
	Output io.Writer
}

var (
	// ErrInvalidTime is returned for a time that is not HH:MM or HH:MM:SS.
	ErrInvalidTime = errors.New("time must be HH:MM or HH:MM:SS")
	// ErrUnknownDay is returned for a weekday name that cannot be parsed.
	ErrUnknownDay = errors.New("unknown weekday")
)

// New builds a controller over an existing API client.
func New(api AlarmAPI, actor *alarm.Actor, out io.Writer) *Controller {
	if out == nil {
		out = os.Stdout
	}

	return &Controller{
		api:   api,
		actor: actor,
		out:   out,
	}
}

// Connect loads the settings, detects the actor and dials the daemon.
// The returned close function releases the connection.
func Connect(ctx context.Context, opts *Options) (*Controller, func(), error) {
	if opts == nil {
		opts = new(Options)
	}

	settings, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load settings: %w", err)
	}

	address := settings.APIAddress
	if opts.APIAddress != "" {
		address = opts.APIAddress
	}

	actor, err := common.DetectActor()
	if err != nil {
		return nil, nil, err
	}

	client, err := common.Dial(ctx, address, common.WithCallTimeout(settings.Timeout))
	if err != nil {
		return nil, nil, err
	}

	logger.DebugKV(ctx, "Connected to daemon", "address", address, "actor", actor.String())

	closeFn := func() {
		_ = client.Close()
	}

	return New(client, actor, opts.Output), closeFn, nil
}

// List prints every stored alarm, one per line.
func (c *Controller) List(ctx context.Context) error {
	alarms, err := c.api.ListAlarms(ctx, c.actor)
	if err != nil {
		return err
	}

	if len(alarms) == 0 {
		_, err = fmt.Fprintln(c.out, "no alarms")

		return err
	}

	for _, a := range alarms {
		if _, err = fmt.Fprintln(c.out, a.String()); err != nil {
			return err
		}
	}

	return nil
}

// Set inserts a new alarm, or updates the one with the same id.
func (c *Controller) Set(ctx context.Context, a *alarm.Alarm) error {
	if err := a.Validate(); err != nil {
		return err
	}

	if err := c.api.UpsertAlarm(ctx, c.actor, a); err != nil {
		return err
	}

	logger.InfoKV(ctx, "Alarm saved", "alarm", a.String())

	return nil
}

// Delete removes the alarm with the given id. Unknown ids are ignored by the daemon.
func (c *Controller) Delete(ctx context.Context, id int64) error {
	if err := c.api.DeleteAlarm(ctx, c.actor, &alarm.Alarm{ID: alarm.NewID(id)}); err != nil {
		return err
	}

	logger.InfoKV(ctx, "Alarm deleted", "id", id)

	return nil
}

// ParseAlarm builds an alarm from command-line values. A zero id means a new alarm.
// Day names are case-insensitive; "all" selects every day.
func ParseAlarm(id int64, clockTime string, days []string) (*alarm.Alarm, error) {
	hour, minute, second, err := parseClockTime(clockTime)
	if err != nil {
		return nil, err
	}

	activeDays, err := parseDays(days)
	if err != nil {
		return nil, err
	}

	a := &alarm.Alarm{
		ActiveDays: activeDays,
		Hour:       hour,
		Minute:     minute,
		Seconds:    second,
	}

	if id > 0 {
		a.ID = alarm.NewID(id)
	}

	if err = a.Validate(); err != nil {
		return nil, err
	}

	return a, nil
}

func parseClockTime(value string) (uint8, uint8, uint8, error) {
	parts := strings.Split(strings.TrimSpace(value), ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("%w: %q", ErrInvalidTime, value)
	}

	fields := [3]uint8{}

	for i, part := range parts {
		n, err := strconv.ParseUint(part, 10, 8)
		if err != nil {
			return 0, 0, 0, fmt.Errorf("%w: %q", ErrInvalidTime, value)
		}

		fields[i] = uint8(n)
	}

	return fields[0], fields[1], fields[2], nil
}

func parseDays(days []string) (alarm.ActiveDays, error) {
	var result alarm.ActiveDays

	for _, raw := range days {
		for name := range strings.SplitSeq(raw, ",") {
			name = strings.TrimSpace(name)
			if name == "" {
				continue
			}

			if strings.EqualFold(name, "all") {
				result |= alarm.AllDays
				continue
			}

			day := alarm.ParseActiveDays([]string{titleCase(name)})
			if day == 0 {
				return 0, fmt.Errorf("%w: %q", ErrUnknownDay, name)
			}

			result |= day
		}
	}

	return result, nil
}

// titleCase maps "monday" and "MONDAY" to "Monday".
func titleCase(name string) string {
	for day := range 7 {
		weekday := time.Weekday(day).String()
		if strings.EqualFold(weekday, name) {
			return weekday
		}
	}

	return name
}

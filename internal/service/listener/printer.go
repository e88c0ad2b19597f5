package listener

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/oshokin/clockrobustus/internal/domain/alarm"
	"github.com/oshokin/clockrobustus/internal/domain/clock"
)

// Output formats supported by Printer.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ErrUnknownFormat is returned for an output format other than json or yaml.
var ErrUnknownFormat = errors.New("unknown output format")

// event is one printed line or document.
type event struct {
	Kind  string          `json:"kind"            yaml:"kind"`
	Alarm *alarm.Alarm    `json:"alarm,omitempty" yaml:"alarm,omitempty"`
	Clock *clock.Snapshot `json:"clock,omitempty" yaml:"clock,omitempty"`
}

// Printer is a Dispatcher writing every event to w.
type Printer struct {
	// mu serializes writes to w.
	mu sync.Mutex
	// w receives the encoded events.
	w io.Writer
	// format is FormatJSON or FormatYAML.
	format string
	// skipClock drops clock events.
	skipClock bool
}

var _ Dispatcher = (*Printer)(nil)

// NewPrinter returns a printer for the given format.
func NewPrinter(w io.Writer, format string, skipClock bool) (*Printer, error) {
	switch format {
	case "", FormatJSON:
		format = FormatJSON
	case FormatYAML:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	return &Printer{
		w:         w,
		format:    format,
		skipClock: skipClock,
	}, nil
}

// OnAlarm prints an alarm event.
func (p *Printer) OnAlarm(_ context.Context, a alarm.Alarm) error {
	return p.write(event{Kind: "alarm", Alarm: &a})
}

// OnClock prints a clock event unless clock events are skipped.
func (p *Printer) OnClock(_ context.Context, s clock.Snapshot) error {
	if p.skipClock {
		return nil
	}

	return p.write(event{Kind: "clock", Clock: &s})
}

func (p *Printer) write(e event) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.format == FormatYAML {
		enc := yaml.NewEncoder(p.w)
		if err := enc.Encode(e); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}

		return enc.Close()
	}

	if err := json.NewEncoder(p.w).Encode(e); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}

	return nil
}

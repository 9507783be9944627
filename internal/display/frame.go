package display

import (
	"context"

	"github.com/oshokin/greenhouse-controller/internal/domain/alarm"
	"github.com/oshokin/greenhouse-controller/internal/domain/climate"
)

// Frame is everything one cycle hands to the displays.
type Frame struct {
	Reading   climate.Reading
	Setpoints climate.Setpoints
	Control   climate.ControlState
	Alarms    alarm.Snapshot
}

// Sink shows a frame.
type Sink interface {
	Show(ctx context.Context, f Frame) error
}

package sensor

import (
	"context"
	"math"

	"github.com/oshokin/greenhouse-controller/internal/domain/climate"
	"github.com/oshokin/greenhouse-controller/internal/logger"
)

// Fallback wraps a Source so that sampling never fails. When the inner source
// errors, the previous good value of the channel is repeated, or NaN if none
// was seen yet. NaN switches nothing on and raises no alarm.
type Fallback struct {
	src  Source
	last [len(climate.Channels)]float64
	seen [len(climate.Channels)]bool
}

// NewFallback wraps src.
func NewFallback(src Source) *Fallback {
	return &Fallback{src: src}
}

// Sample returns the inner value, or a substitute on failure. The error is always nil.
func (f *Fallback) Sample(ctx context.Context, ch climate.Channel) (float64, error) {
	idx := int(ch)
	if idx < 0 || idx >= len(f.last) {
		return 0, nil
	}

	v, err := f.src.Sample(ctx, ch)
	if err == nil {
		f.last[idx] = v
		f.seen[idx] = true

		return v, nil
	}

	substitute := math.NaN()
	if f.seen[idx] {
		substitute = f.last[idx]
	}

	logger.WarnKV(ctx, "Sensor read failed, using substitute value",
		"channel", ch.String(), "substitute", substitute, "error", err)

	return substitute, nil
}

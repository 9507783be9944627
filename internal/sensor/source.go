package sensor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/oshokin/greenhouse-controller/internal/domain/climate"
)

// ErrInstrumentUnavailable is returned when an instrument cannot produce a value.
var ErrInstrumentUnavailable = errors.New("instrument unavailable")

// Source samples one channel per call.
type Source interface {
	Sample(ctx context.Context, ch climate.Channel) (float64, error)
}

// Read samples every channel once and stamps the reading with at. Channels that
// fail are left at zero and their errors are joined.
func Read(ctx context.Context, src Source, at time.Time) (climate.Reading, error) {
	r := climate.Reading{Timestamp: at}

	var errs []error

	for _, ch := range climate.Channels {
		v, err := src.Sample(ctx, ch)
		if err != nil {
			errs = append(errs, fmt.Errorf("sample %s: %w", ch, err))

			continue
		}

		r = r.With(ch, v)
	}

	return r, errors.Join(errs...)
}

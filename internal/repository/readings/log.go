package readings

import (
	"context"
	"errors"

	"github.com/oshokin/greenhouse-controller/internal/domain/climate"
)

// Log is an append-only sink of readings.
type Log interface {
	Append(ctx context.Context, r climate.Reading) error
}

// Multi appends to every sink, even when an earlier one fails.
type Multi []Log

// Append writes the reading to all sinks and joins their errors.
func (m Multi) Append(ctx context.Context, r climate.Reading) error {
	var errs []error

	for _, sink := range m {
		if err := sink.Append(ctx, r); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

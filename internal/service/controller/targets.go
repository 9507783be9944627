package controller

import (
	"context"
	"errors"

	"github.com/oshokin/greenhouse-controller/internal/domain/climate"
	"github.com/oshokin/greenhouse-controller/internal/logger"
	"github.com/oshokin/greenhouse-controller/internal/repository/setpoints"
)

// ResolveTargets loads the stored setpoints. When nothing usable is stored the
// defaults are returned and persisted.
//
// An unset store is recognised by a temperature of exactly 0.0, so a deliberate
// 0.0 C target is replaced by the defaults as well.
func ResolveTargets(ctx context.Context, repo setpoints.Repository) climate.Setpoints {
	stored, err := repo.Load(ctx)

	switch {
	case err == nil:
	case errors.Is(err, setpoints.ErrNotFound):
		logger.Info(ctx, "No stored setpoints")
	default:
		logger.WarnKV(ctx, "Stored setpoints unreadable", "error", err)

		stored = climate.Setpoints{}
	}

	if !stored.IsUnset() {
		logger.InfoKV(ctx, "Setpoints loaded", "temperature", stored.Temperature, "humidity", stored.Humidity)

		return stored
	}

	targets := climate.DefaultSetpoints()

	if err = repo.Save(ctx, targets); err != nil {
		logger.ErrorKV(ctx, "Failed to persist default setpoints", "error", err)
	} else {
		logger.InfoKV(ctx, "Default setpoints stored", "temperature", targets.Temperature, "humidity", targets.Humidity)
	}

	return targets
}

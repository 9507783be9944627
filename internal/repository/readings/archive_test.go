package readings

import (
	"context"
	"database/sql"
	"math"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/oshokin/greenhouse-controller/internal/domain/climate"
)

// TestArchive_AppendCount inserts readings for two runs and counts them separately.
func TestArchive_AppendCount(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "readings.db")

	first := NewArchive(path, "run-1")
	second := NewArchive(path, "run-2")

	for i := range 3 {
		require.NoError(t, first.Append(ctx, climate.Reading{
			Timestamp:   time.Now(),
			Temperature: float64(20 + i),
			Humidity:    50,
			Pressure:    1000,
		}))
	}

	require.NoError(t, second.Append(ctx, climate.Reading{Timestamp: time.Now()}))

	count, err := first.Count(ctx)
	require.NoError(t, err)
	require.Equal(t, 3, count)

	count, err = second.Count(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, count)
}

// TestArchive_Unwritable reports an error for a path in a missing directory.
func TestArchive_Unwritable(t *testing.T) {
	t.Parallel()

	a := NewArchive(filepath.Join(t.TempDir(), "nope", "readings.db"), "run")
	require.Error(t, a.Append(context.Background(), climate.Reading{Timestamp: time.Now()}))
}

// TestArchive_MissingValues stores substituted NaN values as NULL.
func TestArchive_MissingValues(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "readings.db")

	a := NewArchive(path, "run")
	require.NoError(t, a.Append(ctx, climate.Reading{
		Timestamp:   time.Now(),
		Temperature: 21,
		Humidity:    math.NaN(),
		Pressure:    math.NaN(),
	}))

	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)

	defer func() {
		_ = db.Close()
	}()

	var temperature, humidity, pressure sql.NullFloat64

	err = db.QueryRowContext(ctx, "SELECT temperature, humidity, pressure FROM readings").
		Scan(&temperature, &humidity, &pressure)
	require.NoError(t, err)
	require.Equal(t, sql.NullFloat64{Float64: 21, Valid: true}, temperature)
	require.False(t, humidity.Valid)
	require.False(t, pressure.Valid)
}

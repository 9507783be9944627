package setpoints

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oshokin/greenhouse-controller/internal/domain/climate"
)

// TestFileRepository_NotFound verifies Load returns ErrNotFound and zero setpoints for a missing file.
func TestFileRepository_NotFound(t *testing.T) {
	t.Parallel()

	repo := NewFileRepository(filepath.Join(t.TempDir(), "missing.json"))

	s, err := repo.Load(context.Background())
	require.ErrorIs(t, err, ErrNotFound)
	require.Equal(t, climate.Setpoints{}, s)
}

// TestFileRepository_SaveLoad_Roundtrip ensures Save followed by Load returns equal setpoints.
func TestFileRepository_SaveLoad_Roundtrip(t *testing.T) {
	t.Parallel()

	file := filepath.Join(t.TempDir(), "setpoints.json")
	repo := NewFileRepository(file)

	want := climate.Setpoints{Temperature: 22.5, Humidity: 61.25}

	require.NoError(t, repo.Save(context.Background(), want))

	got, err := repo.Load(context.Background())
	require.NoError(t, err)
	require.Equal(t, want, got)

	// Overwritten wholesale.
	want = climate.Setpoints{Temperature: 18, Humidity: 40}
	require.NoError(t, repo.Save(context.Background(), want))

	got, err = repo.Load(context.Background())
	require.NoError(t, err)
	require.Equal(t, want, got)

	contents, err := os.ReadFile(file)
	require.NoError(t, err)
	require.Contains(t, string(contents), "temperature")
	require.Contains(t, string(contents), "humidity")
}

// TestFileRepository_Corrupt returns an error and zero setpoints for garbage or incomplete files.
func TestFileRepository_Corrupt(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	cases := map[string]string{
		"garbage.json":   "\x00\x01not json",
		"partial.json":   `{"temperature": 21}`,
		"wrongtype.json": `{"temperature": "warm", "humidity": 50}`,
		"empty.json":     "",
	}

	for name, contents := range cases {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))

		s, err := NewFileRepository(path).Load(context.Background())
		require.Error(t, err, name)
		require.NotErrorIs(t, err, ErrNotFound, name)
		require.Equal(t, climate.Setpoints{}, s, name)
	}
}

// TestFileRepository_SaveUnwritable reports write failures.
func TestFileRepository_SaveUnwritable(t *testing.T) {
	t.Parallel()

	repo := NewFileRepository(filepath.Join(t.TempDir(), "no", "such", "dir", "setpoints.json"))
	require.Error(t, repo.Save(context.Background(), climate.DefaultSetpoints()))
}

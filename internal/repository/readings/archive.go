package readings

import (
	"context"
	"database/sql"
	"fmt"
	"math"
	"path/filepath"

	// Registers the sqlite3 driver.
	_ "github.com/mattn/go-sqlite3"

	"github.com/oshokin/greenhouse-controller/internal/domain/climate"
)

const createReadingsTable = `
	CREATE TABLE IF NOT EXISTS readings (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		run_id TEXT NOT NULL,
		timestamp DATETIME NOT NULL,
		temperature REAL,
		humidity REAL,
		pressure REAL
	)`

const insertReading = `
	INSERT INTO readings (run_id, timestamp, temperature, humidity, pressure)
	VALUES (?, ?, ?, ?, ?)`

// Archive stores readings in a sqlite database, tagged with the run that produced them.
type Archive struct {
	path  string
	runID string
}

// NewArchive creates an archive at path for the given run.
func NewArchive(path, runID string) *Archive {
	return &Archive{
		path:  filepath.Clean(path),
		runID: runID,
	}
}

// Append opens the database, makes sure the table exists, inserts the reading and
// closes the database again.
func (a *Archive) Append(ctx context.Context, r climate.Reading) error {
	db, err := sql.Open("sqlite3", a.path)
	if err != nil {
		return fmt.Errorf("open archive: %w", err)
	}

	defer func() {
		_ = db.Close()
	}()

	if _, err = db.ExecContext(ctx, createReadingsTable); err != nil {
		return fmt.Errorf("create readings table: %w", err)
	}

	_, err = db.ExecContext(ctx, insertReading,
		a.runID, r.Timestamp.UTC(), measured(r.Temperature), measured(r.Humidity), measured(r.Pressure))
	if err != nil {
		return fmt.Errorf("insert reading: %w", err)
	}

	return nil
}

// Count returns how many readings the run has archived.
func (a *Archive) Count(ctx context.Context) (int, error) {
	db, err := sql.Open("sqlite3", a.path)
	if err != nil {
		return 0, fmt.Errorf("open archive: %w", err)
	}

	defer func() {
		_ = db.Close()
	}()

	var count int

	err = db.QueryRowContext(ctx, "SELECT COUNT(*) FROM readings WHERE run_id = ?", a.runID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count readings: %w", err)
	}

	return count, nil
}

// measured maps a NaN substitute to NULL.
func measured(v float64) sql.NullFloat64 {
	return sql.NullFloat64{Float64: v, Valid: !math.IsNaN(v)}
}

package readings

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/oshokin/greenhouse-controller/internal/config"
	"github.com/oshokin/greenhouse-controller/internal/domain/climate"
)

// TimestampLayout renders record timestamps as 24 fixed-width characters,
// e.g. "Wed,Jun, 5,14:03:09,2024". Go layouts are locale independent.
const TimestampLayout = "Mon,Jan,_2,15:04:05,2006"

// FileLog appends readings as text lines to a file.
type FileLog struct {
	path string
}

// NewFileLog creates a log writing to path.
func NewFileLog(path string) *FileLog {
	return &FileLog{path: filepath.Clean(path)}
}

// Append opens the file for append, creating it if needed, writes one record and
// closes it again. Open failures are returned as is, without retry.
func (l *FileLog) Append(_ context.Context, r climate.Reading) error {
	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, config.DefaultFilePermissions)
	if err != nil {
		return fmt.Errorf("open reading log: %w", err)
	}

	_, err = f.WriteString(FormatRecord(r))
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}

	if err != nil {
		return fmt.Errorf("write reading log: %w", err)
	}

	return nil
}

// FormatRecord renders a reading as a newline-prefixed log record:
// timestamp, then temperature, humidity and pressure at one decimal.
func FormatRecord(r climate.Reading) string {
	return fmt.Sprintf("\n%s,%5.1f,%5.1f,%6.1f",
		formatTimestamp(r.Timestamp), r.Temperature, r.Humidity, r.Pressure)
}

// formatTimestamp renders ts in local time using TimestampLayout.
func formatTimestamp(ts time.Time) string {
	return ts.Local().Format(TimestampLayout)
}

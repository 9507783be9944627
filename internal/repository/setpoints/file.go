package setpoints

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/oshokin/greenhouse-controller/internal/config"
	"github.com/oshokin/greenhouse-controller/internal/domain/climate"
)

// Repository defines persistence operations for the setpoints.
type Repository interface {
	Load(ctx context.Context) (climate.Setpoints, error)
	Save(ctx context.Context, setpoints climate.Setpoints) error
}

// Field names of the persisted record.
const (
	fieldTemperature = "temperature"
	fieldHumidity    = "humidity"
)

var (
	// ErrNotFound is returned when the setpoints file does not exist yet.
	ErrNotFound = errors.New("setpoints not found")
	// errMissingField is returned when the record lacks one of its numbers.
	errMissingField = errors.New("missing numeric field")
)

// FileRepository persists the setpoints to a JSON file on disk.
// The record is a protobuf Struct encoded with protojson holding exactly the
// temperature and humidity numbers. The file is rewritten wholesale on Save.
type FileRepository struct {
	// path is the filesystem location of the setpoints file.
	path string
	// mu serialises access to the file.
	mu sync.Mutex
}

// NewFileRepository creates a repository that reads/writes JSON at the provided path.
func NewFileRepository(path string) *FileRepository {
	return &FileRepository{
		path: filepath.Clean(path),
	}
}

// Load reads the setpoints from disk. A missing file yields ErrNotFound, an
// unreadable or corrupt one a wrapped error; in both cases the returned value
// is the zero Setpoints.
func (r *FileRepository) Load(_ context.Context) (climate.Setpoints, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	contents, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return climate.Setpoints{}, ErrNotFound
		}

		return climate.Setpoints{}, fmt.Errorf("read setpoints file: %w", err)
	}

	var record structpb.Struct
	if err = protojson.Unmarshal(contents, &record); err != nil {
		return climate.Setpoints{}, fmt.Errorf("decode setpoints file: %w", err)
	}

	return fromStruct(&record)
}

// Save overwrites the file with the provided setpoints.
func (r *FileRepository) Save(_ context.Context, setpoints climate.Setpoints) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	record, err := toStruct(setpoints)
	if err != nil {
		return fmt.Errorf("encode setpoints: %w", err)
	}

	data, err := protojson.MarshalOptions{Multiline: true}.Marshal(record)
	if err != nil {
		return fmt.Errorf("encode setpoints: %w", err)
	}

	if err = os.WriteFile(r.path, data, config.DefaultFilePermissions); err != nil {
		return fmt.Errorf("write setpoints file: %w", err)
	}

	return nil
}

// fromStruct converts the stored record into setpoints.
func fromStruct(record *structpb.Struct) (climate.Setpoints, error) {
	fields := record.GetFields()

	temperature, ok := fields[fieldTemperature].GetKind().(*structpb.Value_NumberValue)
	if !ok {
		return climate.Setpoints{}, fmt.Errorf("%s: %w", fieldTemperature, errMissingField)
	}

	humidity, ok := fields[fieldHumidity].GetKind().(*structpb.Value_NumberValue)
	if !ok {
		return climate.Setpoints{}, fmt.Errorf("%s: %w", fieldHumidity, errMissingField)
	}

	return climate.Setpoints{
		Temperature: temperature.NumberValue,
		Humidity:    humidity.NumberValue,
	}, nil
}

// toStruct converts setpoints into the stored record.
func toStruct(setpoints climate.Setpoints) (*structpb.Struct, error) {
	return structpb.NewStruct(map[string]any{
		fieldTemperature: setpoints.Temperature,
		fieldHumidity:    setpoints.Humidity,
	})
}

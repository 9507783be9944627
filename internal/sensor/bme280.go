package sensor

import (
	"context"
	"fmt"

	"gobot.io/x/gobot/v2/drivers/i2c"

	"github.com/oshokin/greenhouse-controller/internal/domain/climate"
)

// pascalsPerMillibar converts the driver's pressure unit to millibars.
const pascalsPerMillibar = 100

// Instrument is the subset of the gobot BME280 driver used for sampling.
type Instrument interface {
	Temperature() (float32, error)
	Humidity() (float32, error)
	Pressure() (float32, error)
}

// BME280 samples a BME280 temperature/humidity/pressure sensor.
type BME280 struct {
	driver *i2c.BME280Driver
	inst   Instrument
}

// NewBME280 creates the sensor on an I2C connector such as the raspi adaptor.
func NewBME280(conn i2c.Connector) *BME280 {
	driver := i2c.NewBME280Driver(conn)

	return &BME280{
		driver: driver,
		inst:   driver,
	}
}

// NewInstrumentSource samples an arbitrary instrument, e.g. a test double.
func NewInstrumentSource(inst Instrument) *BME280 {
	return &BME280{inst: inst}
}

// Start initialises the driver. The connector must already be connected.
func (b *BME280) Start() error {
	if b.driver == nil {
		return nil
	}

	if err := b.driver.Start(); err != nil {
		return fmt.Errorf("start bme280: %w", err)
	}

	return nil
}

// Halt stops the driver.
func (b *BME280) Halt() error {
	if b.driver == nil {
		return nil
	}

	return b.driver.Halt()
}

// Sample reads the channel from the instrument. Driver errors are reported as
// ErrInstrumentUnavailable.
func (b *BME280) Sample(_ context.Context, ch climate.Channel) (float64, error) {
	var (
		v   float32
		err error
	)

	switch ch {
	case climate.Temperature:
		v, err = b.inst.Temperature()
	case climate.Humidity:
		v, err = b.inst.Humidity()
	case climate.Pressure:
		v, err = b.inst.Pressure()
		v /= pascalsPerMillibar
	default:
		return 0, fmt.Errorf("%s: %w", ch, ErrInstrumentUnavailable)
	}

	if err != nil {
		return 0, fmt.Errorf("%s: %w: %w", ch, ErrInstrumentUnavailable, err)
	}

	return float64(v), nil
}

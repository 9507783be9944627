package sensor

import (
	"context"
	"math/rand/v2"

	"github.com/oshokin/greenhouse-controller/internal/domain/climate"
)

// pcgIncrement is the second PCG seed word.
const pcgIncrement = 0x9e3779b97f4a7c15

// Simulator draws independent uniform values from each channel's [low, high) range.
// It never fails. It is not safe for concurrent use.
type Simulator struct {
	rnd *rand.Rand
}

// NewSimulator creates a simulator seeded with seed.
func NewSimulator(seed uint64) *Simulator {
	return &Simulator{
		rnd: rand.New(rand.NewPCG(seed, seed^pcgIncrement)), //nolint:gosec // Simulation only.
	}
}

// Sample returns a fresh draw for the channel.
func (s *Simulator) Sample(_ context.Context, ch climate.Channel) (float64, error) {
	span := ch.Range()

	return span.Low + s.rnd.Float64()*span.Span(), nil
}

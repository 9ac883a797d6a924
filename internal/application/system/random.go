package system

import (
	"math/rand"
	"time"

	"github.com/younwookim/fruitmachine/internal/domain/entity"
)

// RandomSource draws symbols uniformly from the palette.
// It is seeded once and is not safe for concurrent use.
type RandomSource struct {
	rng  *rand.Rand
	seed int64
}

// NewRandomSource creates a source seeded from the current time
func NewRandomSource() *RandomSource {
	return NewSeededSource(time.Now().UnixNano())
}

// NewSeededSource creates a source with a fixed seed
func NewSeededSource(seed int64) *RandomSource {
	return &RandomSource{
		rng:  rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Next returns a uniformly random symbol
func (s *RandomSource) Next() entity.Symbol {
	return entity.Symbol(s.rng.Intn(entity.PaletteSize))
}

// Seed returns the seed the source was created with
func (s *RandomSource) Seed() int64 {
	return s.seed
}

package pricegen

import (
	"math/rand"
)

// Option represents a PriceProcess functional option
type Option func(p *PriceProcess)

// Seed is the functional option to make the process deterministic.
func Seed(seed int64) Option {
	return func(p *PriceProcess) {
		p.rand = rand.New(rand.NewSource(seed))
	}
}

// Rand is the functional option to inject the random source. The generator must be
// owned by this process only.
func Rand(r *rand.Rand) Option {
	return func(p *PriceProcess) {
		p.rand = r
	}
}

// MeanReversionSpeed is the functional option to define the fraction of the gap to the
// base price recovered per step (0.01 when not set).
func MeanReversionSpeed(speed float64) Option {
	return func(p *PriceProcess) {
		p.meanReversionSpeed = speed
	}
}

// WithLogger is the functional option to log news events and floor clamps at debug level.
func WithLogger(l Logger) Option {
	return func(p *PriceProcess) {
		p.l = l
	}
}

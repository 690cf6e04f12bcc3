package tools

import (
	"sync"

	"go.uber.org/atomic"

	"github.com/luismcruz/pricegen"
)

/*
SharedProcess is used when one PriceProcess has to be driven or read from several goroutines.
Steps and volatility updates are serialized, price reads never block.
*/
type SharedProcess struct {
	mutex   *sync.Mutex
	process *pricegen.PriceProcess
	price   *atomic.Float64
	steps   *atomic.Int64
}

// NewSharedProcess is the SharedProcess constructor. The wrapped process must not be used directly afterwards.
func NewSharedProcess(process *pricegen.PriceProcess) *SharedProcess {
	return &SharedProcess{
		mutex:   &sync.Mutex{},
		process: process,
		price:   atomic.NewFloat64(process.CurrentPrice()),
		steps:   atomic.NewInt64(0),
	}
}

// Next advances the wrapped process one step.
func (s *SharedProcess) Next() (float64, float64) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	price, volume := s.process.Next()
	s.price.Store(price)
	s.steps.Inc()

	return price, volume
}

// SetVolatility takes effect on the next call to Next.
func (s *SharedProcess) SetVolatility(volatility float64) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.process.SetVolatility(volatility)
}

// CurrentPrice returns the price published by the last completed step.
func (s *SharedProcess) CurrentPrice() float64 {
	return s.price.Load()
}

// Steps returns how many steps have completed.
func (s *SharedProcess) Steps() int64 {
	return s.steps.Load()
}

package pricegen

import (
	"math"
	"math/rand"
	"time"
)

/************************************************************
Fixed parameters of the price process
Floor -> hard minimum price after every update
News  -> rare larger shocks (probability 1/newsOdds)
*************************************************************/
const (
	priceFloor                float64 = 0.01
	meanReversionSpeedDefault float64 = 0.01
	newsOdds                  int     = 100
	newsMagnitude             float64 = 0.05
	baseVolumeMin             float64 = 100000.0
	baseVolumeMax             float64 = 1000000.0
	volumeFactor              float64 = 10.0
)

/*
PriceProcess generates one (price, volume) pair per step with a random walk,
a pull back toward the initial price and occasional news jumps.

A PriceProcess is not safe for concurrent use, see tools.SharedProcess.
*/
type PriceProcess struct {
	currentPrice       float64
	basePrice          float64
	volatility         float64
	meanReversionSpeed float64
	rand               *rand.Rand
	l                  Logger
}

// NewPriceProcess is the PriceProcess constructor. Inputs are not validated: a negative
// volatility behaves like its absolute value and a non-positive price falls to the floor.
func NewPriceProcess(initialPrice, volatility float64, opts ...Option) *PriceProcess {

	p := &PriceProcess{
		currentPrice:       initialPrice,
		basePrice:          initialPrice,
		volatility:         volatility,
		meanReversionSpeed: meanReversionSpeedDefault,
	}

	for _, o := range opts {
		o(p)
	}

	if p.rand == nil {
		p.rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return p
}

/**************************
*
*	Internal Methods
*
***************************/

func (p *PriceProcess) randomChange() float64 {
	return (p.rand.Float64()*2 - 1) * p.volatility
}

func (p *PriceProcess) meanReversion() float64 {
	return (p.basePrice - p.currentPrice) * p.meanReversionSpeed
}

func (p *PriceProcess) newsEvent() float64 {

	if p.rand.Intn(newsOdds) != 0 {
		return 0
	}

	news := (p.rand.Float64()*2 - 1) * newsMagnitude

	if p.l != nil {
		p.l.Debugf("news event: %.4f at price %.4f", news, p.currentPrice)
	}

	return news
}

func (p *PriceProcess) volume(totalChange float64) float64 {
	baseVolume := baseVolumeMin + p.rand.Float64()*(baseVolumeMax-baseVolumeMin)
	return baseVolume * volumeMultiplier(totalChange)
}

func volumeMultiplier(totalChange float64) float64 {
	return 1 + math.Abs(totalChange)*volumeFactor
}

/**************************
*
*	Acessible Methods
*
***************************/

// Next advances the process one step and returns the new price and its volume.
func (p *PriceProcess) Next() (float64, float64) {

	totalChange := p.randomChange() + p.meanReversion() + p.newsEvent()

	p.currentPrice *= 1 + totalChange

	if p.currentPrice < priceFloor {
		if p.l != nil {
			p.l.Debugf("price %.6f clamped to floor", p.currentPrice)
		}
		p.currentPrice = priceFloor
	}

	return p.currentPrice, p.volume(totalChange)
}

// SetVolatility replaces the random walk scale starting with the next step.
func (p *PriceProcess) SetVolatility(volatility float64) {
	p.volatility = volatility
}

func (p *PriceProcess) CurrentPrice() float64 {
	return p.currentPrice
}

func (p *PriceProcess) BasePrice() float64 {
	return p.basePrice
}

func (p *PriceProcess) Volatility() float64 {
	return p.volatility
}

func (p *PriceProcess) MeanReversionSpeed() float64 {
	return p.meanReversionSpeed
}

package series

import (
	"math/rand"
	"time"

	"github.com/luismcruz/pricegen"
)

// timePaceCore is the maximum simulated time between two points.
const timePaceCore = 500 * time.Millisecond

// Point is one step of a price process stamped with simulated time.
type Point struct {
	Instrument string
	Time       time.Time
	Price      float64
	Volume     float64
}

/*

Generator drives a single PriceProcess on a simulated clock with random time pace

*/
type Generator struct {
	instrument string
	process    *pricegen.PriceProcess
	timePace   time.Duration
	time       time.Time
	rand       *rand.Rand
}

type Option func(g *Generator)

func TimePace(pace time.Duration) Option {
	return func(g *Generator) {
		g.timePace = pace
	}
}

// Seed fixes the clock source only; the price process keeps its own.
func Seed(seed int64) Option {
	return func(g *Generator) {
		g.rand = rand.New(rand.NewSource(seed))
	}
}

func NewGenerator(instrument string, startTime time.Time, process *pricegen.PriceProcess, opts ...Option) *Generator {

	gen := &Generator{
		instrument: instrument,
		process:    process,
		timePace:   timePaceCore,
		time:       startTime,
	}

	for _, o := range opts {
		o(gen)
	}

	if gen.rand == nil {
		gen.rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return gen
}

func (g *Generator) Next() Point {

	timeInc := time.Duration(g.rand.Float64() * float64(g.timePace))
	g.time = g.time.Add(timeInc)

	price, volume := g.process.Next()

	return Point{
		Instrument: g.instrument,
		Time:       g.time,
		Price:      price,
		Volume:     volume,
	}
}

// Take returns the next n points.
func (g *Generator) Take(n int) []Point {

	points := make([]Point, 0, n)

	for i := 0; i < n; i++ {
		points = append(points, g.Next())
	}

	return points
}

func (g *Generator) Process() *pricegen.PriceProcess {
	return g.process
}

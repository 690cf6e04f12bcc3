package tools

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luismcruz/pricegen"
)

func TestSharedProcess(t *testing.T) {

	t.Run("initial price", func(t *testing.T) {

		s := NewSharedProcess(pricegen.NewPriceProcess(42, 0.01))

		assert.Equal(t, 42.0, s.CurrentPrice())
		assert.Equal(t, int64(0), s.Steps())
	})

	t.Run("matches unwrapped process", func(t *testing.T) {

		s := NewSharedProcess(pricegen.NewPriceProcess(100, 0.02, pricegen.Seed(17)))
		p := pricegen.NewPriceProcess(100, 0.02, pricegen.Seed(17))

		for i := 0; i < 100; i++ {
			ps, vs := s.Next()
			pp, vp := p.Next()
			require.Equal(t, pp, ps)
			require.Equal(t, vp, vs)
			require.Equal(t, pp, s.CurrentPrice())
		}
	})

	t.Run("concurrent use", func(t *testing.T) {

		s := NewSharedProcess(pricegen.NewPriceProcess(0.1, 0.5, pricegen.Seed(3)))

		workers := 8
		stepsPerWorker := 500

		var wg sync.WaitGroup
		wg.Add(workers + 1)

		for w := 0; w < workers; w++ {
			go func() {
				defer wg.Done()
				for i := 0; i < stepsPerWorker; i++ {
					price, volume := s.Next()
					if price < 0.01 || volume <= 0 {
						t.Errorf("invalid step: price %f volume %f", price, volume)
						return
					}
				}
			}()
		}

		go func() {
			defer wg.Done()
			for i := 0; i < stepsPerWorker; i++ {
				s.SetVolatility(float64(i%5) * 0.1)
				if s.CurrentPrice() < 0.01 {
					t.Errorf("invalid published price %f", s.CurrentPrice())
					return
				}
			}
		}()

		wg.Wait()

		assert.Equal(t, int64(workers*stepsPerWorker), s.Steps())
	})
}

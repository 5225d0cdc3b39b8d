package timing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClockAdvanceSumsToWholeSeconds(t *testing.T) {
	for _, tps := range []int{30, 60, 144, 7} {
		c := NewClock(tps)
		for i := 0; i < tps; i++ {
			d := c.Advance()
			assert.InDelta(t, float64(time.Second)/float64(tps), float64(d), 1, "tps=%d tick=%d", tps, i)
		}
		assert.Equal(t, time.Second, c.Elapsed(), "tps=%d", tps)
		assert.Equal(t, uint64(tps), c.Frame())
	}
}

func TestClockAdvanceByThenAdvance(t *testing.T) {
	c := NewClock(60)
	c.AdvanceBy(250 * time.Millisecond)
	assert.Equal(t, 250*time.Millisecond, c.Delta())

	for i := 0; i < 60; i++ {
		c.Advance()
	}
	assert.Equal(t, 1250*time.Millisecond, c.Elapsed())
}

func TestClockNegativeDeltaClamped(t *testing.T) {
	c := NewClock(0)
	assert.Equal(t, DefaultTPS, c.TPS())
	c.AdvanceBy(-time.Second)
	assert.Equal(t, time.Duration(0), c.Elapsed())
}

func TestClockScaleIsExactPerTick(t *testing.T) {
	c := NewClock(60)
	assert.Equal(t, 0.0, c.Scale(300), "no step taken yet")

	for i := 0; i < 120; i++ {
		c.Advance()
		// the Duration alternates between 16.666666ms and 16.666667ms
		assert.Equal(t, 5.0, c.Scale(300), "tick %d", i)
		assert.Equal(t, 1.0/60, c.DeltaSeconds(), "tick %d", i)
	}

	c.AdvanceBy(500 * time.Millisecond)
	assert.Equal(t, 150.0, c.Scale(300))

	c.Advance()
	assert.Equal(t, 5.0, c.Scale(300))
}

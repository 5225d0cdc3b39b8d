package timing

import "time"

// DefaultTPS matches ebiten's default tick rate.
const DefaultTPS = 60

// Clock is the frame clock handed to systems that need elapsed time.
//
// Advance steps by one tick of 1s/TPS. The nanosecond remainder of that
// division is spread across ticks so that TPS ticks add up to exactly one
// second. Per-second rates are scaled by the exact tick 1/TPS, not by the
// rounded Duration, so a fixed tick always moves the same distance.
type Clock struct {
	tps       int
	frame     uint64
	baseFrame uint64
	base      time.Duration
	elapsed   time.Duration
	delta     time.Duration
	fixed     bool
}

func NewClock(tps int) *Clock {
	if tps <= 0 {
		tps = DefaultTPS
	}
	return &Clock{tps: tps}
}

// Advance moves the clock forward by one fixed tick and returns the delta.
func (c *Clock) Advance() time.Duration {
	c.frame++
	ticks := time.Duration(c.frame - c.baseFrame)
	next := c.base + ticks*time.Second/time.Duration(c.tps)
	c.delta = next - c.elapsed
	c.elapsed = next
	c.fixed = true
	return c.delta
}

// AdvanceBy moves the clock forward by an arbitrary delta. Later calls to
// Advance continue from the new elapsed time.
func (c *Clock) AdvanceBy(d time.Duration) time.Duration {
	if d < 0 {
		d = 0
	}
	c.frame++
	c.elapsed += d
	c.delta = d
	c.fixed = false
	c.base = c.elapsed
	c.baseFrame = c.frame
	return d
}

func (c *Clock) Delta() time.Duration {
	return c.delta
}

// DeltaSeconds is the last step in seconds: exactly 1/TPS after Advance.
func (c *Clock) DeltaSeconds() float64 {
	return c.Scale(1)
}

// Scale converts a per-second rate into the amount covered by the last step.
func (c *Clock) Scale(perSecond float64) float64 {
	if c.fixed {
		return perSecond / float64(c.tps)
	}
	return perSecond * c.delta.Seconds()
}

func (c *Clock) Elapsed() time.Duration {
	return c.elapsed
}

func (c *Clock) Frame() uint64 {
	return c.frame
}

func (c *Clock) TPS() int {
	return c.tps
}

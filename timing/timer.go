// Package timing holds the frame clock and countdown timers used by systems.
package timing

import "time"

type TimerMode int

const (
	// Once timers finish a single time and stay finished until Reset.
	Once TimerMode = iota
	// Repeating timers wrap around and may finish several times in one tick.
	Repeating
)

// Timer counts accumulated frame time toward a fixed duration.
type Timer struct {
	duration      time.Duration
	elapsed       time.Duration
	mode          TimerMode
	finished      bool
	timesFinished int
	paused        bool
}

func NewTimer(d time.Duration, mode TimerMode) *Timer {
	return &Timer{duration: d, mode: mode}
}

// Tick advances the timer by delta.
func (t *Timer) Tick(delta time.Duration) *Timer {
	if t.paused || delta <= 0 {
		t.timesFinished = 0
		if t.mode == Repeating {
			t.finished = false
		}
		return t
	}
	if t.mode == Once && t.finished {
		t.timesFinished = 0
		return t
	}

	t.elapsed += delta
	if t.elapsed < t.duration {
		t.finished = false
		t.timesFinished = 0
		return t
	}

	t.finished = true
	switch {
	case t.mode == Once:
		t.timesFinished = 1
		t.elapsed = t.duration
	case t.duration <= 0:
		t.timesFinished = 1
		t.elapsed = 0
	default:
		t.timesFinished = int(t.elapsed / t.duration)
		t.elapsed %= t.duration
	}
	return t
}

// Finished reports whether the timer has reached its duration. Repeating
// timers are only finished on the tick they wrapped.
func (t *Timer) Finished() bool {
	return t.finished
}

// JustFinished reports whether the most recent Tick completed the timer.
func (t *Timer) JustFinished() bool {
	return t.timesFinished > 0
}

// TimesFinishedThisTick is how many whole durations the last Tick crossed.
func (t *Timer) TimesFinishedThisTick() int {
	return t.timesFinished
}

func (t *Timer) Elapsed() time.Duration {
	return t.elapsed
}

func (t *Timer) Remaining() time.Duration {
	return t.duration - t.elapsed
}

func (t *Timer) Duration() time.Duration {
	return t.duration
}

func (t *Timer) Mode() TimerMode {
	return t.mode
}

func (t *Timer) Pause() {
	t.paused = true
}

func (t *Timer) Unpause() {
	t.paused = false
}

func (t *Timer) Paused() bool {
	return t.paused
}

func (t *Timer) Reset() {
	t.elapsed = 0
	t.finished = false
	t.timesFinished = 0
}

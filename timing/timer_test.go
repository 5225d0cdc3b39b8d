package timing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepeatingTimerFiresOncePerInterval(t *testing.T) {
	cases := []struct {
		name  string
		tps   int
		ticks int
		want  int
	}{
		{"60tps_one_second", 60, 60, 1},
		{"60tps_just_short", 60, 59, 0},
		{"60tps_three_seconds", 60, 180, 3},
		{"144tps_two_seconds", 144, 288, 2},
		{"7tps_ten_seconds", 7, 70, 10},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			clock := NewClock(c.tps)
			timer := NewTimer(time.Second, Repeating)
			fired := 0
			for i := 0; i < c.ticks; i++ {
				timer.Tick(clock.Advance())
				fired += timer.TimesFinishedThisTick()
			}
			assert.Equal(t, c.want, fired)
		})
	}
}

func TestRepeatingTimerLargeDelta(t *testing.T) {
	timer := NewTimer(time.Second, Repeating)

	timer.Tick(2500 * time.Millisecond)
	require.True(t, timer.Finished())
	require.True(t, timer.JustFinished())
	assert.Equal(t, 2, timer.TimesFinishedThisTick())
	assert.Equal(t, 500*time.Millisecond, timer.Elapsed())

	timer.Tick(400 * time.Millisecond)
	assert.False(t, timer.Finished())
	assert.Equal(t, 0, timer.TimesFinishedThisTick())

	timer.Tick(100 * time.Millisecond)
	assert.Equal(t, 1, timer.TimesFinishedThisTick())
	assert.Equal(t, time.Duration(0), timer.Elapsed())
}

func TestOnceTimerStaysFinished(t *testing.T) {
	timer := NewTimer(time.Second, Once)

	timer.Tick(3 * time.Second)
	require.True(t, timer.Finished())
	require.True(t, timer.JustFinished())
	assert.Equal(t, 1, timer.TimesFinishedThisTick())
	assert.Equal(t, time.Duration(0), timer.Remaining())

	timer.Tick(time.Second)
	assert.True(t, timer.Finished())
	assert.False(t, timer.JustFinished())

	timer.Reset()
	assert.False(t, timer.Finished())
	assert.Equal(t, time.Second, timer.Remaining())
}

func TestPausedTimerDoesNotAdvance(t *testing.T) {
	timer := NewTimer(time.Second, Repeating)
	timer.Tick(900 * time.Millisecond)
	timer.Pause()
	timer.Tick(5 * time.Second)
	assert.Equal(t, 900*time.Millisecond, timer.Elapsed())
	assert.False(t, timer.JustFinished())

	timer.Unpause()
	timer.Tick(100 * time.Millisecond)
	assert.True(t, timer.JustFinished())
}

func TestZeroDurationRepeatingTimer(t *testing.T) {
	timer := NewTimer(0, Repeating)
	timer.Tick(time.Millisecond)
	assert.Equal(t, 1, timer.TimesFinishedThisTick())
}

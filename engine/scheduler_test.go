package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchedulerRunsTasksInDueOrder(t *testing.T) {
	s := NewScheduler()
	var order []string

	s.After(2*time.Second, Untagged, func() { order = append(order, "b") })
	s.After(1*time.Second, Untagged, func() { order = append(order, "a") })
	s.After(2*time.Second, Untagged, func() { order = append(order, "c") })

	assert.Equal(t, 0, s.Advance(999*time.Millisecond))
	assert.Empty(t, order)

	assert.Equal(t, 3, s.Advance(time.Second+time.Millisecond))
	assert.Equal(t, []string{"a", "b", "c"}, order, "equal due times run FIFO")
	assert.Equal(t, 2*time.Second, s.Now())
}

func TestSchedulerTaskSeesItsDueTime(t *testing.T) {
	s := NewScheduler()
	var seen time.Duration
	s.After(1500*time.Millisecond, Untagged, func() { seen = s.Now() })

	s.Advance(10 * time.Second)
	assert.Equal(t, 1500*time.Millisecond, seen)
	assert.Equal(t, 10*time.Second, s.Now())
}

func TestSchedulerNestedTaskInsideWindow(t *testing.T) {
	s := NewScheduler()
	var fired []time.Duration

	s.After(time.Second, Untagged, func() {
		fired = append(fired, s.Now())
		s.After(time.Second, Untagged, func() { fired = append(fired, s.Now()) })
	})

	s.Advance(2 * time.Second)
	assert.Equal(t, []time.Duration{time.Second, 2 * time.Second}, fired)
}

func TestSchedulerEvery(t *testing.T) {
	s := NewScheduler()
	count := 0
	s.Every(time.Second, s.Generation(), func() bool { count++; return true })

	s.Advance(5500 * time.Millisecond)
	assert.Equal(t, 5, count)
	assert.Equal(t, 1, s.Pending())

	s.Every(0, Untagged, func() bool { t.Fatal("zero period must not arm"); return false })
	assert.Equal(t, 1, s.Pending())
}

func TestSchedulerEveryStopsWhenDone(t *testing.T) {
	s := NewScheduler()
	count := 0
	s.Every(time.Second, s.Generation(), func() bool {
		count++
		return count < 3
	})

	s.Advance(10 * time.Second)
	assert.Equal(t, 3, count)
	assert.Equal(t, 0, s.Pending(), "finished ticker leaves the queue")
}

func TestSchedulerDropsStaleGenerations(t *testing.T) {
	s := NewScheduler()
	gen := s.Generation()

	ticks := 0
	fired := false
	s.Every(time.Second, gen, func() bool { ticks++; return true })
	s.After(2*time.Second, gen, func() { fired = true })
	s.After(2*time.Second, Untagged, func() {})

	s.Advance(time.Second)
	require.Equal(t, 1, ticks)

	next := s.NextGeneration()
	assert.Equal(t, gen+1, next)
	assert.False(t, s.Live(gen))
	assert.True(t, s.Live(Untagged))

	ran := s.Advance(5 * time.Second)
	assert.Equal(t, 1, ran, "only the untagged task runs")
	assert.Equal(t, 1, ticks, "stale ticker stops")
	assert.False(t, fired)
	assert.Equal(t, uint64(2), s.Dropped())
	assert.Equal(t, 0, s.Pending())
}

func TestSchedulerNegativeAdvance(t *testing.T) {
	s := NewScheduler()
	s.Advance(time.Second)
	assert.Equal(t, 0, s.Advance(-time.Second))
	assert.Equal(t, time.Second, s.Now())
}

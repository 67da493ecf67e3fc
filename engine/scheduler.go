package engine

import (
	"time"

	"github.com/zyedidia/generic/heap"
)

// Untagged marks a task that survives session changes
const Untagged uint64 = 0

// task is one pending callback on the scheduler timeline
type task struct {
	due   time.Duration
	seq   uint64 // Insertion order, FIFO tie-break for equal due times
	gen   uint64
	every time.Duration // Zero for one-shot tasks
	fn    func()
	again func() bool // Periodic body; false stops re-arming
}

// Scheduler is a virtual-time task queue
// Time only moves through Advance/AdvanceTo, which makes every timed rule deterministic
// under test. Tasks are tagged with a session generation; a task whose generation is
// no longer live is dropped when it fires.
//
// Not safe for concurrent use: the owner goroutine (Driver or a test) performs all calls.
type Scheduler struct {
	now     time.Duration
	seq     uint64
	live    uint64
	queue   *heap.Heap[*task]
	dropped uint64
}

// NewScheduler creates a scheduler at time zero with generation 1 live
func NewScheduler() *Scheduler {
	return &Scheduler{
		live: 1,
		queue: heap.New(func(a, b *task) bool {
			if a.due != b.due {
				return a.due < b.due
			}
			return a.seq < b.seq
		}),
	}
}

// Now returns elapsed scheduler time
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// Generation returns the live generation
func (s *Scheduler) Generation() uint64 {
	return s.live
}

// NextGeneration retires the live generation and returns its successor
// Every task armed under an older generation becomes stale
func (s *Scheduler) NextGeneration() uint64 {
	s.live++
	return s.live
}

// Live reports whether tasks of the given generation still run
func (s *Scheduler) Live(gen uint64) bool {
	return gen == Untagged || gen == s.live
}

// After schedules fn to run once, d after the current time
func (s *Scheduler) After(d time.Duration, gen uint64, fn func()) {
	s.push(&task{due: s.now + d, gen: gen, fn: fn})
}

// Every schedules fn to run each period d, starting d from now
// The task stops re-arming once fn returns false or its generation is retired
func (s *Scheduler) Every(d time.Duration, gen uint64, fn func() bool) {
	if d <= 0 {
		return
	}
	s.push(&task{due: s.now + d, gen: gen, every: d, again: fn})
}

// Advance moves time forward by d, running due tasks in order
// Returns the number of tasks executed
func (s *Scheduler) Advance(d time.Duration) int {
	if d < 0 {
		return 0
	}
	return s.AdvanceTo(s.now + d)
}

// AdvanceTo moves time forward to target, running due tasks in order
// Tasks armed by running tasks are honoured if they fall inside the window
func (s *Scheduler) AdvanceTo(target time.Duration) int {
	ran := 0
	for {
		next, ok := s.queue.Peek()
		if !ok || next.due > target {
			break
		}
		s.queue.Pop()
		s.now = next.due

		if !s.Live(next.gen) {
			s.dropped++
			continue
		}

		ran++
		if next.every == 0 {
			next.fn()
			continue
		}

		if next.again() && s.Live(next.gen) {
			next.due += next.every
			s.push(next)
		}
	}
	if target > s.now {
		s.now = target
	}
	return ran
}

// Pending returns the number of queued tasks, stale ones included
func (s *Scheduler) Pending() int {
	return s.queue.Size()
}

// Dropped returns how many stale tasks were discarded on fire
func (s *Scheduler) Dropped() uint64 {
	return s.dropped
}

func (s *Scheduler) push(t *task) {
	s.seq++
	t.seq = s.seq
	s.queue.Push(t)
}

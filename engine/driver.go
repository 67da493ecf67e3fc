package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/netrunner/core"
)

// Driver owns the game goroutine and maps wall-clock time onto the scheduler
// Input closures submitted from other goroutines run on the same goroutine as
// timer callbacks, so every state mutation is serialized without locks
type Driver struct {
	scheduler *Scheduler
	clock     TimeProvider
	interval  time.Duration
	onUpdate  func()

	// Wall-clock anchor for scheduler time
	baseReal  time.Time
	baseSched time.Duration

	submitChan chan func()
	stopChan   chan struct{}
	stopOnce   sync.Once
	wg         sync.WaitGroup
	running    atomic.Bool

	tickCount atomic.Uint64
}

// NewDriver creates a driver that advances the scheduler every interval
// onUpdate runs on the driver goroutine after each tick and each submitted closure
func NewDriver(scheduler *Scheduler, clock TimeProvider, interval time.Duration, onUpdate func()) *Driver {
	if clock == nil {
		clock = NewMonotonicTimeProvider()
	}
	return &Driver{
		scheduler:  scheduler,
		clock:      clock,
		interval:   interval,
		onUpdate:   onUpdate,
		submitChan: make(chan func(), 64),
		stopChan:   make(chan struct{}),
	}
}

// Start begins the driver loop
func (d *Driver) Start() {
	if d.running.CompareAndSwap(false, true) {
		d.baseReal = d.clock.Now()
		d.baseSched = d.scheduler.Now()
		d.wg.Add(1)
		core.Go(d.loop)
	}
}

// Stop halts the driver loop and waits for it to exit
func (d *Driver) Stop() {
	d.stopOnce.Do(func() {
		if d.running.CompareAndSwap(true, false) {
			close(d.stopChan)
			d.wg.Wait()
		}
	})
}

// Submit queues fn to run on the driver goroutine
// The scheduler is caught up to wall-clock time before fn runs.
// Returns false if the driver is not running
func (d *Driver) Submit(fn func()) bool {
	if !d.running.Load() {
		return false
	}
	select {
	case d.submitChan <- fn:
		return true
	case <-d.stopChan:
		return false
	}
}

// Ticks returns the number of scheduler advances performed
func (d *Driver) Ticks() uint64 {
	return d.tickCount.Load()
}

func (d *Driver) loop() {
	defer d.wg.Done()

	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	for {
		select {
		case <-d.stopChan:
			return

		case fn := <-d.submitChan:
			d.advance()
			fn()
			d.update()

		case <-ticker.C:
			d.advance()
			d.update()
		}
	}
}

func (d *Driver) advance() {
	target := d.baseSched + d.clock.Now().Sub(d.baseReal)
	if target > d.scheduler.Now() {
		d.scheduler.AdvanceTo(target)
	}
	d.tickCount.Add(1)
}

func (d *Driver) update() {
	if d.onUpdate != nil {
		d.onUpdate()
	}
}

package kite

import (
	"sync"
	"sync/atomic"
	"time"
)

// TickRate is the nominal host scheduling quantum: 20 ticks per second.
const TickRate = 50 * time.Millisecond

// Ticker schedules a function to run once per tick until it returns false.
// Cancellation happens from within the callback only; there is no external
// handle.
type Ticker interface {
	Schedule(fn func() bool)
}

// TickLoop is a self-driving Ticker running on its own goroutine at a fixed
// rate. It stands in for the host's periodic task scheduler when kite is not
// embedded into an existing tick loop.
type TickLoop struct {
	rate time.Duration

	mu   sync.Mutex
	jobs []func() bool

	running atomic.Bool
	stopCh  chan struct{}
	doneCh  chan struct{}

	tickNumber atomic.Uint64
}

// NewTickLoop creates a loop ticking at the given rate. A rate of zero means
// TickRate.
func NewTickLoop(rate time.Duration) *TickLoop {
	if rate <= 0 {
		rate = TickRate
	}
	return &TickLoop{
		rate:   rate,
		stopCh: make(chan struct{}),
		doneCh: make(chan struct{}),
	}
}

// Schedule adds fn to the loop. It is safe to call before Start, from other
// goroutines, and from within a running job; a job added during a tick first
// runs on the next tick.
func (l *TickLoop) Schedule(fn func() bool) {
	l.mu.Lock()
	l.jobs = append(l.jobs, fn)
	l.mu.Unlock()
}

// Start begins the tick loop.
func (l *TickLoop) Start() {
	if l.running.Swap(true) {
		return // Already running
	}
	go l.run()
}

// Stop shuts the loop down and waits for the in-flight tick to finish.
// Remaining jobs are dropped without a callback, like a host unloading a
// world mid-session.
func (l *TickLoop) Stop() {
	if !l.running.Swap(false) {
		return // Not running
	}
	close(l.stopCh)
	<-l.doneCh
}

// run is the loop goroutine. Jobs execute here, one at a time; a panicking
// job propagates and is the embedder's responsibility.
func (l *TickLoop) run() {
	defer close(l.doneCh)

	ticker := time.NewTicker(l.rate)
	defer ticker.Stop()

	for {
		select {
		case <-l.stopCh:
			return
		case <-ticker.C:
			l.tick()
		}
	}
}

// tick runs every job once and drops the ones that returned false.
func (l *TickLoop) tick() {
	l.tickNumber.Add(1)

	l.mu.Lock()
	jobs := l.jobs
	l.jobs = nil
	l.mu.Unlock()

	survivors := jobs[:0]
	for _, fn := range jobs {
		if fn() {
			survivors = append(survivors, fn)
		}
	}

	l.mu.Lock()
	// Jobs scheduled during the tick landed in l.jobs; keep them behind the
	// survivors so per-tick ordering stays stable.
	l.jobs = append(survivors, l.jobs...)
	l.mu.Unlock()
}

// Tick returns the number of completed ticks. It exists for diagnostics.
func (l *TickLoop) Tick() uint64 {
	return l.tickNumber.Load()
}

// ManualTicker is a Ticker driven by the embedding server. Call Tick once
// per server tick, always from the same goroutine or tick transaction.
// Tests use it to step tracking sessions deterministically.
type ManualTicker struct {
	mu   sync.Mutex
	jobs []func() bool
}

// NewManualTicker creates an empty manual ticker.
func NewManualTicker() *ManualTicker {
	return &ManualTicker{}
}

// Schedule adds fn to the ticker.
func (t *ManualTicker) Schedule(fn func() bool) {
	t.mu.Lock()
	t.jobs = append(t.jobs, fn)
	t.mu.Unlock()
}

// Tick runs every job once and drops the ones that returned false.
func (t *ManualTicker) Tick() {
	t.mu.Lock()
	jobs := t.jobs
	t.jobs = nil
	t.mu.Unlock()

	survivors := jobs[:0]
	for _, fn := range jobs {
		if fn() {
			survivors = append(survivors, fn)
		}
	}

	t.mu.Lock()
	t.jobs = append(survivors, t.jobs...)
	t.mu.Unlock()
}

// Len returns the number of scheduled jobs.
func (t *ManualTicker) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.jobs)
}

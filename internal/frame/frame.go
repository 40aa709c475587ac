package frame

import (
	"errors"
	"sync"
	"time"

	"pongy/internal/pong"
)

var (
	// ErrInputLost marks an input failure worth retrying on the next tick.
	ErrInputLost = errors.New("input device lost")
	// ErrSurfaceLost marks a presentation failure that Restore can recover from.
	ErrSurfaceLost = errors.New("render surface lost")
)

type InputProvider interface {
	Poll() (pong.Input, error)
}

// Clock returns a non-decreasing timestamp in milliseconds.
type Clock interface {
	NowMillis() int64
}

type Renderer interface {
	Render(snap pong.Snapshot) error
	// Restore rebuilds presentation resources after ErrSurfaceLost.
	Restore() error
}

type Activity interface {
	Active() bool
	// Changed is closed the next time the activity flips.
	Changed() <-chan struct{}
}

type SystemClock struct {
	start time.Time
}

func NewSystemClock() *SystemClock {
	return &SystemClock{start: time.Now()}
}

// NowMillis uses the monotonic reading, so wall clock jumps don't leak into dt.
func (c *SystemClock) NowMillis() int64 {
	return time.Since(c.start).Milliseconds()
}

// StepClock moves forward by a fixed step every time it is read, for runs
// that should not depend on wall time.
type StepClock struct {
	now  int64
	step int64
}

func NewStepClock(step time.Duration) *StepClock {
	return &StepClock{step: step.Milliseconds()}
}

func (c *StepClock) NowMillis() int64 {
	c.now += c.step
	return c.now
}

// ActivitySwitch is an Activity that can be flipped from any goroutine.
type ActivitySwitch struct {
	mu      sync.Mutex
	active  bool
	changed chan struct{}
}

func NewActivitySwitch(active bool) *ActivitySwitch {
	return &ActivitySwitch{active: active, changed: make(chan struct{})}
}

func (a *ActivitySwitch) Active() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.active
}

func (a *ActivitySwitch) Changed() <-chan struct{} {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.changed
}

func (a *ActivitySwitch) Set(active bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.set(active)
}

func (a *ActivitySwitch) Toggle() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.set(!a.active)
}

func (a *ActivitySwitch) set(active bool) {
	if a.active == active {
		return
	}
	a.active = active
	close(a.changed)
	a.changed = make(chan struct{})
}

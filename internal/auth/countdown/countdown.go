// Package countdown implements cancellable second-by-second countdowns used
// for code expiry and the resend cooldown.
package countdown

import (
	"sync"
	"time"

	"github.com/shandysiswandi/otpgate/internal/pkg/clock"
)

// DefaultTick is the countdown resolution.
const DefaultTick = time.Second

type State int16

const (
	// StateIdle means the countdown was never started.
	StateIdle State = 0
	// StateRunning means ticks are being delivered.
	StateRunning State = 1
	// StateFinished means remaining time reached zero.
	StateFinished State = 2
	// StateCancelled means the run was stopped before finishing.
	StateCancelled State = 3
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "Running"
	case StateFinished:
		return "Finished"
	case StateCancelled:
		return "Cancelled"
	default:
		return "Idle"
	}
}

// Urgency classifies how close a countdown is to running out.
type Urgency int16

const (
	UrgencyNormal   Urgency = 0
	UrgencyWarning  Urgency = 1
	UrgencyCritical Urgency = 2
)

func (u Urgency) String() string {
	switch u {
	case UrgencyWarning:
		return "warning"
	case UrgencyCritical:
		return "critical"
	default:
		return "normal"
	}
}

// Thresholds are the remaining-time breakpoints at or below which the
// urgency escalates. Zero values disable a level.
type Thresholds struct {
	Warning  time.Duration
	Critical time.Duration
}

func (th Thresholds) urgency(remaining time.Duration) Urgency {
	switch {
	case th.Critical > 0 && remaining <= th.Critical:
		return UrgencyCritical
	case th.Warning > 0 && remaining <= th.Warning:
		return UrgencyWarning
	default:
		return UrgencyNormal
	}
}

// Listener receives the events of one run. Nil callbacks are skipped.
// Callbacks run without any countdown lock held, so they may call back into
// the Timer.
type Listener struct {
	OnTick    func(remaining time.Duration)
	OnUrgency func(u Urgency)
	OnFinish  func()
}

// Option customizes a Timer.
type Option func(*Timer)

// WithTick overrides DefaultTick.
func WithTick(d time.Duration) Option {
	return func(t *Timer) {
		if d > 0 {
			t.tick = d
		}
	}
}

// WithThresholds enables urgency breakpoints.
func WithThresholds(th Thresholds) Option {
	return func(t *Timer) { t.thresholds = th }
}

// Timer counts down from a fixed duration in tick steps. At most one run is
// active: Start cancels the previous run and ticks of a cancelled run are
// discarded.
type Timer struct {
	clock      clock.Clocker
	duration   time.Duration
	tick       time.Duration
	thresholds Thresholds

	mu        sync.Mutex
	gen       uint64
	state     State
	remaining time.Duration
	urgency   Urgency
	listener  Listener
	pending   clock.Timer
}

// New returns an idle Timer counting down duration.
func New(clk clock.Clocker, duration time.Duration, opts ...Option) *Timer {
	t := &Timer{
		clock:    clk,
		duration: duration,
		tick:     DefaultTick,
	}

	for _, opt := range opts {
		opt(t)
	}

	return t
}

// Duration returns the full length of one run.
func (t *Timer) Duration() time.Duration {
	return t.duration
}

// Start begins a fresh run, cancelling any run in progress.
func (t *Timer) Start(l Listener) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.stopLocked()
	t.gen++
	t.state = StateRunning
	t.remaining = t.duration
	t.urgency = t.thresholds.urgency(t.duration)
	t.listener = l
	t.scheduleLocked(t.gen)
}

// Cancel stops the current run. It is a no-op unless the timer is running.
func (t *Timer) Cancel() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.state != StateRunning {
		return
	}

	t.stopLocked()
	t.gen++
	t.state = StateCancelled
}

func (t *Timer) stopLocked() {
	if t.pending != nil {
		t.pending.Stop()
		t.pending = nil
	}
}

func (t *Timer) scheduleLocked(gen uint64) {
	t.pending = t.clock.AfterFunc(t.tick, func() { t.onTick(gen) })
}

func (t *Timer) onTick(gen uint64) {
	t.mu.Lock()
	if gen != t.gen || t.state != StateRunning {
		t.mu.Unlock()
		return
	}

	t.remaining -= t.tick
	if t.remaining < 0 {
		t.remaining = 0
	}

	remaining := t.remaining
	listener := t.listener

	escalated := false
	if u := t.thresholds.urgency(remaining); u != t.urgency {
		t.urgency = u
		escalated = true
	}
	urgency := t.urgency

	finished := remaining == 0
	if finished {
		t.state = StateFinished
		t.pending = nil
	} else {
		t.scheduleLocked(gen)
	}
	t.mu.Unlock()

	if listener.OnTick != nil {
		listener.OnTick(remaining)
	}
	if escalated && listener.OnUrgency != nil {
		listener.OnUrgency(urgency)
	}
	if finished && listener.OnFinish != nil {
		listener.OnFinish()
	}
}

// State returns the state of the current run.
func (t *Timer) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.state
}

// Running reports whether a run is in progress.
func (t *Timer) Running() bool {
	return t.State() == StateRunning
}

// Remaining returns the time left in the current run. It is zero for idle,
// finished and cancelled timers.
func (t *Timer) Remaining() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.state != StateRunning {
		return 0
	}
	return t.remaining
}

// Urgency returns the urgency of the current run.
func (t *Timer) Urgency() Urgency {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.state == StateFinished {
		return UrgencyCritical
	}
	return t.urgency
}

// Progress returns the elapsed fraction of the run in [0, 1]. A finished run
// reports 1 and an idle or cancelled one 0.
func (t *Timer) Progress() float64 {
	t.mu.Lock()
	defer t.mu.Unlock()

	switch {
	case t.state == StateFinished:
		return 1
	case t.state != StateRunning || t.duration <= 0:
		return 0
	default:
		return float64(t.duration-t.remaining) / float64(t.duration)
	}
}

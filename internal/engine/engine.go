// Package engine holds the timer state machine. It consumes ticks from the
// host instead of scheduling its own, so the host event loop stays the only
// source of time and a pending tick can never fire after a state change.
package engine

import "time"

// Status is the accrual state of the current session.
type Status int

const (
	StatusStopped Status = iota
	StatusPaused
	StatusRunning
)

func (s Status) String() string {
	switch s {
	case StatusPaused:
		return "paused"
	case StatusRunning:
		return "running"
	default:
		return "stopped"
	}
}

// Mode distinguishes normal count-up sessions from the countdown session.
type Mode int

const (
	// ModeNormal counts elapsed seconds up for a named project.
	ModeNormal Mode = iota
	// ModeCountdown counts remaining seconds down and never persists.
	ModeCountdown
)

// AlarmEvent is emitted exactly once each time the countdown crosses zero.
type AlarmEvent struct {
	At time.Time
}

// Engine tracks the active session: its mode, its status and its second
// counter. All methods run on the host's event loop; the engine does no
// locking of its own.
type Engine struct {
	status    Status
	mode      Mode
	project   string
	seconds   int
	countdown int
	subs      []chan AlarmEvent
}

// New creates a stopped engine with no active project. countdownSeconds is
// the duration the countdown session resets to.
func New(countdownSeconds int) *Engine {
	if countdownSeconds <= 0 {
		countdownSeconds = 3600
	}
	return &Engine{status: StatusStopped, countdown: countdownSeconds}
}

// Status returns the current accrual state.
func (e *Engine) Status() Status { return e.status }

// Mode returns the current session mode.
func (e *Engine) Mode() Mode { return e.mode }

// Project returns the active project name, or "" in countdown mode or when
// no project has been selected yet.
func (e *Engine) Project() string {
	if e.mode == ModeCountdown {
		return ""
	}
	return e.project
}

// Seconds returns the session counter: elapsed seconds in normal mode,
// remaining seconds in countdown mode.
func (e *Engine) Seconds() int { return e.seconds }

// Start begins accrual. No-op while already running.
func (e *Engine) Start() {
	if e.status == StatusRunning {
		return
	}
	e.status = StatusRunning
}

// Pause stops accrual, keeping the session counter.
func (e *Engine) Pause() {
	if e.status != StatusRunning {
		return
	}
	e.status = StatusPaused
}

// Toggle switches between running and paused.
func (e *Engine) Toggle() {
	if e.status == StatusRunning {
		e.Pause()
	} else {
		e.Start()
	}
}

// SetProject switches the session to a named project: mode becomes normal,
// the counter resets to zero and the engine lands in paused state.
func (e *Engine) SetProject(name string) {
	e.mode = ModeNormal
	e.project = name
	e.seconds = 0
	e.status = StatusPaused
}

// SetCountdown switches into countdown mode. The counter always resets to
// the full countdown duration, whatever the prior state was.
func (e *Engine) SetCountdown() {
	e.mode = ModeCountdown
	e.project = ""
	e.seconds = e.countdown
	e.status = StatusPaused
}

// Tick advances the session by one second. It is a no-op unless running.
// In countdown mode the counter decreases; on reaching zero it clamps, the
// engine pauses and one alarm event is emitted.
func (e *Engine) Tick() {
	if e.status != StatusRunning {
		return
	}
	if e.mode == ModeCountdown {
		e.seconds--
		if e.seconds <= 0 {
			e.seconds = 0
			e.status = StatusPaused
			e.emit(AlarmEvent{At: time.Now()})
		}
		return
	}
	e.seconds++
}

// Adjust applies a manual correction to the session counter. The engine is
// forced to paused first, interrupting any running accrual. A zero delta
// resets the counter to zero; any other delta is applied and the result is
// clamped at zero.
func (e *Engine) Adjust(delta int) {
	e.status = StatusPaused
	if delta == 0 {
		e.seconds = 0
		return
	}
	e.seconds += delta
	if e.seconds < 0 {
		e.seconds = 0
	}
}

// Reset clears the session counter without changing mode or project.
func (e *Engine) Reset() {
	e.seconds = 0
}

// Subscribe registers an observer channel for alarm events. Sends never
// block; a slow subscriber misses events rather than stalling a tick.
func (e *Engine) Subscribe(buffer int) <-chan AlarmEvent {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan AlarmEvent, buffer)
	e.subs = append(e.subs, ch)
	return ch
}

func (e *Engine) emit(event AlarmEvent) {
	for _, ch := range e.subs {
		select {
		case ch <- event:
		default:
		}
	}
}

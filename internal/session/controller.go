// Package session orchestrates the timer engine and the project store:
// switching projects, committing session time and the final save on exit.
package session

import (
	"fmt"
	"strings"
	"time"

	"project_timer/internal/engine"
	"project_timer/internal/logger"
	"project_timer/internal/store"
	"project_timer/internal/timeformat"
)

// CountdownProject is the reserved pseudo-project name. It never persists
// entries; its session counts down instead of up.
const CountdownProject = "CountDown"

// Controller drives the engine and decides when the store is persisted. It
// is the only component that calls Store.Save.
type Controller struct {
	store  *store.Store
	engine *engine.Engine
	now    func() time.Time
}

// NewController wires a controller and restores the most recently touched
// project as the active one, if the record has any.
func NewController(st *store.Store, eng *engine.Engine) *Controller {
	c := &Controller{store: st, engine: eng, now: time.Now}
	if recent := st.MostRecent(); recent != "" {
		eng.SetProject(recent)
	}
	return c
}

// Projects lists selectable project names: the countdown pseudo-project
// first, then all stored projects in sorted order.
func (c *Controller) Projects() []string {
	return append([]string{CountdownProject}, c.store.Projects()...)
}

// ActiveProject returns the name of the active project, CountdownProject in
// countdown mode, or "" when nothing is selected yet.
func (c *Controller) ActiveProject() string {
	if c.engine.Mode() == engine.ModeCountdown {
		return CountdownProject
	}
	return c.engine.Project()
}

// Status returns the engine status.
func (c *Controller) Status() engine.Status {
	return c.engine.Status()
}

// Seconds returns the session counter.
func (c *Controller) Seconds() int {
	return c.engine.Seconds()
}

// SessionClock returns the session time formatted for the clock display.
func (c *Controller) SessionClock() string {
	return timeformat.SessionLabel(c.engine.Seconds())
}

// StoredHours returns the active project's persisted total, zero for the
// countdown pseudo-project.
func (c *Controller) StoredHours() float64 {
	if c.engine.Mode() == engine.ModeCountdown {
		return 0
	}
	return c.store.TotalHours(c.engine.Project())
}

// RunningTotal returns the stored total plus the live session, rounded to
// 0.1h, which is what the total display shows while the timer runs.
func (c *Controller) RunningTotal() float64 {
	if c.engine.Mode() == engine.ModeCountdown {
		return 0
	}
	return store.RoundHours(c.StoredHours() + float64(c.engine.Seconds())/3600)
}

// SelectProject commits the current session, then switches to the named
// project (or into countdown mode) with a fresh session counter. Selecting
// an unknown name fails with ErrNotFound and leaves the session untouched.
// A commit persistence failure is reported but does not block the switch.
func (c *Controller) SelectProject(name string) error {
	if name != CountdownProject && !c.store.Has(name) {
		return fmt.Errorf("%w: %q", store.ErrNotFound, name)
	}

	commitErr := c.commit()

	if name == CountdownProject {
		c.engine.SetCountdown()
	} else {
		c.engine.SetProject(name)
	}
	c.logSession()
	return commitErr
}

// CreateProject adds a new project, persists the record and selects the
// project as active with a zero session. The countdown name is reserved.
func (c *Controller) CreateProject(name string) error {
	name = strings.TrimSpace(name)
	if name == CountdownProject {
		return fmt.Errorf("%w: %q is reserved", store.ErrInvalidName, name)
	}
	if err := c.store.Create(name); err != nil {
		return err
	}

	selectErr := c.SelectProject(name)
	if err := c.store.Save(); err != nil {
		logger.Warnf("new project %q not persisted: %v", name, err)
		return err
	}
	return selectErr
}

// Start begins accrual on the next tick.
func (c *Controller) Start() {
	c.engine.Start()
	c.logSession()
}

// Pause stops accrual.
func (c *Controller) Pause() {
	c.engine.Pause()
	c.logSession()
}

// Toggle flips between running and paused.
func (c *Controller) Toggle() {
	c.engine.Toggle()
	c.logSession()
}

// Tick advances the session by one second while running.
func (c *Controller) Tick() {
	c.engine.Tick()
}

// Adjust applies a manual session-time correction; zero resets to zero.
func (c *Controller) Adjust(delta int) {
	c.engine.Adjust(delta)
}

// Shutdown pauses a running session, commits it and persists the record.
// This is the final save on application exit; a persistence failure is
// surfaced as a warning but never blocks shutdown.
func (c *Controller) Shutdown() error {
	if c.engine.Status() == engine.StatusRunning {
		c.engine.Pause()
	}
	err := c.commit()
	c.logSession()
	logger.Infof("------------------------- Closed ------------------------")
	return err
}

// commit converts the current session into one persisted time entry stamped
// with the wall clock. Countdown sessions and empty sessions commit nothing.
// The session counter resets once the entry is recorded, so a later commit
// only carries time accrued since this one.
func (c *Controller) commit() error {
	if c.engine.Mode() == engine.ModeCountdown {
		return nil
	}
	name := c.engine.Project()
	seconds := c.engine.Seconds()
	if name == "" || seconds <= 0 {
		return nil
	}

	hours := store.RoundHours(float64(seconds) / 3600)
	c.store.AddEntry(name, c.now(), hours)
	c.engine.Reset()

	if err := c.store.Save(); err != nil {
		logger.Warnf("commit for %q not persisted: %v", name, err)
		return err
	}
	logger.Infof("%s: committed %.1fh, total %.1fh", name, hours, c.store.TotalHours(name))
	return nil
}

func (c *Controller) logSession() {
	name := c.ActiveProject()
	if name == "" {
		return
	}
	sessionHours := store.RoundHours(float64(c.engine.Seconds()) / 3600)
	if c.engine.Mode() == engine.ModeCountdown {
		logger.Infof("%s: %s, Session: %.1fh", name, c.engine.Status(), sessionHours)
		return
	}
	logger.Infof("%s: %s, Session: %.1fh Total: %.1fh", name, c.engine.Status(), sessionHours, c.RunningTotal())
}

package trafficlight

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Controller tracks the active phase and drives the cycle forward.
//
// A Controller is not safe for concurrent use. It is meant to be owned by a
// single driver loop; use SharedController when several goroutines need it.
type Controller struct {
	id        string
	table     Table
	current   Phase
	cycles    uint64
	observers *ObserverManager
}

// Snapshot is one consistent view of the controller
type Snapshot struct {
	Phase      Phase
	Red        Level
	Yellow     Level
	Green      Level
	DurationMS uint64
	Cycles     uint64
}

// Levels returns the output level of every line, indexed by Phase
func (s Snapshot) Levels() [phaseCount]Level {
	return [phaseCount]Level{
		Red:    s.Red,
		Yellow: s.Yellow,
		Green:  s.Green,
	}
}

// NewController creates a controller on the reference table, starting at Red
func NewController() *Controller {
	return newController(DefaultTable())
}

// NewControllerWithTable creates a controller on a custom table. The table is
// validated here so that no operation of the controller can fail later.
func NewControllerWithTable(table Table) (*Controller, error) {
	if err := table.Validate(); err != nil {
		return nil, err
	}
	return newController(table), nil
}

func newController(table Table) *Controller {
	return &Controller{
		id:        uuid.New().String(),
		table:     table,
		current:   Red,
		observers: NewObserverManager(),
	}
}

// ID returns the unique identifier of this controller instance
func (c *Controller) ID() string {
	return c.id
}

// Table returns a copy of the phase table in use
func (c *Controller) Table() Table {
	return c.table
}

// Current returns the active phase
func (c *Controller) Current() Phase {
	return c.current
}

// IsRed reports whether the red line should be active
func (c *Controller) IsRed() bool {
	return c.current == Red
}

// IsYellow reports whether the yellow line should be active
func (c *Controller) IsYellow() bool {
	return c.current == Yellow
}

// IsGreen reports whether the green line should be active
func (c *Controller) IsGreen() bool {
	return c.current == Green
}

// LevelFor returns the output level of the given line
func (c *Controller) LevelFor(line Phase) Level {
	return LevelFor(c.current, line)
}

// CurrentDuration returns how long the active phase lasts, in milliseconds
func (c *Controller) CurrentDuration() uint64 {
	return c.table.DurationOf(c.current)
}

// CurrentDurationTime is CurrentDuration as a time.Duration
func (c *Controller) CurrentDurationTime() time.Duration {
	return c.table.Duration(c.current)
}

// Cycles returns how many times the controller has returned to Red
func (c *Controller) Cycles() uint64 {
	return c.cycles
}

// Snapshot reads every query at once
func (c *Controller) Snapshot() Snapshot {
	return Snapshot{
		Phase:      c.current,
		Red:        LevelOf(c.IsRed()),
		Yellow:     LevelOf(c.IsYellow()),
		Green:      LevelOf(c.IsGreen()),
		DurationMS: c.CurrentDuration(),
		Cycles:     c.cycles,
	}
}

// Advance moves exactly one step along the cycle and returns the new phase
func (c *Controller) Advance() Phase {
	from := c.current
	c.current = c.table.SuccessorOf(from)
	if c.current == Red {
		c.cycles++
	}

	if c.observers.Len() > 0 {
		c.observers.NotifyTransition(newTransition(from, c.current, c.cycles))
		c.observers.NotifyPhaseEnter(c.current, c.CurrentDuration())
	}
	return c.current
}

// AddObserver registers an observer. It is immediately told about the
// active phase.
func (c *Controller) AddObserver(observer Observer) {
	c.observers.AddObserver(observer)
	guard(observer, "OnPhaseEnter", func() { observer.OnPhaseEnter(c.current, c.CurrentDuration()) })
}

// RemoveObserver unregisters an observer
func (c *Controller) RemoveObserver(observer Observer) {
	c.observers.RemoveObserver(observer)
}

// SharedController guards a Controller with a mutex so that several
// goroutines can query and advance it.
type SharedController struct {
	mu sync.Mutex
	c  *Controller
}

// NewSharedController wraps c. c must not be used directly afterwards.
func NewSharedController(c *Controller) *SharedController {
	return &SharedController{c: c}
}

// Snapshot returns a consistent view of the wrapped controller
func (s *SharedController) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.c.Snapshot()
}

// Advance advances the wrapped controller
func (s *SharedController) Advance() Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.c.Advance()
}

// Do runs fn with exclusive access, so a query followed by Advance is atomic
func (s *SharedController) Do(fn func(c *Controller)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.c)
}

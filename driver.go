package trafficlight

import (
	"context"
	"time"
)

// Output sets a named output line to active or inactive
type Output interface {
	Set(line Phase, on bool) error
}

// OutputFunc adapts a function to the Output interface
type OutputFunc func(line Phase, on bool) error

// Set calls f(line, on)
func (f OutputFunc) Set(line Phase, on bool) error {
	return f(line, on)
}

// Sleeper suspends the caller for a duration
type Sleeper interface {
	Sleep(ctx context.Context, d time.Duration) error
}

// SleeperFunc adapts a function to the Sleeper interface
type SleeperFunc func(ctx context.Context, d time.Duration) error

// Sleep calls f(ctx, d)
func (f SleeperFunc) Sleep(ctx context.Context, d time.Duration) error {
	return f(ctx, d)
}

// TimerSleeper waits on a time.Timer
type TimerSleeper struct{}

// Sleep blocks for d or until ctx is done
func (TimerSleeper) Sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// lineOrder is the order outputs are asserted in each iteration
var lineOrder = [phaseCount]Phase{Red, Yellow, Green}

// Driver runs the perpetual loop: assert outputs, wait, advance
type Driver struct {
	controller *Controller
	output     Output
	sleeper    Sleeper
	observers  *ObserverManager
	iterations uint64
}

// DriverOption configures a Driver
type DriverOption func(*Driver)

// WithSleeper replaces the TimerSleeper
func WithSleeper(s Sleeper) DriverOption {
	return func(d *Driver) {
		d.sleeper = s
	}
}

// WithDriverObserver registers an observer for driver lifecycle events
func WithDriverObserver(o Observer) DriverOption {
	return func(d *Driver) {
		d.observers.AddObserver(o)
	}
}

// NewDriver creates a driver that owns c and out
func NewDriver(c *Controller, out Output, opts ...DriverOption) *Driver {
	d := &Driver{
		controller: c,
		output:     out,
		sleeper:    TimerSleeper{},
		observers:  NewObserverManager(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Controller returns the driven controller
func (d *Driver) Controller() *Controller {
	return d.controller
}

// Iterations returns the number of completed steps
func (d *Driver) Iterations() uint64 {
	return d.iterations
}

// Step runs one iteration. If an output fails the controller is not advanced.
func (d *Driver) Step(ctx context.Context) error {
	snap := d.controller.Snapshot()
	levels := snap.Levels()

	for _, line := range lineOrder {
		if err := d.output.Set(line, levels[line].Bool()); err != nil {
			outErr := NewOutputError(line, err)
			d.observers.NotifyError(outErr)
			return outErr
		}
	}

	if err := d.sleeper.Sleep(ctx, time.Duration(snap.DurationMS)*time.Millisecond); err != nil {
		return err
	}

	d.controller.Advance()
	d.iterations++
	return nil
}

// Run repeats Step forever. It returns only when an output fails or ctx is done.
func (d *Driver) Run(ctx context.Context) (err error) {
	d.observers.NotifyDriverStarted()
	defer func() { d.observers.NotifyDriverStopped(err) }()

	for {
		if err = ctx.Err(); err != nil {
			return err
		}
		if err = d.Step(ctx); err != nil {
			return err
		}
	}
}

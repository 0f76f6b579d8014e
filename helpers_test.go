package trafficlight

import (
	"context"
	"sync"
	"testing"
	"time"
)

// TestObserver captures every observer callback
type TestObserver struct {
	mutex       sync.RWMutex
	Transitions []Transition
	PhaseEnters []PhaseEnterEvent
	Errors      []error
	Started     int
	Stopped     []error
}

type PhaseEnterEvent struct {
	Phase      Phase
	DurationMS uint64
}

func NewTestObserver() *TestObserver {
	return &TestObserver{}
}

func (o *TestObserver) OnTransition(t Transition) {
	o.mutex.Lock()
	defer o.mutex.Unlock()
	o.Transitions = append(o.Transitions, t)
}

func (o *TestObserver) OnPhaseEnter(phase Phase, durationMS uint64) {
	o.mutex.Lock()
	defer o.mutex.Unlock()
	o.PhaseEnters = append(o.PhaseEnters, PhaseEnterEvent{Phase: phase, DurationMS: durationMS})
}

func (o *TestObserver) OnError(err error) {
	o.mutex.Lock()
	defer o.mutex.Unlock()
	o.Errors = append(o.Errors, err)
}

func (o *TestObserver) OnDriverStarted() {
	o.mutex.Lock()
	defer o.mutex.Unlock()
	o.Started++
}

func (o *TestObserver) OnDriverStopped(err error) {
	o.mutex.Lock()
	defer o.mutex.Unlock()
	o.Stopped = append(o.Stopped, err)
}

func (o *TestObserver) TransitionCount() int {
	o.mutex.RLock()
	defer o.mutex.RUnlock()
	return len(o.Transitions)
}

// recordedSet is one call to an Output
type recordedSet struct {
	Line Phase
	On   bool
}

// recordingOutput remembers every Set call and can fail on a chosen line
type recordingOutput struct {
	calls  []recordedSet
	failOn *Phase
	err    error
}

func (o *recordingOutput) Set(line Phase, on bool) error {
	if o.failOn != nil && *o.failOn == line {
		return o.err
	}
	o.calls = append(o.calls, recordedSet{Line: line, On: on})
	return nil
}

// recordingSleeper returns immediately and remembers the requested durations
type recordingSleeper struct {
	durations []time.Duration
}

func (s *recordingSleeper) Sleep(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.durations = append(s.durations, d)
	return nil
}

// AssertPhase fails the test when c is not in want, or the queries disagree
func AssertPhase(t *testing.T, c *Controller, want Phase) {
	t.Helper()
	if c.Current() != want {
		t.Fatalf("Expected phase %s, got %s", want, c.Current())
	}
	active := 0
	for _, on := range []bool{c.IsRed(), c.IsYellow(), c.IsGreen()} {
		if on {
			active++
		}
	}
	if active != 1 {
		t.Fatalf("Expected exactly one active line, got %d", active)
	}
}

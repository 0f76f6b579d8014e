package trafficlight

import "fmt"

// Observer represents an entity that observes controller activity
type Observer interface {
	// OnTransition is called after every Advance
	OnTransition(t Transition)

	// OnPhaseEnter is called when a phase becomes active, including the starting phase
	OnPhaseEnter(phase Phase, durationMS uint64)
}

// ExtendedObserver provides additional optional observation methods
type ExtendedObserver interface {
	Observer

	// OnError is called when a driver step fails or an observer panics
	OnError(err error)

	// OnDriverStarted is called when the driver loop starts
	OnDriverStarted()

	// OnDriverStopped is called when the driver loop returns
	OnDriverStopped(err error)
}

// BaseObserver provides a default implementation with no-op methods
type BaseObserver struct{}

// OnTransition implements the required Observer method
func (o *BaseObserver) OnTransition(t Transition) {}

// OnPhaseEnter implements the required Observer method
func (o *BaseObserver) OnPhaseEnter(phase Phase, durationMS uint64) {}

// OnError implements the optional ExtendedObserver method
func (o *BaseObserver) OnError(err error) {}

// OnDriverStarted implements the optional ExtendedObserver method
func (o *BaseObserver) OnDriverStarted() {}

// OnDriverStopped implements the optional ExtendedObserver method
func (o *BaseObserver) OnDriverStopped(err error) {}

// ObserverManager manages a collection of observers
type ObserverManager struct {
	observers []Observer
}

// NewObserverManager creates a new observer manager
func NewObserverManager() *ObserverManager {
	return &ObserverManager{
		observers: make([]Observer, 0),
	}
}

// AddObserver adds an observer to the manager
func (om *ObserverManager) AddObserver(observer Observer) {
	om.observers = append(om.observers, observer)
}

// RemoveObserver removes an observer from the manager
func (om *ObserverManager) RemoveObserver(observer Observer) {
	for i, obs := range om.observers {
		if obs == observer {
			om.observers = append(om.observers[:i], om.observers[i+1:]...)
			break
		}
	}
}

// Len returns the number of registered observers
func (om *ObserverManager) Len() int {
	return len(om.observers)
}

func (om *ObserverManager) snapshot() []Observer {
	observers := make([]Observer, len(om.observers))
	copy(observers, om.observers)
	return observers
}

// guard runs fn and reports a panic to the observer's OnError, if it has one
func guard(observer Observer, hook string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			if extObs, ok := observer.(ExtendedObserver); ok {
				func() {
					defer func() { recover() }()
					extObs.OnError(fmt.Errorf("observer panic in %s: %v", hook, r))
				}()
			}
		}
	}()
	fn()
}

// NotifyTransition notifies all observers of a transition
func (om *ObserverManager) NotifyTransition(t Transition) {
	for _, observer := range om.snapshot() {
		observer := observer
		guard(observer, "OnTransition", func() { observer.OnTransition(t) })
	}
}

// NotifyPhaseEnter notifies all observers of phase entry
func (om *ObserverManager) NotifyPhaseEnter(phase Phase, durationMS uint64) {
	for _, observer := range om.snapshot() {
		observer := observer
		guard(observer, "OnPhaseEnter", func() { observer.OnPhaseEnter(phase, durationMS) })
	}
}

// NotifyError notifies all observers of errors
func (om *ObserverManager) NotifyError(err error) {
	for _, observer := range om.snapshot() {
		if extObs, ok := observer.(ExtendedObserver); ok {
			func() {
				defer func() { recover() }()
				extObs.OnError(err)
			}()
		}
	}
}

// NotifyDriverStarted notifies all observers that the driver loop started
func (om *ObserverManager) NotifyDriverStarted() {
	for _, observer := range om.snapshot() {
		if extObs, ok := observer.(ExtendedObserver); ok {
			guard(observer, "OnDriverStarted", extObs.OnDriverStarted)
		}
	}
}

// NotifyDriverStopped notifies all observers that the driver loop returned
func (om *ObserverManager) NotifyDriverStopped(err error) {
	for _, observer := range om.snapshot() {
		if extObs, ok := observer.(ExtendedObserver); ok {
			guard(observer, "OnDriverStopped", func() { extObs.OnDriverStopped(err) })
		}
	}
}

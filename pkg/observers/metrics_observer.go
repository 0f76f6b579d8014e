package observers

import (
	"sync"
	"time"

	"github.com/anggasct/trafficlight"
)

// MetricsObserver collects metrics about controller execution
type MetricsObserver struct {
	trafficlight.BaseObserver

	phaseVisits      map[trafficlight.Phase]int
	phaseTimeSpent   map[trafficlight.Phase]time.Duration
	transitionCounts map[string]int
	cycles           uint64
	errorCount       int
	active           trafficlight.Phase
	activeSince      time.Time
	now              func() time.Time
	mutex            sync.RWMutex
}

// NewMetricsObserver creates a new metrics observer
func NewMetricsObserver() *MetricsObserver {
	return &MetricsObserver{
		phaseVisits:      make(map[trafficlight.Phase]int),
		phaseTimeSpent:   make(map[trafficlight.Phase]time.Duration),
		transitionCounts: make(map[string]int),
		now:              time.Now,
	}
}

// OnPhaseEnter records phase entry and closes the time window of the previous phase
func (o *MetricsObserver) OnPhaseEnter(phase trafficlight.Phase, durationMS uint64) {
	o.mutex.Lock()
	defer o.mutex.Unlock()

	now := o.now()
	if !o.activeSince.IsZero() {
		o.phaseTimeSpent[o.active] += now.Sub(o.activeSince)
	}
	o.active = phase
	o.activeSince = now
	o.phaseVisits[phase]++
}

// OnTransition records transition metrics
func (o *MetricsObserver) OnTransition(t trafficlight.Transition) {
	o.mutex.Lock()
	defer o.mutex.Unlock()

	o.transitionCounts[t.From.String()+"->"+t.To.String()]++
	if t.CompletesCycle() {
		o.cycles++
	}
}

// OnError records error metrics
func (o *MetricsObserver) OnError(err error) {
	o.mutex.Lock()
	defer o.mutex.Unlock()

	o.errorCount++
}

// GetPhaseVisitCounts returns the number of times each phase was entered
func (o *MetricsObserver) GetPhaseVisitCounts() map[trafficlight.Phase]int {
	o.mutex.RLock()
	defer o.mutex.RUnlock()

	result := make(map[trafficlight.Phase]int)
	for phase, count := range o.phaseVisits {
		result[phase] = count
	}
	return result
}

// GetPhaseTimeSpent returns the time spent in each phase that has been left
func (o *MetricsObserver) GetPhaseTimeSpent() map[trafficlight.Phase]time.Duration {
	o.mutex.RLock()
	defer o.mutex.RUnlock()

	result := make(map[trafficlight.Phase]time.Duration)
	for phase, duration := range o.phaseTimeSpent {
		result[phase] = duration
	}
	return result
}

// GetTransitionCounts returns the number of times each transition occurred
func (o *MetricsObserver) GetTransitionCounts() map[string]int {
	o.mutex.RLock()
	defer o.mutex.RUnlock()

	result := make(map[string]int)
	for transition, count := range o.transitionCounts {
		result[transition] = count
	}
	return result
}

// GetCycleCount returns the number of completed cycles
func (o *MetricsObserver) GetCycleCount() uint64 {
	o.mutex.RLock()
	defer o.mutex.RUnlock()

	return o.cycles
}

// GetErrorCount returns the number of errors
func (o *MetricsObserver) GetErrorCount() int {
	o.mutex.RLock()
	defer o.mutex.RUnlock()

	return o.errorCount
}

// Reset resets all metrics
func (o *MetricsObserver) Reset() {
	o.mutex.Lock()
	defer o.mutex.Unlock()

	o.phaseVisits = make(map[trafficlight.Phase]int)
	o.phaseTimeSpent = make(map[trafficlight.Phase]time.Duration)
	o.transitionCounts = make(map[string]int)
	o.cycles = 0
	o.errorCount = 0
	o.activeSince = time.Time{}
}

package observers

import (
	"fmt"
	"sync"

	"github.com/anggasct/trafficlight"
)

// ValidationObserver checks observed transitions against a phase table
type ValidationObserver struct {
	trafficlight.BaseObserver

	table         trafficlight.Table
	visitedPhases map[trafficlight.Phase]bool
	last          trafficlight.Phase
	seen          bool
	violations    []string
	mutex         sync.RWMutex
}

// NewValidationObserver creates a validation observer for table
func NewValidationObserver(table trafficlight.Table) *ValidationObserver {
	return &ValidationObserver{
		table:         table,
		visitedPhases: make(map[trafficlight.Phase]bool),
		violations:    make([]string, 0),
	}
}

func (o *ValidationObserver) addViolation(format string, args ...interface{}) {
	o.violations = append(o.violations, fmt.Sprintf(format, args...))
}

// OnPhaseEnter checks the announced duration against the table
func (o *ValidationObserver) OnPhaseEnter(phase trafficlight.Phase, durationMS uint64) {
	o.mutex.Lock()
	defer o.mutex.Unlock()

	o.visitedPhases[phase] = true
	if want := o.table.DurationOf(phase); want != durationMS {
		o.addViolation("phase %s announced %dms, table says %dms", phase, durationMS, want)
	}
}

// OnTransition checks the transition follows the table and continues the previous one
func (o *ValidationObserver) OnTransition(t trafficlight.Transition) {
	o.mutex.Lock()
	defer o.mutex.Unlock()

	if want := o.table.SuccessorOf(t.From); want != t.To {
		o.addViolation("transition %s -> %s not allowed, expected %s -> %s", t.From, t.To, t.From, want)
	}
	if o.seen && o.last != t.From {
		o.addViolation("transition from %s skipped %s", t.From, o.last)
	}
	o.last = t.To
	o.seen = true
}

// GetViolations returns the violations recorded so far
func (o *ValidationObserver) GetViolations() []string {
	o.mutex.RLock()
	defer o.mutex.RUnlock()

	result := make([]string, len(o.violations))
	copy(result, o.violations)
	return result
}

// HasViolations reports whether any violation was recorded
func (o *ValidationObserver) HasViolations() bool {
	o.mutex.RLock()
	defer o.mutex.RUnlock()

	return len(o.violations) > 0
}

// VisitedAll reports whether every phase has been entered
func (o *ValidationObserver) VisitedAll() bool {
	o.mutex.RLock()
	defer o.mutex.RUnlock()

	for _, p := range trafficlight.Phases() {
		if !o.visitedPhases[p] {
			return false
		}
	}
	return true
}

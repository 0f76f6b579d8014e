package trafficlight

import (
	"fmt"
	"time"
)

// Reference timings, in milliseconds
const (
	RedDurationMS    uint64 = 3000
	YellowDurationMS uint64 = 1000
	GreenDurationMS  uint64 = 3000
)

// Bounds every phase duration must fall within
const (
	MinDurationMS uint64 = 100
	MaxDurationMS uint64 = 10000
)

// Descriptor holds how long a phase lasts and which phase follows it
type Descriptor struct {
	DurationMS uint64
	Next       Phase
}

// Table maps every phase to its Descriptor. Indexing is by Phase, so a
// Table literal names all of Red, Yellow and Green explicitly.
type Table [phaseCount]Descriptor

// DefaultTable returns the reference configuration: Red -> Green -> Yellow -> Red
func DefaultTable() Table {
	return Table{
		Red:    {DurationMS: RedDurationMS, Next: Green},
		Green:  {DurationMS: GreenDurationMS, Next: Yellow},
		Yellow: {DurationMS: YellowDurationMS, Next: Red},
	}
}

// DurationOf returns the configured duration of p in milliseconds
func (t Table) DurationOf(p Phase) uint64 {
	return t[p].DurationMS
}

// Duration returns the configured duration of p as a time.Duration
func (t Table) Duration(p Phase) time.Duration {
	return time.Duration(t.DurationOf(p)) * time.Millisecond
}

// SuccessorOf returns the phase entered when p elapses
func (t Table) SuccessorOf(p Phase) Phase {
	return t[p].Next
}

// CycleDurationMS returns the length of one full cycle
func (t Table) CycleDurationMS() uint64 {
	var total uint64
	for _, d := range t {
		total += d.DurationMS
	}
	return total
}

// Validate checks durations and that the successor relation is one cycle
// covering every phase.
func (t Table) Validate() error {
	for i, d := range t {
		p := Phase(i)
		component := fmt.Sprintf("phase %s", p)

		if d.DurationMS == 0 {
			return NewConfigurationError(ErrCodeInvalidDuration, component, "duration must be greater than zero")
		}
		if d.DurationMS < MinDurationMS || d.DurationMS > MaxDurationMS {
			return NewConfigurationError(ErrCodeInvalidDuration, component,
				fmt.Sprintf("duration %dms outside [%d, %d]ms", d.DurationMS, MinDurationMS, MaxDurationMS))
		}
		if !d.Next.Valid() {
			return NewConfigurationError(ErrCodeInvalidPhase, component,
				fmt.Sprintf("successor %s is not a phase", d.Next))
		}
		if d.Next == p {
			return NewConfigurationError(ErrCodeSelfTransition, component, "phase transitions to itself")
		}
	}

	var seen [phaseCount]bool
	p := Red
	for i := 0; i < phaseCount; i++ {
		if seen[p] {
			return NewConfigurationError(ErrCodeBrokenCycle, "phase table",
				fmt.Sprintf("%s revisited after %d steps", p, i))
		}
		seen[p] = true
		p = t.SuccessorOf(p)
	}
	if p != Red {
		return NewConfigurationError(ErrCodeBrokenCycle, "phase table", "cycle does not return to Red")
	}

	return nil
}

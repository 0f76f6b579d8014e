package trafficlight

import (
	"time"

	"github.com/google/uuid"
)

// Transition records one Advance of a Controller
type Transition struct {
	ID    string
	From  Phase
	To    Phase
	Cycle uint64
	At    time.Time
}

func newTransition(from, to Phase, cycle uint64) Transition {
	return Transition{
		ID:    uuid.New().String(),
		From:  from,
		To:    to,
		Cycle: cycle,
		At:    time.Now(),
	}
}

// CompletesCycle reports whether this transition closed a full cycle
func (t Transition) CompletesCycle() bool {
	return t.To == Red
}

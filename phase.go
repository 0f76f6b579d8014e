package trafficlight

import (
	"fmt"
	"strings"
)

// Phase is one of the three mutually exclusive signal colors
type Phase uint8

const (
	// Red is the stop signal and the starting phase
	Red Phase = iota
	// Yellow is the caution signal
	Yellow
	// Green is the go signal
	Green

	phaseCount = int(Green) + 1
)

var phaseNames = [phaseCount]string{
	Red:    "Red",
	Yellow: "Yellow",
	Green:  "Green",
}

// Phases returns every phase in reference cycle order, starting at Red
func Phases() []Phase {
	return []Phase{Red, Green, Yellow}
}

// Valid reports whether p is one of the defined phases
func (p Phase) Valid() bool {
	return int(p) < phaseCount
}

func (p Phase) String() string {
	if !p.Valid() {
		return fmt.Sprintf("Phase(%d)", uint8(p))
	}
	return phaseNames[p]
}

// ParsePhase converts a case-insensitive phase name into a Phase
func ParsePhase(name string) (Phase, error) {
	for i, n := range phaseNames {
		if strings.EqualFold(n, strings.TrimSpace(name)) {
			return Phase(i), nil
		}
	}
	return 0, NewConfigurationError(ErrCodeInvalidPhase, "phase", fmt.Sprintf("unknown phase %q", name))
}

package trafficlight

// Level is the logical state of one output line
type Level bool

const (
	Off Level = false
	On  Level = true
)

// LevelOf converts a boolean into a Level
func LevelOf(active bool) Level {
	return Level(active)
}

// Bool returns true when the line should be driven
func (l Level) Bool() bool {
	return bool(l)
}

// Invert returns the opposite level
func (l Level) Invert() Level {
	return !l
}

func (l Level) String() string {
	if l {
		return "On"
	}
	return "Off"
}

// LevelFor returns On when target is the current phase
func LevelFor(current, target Phase) Level {
	return LevelOf(current == target)
}

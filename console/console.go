// Package console renders the signal lamps as text, for running the
// controller without hardware.
package console

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/anggasct/trafficlight"
)

// Output collects the three lamp levels and prints one line once the last
// lamp of an iteration (Green) has been set.
type Output struct {
	mu     sync.Mutex
	w      io.Writer
	levels [3]bool
}

// NewOutput creates a console output writing to w
func NewOutput(w io.Writer) *Output {
	return &Output{w: w}
}

// Set records the lamp level and flushes a frame after Green
func (o *Output) Set(line trafficlight.Phase, on bool) error {
	if !line.Valid() {
		return fmt.Errorf("console: no lamp for %s", line)
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	o.levels[line] = on
	if line != trafficlight.Green {
		return nil
	}
	_, err := fmt.Fprintln(o.w, o.frame())
	return err
}

// Frame returns the current rendering, e.g. "[R] [ ] [ ]"
func (o *Output) Frame() string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.frame()
}

func (o *Output) frame() string {
	lamps := []struct {
		line  trafficlight.Phase
		label string
	}{
		{trafficlight.Red, "R"},
		{trafficlight.Yellow, "Y"},
		{trafficlight.Green, "G"},
	}

	parts := make([]string, 0, len(lamps))
	for _, l := range lamps {
		if o.levels[l.line] {
			parts = append(parts, "["+l.label+"]")
		} else {
			parts = append(parts, "[ ]")
		}
	}
	return strings.Join(parts, " ")
}

// Package gpio drives the three signal lamps through real GPIO lines.
package gpio

import (
	"fmt"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"

	"github.com/anggasct/trafficlight"
)

// Pins names the GPIO line of every lamp, as understood by gpioreg.ByName
type Pins struct {
	Red    string
	Yellow string
	Green  string
}

// DefaultPins are BCM 17, 27 and 22 on a Raspberry Pi header
var DefaultPins = Pins{
	Red:    "GPIO17",
	Yellow: "GPIO27",
	Green:  "GPIO22",
}

// PinOutput implements trafficlight.Output on periph.io pins
type PinOutput struct {
	pins [3]gpio.PinOut
}

// NewPinOutput wraps already resolved pins
func NewPinOutput(red, yellow, green gpio.PinOut) *PinOutput {
	o := &PinOutput{}
	o.pins[trafficlight.Red] = red
	o.pins[trafficlight.Yellow] = yellow
	o.pins[trafficlight.Green] = green
	return o
}

// Open initialises the host drivers, resolves pins by name and drives them low
func Open(pins Pins) (*PinOutput, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("gpio: host init: %w", err)
	}

	names := []string{pins.Red, pins.Yellow, pins.Green}
	resolved := make([]gpio.PinIO, len(names))
	for i, name := range names {
		p := gpioreg.ByName(name)
		if p == nil {
			return nil, fmt.Errorf("gpio: unknown pin %q", name)
		}
		resolved[i] = p
	}

	o := NewPinOutput(resolved[0], resolved[1], resolved[2])
	if err := o.Off(); err != nil {
		return nil, err
	}
	return o, nil
}

// Set drives line high when on is true
func (o *PinOutput) Set(line trafficlight.Phase, on bool) error {
	if !line.Valid() {
		return fmt.Errorf("gpio: no pin for %s", line)
	}
	level := gpio.Low
	if on {
		level = gpio.High
	}
	return o.pins[line].Out(level)
}

// Off drives every lamp low
func (o *PinOutput) Off() error {
	for _, line := range trafficlight.Phases() {
		if err := o.Set(line, false); err != nil {
			return fmt.Errorf("gpio: %s off: %w", line, err)
		}
	}
	return nil
}

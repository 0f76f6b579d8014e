//go:build linux

package gpio

import (
	"fmt"

	"github.com/stianeikeland/go-rpio/v4"

	"github.com/anggasct/trafficlight"
)

// RPIOOutput implements trafficlight.Output through /dev/gpiomem on a Raspberry Pi
type RPIOOutput struct {
	pins [3]rpio.Pin
}

// OpenRPIO maps GPIO memory and configures the BCM pins as outputs, driven low
func OpenRPIO(red, yellow, green int) (*RPIOOutput, error) {
	if err := rpio.Open(); err != nil {
		return nil, fmt.Errorf("gpio: rpio open: %w", err)
	}

	o := &RPIOOutput{}
	o.pins[trafficlight.Red] = rpio.Pin(red)
	o.pins[trafficlight.Yellow] = rpio.Pin(yellow)
	o.pins[trafficlight.Green] = rpio.Pin(green)
	for _, pin := range o.pins {
		pin.Output()
		pin.Low()
	}
	return o, nil
}

// Set drives line high when on is true
func (o *RPIOOutput) Set(line trafficlight.Phase, on bool) error {
	if !line.Valid() {
		return fmt.Errorf("gpio: no pin for %s", line)
	}
	if on {
		o.pins[line].High()
	} else {
		o.pins[line].Low()
	}
	return nil
}

// Close drives every lamp low and unmaps GPIO memory
func (o *RPIOOutput) Close() error {
	for _, pin := range o.pins {
		pin.Low()
	}
	return rpio.Close()
}

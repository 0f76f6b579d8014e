// Package trafficlight models a fixed-cycle traffic-light controller.
//
// A Controller holds the active Phase and moves it along a Table of phase
// durations and successors (Red -> Green -> Yellow -> Red in the reference
// configuration). It never touches hardware: a Driver asks it which lines
// should be on, asserts them through an Output, waits the phase duration
// through a Sleeper and then calls Advance.
//
//	c := trafficlight.NewController()
//	d := trafficlight.NewDriver(c, out)
//	_ = d.Run(context.Background()) // runs forever
package trafficlight

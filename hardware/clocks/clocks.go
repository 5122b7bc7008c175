// This file is part of AsyncFIFO.
//
// AsyncFIFO is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// AsyncFIFO is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with AsyncFIFO.  If not, see <https://www.gnu.org/licenses/>.

// Package clocks defines the clocks that drive the two domains of the FIFO.
//
// A clock is a period and a phase offset, both measured in nanoseconds of
// simulated time. The rising edges of a clock are at Phase, Phase+Period,
// Phase+2*Period, etc. There is no relationship between the clocks of the two
// domains other than that they share the same simulated time line.
//
// The preset values are the clocks used by the reference test benches for the
// hardware design.
package clocks

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jetsetilly/asyncfifo/curated"
)

// Sentinal error patterns.
const (
	InvalidClock = "clock: %s: %v"
)

// Clock is defined by a period and a phase offset, in nanoseconds.
type Clock struct {
	Name   string
	Period int64
	Phase  int64
}

// Presets taken from the reference benches. WR10/RD14 are used by the basic
// tests. WR8/RD20 are used by the randomised tests.
var (
	WR10 = Clock{Name: "wclk", Period: 10}
	RD14 = Clock{Name: "rclk", Period: 14}
	WR8  = Clock{Name: "wclk", Period: 8}
	RD20 = Clock{Name: "rclk", Period: 20}
)

func (c Clock) String() string {
	if c.Phase == 0 {
		return fmt.Sprintf("%s %dns", c.Name, c.Period)
	}
	return fmt.Sprintf("%s %dns+%d", c.Name, c.Period, c.Phase)
}

// Spec returns the clock in the same format accepted by Parse().
func (c Clock) Spec() string {
	return fmt.Sprintf("%d,%d", c.Period, c.Phase)
}

// Edge returns the simulated time of the nth rising edge. The first edge is
// edge zero.
func (c Clock) Edge(n int64) int64 {
	return c.Phase + n*c.Period
}

// MHz returns the frequency of the clock.
func (c Clock) MHz() float64 {
	return 1000.0 / float64(c.Period)
}

// Validate returns an error if the clock cannot be used to drive a domain.
func (c Clock) Validate() error {
	if c.Period <= 0 {
		return curated.Errorf(InvalidClock, c.Name, fmt.Sprintf("period must be positive (%d)", c.Period))
	}
	if c.Phase < 0 {
		return curated.Errorf(InvalidClock, c.Name, fmt.Sprintf("phase must not be negative (%d)", c.Phase))
	}
	return nil
}

// Parse a clock from a string of the form "period" or "period,phase".
func Parse(name string, s string) (Clock, error) {
	c := Clock{Name: name}

	p := strings.SplitN(strings.TrimSpace(s), ",", 2)

	var err error
	c.Period, err = strconv.ParseInt(strings.TrimSpace(p[0]), 10, 64)
	if err != nil {
		return Clock{}, curated.Errorf(InvalidClock, name, err)
	}

	if len(p) > 1 {
		c.Phase, err = strconv.ParseInt(strings.TrimSpace(p[1]), 10, 64)
		if err != nil {
			return Clock{}, curated.Errorf(InvalidClock, name, err)
		}
	}

	return c, c.Validate()
}

// Set the clock from a string of the form "period" or "period,phase". The
// name of the clock is not changed. The clock is unchanged if the string is
// not valid.
//
// Together with String() this implements the flag.Value interface.
func (c *Clock) Set(s string) error {
	n, err := Parse(c.Name, s)
	if err != nil {
		return err
	}
	*c = n
	return nil
}

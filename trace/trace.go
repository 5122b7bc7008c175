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

// Package trace records the state of the FIFO after every clock edge. The
// recording can be written as a text table or passed to the wavwriter package
// for viewing in an audio editor.
package trace

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/jetsetilly/asyncfifo/hardware/fifo"
	"github.com/jetsetilly/asyncfifo/scheduler"
)

// Sample is the state of the FIFO immediately after an edge.
type Sample struct {
	scheduler.Event
	fifo.Registers

	// true occupancy of the FIFO
	Occupancy int
}

func (s Sample) String() string {
	return fmt.Sprintf("%s: %s (occupancy %d)", s.Event, s.Registers, s.Occupancy)
}

// Recorder implements the scheduler.Observer interface.
type Recorder struct {
	f *fifo.FIFO

	// the maximum number of samples to record. samples after the maximum
	// has been reached are counted but not recorded
	max     int
	Dropped int

	Samples []Sample
}

// NewRecorder is the preferred method of initialisation for the Recorder type.
// A max value of zero or less means there is no limit.
func NewRecorder(f *fifo.FIFO, max int) *Recorder {
	return &Recorder{
		f:   f,
		max: max,
	}
}

// Depth returns the depth of the FIFO being recorded.
func (rec *Recorder) Depth() int {
	return rec.f.Depth()
}

// Observe implements the scheduler.Observer interface.
func (rec *Recorder) Observe(ev scheduler.Event) error {
	if rec.max > 0 && len(rec.Samples) >= rec.max {
		rec.Dropped++
		return nil
	}

	rec.Samples = append(rec.Samples, Sample{
		Event:     ev,
		Registers: rec.f.Registers(),
		Occupancy: rec.f.Occupancy(),
	})

	return nil
}

// Write recording as a table.
func (rec *Recorder) Write(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 1, ' ', tabwriter.AlignRight)

	fmt.Fprintln(tw, "time\tdomain\tedge\twptr\twsync\tfull\t\trptr\trsync\tempty\tout\tocc\t")

	for _, s := range rec.Samples {
		fmt.Fprintf(tw, "%d\t%s\t%d\t%b\t%b %b\t%s\t\t%b\t%b %b\t%s\t%s\t%d\t\n",
			s.Time, s.Domain, s.Edge,
			s.WritePtr, s.WriteSync[0], s.WriteSync[1], flag(s.Full),
			s.ReadPtr, s.ReadSync[0], s.ReadSync[1], flag(s.Empty),
			s.Output, s.Occupancy)
	}

	if rec.Dropped > 0 {
		fmt.Fprintf(tw, "%d samples not recorded\n", rec.Dropped)
	}

	return tw.Flush()
}

func flag(v bool) string {
	if v {
		return "1"
	}
	return "-"
}

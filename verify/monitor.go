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

package verify

import (
	"github.com/jetsetilly/asyncfifo/curated"
	"github.com/jetsetilly/asyncfifo/hardware/fifo"
	"github.com/jetsetilly/asyncfifo/logger"
	"github.com/jetsetilly/asyncfifo/scheduler"
)

// the number of edges each domain must see after a reset before the monitor
// resumes checking
const settleEdges = 2

// Monitor checks the invariants of the FIFO after every edge. It implements
// the scheduler.Observer interface.
//
// The Monitor can not be used with scheduler.RunConcurrent().
type Monitor struct {
	f *fifo.FIFO

	// the write pointer at the time of the previous read edge
	prevWritePtr uint32
	havePrev     bool

	// checks are suspended when a reset is seen and are resumed only once
	// both domains have been reset and have settled
	suspended  bool
	resetSeen  [2]bool
	sinceReset [2]int

	// number of edges checked
	Checked int
}

// NewMonitor is the preferred method of initialisation for the Monitor type.
func NewMonitor(f *fifo.FIFO) *Monitor {
	return &Monitor{
		f: f,
	}
}

// NotifyReset should be called whenever a domain is reset. Writer and Reader
// will do this automatically if the Monitor is attached.
func (mon *Monitor) NotifyReset(d scheduler.Domain) {
	if !mon.suspended {
		logger.Logf(mon.f.Env(), "monitor", "suspended by %s reset", d)
	}
	mon.suspended = true
	mon.resetSeen[d] = true
	mon.sinceReset[d] = 0
	mon.havePrev = false
}

// Observe implements the scheduler.Observer interface.
func (mon *Monitor) Observe(ev scheduler.Event) error {
	if mon.suspended {
		mon.sinceReset[ev.Domain]++
		if !(mon.resetSeen[scheduler.Write] && mon.resetSeen[scheduler.Read]) {
			return nil
		}
		if mon.sinceReset[scheduler.Write] <= settleEdges || mon.sinceReset[scheduler.Read] <= settleEdges {
			return nil
		}
		mon.suspended = false
		mon.resetSeen = [2]bool{}
		logger.Logf(mon.f.Env(), "monitor", "resumed at %dns", ev.Time)
	}

	mon.Checked++

	reg := mon.f.Registers()
	occ := mon.f.Occupancy()
	depth := mon.f.Depth()

	if occ > depth {
		return curated.Errorf(Overflow, occ, depth)
	}

	if !reg.Full && occ == depth {
		return curated.Errorf(Optimistic, "full", occ)
	}

	if !reg.Empty && occ == 0 {
		return curated.Errorf(Optimistic, "empty", occ)
	}

	if ev.Domain == scheduler.Read {
		// the empty flag after a read edge compares the read pointer with the
		// write pointer as it was at the previous read edge. any later than
		// that is a stale flag
		if mon.havePrev && reg.Empty && reg.ReadPtr != mon.prevWritePtr {
			return curated.Errorf(Stale, reg.ReadPtr, mon.prevWritePtr)
		}
		mon.prevWritePtr = reg.WritePtr
		mon.havePrev = true
	}

	return nil
}

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
	"fmt"

	"github.com/jetsetilly/asyncfifo/environment"
	"github.com/jetsetilly/asyncfifo/hardware/fifo"
	"github.com/jetsetilly/asyncfifo/random"
	"github.com/jetsetilly/asyncfifo/scheduler"
)

// Reader drives the read domain of a FIFO. It implements the scheduler.Agent
// interface.
type Reader struct {
	env *environment.Environment
	dom *fifo.ReadDomain
	sb  *Scoreboard
	mon *Monitor
	rnd *random.Random

	// number of words to read. a negative count means the Reader is never
	// done
	count int
	n     int

	resets int

	// only request a read when the empty flag is clear
	Polite bool

	// probability of requesting a read on an edge. a value of zero means a
	// read is requested on every edge
	Chance float64

	// the words read from the FIFO. not used if count is negative
	Received []uint64

	Accepted int
	Rejected int
}

// NewReader creates a Reader that reads count words. A count less than zero
// means the Reader reads forever. The Scoreboard can be nil.
func NewReader(f *fifo.FIFO, sb *Scoreboard, count int) *Reader {
	rd := &Reader{
		env:   f.Env(),
		dom:   f.ReadDomain,
		sb:    sb,
		count: count,
	}
	rd.rnd = rd.env.Random.Fork(rd.dom, uint64(scheduler.Read))
	return rd
}

func (rd *Reader) String() string {
	return fmt.Sprintf("reader: %d accepted, %d rejected", rd.Accepted, rd.Rejected)
}

// Attach a Monitor to the Reader. The Monitor is notified of every reset.
func (rd *Reader) Attach(mon *Monitor) {
	rd.mon = mon
}

// Reset schedules a reset of the read domain for the next n edges.
func (rd *Reader) Reset(n int) {
	rd.resets += n
}

// Edge implements the scheduler.Agent interface.
func (rd *Reader) Edge() error {
	if rd.resets > 0 {
		rd.resets--
		rd.dom.Reset()
		if rd.mon != nil {
			rd.mon.NotifyReset(scheduler.Read)
		}
		return nil
	}

	if rd.count >= 0 && rd.n >= rd.count {
		rd.dom.Tick()
		return nil
	}

	if rd.Polite && rd.dom.IsEmpty() {
		rd.dom.Tick()
		return nil
	}

	if rd.Chance > 0 && !rd.rnd.Chance(rd.Chance) {
		rd.dom.Tick()
		return nil
	}

	w, s := rd.dom.Read()
	switch s {
	case fifo.Accepted:
		rd.Accepted++
		rd.n++
		if rd.count >= 0 {
			rd.Received = append(rd.Received, w)
		}
		if rd.sb != nil {
			if err := rd.sb.Check(w); err != nil {
				return err
			}
		}
	case fifo.RejectedEmpty:
		rd.Rejected++
	}

	return nil
}

// Done implements the scheduler.Agent interface.
func (rd *Reader) Done() bool {
	return rd.resets == 0 && rd.count >= 0 && rd.n >= rd.count
}

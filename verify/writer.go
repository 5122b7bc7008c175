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

// Writer drives the write domain of a FIFO. It implements the scheduler.Agent
// interface.
type Writer struct {
	env *environment.Environment
	dom *fifo.WriteDomain
	sb  *Scoreboard
	mon *Monitor
	rnd *random.Random

	mask uint64

	// number of words to write and the function that generates them. a
	// negative count means the Writer is never done
	count int
	gen   func(i int) uint64

	// the index of the next word to write. the word itself is retained
	// between edges until it is accepted
	next    int
	current uint64
	have    bool

	// number of reset edges still to perform
	resets int

	// only request a write when the full flag is clear. a polite Writer will
	// never see a rejection
	Polite bool

	// probability of requesting a write on an edge. a value of zero means a
	// write is requested on every edge
	Chance float64

	Accepted int
	Rejected int
}

// NewWriter creates a Writer for the list of words. The Scoreboard can be
// nil.
func NewWriter(f *fifo.FIFO, sb *Scoreboard, words []uint64) *Writer {
	wr := newWriter(f, sb, len(words))
	wr.gen = func(i int) uint64 {
		return words[i]
	}
	return wr
}

// NewRandomWriter creates a Writer that writes count random words. A count
// less than zero means the Writer writes forever.
func NewRandomWriter(f *fifo.FIFO, sb *Scoreboard, count int) *Writer {
	wr := newWriter(f, sb, count)
	wr.gen = func(_ int) uint64 {
		return wr.rnd.Uint64()
	}
	return wr
}

func newWriter(f *fifo.FIFO, sb *Scoreboard, count int) *Writer {
	wr := &Writer{
		env:   f.Env(),
		dom:   f.WriteDomain,
		sb:    sb,
		count: count,
	}
	wr.rnd = wr.env.Random.Fork(wr.dom, uint64(scheduler.Write))
	if f.Width() == 64 {
		wr.mask = ^uint64(0)
	} else {
		wr.mask = (uint64(1) << f.Width()) - 1
	}
	return wr
}

func (wr *Writer) String() string {
	return fmt.Sprintf("writer: %d accepted, %d rejected", wr.Accepted, wr.Rejected)
}

// Attach a Monitor to the Writer. The Monitor is notified of every reset.
func (wr *Writer) Attach(mon *Monitor) {
	wr.mon = mon
}

// Reset schedules a reset of the write domain for the next n edges.
func (wr *Writer) Reset(n int) {
	wr.resets += n
}

// Edge implements the scheduler.Agent interface.
func (wr *Writer) Edge() error {
	if wr.resets > 0 {
		wr.resets--
		wr.dom.Reset()
		if wr.mon != nil {
			wr.mon.NotifyReset(scheduler.Write)
		}
		return nil
	}

	if wr.count >= 0 && wr.next >= wr.count {
		wr.dom.Tick()
		return nil
	}

	if wr.Polite && wr.dom.IsFull() {
		wr.dom.Tick()
		return nil
	}

	if wr.Chance > 0 && !wr.rnd.Chance(wr.Chance) {
		wr.dom.Tick()
		return nil
	}

	if !wr.have {
		wr.current = wr.gen(wr.next) & wr.mask
		wr.have = true
	}

	// the word is pushed to the scoreboard before the write so that the
	// scoreboard is ready before the read domain can possibly see the word
	if wr.sb != nil {
		wr.sb.Push(wr.current)
	}

	switch wr.dom.Write(wr.current) {
	case fifo.Accepted:
		wr.Accepted++
		wr.next++
		wr.have = false
	case fifo.RejectedFull:
		wr.Rejected++
		if wr.sb != nil {
			wr.sb.retract()
		}
	}

	return nil
}

// Done implements the scheduler.Agent interface.
func (wr *Writer) Done() bool {
	return wr.resets == 0 && wr.count >= 0 && wr.next >= wr.count
}

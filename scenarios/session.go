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

package scenarios

import (
	"fmt"
	"slices"

	"github.com/jetsetilly/asyncfifo/curated"
	"github.com/jetsetilly/asyncfifo/environment"
	"github.com/jetsetilly/asyncfifo/hardware/fifo"
	"github.com/jetsetilly/asyncfifo/scheduler"
	"github.com/jetsetilly/asyncfifo/verify"
)

// the number of edges each domain is clocked after a reset has been released
const releaseEdges = 4

// session is the state of a running scenario.
type session struct {
	env *environment.Environment
	f   *fifo.FIFO
	sch *scheduler.Scheduler
	sb  *verify.Scoreboard
	mon *verify.Monitor

	// budget for each phase
	budget int

	// whether the full flag has been seen since the last call to
	// clearSawFull()
	sawFull bool
}

// Observe implements the scheduler.Observer interface.
func (s *session) Observe(_ scheduler.Event) error {
	if s.f.WriteDomain.IsFull() {
		s.sawFull = true
	}
	return nil
}

// agent performs the edge function n times and ticks the domain after that.
type agent struct {
	n    int
	edge func() error
	tick func()
}

func (a *agent) Edge() error {
	if a.n <= 0 {
		a.tick()
		return nil
	}
	a.n--
	return a.edge()
}

func (a *agent) Done() bool {
	return a.n <= 0
}

// idle returns an agent that clocks the domain n times without a request.
func (s *session) idle(d scheduler.Domain, n int) *agent {
	tick := s.f.WriteDomain.Tick
	if d == scheduler.Read {
		tick = s.f.ReadDomain.Tick
	}
	return &agent{
		n: n,
		edge: func() error {
			tick()
			return nil
		},
		tick: tick,
	}
}

// reset asserts reset in both domains for the number of edges and then
// clocks both domains a few more times with reset released.
func (s *session) reset(edges int) error {
	w := verify.NewWriter(s.f, nil, nil)
	w.Attach(s.mon)
	w.Reset(edges)

	r := verify.NewReader(s.f, nil, 0)
	r.Attach(s.mon)
	r.Reset(edges)

	if err := s.sch.Run(w, r, s.budget); err != nil {
		return err
	}
	s.sb.Clear()

	return s.sch.Run(s.idle(scheduler.Write, releaseEdges), s.idle(scheduler.Read, releaseEdges), s.budget)
}

// write the words. the writer is polite and so waits for the full flag to
// clear. the read domain is clocked without requests
func (s *session) write(words ...uint64) error {
	w := verify.NewWriter(s.f, s.sb, words)
	w.Polite = true
	return s.sch.Run(w, s.idle(scheduler.Read, 0), s.budget)
}

// read n words. the reader is polite and so waits for the empty flag to
// clear
func (s *session) read(n int) ([]uint64, error) {
	r := verify.NewReader(s.f, s.sb, n)
	r.Polite = true
	err := s.sch.Run(s.idle(scheduler.Write, 0), r, s.budget)
	return r.Received, err
}

// settle clocks the read domain n times. the write domain is clocked at the
// same time
func (s *session) settle(n int) error {
	return s.sch.Run(s.idle(scheduler.Write, 0), s.idle(scheduler.Read, n), s.budget)
}

// once runs the function as the next edge of the write domain
func (s *session) once(f func() error) error {
	a := &agent{
		n:    1,
		edge: f,
		tick: s.f.WriteDomain.Tick,
	}
	return s.sch.Run(a, s.idle(scheduler.Read, 0), s.budget)
}

func expectWords(got []uint64, expected []uint64) error {
	if !slices.Equal(got, expected) {
		return curated.Errorf(Unexpected, "words", fmt.Sprintf("%#x", expected), fmt.Sprintf("%#x", got))
	}
	return nil
}

func expectFlag(name string, got bool, expected bool) error {
	if got != expected {
		return curated.Errorf(Unexpected, name+" flag", expected, got)
	}
	return nil
}

// writeAndRead writes the words and reads n words in the same phase. both the
// writer and the reader are polite
func (s *session) writeAndRead(words []uint64, n int) ([]uint64, error) {
	w := verify.NewWriter(s.f, s.sb, words)
	w.Polite = true
	r := verify.NewReader(s.f, s.sb, n)
	r.Polite = true
	err := s.sch.Run(w, r, s.budget)
	return r.Received, err
}

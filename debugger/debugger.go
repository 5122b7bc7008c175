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

package debugger

import (
	"errors"
	"io"

	"github.com/jetsetilly/asyncfifo/curated"
	"github.com/jetsetilly/asyncfifo/debugger/terminal"
	"github.com/jetsetilly/asyncfifo/environment"
	"github.com/jetsetilly/asyncfifo/hardware/fifo"
	"github.com/jetsetilly/asyncfifo/logger"
	"github.com/jetsetilly/asyncfifo/scheduler"
	"github.com/jetsetilly/asyncfifo/verify"
)

// Debugger is the interactive stepper.
type Debugger struct {
	env  *environment.Environment
	fifo *fifo.FIFO
	sch  *scheduler.Scheduler
	term terminal.Terminal

	mon *verify.Monitor
	sb  *verify.Scoreboard

	write writeEdge
	read  readEdge

	// the most recent edge
	last scheduler.Event

	// the next word to be written with the 'W' key
	nextWord uint64

	quit bool
}

// writeEdge and readEdge implement the scheduler.Agent interface. The fields
// are set before each call to Scheduler.Step()
type writeEdge struct {
	dbg    *Debugger
	reset  bool
	req    fifo.WriteRequest
	status fifo.Status
}

func (e *writeEdge) Edge() error {
	e.status = e.dbg.fifo.WriteDomain.Step(e.reset, e.req)
	switch e.status {
	case fifo.Accepted:
		e.dbg.sb.Push(e.req.Word)
	case fifo.Reset:
		e.dbg.sb.Clear()
		e.dbg.mon.NotifyReset(scheduler.Write)
	}
	return nil
}

func (e *writeEdge) Done() bool {
	return false
}

type readEdge struct {
	dbg    *Debugger
	reset  bool
	req    bool
	out    fifo.Bus
	status fifo.Status

	// result of the scoreboard check. not returned by Edge() so that the
	// observers still see the edge
	err error
}

func (e *readEdge) Edge() error {
	e.out, e.status = e.dbg.fifo.ReadDomain.Step(e.reset, e.req)
	e.err = nil
	switch e.status {
	case fifo.Accepted:
		e.err = e.dbg.sb.Check(e.out.Word)
	case fifo.Reset:
		e.dbg.sb.Clear()
		e.dbg.mon.NotifyReset(scheduler.Read)
	}
	return nil
}

func (e *readEdge) Done() bool {
	return false
}

// NewDebugger is the preferred method of initialisation for the Debugger type.
// The clocks are taken from the environment's preferences.
func NewDebugger(env *environment.Environment, f *fifo.FIFO, term terminal.Terminal) (*Debugger, error) {
	sch, err := scheduler.NewSchedulerFromPrefs(env)
	if err != nil {
		return nil, curated.Errorf("debugger: %v", err)
	}

	dbg := &Debugger{
		env:  env,
		fifo: f,
		sch:  sch,
		term: term,
		mon:  verify.NewMonitor(f),
		sb:   verify.NewScoreboard(env),
	}
	dbg.write.dbg = dbg
	dbg.read.dbg = dbg
	dbg.sch.AddObserver(dbg)
	dbg.sch.AddObserver(dbg.mon)

	return dbg, nil
}

// AddObserver adds an observer to the debugger's scheduler. Observers are
// called after every edge.
func (dbg *Debugger) AddObserver(o scheduler.Observer) {
	dbg.sch.AddObserver(o)
}

// Start the input loop. Returns when the user quits or when the input is
// exhausted.
func (dbg *Debugger) Start() error {
	err := dbg.term.Initialise()
	if err != nil {
		return curated.Errorf("debugger: %v", err)
	}
	defer dbg.term.CleanUp()

	logger.Logf(dbg.env, "debugger", "stepping %s", dbg.fifo)

	dbg.printRegisters()

	for !dbg.quit {
		input, err := dbg.term.TermRead(dbg.prompt())
		if err != nil {
			if errors.Is(err, io.EOF) || curated.Is(err, terminal.UserInterrupt) || curated.Is(err, terminal.UserAbort) {
				return nil
			}
			return curated.Errorf("debugger: %v", err)
		}

		if input == "" {
			input = "."
		}

		dbg.term.TermPrintLine(terminal.StyleEcho, input)

		for _, k := range input {
			dbg.key(k)
			if dbg.quit {
				break
			}
		}
	}

	return nil
}

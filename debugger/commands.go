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
	"fmt"

	"github.com/jetsetilly/asyncfifo/debugger/terminal"
	"github.com/jetsetilly/asyncfifo/hardware/fifo"
	"github.com/jetsetilly/asyncfifo/scheduler"
)

const help = `w/W  write edge (idle/write)
r/R  read edge (idle/read)
x/X  reset edge (write/read)
.    next edge in time
s    storage ring
q    quit`

// act on a single key press
func (dbg *Debugger) key(k rune) {
	switch k {
	case 'w':
		dbg.stepWrite(false, fifo.WriteRequest{})
	case 'W':
		dbg.stepWrite(false, fifo.WriteRequest{Word: dbg.nextWord, Valid: true})
	case 'x':
		dbg.stepWrite(true, fifo.WriteRequest{})
	case 'r':
		dbg.stepRead(false, false)
	case 'R':
		dbg.stepRead(false, true)
	case 'X':
		dbg.stepRead(true, false)
	case '.', ' ':
		d, _ := dbg.sch.Next()
		if d == scheduler.Write {
			dbg.stepWrite(false, fifo.WriteRequest{})
		} else {
			dbg.stepRead(false, false)
		}
	case 's':
		dbg.term.TermPrintLine(terminal.StyleFeedback, dbg.ring())
	case '?':
		dbg.term.TermPrintLine(terminal.StyleHelp, help)
	case 'q', 'Q':
		dbg.quit = true
	default:
		dbg.term.TermPrintLine(terminal.StyleError, fmt.Sprintf("unrecognised key (%q)", k))
	}
}

func (dbg *Debugger) stepWrite(reset bool, req fifo.WriteRequest) {
	dbg.write.reset = reset
	dbg.write.req = req
	err := dbg.sch.Step(scheduler.Write, &dbg.write)

	s := fmt.Sprintf("%s %s", dbg.last, dbg.write.status)
	if req.Valid {
		s = fmt.Sprintf("%s %#x %s", dbg.last, req.Word, dbg.write.status)
	}
	dbg.term.TermPrintLine(terminal.StyleWrite, s)

	switch dbg.write.status {
	case fifo.Accepted:
		dbg.nextWord = (dbg.nextWord + 1) & wordMask(dbg.fifo.Width())
	case fifo.Reset:
		dbg.nextWord = 0
	}

	dbg.printError(err)
	dbg.printRegisters()
}

func (dbg *Debugger) stepRead(reset bool, req bool) {
	dbg.read.reset = reset
	dbg.read.req = req
	err := dbg.sch.Step(scheduler.Read, &dbg.read)

	s := fmt.Sprintf("%s %s", dbg.last, dbg.read.status)
	dbg.term.TermPrintLine(terminal.StyleRead, s)
	if dbg.read.status == fifo.Accepted {
		dbg.term.TermPrintLine(terminal.StyleOutput, fmt.Sprintf("out %s", dbg.read.out))
	}

	dbg.printError(dbg.read.err)
	dbg.printError(err)
	dbg.printRegisters()
}

func wordMask(width int) uint64 {
	if width >= 64 {
		return ^uint64(0)
	}
	return (1 << width) - 1
}

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
	"strings"

	"github.com/jetsetilly/asyncfifo/debugger/terminal"
	"github.com/jetsetilly/asyncfifo/scheduler"
)

func (dbg *Debugger) prompt() terminal.Prompt {
	d, t := dbg.sch.Next()
	return terminal.Prompt{
		Type:    terminal.PromptTypeStep,
		Content: fmt.Sprintf("%dns %s", t, d),
	}
}

// Observe implements the scheduler.Observer interface.
func (dbg *Debugger) Observe(ev scheduler.Event) error {
	dbg.last = ev
	return nil
}

func (dbg *Debugger) printError(err error) {
	if err != nil {
		dbg.term.TermPrintLine(terminal.StyleError, err.Error())
	}
}

func (dbg *Debugger) printRegisters() {
	reg := dbg.fifo.Registers()
	width := dbg.fifo.PointerWidth()

	w := fmt.Sprintf("  wptr %0*b sync %0*b %0*b", width, reg.WritePtr, width, reg.WriteSync[0], width, reg.WriteSync[1])
	dbg.term.TermPrintLine(terminal.StyleWrite, w)
	if reg.Full {
		dbg.term.TermPrintLine(terminal.StyleFlag, "  FULL")
	}

	r := fmt.Sprintf("  rptr %0*b sync %0*b %0*b", width, reg.ReadPtr, width, reg.ReadSync[0], width, reg.ReadSync[1])
	dbg.term.TermPrintLine(terminal.StyleRead, r)
	if reg.Empty {
		dbg.term.TermPrintLine(terminal.StyleFlag, "  EMPTY")
	}

	dbg.term.TermPrintLine(terminal.StyleFeedback, fmt.Sprintf("  occupancy %d of %d", dbg.fifo.Occupancy(), dbg.fifo.Depth()))
}

// the content of the storage ring with the location of the pointers marked
func (dbg *Debugger) ring() string {
	snap := dbg.fifo.Snapshot()
	mask := uint32(len(snap.Words) - 1)

	s := strings.Builder{}
	for i, w := range snap.Words {
		var mark string
		if uint32(i) == snap.WritePtr&mask {
			mark += " <w"
		}
		if uint32(i) == snap.ReadPtr&mask {
			mark += " <r"
		}
		s.WriteString(fmt.Sprintf("%3d: %#x%s", i, w, mark))
		if i < len(snap.Words)-1 {
			s.WriteString("\n")
		}
	}
	return s.String()
}

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

// Package dump writes a graphviz representation of a FIFO's memory structure.
// The output is in the DOT language and can be rendered with the graphviz
// "dot" command.
//
//	dot -Tsvg fifo.dot > fifo.svg
package dump

import (
	"io"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/asyncfifo/hardware/fifo"
)

// Structure writes the memory structure of the FIFO to the io.Writer.
func Structure(w io.Writer, f *fifo.FIFO) {
	memviz.Map(w, f)
}

// Snapshot writes the memory structure of a snapshot of the FIFO to the
// io.Writer. Unlike Structure() the output contains only the registers and
// the stored words and not any of the supporting types.
func Snapshot(w io.Writer, f *fifo.FIFO) {
	s := f.Snapshot()
	memviz.Map(w, &s)
}

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

package debugger_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/asyncfifo/debugger"
	"github.com/jetsetilly/asyncfifo/debugger/terminal/plainterm"
	"github.com/jetsetilly/asyncfifo/environment"
	"github.com/jetsetilly/asyncfifo/hardware/fifo"
	"github.com/jetsetilly/asyncfifo/hardware/preferences"
	"github.com/jetsetilly/asyncfifo/test"
	"github.com/jetsetilly/asyncfifo/trace"
)

// run the debugger with the input script and return the output
func run(t *testing.T, script string) (string, *fifo.FIFO, *trace.Recorder) {
	t.Helper()

	prf, err := preferences.NewPreferencesFromFile(filepath.Join(t.TempDir(), "preferences"))
	test.DemandSuccess(t, err)
	env, err := environment.NewEnvironment("test", prf)
	test.DemandSuccess(t, err)
	env.Normalise()

	f, err := fifo.New(env, 4, 8)
	test.DemandSuccess(t, err)

	out := &test.CompareWriter{}
	term := plainterm.NewPlainTerminal(strings.NewReader(script), out)

	dbg, err := debugger.NewDebugger(env, f, term)
	test.DemandSuccess(t, err)

	rec := trace.NewRecorder(f, 0)
	dbg.AddObserver(rec)

	test.DemandSuccess(t, dbg.Start())

	return out.String(), f, rec
}

func TestWriteAndRead(t *testing.T) {
	out, f, rec := run(t, "WW\nrr\nRRR\nq\n")

	// two words written. two edges for the read domain to see them. two words
	// read and then the third read is rejected
	test.ExpectSuccess(t, strings.Contains(out, "0x0 accepted"))
	test.ExpectSuccess(t, strings.Contains(out, "0x1 accepted"))
	test.ExpectSuccess(t, strings.Contains(out, "out 0x0"))
	test.ExpectSuccess(t, strings.Contains(out, "out 0x1"))
	test.ExpectSuccess(t, strings.Contains(out, "rejected (empty)"))
	test.ExpectSuccess(t, strings.Contains(out, "EMPTY"))
	test.ExpectFailure(t, strings.Contains(out, "* "))

	test.ExpectEquality(t, len(rec.Samples), 7)
	test.ExpectEquality(t, f.Occupancy(), 0)
}

func TestFull(t *testing.T) {
	out, f, _ := run(t, "WWWWW\nq\n")
	test.ExpectSuccess(t, strings.Contains(out, "0x3 accepted"))
	test.ExpectSuccess(t, strings.Contains(out, "0x4 rejected (full)"))
	test.ExpectSuccess(t, strings.Contains(out, "FULL"))
	test.ExpectEquality(t, f.Occupancy(), 4)
}

func TestNextEdge(t *testing.T) {
	// the first edge is the write domain, the second is the read domain
	out, _, rec := run(t, ".\n\nq\n")
	test.ExpectEquality(t, len(rec.Samples), 2)
	test.ExpectEquality(t, rec.Samples[0].Domain.String(), "write")
	test.ExpectEquality(t, rec.Samples[1].Domain.String(), "read")
	test.ExpectSuccess(t, strings.Contains(out, "0ns read #0 idle"))
}

func TestReset(t *testing.T) {
	out, f, _ := run(t, "WWW\nxX\nW\nq\n")
	test.ExpectSuccess(t, strings.Contains(out, "reset"))

	// the word counter is reset along with the write domain
	test.ExpectEquality(t, strings.Count(out, "0x0 accepted"), 2)
	test.ExpectEquality(t, f.Occupancy(), 1)
	test.ExpectFailure(t, strings.Contains(out, "* "))
}

func TestKeys(t *testing.T) {
	out, _, rec := run(t, "?\nz\ns\n")
	test.ExpectSuccess(t, strings.Contains(out, "w/W  write edge"))
	test.ExpectSuccess(t, strings.Contains(out, "* unrecognised key ('z')"))
	test.ExpectSuccess(t, strings.Contains(out, "  0: 0x0 <w <r"))
	test.ExpectEquality(t, len(rec.Samples), 0)
}

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

package verify_test

import (
	"path/filepath"
	"testing"

	"github.com/jetsetilly/asyncfifo/curated"
	"github.com/jetsetilly/asyncfifo/environment"
	"github.com/jetsetilly/asyncfifo/hardware/clocks"
	"github.com/jetsetilly/asyncfifo/hardware/fifo"
	"github.com/jetsetilly/asyncfifo/hardware/preferences"
	"github.com/jetsetilly/asyncfifo/scheduler"
	"github.com/jetsetilly/asyncfifo/test"
	"github.com/jetsetilly/asyncfifo/verify"
)

func newFIFO(t *testing.T, depth int, width int) *fifo.FIFO {
	t.Helper()
	prf, err := preferences.NewPreferencesFromFile(filepath.Join(t.TempDir(), "preferences"))
	test.DemandSuccess(t, err)
	env, err := environment.NewEnvironment("test", prf)
	test.DemandSuccess(t, err)
	env.Normalise()
	f, err := fifo.New(env, depth, width)
	test.DemandSuccess(t, err)
	return f
}

func newScheduler(t *testing.T, f *fifo.FIFO, wclk clocks.Clock, rclk clocks.Clock) *scheduler.Scheduler {
	t.Helper()
	sch, err := scheduler.NewScheduler(f.Env(), wclk, rclk)
	test.DemandSuccess(t, err)
	return sch
}

func TestScoreboard(t *testing.T) {
	f := newFIFO(t, 8, 8)
	sb := verify.NewScoreboard(f.Env())

	err := sb.Check(1)
	test.ExpectSuccess(t, curated.Is(err, verify.Underflow))

	sb.Push(1)
	sb.Push(2)
	test.ExpectEquality(t, sb.Pending(), 2)
	test.ExpectSuccess(t, sb.Check(1))
	err = sb.Check(3)
	test.ExpectSuccess(t, curated.Is(err, verify.Mismatch))
	test.ExpectEquality(t, sb.Matched(), 1)

	sb.Push(4)
	err = sb.Report()
	test.ExpectSuccess(t, curated.Is(err, verify.Unread))
	sb.Clear()
	test.ExpectSuccess(t, sb.Report())
	test.ExpectEquality(t, sb.String(), "1 matched, 0 pending")
}

func TestBasicTraffic(t *testing.T) {
	f := newFIFO(t, 8, 8)
	sb := verify.NewScoreboard(f.Env())
	mon := verify.NewMonitor(f)

	words := []uint64{0x11, 0x22, 0x33, 0x44}
	w := verify.NewWriter(f, sb, words)
	w.Polite = true
	r := verify.NewReader(f, sb, len(words))
	r.Polite = true

	sch := newScheduler(t, f, clocks.WR10, clocks.RD14)
	sch.AddObserver(mon)
	test.DemandSuccess(t, sch.Run(w, r, 1000))

	test.ExpectSlice(t, r.Received, words)
	test.ExpectSuccess(t, sb.Report())
	test.ExpectEquality(t, w.Rejected, 0)
	test.ExpectEquality(t, r.Rejected, 0)
	test.ExpectSuccess(t, mon.Checked > 0)
}

func TestImpoliteTraffic(t *testing.T) {
	f := newFIFO(t, 4, 8)
	sb := verify.NewScoreboard(f.Env())
	mon := verify.NewMonitor(f)

	var words []uint64
	for i := range 50 {
		words = append(words, uint64(i*3))
	}

	// a fast writer and a slow reader means the writer must see rejections
	w := verify.NewWriter(f, sb, words)
	r := verify.NewReader(f, sb, len(words))

	sch := newScheduler(t, f, clocks.WR8, clocks.RD20)
	sch.AddObserver(mon)
	test.DemandSuccess(t, sch.Run(w, r, 10000))

	test.ExpectSlice(t, r.Received, words)
	test.ExpectSuccess(t, sb.Report())
	test.ExpectSuccess(t, w.Rejected > 0)
	test.ExpectEquality(t, w.Accepted, len(words))
}

func TestRandomTraffic(t *testing.T) {
	f := newFIFO(t, 8, 8)
	sb := verify.NewScoreboard(f.Env())
	mon := verify.NewMonitor(f)

	w := verify.NewRandomWriter(f, sb, 2000)
	w.Chance = 0.5
	r := verify.NewReader(f, sb, 2000)
	r.Chance = 0.5

	sch := newScheduler(t, f, clocks.Clock{Name: "wclk", Period: 10}, clocks.Clock{Name: "rclk", Period: 10, Phase: 0})
	sch.RandomTies = true
	sch.AddObserver(mon)
	test.DemandSuccess(t, sch.Run(w, r, 100000))

	test.ExpectEquality(t, len(r.Received), 2000)
	test.ExpectSuccess(t, sb.Report())
	test.ExpectEquality(t, sb.Matched(), 2000)
}

func TestResetDuringOperation(t *testing.T) {
	f := newFIFO(t, 8, 8)
	sb := verify.NewScoreboard(f.Env())
	mon := verify.NewMonitor(f)

	sch := newScheduler(t, f, clocks.WR10, clocks.RD14)
	sch.AddObserver(mon)

	w := verify.NewWriter(f, sb, []uint64{0x60, 0x61, 0x62, 0x63})
	w.Attach(mon)
	r := verify.NewReader(f, sb, 0)
	r.Attach(mon)
	test.DemandSuccess(t, sch.Run(w, r, 1000))
	test.ExpectEquality(t, f.Occupancy(), 4)

	w.Reset(2)
	r.Reset(2)
	test.DemandSuccess(t, sch.Run(w, r, 1000))
	sb.Clear()

	checked := mon.Checked
	test.DemandSuccess(t, sch.Interleave("2w2r2w2r", w, r))
	test.ExpectSuccess(t, f.ReadDomain.IsEmpty())
	test.ExpectFailure(t, f.WriteDomain.IsFull())
	test.ExpectEquality(t, f.Occupancy(), 0)

	// the monitor has resumed checking
	test.ExpectSuccess(t, mon.Checked > checked)

	w = verify.NewWriter(f, sb, []uint64{0xcc})
	w.Attach(mon)
	r = verify.NewReader(f, sb, 1)
	r.Attach(mon)
	test.DemandSuccess(t, sch.Run(w, r, 1000))
	test.ExpectSlice(t, r.Received, []uint64{0xcc})
	test.ExpectSuccess(t, sb.Report())
}

func TestMonitorOverflow(t *testing.T) {
	f := newFIFO(t, 8, 8)
	mon := verify.NewMonitor(f)
	sch := newScheduler(t, f, clocks.WR10, clocks.RD14)

	w := verify.NewWriter(f, nil, []uint64{1, 2, 3, 4})
	r := verify.NewReader(f, nil, 2)
	test.DemandSuccess(t, sch.Interleave("4w 2r 2r", w, r))
	test.DemandEquality(t, len(r.Received), 2)

	// resetting the write domain without the monitor being told leaves the
	// pointers in an impossible state
	f.WriteDomain.Reset()
	err := mon.Observe(scheduler.Event{Domain: scheduler.Write})
	test.ExpectSuccess(t, curated.Is(err, verify.Overflow))
}

func TestMismatchEndsRun(t *testing.T) {
	f := newFIFO(t, 8, 8)
	sb := verify.NewScoreboard(f.Env())

	// the scoreboard expects a word that was never written
	sb.Push(0xff)

	w := verify.NewWriter(f, sb, []uint64{1})
	r := verify.NewReader(f, sb, 1)

	sch := newScheduler(t, f, clocks.WR10, clocks.RD14)
	err := sch.Run(w, r, 1000)
	test.ExpectSuccess(t, curated.Is(err, verify.Mismatch))
}

func TestWordMasking(t *testing.T) {
	f := newFIFO(t, 4, 4)
	sb := verify.NewScoreboard(f.Env())
	w := verify.NewWriter(f, sb, []uint64{0x1f, 0x2e})
	r := verify.NewReader(f, sb, 2)
	sch := newScheduler(t, f, clocks.WR10, clocks.RD14)
	test.DemandSuccess(t, sch.Run(w, r, 1000))
	test.ExpectSlice(t, r.Received, []uint64{0xf, 0xe})
}

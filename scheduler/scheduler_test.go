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

package scheduler_test

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
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

func newEnv(t *testing.T) *environment.Environment {
	t.Helper()
	prf, err := preferences.NewPreferencesFromFile(filepath.Join(t.TempDir(), "preferences"))
	test.DemandSuccess(t, err)
	env, err := environment.NewEnvironment("test", prf)
	test.DemandSuccess(t, err)
	env.Normalise()
	return env
}

// records the order of edges
type recorder struct {
	order []string
}

type agent struct {
	name  string
	rec   *recorder
	n     int
	limit int
}

func (a *agent) Edge() error {
	a.rec.order = append(a.rec.order, a.name)
	a.n++
	return nil
}

func (a *agent) Done() bool {
	return a.n >= a.limit
}

type timeline struct {
	events []scheduler.Event
	failAt int
}

func (tl *timeline) Observe(ev scheduler.Event) error {
	tl.events = append(tl.events, ev)
	if tl.failAt > 0 && ev.Count == tl.failAt {
		return errors.New("observer failure")
	}
	return nil
}

func TestClockOrder(t *testing.T) {
	env := newEnv(t)
	sch, err := scheduler.NewScheduler(env, clocks.WR10, clocks.RD14)
	test.DemandSuccess(t, err)

	var tl timeline
	sch.AddObserver(&tl)

	var rec recorder
	w := &agent{name: "w", rec: &rec, limit: 5}
	r := &agent{name: "r", rec: &rec, limit: 3}
	test.DemandSuccess(t, sch.Run(w, r, 100))

	// write edges at 0, 10, 20, 30, 40. read edges at 0, 14, 28. the write
	// domain is first when edges coincide
	test.ExpectEquality(t, strings.Join(rec.order, ""), "wrwrwrww")

	times := make([]int64, len(tl.events))
	for i := range tl.events {
		times[i] = tl.events[i].Time
	}
	test.ExpectSlice(t, times, []int64{0, 0, 10, 14, 20, 28, 30, 40})
	test.ExpectEquality(t, tl.events[6].Edge, int64(3))
	test.ExpectEquality(t, tl.events[7].Count, 8)

	we, re := sch.Edges()
	test.ExpectEquality(t, we, int64(5))
	test.ExpectEquality(t, re, int64(3))
	test.ExpectEquality(t, sch.Time(), int64(40))
}

func TestPhase(t *testing.T) {
	env := newEnv(t)
	sch, err := scheduler.NewScheduler(env,
		clocks.Clock{Name: "wclk", Period: 10, Phase: 5},
		clocks.Clock{Name: "rclk", Period: 10})
	test.DemandSuccess(t, err)

	var rec recorder
	w := &agent{name: "w", rec: &rec, limit: 3}
	r := &agent{name: "r", rec: &rec, limit: 3}
	test.DemandSuccess(t, sch.Run(w, r, 100))
	test.ExpectEquality(t, strings.Join(rec.order, ""), "rwrwrw")
}

func TestStep(t *testing.T) {
	env := newEnv(t)
	sch, err := scheduler.NewScheduler(env, clocks.WR10, clocks.RD14)
	test.DemandSuccess(t, err)

	var tl timeline
	sch.AddObserver(&tl)

	var rec recorder
	w := &agent{name: "w", rec: &rec}
	r := &agent{name: "r", rec: &rec}

	d, tm := sch.Next()
	test.ExpectEquality(t, d, scheduler.Write)
	test.ExpectEquality(t, tm, int64(0))

	// step the read domain out of turn
	test.DemandSuccess(t, sch.Step(scheduler.Read, r))
	test.DemandSuccess(t, sch.Step(scheduler.Read, r))
	d, tm = sch.Next()
	test.ExpectEquality(t, d, scheduler.Write)
	test.ExpectEquality(t, tm, int64(0))

	test.DemandSuccess(t, sch.Step(scheduler.Write, w))
	test.DemandSuccess(t, sch.Step(scheduler.Write, w))
	test.DemandSuccess(t, sch.Step(scheduler.Write, w))
	d, tm = sch.Next()
	test.ExpectEquality(t, d, scheduler.Read)
	test.ExpectEquality(t, tm, int64(28))

	test.ExpectEquality(t, strings.Join(rec.order, ""), "rrwww")
	test.ExpectEquality(t, len(tl.events), 5)
	test.ExpectEquality(t, tl.events[1].Time, int64(14))
	test.ExpectEquality(t, tl.events[4].Count, 5)
	test.ExpectEquality(t, sch.Time(), int64(20))
}

func TestBudget(t *testing.T) {
	env := newEnv(t)
	sch, err := scheduler.NewScheduler(env, clocks.WR10, clocks.RD14)
	test.DemandSuccess(t, err)

	var rec recorder
	w := &agent{name: "w", rec: &rec, limit: 1000}
	r := &agent{name: "r", rec: &rec, limit: 1000}
	err = sch.Run(w, r, 50)
	test.ExpectSuccess(t, curated.Is(err, scheduler.BudgetExhausted))
	test.ExpectSuccess(t, len(rec.order) <= 51)
}

func TestObserverError(t *testing.T) {
	env := newEnv(t)
	sch, err := scheduler.NewScheduler(env, clocks.WR10, clocks.RD14)
	test.DemandSuccess(t, err)

	tl := timeline{failAt: 4}
	sch.AddObserver(&tl)

	var rec recorder
	w := &agent{name: "w", rec: &rec, limit: 10}
	r := &agent{name: "r", rec: &rec, limit: 10}
	err = sch.Run(w, r, 100)
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, len(rec.order), 4)
}

func TestInvalidClock(t *testing.T) {
	env := newEnv(t)
	_, err := scheduler.NewScheduler(env, clocks.Clock{Name: "wclk"}, clocks.RD14)
	test.ExpectSuccess(t, curated.Has(err, clocks.InvalidClock))
}

func TestRandomTies(t *testing.T) {
	env := newEnv(t)
	clk := clocks.Clock{Name: "clk", Period: 10}
	sch, err := scheduler.NewScheduler(env, clk, clk)
	test.DemandSuccess(t, err)
	sch.RandomTies = true

	var rec recorder
	w := &agent{name: "w", rec: &rec, limit: 100}
	r := &agent{name: "r", rec: &rec, limit: 100}
	test.DemandSuccess(t, sch.Run(w, r, 1000))

	// every pair of edges contains one of each domain but in both orders
	var wr, rw int
	for i := 0; i < len(rec.order); i += 2 {
		switch rec.order[i] + rec.order[i+1] {
		case "wr":
			wr++
		case "rw":
			rw++
		default:
			t.Fatalf("unexpected pair at %d", i)
		}
	}
	test.ExpectSuccess(t, wr > 0)
	test.ExpectSuccess(t, rw > 0)
}

func TestInterleave(t *testing.T) {
	env := newEnv(t)
	sch, err := scheduler.NewScheduler(env, clocks.WR10, clocks.RD14)
	test.DemandSuccess(t, err)

	var rec recorder
	w := &agent{name: "w", rec: &rec}
	r := &agent{name: "r", rec: &rec}
	test.DemandSuccess(t, sch.Interleave("wwrr 3w r", w, r))
	test.ExpectEquality(t, strings.Join(rec.order, ""), "wwrrwwwr")

	err = sch.Interleave("wx", w, r)
	test.ExpectSuccess(t, curated.Is(err, scheduler.InvalidPattern))
	err = sch.Interleave("w3", w, r)
	test.ExpectSuccess(t, curated.Is(err, scheduler.InvalidPattern))
	err = sch.Interleave("3 w", w, r)
	test.ExpectSuccess(t, curated.Is(err, scheduler.InvalidPattern))
}

func TestInterleaveFIFO(t *testing.T) {
	env := newEnv(t)
	f, err := fifo.New(env, 8, 8)
	test.DemandSuccess(t, err)
	sch, err := scheduler.NewScheduler(env, clocks.WR10, clocks.RD14)
	test.DemandSuccess(t, err)

	w := verify.NewWriter(f, nil, []uint64{1, 2, 3})
	r := verify.NewReader(f, nil, 3)

	// three writes then two read edges for the synchroniser. the third read
	// edge is the first that can be accepted
	test.DemandSuccess(t, sch.Interleave("3w 2r", w, r))
	test.ExpectEquality(t, r.Rejected, 2)
	test.ExpectEquality(t, len(r.Received), 0)
	test.DemandSuccess(t, sch.Interleave("3r", w, r))
	test.ExpectSlice(t, r.Received, []uint64{1, 2, 3})
}

func TestConcurrent(t *testing.T) {
	env := newEnv(t)
	f, err := fifo.New(env, 16, 16)
	test.DemandSuccess(t, err)

	sb := verify.NewScoreboard(env)
	w := verify.NewRandomWriter(f, sb, 1000)
	r := verify.NewReader(f, sb, 1000)

	err = scheduler.RunConcurrent(context.Background(), w, r, 100000000)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, sb.Matched(), 1000)
	test.ExpectSuccess(t, sb.Report())
}

func TestConcurrentBudget(t *testing.T) {
	env := newEnv(t)
	f, err := fifo.New(env, 4, 16)
	test.DemandSuccess(t, err)

	// the reader wants more words than the writer will ever write
	w := verify.NewWriter(f, nil, []uint64{1, 2})
	r := verify.NewReader(f, nil, 3)

	err = scheduler.RunConcurrent(context.Background(), w, r, 1000)
	test.ExpectSuccess(t, curated.Has(err, scheduler.BudgetExhausted))
}

func TestConcurrentCancel(t *testing.T) {
	env := newEnv(t)
	f, err := fifo.New(env, 4, 16)
	test.DemandSuccess(t, err)

	w := verify.NewRandomWriter(f, nil, -1)
	r := verify.NewReader(f, nil, -1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err = scheduler.RunConcurrent(ctx, w, r, 1000000)
	test.ExpectSuccess(t, err)
}

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

package scheduler

import (
	"fmt"

	"github.com/jetsetilly/asyncfifo/curated"
	"github.com/jetsetilly/asyncfifo/environment"
	"github.com/jetsetilly/asyncfifo/hardware/clocks"
	"github.com/jetsetilly/asyncfifo/logger"
)

// Sentinal error patterns.
const (
	BudgetExhausted = "scheduler: budget exhausted after %d edges"
	InvalidPattern  = "scheduler: invalid interleave pattern: %s"
)

// Domain identifies the clock domain of an edge.
type Domain int

// List of valid Domain values.
const (
	Write Domain = iota
	Read
)

func (d Domain) String() string {
	switch d {
	case Write:
		return "write"
	case Read:
		return "read"
	}
	panic(fmt.Sprintf("unknown domain (%d)", d))
}

// Agent drives one domain of the FIFO.
type Agent interface {
	// Edge is called for every rising edge of the domain's clock. The agent
	// must step its domain exactly once, even if it has nothing else to do.
	Edge() error

	// Done returns true when the agent has nothing more to do.
	Done() bool
}

// Event describes a single rising edge.
type Event struct {
	Domain Domain

	// simulated time in nanoseconds. Interleave() and RunConcurrent() do not
	// have a notion of time and the field will be the same as Count
	Time int64

	// the number of the edge for the domain, starting from zero
	Edge int64

	// the number of edges in the run so far, for both domains, including
	// this one
	Count int
}

func (ev Event) String() string {
	return fmt.Sprintf("%6dns %s #%d", ev.Time, ev.Domain, ev.Edge)
}

// Observer is called after every edge. An error ends the run.
type Observer interface {
	Observe(ev Event) error
}

// Scheduler runs two agents from two clocks.
type Scheduler struct {
	env *environment.Environment

	clks [2]clocks.Clock

	// coincident edges are ordered randomly rather than write domain first
	RandomTies bool

	observers []Observer

	// the next edge for each domain
	edges [2]int64
}

// NewScheduler is the preferred method of initialisation for the Scheduler type.
func NewScheduler(env *environment.Environment, wclk clocks.Clock, rclk clocks.Clock) (*Scheduler, error) {
	if err := wclk.Validate(); err != nil {
		return nil, curated.Errorf("scheduler: %v", err)
	}
	if err := rclk.Validate(); err != nil {
		return nil, curated.Errorf("scheduler: %v", err)
	}

	return &Scheduler{
		env:  env,
		clks: [2]clocks.Clock{wclk, rclk},
	}, nil
}

// NewSchedulerFromPrefs creates a new Scheduler using the clocks specified by
// the environment's preferences.
func NewSchedulerFromPrefs(env *environment.Environment) (*Scheduler, error) {
	wclk, rclk := env.Prefs.Clocks()
	return NewScheduler(env, wclk, rclk)
}

// AddObserver adds an observer to the list of observers called after every
// edge.
func (sch *Scheduler) AddObserver(o Observer) {
	sch.observers = append(sch.observers, o)
}

// Time returns the current simulated time. This is the time of the most
// recent edge.
func (sch *Scheduler) Time() int64 {
	var t int64
	for d := range sch.edges {
		if sch.edges[d] > 0 {
			t = max(t, sch.clks[d].Edge(sch.edges[d]-1))
		}
	}
	return t
}

// Edges returns the number of edges seen by each domain.
func (sch *Scheduler) Edges() (int64, int64) {
	return sch.edges[Write], sch.edges[Read]
}

func (sch *Scheduler) observe(ev Event) error {
	for _, o := range sch.observers {
		if err := o.Observe(ev); err != nil {
			return err
		}
	}
	return nil
}

// step one domain
func (sch *Scheduler) step(d Domain, agent Agent, count int) error {
	ev := Event{
		Domain: d,
		Time:   sch.clks[d].Edge(sch.edges[d]),
		Edge:   sch.edges[d],
		Count:  count,
	}
	sch.edges[d]++

	if err := agent.Edge(); err != nil {
		return err
	}

	return sch.observe(ev)
}

// Next returns the domain with the earliest pending edge and the time of that
// edge. Coincident edges are reported as the write domain.
func (sch *Scheduler) Next() (Domain, int64) {
	tw := sch.clks[Write].Edge(sch.edges[Write])
	tr := sch.clks[Read].Edge(sch.edges[Read])
	if tr < tw {
		return Read, tr
	}
	return Write, tw
}

// Step the agent for one domain at the domain's next edge, regardless of
// whether it is the earliest pending edge. The agent is stepped even if it is
// done.
func (sch *Scheduler) Step(d Domain, agent Agent) error {
	return sch.step(d, agent, int(sch.edges[Write]+sch.edges[Read])+1)
}

// Run the agents until both are done. The budget is the maximum number of
// edges, for both domains combined. Coincident edges are never separated so
// the budget can be exceeded by one edge.
//
// Run can be called more than once. Simulated time continues from where the
// previous call left off.
func (sch *Scheduler) Run(w Agent, r Agent, budget int) error {
	agents := [2]Agent{w, r}

	count := 0
	for !(w.Done() && r.Done()) {
		if count >= budget {
			logger.Logf(sch.env, "scheduler", "budget of %d edges exhausted at %dns", budget, sch.Time())
			return curated.Errorf(BudgetExhausted, count)
		}

		tw := sch.clks[Write].Edge(sch.edges[Write])
		tr := sch.clks[Read].Edge(sch.edges[Read])

		switch {
		case tw < tr:
			count++
			if err := sch.step(Write, w, count); err != nil {
				return err
			}
		case tr < tw:
			count++
			if err := sch.step(Read, r, count); err != nil {
				return err
			}
		default:
			first := Write
			if sch.RandomTies && sch.env.Random.Intn(2) == 1 {
				first = Read
			}
			for _, d := range []Domain{first, 1 - first} {
				count++
				if err := sch.step(d, agents[d], count); err != nil {
					return err
				}
			}
		}
	}

	logger.Logf(sch.env, "scheduler", "run completed after %d edges at %dns", count, sch.Time())

	return nil
}

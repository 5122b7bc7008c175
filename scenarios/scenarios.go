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
	"sort"

	"github.com/jetsetilly/asyncfifo/curated"
	"github.com/jetsetilly/asyncfifo/environment"
	"github.com/jetsetilly/asyncfifo/hardware/clocks"
	"github.com/jetsetilly/asyncfifo/hardware/fifo"
	"github.com/jetsetilly/asyncfifo/logger"
	"github.com/jetsetilly/asyncfifo/scheduler"
	"github.com/jetsetilly/asyncfifo/verify"
)

// Sentinal error patterns.
const (
	UnknownScenario = "scenario: unknown scenario: %s"
	Failed          = "scenario: %s: %v"
	Unexpected      = "unexpected %s: expected %v but got %v"
)

// geometry of the FIFO used by every scenario
const (
	depth = 8
	width = 8
)

// Scenario is a named test of the FIFO.
type Scenario struct {
	Name        string
	Description string

	Write clocks.Clock
	Read  clocks.Clock

	run func(s *session) error
}

func (sc Scenario) String() string {
	return fmt.Sprintf("%s (%s, %s)", sc.Name, sc.Write, sc.Read)
}

// Result summarises a successful scenario.
type Result struct {
	Name       string
	Time       int64
	WriteEdges int64
	ReadEdges  int64
	Matched    int
	Checked    int
}

func (r Result) String() string {
	return fmt.Sprintf("%s: %d words matched in %dns (%d write edges, %d read edges, %d checks)",
		r.Name, r.Matched, r.Time, r.WriteEdges, r.ReadEdges, r.Checked)
}

// Scenarios is the list of all scenarios, in the order they should be run.
var Scenarios = []Scenario{
	{
		Name:        "basic",
		Description: "write four words and read them back",
		Write:       clocks.WR10,
		Read:        clocks.RD14,
		run:         basic,
	},
	{
		Name:        "full",
		Description: "write until full and check that a further write is rejected",
		Write:       clocks.WR10,
		Read:        clocks.RD14,
		run:         full,
	},
	{
		Name:        "empty",
		Description: "check the empty flag before and after a single word",
		Write:       clocks.WR10,
		Read:        clocks.RD14,
		run:         empty,
	},
	{
		Name:        "alternating",
		Description: "fast write clock and slow read clock",
		Write:       clocks.WR8,
		Read:        clocks.RD20,
		run:         alternating,
	},
	{
		Name:        "simultaneous",
		Description: "writes and reads in the same phase",
		Write:       clocks.WR10,
		Read:        clocks.RD14,
		run:         simultaneous,
	},
	{
		Name:        "random",
		Description: "random words written and read in chunks",
		Write:       clocks.WR10,
		Read:        clocks.RD14,
		run:         randomPattern,
	},
	{
		Name:        "reset",
		Description: "reset both domains with words in the FIFO",
		Write:       clocks.WR10,
		Read:        clocks.RD14,
		run:         resetDuringOperation,
	},
	{
		Name:        "boundary",
		Description: "fill the FIFO to exactly its depth",
		Write:       clocks.WR10,
		Read:        clocks.RD14,
		run:         boundary,
	},
}

// Names returns the names of all scenarios in alphabetical order.
func Names() []string {
	n := make([]string, 0, len(Scenarios))
	for _, sc := range Scenarios {
		n = append(n, sc.Name)
	}
	sort.Strings(n)
	return n
}

// Find the scenario with the name.
func Find(name string) (Scenario, error) {
	for _, sc := range Scenarios {
		if sc.Name == name {
			return sc, nil
		}
	}
	return Scenario{}, curated.Errorf(UnknownScenario, name)
}

// Run the scenario. The attach function can be nil. If it is not nil it is
// called after the FIFO and scheduler have been created and before the first
// phase of the scenario. It can be used to add observers to the scheduler.
func (sc Scenario) Run(env *environment.Environment, attach func(*fifo.FIFO, *scheduler.Scheduler)) (Result, error) {
	f, err := fifo.New(env, depth, width)
	if err != nil {
		return Result{}, curated.Errorf(Failed, sc.Name, err)
	}

	sch, err := scheduler.NewScheduler(env, sc.Write, sc.Read)
	if err != nil {
		return Result{}, curated.Errorf(Failed, sc.Name, err)
	}

	s := &session{
		env:    env,
		f:      f,
		sch:    sch,
		sb:     verify.NewScoreboard(env),
		mon:    verify.NewMonitor(f),
		budget: env.Prefs.Budget.Get().(int),
	}
	sch.AddObserver(s.mon)
	sch.AddObserver(s)

	if attach != nil {
		attach(f, sch)
	}

	logger.Logf(env, "scenario", "%s: starting", sc)

	err = sc.run(s)
	if err == nil {
		err = s.sb.Report()
	}
	if err != nil {
		logger.Logf(env, "scenario", "%s: failed at %dns", sc.Name, sch.Time())
		return Result{}, curated.Errorf(Failed, sc.Name, err)
	}

	res := Result{
		Name:    sc.Name,
		Time:    sch.Time(),
		Matched: s.sb.Matched(),
		Checked: s.mon.Checked,
	}
	res.WriteEdges, res.ReadEdges = sch.Edges()

	logger.Logf(env, "scenario", "%s", res)

	return res, nil
}

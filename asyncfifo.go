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

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/jetsetilly/asyncfifo/curated"
	"github.com/jetsetilly/asyncfifo/debugger"
	"github.com/jetsetilly/asyncfifo/debugger/terminal"
	"github.com/jetsetilly/asyncfifo/debugger/terminal/colorterm"
	"github.com/jetsetilly/asyncfifo/debugger/terminal/plainterm"
	"github.com/jetsetilly/asyncfifo/dump"
	"github.com/jetsetilly/asyncfifo/environment"
	"github.com/jetsetilly/asyncfifo/hardware/clocks"
	"github.com/jetsetilly/asyncfifo/hardware/fifo"
	"github.com/jetsetilly/asyncfifo/hardware/preferences"
	"github.com/jetsetilly/asyncfifo/logger"
	"github.com/jetsetilly/asyncfifo/modalflag"
	"github.com/jetsetilly/asyncfifo/prefs"
	"github.com/jetsetilly/asyncfifo/scenarios"
	"github.com/jetsetilly/asyncfifo/scheduler"
	"github.com/jetsetilly/asyncfifo/statsview"
	"github.com/jetsetilly/asyncfifo/trace"
	"github.com/jetsetilly/asyncfifo/verify"
	"github.com/jetsetilly/asyncfifo/version"
	"github.com/jetsetilly/asyncfifo/wavwriter"
)

const defaultMode = "RUN"

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.AddSubModes(defaultMode, "SOAK", "STEP", "DUMP", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)
	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		os.Exit(10)
	}

	switch md.Mode() {
	case "RUN":
		err = run(md)
	case "SOAK":
		err = soak(md)
	case "STEP":
		err = step(md)
	case "DUMP":
		err = dumpFIFO(md)
	case "VERSION":
		err = showVersion(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.Mode(), err)
		os.Exit(20)
	}
}

// the options common to all modes that create a FIFO
type common struct {
	depth  *int
	width  *int
	wclk   clocks.Clock
	rclk   clocks.Clock
	budget *int
	seed   *int
	prefs  *string
	log    *bool
}

func addCommon(md *modalflag.Modes) *common {
	c := &common{
		wclk: clocks.WR10,
		rclk: clocks.RD14,
	}
	c.depth = md.AddInt("depth", preferences.DefaultDepth, "number of words in the FIFO. must be a power of two")
	c.width = md.AddInt("width", preferences.DefaultWidth, "number of bits in each word")
	md.AddVar(&c.wclk, "wclk", "write clock as period[,phase] in nanoseconds")
	md.AddVar(&c.rclk, "rclk", "read clock as period[,phase] in nanoseconds")
	c.budget = md.AddInt("budget", preferences.DefaultBudget, "maximum number of clock edges in a run")
	c.seed = md.AddInt("seed", 0, "seed for the random number generator. zero means seed from the clock")
	c.prefs = md.AddString("prefs", "", "preferences as key::value pairs, separated by ';'")
	c.log = md.AddBool("log", false, "echo log to stdout")
	return c
}

// environment creates a new main environment. preferences are loaded from
// disk and then overridden by any of the common flags that were set.
func (c *common) environment(md *modalflag.Modes) (*environment.Environment, error) {
	if *c.log {
		logger.SetEcho(os.Stdout, false)
	}

	prefs.PushCommandLineStack(*c.prefs)
	defer prefs.PopCommandLineStack()

	prf, err := preferences.NewPreferences()
	if err != nil {
		return nil, err
	}

	var setClocks bool

	md.Visit(func(flg string) {
		if err != nil {
			return
		}
		switch flg {
		case "depth":
			err = prf.Depth.Set(*c.depth)
		case "width":
			err = prf.Width.Set(*c.width)
		case "budget":
			err = prf.Budget.Set(*c.budget)
		case "seed":
			err = prf.Seed.Set(*c.seed)
		case "wclk", "rclk":
			setClocks = true
		}
	})
	if err != nil {
		return nil, err
	}

	if setClocks {
		w, r := prf.Clocks()
		md.Visit(func(flg string) {
			switch flg {
			case "wclk":
				w = c.wclk
			case "rclk":
				r = c.rclk
			}
		})
		if err := prf.SetClocks(w, r); err != nil {
			return nil, err
		}
	}

	return environment.NewEnvironment(environment.MainInstance, prf)
}

func run(md *modalflag.Modes) error {
	md.NewMode()
	md.AdditionalHelp(fmt.Sprintf("scenarios: %s", strings.Join(scenarios.Names(), ", ")))

	cmn := addCommon(md)
	traceFile := md.AddString("trace", "", "write a trace of the scenario to file")
	wavFile := md.AddString("wav", "", "write the FIFO signals of the scenario to a WAV file")
	resolution := md.AddInt("resolution", 1, "nanoseconds of simulated time per WAV sample")

	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		return err
	}

	env, err := cmn.environment(md)
	if err != nil {
		return err
	}

	var list []scenarios.Scenario
	if len(md.RemainingArgs()) == 0 {
		list = scenarios.Scenarios
	} else {
		for _, n := range md.RemainingArgs() {
			sc, err := scenarios.Find(n)
			if err != nil {
				return err
			}
			list = append(list, sc)
		}
	}

	tracing := *traceFile != "" || *wavFile != ""
	if tracing && len(list) != 1 {
		return curated.Errorf("a trace can only be made of a single scenario")
	}

	var rec *trace.Recorder
	var attach func(*fifo.FIFO, *scheduler.Scheduler)
	if tracing {
		attach = func(f *fifo.FIFO, sch *scheduler.Scheduler) {
			rec = trace.NewRecorder(f, 0)
			sch.AddObserver(rec)
		}
	}

	var failed int
	for _, sc := range list {
		res, err := sc.Run(env, attach)
		if err != nil {
			failed++
			fmt.Fprintf(md.Output, "* %v\n", err)
			continue
		}
		fmt.Fprintln(md.Output, res)
	}

	if rec != nil {
		if *traceFile != "" {
			if err := writeTrace(*traceFile, rec); err != nil {
				return err
			}
		}
		if *wavFile != "" {
			aw, err := wavwriter.New(env, *wavFile, int64(*resolution))
			if err != nil {
				return err
			}
			if err := aw.Write(rec); err != nil {
				return err
			}
		}
	}

	if failed > 0 {
		return curated.Errorf("%d of %d scenarios failed", failed, len(list))
	}

	return nil
}

func writeTrace(filename string, rec *trace.Recorder) (rerr error) {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		if err := f.Close(); err != nil && rerr == nil {
			rerr = err
		}
	}()
	return rec.Write(f)
}

func soak(md *modalflag.Modes) error {
	md.NewMode()

	cmn := addCommon(md)
	words := md.AddInt("words", 100000, "number of words to transfer. a negative value means no limit")
	edges := md.AddInt("edges", 10000000, "maximum number of edges for each domain")
	duration := md.AddDuration("duration", 0, "stop after duration. zero means no time limit")
	chance := md.AddFloat64("chance", 0.5, "probability of a request on any edge")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))

	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return curated.Errorf("too many arguments for %s mode", md)
	}

	env, err := cmn.environment(md)
	if err != nil {
		return err
	}

	if *stats {
		stop := statsview.Launch(md.Output, statsview.Address)
		defer stop()
	}

	f, err := fifo.NewFromPrefs(env)
	if err != nil {
		return err
	}

	sb := verify.NewScoreboard(env)
	wr := verify.NewRandomWriter(f, sb, *words)
	wr.Chance = *chance
	rd := verify.NewReader(f, sb, *words)
	rd.Chance = *chance

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()
	if *duration > 0 {
		ctx, cancel = context.WithTimeout(ctx, *duration)
		defer cancel()
	}

	fmt.Fprintf(md.Output, "soaking %s\n", f)
	logger.Logf(env, "soak", "%d words over %s", *words, f)

	start := time.Now()
	err = scheduler.RunConcurrent(ctx, wr, rd, *edges)

	fmt.Fprintln(md.Output, wr)
	fmt.Fprintln(md.Output, rd)
	fmt.Fprintf(md.Output, "%d words matched in %s\n", sb.Matched(), time.Since(start).Round(time.Millisecond))

	if err != nil {
		return err
	}

	// an interrupted soak is not a failure but there may be words in flight
	if ctx.Err() != nil {
		logger.Logf(env, "soak", "stopped early: %v", ctx.Err())
		return nil
	}

	return sb.Report()
}

func step(md *modalflag.Modes) error {
	md.NewMode()

	cmn := addCommon(md)
	termType := md.AddString("term", "COLOR", "terminal type to use in the stepper: COLOR, PLAIN")
	traceFile := md.AddString("trace", "", "write a trace of the session to file on exit")

	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return curated.Errorf("too many arguments for %s mode", md)
	}

	env, err := cmn.environment(md)
	if err != nil {
		return err
	}

	var term terminal.Terminal

	switch strings.ToUpper(*termType) {
	case "PLAIN":
		term = plainterm.NewPlainTerminal(nil, nil)
	case "COLOR":
		if err := colorterm.Available(); err != nil {
			logger.Logf(env, "debugger", "%v: using plain terminal", err)
			term = plainterm.NewPlainTerminal(nil, nil)
		} else {
			term = &colorterm.ColorTerminal{}
		}
	default:
		return curated.Errorf("unknown terminal type: %s", *termType)
	}

	f, err := fifo.NewFromPrefs(env)
	if err != nil {
		return err
	}

	dbg, err := debugger.NewDebugger(env, f, term)
	if err != nil {
		return err
	}

	var rec *trace.Recorder
	if *traceFile != "" {
		rec = trace.NewRecorder(f, 0)
		dbg.AddObserver(rec)
	}

	if err := dbg.Start(); err != nil {
		return err
	}

	if rec != nil {
		return writeTrace(*traceFile, rec)
	}

	return nil
}

func dumpFIFO(md *modalflag.Modes) error {
	md.NewMode()

	cmn := addCommon(md)
	snapshot := md.AddBool("snapshot", false, "dump a snapshot of the registers rather than the full structure")
	fill := md.AddInt("fill", 0, "number of words to write before dumping")

	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		return err
	}

	env, err := cmn.environment(md)
	if err != nil {
		return err
	}

	f, err := fifo.NewFromPrefs(env)
	if err != nil {
		return err
	}

	// a polite writer cannot write more than the depth of the FIFO if nothing
	// is reading
	if n := min(*fill, f.Depth()); n > 0 {
		sch, err := scheduler.NewSchedulerFromPrefs(env)
		if err != nil {
			return err
		}
		wr := verify.NewRandomWriter(f, nil, n)
		wr.Polite = true
		rd := verify.NewReader(f, nil, 0)
		if err := sch.Run(wr, rd, env.Prefs.Budget.Get().(int)); err != nil {
			return err
		}
	}

	var w io.Writer = md.Output
	if md.GetArg(0) != "" {
		o, err := os.Create(md.GetArg(0))
		if err != nil {
			return err
		}
		defer o.Close()
		w = o
	}

	if *snapshot {
		dump.Snapshot(w, f)
	} else {
		dump.Structure(w, f)
	}

	return nil
}

func showVersion(md *modalflag.Modes) error {
	md.NewMode()

	revision := md.AddBool("v", false, "display revision information")

	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		return err
	}

	v, r, _ := version.Version()
	if *revision {
		fmt.Fprintf(md.Output, "%s %s (%s)\n", version.ApplicationName, v, r)
	} else {
		fmt.Fprintln(md.Output, version.String())
	}

	return nil
}

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
	"strings"

	"github.com/jetsetilly/asyncfifo/curated"
)

// Interleave steps the agents in the order given by the pattern. The pattern
// is a sequence of 'w' and 'r' characters, one for each edge. White space is
// ignored. A digit before a character repeats it. For example:
//
//	"wwrr 3w r"
//
// is the same as "wwrrwwwr".
//
// Observers added to the Scheduler are called after every edge. Unlike Run()
// the agents are stepped even if they are done. The budget is the length of
// the expanded pattern.
func (sch *Scheduler) Interleave(pattern string, w Agent, r Agent) error {
	seq, err := expandPattern(pattern)
	if err != nil {
		return err
	}

	agents := [2]Agent{w, r}

	for i, d := range seq {
		ev := Event{
			Domain: d,
			Time:   int64(i),
			Edge:   sch.edges[d],
			Count:  i + 1,
		}
		sch.edges[d]++

		if err := agents[d].Edge(); err != nil {
			return err
		}
		if err := sch.observe(ev); err != nil {
			return err
		}
	}

	return nil
}

func expandPattern(pattern string) ([]Domain, error) {
	var seq []Domain

	repeat := 0
	for _, c := range strings.ToLower(pattern) {
		switch {
		case c == ' ' || c == '\t' || c == '\n':
			if repeat > 0 {
				return nil, curated.Errorf(InvalidPattern, pattern)
			}
		case c >= '0' && c <= '9':
			repeat = repeat*10 + int(c-'0')
		case c == 'w' || c == 'r':
			d := Write
			if c == 'r' {
				d = Read
			}
			n := max(repeat, 1)
			for range n {
				seq = append(seq, d)
			}
			repeat = 0
		default:
			return nil, curated.Errorf(InvalidPattern, pattern)
		}
	}

	if repeat > 0 {
		return nil, curated.Errorf(InvalidPattern, pattern)
	}

	return seq, nil
}

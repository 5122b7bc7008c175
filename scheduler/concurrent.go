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
	"context"
	"sync"

	"github.com/jetsetilly/asyncfifo/curated"
)

// RunConcurrent runs each agent in its own goroutine. Each goroutine stops
// when its agent is done, when the budget for that agent is exhausted, or when
// the context is cancelled. An error in one goroutine cancels the other.
//
// The budget is the maximum number of edges for each agent. There are no
// observers in a concurrent run because there is no single point in time at
// which the state of both domains is known.
//
// The context being cancelled is not an error. Use the context's Err()
// function if it's important.
func RunConcurrent(ctx context.Context, w Agent, r Agent, budget int) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var wg sync.WaitGroup
	errs := make([]error, 2)

	run := func(d Domain, agent Agent) {
		defer wg.Done()

		for i := 0; !agent.Done(); i++ {
			if i >= budget {
				errs[d] = curated.Errorf("%s domain: %v", d, curated.Errorf(BudgetExhausted, i))
				cancel()
				return
			}

			select {
			case <-ctx.Done():
				return
			default:
			}

			if err := agent.Edge(); err != nil {
				errs[d] = curated.Errorf("%s domain: %v", d, err)
				cancel()
				return
			}
		}
	}

	wg.Add(2)
	go run(Write, w)
	go run(Read, r)
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return err
		}
	}

	return nil
}

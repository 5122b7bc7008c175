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

package verify

import (
	"fmt"
	"sync"

	"github.com/jetsetilly/asyncfifo/curated"
	"github.com/jetsetilly/asyncfifo/environment"
	"github.com/jetsetilly/asyncfifo/logger"
)

// Scoreboard is the reference model of the FIFO. It is an unbounded queue of
// the words that have been accepted by the write domain.
//
// The Scoreboard is safe to use from more than one goroutine.
type Scoreboard struct {
	env *environment.Environment

	crit     sync.Mutex
	expected []uint64
	matched  int
}

// NewScoreboard is the preferred method of initialisation for the Scoreboard
// type.
func NewScoreboard(env *environment.Environment) *Scoreboard {
	return &Scoreboard{
		env: env,
	}
}

func (sb *Scoreboard) String() string {
	sb.crit.Lock()
	defer sb.crit.Unlock()
	return fmt.Sprintf("%d matched, %d pending", sb.matched, len(sb.expected))
}

// Push a word on to the reference queue.
func (sb *Scoreboard) Push(word uint64) {
	sb.crit.Lock()
	defer sb.crit.Unlock()
	sb.expected = append(sb.expected, word)
}

// retract the most recent word pushed on to the reference queue.
func (sb *Scoreboard) retract() {
	sb.crit.Lock()
	defer sb.crit.Unlock()
	if len(sb.expected) > 0 {
		sb.expected = sb.expected[:len(sb.expected)-1]
	}
}

// Check word against the head of the reference queue.
func (sb *Scoreboard) Check(word uint64) error {
	sb.crit.Lock()
	defer sb.crit.Unlock()

	if len(sb.expected) == 0 {
		logger.Logf(sb.env, "scoreboard", "underflow (%#x)", word)
		return curated.Errorf(Underflow, word)
	}

	exp := sb.expected[0]
	sb.expected = sb.expected[1:]

	if exp != word {
		logger.Logf(sb.env, "scoreboard", "mismatch (expected %#x, read %#x)", exp, word)
		return curated.Errorf(Mismatch, exp, word)
	}

	sb.matched++

	return nil
}

// Pending returns the number of words in the reference queue.
func (sb *Scoreboard) Pending() int {
	sb.crit.Lock()
	defer sb.crit.Unlock()
	return len(sb.expected)
}

// Matched returns the number of words that have been successfully checked.
func (sb *Scoreboard) Matched() int {
	sb.crit.Lock()
	defer sb.crit.Unlock()
	return sb.matched
}

// Clear the reference queue. Should be used when both domains of the FIFO
// are reset. The matched count is not changed.
func (sb *Scoreboard) Clear() {
	sb.crit.Lock()
	defer sb.crit.Unlock()
	sb.expected = sb.expected[:0]
}

// Report returns an error if there are words in the reference queue that were
// never read.
func (sb *Scoreboard) Report() error {
	sb.crit.Lock()
	defer sb.crit.Unlock()

	logger.Logf(sb.env, "scoreboard", "%d matched, %d pending", sb.matched, len(sb.expected))

	if len(sb.expected) > 0 {
		return curated.Errorf(Unread, len(sb.expected))
	}
	return nil
}

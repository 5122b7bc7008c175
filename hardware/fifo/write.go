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

package fifo

import (
	"sync/atomic"

	"github.com/jetsetilly/asyncfifo/assert"
	"github.com/jetsetilly/asyncfifo/environment"
	"github.com/jetsetilly/asyncfifo/hardware/pointer"
	"github.com/jetsetilly/asyncfifo/hardware/storage"
	"github.com/jetsetilly/asyncfifo/hardware/synchroniser"
	"github.com/jetsetilly/asyncfifo/logger"
)

// WriteDomain is the half of the FIFO clocked by the write clock.
type WriteDomain struct {
	env  *environment.Environment
	ring *storage.Ring

	ptr pointer.Pointer

	// the read pointer as seen by the write domain
	sync synchroniser.Synchroniser

	// the read domain's published pointer
	remote GraySource

	// the Gray coded write pointer as published to the read domain. this is
	// the only field of the write domain that is read by another goroutine
	published atomic.Uint32

	// number of clock edges
	ticks int64

	owner assert.Owner
}

func newWriteDomain(env *environment.Environment, ring *storage.Ring) *WriteDomain {
	return &WriteDomain{
		env:  env,
		ring: ring,
		ptr:  pointer.New(ring.AddressBits()),
	}
}

// Gray implements the GraySource interface.
func (w *WriteDomain) Gray() uint32 {
	return w.published.Load()
}

// Ticks returns the number of clock edges seen by the write domain.
func (w *WriteDomain) Ticks() int64 {
	return w.ticks
}

// IsFull returns the state of the full flag. The value is the same as the
// value used by the next call to Step(), unless that step is a reset.
func (w *WriteDomain) IsFull() bool {
	return isFull(w.ptr, w.sync)
}

// Step advances the write domain by one clock edge. Reset takes priority over
// the write request.
func (w *WriteDomain) Step(reset bool, req WriteRequest) Status {
	w.owner.Check("write domain")
	w.ticks++

	if reset {
		w.ptr.Reset()
		w.sync.Reset()
		w.published.Store(0)
		logger.Logf(w.env, "write domain", "reset at tick %d", w.ticks)
		return Reset
	}

	// the flag is evaluated before the synchroniser shifts
	full := isFull(w.ptr, w.sync)

	status := Idle
	if req.Valid {
		if full {
			status = RejectedFull
		} else {
			w.ring.Store(w.ptr.Address(), req.Word)
			status = Accepted
		}
	}

	w.sync.Tick(w.remote.Gray())

	if status == Accepted {
		w.ptr.Increment()
		w.published.Store(w.ptr.Gray())
	}

	return status
}

// Write is a convenience function for Step() with an asserted write request and
// no reset.
func (w *WriteDomain) Write(word uint64) Status {
	return w.Step(false, WriteRequest{Word: word, Valid: true})
}

// Tick is a convenience function for Step() with no request and no reset.
func (w *WriteDomain) Tick() {
	w.Step(false, WriteRequest{})
}

// Reset is a convenience function for Step() with reset asserted. Only the write
// domain is affected.
func (w *WriteDomain) Reset() {
	w.Step(true, WriteRequest{})
}

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

// ReadDomain is the half of the FIFO clocked by the read clock.
type ReadDomain struct {
	env  *environment.Environment
	ring *storage.Ring

	ptr pointer.Pointer

	// the write pointer as seen by the read domain
	sync synchroniser.Synchroniser

	// the write domain's published pointer
	remote GraySource

	// the Gray coded read pointer as published to the write domain
	published atomic.Uint32

	// the data output
	output Bus

	ticks int64

	owner assert.Owner
}

func newReadDomain(env *environment.Environment, ring *storage.Ring) *ReadDomain {
	return &ReadDomain{
		env:  env,
		ring: ring,
		ptr:  pointer.New(ring.AddressBits()),
	}
}

// Gray implements the GraySource interface.
func (r *ReadDomain) Gray() uint32 {
	return r.published.Load()
}

// Ticks returns the number of clock edges seen by the read domain.
func (r *ReadDomain) Ticks() int64 {
	return r.ticks
}

// IsEmpty returns the state of the empty flag. The value is the same as the
// value used by the next call to Step(), unless that step is a reset.
func (r *ReadDomain) IsEmpty() bool {
	return isEmpty(r.ptr, r.sync)
}

// Output returns the current state of the data output.
func (r *ReadDomain) Output() Bus {
	return r.output
}

// Step advances the read domain by one clock edge. Reset takes priority over
// the read request.
//
// The data output after the step depends on the request:
//
//	accepted read: the word at the read address
//	rejected read: unchanged from the previous step
//	no request: high-impedance
//	reset: high-impedance
func (r *ReadDomain) Step(reset bool, req bool) (Bus, Status) {
	r.owner.Check("read domain")
	r.ticks++

	if reset {
		r.ptr.Reset()
		r.sync.Reset()
		r.published.Store(0)
		r.output = Bus{}
		logger.Logf(r.env, "read domain", "reset at tick %d", r.ticks)
		return r.output, Reset
	}

	empty := isEmpty(r.ptr, r.sync)

	status := Idle
	if req {
		if empty {
			// output retains the last value
			status = RejectedEmpty
		} else {
			r.output = Bus{Word: r.ring.Load(r.ptr.Address()), Valid: true}
			status = Accepted
		}
	} else {
		r.output = Bus{}
	}

	r.sync.Tick(r.remote.Gray())

	if status == Accepted {
		r.ptr.Increment()
		r.published.Store(r.ptr.Gray())
	}

	return r.output, status
}

// Read is a convenience function for Step() with an asserted read request and no
// reset. The word is only meaningful if the Status is Accepted.
func (r *ReadDomain) Read() (uint64, Status) {
	b, s := r.Step(false, true)
	if s != Accepted {
		return 0, s
	}
	return b.Word, s
}

// Tick is a convenience function for Step() with no request and no reset.
func (r *ReadDomain) Tick() {
	r.Step(false, false)
}

// Reset is a convenience function for Step() with reset asserted. Only the read
// domain is affected.
func (r *ReadDomain) Reset() {
	r.Step(true, false)
}

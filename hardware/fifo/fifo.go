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
	"fmt"

	"github.com/jetsetilly/asyncfifo/curated"
	"github.com/jetsetilly/asyncfifo/environment"
	"github.com/jetsetilly/asyncfifo/hardware/gray"
	"github.com/jetsetilly/asyncfifo/hardware/storage"
	"github.com/jetsetilly/asyncfifo/logger"
)

// FIFO is the write domain and the read domain sharing a storage ring.
type FIFO struct {
	env  *environment.Environment
	ring *storage.Ring

	WriteDomain *WriteDomain
	ReadDomain  *ReadDomain
}

// New is the preferred method of initialisation for the FIFO type. The depth
// must be a power of two and the width must be between 1 and 64.
func New(env *environment.Environment, depth int, width int) (*FIFO, error) {
	ring, err := storage.NewRing(depth, width)
	if err != nil {
		return nil, curated.Errorf("fifo: %v", err)
	}

	f := &FIFO{
		env:         env,
		ring:        ring,
		WriteDomain: newWriteDomain(env, ring),
		ReadDomain:  newReadDomain(env, ring),
	}

	// the only connections between the two domains
	f.WriteDomain.remote = f.ReadDomain
	f.ReadDomain.remote = f.WriteDomain

	logger.Logf(env, "fifo", "depth %d, width %d", depth, width)

	return f, nil
}

// NewFromPrefs creates a new FIFO with the depth and width specified by the
// environment's preferences.
func NewFromPrefs(env *environment.Environment) (*FIFO, error) {
	return New(env, env.Prefs.Depth.Get().(int), env.Prefs.Width.Get().(int))
}

func (f *FIFO) String() string {
	return f.Registers().String()
}

// Depth returns the number of words the FIFO can hold.
func (f *FIFO) Depth() int {
	return f.ring.Depth()
}

// Width returns the number of bits in a word.
func (f *FIFO) Width() int {
	return f.ring.Width()
}

// Env returns the environment of the FIFO.
// PointerWidth returns the number of bits in the read and write pointers.
func (f *FIFO) PointerWidth() int {
	return f.WriteDomain.ptr.Width()
}

func (f *FIFO) Env() *environment.Environment {
	return f.env
}

// Occupancy returns the true number of words in the FIFO. This is the
// difference between the two pointers and is not something either domain can
// know. It should only be used for verification.
//
// Not safe to call while either domain is being stepped.
func (f *FIFO) Occupancy() int {
	w := gray.Decode(f.WriteDomain.Gray())
	r := gray.Decode(f.ReadDomain.Gray())
	return int((w - r) & f.WriteDomain.ptr.Mask())
}

// Reset both domains and clear the storage ring. Note that this is not the
// same as resetting each domain individually, which does not affect the
// content of the ring.
func (f *FIFO) Reset() {
	f.WriteDomain.Reset()
	f.ReadDomain.Reset()
	f.ring.Clear()
}

// Registers is the state of every register in the FIFO. The synchroniser
// fields are the first and second stages.
type Registers struct {
	WritePtr  uint32
	WriteGray uint32
	WriteSync [2]uint32
	Full      bool

	ReadPtr  uint32
	ReadGray uint32
	ReadSync [2]uint32
	Empty    bool
	Output   Bus
}

// Snapshot is a copy of the state of the FIFO.
type Snapshot struct {
	Registers

	WriteTicks int64
	ReadTicks  int64

	Words []uint64
}

func (r Registers) String() string {
	return fmt.Sprintf("wptr=%b (full=%v) rptr=%b (empty=%v) out=%s",
		r.WritePtr, r.Full, r.ReadPtr, r.Empty, r.Output)
}

// Registers returns a copy of every register in the FIFO.
//
// Not safe to call while either domain is being stepped.
func (f *FIFO) Registers() Registers {
	var r Registers

	r.WritePtr = f.WriteDomain.ptr.Value()
	r.WriteGray = f.WriteDomain.Gray()
	r.WriteSync[0], r.WriteSync[1] = f.WriteDomain.sync.Stages()
	r.Full = f.WriteDomain.IsFull()

	r.ReadPtr = f.ReadDomain.ptr.Value()
	r.ReadGray = f.ReadDomain.Gray()
	r.ReadSync[0], r.ReadSync[1] = f.ReadDomain.sync.Stages()
	r.Empty = f.ReadDomain.IsEmpty()
	r.Output = f.ReadDomain.output

	return r
}

// Snapshot returns a copy of the state of the FIFO, including the content of
// the storage ring.
//
// Not safe to call while either domain is being stepped.
func (f *FIFO) Snapshot() Snapshot {
	return Snapshot{
		Registers:  f.Registers(),
		WriteTicks: f.WriteDomain.ticks,
		ReadTicks:  f.ReadDomain.ticks,
		Words:      f.ring.Words(),
	}
}

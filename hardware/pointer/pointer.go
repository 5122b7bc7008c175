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

// Package pointer implements the read and write pointers of the FIFO.
//
// A pointer has one more bit than is required to address the storage ring.
// The extra bit is the lap bit and it changes every time the pointer wraps
// around the ring. Two pointers with the same address but different lap bits
// are a full ring apart.
//
// The value of a pointer can only be changed by Increment() and Reset().
package pointer

import (
	"fmt"

	"github.com/jetsetilly/asyncfifo/hardware/gray"
)

// Pointer is a binary counter of addressBits+1 bits.
type Pointer struct {
	addressBits int
	mask        uint32
	value       uint32
}

// New is the preferred method of initialisation for the Pointer type. The
// addressBits argument is log2 of the ring depth.
func New(addressBits int) Pointer {
	return Pointer{
		addressBits: addressBits,
		mask:        uint32(1<<(addressBits+1)) - 1,
	}
}

func (p Pointer) String() string {
	return fmt.Sprintf("%0*b", p.addressBits+1, p.value)
}

// Increment pointer. The value wraps to zero after all bits are set.
func (p *Pointer) Increment() {
	p.value = (p.value + 1) & p.mask
}

// Reset pointer to zero.
func (p *Pointer) Reset() {
	p.value = 0
}

// Value returns the binary value of the pointer, including the lap bit.
func (p Pointer) Value() uint32 {
	return p.value
}

// Address returns the bits of the pointer that address the storage ring.
func (p Pointer) Address() uint32 {
	return p.value & (p.mask >> 1)
}

// Lap returns true if the lap bit is set.
func (p Pointer) Lap() bool {
	return p.value&p.MSB() != 0
}

// MSB returns a mask for the most significant bit of the pointer. This is the
// lap bit.
func (p Pointer) MSB() uint32 {
	return 1 << p.addressBits
}

// Mask returns a mask for all bits of the pointer.
func (p Pointer) Mask() uint32 {
	return p.mask
}

// Width returns the number of bits in the pointer.
func (p Pointer) Width() int {
	return p.addressBits + 1
}

// Gray returns the pointer value as a Gray code.
func (p Pointer) Gray() uint32 {
	return gray.Encode(p.value)
}

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

// Package gray converts between binary and reflected binary (Gray) code.
//
// Consecutive binary values encode to Gray values that differ in exactly one
// bit. This includes the wrap from the largest value of a given width back to
// zero. A Gray coded counter can therefore be sampled by another clock domain
// and the sampled value will be either the old value or the new value, never a
// mixture of the two.
package gray

import "math/bits"

// Encode binary value to Gray code.
func Encode(bin uint32) uint32 {
	return bin ^ (bin >> 1)
}

// Decode Gray code to binary value.
//
// The FIFO flag logic never decodes Gray values. Decoding is only used when
// verifying or displaying the state of the FIFO.
func Decode(g uint32) uint32 {
	g ^= g >> 16
	g ^= g >> 8
	g ^= g >> 4
	g ^= g >> 2
	g ^= g >> 1
	return g
}

// Distance returns the number of bits that differ between two values.
func Distance(a uint32, b uint32) int {
	return bits.OnesCount32(a ^ b)
}

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

package gray_test

import (
	"testing"

	"github.com/jetsetilly/asyncfifo/hardware/gray"
	"github.com/jetsetilly/asyncfifo/test"
)

func TestEncode(t *testing.T) {
	expected := []uint32{0b0000, 0b0001, 0b0011, 0b0010, 0b0110, 0b0111, 0b0101, 0b0100,
		0b1100, 0b1101, 0b1111, 0b1110, 0b1010, 0b1011, 0b1001, 0b1000}

	for i, e := range expected {
		test.ExpectEquality(t, gray.Encode(uint32(i)), e, i)
	}
}

func TestDecode(t *testing.T) {
	for i := range uint32(1 << 16) {
		test.DemandEquality(t, gray.Decode(gray.Encode(i)), i)
	}
	test.ExpectEquality(t, gray.Decode(gray.Encode(0xffffffff)), 0xffffffff)
}

func TestSingleBitChange(t *testing.T) {
	// every increment, including the wrap, changes exactly one bit for each
	// of the widths used by the FIFO
	for width := 1; width <= 17; width++ {
		mask := uint32(1<<width) - 1
		for i := uint32(0); i <= mask; i++ {
			next := (i + 1) & mask
			test.DemandEquality(t, gray.Distance(gray.Encode(i), gray.Encode(next)), 1, width, i)
		}
	}
}

func TestDistance(t *testing.T) {
	test.ExpectEquality(t, gray.Distance(0, 0), 0)
	test.ExpectEquality(t, gray.Distance(0b1010, 0b0101), 4)
	test.ExpectEquality(t, gray.Distance(0xffffffff, 0), 32)
}

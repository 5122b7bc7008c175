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
	"github.com/jetsetilly/asyncfifo/hardware/pointer"
	"github.com/jetsetilly/asyncfifo/hardware/synchroniser"
)

// the pointers of a full FIFO are at the same address but on different laps.
// in binary that means only the lap bit differs. in Gray code flipping the
// most significant binary bit flips the two most significant Gray bits
func lapMask(ptr pointer.Pointer) uint32 {
	return ptr.MSB() | (ptr.MSB() >> 1)
}

// isFull is evaluated entirely within the write domain.
func isFull(ptr pointer.Pointer, sync synchroniser.Synchroniser) bool {
	return ptr.Gray()^lapMask(ptr) == sync.Output()
}

// isEmpty is evaluated entirely within the read domain.
func isEmpty(ptr pointer.Pointer, sync synchroniser.Synchroniser) bool {
	return ptr.Gray() == sync.Output()
}

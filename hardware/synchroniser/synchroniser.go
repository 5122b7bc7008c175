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

// Package synchroniser implements the two-stage synchroniser through which a
// value crosses from one clock domain to another.
//
// The synchroniser belongs to the destination domain and is ticked by the
// destination clock. On every tick the second stage takes the value of the
// first stage and the first stage samples the source. Only the second stage is
// visible to the destination domain, so a change in the source value is seen
// two ticks after it happens, or possibly three ticks depending on when the
// change happens relative to the destination clock.
package synchroniser

import "fmt"

// Synchroniser is a pair of registers.
type Synchroniser struct {
	stage1 uint32
	stage2 uint32
}

func (s Synchroniser) String() string {
	return fmt.Sprintf("%#x -> %#x", s.stage1, s.stage2)
}

// Tick advances the synchroniser by one destination clock edge. The order of
// the two assignments is significant.
func (s *Synchroniser) Tick(source uint32) {
	s.stage2 = s.stage1
	s.stage1 = source
}

// Output returns the value of the second stage.
func (s Synchroniser) Output() uint32 {
	return s.stage2
}

// Stages returns the value of both stages. Useful for tracing only.
func (s Synchroniser) Stages() (uint32, uint32) {
	return s.stage1, s.stage2
}

// Reset both stages to zero.
func (s *Synchroniser) Reset() {
	s.stage1 = 0
	s.stage2 = 0
}

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

// Package debugger implements the interactive stepper. Each key press steps
// one clock edge of the FIFO and the state of the registers is printed after
// every edge.
//
// The keys are:
//
//	w	clock edge in the write domain with no write request
//	W	clock edge in the write domain with a write request
//	r	clock edge in the read domain with no read request
//	R	clock edge in the read domain with a read request
//	x	clock edge in the write domain with reset asserted
//	X	clock edge in the read domain with reset asserted
//	.	the next clock edge in simulated time, with no requests
//	s	print the content of the storage ring
//	?	help
//	q	quit
//
// An empty line of input is the same as the '.' key. Words written with the
// 'W' key are taken from a counter that increments on every accepted write.
//
// Every edge is checked by a verify.Monitor and a verify.Scoreboard. A failed
// check is printed as an error but the stepper continues.
package debugger
